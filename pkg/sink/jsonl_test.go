package sink

import (
	"bufio"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/osm-gazetteer/pkg/datastructure"
	"github.com/lintang-b-s/osm-gazetteer/pkg/gazetteer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLines(t *testing.T, path string) []map[string]any {
	r, err := OpenDump(path)
	require.NoError(t, err)
	defer r.Close()

	lines := []map[string]any{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := map[string]any{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		lines = append(lines, line)
	}
	require.NoError(t, scanner.Err())
	return lines
}

func TestJSONLWriter(t *testing.T) {
	assembler := gazetteer.NewAssembler(nil, nil, nil)
	records := assembler.Assemble(gazetteer.NewEntity("node/1", map[string]string{
		"addr:housenumber": "5",
		"addr:street":      "Main Street",
	}), nil, nil)
	label := assembler.AssembleBoundaries([]gazetteer.Entity{
		gazetteer.NewEntity("relation/1", map[string]string{"admin_level": "8", "name": "Town & Co"}),
	})

	tests := []struct {
		name string
		file string
	}{
		{"plain", "dump.jsonl"},
		{"gzip", "dump.jsonl.gz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			w, err := NewJSONLWriter(path, "01RUN", "test.osm.pbf")
			require.NoError(t, err)

			ctx := context.Background()
			require.NoError(t, w.WriteBoundaries(ctx, []datastructure.BoundaryDoc{
				datastructure.NewBoundaryDoc("relation/1", 80, "Town & Co", 1, 2, label),
			}))
			require.NoError(t, w.WriteAddresses(ctx, []datastructure.AddressDoc{
				datastructure.NewAddressDoc("node/1", 3, 4, records),
			}))
			require.NoError(t, w.Close())

			lines := readLines(t, path)
			require.Len(t, lines, 3)

			assert.Equal(t, LINE_TYPE_META, lines[0]["type"])
			assert.Equal(t, "01RUN", lines[0]["run_id"])
			assert.Equal(t, "test.osm.pbf", lines[0]["source"])

			assert.Equal(t, LINE_TYPE_BOUNDARY, lines[1]["type"])
			assert.Equal(t, "relation/1", lines[1]["id"])
			assert.Equal(t, "Town & Co", lines[1]["name"])

			assert.Equal(t, LINE_TYPE_ADDRESS, lines[2]["type"])
			assert.Equal(t, "node/1", lines[2]["id"])
			addresses := lines[2]["addresses"].([]any)
			require.Len(t, addresses, 1)
			assert.Equal(t, "5, Main Street", addresses[0].(map[string]any)["text"])
			assert.Equal(t, gazetteer.SCHEME_REGULAR, addresses[0].(map[string]any)["addr-scheme"])
		})
	}
}

func TestOpenDumpMissing(t *testing.T) {
	_, err := OpenDump(filepath.Join(t.TempDir(), "missing.jsonl.gz"))
	assert.Error(t, err)
}
