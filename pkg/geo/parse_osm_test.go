package geo

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
)

func TestOSMFilters(t *testing.T) {
	tests := []struct {
		name     string
		tags     map[string]string
		address  bool
		boundary bool
	}{
		{"house number", map[string]string{"addr:housenumber": "1"}, true, false},
		{"secondary layer only", map[string]string{"addr2:housenumber": "3"}, true, false},
		{"full address only", map[string]string{"addr:full": "Jl. Merdeka 1"}, true, false},
		{"street only is not an address point", map[string]string{"addr:street": "Main"}, false, false},
		{"administrative", map[string]string{"boundary": "administrative", "admin_level": "8"}, false, true},
		{"postal boundary", map[string]string{"boundary": "postal_code"}, false, false},
		{"place area", map[string]string{"place": "suburb", "name": "Laweyan"}, false, true},
		{"addressed place", map[string]string{"place": "hamlet", "addr:housenumber": "2"}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.address, isAddressPoint(tt.tags))
			assert.Equal(t, tt.boundary, isBoundaryCandidate(tt.tags))
		})
	}
}

func TestWayPoints(t *testing.T) {
	ctr := NewNodeMapContainer()
	ctr.SetNode(1, orb.Point{110.8, -7.5})
	ctr.SetNode(2, orb.Point{110.9, -7.5})

	points := wayPoints([]osm.NodeID{1, 3, 2}, ctr)
	assert.Equal(t, []orb.Point{{110.8, -7.5}, {110.9, -7.5}}, points, "missing nodes are skipped")

	assert.True(t, isClosed([]osm.NodeID{1, 2, 3, 1}))
	assert.False(t, isClosed([]osm.NodeID{1, 2, 1}))
	assert.False(t, isClosed([]osm.NodeID{1, 2, 3, 4}))
}

func TestParseOSMMissingFile(t *testing.T) {
	_, err := ParseOSM(context.Background(), filepath.Join(t.TempDir(), "missing.osm.pbf"))
	assert.Error(t, err)
}
