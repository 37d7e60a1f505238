package sink

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/lintang-b-s/osm-gazetteer/pkg/datastructure"

	"github.com/klauspost/compress/gzip"
)

const (
	LINE_TYPE_META     = "meta"
	LINE_TYPE_ADDRESS  = "address"
	LINE_TYPE_BOUNDARY = "boundary"
)

type metaLine struct {
	Type   string `json:"type"`
	RunID  string `json:"run_id"`
	Source string `json:"source"`
}

type addressLine struct {
	Type string `json:"type"`
	datastructure.AddressDoc
}

type boundaryLine struct {
	Type string `json:"type"`
	datastructure.BoundaryDoc
}

// JSONLWriter writes one json document per line. paths ending in .gz are gzip compressed.
type JSONLWriter struct {
	f   *os.File
	gz  *gzip.Writer
	buf *bufio.Writer
	enc *json.Encoder
	mu  sync.Mutex
}

func NewJSONLWriter(path, runID, source string) (*JSONLWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := &JSONLWriter{f: f}
	var out io.Writer = f
	if strings.HasSuffix(path, ".gz") {
		w.gz = gzip.NewWriter(f)
		out = w.gz
	}
	w.buf = bufio.NewWriterSize(out, 1<<20)
	w.enc = json.NewEncoder(w.buf)
	w.enc.SetEscapeHTML(false)

	if err := w.enc.Encode(metaLine{Type: LINE_TYPE_META, RunID: runID, Source: source}); err != nil {
		_ = f.Close()
		return nil, err
	}
	return w, nil
}

func (w *JSONLWriter) WriteAddresses(_ context.Context, docs []datastructure.AddressDoc) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, doc := range docs {
		if err := w.enc.Encode(addressLine{Type: LINE_TYPE_ADDRESS, AddressDoc: doc}); err != nil {
			return fmt.Errorf("jsonl: write address %s: %w", doc.ID, err)
		}
	}
	return nil
}

func (w *JSONLWriter) WriteBoundaries(_ context.Context, docs []datastructure.BoundaryDoc) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, doc := range docs {
		if err := w.enc.Encode(boundaryLine{Type: LINE_TYPE_BOUNDARY, BoundaryDoc: doc}); err != nil {
			return fmt.Errorf("jsonl: write boundary %s: %w", doc.ID, err)
		}
	}
	return nil
}

func (w *JSONLWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.buf.Flush(); err != nil {
		_ = w.f.Close()
		return err
	}
	if w.gz != nil {
		if err := w.gz.Close(); err != nil {
			_ = w.f.Close()
			return err
		}
	}
	return w.f.Close()
}

// OpenDump opens a dump for reading, decompressing .gz files.
func OpenDump(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &gzipReadCloser{Reader: gz, f: f}, nil
}

type gzipReadCloser struct {
	*gzip.Reader
	f *os.File
}

func (r *gzipReadCloser) Close() error {
	if err := r.Reader.Close(); err != nil {
		_ = r.f.Close()
		return err
	}
	return r.f.Close()
}
