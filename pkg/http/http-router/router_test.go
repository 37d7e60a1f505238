package http_router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lintang-b-s/osm-gazetteer/pkg"
	"github.com/lintang-b-s/osm-gazetteer/pkg/datastructure"
	"github.com/lintang-b-s/osm-gazetteer/pkg/gazetteer"
	"github.com/lintang-b-s/osm-gazetteer/pkg/http/usecases"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type memoryStore struct {
	addresses  map[string]datastructure.AddressDoc
	boundaries map[string]datastructure.BoundaryDoc
}

func (m memoryStore) GetAddresses(id string) (datastructure.AddressDoc, error) {
	doc, ok := m.addresses[id]
	if !ok {
		return doc, pkg.WrapErrorf(nil, pkg.ErrNotFound, "address %s not found", id)
	}
	return doc, nil
}

func (m memoryStore) GetBoundary(id string) (datastructure.BoundaryDoc, error) {
	doc, ok := m.boundaries[id]
	if !ok {
		return doc, pkg.WrapErrorf(nil, pkg.ErrNotFound, "boundary %s not found", id)
	}
	return doc, nil
}

type panicService struct {
	*usecases.GazetteerService
}

func (panicService) Addresses(context.Context, string) (datastructure.AddressDoc, error) {
	panic("boom")
}

func testHandler(t *testing.T) (http.Handler, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core)

	assembler := gazetteer.NewAssembler(log, nil, gazetteer.NewLocaleFormatter())
	label := assembler.AssembleBoundaries([]gazetteer.Entity{
		gazetteer.NewEntity("relation/7", map[string]string{"admin_level": "8", "name": "Town"}),
	})
	store := memoryStore{
		addresses: map[string]datastructure.AddressDoc{
			"node/1": datastructure.NewAddressDoc("node/1", -7.5, 110.8, assembler.Assemble(
				gazetteer.NewEntity("node/1", map[string]string{"addr:housenumber": "1", "addr:street": "Main"}), nil, nil)),
		},
		boundaries: map[string]datastructure.BoundaryDoc{
			"relation/7": datastructure.NewBoundaryDoc("relation/7", 80, "Town", -7.5, 110.8, label),
		},
	}

	return NewAPI(log).Handler(usecases.New(log, assembler, store)), logs
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestAssembleEndpoint(t *testing.T) {
	h, _ := testHandler(t)

	body := `{
		"point": {"id": "node/10", "tags": {"addr:housenumber": "12", "addr:street": "Jalan Slamet Riyadi", "addr:full": "Jl. Slamet Riyadi 12"}},
		"boundaries": [
			{"id": "relation/2", "tags": {"place": "city", "name": "Surakarta"}},
			{"id": "relation/3", "tags": {"admin_level": "4", "name": "Jawa Tengah"}}
		],
		"streets": [{"id": "way/5", "tags": {"highway": "primary", "name": "Jalan Slamet Riyadi"}}]
	}`
	rec := do(t, h, http.MethodPost, "/api/addresses/assemble", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "osm-gazetteer", rec.Header().Get("X-Service"))

	data := decode(t, rec)["data"].([]any)
	require.Len(t, data, 2)

	regular := data[0].(map[string]any)
	assert.Equal(t, "12, Jalan Slamet Riyadi, Surakarta, Jawa Tengah", regular["text"])
	assert.Equal(t, "regular", regular["addr-scheme"])
	parts := regular["parts"].([]any)
	require.Len(t, parts, 4)
	assert.Equal(t, "way/5", parts[1].(map[string]any)["lnk"])
	assert.Equal(t, float64(110), parts[3].(map[string]any)["lvl"])

	full := data[1].(map[string]any)
	assert.Equal(t, "Jl. Slamet Riyadi 12", full["text"])
}

func TestAssembleEndpointBadRequests(t *testing.T) {
	h, _ := testHandler(t)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"missing point id", `{"point": {"tags": {"addr:housenumber": "1"}}}`, http.StatusBadRequest},
		{"boundary without id", `{"point": {"id": "node/1"}, "boundaries": [{"tags": {}}]}`, http.StatusBadRequest},
		{"unknown field", `{"point": {"id": "node/1"}, "radius": 10}`, http.StatusBadRequest},
		{"bad json", `{"point": `, http.StatusBadRequest},
		{"two values", `{"point": {"id": "node/1"}}{}`, http.StatusBadRequest},
		{"bad lang", `{"point": {"id": "node/1"}, "lang": "not a tag"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/addresses/assemble", tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			errBody := decode(t, rec)["error"].(map[string]any)
			assert.Equal(t, "bad_request", errBody["code"])
			assert.NotEmpty(t, errBody["message"])
		})
	}

	t.Run("not json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/addresses/assemble", strings.NewReader("point=1"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})
}

func TestLabelEndpoint(t *testing.T) {
	h, _ := testHandler(t)

	rec := do(t, h, http.MethodPost, "/api/boundaries/label", `{
		"boundaries": [
			{"id": "relation/3", "tags": {"admin_level": "4", "name": "Jawa Tengah"}},
			{"id": "relation/2", "tags": {"place": "city", "name": "Surakarta"}},
			{"id": "relation/9", "tags": {"admin_level": "6"}}
		]
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := decode(t, rec)["data"].(map[string]any)
	assert.Equal(t, "Surakarta, Jawa Tengah", data["text"])

	rec = do(t, h, http.MethodPost, "/api/boundaries/label", `{"boundaries": []}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLookupEndpoints(t *testing.T) {
	h, _ := testHandler(t)

	tests := []struct {
		name   string
		target string
		status int
		text   string
	}{
		{"stored address", "/api/addresses/node/1", http.StatusOK, ""},
		{"missing address", "/api/addresses/node/2", http.StatusNotFound, ""},
		{"bad osm type", "/api/addresses/point/1", http.StatusBadRequest, ""},
		{"non numeric id", "/api/addresses/node/abc", http.StatusBadRequest, ""},
		{"stored boundary", "/api/boundaries/relation/7", http.StatusOK, ""},
		{"missing boundary", "/api/boundaries/relation/8", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, tt.target, "")
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}

	rec := do(t, h, http.MethodGet, "/api/addresses/node/1", "")
	data := decode(t, rec)["data"].(map[string]any)
	assert.Equal(t, "node/1", data["id"])
	addresses := data["addresses"].([]any)
	assert.Equal(t, "1, Main", addresses[0].(map[string]any)["text"])

	rec = do(t, h, http.MethodGet, "/api/boundaries/relation/7", "")
	data = decode(t, rec)["data"].(map[string]any)
	assert.Equal(t, "Town", data["label"].(map[string]any)["text"])
}

func TestHealthzAndAccessLog(t *testing.T) {
	h, logs := testHandler(t)

	rec := do(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ".", rec.Body.String())

	_ = do(t, h, http.MethodGet, "/api/addresses/node/1", "")
	entries := logs.FilterMessage("request").All()
	require.NotEmpty(t, entries)
	last := entries[len(entries)-1].ContextMap()
	assert.Equal(t, "/api/addresses/node/1", last["path"])
	assert.Equal(t, int64(http.StatusOK), last["status"])
}

func TestRecoverPanic(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core)
	h := NewAPI(log).Handler(panicService{})

	rec := do(t, h, http.MethodGet, "/api/addresses/node/1", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 1, logs.FilterMessage("panic while serving request").Len())
}

func TestRealIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"x-real-ip", map[string]string{"X-Real-IP": "10.0.0.1"}, "10.0.0.1"},
		{"first forwarded", map[string]string{"X-Forwarded-For": "10.0.0.2, 10.0.0.3"}, "10.0.0.2"},
		{"invalid header keeps remote addr", map[string]string{"X-Real-IP": "nope"}, "192.0.2.1:1234"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			h := RealIP(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.RemoteAddr
			}))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.want, got)
		})
	}
}
