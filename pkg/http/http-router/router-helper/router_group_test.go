package router_helper

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestRouteGroup(t *testing.T) {
	router := httprouter.New()
	api := NewRouteGroup(router, "/api")

	called := ""
	api.GET("/addresses/:type/:id", func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		called = ps.ByName("type") + "/" + ps.ByName("id")
	})
	api.Group("/boundaries").POST("/label", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = "label"
	})

	tests := []struct {
		name   string
		method string
		target string
		want   string
		status int
	}{
		{"prefixed get", http.MethodGet, "/api/addresses/node/1", "node/1", http.StatusOK},
		{"nested group", http.MethodPost, "/api/boundaries/label", "label", http.StatusOK},
		{"outside prefix", http.MethodGet, "/addresses/node/1", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called = ""
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.want, called)
		})
	}
}
