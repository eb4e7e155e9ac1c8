package httputils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/echo":
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			var in map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(in)
		case "/empty":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"nope"}`))
		}
	}))
	defer srv.Close()
	ctx := context.Background()

	var out map[string]string
	require.NoError(t, DoJSON(ctx, srv.Client(), http.MethodPost, srv.URL+"/echo", map[string]string{"a": "b"}, &out))
	assert.Equal(t, "b", out["a"])

	require.NoError(t, DoJSON(ctx, srv.Client(), http.MethodDelete, srv.URL+"/empty", nil, &out))

	err := DoJSON(ctx, srv.Client(), http.MethodGet, srv.URL+"/missing", nil, nil)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.Status)
	assert.JSONEq(t, `{"message":"nope"}`, string(se.Body))
}
