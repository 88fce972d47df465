package utils

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/volumes", r.URL.Path)
		assert.Equal(t, "intitle:Dune", r.URL.Query().Get("q"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"totalItems": 2}`))
	}))
	defer server.Close()

	api := NewAPI(server.URL, time.Second)

	var out struct {
		TotalItems int `json:"totalItems"`
	}
	err := api.Get(context.Background(), "/volumes", url.Values{"q": {"intitle:Dune"}}, &out)

	require.NoError(t, err)
	assert.Equal(t, 2, out.TotalItems)
}

func TestAPIGetStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": {"message": "forbidden"}}`))
	}))
	defer server.Close()

	var out map[string]any
	err := NewAPI(server.URL, time.Second).Get(context.Background(), "/", nil, &out)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
	assert.Contains(t, err.Error(), "403")
}

func TestAPIGetDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	var out map[string]any
	err := NewAPI(server.URL, time.Second).Get(context.Background(), "/", nil, &out)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestAPIGetTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	start := time.Now()
	var out map[string]any
	err := NewAPI(server.URL, 50*time.Millisecond).Get(context.Background(), "/", nil, &out)

	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}
