package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proxypool-server/internal/domain/proxy"
)

const proxyFeed = `[
  {"ip": "1.1.1.1", "port": 80, "protocol": "http", "country": "US"},
  {"ip": "2.2.2.2", "port": 8080},
  {"port": 3128},
  {"ip": "3.3.3.3"},
  {"ip": "4.4.4.4", "port": "not-a-port"},
  {"ip": "5.5.5.5", "port": 999999},
  {"ip": "6.6.6.6", "port": 3128}
]`

func TestJSONSourceFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(proxyFeed))
	}))
	defer srv.Close()

	src := NewJSONSource(srv.URL, zerolog.Nop())
	endpoints, err := src.Fetch(context.Background())
	require.NoError(t, err)

	// entries with missing or invalid fields are skipped
	assert.Equal(t, []proxy.Endpoint{"1.1.1.1:80", "2.2.2.2:8080", "6.6.6.6:3128"}, endpoints)
}

func TestJSONSourceFetchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>definitely not json</html>"))
	}))
	defer srv.Close()

	src := NewJSONSource(srv.URL, zerolog.Nop())
	_, err := src.Fetch(context.Background())
	require.Error(t, err)
}

func TestJSONSourceFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	src := NewJSONSource(srv.URL, zerolog.Nop())
	_, err := src.Fetch(context.Background())
	require.Error(t, err)
}

func TestJSONSourceFetchEmptyFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	src := NewJSONSource(srv.URL, zerolog.Nop())
	endpoints, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, endpoints)
}
