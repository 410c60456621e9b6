package googleplaces

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findmypet/internal/ports/places"
)

func TestSearchNearby_BuildsQueryAndReturnsRawPayload(t *testing.T) {
	payload := `{"status":"OK","results":[{"name":"Happy Tails","geometry":{"location":{"lat":40.1,"lng":-74.2}}}]}`

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, textSearchPath, r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "animal shelters in NJ", q.Get("query"))
		assert.Equal(t, "40.1,-74.2", q.Get("location"))
		assert.Equal(t, "50000", q.Get("radius"))
		assert.Equal(t, "key-1", q.Get("key"))
		_, _ = w.Write([]byte(payload))
	}))
	defer ts.Close()

	c := NewClient(Config{APIKey: "key-1", BaseURL: ts.URL}, nil)
	raw, err := c.SearchNearby(context.Background(), places.Query{Latitude: 40.1, Longitude: -74.2, Region: "NJ"})
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(raw))
}

func TestSearchNearby_DeniedIsUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"REQUEST_DENIED","error_message":"bad key","results":[]}`))
	}))
	defer ts.Close()

	c := NewClient(Config{APIKey: "key-1", BaseURL: ts.URL}, nil)
	_, err := c.SearchNearby(context.Background(), places.Query{Latitude: 1, Longitude: 2})
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestSearchNearby_ZeroResultsIsFine(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	}))
	defer ts.Close()

	c := NewClient(Config{APIKey: "key-1", BaseURL: ts.URL}, nil)
	raw, err := c.SearchNearby(context.Background(), places.Query{})
	require.NoError(t, err)
	assert.Contains(t, string(raw), "ZERO_RESULTS")
}

func TestSearchNearby_NotConfigured(t *testing.T) {
	_, err := NewClient(Config{}, nil).SearchNearby(context.Background(), places.Query{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
