package pinata

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findmypet/internal/platform/metrics"
	"findmypet/internal/ports/media"
)

func newFakePinata(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/v3/files", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer jwt-1", r.Header.Get("Authorization"))
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		assert.Equal(t, "private", r.FormValue("network"))

		f, hdr, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		defer f.Close()
		b, _ := io.ReadAll(f)
		assert.Equal(t, "milo.png", hdr.Filename)
		assert.Equal(t, "png-bytes", string(b))

		_, _ = w.Write([]byte(`{"data":{"id":"f1","cid":"bafkreimilo"}}`))
	})

	mux.HandleFunc("/v3/files/private/download_link", func(w http.ResponseWriter, r *http.Request) {
		var in map[string]any
		_ = json.NewDecoder(r.Body).Decode(&in)
		assert.Equal(t, "https://gw.example/files/bafkreimilo", in["url"])
		assert.Equal(t, float64(3600), in["expires"])
		assert.Equal(t, "GET", in["method"])

		_, _ = w.Write([]byte(`{"data":"https://gw.example/files/bafkreimilo?X-Signature=abc"}`))
	})
	return httptest.NewServer(mux)
}

func TestClient_UploadAndSign(t *testing.T) {
	ts := newFakePinata(t)
	defer ts.Close()

	c := NewClient(Config{
		JWT:       "jwt-1",
		Gateway:   "https://gw.example/",
		UploadURL: ts.URL,
		APIURL:    ts.URL,
	}, metrics.New())

	cid, err := c.Upload(context.Background(), media.File{Name: "milo.png", ContentType: "image/png", Data: []byte("png-bytes")})
	require.NoError(t, err)
	assert.Equal(t, "bafkreimilo", cid)

	u, err := c.SignedURL(context.Background(), cid, time.Hour)
	require.NoError(t, err)
	assert.Contains(t, u, "X-Signature=abc")
}

func TestClient_UploadFailureWrapsErrUpload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"quota"}`, http.StatusForbidden)
	}))
	defer ts.Close()

	c := NewClient(Config{JWT: "jwt-1", Gateway: "gw.example", UploadURL: ts.URL}, nil)

	_, err := c.Upload(context.Background(), media.File{Name: "a.jpg", Data: []byte("x")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, media.ErrUpload))
}

func TestClient_NotConfigured(t *testing.T) {
	c := NewClient(Config{}, nil)
	assert.False(t, c.IsConfigured())

	_, err := c.Upload(context.Background(), media.File{Data: []byte("x")})
	assert.ErrorIs(t, err, media.ErrUpload)

	_, err = c.SignedURL(context.Background(), "cid", time.Hour)
	assert.ErrorIs(t, err, media.ErrNotConfigured)
}

func TestClient_UploadRejectsEmptyFile(t *testing.T) {
	c := NewClient(Config{JWT: "j", Gateway: "g"}, nil)
	_, err := c.Upload(context.Background(), media.File{Name: "a.jpg"})
	assert.ErrorIs(t, err, media.ErrUpload)
}
