package pinata

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"findmypet/internal/platform/httpclient"
	"findmypet/internal/platform/metrics"
	"findmypet/internal/ports/media"
)

const (
	DefaultUploadURL = "https://uploads.pinata.cloud"
	DefaultAPIURL    = "https://api.pinata.cloud"

	uploadPath       = "/v3/files"
	downloadLinkPath = "/v3/files/private/download_link"
)

// Config del cliente Pinata. Normalmente viene de PINATA_* en config.
type Config struct {
	JWT     string
	Gateway string // p.ej. "example.mypinata.cloud"

	UploadURL string
	APIURL    string

	// Network: "private" (default) o "public".
	Network string

	Timeout time.Duration
}

// Client implementa media.Store contra la API v3 de Pinata.
type Client struct {
	jwt       string
	gateway   string
	uploadURL string
	apiURL    string
	network   string

	http    *httpclient.Client
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewClient(cfg Config, m *metrics.Metrics) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	network := strings.ToLower(strings.TrimSpace(cfg.Network))
	if network == "" {
		network = "private"
	}

	return &Client{
		jwt:       strings.TrimSpace(cfg.JWT),
		gateway:   normalizeGateway(cfg.Gateway),
		uploadURL: orDefault(cfg.UploadURL, DefaultUploadURL),
		apiURL:    orDefault(cfg.APIURL, DefaultAPIURL),
		network:   network,
		http:      httpclient.New(timeout),
		metrics:   m,
		now:       time.Now,
	}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.jwt != "" && c.gateway != ""
}

func (c *Client) Upload(ctx context.Context, f media.File) (string, error) {
	if !c.IsConfigured() {
		return "", fmt.Errorf("%w: %v", media.ErrUpload, media.ErrNotConfigured)
	}
	if len(f.Data) == 0 {
		return "", fmt.Errorf("%w: empty file", media.ErrUpload)
	}

	name := strings.TrimSpace(f.Name)
	if name == "" {
		name = "upload"
	}

	var out struct {
		Data struct {
			ID  string `json:"id"`
			CID string `json:"cid"`
		} `json:"data"`
	}
	err := c.http.DoMultipart(ctx, c.uploadURL+uploadPath, c.authHeaders(),
		map[string]string{
			"network": c.network,
			"name":    name,
		},
		httpclient.FilePart{
			Field:       "file",
			FileName:    name,
			ContentType: f.ContentType,
			Data:        f.Data,
		},
		&out,
	)
	if err == nil && strings.TrimSpace(out.Data.CID) == "" {
		err = errors.New("response missing cid")
	}
	c.metrics.ObserveUpstream("pinata", "upload", err)
	if err != nil {
		return "", fmt.Errorf("%w: %v", media.ErrUpload, err)
	}
	return out.Data.CID, nil
}

func (c *Client) SignedURL(ctx context.Context, cid string, ttl time.Duration) (string, error) {
	if !c.IsConfigured() {
		return "", media.ErrNotConfigured
	}
	cid = strings.TrimSpace(cid)
	if cid == "" {
		return "", errors.New("pinata: cid required")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}

	in := map[string]any{
		"url":     fmt.Sprintf("https://%s/files/%s", c.gateway, cid),
		"expires": int64(ttl / time.Second),
		"date":    c.now().Unix(),
		"method":  http.MethodGet,
	}
	var out struct {
		Data string `json:"data"`
	}

	err := c.http.DoJSON(ctx, http.MethodPost, c.apiURL+downloadLinkPath, c.authHeaders(), in, &out)
	if err == nil && strings.TrimSpace(out.Data) == "" {
		err = errors.New("response missing signed url")
	}
	c.metrics.ObserveUpstream("pinata", "sign", err)
	if err != nil {
		return "", fmt.Errorf("pinata: sign url: %w", err)
	}
	return out.Data, nil
}

func (c *Client) authHeaders() map[string]string {
	return map[string]string{"Authorization": "Bearer " + c.jwt}
}

func normalizeGateway(g string) string {
	g = strings.TrimSpace(g)
	g = strings.TrimPrefix(g, "https://")
	g = strings.TrimPrefix(g, "http://")
	return strings.TrimRight(g, "/")
}

func orDefault(v, def string) string {
	v = strings.TrimRight(strings.TrimSpace(v), "/")
	if v == "" {
		return def
	}
	return v
}
