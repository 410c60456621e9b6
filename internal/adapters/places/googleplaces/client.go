package googleplaces

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"findmypet/internal/platform/httpclient"
	"findmypet/internal/platform/metrics"
	"findmypet/internal/ports/places"
)

var (
	ErrNotConfigured = errors.New("places client not configured")
	ErrUpstream      = errors.New("places upstream error")
)

const (
	DefaultBaseURL = "https://maps.googleapis.com"

	// Radio fijo de búsqueda alrededor del punto, en metros.
	SearchRadiusMeters = 50000

	textSearchPath = "/maps/api/place/textsearch/json"
)

type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client implementa places.ShelterSearcher con Google Places Text Search.
type Client struct {
	apiKey  string
	baseURL string
	http    *httpclient.Client
	metrics *metrics.Metrics
}

func NewClient(cfg Config, m *metrics.Metrics) *Client {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		apiKey:  strings.TrimSpace(cfg.APIKey),
		baseURL: base,
		http:    httpclient.New(cfg.Timeout),
		metrics: m,
	}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.apiKey != ""
}

// SearchNearby arma el query de texto con la región y devuelve la respuesta cruda del proveedor.
func (c *Client) SearchNearby(ctx context.Context, q places.Query) (json.RawMessage, error) {
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}

	params := url.Values{}
	params.Set("query", textQuery(q.Region))
	params.Set("location", strconv.FormatFloat(q.Latitude, 'f', -1, 64)+","+strconv.FormatFloat(q.Longitude, 'f', -1, 64))
	params.Set("radius", strconv.Itoa(SearchRadiusMeters))
	params.Set("key", c.apiKey)

	var raw json.RawMessage
	err := c.http.DoJSON(ctx, http.MethodGet, c.baseURL+textSearchPath+"?"+params.Encode(), nil, nil, &raw)
	if err == nil {
		err = checkStatus(raw)
	}
	c.metrics.ObserveUpstream("places", "text_search", err)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return raw, nil
}

func textQuery(region string) string {
	region = strings.TrimSpace(region)
	if region == "" {
		return "animal shelters"
	}
	return "animal shelters in " + region
}

// checkStatus: el proveedor responde 200 incluso con key inválida; esos casos se tratan como error.
func checkStatus(raw json.RawMessage) error {
	if len(raw) == 0 {
		return errors.New("empty response")
	}
	var head struct {
		Status       string `json:"status"`
		ErrorMessage string `json:"error_message"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	switch head.Status {
	case "REQUEST_DENIED", "INVALID_REQUEST", "OVER_QUERY_LIMIT", "UNKNOWN_ERROR":
		return fmt.Errorf("status=%s %s", head.Status, head.ErrorMessage)
	}
	return nil
}
