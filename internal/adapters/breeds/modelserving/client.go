package modelserving

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"strings"
	"time"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"findmypet/internal/platform/httpclient"
	"findmypet/internal/platform/metrics"
	"findmypet/internal/ports/breeds"
)

var (
	ErrNotConfigured = breeds.ErrNotConfigured
	ErrInvalidImage  = breeds.ErrInvalidImage
	ErrUpstream      = breeds.ErrUpstream
)

// Tamaño de entrada que espera el modelo.
const (
	InputWidth  = 1000
	InputHeight = 720
)

type Config struct {
	URL     string
	Token   string
	Timeout time.Duration
}

// Client envía imágenes a un endpoint de model serving (formato dataframe_split).
type Client struct {
	url     string
	token   string
	http    *httpclient.Client
	metrics *metrics.Metrics
}

func NewClient(cfg Config, m *metrics.Metrics) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		url:     strings.TrimSpace(cfg.URL),
		token:   strings.TrimSpace(cfg.Token),
		http:    httpclient.New(timeout),
		metrics: m,
	}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.url != ""
}

type dataframeSplit struct {
	Columns []string   `json:"columns"`
	Data    [][]string `json:"data"`
}

func (c *Client) Predict(ctx context.Context, img []byte) (json.RawMessage, error) {
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}

	encoded, err := Preprocess(img)
	if err != nil {
		return nil, err
	}

	in := map[string]dataframeSplit{
		"dataframe_split": {
			Columns: []string{"image"},
			Data:    [][]string{{encoded}},
		},
	}

	headers := map[string]string{}
	if c.token != "" {
		headers["Authorization"] = "Bearer " + c.token
	}

	var out json.RawMessage
	err = c.http.DoJSON(ctx, http.MethodPost, c.url, headers, in, &out)
	c.metrics.ObserveUpstream("breed_model", "predict", err)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return out, nil
}

// Preprocess decodifica la imagen, la pasa a RGB sobre fondo blanco, la escala a
// InputWidth x InputHeight y devuelve el JPEG en base64.
func Preprocess(img []byte) (string, error) {
	src, _, err := image.Decode(bytes.NewReader(img))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, InputWidth, InputHeight))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 90}); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
