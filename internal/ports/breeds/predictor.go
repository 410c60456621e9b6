package breeds

import (
	"context"
	"encoding/json"
	"errors"
)

var (
	ErrNotConfigured = errors.New("breed model endpoint not configured")
	ErrInvalidImage  = errors.New("invalid image")
	ErrUpstream      = errors.New("breed model upstream error")
)

// Predictor clasifica la raza a partir de una imagen y devuelve la respuesta del modelo tal cual.
type Predictor interface {
	Predict(ctx context.Context, image []byte) (json.RawMessage, error)
}
