package breeds

import (
	"context"
	"encoding/json"
	"errors"

	"findmypet/internal/ports/breeds"
)

var ErrMissingFile = errors.New("image file is required")

type Service struct {
	predictor breeds.Predictor
}

func NewService(p breeds.Predictor) *Service {
	return &Service{predictor: p}
}

// Predict devuelve la respuesta del modelo sin interpretar.
func (s *Service) Predict(ctx context.Context, image []byte) (json.RawMessage, error) {
	if len(image) == 0 {
		return nil, ErrMissingFile
	}
	if s.predictor == nil {
		return nil, breeds.ErrNotConfigured
	}
	return s.predictor.Predict(ctx, image)
}
