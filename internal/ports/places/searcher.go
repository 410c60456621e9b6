package places

import (
	"context"
	"encoding/json"
)

// Query describe una búsqueda de refugios alrededor de un punto.
type Query struct {
	Latitude  float64
	Longitude float64
	Region    string // texto libre (p.ej. el estado)
}

// ShelterSearcher consulta una API de lugares externa y devuelve su payload sin tocar.
type ShelterSearcher interface {
	SearchNearby(ctx context.Context, q Query) (json.RawMessage, error)
}
