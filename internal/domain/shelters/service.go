package shelters

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"findmypet/internal/ports/places"
)

var (
	ErrMalformedInput    = errors.New("malformed input")
	ErrSearchUnavailable = errors.New("shelter search not configured")
)

type Service struct {
	repo   Repository
	search places.ShelterSearcher // puede ser nil
}

func NewService(repo Repository, search places.ShelterSearcher) *Service {
	return &Service{repo: repo, search: search}
}

// List no tiene efectos secundarios; la siembra la hace EnsureDefault al arrancar.
func (s *Service) List(ctx context.Context) ([]Shelter, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Shelter, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Shelter{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) FindByName(ctx context.Context, name string) (Shelter, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Shelter{}, ErrNotFound
	}
	return s.repo.FindByName(ctx, name)
}

// EnsureDefault siembra DefaultShelter si el directorio está vacío. Idempotente.
func (s *Service) EnsureDefault(ctx context.Context) (bool, error) {
	def := DefaultShelter
	def.ID = uuid.NewString()
	return s.repo.InsertIfEmpty(ctx, def)
}

type SearchInput struct {
	Lat    string
	Lng    string
	Region string
}

// SearchNearby valida coordenadas y delega en el proveedor de lugares.
func (s *Service) SearchNearby(ctx context.Context, in SearchInput) (json.RawMessage, error) {
	lat, err := parseCoord(in.Lat, 90)
	if err != nil {
		return nil, err
	}
	lng, err := parseCoord(in.Lng, 180)
	if err != nil {
		return nil, err
	}
	if s.search == nil {
		return nil, ErrSearchUnavailable
	}

	return s.search.SearchNearby(ctx, places.Query{
		Latitude:  lat,
		Longitude: lng,
		Region:    strings.TrimSpace(in.Region),
	})
}

func parseCoord(raw string, limit float64) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, ErrMalformedInput
	}
	if v < -limit || v > limit {
		return 0, ErrMalformedInput
	}
	return v, nil
}
