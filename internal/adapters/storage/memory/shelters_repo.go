package memory

import (
	"context"
	"sync"

	"findmypet/internal/domain/shelters"
)

type shelterRepo struct {
	mu    sync.RWMutex
	items []shelters.Shelter
}

// NewShelterRepo acepta refugios iniciales (útil en tests y en modo memoria).
func NewShelterRepo(seed ...shelters.Shelter) shelters.Repository {
	return &shelterRepo{items: append([]shelters.Shelter{}, seed...)}
}

func (r *shelterRepo) List(ctx context.Context) ([]shelters.Shelter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]shelters.Shelter{}, r.items...), nil
}

func (r *shelterRepo) GetByID(ctx context.Context, id string) (shelters.Shelter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.items {
		if s.ID == id {
			return s, nil
		}
	}
	return shelters.Shelter{}, shelters.ErrNotFound
}

func (r *shelterRepo) FindByName(ctx context.Context, name string) (shelters.Shelter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.items {
		if s.Name == name {
			return s, nil
		}
	}
	return shelters.Shelter{}, shelters.ErrNotFound
}

func (r *shelterRepo) InsertIfEmpty(ctx context.Context, s shelters.Shelter) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.items) > 0 {
		return false, nil
	}
	r.items = append(r.items, s)
	return true, nil
}
