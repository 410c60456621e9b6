package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"findmypet/internal/domain/events"
)

type eventRepo struct {
	mu    sync.RWMutex
	items []events.PetEvent
	ids   map[string]struct{}
}

func NewEventRepo() events.Repository {
	return &eventRepo{
		ids: make(map[string]struct{}),
	}
}

func (r *eventRepo) Create(ctx context.Context, e events.PetEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("event id required")
	}
	if _, exists := r.ids[e.ID]; exists {
		return errors.New("event already exists")
	}

	r.ids[e.ID] = struct{}{}
	r.items = append(r.items, e)
	return nil
}

func (r *eventRepo) ListByPet(ctx context.Context, petID string) ([]events.PetEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]events.PetEvent, 0)
	for _, e := range r.items {
		if e.PetID == petID {
			out = append(out, e)
		}
	}

	// Orden cronológico; empates por orden de inserción.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccurredAt.Before(out[j].OccurredAt)
	})
	return out, nil
}
