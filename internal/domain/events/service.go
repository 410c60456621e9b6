package events

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type RecordInput struct {
	PetID   string
	PetKind PetKind
	Type    EventType
	Actor   Actor
}

func (s *Service) Record(ctx context.Context, in RecordInput) (PetEvent, error) {
	petID := strings.TrimSpace(in.PetID)
	if petID == "" || in.PetKind == "" || in.Type == "" {
		return PetEvent{}, ErrInvalidInput
	}

	actor := in.Actor
	actor.ID = strings.TrimSpace(actor.ID)
	if actor.Type == "" {
		actor.Type = ActorTypeAnonymous
	}
	if actor.Type != ActorTypeAnonymous && actor.ID == "" {
		return PetEvent{}, ErrInvalidInput
	}

	e := PetEvent{
		ID:         uuid.NewString(),
		PetID:      petID,
		PetKind:    in.PetKind,
		Type:       in.Type,
		OccurredAt: s.now(),
		Actor:      actor,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return PetEvent{}, err
	}
	return e, nil
}

func (s *Service) ListByPet(ctx context.Context, petID string) ([]PetEvent, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByPet(ctx, petID)
}
