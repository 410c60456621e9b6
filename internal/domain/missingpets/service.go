package missingpets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"findmypet/internal/domain/events"
	"findmypet/internal/platform/logger"
	"findmypet/internal/ports/media"
)

var (
	ErrMissingField   = errors.New("missing required field")
	ErrMalformedInput = errors.New("malformed input")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("invalid status transition")
)

const (
	DefaultSignedURLTTL = time.Hour
	enrichConcurrency   = 8
)

// OwnerPets mantiene la lista de mascotas del dueño (users.Service la implementa).
type OwnerPets interface {
	AppendPet(ctx context.Context, userID, petID string) error
}

type EventRecorder interface {
	Record(ctx context.Context, in events.RecordInput) (events.PetEvent, error)
}

type Service struct {
	repo   Repository
	owners OwnerPets
	media  media.Store
	events EventRecorder
	log    logger.Logger

	urlTTL time.Duration
	now    func() time.Time
}

func NewService(repo Repository, owners OwnerPets, store media.Store, rec EventRecorder, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:   repo,
		owners: owners,
		media:  store,
		events: rec,
		log:    log,
		urlTTL: DefaultSignedURLTTL,
		now:    time.Now,
	}
}

// WithSignedURLTTL ajusta la vigencia de las URLs firmadas de los listados.
func (s *Service) WithSignedURLTTL(ttl time.Duration) *Service {
	if ttl > 0 {
		s.urlTTL = ttl
	}
	return s
}

type RegisterInput struct {
	Name        string
	Age         string
	Breed       string
	Color       string
	Gender      string
	Description string

	// LastKnownLocation llega como JSON en un campo de formulario.
	LastKnownLocation string
}

type locationPayload struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (s *Service) Register(ctx context.Context, ownerID string, in RegisterInput, image *media.File) (MissingPet, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return MissingPet{}, ErrForbidden
	}
	if image == nil || len(image.Data) == 0 {
		return MissingPet{}, fmt.Errorf("%w: image", ErrMissingField)
	}

	loc, err := parseLocation(in.LastKnownLocation)
	if err != nil {
		return MissingPet{}, err
	}

	cid, err := s.media.Upload(ctx, *image)
	if err != nil {
		return MissingPet{}, err
	}

	p := MissingPet{
		ID:                uuid.NewString(),
		Name:              strings.TrimSpace(in.Name),
		Age:               strings.TrimSpace(in.Age),
		Breed:             strings.TrimSpace(in.Breed),
		Color:             strings.TrimSpace(in.Color),
		Gender:            strings.TrimSpace(in.Gender),
		Description:       strings.TrimSpace(in.Description),
		LastKnownLocation: loc,
		Image:             cid,
		UserID:            ownerID,
		CreatedAt:         s.now(),
		Status:            StatusMissing,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return MissingPet{}, err
	}

	if err := s.owners.AppendPet(ctx, ownerID, p.ID); err != nil {
		// Sin back-reference la mascota queda huérfana: se revierte el insert.
		if delErr := s.repo.Delete(ctx, p.ID); delErr != nil {
			s.log.Error("compensating delete failed", map[string]any{"pet_id": p.ID, "err": delErr})
		}
		return MissingPet{}, fmt.Errorf("append pet to owner: %w", err)
	}

	s.record(ctx, p.ID, events.EventTypeRegistered, ownerID)
	return p, nil
}

func parseLocation(raw string) (Location, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Location{}, fmt.Errorf("%w: lastKnownLocation", ErrMalformedInput)
	}
	var lp locationPayload
	if err := json.Unmarshal([]byte(raw), &lp); err != nil {
		return Location{}, fmt.Errorf("%w: lastKnownLocation: %v", ErrMalformedInput, err)
	}
	if lp.Latitude == nil || lp.Longitude == nil {
		return Location{}, fmt.Errorf("%w: lastKnownLocation needs latitude and longitude", ErrMalformedInput)
	}
	return Location{Latitude: *lp.Latitude, Longitude: *lp.Longitude}, nil
}

// Listed es una mascota con su URL de imagen firmada (nil si la firma falló).
type Listed struct {
	Pet      MissingPet
	ImageURL *string
}

func (s *Service) ListAll(ctx context.Context) ([]Listed, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, items)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Listed, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrForbidden
	}
	items, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, items)
}

func (s *Service) enrich(ctx context.Context, items []MissingPet) ([]Listed, error) {
	out := make([]Listed, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)
	for i, p := range items {
		i, p := i, p
		out[i].Pet = p
		if p.Image == "" {
			continue
		}
		g.Go(func() error {
			url, err := s.media.SignedURL(gctx, p.Image, s.urlTTL)
			if err != nil {
				s.log.Warn("sign image url failed", map[string]any{"pet_id": p.ID, "err": err})
				return nil
			}
			out[i].ImageURL = &url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkReunited: solo el dueño, y solo desde "missing".
func (s *Service) MarkReunited(ctx context.Context, ownerID, petID string) (MissingPet, error) {
	ownerID = strings.TrimSpace(ownerID)
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return MissingPet{}, ErrNotFound
	}

	p, err := s.repo.GetByID(ctx, petID)
	if err != nil {
		return MissingPet{}, err
	}
	if ownerID == "" || p.UserID != ownerID {
		return MissingPet{}, ErrForbidden
	}
	if p.Status != StatusMissing {
		return MissingPet{}, ErrConflict
	}

	updated, err := s.repo.UpdateStatus(ctx, petID, StatusMissing, StatusReunited)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// otro request ganó la transición
			return MissingPet{}, ErrConflict
		}
		return MissingPet{}, err
	}

	s.record(ctx, petID, events.EventTypeReunited, ownerID)
	return updated, nil
}

func (s *Service) record(ctx context.Context, petID string, typ events.EventType, ownerID string) {
	if s.events == nil {
		return
	}
	_, err := s.events.Record(ctx, events.RecordInput{
		PetID:   petID,
		PetKind: events.PetKindMissing,
		Type:    typ,
		Actor:   events.Actor{Type: events.ActorTypeOwnerUser, ID: ownerID},
	})
	if err != nil {
		s.log.Warn("record pet event failed", map[string]any{"pet_id": petID, "type": string(typ), "err": err})
	}
}
