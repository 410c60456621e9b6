package foundpets

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
	"findmypet/internal/domain/shelters"
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
	dateOnly            = "2006-01-02"
)

// ShelterLookup resuelve el refugio por nombre (shelters.Service la implementa).
type ShelterLookup interface {
	FindByName(ctx context.Context, name string) (shelters.Shelter, error)
}

type EventRecorder interface {
	Record(ctx context.Context, in events.RecordInput) (events.PetEvent, error)
}

type Service struct {
	repo     Repository
	shelters ShelterLookup
	media    media.Store
	events   EventRecorder
	log      logger.Logger

	urlTTL time.Duration
	now    func() time.Time
}

func NewService(repo Repository, lookup ShelterLookup, store media.Store, rec EventRecorder, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:     repo,
		shelters: lookup,
		media:    store,
		events:   rec,
		log:      log,
		urlTTL:   DefaultSignedURLTTL,
		now:      time.Now,
	}
}

func (s *Service) WithSignedURLTTL(ttl time.Duration) *Service {
	if ttl > 0 {
		s.urlTTL = ttl
	}
	return s
}

type RegisterInput struct {
	Location string // JSON {latitude, longitude}
	Date     string // RFC3339 o YYYY-MM-DD
	Shelter  string
}

func (s *Service) Register(ctx context.Context, in RegisterInput, picture *media.File) (FoundPet, error) {
	shelter := strings.TrimSpace(in.Shelter)
	if strings.TrimSpace(in.Location) == "" || strings.TrimSpace(in.Date) == "" || shelter == "" {
		return FoundPet{}, fmt.Errorf("%w: location, date, shelter", ErrMissingField)
	}
	if picture == nil || len(picture.Data) == 0 {
		return FoundPet{}, fmt.Errorf("%w: picture", ErrMissingField)
	}

	loc, err := parseLocation(in.Location)
	if err != nil {
		return FoundPet{}, err
	}
	date, err := parseDate(in.Date)
	if err != nil {
		return FoundPet{}, err
	}

	cid, err := s.media.Upload(ctx, *picture)
	if err != nil {
		return FoundPet{}, err
	}

	p := FoundPet{
		ID:        uuid.NewString(),
		Location:  loc,
		Date:      date,
		Shelter:   shelter,
		Picture:   cid,
		CreatedAt: s.now(),
		Status:    StatusFound,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return FoundPet{}, err
	}

	s.record(ctx, p.ID, events.EventTypeRegistered, events.Actor{Type: events.ActorTypeAnonymous})
	return p, nil
}

func parseLocation(raw string) (Location, error) {
	var lp struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &lp); err != nil {
		return Location{}, fmt.Errorf("%w: location: %v", ErrMalformedInput, err)
	}
	if lp.Latitude == nil || lp.Longitude == nil {
		return Location{}, fmt.Errorf("%w: location needs latitude and longitude", ErrMalformedInput)
	}
	return Location{Latitude: *lp.Latitude, Longitude: *lp.Longitude}, nil
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(dateOnly, raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: date must be RFC3339 or YYYY-MM-DD", ErrMalformedInput)
}

// Listed agrega URL firmada y datos del refugio; ambos nil si no se pudieron resolver.
type Listed struct {
	Pet        FoundPet
	PictureURL *string
	Shelter    *shelters.Shelter
}

// ListAll devuelve solo las mascotas en estado found.
func (s *Service) ListAll(ctx context.Context) ([]Listed, error) {
	items, err := s.repo.ListByStatus(ctx, StatusFound)
	if err != nil {
		return nil, err
	}

	out := make([]Listed, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)
	for i, p := range items {
		i, p := i, p
		out[i].Pet = p
		g.Go(func() error {
			out[i].PictureURL = s.signedURL(gctx, p)
			out[i].Shelter = s.lookupShelter(gctx, p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) signedURL(ctx context.Context, p FoundPet) *string {
	if p.Picture == "" {
		return nil
	}
	url, err := s.media.SignedURL(ctx, p.Picture, s.urlTTL)
	if err != nil {
		s.log.Warn("sign picture url failed", map[string]any{"pet_id": p.ID, "err": err})
		return nil
	}
	return &url
}

func (s *Service) lookupShelter(ctx context.Context, p FoundPet) *shelters.Shelter {
	if s.shelters == nil || p.Shelter == "" {
		return nil
	}
	sh, err := s.shelters.FindByName(ctx, p.Shelter)
	if err != nil {
		if !errors.Is(err, shelters.ErrNotFound) {
			s.log.Warn("shelter lookup failed", map[string]any{"pet_id": p.ID, "shelter": p.Shelter, "err": err})
		}
		return nil
	}
	return &sh
}

// Claim lo hace cualquier usuario autenticado, solo desde found.
func (s *Service) Claim(ctx context.Context, userID, petID string) (FoundPet, error) {
	userID = strings.TrimSpace(userID)
	petID = strings.TrimSpace(petID)
	if userID == "" {
		return FoundPet{}, ErrForbidden
	}
	if petID == "" {
		return FoundPet{}, ErrNotFound
	}

	p, err := s.repo.GetByID(ctx, petID)
	if err != nil {
		return FoundPet{}, err
	}
	if p.Status != StatusFound {
		return FoundPet{}, ErrConflict
	}

	updated, err := s.repo.Claim(ctx, petID, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return FoundPet{}, ErrConflict
		}
		return FoundPet{}, err
	}

	s.record(ctx, petID, events.EventTypeClaimed, events.Actor{Type: events.ActorTypeUser, ID: userID})
	return updated, nil
}

func (s *Service) record(ctx context.Context, petID string, typ events.EventType, actor events.Actor) {
	if s.events == nil {
		return
	}
	_, err := s.events.Record(ctx, events.RecordInput{
		PetID:   petID,
		PetKind: events.PetKindFound,
		Type:    typ,
		Actor:   actor,
	})
	if err != nil {
		s.log.Warn("record pet event failed", map[string]any{"pet_id": petID, "type": string(typ), "err": err})
	}
}
