package storage

import (
	"context"
	"fmt"

	"findmypet/internal/adapters/storage/memory"
	"findmypet/internal/adapters/storage/mongodb"
	"findmypet/internal/adapters/storage/postgres"
	"findmypet/internal/domain/events"
	"findmypet/internal/domain/foundpets"
	"findmypet/internal/domain/missingpets"
	"findmypet/internal/domain/shelters"
	"findmypet/internal/domain/users"
	"findmypet/internal/platform/config"
)

// Stores agrupa los repositorios de un mismo backend.
type Stores struct {
	Driver string

	Users       users.Repository
	MissingPets missingpets.Repository
	FoundPets   foundpets.Repository
	Shelters    shelters.Repository
	Events      events.Repository

	close func(ctx context.Context) error
}

func (s *Stores) Close(ctx context.Context) error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close(ctx)
}

func NewMemory() *Stores {
	return &Stores{
		Driver:      config.DriverMemory,
		Users:       memory.NewUserRepo(),
		MissingPets: memory.NewMissingPetRepo(),
		FoundPets:   memory.NewFoundPetRepo(),
		Shelters:    memory.NewShelterRepo(),
		Events:      memory.NewEventRepo(),
	}
}

// Open abre el backend elegido en cfg.StoreDriver y prepara su esquema/índices.
func Open(ctx context.Context, cfg *config.Config) (*Stores, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		d, err := mongodb.Open(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		if err := d.EnsureIndexes(ctx); err != nil {
			_ = d.Close(ctx)
			return nil, err
		}
		return &Stores{
			Driver:      config.DriverMongo,
			Users:       mongodb.NewUsersRepo(d),
			MissingPets: mongodb.NewMissingPetsRepo(d),
			FoundPets:   mongodb.NewFoundPetsRepo(d),
			Shelters:    mongodb.NewSheltersRepo(d),
			Events:      mongodb.NewEventsRepo(d),
			close:       d.Close,
		}, nil

	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &Stores{
			Driver:      config.DriverPostgres,
			Users:       postgres.NewUsersRepo(db),
			MissingPets: postgres.NewMissingPetsRepo(db),
			FoundPets:   postgres.NewFoundPetsRepo(db),
			Shelters:    postgres.NewSheltersRepo(db),
			Events:      postgres.NewEventsRepo(db),
			close:       func(context.Context) error { return db.Close() },
		}, nil

	case config.DriverMemory, "":
		return NewMemory(), nil

	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.StoreDriver)
	}
}
