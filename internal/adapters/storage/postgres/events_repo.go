package postgres

import (
	"context"
	"database/sql"
	"strings"

	"findmypet/internal/domain/events"
)

type EventsRepo struct {
	db *sql.DB
}

func NewEventsRepo(db *sql.DB) *EventsRepo {
	return &EventsRepo{db: db}
}

func (r *EventsRepo) Create(ctx context.Context, e events.PetEvent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pet_events (
			id, pet_id, pet_kind,
			type, occurred_at,
			actor_type, actor_id
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		e.ID,
		e.PetID,
		string(e.PetKind),
		string(e.Type),
		e.OccurredAt,
		string(e.Actor.Type),
		e.Actor.ID,
	)
	return err
}

func (r *EventsRepo) ListByPet(ctx context.Context, petID string) ([]events.PetEvent, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return []events.PetEvent{}, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, pet_kind, type, occurred_at, actor_type, actor_id
		FROM pet_events
		WHERE pet_id = $1
		ORDER BY occurred_at ASC, seq ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]events.PetEvent, 0)
	for rows.Next() {
		var e events.PetEvent
		var kind, typ, actorType string
		if err := rows.Scan(
			&e.ID,
			&e.PetID,
			&kind,
			&typ,
			&e.OccurredAt,
			&actorType,
			&e.Actor.ID,
		); err != nil {
			return nil, err
		}
		e.PetKind = events.PetKind(kind)
		e.Type = events.EventType(typ)
		e.Actor.Type = events.ActorType(actorType)
		out = append(out, e)
	}
	return out, rows.Err()
}
