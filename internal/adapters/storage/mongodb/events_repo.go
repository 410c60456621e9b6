package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"findmypet/internal/domain/events"
)

type actorDoc struct {
	Type string `bson:"type"`
	ID   string `bson:"id,omitempty"`
}

type eventDoc struct {
	ID         string    `bson:"_id"`
	PetID      string    `bson:"petId"`
	PetKind    string    `bson:"petKind"`
	Type       string    `bson:"type"`
	OccurredAt time.Time `bson:"occurredAt"`
	Actor      actorDoc  `bson:"actor"`
}

type EventsRepo struct {
	coll *mongo.Collection
}

func NewEventsRepo(d *DB) *EventsRepo {
	return &EventsRepo{coll: d.db.Collection(eventsCollection)}
}

func (r *EventsRepo) Create(ctx context.Context, e events.PetEvent) error {
	_, err := r.coll.InsertOne(ctx, eventDoc{
		ID:         e.ID,
		PetID:      e.PetID,
		PetKind:    string(e.PetKind),
		Type:       string(e.Type),
		OccurredAt: e.OccurredAt,
		Actor:      actorDoc{Type: string(e.Actor.Type), ID: e.Actor.ID},
	})
	return err
}

func (r *EventsRepo) ListByPet(ctx context.Context, petID string) ([]events.PetEvent, error) {
	cur, err := r.coll.Find(ctx,
		bson.D{{Key: "petId", Value: petID}},
		options.Find().SetSort(bson.D{{Key: "occurredAt", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}

	var docs []eventDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]events.PetEvent, 0, len(docs))
	for _, d := range docs {
		out = append(out, events.PetEvent{
			ID:         d.ID,
			PetID:      d.PetID,
			PetKind:    events.PetKind(d.PetKind),
			Type:       events.EventType(d.Type),
			OccurredAt: d.OccurredAt,
			Actor:      events.Actor{Type: events.ActorType(d.Actor.Type), ID: d.Actor.ID},
		})
	}
	return out, nil
}
