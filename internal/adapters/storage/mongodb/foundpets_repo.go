package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"findmypet/internal/domain/foundpets"
)

type foundPetDoc struct {
	ID        string      `bson:"_id"`
	Location  locationDoc `bson:"location"`
	Date      time.Time   `bson:"date"`
	Shelter   string      `bson:"shelter"`
	Picture   string      `bson:"picture"`
	CreatedAt time.Time   `bson:"createdAt"`
	Status    string      `bson:"status"`
	ClaimedBy string      `bson:"claimedBy,omitempty"`
}

func (d foundPetDoc) toDomain() foundpets.FoundPet {
	return foundpets.FoundPet{
		ID:        d.ID,
		Location:  foundpets.Location{Latitude: d.Location.Latitude, Longitude: d.Location.Longitude},
		Date:      d.Date,
		Shelter:   d.Shelter,
		Picture:   d.Picture,
		CreatedAt: d.CreatedAt,
		Status:    foundpets.Status(d.Status),
		ClaimedBy: d.ClaimedBy,
	}
}

type FoundPetsRepo struct {
	coll *mongo.Collection
}

func NewFoundPetsRepo(d *DB) *FoundPetsRepo {
	return &FoundPetsRepo{coll: d.db.Collection(foundPetsCollection)}
}

func (r *FoundPetsRepo) Create(ctx context.Context, p foundpets.FoundPet) error {
	_, err := r.coll.InsertOne(ctx, foundPetDoc{
		ID:        p.ID,
		Location:  locationDoc{Latitude: p.Location.Latitude, Longitude: p.Location.Longitude},
		Date:      p.Date,
		Shelter:   p.Shelter,
		Picture:   p.Picture,
		CreatedAt: p.CreatedAt,
		Status:    string(p.Status),
		ClaimedBy: p.ClaimedBy,
	})
	return err
}

func (r *FoundPetsRepo) GetByID(ctx context.Context, id string) (foundpets.FoundPet, error) {
	var doc foundPetDoc
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: idValue(id)}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return foundpets.FoundPet{}, foundpets.ErrNotFound
		}
		return foundpets.FoundPet{}, err
	}
	return doc.toDomain(), nil
}

func (r *FoundPetsRepo) ListByStatus(ctx context.Context, status foundpets.Status) ([]foundpets.FoundPet, error) {
	cur, err := r.coll.Find(ctx,
		bson.D{{Key: "status", Value: string(status)}},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}

	var docs []foundPetDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]foundpets.FoundPet, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *FoundPetsRepo) Claim(ctx context.Context, id, userID string) (foundpets.FoundPet, error) {
	var doc foundPetDoc
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: idValue(id)}, {Key: "status", Value: string(foundpets.StatusFound)}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "status", Value: string(foundpets.StatusClaimed)},
			{Key: "claimedBy", Value: userID},
		}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return foundpets.FoundPet{}, foundpets.ErrNotFound
		}
		return foundpets.FoundPet{}, err
	}
	return doc.toDomain(), nil
}
