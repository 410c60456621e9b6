package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"findmypet/internal/domain/missingpets"
)

type locationDoc struct {
	Latitude  float64 `bson:"latitude"`
	Longitude float64 `bson:"longitude"`
}

type missingPetDoc struct {
	ID                string      `bson:"_id"`
	Name              string      `bson:"name"`
	Age               string      `bson:"age"`
	Breed             string      `bson:"breed"`
	Color             string      `bson:"color"`
	Gender            string      `bson:"gender"`
	Description       string      `bson:"description"`
	LastKnownLocation locationDoc `bson:"lastKnownLocation"`
	Image             string      `bson:"image"`
	UserID            string      `bson:"userId"`
	CreatedAt         time.Time   `bson:"createdAt"`
	Status            string      `bson:"status"`
}

func missingPetToDoc(p missingpets.MissingPet) missingPetDoc {
	return missingPetDoc{
		ID:          p.ID,
		Name:        p.Name,
		Age:         p.Age,
		Breed:       p.Breed,
		Color:       p.Color,
		Gender:      p.Gender,
		Description: p.Description,
		LastKnownLocation: locationDoc{
			Latitude:  p.LastKnownLocation.Latitude,
			Longitude: p.LastKnownLocation.Longitude,
		},
		Image:     p.Image,
		UserID:    p.UserID,
		CreatedAt: p.CreatedAt,
		Status:    string(p.Status),
	}
}

func (d missingPetDoc) toDomain() missingpets.MissingPet {
	return missingpets.MissingPet{
		ID:          d.ID,
		Name:        d.Name,
		Age:         d.Age,
		Breed:       d.Breed,
		Color:       d.Color,
		Gender:      d.Gender,
		Description: d.Description,
		LastKnownLocation: missingpets.Location{
			Latitude:  d.LastKnownLocation.Latitude,
			Longitude: d.LastKnownLocation.Longitude,
		},
		Image:     d.Image,
		UserID:    d.UserID,
		CreatedAt: d.CreatedAt,
		Status:    missingpets.Status(d.Status),
	}
}

type MissingPetsRepo struct {
	coll *mongo.Collection
}

func NewMissingPetsRepo(d *DB) *MissingPetsRepo {
	return &MissingPetsRepo{coll: d.db.Collection(missingPetsCollection)}
}

func (r *MissingPetsRepo) Create(ctx context.Context, p missingpets.MissingPet) error {
	_, err := r.coll.InsertOne(ctx, missingPetToDoc(p))
	return err
}

func (r *MissingPetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: idValue(id)}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return missingpets.ErrNotFound
	}
	return nil
}

func (r *MissingPetsRepo) GetByID(ctx context.Context, id string) (missingpets.MissingPet, error) {
	var doc missingPetDoc
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: idValue(id)}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return missingpets.MissingPet{}, missingpets.ErrNotFound
		}
		return missingpets.MissingPet{}, err
	}
	return doc.toDomain(), nil
}

func (r *MissingPetsRepo) ListAll(ctx context.Context) ([]missingpets.MissingPet, error) {
	return r.find(ctx, bson.D{})
}

func (r *MissingPetsRepo) ListByOwner(ctx context.Context, userID string) ([]missingpets.MissingPet, error) {
	return r.find(ctx, bson.D{{Key: "userId", Value: idValue(userID)}})
}

func (r *MissingPetsRepo) find(ctx context.Context, filter bson.D) ([]missingpets.MissingPet, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}

	var docs []missingPetDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]missingpets.MissingPet, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *MissingPetsRepo) UpdateStatus(ctx context.Context, id string, from, to missingpets.Status) (missingpets.MissingPet, error) {
	var doc missingPetDoc
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: idValue(id)}, {Key: "status", Value: string(from)}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: string(to)}}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return missingpets.MissingPet{}, missingpets.ErrNotFound
		}
		return missingpets.MissingPet{}, err
	}
	return doc.toDomain(), nil
}
