package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"findmypet/internal/domain/shelters"
)

type shelterDoc struct {
	ID      string `bson:"_id"`
	Name    string `bson:"name"`
	Address string `bson:"address"`
	Phone   string `bson:"phone"`
	Website string `bson:"website"`
}

func (d shelterDoc) toDomain() shelters.Shelter {
	return shelters.Shelter{
		ID:      d.ID,
		Name:    d.Name,
		Address: d.Address,
		Phone:   d.Phone,
		Website: d.Website,
	}
}

type SheltersRepo struct {
	coll *mongo.Collection
}

func NewSheltersRepo(d *DB) *SheltersRepo {
	return &SheltersRepo{coll: d.db.Collection(sheltersCollection)}
}

func (r *SheltersRepo) List(ctx context.Context) ([]shelters.Shelter, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}

	var docs []shelterDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]shelters.Shelter, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *SheltersRepo) GetByID(ctx context.Context, id string) (shelters.Shelter, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: idValue(id)}})
}

func (r *SheltersRepo) FindByName(ctx context.Context, name string) (shelters.Shelter, error) {
	return r.findOne(ctx, bson.D{{Key: "name", Value: name}})
}

func (r *SheltersRepo) findOne(ctx context.Context, filter bson.D) (shelters.Shelter, error) {
	var doc shelterDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return shelters.Shelter{}, shelters.ErrNotFound
		}
		return shelters.Shelter{}, err
	}
	return doc.toDomain(), nil
}

// InsertIfEmpty hace upsert por nombre; el índice único sobre name evita
// duplicados si dos procesos siembran a la vez.
func (r *SheltersRepo) InsertIfEmpty(ctx context.Context, s shelters.Shelter) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "name", Value: s.Name}},
		bson.D{{Key: "$setOnInsert", Value: shelterDoc{
			ID:      s.ID,
			Name:    s.Name,
			Address: s.Address,
			Phone:   s.Phone,
			Website: s.Website,
		}}},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}
	return res.UpsertedCount > 0, nil
}
