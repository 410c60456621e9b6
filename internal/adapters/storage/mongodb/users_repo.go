package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"findmypet/internal/domain/users"
)

type userDoc struct {
	ID        string    `bson:"_id"`
	Email     string    `bson:"email"`
	Password  string    `bson:"password"`
	CreatedAt time.Time `bson:"createdAt"`
	Pets      []string  `bson:"pets"`

	// created_at es el campo de los documentos heredados; solo se lee.
	LegacyCreatedAt time.Time `bson:"created_at,omitempty"`
}

func (d userDoc) toDomain() users.User {
	pets := d.Pets
	if pets == nil {
		pets = []string{}
	}
	createdAt := d.CreatedAt
	if createdAt.IsZero() {
		createdAt = d.LegacyCreatedAt
	}
	return users.User{
		ID:           d.ID,
		Email:        d.Email,
		PasswordHash: d.Password,
		CreatedAt:    createdAt,
		Pets:         pets,
	}
}

type UsersRepo struct {
	coll *mongo.Collection
}

func NewUsersRepo(d *DB) *UsersRepo {
	return &UsersRepo{coll: d.db.Collection(usersCollection)}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	pets := u.Pets
	if pets == nil {
		pets = []string{}
	}
	_, err := r.coll.InsertOne(ctx, userDoc{
		ID:        u.ID,
		Email:     u.Email,
		Password:  u.PasswordHash,
		CreatedAt: u.CreatedAt,
		Pets:      pets,
	})
	if mongo.IsDuplicateKeyError(err) {
		return users.ErrDuplicateEmail
	}
	return err
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: idValue(id)}})
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (r *UsersRepo) findOne(ctx context.Context, filter bson.D) (users.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	return doc.toDomain(), nil
}

func (r *UsersRepo) AppendPet(ctx context.Context, userID, petID string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: idValue(userID)}},
		bson.D{{Key: "$push", Value: bson.D{{Key: "pets", Value: petID}}}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return users.ErrNotFound
	}
	return nil
}
