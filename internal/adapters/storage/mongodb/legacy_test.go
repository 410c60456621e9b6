package mongodb

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"findmypet/internal/domain/missingpets"
)

func decodeWithClientOptions(t *testing.T, doc bson.M, dest any) {
	t.Helper()
	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	dec := bson.NewDecoder(bson.NewDocumentReader(bytes.NewReader(raw)))
	if bsonOptions.ObjectIDAsHexString {
		dec.ObjectIDAsHexString()
	}
	require.NoError(t, dec.Decode(dest))
}

func TestIDValue(t *testing.T) {
	assert.Equal(t, "not-hex", idValue("not-hex"))

	oid := bson.NewObjectID()
	got, ok := idValue(oid.Hex()).(bson.D)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "$in", got[0].Key)
	assert.Equal(t, bson.A{oid.Hex(), oid}, got[0].Value)
}

func TestDecode_LegacyObjectIDDocuments(t *testing.T) {
	shelterID := bson.NewObjectID()
	var sh shelterDoc
	decodeWithClientOptions(t, bson.M{"_id": shelterID, "name": "Old"}, &sh)
	assert.Equal(t, shelterID.Hex(), sh.ID)
	assert.Equal(t, "Old", sh.Name)

	userID, petID := bson.NewObjectID(), bson.NewObjectID()
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	var u userDoc
	decodeWithClientOptions(t, bson.M{
		"_id":        userID,
		"email":      "Ana@x.com",
		"password":   "hash",
		"created_at": created,
		"pets":       bson.A{petID},
	}, &u)
	dom := u.toDomain()
	assert.Equal(t, userID.Hex(), dom.ID)
	assert.Equal(t, []string{petID.Hex()}, dom.Pets)
	assert.True(t, created.Equal(dom.CreatedAt))

	var p missingPetDoc
	decodeWithClientOptions(t, bson.M{"_id": petID, "userId": userID, "status": "missing"}, &p)
	assert.Equal(t, petID.Hex(), p.ID)
	assert.Equal(t, userID.Hex(), p.UserID)
}

func TestRepos_ReadLegacyDocuments(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	userID, petID, shelterID := bson.NewObjectID(), bson.NewObjectID(), bson.NewObjectID()
	_, err := d.Database().Collection(usersCollection).InsertOne(ctx, bson.M{
		"_id": userID, "email": "legacy@x.com", "password": "hash", "created_at": time.Now().UTC(),
	})
	require.NoError(t, err)
	_, err = d.Database().Collection(missingPetsCollection).InsertOne(ctx, bson.M{
		"_id": petID, "name": "Old", "userId": userID, "image": "cid",
		"lastKnownLocation": bson.M{"latitude": 1.0, "longitude": 2.0},
		"createdAt":         time.Now().UTC(), "status": "missing",
	})
	require.NoError(t, err)
	_, err = d.Database().Collection(sheltersCollection).InsertOne(ctx, bson.M{"_id": shelterID, "name": "Old Shelter"})
	require.NoError(t, err)

	usersRepo := NewUsersRepo(d)
	u, err := usersRepo.GetByEmail(ctx, "legacy@x.com")
	require.NoError(t, err)
	assert.Equal(t, userID.Hex(), u.ID)
	require.NoError(t, usersRepo.AppendPet(ctx, u.ID, "new-pet"))

	petsRepo := NewMissingPetsRepo(d)
	owned, err := petsRepo.ListByOwner(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, petID.Hex(), owned[0].ID)

	updated, err := petsRepo.UpdateStatus(ctx, petID.Hex(), missingpets.StatusMissing, missingpets.StatusReunited)
	require.NoError(t, err)
	assert.Equal(t, missingpets.StatusReunited, updated.Status)

	sh, err := NewSheltersRepo(d).GetByID(ctx, shelterID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Old Shelter", sh.Name)
}
