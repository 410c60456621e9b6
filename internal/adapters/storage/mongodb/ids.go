package mongodb

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// bsonOptions: los documentos heredados guardan _id, userId y pets como ObjectID;
// se decodifican a su forma hex para que los repos trabajen siempre con string.
var bsonOptions = &options.BSONOptions{ObjectIDAsHexString: true}

// idValue arma el valor de filtro para un id. Si el id es un ObjectID hex válido
// matchea tanto el string como el ObjectID.
func idValue(id string) any {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return id
	}
	return bson.D{{Key: "$in", Value: bson.A{id, oid}}}
}
