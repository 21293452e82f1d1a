package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client representa un cliente de la cartera de un vendedor. Seller es el
// vendedor propietario: solo él puede leerlo, actualizarlo o eliminarlo.
type Client struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	LastName string             `bson:"lastname"`
	Company  string             `bson:"company"`
	Email    string             `bson:"email"` // único global
	Phone    string             `bson:"phone,omitempty"`
	Seller   primitive.ObjectID `bson:"seller"`
	Created  time.Time          `bson:"created"`
}
