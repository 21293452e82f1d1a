package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User representa un vendedor registrado. Inmutable después del registro:
// el sistema no expone update/delete para usuarios.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	LastName string             `bson:"lastname"`
	Email    string             `bson:"email"` // único
	Password string             `bson:"password"` // hash bcrypt, nunca en claro después de persistir
	Created  time.Time          `bson:"created"`
}
