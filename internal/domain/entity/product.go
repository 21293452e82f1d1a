package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product representa un producto del catálogo compartido (sin dueño).
// Existence es la existencia en stock; nunca debe quedar negativa.
type Product struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Existence int                `bson:"existence"`
	Price     float64            `bson:"price"`
	Created   time.Time          `bson:"created"`
}
