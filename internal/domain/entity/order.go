package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Estados de Order. No se imponen reglas de transición: update puede fijar
// cualquier valor.
const (
	OrderStatePending   = "PENDING"
	OrderStateCompleted = "COMPLETED"
	OrderStateCancelled = "CANCELLED"
)

// ValidOrderState reporta si s es un estado de pedido conocido.
func ValidOrderState(s string) bool {
	return s == OrderStatePending || s == OrderStateCompleted || s == OrderStateCancelled
}

// OrderLine es un renglón del pedido. Name y Price se desnormalizan del
// producto al momento de crear el pedido.
type OrderLine struct {
	ID     primitive.ObjectID `bson:"id"` // referencia al producto
	Amount int                `bson:"amount"`
	Name   string             `bson:"name"`
	Price  float64            `bson:"price"`
}

// Order representa un pedido de un cliente, propiedad del vendedor que lo
// creó (debe coincidir con el dueño del cliente al crearlo).
type Order struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Lines   []OrderLine        `bson:"order"`
	Total   float64            `bson:"total"`
	Client  primitive.ObjectID `bson:"client"`
	Seller  primitive.ObjectID `bson:"seller"`
	State   string             `bson:"state"`
	Created time.Time          `bson:"created"`
}

// TopClient resultado de la agregación bestClients: total vendido por cliente
// (solo pedidos COMPLETED). Client viene del $lookup, de ahí el slice.
type TopClient struct {
	Total  float64  `bson:"total"`
	Client []Client `bson:"client"`
}

// TopSeller resultado de la agregación bestSellers.
type TopSeller struct {
	Total  float64 `bson:"total"`
	Seller []User  `bson:"seller"`
}
