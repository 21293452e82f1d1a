package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/Ventas-api/pkg/config"
)

// Nombres de colecciones.
const (
	usersCollection    = "users"
	productsCollection = "products"
	clientsCollection  = "clients"
	ordersCollection   = "orders"
)

// Connect abre la conexión a MongoDB y verifica con un ping.
// El caller es responsable de Disconnect al apagar.
func Connect(ctx context.Context, cfg config.DBConfig) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(10 * time.Second)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("conectar a MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}
	return client.Database(cfg.Database), nil
}

// EnsureIndexes crea los índices que el dominio asume:
//   - users.email y clients.email únicos (chequeo de duplicados en registro)
//   - índice de texto sobre products.name (searchProduct)
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("índice users.email: %w", err)
	}

	_, err = db.Collection(clientsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("índice clients.email: %w", err)
	}

	_, err = db.Collection(productsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: "text"}},
	})
	if err != nil {
		return fmt.Errorf("índice de texto products.name: %w", err)
	}
	return nil
}
