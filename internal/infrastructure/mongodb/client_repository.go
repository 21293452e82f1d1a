package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación del puerto ClientRepository sobre MongoDB.
type ClientRepo struct {
	col *mongo.Collection
}

// NewClientRepository construye el adaptador de persistencia para clientes.
func NewClientRepository(db *mongo.Database) *ClientRepo {
	return &ClientRepo{col: db.Collection(clientsCollection)}
}

// Create persiste un nuevo cliente. Genera el ObjectID si viene vacío.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	if client.ID.IsZero() {
		client.ID = primitive.NewObjectID()
	}
	if _, err := r.col.InsertOne(ctx, client); err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var c entity.Client
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// GetByEmail obtiene un cliente por email (único global).
func (r *ClientRepo) GetByEmail(ctx context.Context, email string) (*entity.Client, error) {
	var c entity.Client
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client by email: %w", err)
	}
	return &c, nil
}

// List devuelve todos los clientes.
func (r *ClientRepo) List(ctx context.Context) ([]*entity.Client, error) {
	return r.list(ctx, bson.M{})
}

// ListBySeller devuelve los clientes del vendedor.
func (r *ClientRepo) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Client, error) {
	oid, err := primitive.ObjectIDFromHex(sellerID)
	if err != nil {
		return nil, nil
	}
	return r.list(ctx, bson.M{"seller": oid})
}

// Update reemplaza el documento del cliente.
func (r *ClientRepo) Update(ctx context.Context, client *entity.Client) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": client.ID}, client)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

func (r *ClientRepo) list(ctx context.Context, filter bson.M) ([]*entity.Client, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	var list []*entity.Client
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode clients: %w", err)
	}
	return list, nil
}
