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

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre MongoDB,
// incluidas las agregaciones de reporte.
type OrderRepo struct {
	col *mongo.Collection
}

// NewOrderRepository construye el adaptador de persistencia para pedidos.
func NewOrderRepository(db *mongo.Database) *OrderRepo {
	return &OrderRepo{col: db.Collection(ordersCollection)}
}

// Create persiste un nuevo pedido. Genera el ObjectID si viene vacío.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	if _, err := r.col.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID. Devuelve (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var o entity.Order
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// List devuelve todos los pedidos.
func (r *OrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	return r.list(ctx, bson.M{})
}

// ListBySeller devuelve los pedidos del vendedor.
func (r *OrderRepo) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Order, error) {
	oid, err := primitive.ObjectIDFromHex(sellerID)
	if err != nil {
		return nil, nil
	}
	return r.list(ctx, bson.M{"seller": oid})
}

// ListBySellerAndState devuelve los pedidos del vendedor filtrados por estado.
func (r *OrderRepo) ListBySellerAndState(ctx context.Context, sellerID, state string) ([]*entity.Order, error) {
	oid, err := primitive.ObjectIDFromHex(sellerID)
	if err != nil {
		return nil, nil
	}
	return r.list(ctx, bson.M{"seller": oid, "state": state})
}

// Update reemplaza el documento del pedido.
func (r *OrderRepo) Update(ctx context.Context, order *entity.Order) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": order.ID}, order)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// Delete elimina un pedido por ID.
func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// DeleteByClient elimina todos los pedidos que referencian al cliente.
func (r *OrderRepo) DeleteByClient(ctx context.Context, clientID string) error {
	oid, err := primitive.ObjectIDFromHex(clientID)
	if err != nil {
		return nil
	}
	if _, err := r.col.DeleteMany(ctx, bson.M{"client": oid}); err != nil {
		return fmt.Errorf("delete orders by client: %w", err)
	}
	return nil
}

// TopClients agrega pedidos COMPLETED agrupados por cliente con $lookup a la
// colección clients. El $limit va ANTES del $sort de forma deliberada: se
// preserva el comportamiento literal del sistema original (ver DESIGN.md).
func (r *OrderRepo) TopClients(ctx context.Context, limit int) ([]*entity.TopClient, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"state": entity.OrderStateCompleted}}},
		{{Key: "$group", Value: bson.M{"_id": "$client", "total": bson.M{"$sum": "$total"}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         clientsCollection,
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "client",
		}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$sort", Value: bson.M{"total": -1}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate top clients: %w", err)
	}
	var rows []*entity.TopClient
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode top clients: %w", err)
	}
	return rows, nil
}

// TopSellers agrega pedidos COMPLETED agrupados por vendedor con $lookup a la
// colección users. Misma salvedad de $limit antes de $sort que TopClients.
func (r *OrderRepo) TopSellers(ctx context.Context, limit int) ([]*entity.TopSeller, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"state": entity.OrderStateCompleted}}},
		{{Key: "$group", Value: bson.M{"_id": "$seller", "total": bson.M{"$sum": "$total"}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         usersCollection,
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "seller",
		}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$sort", Value: bson.M{"total": -1}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate top sellers: %w", err)
	}
	var rows []*entity.TopSeller
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode top sellers: %w", err)
	}
	return rows, nil
}

func (r *OrderRepo) list(ctx context.Context, filter bson.M) ([]*entity.Order, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	var list []*entity.Order
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return list, nil
}
