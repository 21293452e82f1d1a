package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre MongoDB.
type ProductRepo struct {
	col *mongo.Collection
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db *mongo.Database) *ProductRepo {
	return &ProductRepo{col: db.Collection(productsCollection)}
}

// Create persiste un nuevo producto. Genera el ObjectID si viene vacío.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	if _, err := r.col.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe
// (incluye ids con formato inválido).
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var p entity.Product
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List devuelve el catálogo completo.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	var list []*entity.Product
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return list, nil
}

// Update reemplaza el documento del producto.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// Search busca por el índice $text sobre name, ordenado por relevancia.
func (r *ProductRepo) Search(ctx context.Context, text string, limit int) ([]*entity.Product, error) {
	filter := bson.M{"$text": bson.M{"$search": text}}
	opts := options.Find().
		SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetSort(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetLimit(int64(limit))
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	var list []*entity.Product
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return list, nil
}
