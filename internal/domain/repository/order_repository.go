package repository

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order (DIP).
// Incluye las agregaciones de reporte porque corren sobre la colección orders.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context) ([]*entity.Order, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*entity.Order, error)
	ListBySellerAndState(ctx context.Context, sellerID, state string) ([]*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id string) error
	// DeleteByClient elimina todos los pedidos del cliente (cascada previa a
	// borrar el cliente).
	DeleteByClient(ctx context.Context, clientID string) error
	TopClients(ctx context.Context, limit int) ([]*entity.TopClient, error)
	TopSellers(ctx context.Context, limit int) ([]*entity.TopSeller, error)
}
