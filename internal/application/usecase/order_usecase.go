package usecase

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// OrderUseCase casos de uso CRUD para pedidos, incluido el ajuste secuencial
// de stock al crear/actualizar.
type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orderRepo repository.OrderRepository, clientRepo repository.ClientRepository, productRepo repository.ProductRepository) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, clientRepo: clientRepo, productRepo: productRepo}
}

// Create crea un pedido: resuelve el cliente, verifica que el llamante sea su
// vendedor, descuenta stock renglón por renglón y persiste el pedido con el
// llamante como vendedor.
func (uc *OrderUseCase) Create(ctx context.Context, callerID string, in dto.OrderInput) (*dto.OrderResponse, error) {
	client, err := uc.clientRepo.GetByID(ctx, in.Client)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	if err := domain.AuthorizeSeller(client.Seller, callerID); err != nil {
		return nil, err
	}

	lines, err := uc.adjustStock(ctx, in.Lines)
	if err != nil {
		return nil, err
	}

	seller, err := primitive.ObjectIDFromHex(callerID)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	state := entity.OrderStatePending
	if in.State != nil {
		if !entity.ValidOrderState(*in.State) {
			return nil, fmt.Errorf("invalid order state: %s", *in.State)
		}
		state = *in.State
	}
	order := &entity.Order{
		Lines:   lines,
		Client:  client.ID,
		Seller:  seller,
		State:   state,
		Created: time.Now(),
	}
	if in.Total != nil {
		order.Total = *in.Total
	}
	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene un pedido. Solo el vendedor dueño del pedido puede verlo.
func (uc *OrderUseCase) GetByID(ctx context.Context, callerID, id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	if err := domain.AuthorizeSeller(order.Seller, callerID); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List lista todos los pedidos (sin scoping).
func (uc *OrderUseCase) List(ctx context.Context) ([]*dto.OrderResponse, error) {
	list, err := uc.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// ListBySeller lista los pedidos del vendedor llamante.
func (uc *OrderUseCase) ListBySeller(ctx context.Context, callerID string) ([]*dto.OrderResponse, error) {
	list, err := uc.orderRepo.ListBySeller(ctx, callerID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// ListByState lista los pedidos del vendedor llamante filtrados por estado.
func (uc *OrderUseCase) ListByState(ctx context.Context, callerID, state string) ([]*dto.OrderResponse, error) {
	list, err := uc.orderRepo.ListBySellerAndState(ctx, callerID, state)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// Update actualiza un pedido. La autorización compara al llamante contra el
// vendedor dueño del *cliente* del input (no contra el vendedor del pedido).
// Si el input trae renglones, repite el descuento secuencial de stock completo
// sin calcular delta contra los renglones anteriores; ver DESIGN.md.
func (uc *OrderUseCase) Update(ctx context.Context, callerID, id string, in dto.OrderInput) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	client, err := uc.clientRepo.GetByID(ctx, in.Client)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	if err := domain.AuthorizeSeller(client.Seller, callerID); err != nil {
		return nil, err
	}

	if in.Lines != nil {
		lines, err := uc.adjustStock(ctx, in.Lines)
		if err != nil {
			return nil, err
		}
		order.Lines = lines
	}
	order.Client = client.ID
	if in.Total != nil {
		order.Total = *in.Total
	}
	if in.State != nil {
		if !entity.ValidOrderState(*in.State) {
			return nil, fmt.Errorf("invalid order state: %s", *in.State)
		}
		order.State = *in.State
	}
	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Delete elimina un pedido del vendedor llamante. El stock descontado no se
// restituye.
func (uc *OrderUseCase) Delete(ctx context.Context, callerID, id string) error {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrOrderNotFound
	}
	if err := domain.AuthorizeSeller(order.Seller, callerID); err != nil {
		return err
	}
	return uc.orderRepo.Delete(ctx, id)
}

// adjustStock procesa los renglones en orden estricto: resuelve el producto,
// verifica existencia suficiente y persiste el descuento antes de pasar al
// siguiente. Los descuentos ya persistidos NO se revierten si un renglón
// posterior falla; esa brecha de consistencia se preserva a propósito
// (ver DESIGN.md). Devuelve los renglones con nombre y precio desnormalizados.
func (uc *OrderUseCase) adjustStock(ctx context.Context, lines []dto.OrderLineInput) ([]entity.OrderLine, error) {
	out := make([]entity.OrderLine, 0, len(lines))
	for _, line := range lines {
		product, err := uc.productRepo.GetByID(ctx, line.ID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrProductNotFound
		}
		if line.Amount > product.Existence {
			return nil, &domain.InsufficientStockError{Product: product.Name}
		}
		product.Existence -= line.Amount
		if err := uc.productRepo.Update(ctx, product); err != nil {
			return nil, err
		}
		out = append(out, entity.OrderLine{
			ID:     product.ID,
			Amount: line.Amount,
			Name:   product.Name,
			Price:  product.Price,
		})
	}
	return out, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	lines := make([]dto.OrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, dto.OrderLineResponse{
			ID:     l.ID.Hex(),
			Amount: l.Amount,
			Name:   l.Name,
			Price:  l.Price,
		})
	}
	return &dto.OrderResponse{
		ID:       o.ID.Hex(),
		Lines:    lines,
		Total:    o.Total,
		ClientID: o.Client.Hex(),
		Seller:   o.Seller.Hex(),
		State:    o.State,
		Created:  dto.FormatTime(o.Created),
	}
}

func toOrderResponses(list []*entity.Order) []*dto.OrderResponse {
	out := make([]*dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o))
	}
	return out
}
