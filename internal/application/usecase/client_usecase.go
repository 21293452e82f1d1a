package usecase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD para clientes, con autorización por
// propiedad: solo el vendedor dueño puede leer, actualizar o eliminar.
type ClientUseCase struct {
	clientRepo repository.ClientRepository
	orderRepo  repository.OrderRepository
}

// NewClientUseCase construye el caso de uso. orderRepo se usa para la cascada
// de deleteClient.
func NewClientUseCase(clientRepo repository.ClientRepository, orderRepo repository.OrderRepository) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo, orderRepo: orderRepo}
}

// Create crea un cliente y estampa al vendedor llamante como dueño. El email
// es único global (no por vendedor): devuelve ErrClientAlreadyRegistered si
// ya existe.
func (uc *ClientUseCase) Create(ctx context.Context, callerID string, in dto.ClientInput) (*dto.ClientResponse, error) {
	existing, err := uc.clientRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrClientAlreadyRegistered
	}
	seller, err := primitive.ObjectIDFromHex(callerID)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	client := &entity.Client{
		Name:     in.Name,
		LastName: in.LastName,
		Company:  in.Company,
		Email:    in.Email,
		Phone:    in.Phone,
		Seller:   seller,
		Created:  time.Now(),
	}
	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente por ID. Solo el vendedor dueño puede verlo.
func (uc *ClientUseCase) GetByID(ctx context.Context, callerID, id string) (*dto.ClientResponse, error) {
	client, err := uc.resolveOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Lookup obtiene un cliente por ID sin chequeo de propiedad. Se usa para
// resolver la referencia client embebida en Order.
func (uc *ClientUseCase) Lookup(ctx context.Context, id string) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List lista todos los clientes (sin scoping).
func (uc *ClientUseCase) List(ctx context.Context) ([]*dto.ClientResponse, error) {
	list, err := uc.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toClientResponses(list), nil
}

// ListBySeller lista los clientes del vendedor llamante.
func (uc *ClientUseCase) ListBySeller(ctx context.Context, callerID string) ([]*dto.ClientResponse, error) {
	list, err := uc.clientRepo.ListBySeller(ctx, callerID)
	if err != nil {
		return nil, err
	}
	return toClientResponses(list), nil
}

// Update actualiza un cliente del vendedor llamante.
func (uc *ClientUseCase) Update(ctx context.Context, callerID, id string, in dto.ClientInput) (*dto.ClientResponse, error) {
	client, err := uc.resolveOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}
	client.Name = in.Name
	client.LastName = in.LastName
	client.Company = in.Company
	client.Email = in.Email
	client.Phone = in.Phone
	if err := uc.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente del vendedor llamante. Primero elimina en cascada
// todos los pedidos que lo referencian; borrar el cliente antes dejaría
// pedidos huérfanos.
func (uc *ClientUseCase) Delete(ctx context.Context, callerID, id string) error {
	if _, err := uc.resolveOwned(ctx, callerID, id); err != nil {
		return err
	}
	if err := uc.orderRepo.DeleteByClient(ctx, id); err != nil {
		return err
	}
	return uc.clientRepo.Delete(ctx, id)
}

// resolveOwned resuelve el cliente y aplica el predicado de propiedad.
func (uc *ClientUseCase) resolveOwned(ctx context.Context, callerID, id string) (*entity.Client, error) {
	client, err := uc.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	if err := domain.AuthorizeSeller(client.Seller, callerID); err != nil {
		return nil, err
	}
	return client, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:       c.ID.Hex(),
		Name:     c.Name,
		LastName: c.LastName,
		Company:  c.Company,
		Email:    c.Email,
		Phone:    c.Phone,
		Seller:   c.Seller.Hex(),
		Created:  dto.FormatTime(c.Created),
	}
}

func toClientResponses(list []*entity.Client) []*dto.ClientResponse {
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClientResponse(c))
	}
	return out
}
