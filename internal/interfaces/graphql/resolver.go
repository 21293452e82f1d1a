package graphql

import (
	gql "github.com/graphql-go/graphql"

	"github.com/jhoicas/Ventas-api/internal/application/auth"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// Mensajes de las mutaciones de borrado (contrato del API).
const (
	msgProductRemoved = "Product removed"
	msgClientRemoved  = "Client removed"
	msgOrderRemoved   = "Order removed"
)

// Resolver despacha cada operación del esquema al caso de uso correspondiente.
type Resolver struct {
	auth     *auth.AuthUseCase
	products *usecase.ProductUseCase
	clients  *usecase.ClientUseCase
	orders   *usecase.OrderUseCase
	reports  *usecase.ReportUseCase
	log      *logger.Logger
}

// NewResolver construye el resolver con sus casos de uso.
func NewResolver(authUC *auth.AuthUseCase, productUC *usecase.ProductUseCase, clientUC *usecase.ClientUseCase, orderUC *usecase.OrderUseCase, reportUC *usecase.ReportUseCase, log *logger.Logger) *Resolver {
	return &Resolver{
		auth:     authUC,
		products: productUC,
		clients:  clientUC,
		orders:   orderUC,
		reports:  reportUC,
		log:      log,
	}
}

// caller devuelve el id del vendedor autenticado. Las operaciones que exigen
// identidad fallan con Invalid Credentials cuando el contexto es anónimo.
func (r *Resolver) caller(p gql.ResolveParams) (string, error) {
	id, ok := IdentityFromContext(p.Context)
	if !ok {
		return "", domain.ErrInvalidCredentials
	}
	return id.ID, nil
}

// ── Queries ──────────────────────────────────────────────────────────────────

// GetUser devuelve la identidad del token; no consulta la base.
func (r *Resolver) GetUser(p gql.ResolveParams) (interface{}, error) {
	id, ok := IdentityFromContext(p.Context)
	if !ok {
		return nil, nil
	}
	return &dto.UserResponse{
		ID:       id.ID,
		Name:     id.Name,
		LastName: id.LastName,
		Email:    id.Email,
	}, nil
}

func (r *Resolver) GetProducts(p gql.ResolveParams) (interface{}, error) {
	return r.products.List(p.Context)
}

func (r *Resolver) GetProduct(p gql.ResolveParams) (interface{}, error) {
	return r.products.GetByID(p.Context, argString(p.Args, "id"))
}

func (r *Resolver) GetClients(p gql.ResolveParams) (interface{}, error) {
	return r.clients.List(p.Context)
}

func (r *Resolver) GetSellerClients(p gql.ResolveParams) (interface{}, error) {
	caller, err := r.caller(p)
	if err != nil {
		return nil, err
	}
	return r.clients.ListBySeller(p.Context, caller)
}

func (r *Resolver) GetClient(p gql.ResolveParams) (interface{}, error) {
	caller, err := r.caller(p)
	if err != nil {
		return nil, err
	}
	return r.clients.GetByID(p.Context, caller, argString(p.Args, "id"))
}

func (r *Resolver) GetOrders(p gql.ResolveParams) (interface{}, error) {
	return r.orders.List(p.Context)
}

func (r *Resolver) GetSellerOrders(p gql.ResolveParams) (interface{}, error) {
	caller, err := r.caller(p)
	if err != nil {
		return nil, err
	}
	return r.orders.ListBySeller(p.Context, caller)
}

func (r *Resolver) GetOrder(p gql.ResolveParams) (interface{}, error) {
	caller, err := r.caller(p)
	if err != nil {
		return nil, err
	}
	return r.orders.GetByID(p.Context, caller, argString(p.Args, "id"))
}

func (r *Resolver) GetOrdersByState(p gql.ResolveParams) (interface{}, error) {
	caller, err := r.caller(p)
	if err != nil {
		return nil, err
	}
	return r.orders.ListByState(p.Context, caller, argString(p.Args, "state"))
}

func (r *Resolver) BestClients(p gql.ResolveParams) (interface{}, error) {
	return r.reports.TopClients(p.Context)
}

func (r *Resolver) BestSellers(p gql.ResolveParams) (interface{}, error) {
	return r.reports.TopSellers(p.Context)
}

func (r *Resolver) SearchProduct(p gql.ResolveParams) (interface{}, error) {
	return r.products.Search(p.Context, argString(p.Args, "text"))
}

// ResolveOrderClient resuelve la referencia client embebida en un Order
// (equivalente al populate del sistema original; sin chequeo de propiedad).
func (r *Resolver) ResolveOrderClient(p gql.ResolveParams) (interface{}, error) {
	order, ok := p.Source.(*dto.OrderResponse)
	if !ok || order == nil {
		return nil, nil
	}
	return r.clients.Lookup(p.Context, order.ClientID)
}

// ── Mutations ────────────────────────────────────────────────────────────────

func (r *Resolver) NewUser(p gql.ResolveParams) (interface{}, error) {
	return r.auth.Register(p.Context, decodeUserInput(argMap(p.Args, "input")))
}

func (r *Resolver) AuthenticateUser(p gql.ResolveParams) (interface{}, error) {
	return r.auth.Authenticate(p.Context, decodeAuthenticateInput(argMap(p.Args, "input")))
}

func (r *Resolver) NewProduct(p gql.ResolveParams) (interface{}, error) {
	return r.products.Create(p.Context, decodeProductInput(argMap(p.Args, "input")))
}

func (r *Resolver) UpdateProduct(p gql.ResolveParams) (interface{}, error) {
	return r.products.Update(p.Context, argString(p.Args, "id"), decodeProductInput(argMap(p.Args, "input")))
}

func (r *Resolver) DeleteProduct(p gql.ResolveParams) (interface{}, error) {
	if err := r.products.Delete(p.Context, argString(p.Args, "id")); err != nil {
		return nil, err
	}
	return msgProductRemoved, nil
}

func (r *Resolver) NewClient(p gql.ResolveParams) (interface{}, error) {
	caller, err := r.caller(p)
	if err != nil {
		return nil, err
	}
	return r.clients.Create(p.Context, caller, decodeClientInput(argMap(p.Args, "input")))
}

func (r *Resolver) UpdateClient(p gql.ResolveParams) (interface{}, error) {
	caller, err := r.caller(p)
	if err != nil {
		return nil, err
	}
	return r.clients.Update(p.Context, caller, argString(p.Args, "id"), decodeClientInput(argMap(p.Args, "input")))
}

func (r *Resolver) DeleteClient(p gql.ResolveParams) (interface{}, error) {
	caller, err := r.caller(p)
	if err != nil {
		return nil, err
	}
	if err := r.clients.Delete(p.Context, caller, argString(p.Args, "id")); err != nil {
		return nil, err
	}
	return msgClientRemoved, nil
}

func (r *Resolver) NewOrder(p gql.ResolveParams) (interface{}, error) {
	caller, err := r.caller(p)
	if err != nil {
		return nil, err
	}
	return r.orders.Create(p.Context, caller, decodeOrderInput(argMap(p.Args, "input")))
}

func (r *Resolver) UpdateOrder(p gql.ResolveParams) (interface{}, error) {
	caller, err := r.caller(p)
	if err != nil {
		return nil, err
	}
	return r.orders.Update(p.Context, caller, argString(p.Args, "id"), decodeOrderInput(argMap(p.Args, "input")))
}

func (r *Resolver) DeleteOrder(p gql.ResolveParams) (interface{}, error) {
	caller, err := r.caller(p)
	if err != nil {
		return nil, err
	}
	if err := r.orders.Delete(p.Context, caller, argString(p.Args, "id")); err != nil {
		return nil, err
	}
	return msgOrderRemoved, nil
}
