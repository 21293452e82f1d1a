package usecase

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// Límites de los reportes "top".
const (
	topClientsLimit = 10
	topSellersLimit = 3
)

// ReportUseCase reportes agregados sobre pedidos COMPLETED.
type ReportUseCase struct {
	orderRepo repository.OrderRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(orderRepo repository.OrderRepository) *ReportUseCase {
	return &ReportUseCase{orderRepo: orderRepo}
}

// TopClients devuelve hasta 10 clientes con el total vendido en pedidos
// COMPLETED. El pipeline aplica $limit antes de $sort; ver DESIGN.md.
func (uc *ReportUseCase) TopClients(ctx context.Context) ([]*dto.TopClientResponse, error) {
	rows, err := uc.orderRepo.TopClients(ctx, topClientsLimit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TopClientResponse, 0, len(rows))
	for _, r := range rows {
		clients := make([]dto.ClientResponse, 0, len(r.Client))
		for i := range r.Client {
			clients = append(clients, *toClientResponse(&r.Client[i]))
		}
		out = append(out, &dto.TopClientResponse{Total: r.Total, Clients: clients})
	}
	return out, nil
}

// TopSellers devuelve hasta 3 vendedores con el total vendido en pedidos
// COMPLETED. Mismo pipeline (y misma salvedad de orden) que TopClients.
func (uc *ReportUseCase) TopSellers(ctx context.Context) ([]*dto.TopSellerResponse, error) {
	rows, err := uc.orderRepo.TopSellers(ctx, topSellersLimit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TopSellerResponse, 0, len(rows))
	for _, r := range rows {
		sellers := make([]dto.UserResponse, 0, len(r.Seller))
		for i := range r.Seller {
			sellers = append(sellers, *toReportUserResponse(&r.Seller[i]))
		}
		out = append(out, &dto.TopSellerResponse{Total: r.Total, Sellers: sellers})
	}
	return out, nil
}

// toReportUserResponse mapea el usuario del $lookup. El hash de password que
// viene de la colección nunca se copia a la respuesta.
func toReportUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:       u.ID.Hex(),
		Name:     u.Name,
		LastName: u.LastName,
		Email:    u.Email,
		Created:  dto.FormatTime(u.Created),
	}
}
