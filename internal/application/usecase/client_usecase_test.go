package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

var (
	sellerA = primitive.NewObjectID().Hex()
	sellerB = primitive.NewObjectID().Hex()
)

func clientInput(email string) dto.ClientInput {
	return dto.ClientInput{
		Name:     "Carlos",
		LastName: "Pérez",
		Company:  "Acme",
		Email:    email,
		Phone:    "555-0100",
	}
}

func newClientUC() (*usecase.ClientUseCase, *fakeClientRepo, *fakeOrderRepo) {
	clientRepo := newFakeClientRepo()
	orderRepo := newFakeOrderRepo(clientRepo)
	return usecase.NewClientUseCase(clientRepo, orderRepo), clientRepo, orderRepo
}

func TestClient_CreateEstampaVendedor(t *testing.T) {
	uc, _, _ := newClientUC()

	created, err := uc.Create(context.Background(), sellerA, clientInput("carlos@acme.com"))
	require.NoError(t, err)
	assert.Equal(t, sellerA, created.Seller,
		"el vendedor llamante debe quedar como dueño")
}

func TestClient_EmailDuplicadoGlobal(t *testing.T) {
	uc, _, _ := newClientUC()

	_, err := uc.Create(context.Background(), sellerA, clientInput("carlos@acme.com"))
	require.NoError(t, err)

	// Incluso otro vendedor: el email es único global, no por vendedor.
	_, err = uc.Create(context.Background(), sellerB, clientInput("carlos@acme.com"))
	assert.ErrorIs(t, err, domain.ErrClientAlreadyRegistered)
}

func TestClient_ListBySellerSoloVeLosPropios(t *testing.T) {
	uc, _, _ := newClientUC()

	_, err := uc.Create(context.Background(), sellerA, clientInput("carlos@acme.com"))
	require.NoError(t, err)

	mine, err := uc.ListBySeller(context.Background(), sellerA)
	require.NoError(t, err)
	assert.Len(t, mine, 1, "el vendedor dueño debe ver su cliente")

	others, err := uc.ListBySeller(context.Background(), sellerB)
	require.NoError(t, err)
	assert.Empty(t, others, "otro vendedor no debe ver clientes ajenos")
}

func TestClient_AccesoDeOtroVendedorFalla(t *testing.T) {
	uc, clientRepo, _ := newClientUC()

	created, err := uc.Create(context.Background(), sellerA, clientInput("carlos@acme.com"))
	require.NoError(t, err)

	_, err = uc.GetByID(context.Background(), sellerB, created.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Update(context.Background(), sellerB, created.ID, clientInput("hack@acme.com"))
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	err = uc.Delete(context.Background(), sellerB, created.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// El registro debe quedar intacto tras los intentos fallidos.
	stored := clientRepo.clients[created.ID]
	require.NotNil(t, stored, "el cliente no debe haberse eliminado")
	assert.Equal(t, "carlos@acme.com", stored.Email, "el cliente no debe haberse modificado")
}

func TestClient_GetNoExiste(t *testing.T) {
	uc, _, _ := newClientUC()

	_, err := uc.GetByID(context.Background(), sellerA, "64b000000000000000000000")
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestClient_DeleteCascadaPedidos(t *testing.T) {
	uc, clientRepo, orderRepo := newClientUC()

	created, err := uc.Create(context.Background(), sellerA, clientInput("carlos@acme.com"))
	require.NoError(t, err)

	// Dos pedidos del cliente y uno de otro cliente que debe sobrevivir.
	clientOID, err := primitive.ObjectIDFromHex(created.ID)
	require.NoError(t, err)
	sellerOID, err := primitive.ObjectIDFromHex(sellerA)
	require.NoError(t, err)

	o1 := &entity.Order{Client: clientOID, Seller: sellerOID, State: entity.OrderStatePending}
	o2 := &entity.Order{Client: clientOID, Seller: sellerOID, State: entity.OrderStateCompleted}
	other := &entity.Order{Client: primitive.NewObjectID(), Seller: sellerOID, State: entity.OrderStatePending}
	require.NoError(t, orderRepo.Create(context.Background(), o1))
	require.NoError(t, orderRepo.Create(context.Background(), o2))
	require.NoError(t, orderRepo.Create(context.Background(), other))

	require.NoError(t, uc.Delete(context.Background(), sellerA, created.ID))

	assert.Nil(t, clientRepo.clients[created.ID], "el cliente debe eliminarse")

	orderUC := usecase.NewOrderUseCase(orderRepo, clientRepo, newFakeProductRepo())
	_, err = orderUC.GetByID(context.Background(), sellerA, o1.ID.Hex())
	assert.ErrorIs(t, err, domain.ErrOrderNotFound, "los pedidos del cliente deben eliminarse en cascada")
	_, err = orderUC.GetByID(context.Background(), sellerA, o2.ID.Hex())
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)

	_, err = orderUC.GetByID(context.Background(), sellerA, other.ID.Hex())
	assert.NoError(t, err, "los pedidos de otros clientes deben sobrevivir")
}
