package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/internal/domain"
)

func TestProduct_CreateYGet(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(context.Background(), dto.ProductInput{
		Name: "Widget", Existence: 5, Price: 9.99,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", got.Name)
	assert.Equal(t, 5, got.Existence)
	assert.Equal(t, 9.99, got.Price)
	assert.NotEmpty(t, got.Created)
}

func TestProduct_GetNoExiste(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.GetByID(context.Background(), "64b000000000000000000000")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProduct_Update(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(context.Background(), dto.ProductInput{Name: "Widget", Existence: 5, Price: 9.99})
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), created.ID, dto.ProductInput{Name: "Widget Pro", Existence: 8, Price: 14.50})
	require.NoError(t, err)
	assert.Equal(t, "Widget Pro", updated.Name)
	assert.Equal(t, 8, updated.Existence)
}

func TestProduct_UpdateNoExiste(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Update(context.Background(), "64b000000000000000000000", dto.ProductInput{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProduct_Delete(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(context.Background(), dto.ProductInput{Name: "Widget", Existence: 5, Price: 9.99})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))

	_, err = uc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProduct_DeleteNoExiste(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	err := uc.Delete(context.Background(), "64b000000000000000000000")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProduct_Search(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(context.Background(), dto.ProductInput{Name: "Widget grande", Existence: 5, Price: 9.99})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), dto.ProductInput{Name: "Tornillo", Existence: 100, Price: 0.10})
	require.NoError(t, err)

	results, err := uc.Search(context.Background(), "widget")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Widget grande", results[0].Name)
}
