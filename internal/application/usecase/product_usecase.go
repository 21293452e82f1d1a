package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// searchLimit máximo de resultados de searchProduct.
const searchLimit = 10

// ProductUseCase casos de uso CRUD para productos. El catálogo es compartido:
// no hay scoping por vendedor.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductInput) (*dto.ProductResponse, error) {
	product := &entity.Product{
		Name:      in.Name,
		Existence: in.Existence,
		Price:     in.Price,
		Created:   time.Now(),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve ErrProductNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// List lista el catálogo completo.
func (uc *ProductUseCase) List(ctx context.Context) ([]*dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update actualiza un producto. Re-verifica existencia antes de escribir;
// el patrón read-then-write no protege contra un delete concurrente.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductInput) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	product.Name = in.Name
	product.Existence = in.Existence
	product.Price = in.Price
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID. Devuelve ErrProductNotFound si no existe.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// Search busca productos por texto (relevancia), máximo 10 resultados.
func (uc *ProductUseCase) Search(ctx context.Context, text string) ([]*dto.ProductResponse, error) {
	list, err := uc.repo.Search(ctx, text, searchLimit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID.Hex(),
		Name:      p.Name,
		Existence: p.Existence,
		Price:     p.Price,
		Created:   dto.FormatTime(p.Created),
	}
}
