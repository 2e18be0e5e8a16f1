package usecase

import (
	"context"

	"github.com/IIJPRII/VeggieBurger/internal/application/dto"
	"github.com/IIJPRII/VeggieBurger/internal/application/repository"
	"github.com/IIJPRII/VeggieBurger/internal/domain"
	"github.com/IIJPRII/VeggieBurger/internal/domain/entity"
)

// ProductUseCase casos de uso CRUD para productos. El stock solo baja vía
// ventas (SaleUseCase); aquí se acepta stock explícito para altas y ajustes
// manuales de inventario.
type ProductUseCase struct {
	repo *repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo *repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto nuevo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Price.IsNegative() || in.Stock < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.Create(ctx, entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    in.Category,
		MinStock:    in.MinStock,
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza parcialmente un producto. Devuelve nil si el id no existe
// en el espejo local (modo fallback).
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Price != nil && in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock != nil && *in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.MinStock != nil && *in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.Update(ctx, id, entity.ProductPatch{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    in.Category,
		MinStock:    in.MinStock,
	})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto. No cascada a las ventas históricas.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// List devuelve el espejo de productos con el estado del repositorio.
func (uc *ProductUseCase) List() *dto.ProductCollectionResponse {
	items := uc.repo.Items()
	out := make([]dto.ProductResponse, 0, len(items))
	for i := range items {
		out = append(out, *toProductResponse(&items[i]))
	}
	return &dto.ProductCollectionResponse{
		Items:         out,
		UsingFallback: uc.repo.UsingFallback(),
		Error:         uc.repo.LastError(),
	}
}

// Refetch re-ejecuta el fetch contra el backend.
func (uc *ProductUseCase) Refetch(ctx context.Context) error {
	return uc.repo.Fetch(ctx)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
		MinStock:    p.MinStock,
		LowStock:    p.LowStock(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
