package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/IIJPRII/VeggieBurger/internal/application/dto"
	"github.com/IIJPRII/VeggieBurger/internal/application/repository"
	"github.com/IIJPRII/VeggieBurger/internal/domain"
	"github.com/IIJPRII/VeggieBurger/internal/domain/entity"
	"github.com/IIJPRII/VeggieBurger/pkg/logger"
)

// SaleUseCase orquesta la transacción de venta: tres escrituras dependientes
// en secuencia (venta, descuento de stock, ingreso en caja), sin garantía de
// atomicidad más allá de la ejecución ordenada con mejor esfuerzo.
//
// Si falla el paso 1 no hay efectos y es seguro reintentar. Si falla el paso
// 2 o 3 después de un paso previo exitoso, el sistema queda en estado
// parcialmente aplicado: se registra en el log y el error se devuelve, pero
// no hay compensación ni rollback.
type SaleUseCase struct {
	products *repository.ProductRepository
	sales    *repository.SaleRepository
	cash     *repository.CashMovementRepository
	log      *logger.Logger
}

// NewSaleUseCase construye el orquestador.
func NewSaleUseCase(
	products *repository.ProductRepository,
	sales *repository.SaleRepository,
	cash *repository.CashMovementRepository,
	log *logger.Logger,
) *SaleUseCase {
	return &SaleUseCase{products: products, sales: sales, cash: cash, log: log}
}

// RecordSale registra una venta del producto indicado.
//
// Precondiciones (sin efectos si fallan): quantity >= 1, el producto existe
// y product.stock >= quantity.
// Pasos: (1) crear la venta con total = quantity × price y fecha de hoy;
// (2) descontar el stock del producto; (3) registrar el ingreso en caja con
// amount = total.
func (uc *SaleUseCase) RecordSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	product := uc.products.GetByID(in.ProductID)
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.Stock < in.Quantity {
		return nil, domain.ErrInsufficientStock
	}

	today := time.Now().Format(time.DateOnly)
	total := product.Price.Mul(decimal.NewFromInt(int64(in.Quantity)))

	sale, err := uc.sales.Create(ctx, entity.Sale{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    in.Quantity,
		UnitPrice:   product.Price,
		Total:       total,
		SaleDate:    today,
	})
	if err != nil {
		return nil, err // paso 1 falló: sin efectos, seguro reintentar
	}

	newStock := product.Stock - in.Quantity
	if _, err := uc.products.Update(ctx, product.ID, entity.ProductPatch{Stock: &newStock}); err != nil {
		uc.log.Warn().Str("sale_id", sale.ID).Err(err).
			Msg("venta creada pero el stock no se descontó: estado parcialmente aplicado")
		return nil, err
	}

	if _, err := uc.cash.Create(ctx, entity.CashMovement{
		Type:         entity.MovementIncome,
		Amount:       total,
		Description:  fmt.Sprintf("Venta: %s x%d", product.Name, in.Quantity),
		MovementDate: today,
	}); err != nil {
		uc.log.Warn().Str("sale_id", sale.ID).Err(err).
			Msg("venta creada pero el ingreso en caja no se registró: estado parcialmente aplicado")
		return nil, err
	}

	return toSaleResponse(sale), nil
}

// List devuelve el espejo de ventas con el estado del repositorio.
func (uc *SaleUseCase) List() *dto.SaleCollectionResponse {
	items := uc.sales.Items()
	out := make([]dto.SaleResponse, 0, len(items))
	for i := range items {
		out = append(out, *toSaleResponse(&items[i]))
	}
	return &dto.SaleCollectionResponse{
		Items:         out,
		UsingFallback: uc.sales.UsingFallback(),
		Error:         uc.sales.LastError(),
	}
}

// Fetch recarga el espejo, opcionalmente filtrado por sale_date.
func (uc *SaleUseCase) Fetch(ctx context.Context, dateFilter string) error {
	return uc.sales.Fetch(ctx, dateFilter)
}

// ByDateRange devuelve las ventas dentro del rango de fechas indicado.
func (uc *SaleUseCase) ByDateRange(ctx context.Context, startDate, endDate string) ([]dto.SaleResponse, error) {
	items, err := uc.sales.ByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(items))
	for i := range items {
		out = append(out, *toSaleResponse(&items[i]))
	}
	return out, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:          s.ID,
		ProductID:   s.ProductID,
		ProductName: s.ProductName,
		Quantity:    s.Quantity,
		UnitPrice:   s.UnitPrice,
		Total:       s.Total,
		SaleDate:    s.SaleDate,
		CreatedAt:   s.CreatedAt,
	}
}
