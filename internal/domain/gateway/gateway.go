// Package gateway define los puertos hacia el servicio de persistencia
// alojado: operaciones select/insert/update/delete por tabla, con filtros
// básicos y orden por fecha de creación descendente.
//
// Los adaptadores deben distinguir la clase "tabla no existe" devolviendo
// (o envolviendo) domain.ErrSchemaMissing; esa distinción es la única señal
// de ramificación de la que depende el núcleo.
package gateway

import (
	"context"

	"github.com/IIJPRII/VeggieBurger/internal/domain/entity"
)

// ProductGateway operaciones sobre la tabla products.
type ProductGateway interface {
	Select(ctx context.Context) ([]entity.Product, error)
	Insert(ctx context.Context, p entity.Product) (*entity.Product, error)
	Update(ctx context.Context, id string, patch entity.ProductPatch) (*entity.Product, error)
	Delete(ctx context.Context, id string) error
}

// SaleGateway operaciones sobre la tabla sales. dateFilter vacío lista todo;
// si no, filtra por igualdad de sale_date (YYYY-MM-DD).
type SaleGateway interface {
	Select(ctx context.Context, dateFilter string) ([]entity.Sale, error)
	SelectRange(ctx context.Context, startDate, endDate string) ([]entity.Sale, error)
	Insert(ctx context.Context, s entity.Sale) (*entity.Sale, error)
}

// CashMovementGateway operaciones sobre la tabla cash_movements.
type CashMovementGateway interface {
	Select(ctx context.Context, dateFilter string) ([]entity.CashMovement, error)
	Insert(ctx context.Context, m entity.CashMovement) (*entity.CashMovement, error)
}

// BalanceTransferGateway operaciones sobre la tabla balance_transfers.
type BalanceTransferGateway interface {
	Select(ctx context.Context) ([]entity.BalanceTransfer, error)
	Insert(ctx context.Context, t entity.BalanceTransfer) (*entity.BalanceTransfer, error)
}
