package usecase

import (
	"context"
	"errors"

	"github.com/IIJPRII/VeggieBurger/internal/application/repository"
)

// StatusUseCase estado de conexión de los cuatro repositorios y la acción
// manual de "reintentar": re-ejecuta el fetch de todos.
type StatusUseCase struct {
	products  *repository.ProductRepository
	sales     *repository.SaleRepository
	cash      *repository.CashMovementRepository
	transfers *repository.BalanceTransferRepository
}

// NewStatusUseCase construye el caso de uso.
func NewStatusUseCase(
	products *repository.ProductRepository,
	sales *repository.SaleRepository,
	cash *repository.CashMovementRepository,
	transfers *repository.BalanceTransferRepository,
) *StatusUseCase {
	return &StatusUseCase{products: products, sales: sales, cash: cash, transfers: transfers}
}

// Statuses devuelve el estado por tabla.
func (uc *StatusUseCase) Statuses() []repository.Status {
	return []repository.Status{
		uc.products.Status(),
		uc.sales.Status(),
		uc.cash.Status(),
		uc.transfers.Status(),
	}
}

// RefreshAll re-ejecuta el fetch de los cuatro repositorios en paralelo.
// Un fetch exitoso saca a su repositorio del modo fallback; los errores de
// persistencia se acumulan y se devuelven juntos.
func (uc *StatusUseCase) RefreshAll(ctx context.Context) error {
	errCh := make(chan error, 4)

	go func() { errCh <- uc.products.Fetch(ctx) }()
	go func() { errCh <- uc.sales.Fetch(ctx, "") }()
	go func() { errCh <- uc.cash.Fetch(ctx, "") }()
	go func() { errCh <- uc.transfers.Fetch(ctx) }()

	var errs []error
	for i := 0; i < 4; i++ {
		if err := <-errCh; err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
