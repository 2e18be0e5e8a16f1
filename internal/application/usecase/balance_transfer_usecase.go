package usecase

import (
	"context"
	"time"

	"github.com/IIJPRII/VeggieBurger/internal/application/dto"
	"github.com/IIJPRII/VeggieBurger/internal/application/repository"
	"github.com/IIJPRII/VeggieBurger/internal/domain"
	"github.com/IIJPRII/VeggieBurger/internal/domain/entity"
)

// BalanceTransferUseCase casos de uso del libro de traslados de saldo.
// Los traslados no mutan stock ni entran en el resumen de caja.
type BalanceTransferUseCase struct {
	repo *repository.BalanceTransferRepository
}

// NewBalanceTransferUseCase construye el caso de uso.
func NewBalanceTransferUseCase(repo *repository.BalanceTransferRepository) *BalanceTransferUseCase {
	return &BalanceTransferUseCase{repo: repo}
}

// Create registra un traslado. TransferDate vacío toma la fecha de hoy.
func (uc *BalanceTransferUseCase) Create(ctx context.Context, in dto.CreateBalanceTransferRequest) (*dto.BalanceTransferResponse, error) {
	if in.FromDate == "" || in.ToDate == "" || in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	transferDate := in.TransferDate
	if transferDate == "" {
		transferDate = time.Now().Format(time.DateOnly)
	}
	transfer, err := uc.repo.Create(ctx, entity.BalanceTransfer{
		FromDate:     in.FromDate,
		ToDate:       in.ToDate,
		Amount:       in.Amount,
		Description:  in.Description,
		TransferDate: transferDate,
	})
	if err != nil {
		return nil, err
	}
	return toBalanceTransferResponse(transfer), nil
}

// List devuelve el libro de traslados (más reciente primero) con el estado
// del repositorio.
func (uc *BalanceTransferUseCase) List() *dto.BalanceTransferCollectionResponse {
	items := uc.repo.Items()
	out := make([]dto.BalanceTransferResponse, 0, len(items))
	for i := range items {
		out = append(out, *toBalanceTransferResponse(&items[i]))
	}
	return &dto.BalanceTransferCollectionResponse{
		Items:         out,
		UsingFallback: uc.repo.UsingFallback(),
		Error:         uc.repo.LastError(),
	}
}

// Refetch re-ejecuta el fetch contra el backend.
func (uc *BalanceTransferUseCase) Refetch(ctx context.Context) error {
	return uc.repo.Fetch(ctx)
}

func toBalanceTransferResponse(t *entity.BalanceTransfer) *dto.BalanceTransferResponse {
	if t == nil {
		return nil
	}
	return &dto.BalanceTransferResponse{
		ID:           t.ID,
		FromDate:     t.FromDate,
		ToDate:       t.ToDate,
		Amount:       t.Amount,
		Description:  t.Description,
		TransferDate: t.TransferDate,
		CreatedAt:    t.CreatedAt,
	}
}
