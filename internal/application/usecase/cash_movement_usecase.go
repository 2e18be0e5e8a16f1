package usecase

import (
	"context"
	"time"

	"github.com/IIJPRII/VeggieBurger/internal/application/dto"
	"github.com/IIJPRII/VeggieBurger/internal/application/repository"
	"github.com/IIJPRII/VeggieBurger/internal/domain"
	"github.com/IIJPRII/VeggieBurger/internal/domain/entity"
)

// CashMovementUseCase casos de uso de la caja diaria.
type CashMovementUseCase struct {
	repo *repository.CashMovementRepository
}

// NewCashMovementUseCase construye el caso de uso.
func NewCashMovementUseCase(repo *repository.CashMovementRepository) *CashMovementUseCase {
	return &CashMovementUseCase{repo: repo}
}

// Create registra un movimiento manual de caja con fecha de hoy.
// El monto nunca se almacena negativo: el signo lo implica el tipo.
func (uc *CashMovementUseCase) Create(ctx context.Context, in dto.CreateCashMovementRequest) (*dto.CashMovementResponse, error) {
	if in.Type != entity.MovementIncome && in.Type != entity.MovementExpense {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount.IsNegative() || in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	movement, err := uc.repo.Create(ctx, entity.CashMovement{
		Type:         in.Type,
		Amount:       in.Amount,
		Description:  in.Description,
		MovementDate: time.Now().Format(time.DateOnly),
	})
	if err != nil {
		return nil, err
	}
	return toCashMovementResponse(movement), nil
}

// List devuelve el espejo de movimientos con el estado del repositorio.
func (uc *CashMovementUseCase) List() *dto.CashMovementCollectionResponse {
	items := uc.repo.Items()
	out := make([]dto.CashMovementResponse, 0, len(items))
	for i := range items {
		out = append(out, *toCashMovementResponse(&items[i]))
	}
	return &dto.CashMovementCollectionResponse{
		Items:         out,
		UsingFallback: uc.repo.UsingFallback(),
		Error:         uc.repo.LastError(),
	}
}

// Fetch recarga el espejo, opcionalmente filtrado por movement_date.
func (uc *CashMovementUseCase) Fetch(ctx context.Context, dateFilter string) error {
	return uc.repo.Fetch(ctx, dateFilter)
}

func toCashMovementResponse(m *entity.CashMovement) *dto.CashMovementResponse {
	if m == nil {
		return nil
	}
	return &dto.CashMovementResponse{
		ID:           m.ID,
		Type:         m.Type,
		Amount:       m.Amount,
		Description:  m.Description,
		MovementDate: m.MovementDate,
		CreatedAt:    m.CreatedAt,
	}
}
