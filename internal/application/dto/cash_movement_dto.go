package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCashMovementRequest entrada para registrar un movimiento de caja.
// El monto es siempre no negativo; el signo lo implica el tipo.
type CreateCashMovementRequest struct {
	Type        string          `json:"type" validate:"required,oneof=income expense"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" validate:"required"`
}

// CashMovementResponse salida de un movimiento de caja.
type CashMovementResponse struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	MovementDate string          `json:"movement_date"`
	CreatedAt    time.Time       `json:"created_at"`
}

// CashMovementCollectionResponse colección de movimientos con el estado del repositorio.
type CashMovementCollectionResponse struct {
	Items         []CashMovementResponse `json:"items"`
	UsingFallback bool                   `json:"using_fallback"`
	Error         string                 `json:"error,omitempty"`
}
