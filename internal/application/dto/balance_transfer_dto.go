package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBalanceTransferRequest entrada para registrar un traslado de saldo.
// TransferDate vacío toma la fecha de creación.
type CreateBalanceTransferRequest struct {
	FromDate     string          `json:"from_date" validate:"required,datetime=2006-01-02"`
	ToDate       string          `json:"to_date" validate:"required,datetime=2006-01-02"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	TransferDate string          `json:"transfer_date" validate:"omitempty,datetime=2006-01-02"`
}

// BalanceTransferResponse salida de un traslado.
type BalanceTransferResponse struct {
	ID           string          `json:"id"`
	FromDate     string          `json:"from_date"`
	ToDate       string          `json:"to_date"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	TransferDate string          `json:"transfer_date"`
	CreatedAt    time.Time       `json:"created_at"`
}

// BalanceTransferCollectionResponse el libro de traslados con el estado del repositorio.
type BalanceTransferCollectionResponse struct {
	Items         []BalanceTransferResponse `json:"items"`
	UsingFallback bool                      `json:"using_fallback"`
	Error         string                    `json:"error,omitempty"`
}
