package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceTransfer registra un traslado de saldo entre fechas para ajustes
// contables. Es puramente informativo: no muta stock ni entra en el
// resumen de caja.
type BalanceTransfer struct {
	ID           string
	FromDate     string // YYYY-MM-DD
	ToDate       string // YYYY-MM-DD
	Amount       decimal.Decimal
	Description  string
	TransferDate string // YYYY-MM-DD, por defecto la fecha de creación
	CreatedAt    time.Time
}
