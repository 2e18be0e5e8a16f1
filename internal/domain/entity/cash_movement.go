package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de caja.
const (
	MovementIncome  = "income"
	MovementExpense = "expense"
)

// CashMovement registra un ingreso o egreso de la caja diaria.
// Amount es siempre no negativo; el signo lo implica Type, nunca se
// almacena un monto negativo.
type CashMovement struct {
	ID           string
	Type         string // income | expense
	Amount       decimal.Decimal
	Description  string
	MovementDate string // fecha calendario YYYY-MM-DD
	CreatedAt    time.Time
}
