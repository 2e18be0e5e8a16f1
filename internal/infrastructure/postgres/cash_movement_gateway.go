package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/IIJPRII/VeggieBurger/internal/domain/entity"
	"github.com/IIJPRII/VeggieBurger/internal/domain/gateway"
)

var _ gateway.CashMovementGateway = (*CashMovementGateway)(nil)

const cashMovementColumns = `id, type, amount, description, movement_date, created_at`

// CashMovementGateway adaptador de la tabla cash_movements sobre PostgreSQL.
type CashMovementGateway struct {
	q Querier
}

// NewCashMovementGateway construye el adaptador.
func NewCashMovementGateway(q Querier) *CashMovementGateway {
	return &CashMovementGateway{q: q}
}

// Select lista los movimientos (opcionalmente filtrados por movement_date)
// ordenados por fecha de creación descendente.
func (g *CashMovementGateway) Select(ctx context.Context, dateFilter string) ([]entity.CashMovement, error) {
	query := `SELECT ` + cashMovementColumns + ` FROM cash_movements`
	args := []any{}
	if dateFilter != "" {
		query += ` WHERE movement_date = $1::date`
		args = append(args, dateFilter)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := g.q.Query(ctx, query, args...)
	if err != nil {
		return nil, classify("select cash movements", err)
	}
	defer rows.Close()

	var list []entity.CashMovement
	for rows.Next() {
		var m entity.CashMovement
		var movementDate time.Time
		if err := rows.Scan(&m.ID, &m.Type, &m.Amount, &m.Description, &movementDate, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cash movement: %w", err)
		}
		m.MovementDate = movementDate.Format(time.DateOnly)
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("select cash movements", err)
	}
	return list, nil
}

// Insert persiste un movimiento de caja.
func (g *CashMovementGateway) Insert(ctx context.Context, m entity.CashMovement) (*entity.CashMovement, error) {
	query := `
		INSERT INTO cash_movements (id, type, amount, description, movement_date, created_at)
		VALUES ($1, $2, $3, $4, $5::date, $6)
		RETURNING ` + cashMovementColumns
	var out entity.CashMovement
	var movementDate time.Time
	err := g.q.QueryRow(ctx, query,
		uuid.New().String(), m.Type, m.Amount, m.Description, m.MovementDate, time.Now(),
	).Scan(&out.ID, &out.Type, &out.Amount, &out.Description, &movementDate, &out.CreatedAt)
	if err != nil {
		return nil, classify("insert cash movement", err)
	}
	out.MovementDate = movementDate.Format(time.DateOnly)
	return &out, nil
}
