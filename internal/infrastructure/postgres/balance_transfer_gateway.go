package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/IIJPRII/VeggieBurger/internal/domain/entity"
	"github.com/IIJPRII/VeggieBurger/internal/domain/gateway"
)

var _ gateway.BalanceTransferGateway = (*BalanceTransferGateway)(nil)

const balanceTransferColumns = `id, from_date, to_date, amount, description, transfer_date, created_at`

// BalanceTransferGateway adaptador de la tabla balance_transfers sobre PostgreSQL.
type BalanceTransferGateway struct {
	q Querier
}

// NewBalanceTransferGateway construye el adaptador.
func NewBalanceTransferGateway(q Querier) *BalanceTransferGateway {
	return &BalanceTransferGateway{q: q}
}

// Select lista los traslados ordenados por fecha de creación descendente.
func (g *BalanceTransferGateway) Select(ctx context.Context) ([]entity.BalanceTransfer, error) {
	query := `SELECT ` + balanceTransferColumns + ` FROM balance_transfers ORDER BY created_at DESC`
	rows, err := g.q.Query(ctx, query)
	if err != nil {
		return nil, classify("select balance transfers", err)
	}
	defer rows.Close()

	var list []entity.BalanceTransfer
	for rows.Next() {
		var t entity.BalanceTransfer
		var fromDate, toDate, transferDate time.Time
		if err := rows.Scan(&t.ID, &fromDate, &toDate, &t.Amount, &t.Description, &transferDate, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan balance transfer: %w", err)
		}
		t.FromDate = fromDate.Format(time.DateOnly)
		t.ToDate = toDate.Format(time.DateOnly)
		t.TransferDate = transferDate.Format(time.DateOnly)
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("select balance transfers", err)
	}
	return list, nil
}

// Insert persiste un traslado de saldo.
func (g *BalanceTransferGateway) Insert(ctx context.Context, t entity.BalanceTransfer) (*entity.BalanceTransfer, error) {
	query := `
		INSERT INTO balance_transfers (id, from_date, to_date, amount, description, transfer_date, created_at)
		VALUES ($1, $2::date, $3::date, $4, $5, $6::date, $7)
		RETURNING ` + balanceTransferColumns
	var out entity.BalanceTransfer
	var fromDate, toDate, transferDate time.Time
	err := g.q.QueryRow(ctx, query,
		uuid.New().String(), t.FromDate, t.ToDate, t.Amount, t.Description, t.TransferDate, time.Now(),
	).Scan(&out.ID, &fromDate, &toDate, &out.Amount, &out.Description, &transferDate, &out.CreatedAt)
	if err != nil {
		return nil, classify("insert balance transfer", err)
	}
	out.FromDate = fromDate.Format(time.DateOnly)
	out.ToDate = toDate.Format(time.DateOnly)
	out.TransferDate = transferDate.Format(time.DateOnly)
	return &out, nil
}
