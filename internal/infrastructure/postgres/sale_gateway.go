package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/IIJPRII/VeggieBurger/internal/domain/entity"
	"github.com/IIJPRII/VeggieBurger/internal/domain/gateway"
)

var _ gateway.SaleGateway = (*SaleGateway)(nil)

const saleColumns = `id, product_id, product_name, quantity, unit_price, total, sale_date, created_at`

// SaleGateway adaptador de la tabla sales sobre PostgreSQL.
type SaleGateway struct {
	q Querier
}

// NewSaleGateway construye el adaptador.
func NewSaleGateway(q Querier) *SaleGateway {
	return &SaleGateway{q: q}
}

// Select lista las ventas (opcionalmente filtradas por sale_date) ordenadas
// por fecha de creación descendente.
func (g *SaleGateway) Select(ctx context.Context, dateFilter string) ([]entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales`
	args := []any{}
	if dateFilter != "" {
		query += ` WHERE sale_date = $1::date`
		args = append(args, dateFilter)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := g.q.Query(ctx, query, args...)
	if err != nil {
		return nil, classify("select sales", err)
	}
	defer rows.Close()
	return scanSales(rows)
}

// SelectRange lista las ventas con sale_date dentro del rango [startDate, endDate],
// ordenadas por sale_date descendente.
func (g *SaleGateway) SelectRange(ctx context.Context, startDate, endDate string) ([]entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales
		WHERE sale_date >= $1::date AND sale_date <= $2::date
		ORDER BY sale_date DESC`
	rows, err := g.q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, classify("select sales range", err)
	}
	defer rows.Close()
	return scanSales(rows)
}

// Insert persiste una venta. Las ventas son inmutables: no hay update ni delete.
func (g *SaleGateway) Insert(ctx context.Context, s entity.Sale) (*entity.Sale, error) {
	query := `
		INSERT INTO sales (id, product_id, product_name, quantity, unit_price, total, sale_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7::date, $8)
		RETURNING ` + saleColumns
	row := g.q.QueryRow(ctx, query,
		uuid.New().String(), s.ProductID, s.ProductName, s.Quantity, s.UnitPrice, s.Total, s.SaleDate, time.Now(),
	)
	out, err := scanSale(row)
	if err != nil {
		return nil, classify("insert sale", err)
	}
	return out, nil
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var saleDate time.Time
	if err := row.Scan(&s.ID, &s.ProductID, &s.ProductName, &s.Quantity,
		&s.UnitPrice, &s.Total, &saleDate, &s.CreatedAt); err != nil {
		return nil, err
	}
	s.SaleDate = saleDate.Format(time.DateOnly)
	return &s, nil
}

func scanSales(rows pgx.Rows) ([]entity.Sale, error) {
	var list []entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("select sales", err)
	}
	return list, nil
}
