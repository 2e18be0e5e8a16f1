package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/IIJPRII/VeggieBurger/internal/domain"
	"github.com/IIJPRII/VeggieBurger/internal/domain/entity"
	"github.com/IIJPRII/VeggieBurger/internal/domain/gateway"
)

var _ gateway.ProductGateway = (*ProductGateway)(nil)

const productColumns = `id, name, description, price, stock, category, min_stock, created_at, updated_at`

// ProductGateway adaptador de la tabla products sobre PostgreSQL.
type ProductGateway struct {
	q Querier
}

// NewProductGateway construye el adaptador. Pasar pool o tx (Querier).
func NewProductGateway(q Querier) *ProductGateway {
	return &ProductGateway{q: q}
}

// Select lista todos los productos ordenados por fecha de creación descendente.
func (g *ProductGateway) Select(ctx context.Context) ([]entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	rows, err := g.q.Query(ctx, query)
	if err != nil {
		return nil, classify("select products", err)
	}
	defer rows.Close()

	var list []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock,
			&p.Category, &p.MinStock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("select products", err)
	}
	return list, nil
}

// Insert persiste un producto nuevo. El id y los timestamps los asigna el gateway.
func (g *ProductGateway) Insert(ctx context.Context, p entity.Product) (*entity.Product, error) {
	now := time.Now()
	query := `
		INSERT INTO products (id, name, description, price, stock, category, min_stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING ` + productColumns
	var out entity.Product
	err := g.q.QueryRow(ctx, query,
		uuid.New().String(), p.Name, p.Description, p.Price, p.Stock, p.Category, p.MinStock, now,
	).Scan(&out.ID, &out.Name, &out.Description, &out.Price, &out.Stock,
		&out.Category, &out.MinStock, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, classify("insert product", err)
	}
	return &out, nil
}

// Update aplica una actualización parcial y devuelve la fila resultante.
// Solo se tocan las columnas presentes en el patch.
func (g *ProductGateway) Update(ctx context.Context, id string, patch entity.ProductPatch) (*entity.Product, error) {
	sets := make([]string, 0, 7)
	args := make([]any, 0, 8)
	args = append(args, id)

	add := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Price != nil {
		add("price", *patch.Price)
	}
	if patch.Stock != nil {
		add("stock", *patch.Stock)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.MinStock != nil {
		add("min_stock", *patch.MinStock)
	}
	add("updated_at", time.Now())

	query := "UPDATE products SET "
	for i, s := range sets {
		if i > 0 {
			query += ", "
		}
		query += s
	}
	query += " WHERE id = $1 RETURNING " + productColumns

	var out entity.Product
	err := g.q.QueryRow(ctx, query, args...).Scan(&out.ID, &out.Name, &out.Description,
		&out.Price, &out.Stock, &out.Category, &out.MinStock, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, classify("update product", err)
	}
	return &out, nil
}

// Delete elimina un producto por ID. No cascada hacia las ventas históricas.
func (g *ProductGateway) Delete(ctx context.Context, id string) error {
	cmd, err := g.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return classify("delete product", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("delete product: %w", domain.ErrNotFound)
	}
	return nil
}
