package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier abstrae pool o tx de pgx para los adaptadores de tabla.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Unavailable es un Querier que falla toda operación con el error de conexión
// original. Permite arrancar la aplicación sin backend: los repositorios
// entran en modo fallback en el primer fetch y el reintento manual sigue
// disponible.
type Unavailable struct {
	Err error
}

var _ Querier = Unavailable{}

func (u Unavailable) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, u.Err
}

func (u Unavailable) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, u.Err
}

func (u Unavailable) QueryRow(context.Context, string, ...any) pgx.Row {
	return unavailableRow{err: u.Err}
}

type unavailableRow struct{ err error }

func (r unavailableRow) Scan(...any) error { return r.err }
