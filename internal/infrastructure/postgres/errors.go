package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/IIJPRII/VeggieBurger/internal/domain"
)

// isUndefinedTable verifica si un error corresponde a una tabla inexistente.
// La señal principal es el código SQLSTATE 42P01 (undefined_table); los
// marcadores de texto se mantienen solo como shim de compatibilidad con
// backends que no exponen el código estructurado (ej. la capa REST de Supabase
// responde "does not exist" o "schema cache").
func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "42P01" // undefined_table
	}
	msg := err.Error()
	return strings.Contains(msg, "does not exist") || strings.Contains(msg, "schema cache")
}

// classify envuelve un error del gateway distinguiendo la clase "tabla no existe"
// (domain.ErrSchemaMissing) del resto de fallos de persistencia.
func classify(op string, err error) error {
	if isUndefinedTable(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrSchemaMissing)
	}
	return fmt.Errorf("%s: %w", op, err)
}
