package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IIJPRII/VeggieBurger/internal/application/repository"
	"github.com/IIJPRII/VeggieBurger/internal/domain"
	"github.com/IIJPRII/VeggieBurger/internal/domain/entity"
	"github.com/IIJPRII/VeggieBurger/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newTestLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

// errSchemaMissing simula el error que devuelve el gateway cuando la tabla no
// existe (envuelto como lo envuelve el adaptador real).
var errSchemaMissing = fmt.Errorf("select products: %w", domain.ErrSchemaMissing)

// fakeProductGateway gateway de productos configurable por función.
type fakeProductGateway struct {
	selectFn func(ctx context.Context) ([]entity.Product, error)
	insertFn func(ctx context.Context, p entity.Product) (*entity.Product, error)
	updateFn func(ctx context.Context, id string, patch entity.ProductPatch) (*entity.Product, error)
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeProductGateway) Select(ctx context.Context) ([]entity.Product, error) {
	return f.selectFn(ctx)
}

func (f *fakeProductGateway) Insert(ctx context.Context, p entity.Product) (*entity.Product, error) {
	return f.insertFn(ctx, p)
}

func (f *fakeProductGateway) Update(ctx context.Context, id string, patch entity.ProductPatch) (*entity.Product, error) {
	return f.updateFn(ctx, id, patch)
}

func (f *fakeProductGateway) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func productNamed(id, name string, stock int) entity.Product {
	return entity.Product{
		ID:       id,
		Name:     name,
		Price:    decimal.NewFromInt(100),
		Stock:    stock,
		MinStock: 1,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Fetch
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepositoryFetchExitoso(t *testing.T) {
	gw := &fakeProductGateway{
		selectFn: func(context.Context) ([]entity.Product, error) {
			return []entity.Product{productNamed("a", "Arepa", 10)}, nil
		},
	}
	repo := repository.NewProductRepository(gw, newTestLogger())

	require.NoError(t, repo.Fetch(context.Background()))

	items := repo.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Arepa", items[0].Name)
	assert.False(t, repo.UsingFallback())
	assert.Empty(t, repo.LastError())
}

func TestProductRepositoryTablaAusenteSiembraEjemplos(t *testing.T) {
	gw := &fakeProductGateway{
		selectFn: func(context.Context) ([]entity.Product, error) {
			return nil, errSchemaMissing
		},
	}
	repo := repository.NewProductRepository(gw, newTestLogger())

	// Tabla ausente no es fatal: Fetch devuelve nil y siembra los ejemplos.
	require.NoError(t, repo.Fetch(context.Background()))

	assert.True(t, repo.UsingFallback())
	assert.Equal(t, "Las tablas de la base de datos no están configuradas. Usando datos de ejemplo.", repo.LastError())

	items := repo.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "Laptop HP", items[0].Name)
	assert.Equal(t, "2", items[1].ID)
	assert.Equal(t, "Mouse Logitech", items[1].Name)
}

func TestProductRepositoryErrorDeConexion(t *testing.T) {
	errConn := errors.New("dial tcp: connection refused")
	gw := &fakeProductGateway{
		selectFn: func(context.Context) ([]entity.Product, error) {
			return nil, errConn
		},
	}
	repo := repository.NewProductRepository(gw, newTestLogger())

	err := repo.Fetch(context.Background())
	require.ErrorIs(t, err, errConn, "los errores de conexión se propagan")

	assert.True(t, repo.UsingFallback())
	assert.Empty(t, repo.Items(), "error de conexión no siembra ejemplos")
	assert.Equal(t, "Error conectando con la base de datos. Usando datos de ejemplo.", repo.LastError())
}

func TestProductRepositoryFetchExitosoSaleDelFallback(t *testing.T) {
	failing := true
	gw := &fakeProductGateway{
		selectFn: func(context.Context) ([]entity.Product, error) {
			if failing {
				return nil, errSchemaMissing
			}
			return []entity.Product{productNamed("a", "Arepa", 10)}, nil
		},
	}
	repo := repository.NewProductRepository(gw, newTestLogger())

	require.NoError(t, repo.Fetch(context.Background()))
	require.True(t, repo.UsingFallback())

	failing = false
	require.NoError(t, repo.Fetch(context.Background()))

	assert.False(t, repo.UsingFallback())
	assert.Empty(t, repo.LastError())
	require.Len(t, repo.Items(), 1)
	assert.Equal(t, "Arepa", repo.Items()[0].Name)
}

func TestProductRepositoryFallbackConservaCambiosLocales(t *testing.T) {
	gw := &fakeProductGateway{
		selectFn: func(context.Context) ([]entity.Product, error) {
			return nil, errSchemaMissing
		},
	}
	repo := repository.NewProductRepository(gw, newTestLogger())
	require.NoError(t, repo.Fetch(context.Background()))

	created, err := repo.Create(context.Background(), entity.Product{Name: "Queso", Price: decimal.NewFromInt(5000)})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID, "en fallback se sintetiza un id local")
	assert.False(t, created.CreatedAt.IsZero())

	// Un fetch fallido estando ya en fallback no re-siembra: el producto
	// creado localmente sobrevive.
	require.NoError(t, repo.Fetch(context.Background()))

	items := repo.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "Queso", items[0].Name, "lo más reciente va primero")
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepositoryCreateConectadoAnteponeAlEspejo(t *testing.T) {
	gw := &fakeProductGateway{
		selectFn: func(context.Context) ([]entity.Product, error) {
			return []entity.Product{productNamed("a", "Arepa", 10)}, nil
		},
		insertFn: func(_ context.Context, p entity.Product) (*entity.Product, error) {
			p.ID = "gw-id"
			return &p, nil
		},
	}
	repo := repository.NewProductRepository(gw, newTestLogger())
	require.NoError(t, repo.Fetch(context.Background()))

	created, err := repo.Create(context.Background(), entity.Product{Name: "Queso"})
	require.NoError(t, err)
	assert.Equal(t, "gw-id", created.ID, "el id lo asigna el gateway")

	items := repo.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Queso", items[0].Name)
}

func TestProductRepositoryCreateConectadoErrorNoTocaEspejo(t *testing.T) {
	errInsert := errors.New("insert falló")
	gw := &fakeProductGateway{
		selectFn: func(context.Context) ([]entity.Product, error) {
			return []entity.Product{productNamed("a", "Arepa", 10)}, nil
		},
		insertFn: func(context.Context, entity.Product) (*entity.Product, error) {
			return nil, errInsert
		},
	}
	repo := repository.NewProductRepository(gw, newTestLogger())
	require.NoError(t, repo.Fetch(context.Background()))

	_, err := repo.Create(context.Background(), entity.Product{Name: "Queso"})
	require.ErrorIs(t, err, errInsert)
	assert.Len(t, repo.Items(), 1, "el espejo queda intacto")
}

func TestProductRepositoryUpdateFallback(t *testing.T) {
	gw := &fakeProductGateway{
		selectFn: func(context.Context) ([]entity.Product, error) {
			return nil, errSchemaMissing
		},
	}
	repo := repository.NewProductRepository(gw, newTestLogger())
	require.NoError(t, repo.Fetch(context.Background()))

	newStock := 99
	updated, err := repo.Update(context.Background(), "1", entity.ProductPatch{Stock: &newStock})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 99, updated.Stock)
	assert.Equal(t, "Laptop HP", updated.Name, "los campos no parchados se conservan")

	// Id ausente: no-op sin error.
	missing, err := repo.Update(context.Background(), "no-existe", entity.ProductPatch{Stock: &newStock})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductRepositoryDeleteFallback(t *testing.T) {
	gw := &fakeProductGateway{
		selectFn: func(context.Context) ([]entity.Product, error) {
			return nil, errSchemaMissing
		},
	}
	repo := repository.NewProductRepository(gw, newTestLogger())
	require.NoError(t, repo.Fetch(context.Background()))

	require.NoError(t, repo.Delete(context.Background(), "1"))

	items := repo.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ID)
}

func TestProductRepositoryStatus(t *testing.T) {
	gw := &fakeProductGateway{
		selectFn: func(context.Context) ([]entity.Product, error) {
			return nil, errSchemaMissing
		},
	}
	repo := repository.NewProductRepository(gw, newTestLogger())
	require.NoError(t, repo.Fetch(context.Background()))

	st := repo.Status()
	assert.Equal(t, "products", st.Table)
	assert.True(t, st.UsingFallback)
	assert.False(t, st.Loading)
	assert.NotEmpty(t, st.Error)
}
