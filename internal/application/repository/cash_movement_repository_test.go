package repository_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IIJPRII/VeggieBurger/internal/application/repository"
	"github.com/IIJPRII/VeggieBurger/internal/domain/entity"
)

// fakeCashGateway gateway de caja configurable por función.
type fakeCashGateway struct {
	selectFn func(ctx context.Context, dateFilter string) ([]entity.CashMovement, error)
	insertFn func(ctx context.Context, m entity.CashMovement) (*entity.CashMovement, error)
}

func (f *fakeCashGateway) Select(ctx context.Context, dateFilter string) ([]entity.CashMovement, error) {
	return f.selectFn(ctx, dateFilter)
}

func (f *fakeCashGateway) Insert(ctx context.Context, m entity.CashMovement) (*entity.CashMovement, error) {
	return f.insertFn(ctx, m)
}

// fakeTransferGateway gateway de traslados configurable por función.
type fakeTransferGateway struct {
	selectFn func(ctx context.Context) ([]entity.BalanceTransfer, error)
	insertFn func(ctx context.Context, tr entity.BalanceTransfer) (*entity.BalanceTransfer, error)
}

func (f *fakeTransferGateway) Select(ctx context.Context) ([]entity.BalanceTransfer, error) {
	return f.selectFn(ctx)
}

func (f *fakeTransferGateway) Insert(ctx context.Context, tr entity.BalanceTransfer) (*entity.BalanceTransfer, error) {
	return f.insertFn(ctx, tr)
}

func TestCashMovementRepositoryTablaAusente(t *testing.T) {
	gw := &fakeCashGateway{
		selectFn: func(context.Context, string) ([]entity.CashMovement, error) {
			return nil, errSchemaMissing
		},
	}
	repo := repository.NewCashMovementRepository(gw, newTestLogger())

	require.NoError(t, repo.Fetch(context.Background(), ""))
	assert.True(t, repo.UsingFallback())
	assert.Empty(t, repo.Items())
	assert.Equal(t, "Las tablas de caja no están configuradas.", repo.LastError())
}

func TestCashMovementRepositoryFallbackConservaMovimientos(t *testing.T) {
	gw := &fakeCashGateway{
		selectFn: func(context.Context, string) ([]entity.CashMovement, error) {
			return nil, errSchemaMissing
		},
	}
	repo := repository.NewCashMovementRepository(gw, newTestLogger())
	require.NoError(t, repo.Fetch(context.Background(), ""))

	created, err := repo.Create(context.Background(), entity.CashMovement{
		Type:         entity.MovementIncome,
		Amount:       decimal.NewFromInt(500),
		Description:  "Venta: Arepa x5",
		MovementDate: "2026-08-28",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	require.NoError(t, repo.Fetch(context.Background(), ""))
	require.Len(t, repo.Items(), 1)
}

func TestBalanceTransferRepositoryTablaAusente(t *testing.T) {
	gw := &fakeTransferGateway{
		selectFn: func(context.Context) ([]entity.BalanceTransfer, error) {
			return nil, errSchemaMissing
		},
	}
	repo := repository.NewBalanceTransferRepository(gw, newTestLogger())

	require.NoError(t, repo.Fetch(context.Background()))
	assert.True(t, repo.UsingFallback())
	assert.Equal(t, "Las tablas de traslados no están configuradas.", repo.LastError())
}

func TestBalanceTransferRepositoryCreateConectado(t *testing.T) {
	gw := &fakeTransferGateway{
		selectFn: func(context.Context) ([]entity.BalanceTransfer, error) {
			return nil, nil
		},
		insertFn: func(_ context.Context, tr entity.BalanceTransfer) (*entity.BalanceTransfer, error) {
			tr.ID = "gw-id"
			return &tr, nil
		},
	}
	repo := repository.NewBalanceTransferRepository(gw, newTestLogger())
	require.NoError(t, repo.Fetch(context.Background()))

	created, err := repo.Create(context.Background(), entity.BalanceTransfer{
		FromDate:     "2026-08-27",
		ToDate:       "2026-08-28",
		Amount:       decimal.NewFromInt(1000),
		TransferDate: "2026-08-28",
	})
	require.NoError(t, err)
	assert.Equal(t, "gw-id", created.ID)
	require.Len(t, repo.Items(), 1)
	assert.Equal(t, "gw-id", repo.Items()[0].ID)
}
