package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IIJPRII/VeggieBurger/internal/application/dto"
	"github.com/IIJPRII/VeggieBurger/internal/application/usecase"
	"github.com/IIJPRII/VeggieBurger/internal/domain"
)

func TestCashMovementCreateConFechaDeHoy(t *testing.T) {
	env := newTestEnv(t)
	uc := usecase.NewCashMovementUseCase(env.cash)

	out, err := uc.Create(context.Background(), dto.CreateCashMovementRequest{
		Type:        "expense",
		Amount:      decimal.NewFromInt(1200),
		Description: "Compra de insumos",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format(time.DateOnly), out.MovementDate)
	assert.Equal(t, "expense", out.Type)
}

func TestCashMovementCreateEntradaInvalida(t *testing.T) {
	env := newTestEnv(t)
	uc := usecase.NewCashMovementUseCase(env.cash)
	ctx := context.Background()

	cases := []dto.CreateCashMovementRequest{
		{Type: "transfer", Amount: decimal.NewFromInt(10), Description: "tipo desconocido"},
		{Type: "income", Amount: decimal.NewFromInt(-10), Description: "monto negativo"},
		{Type: "income", Amount: decimal.NewFromInt(10), Description: ""},
	}
	for _, in := range cases {
		_, err := uc.Create(ctx, in)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, env.cash.Items())
}

func TestBalanceTransferCreateFechaPorDefecto(t *testing.T) {
	env := newTestEnv(t)
	uc := usecase.NewBalanceTransferUseCase(env.transfers)

	out, err := uc.Create(context.Background(), dto.CreateBalanceTransferRequest{
		FromDate: "2026-08-27",
		ToDate:   "2026-08-28",
		Amount:   decimal.NewFromInt(5000),
	})
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format(time.DateOnly), out.TransferDate, "sin transfer_date se usa hoy")
}

func TestBalanceTransferCreateEntradaInvalida(t *testing.T) {
	env := newTestEnv(t)
	uc := usecase.NewBalanceTransferUseCase(env.transfers)
	ctx := context.Background()

	cases := []dto.CreateBalanceTransferRequest{
		{FromDate: "", ToDate: "2026-08-28", Amount: decimal.NewFromInt(10)},
		{FromDate: "2026-08-27", ToDate: "", Amount: decimal.NewFromInt(10)},
		{FromDate: "2026-08-27", ToDate: "2026-08-28", Amount: decimal.NewFromInt(-10)},
	}
	for _, in := range cases {
		_, err := uc.Create(ctx, in)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, env.transfers.Items())
}

func TestStatusRefreshAllSigueEnFallback(t *testing.T) {
	env := newTestEnv(t)
	uc := usecase.NewStatusUseCase(env.products, env.sales, env.cash, env.transfers)

	// Con las tablas ausentes el reintento no es un error: cada repositorio
	// permanece en fallback y lo reporta en su estado.
	require.NoError(t, uc.RefreshAll(context.Background()))

	statuses := uc.Statuses()
	require.Len(t, statuses, 4)
	tables := make([]string, 0, 4)
	for _, st := range statuses {
		tables = append(tables, st.Table)
		assert.True(t, st.UsingFallback, "tabla %s debe estar en fallback", st.Table)
		assert.NotEmpty(t, st.Error)
	}
	assert.ElementsMatch(t, []string{"products", "sales", "cash_movements", "balance_transfers"}, tables)
}
