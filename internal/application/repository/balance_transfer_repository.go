package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/IIJPRII/VeggieBurger/internal/domain"
	"github.com/IIJPRII/VeggieBurger/internal/domain/entity"
	"github.com/IIJPRII/VeggieBurger/internal/domain/gateway"
	"github.com/IIJPRII/VeggieBurger/pkg/logger"
)

const (
	msgTransfersSchemaMissing = "Las tablas de traslados no están configuradas."
	msgTransfersConnection    = "Error conectando con la base de datos de traslados."
)

// BalanceTransferRepository sincroniza el espejo de traslados de saldo con
// el gateway. Los traslados son registros contables informativos: solo
// fetch y create.
type BalanceTransferRepository struct {
	gw  gateway.BalanceTransferGateway
	log *logger.Logger

	mu            sync.RWMutex
	mirror        []entity.BalanceTransfer
	usingFallback bool
	loading       bool
	lastErr       string
}

// NewBalanceTransferRepository construye el repositorio.
func NewBalanceTransferRepository(gw gateway.BalanceTransferGateway, log *logger.Logger) *BalanceTransferRepository {
	return &BalanceTransferRepository{gw: gw, log: log}
}

// Fetch reemplaza el espejo con las filas del backend.
func (r *BalanceTransferRepository) Fetch(ctx context.Context) error {
	r.setLoading(true)
	defer r.setLoading(false)

	items, err := r.gw.Select(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if err == nil {
		r.mirror = items
		r.usingFallback = false
		r.lastErr = ""
		return nil
	}

	if errors.Is(err, domain.ErrSchemaMissing) {
		r.log.Warn().Err(err).Msg("tabla balance_transfers ausente, modo fallback")
		if !r.usingFallback {
			r.mirror = nil
		}
		r.usingFallback = true
		r.lastErr = msgTransfersSchemaMissing
		return nil
	}

	r.log.Error().Err(err).Msg("error consultando balance_transfers")
	if r.usingFallback {
		return nil
	}
	r.mirror = nil
	r.usingFallback = true
	r.lastErr = msgTransfersConnection
	return err
}

// Create persiste un traslado y lo antepone al espejo.
func (r *BalanceTransferRepository) Create(ctx context.Context, t entity.BalanceTransfer) (*entity.BalanceTransfer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.usingFallback {
		t.ID = fallbackID()
		t.CreatedAt = time.Now()
		r.mirror = append([]entity.BalanceTransfer{t}, r.mirror...)
		return &t, nil
	}

	created, err := r.gw.Insert(ctx, t)
	if err != nil {
		return nil, err
	}
	r.mirror = append([]entity.BalanceTransfer{*created}, r.mirror...)
	return created, nil
}

// Items devuelve una copia del espejo (el libro de traslados, más reciente primero).
func (r *BalanceTransferRepository) Items() []entity.BalanceTransfer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.BalanceTransfer, len(r.mirror))
	copy(out, r.mirror)
	return out
}

// UsingFallback indica si el repositorio sirve datos locales.
func (r *BalanceTransferRepository) UsingFallback() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.usingFallback
}

// LastError descriptor del último error de conexión.
func (r *BalanceTransferRepository) LastError() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastErr
}

// Status estado observable para el indicador de base de datos.
func (r *BalanceTransferRepository) Status() Status {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Status{Table: "balance_transfers", Loading: r.loading, UsingFallback: r.usingFallback, Error: r.lastErr}
}

func (r *BalanceTransferRepository) setLoading(v bool) {
	r.mu.Lock()
	r.loading = v
	r.mu.Unlock()
}
