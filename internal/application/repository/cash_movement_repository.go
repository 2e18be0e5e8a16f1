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
	msgCashSchemaMissing = "Las tablas de caja no están configuradas."
	msgCashConnection    = "Error conectando con la base de datos de caja."
)

// CashMovementRepository sincroniza el espejo de movimientos de caja con el
// gateway. Los movimientos son inmutables: solo fetch y create.
type CashMovementRepository struct {
	gw  gateway.CashMovementGateway
	log *logger.Logger

	mu            sync.RWMutex
	mirror        []entity.CashMovement
	usingFallback bool
	loading       bool
	lastErr       string
}

// NewCashMovementRepository construye el repositorio.
func NewCashMovementRepository(gw gateway.CashMovementGateway, log *logger.Logger) *CashMovementRepository {
	return &CashMovementRepository{gw: gw, log: log}
}

// Fetch reemplaza el espejo con las filas del backend, opcionalmente
// filtradas por igualdad de movement_date.
func (r *CashMovementRepository) Fetch(ctx context.Context, dateFilter string) error {
	r.setLoading(true)
	defer r.setLoading(false)

	items, err := r.gw.Select(ctx, dateFilter)

	r.mu.Lock()
	defer r.mu.Unlock()

	if err == nil {
		r.mirror = items
		r.usingFallback = false
		r.lastErr = ""
		return nil
	}

	if errors.Is(err, domain.ErrSchemaMissing) {
		r.log.Warn().Err(err).Msg("tabla cash_movements ausente, modo fallback")
		if !r.usingFallback {
			r.mirror = nil
		}
		r.usingFallback = true
		r.lastErr = msgCashSchemaMissing
		return nil
	}

	r.log.Error().Err(err).Msg("error consultando cash_movements")
	if r.usingFallback {
		return nil
	}
	r.mirror = nil
	r.usingFallback = true
	r.lastErr = msgCashConnection
	return err
}

// Create persiste un movimiento y lo antepone al espejo.
func (r *CashMovementRepository) Create(ctx context.Context, m entity.CashMovement) (*entity.CashMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.usingFallback {
		m.ID = fallbackID()
		m.CreatedAt = time.Now()
		r.mirror = append([]entity.CashMovement{m}, r.mirror...)
		return &m, nil
	}

	created, err := r.gw.Insert(ctx, m)
	if err != nil {
		return nil, err
	}
	r.mirror = append([]entity.CashMovement{*created}, r.mirror...)
	return created, nil
}

// Items devuelve una copia del espejo.
func (r *CashMovementRepository) Items() []entity.CashMovement {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.CashMovement, len(r.mirror))
	copy(out, r.mirror)
	return out
}

// UsingFallback indica si el repositorio sirve datos locales.
func (r *CashMovementRepository) UsingFallback() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.usingFallback
}

// LastError descriptor del último error de conexión.
func (r *CashMovementRepository) LastError() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastErr
}

// Status estado observable para el indicador de base de datos.
func (r *CashMovementRepository) Status() Status {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Status{Table: "cash_movements", Loading: r.loading, UsingFallback: r.usingFallback, Error: r.lastErr}
}

func (r *CashMovementRepository) setLoading(v bool) {
	r.mu.Lock()
	r.loading = v
	r.mu.Unlock()
}
