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
	msgSalesSchemaMissing = "Las tablas de ventas no están configuradas."
	msgSalesConnection    = "Error conectando con la base de datos de ventas."
)

// SaleRepository sincroniza el espejo de ventas con el gateway. Las ventas
// son inmutables: solo fetch y create.
type SaleRepository struct {
	gw  gateway.SaleGateway
	log *logger.Logger

	mu            sync.RWMutex
	mirror        []entity.Sale
	usingFallback bool
	loading       bool
	lastErr       string
}

// NewSaleRepository construye el repositorio.
func NewSaleRepository(gw gateway.SaleGateway, log *logger.Logger) *SaleRepository {
	return &SaleRepository{gw: gw, log: log}
}

// Fetch reemplaza el espejo con las filas del backend, opcionalmente
// filtradas por igualdad de sale_date (YYYY-MM-DD; vacío = sin filtro).
func (r *SaleRepository) Fetch(ctx context.Context, dateFilter string) error {
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
		r.log.Warn().Err(err).Msg("tabla sales ausente, modo fallback")
		if !r.usingFallback {
			r.mirror = nil
		}
		r.usingFallback = true
		r.lastErr = msgSalesSchemaMissing
		return nil
	}

	r.log.Error().Err(err).Msg("error consultando sales")
	if r.usingFallback {
		return nil
	}
	r.mirror = nil
	r.usingFallback = true
	r.lastErr = msgSalesConnection
	return err
}

// Create persiste una venta y la antepone al espejo. En fallback sintetiza
// id y timestamp localmente.
func (r *SaleRepository) Create(ctx context.Context, s entity.Sale) (*entity.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.usingFallback {
		s.ID = fallbackID()
		s.CreatedAt = time.Now()
		r.mirror = append([]entity.Sale{s}, r.mirror...)
		return &s, nil
	}

	created, err := r.gw.Insert(ctx, s)
	if err != nil {
		return nil, err
	}
	r.mirror = append([]entity.Sale{*created}, r.mirror...)
	return created, nil
}

// ByDateRange devuelve las ventas con sale_date dentro de [startDate, endDate].
// En fallback (o si la tabla desaparece a mitad de camino) filtra el espejo local.
func (r *SaleRepository) ByDateRange(ctx context.Context, startDate, endDate string) ([]entity.Sale, error) {
	r.mu.RLock()
	usingFallback := r.usingFallback
	r.mu.RUnlock()

	if !usingFallback {
		items, err := r.gw.SelectRange(ctx, startDate, endDate)
		if err == nil {
			return items, nil
		}
		if !errors.Is(err, domain.ErrSchemaMissing) {
			return nil, err
		}
		r.log.Warn().Err(err).Msg("rango de ventas: tabla ausente, filtrando espejo local")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entity.Sale
	for _, s := range r.mirror {
		if s.SaleDate >= startDate && s.SaleDate <= endDate {
			out = append(out, s)
		}
	}
	return out, nil
}

// Items devuelve una copia del espejo.
func (r *SaleRepository) Items() []entity.Sale {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Sale, len(r.mirror))
	copy(out, r.mirror)
	return out
}

// UsingFallback indica si el repositorio sirve datos locales.
func (r *SaleRepository) UsingFallback() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.usingFallback
}

// LastError descriptor del último error de conexión.
func (r *SaleRepository) LastError() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastErr
}

// Status estado observable para el indicador de base de datos.
func (r *SaleRepository) Status() Status {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Status{Table: "sales", Loading: r.loading, UsingFallback: r.usingFallback, Error: r.lastErr}
}

func (r *SaleRepository) setLoading(v bool) {
	r.mu.Lock()
	r.loading = v
	r.mu.Unlock()
}
