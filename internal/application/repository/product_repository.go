package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/IIJPRII/VeggieBurger/internal/domain"
	"github.com/IIJPRII/VeggieBurger/internal/domain/entity"
	"github.com/IIJPRII/VeggieBurger/internal/domain/gateway"
	"github.com/IIJPRII/VeggieBurger/pkg/logger"
)

// Mensajes de estado visibles al usuario (banner informativo).
const (
	msgProductsSchemaMissing = "Las tablas de la base de datos no están configuradas. Usando datos de ejemplo."
	msgProductsConnection    = "Error conectando con la base de datos. Usando datos de ejemplo."
)

// seedProducts filas de ejemplo con las que se siembra el espejo de productos
// al entrar en modo fallback.
func seedProducts() []entity.Product {
	return []entity.Product{
		{
			ID:          "1",
			Name:        "Laptop HP",
			Description: "Laptop HP Pavilion 15.6\"",
			Price:       decimal.NewFromInt(850000),
			Stock:       5,
			Category:    "Electrónicos",
			MinStock:    2,
		},
		{
			ID:          "2",
			Name:        "Mouse Logitech",
			Description: "Mouse inalámbrico Logitech MX Master",
			Price:       decimal.NewFromInt(45000),
			Stock:       15,
			Category:    "Accesorios",
			MinStock:    5,
		},
	}
}

// ProductRepository sincroniza el espejo de productos con el gateway.
type ProductRepository struct {
	gw  gateway.ProductGateway
	log *logger.Logger

	mu            sync.RWMutex
	mirror        []entity.Product
	usingFallback bool
	loading       bool
	lastErr       string
}

// NewProductRepository construye el repositorio. El espejo arranca vacío
// hasta el primer Fetch.
func NewProductRepository(gw gateway.ProductGateway, log *logger.Logger) *ProductRepository {
	return &ProductRepository{gw: gw, log: log}
}

// Fetch reemplaza el espejo con las filas del backend (orden: creación
// descendente). Si la tabla no existe entra en modo fallback sembrando los
// datos de ejemplo y retorna nil (no fatal). Cualquier otro error también
// engancha el fallback de forma defensiva, pero se propaga al llamador.
// Un Fetch exitoso posterior sale del fallback.
func (r *ProductRepository) Fetch(ctx context.Context) error {
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
		r.log.Warn().Err(err).Msg("tabla products ausente, usando datos de ejemplo")
		if !r.usingFallback {
			r.mirror = seedProducts()
		}
		r.usingFallback = true
		r.lastErr = msgProductsSchemaMissing
		return nil
	}

	r.log.Error().Err(err).Msg("error consultando products")
	if r.usingFallback {
		// Ya en fallback: conservar el espejo local (idempotente).
		return nil
	}
	r.mirror = nil
	r.usingFallback = true
	r.lastErr = msgProductsConnection
	return err
}

// Create persiste un producto nuevo y lo antepone al espejo. En fallback
// sintetiza id y timestamps localmente.
func (r *ProductRepository) Create(ctx context.Context, p entity.Product) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.usingFallback {
		now := time.Now()
		p.ID = fallbackID()
		p.CreatedAt = now
		p.UpdatedAt = now
		r.mirror = append([]entity.Product{p}, r.mirror...)
		return &p, nil
	}

	created, err := r.gw.Insert(ctx, p)
	if err != nil {
		return nil, err // espejo intacto
	}
	r.mirror = append([]entity.Product{*created}, r.mirror...)
	return created, nil
}

// Update aplica una actualización parcial. En fallback fusiona los campos
// sobre la fila local y estampa la hora; sobre un id ausente es un no-op y
// devuelve (nil, nil). En modo conectado delega y reemplaza la fila del
// espejo con la devuelta por el gateway.
func (r *ProductRepository) Update(ctx context.Context, id string, patch entity.ProductPatch) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.usingFallback {
		for i := range r.mirror {
			if r.mirror[i].ID == id {
				patch.Apply(&r.mirror[i], time.Now())
				out := r.mirror[i]
				return &out, nil
			}
		}
		return nil, nil
	}

	updated, err := r.gw.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	for i := range r.mirror {
		if r.mirror[i].ID == id {
			r.mirror[i] = *updated
			break
		}
	}
	return updated, nil
}

// Delete elimina un producto del espejo; en modo conectado solo después de
// que el gateway confirme. No cascada a las ventas históricas.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.usingFallback {
		if err := r.gw.Delete(ctx, id); err != nil {
			return err
		}
	}
	kept := r.mirror[:0]
	for _, p := range r.mirror {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.mirror = kept
	return nil
}

// Items devuelve una copia del espejo (orden: creación descendente).
func (r *ProductRepository) Items() []entity.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Product, len(r.mirror))
	copy(out, r.mirror)
	return out
}

// GetByID busca un producto en el espejo. Devuelve nil si no está.
func (r *ProductRepository) GetByID(id string) *entity.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.mirror {
		if p.ID == id {
			out := p
			return &out
		}
	}
	return nil
}

// UsingFallback indica si el repositorio sirve datos locales.
func (r *ProductRepository) UsingFallback() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.usingFallback
}

// LastError descriptor del último error de conexión (vacío si no hay).
func (r *ProductRepository) LastError() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastErr
}

// Status estado observable para el indicador de base de datos.
func (r *ProductRepository) Status() Status {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Status{Table: "products", Loading: r.loading, UsingFallback: r.usingFallback, Error: r.lastErr}
}

func (r *ProductRepository) setLoading(v bool) {
	r.mu.Lock()
	r.loading = v
	r.mu.Unlock()
}
