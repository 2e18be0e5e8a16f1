// Package repository contiene los repositorios de dominio: cada uno envuelve
// el gateway de persistencia de una entidad, mantiene un espejo en memoria de
// la colección y sustituye transparentemente un modo local (fallback) cuando
// la tabla del backend no existe.
//
// El espejo de cada repositorio solo lo mutan sus propias operaciones; las
// capas de agregación y presentación lo leen vía copias.
package repository

import (
	"strconv"
	"sync"
	"time"
)

// Status estado observable de un repositorio para el indicador de base de datos.
type Status struct {
	Table         string `json:"table"`
	Loading       bool   `json:"loading"`
	UsingFallback bool   `json:"using_fallback"`
	Error         string `json:"error,omitempty"`
}

var (
	fallbackIDMu   sync.Mutex
	lastFallbackID int64
)

// fallbackID sintetiza un id local monotónico basado en el reloj (milisegundos
// epoch). Dos llamadas en el mismo milisegundo nunca devuelven el mismo valor.
func fallbackID() string {
	fallbackIDMu.Lock()
	defer fallbackIDMu.Unlock()

	id := time.Now().UnixMilli()
	if id <= lastFallbackID {
		id = lastFallbackID + 1
	}
	lastFallbackID = id
	return strconv.FormatInt(id, 10)
}
