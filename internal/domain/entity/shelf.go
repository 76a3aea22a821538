package entity

import "time"

// Shelf representa una estantería física del almacén donde se ubica un producto.
// Capacity es informativa; no se valida contra el número real de productos asignados.
type Shelf struct {
	ID        string
	Code      string // etiqueta única visible (ej. "A-12")
	Capacity  int
	CreatedAt time.Time
}
