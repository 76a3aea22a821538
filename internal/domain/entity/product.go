package entity

import "time"

// Product representa un producto físico del almacén.
// Quantity es el stock sano (vendible) y DamagedQuantity el stock apartado por
// daños; son contadores disjuntos, una unidad nunca cuenta en ambos.
// MinStock es el umbral de reorden para la clasificación de stock crítico.
type Product struct {
	ID              string
	Barcode         string // identificador externo único, cruza con el listing del marketplace
	Name            string
	Description     string
	Quantity        int // >= 0 siempre
	DamagedQuantity int // >= 0 siempre
	MinStock        int // >= 1
	ShelfID         *string // estantería actual; nil = sin asignar
	CategoryID      *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsCritical indica si el stock sano está en o bajo el umbral de reorden.
// El stock dañado nunca participa en esta clasificación.
func (p *Product) IsCritical() bool {
	return p.Quantity <= p.MinStock
}
