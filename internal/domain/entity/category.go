package entity

import "time"

// Category clasificación opcional de productos (sin efecto en la lógica de stock).
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
