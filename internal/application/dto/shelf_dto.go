package dto

import "time"

// CreateShelfRequest body para POST /api/shelves.
type CreateShelfRequest struct {
	Code     string `json:"code"`
	Capacity int    `json:"capacity,omitempty"` // por defecto 100
}

// ShelfResponse representación HTTP de una estantería.
type ShelfResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
}

// DeleteShelfResult resumen del borrado: cuántos productos quedaron sin estantería.
type DeleteShelfResult struct {
	UnassignedProducts int `json:"unassigned_products"`
}
