package dto

import "time"

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Barcode     string  `json:"barcode"`
	Description string  `json:"description,omitempty"`
	Quantity    int     `json:"quantity,omitempty"`
	MinStock    int     `json:"min_stock,omitempty"` // por defecto 5
	ShelfID     *string `json:"shelf_id,omitempty"`
	CategoryID  *string `json:"category_id,omitempty"`
}

// UpdateMinStockRequest body para PUT /api/products/{id}/min-stock.
type UpdateMinStockRequest struct {
	MinStock int `json:"min_stock"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID              string    `json:"id"`
	Barcode         string    `json:"barcode"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Quantity        int       `json:"quantity"`
	DamagedQuantity int       `json:"damaged_quantity"`
	MinStock        int       `json:"min_stock"`
	ShelfID         *string   `json:"shelf_id,omitempty"`
	CategoryID      *string   `json:"category_id,omitempty"`
	Critical        bool      `json:"critical"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
