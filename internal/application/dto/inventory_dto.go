package dto

import "time"

// StockMovementRequest body para stock-in / stock-out / damaged-out.
type StockMovementRequest struct {
	ProductID string `json:"product_id"`
	Amount    int    `json:"amount"`
}

// DamagedInRequest body para damaged-in.
type DamagedInRequest struct {
	ProductID     string `json:"product_id"`
	Amount        int    `json:"amount"`
	FromMainStock bool   `json:"from_main_stock"`
}

// MoveShelfRequest body para move.
type MoveShelfRequest struct {
	ProductID  string `json:"product_id"`
	NewShelfID string `json:"new_shelf_id"`
}

// LogResponse asiento del diario con datos del producto.
type LogResponse struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"product_id"`
	ProductName     string    `json:"product_name"`
	ProductBarcode  string    `json:"product_barcode"`
	TransactionType string    `json:"transaction_type"`
	QuantityChange  int       `json:"quantity_change"`
	OldShelfID      *string   `json:"old_shelf_id,omitempty"`
	NewShelfID      *string   `json:"new_shelf_id,omitempty"`
	Note            *string   `json:"note,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
