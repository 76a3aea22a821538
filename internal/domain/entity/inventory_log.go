package entity

import "time"

// Tipos de transacción del diario de inventario.
const (
	TxStockIn    = "STOCK_IN"
	TxStockOut   = "STOCK_OUT"
	TxMove       = "MOVE"
	TxAudit      = "AUDIT"
	TxAdjust     = "ADJUST"
	TxDamagedIn  = "DAMAGED_IN"
	TxDamagedOut = "DAMAGED_OUT"
)

// InventoryLog entrada del diario de movimientos (append-only, nunca se
// actualiza ni se borra). Toda mutación exitosa de Quantity, DamagedQuantity
// o ShelfID de un producto produce exactamente una fila.
type InventoryLog struct {
	ID              string
	ProductID       string
	TransactionType string
	QuantityChange  int     // delta con signo sobre el contador afectado; 0 para MOVE
	OldShelfID      *string // snapshot antes del movimiento
	NewShelfID      *string // snapshot después; igual a OldShelfID si no hubo traslado
	Note            *string
	CreatedAt       time.Time
}

// LogWithProduct fila del diario enriquecida con datos del producto (para listados).
type LogWithProduct struct {
	InventoryLog
	ProductName    string
	ProductBarcode string
}
