package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// InventoryLogRepository puerto del diario de movimientos. Solo inserta y
// lista; el diario nunca se actualiza ni se borra.
type InventoryLogRepository interface {
	Create(log *entity.InventoryLog) error
	// ListRecent últimas entradas con nombre y barcode del producto.
	ListRecent(limit int) ([]*entity.LogWithProduct, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.InventoryLog, error)
}
