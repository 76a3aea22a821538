package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.InventoryLogRepository = (*InventoryLogRepo)(nil)

// InventoryLogRepo implementación del diario de movimientos sobre PostgreSQL
// (usable con pool o tx). Append-only: no hay UPDATE ni DELETE.
type InventoryLogRepo struct {
	q Querier
}

// NewInventoryLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryLogRepository(q Querier) *InventoryLogRepo {
	return &InventoryLogRepo{q: q}
}

// Create persiste un asiento del diario.
func (r *InventoryLogRepo) Create(log *entity.InventoryLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_logs (id, product_id, transaction_type, quantity_change, old_shelf_id, new_shelf_id, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.ProductID, log.TransactionType, log.QuantityChange,
		log.OldShelfID, log.NewShelfID, log.Note, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create inventory log: %w", err)
	}
	return nil
}

// ListRecent últimas entradas del diario con nombre y barcode del producto.
func (r *InventoryLogRepo) ListRecent(limit int) ([]*entity.LogWithProduct, error) {
	query := `
		SELECT l.id, l.product_id, l.transaction_type, l.quantity_change, l.old_shelf_id, l.new_shelf_id, l.note, l.created_at,
		       p.name, p.barcode
		FROM inventory_logs l
		JOIN products p ON p.id = l.product_id
		ORDER BY l.created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.LogWithProduct
	for rows.Next() {
		var l entity.LogWithProduct
		if err := rows.Scan(&l.ID, &l.ProductID, &l.TransactionType, &l.QuantityChange,
			&l.OldShelfID, &l.NewShelfID, &l.Note, &l.CreatedAt,
			&l.ProductName, &l.ProductBarcode); err != nil {
			return nil, fmt.Errorf("scan log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// ListByProduct historial de un producto, más reciente primero.
func (r *InventoryLogRepo) ListByProduct(productID string, limit, offset int) ([]*entity.InventoryLog, error) {
	query := `
		SELECT id, product_id, transaction_type, quantity_change, old_shelf_id, new_shelf_id, note, created_at
		FROM inventory_logs
		WHERE product_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list logs by product: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryLog
	for rows.Next() {
		var l entity.InventoryLog
		if err := rows.Scan(&l.ID, &l.ProductID, &l.TransactionType, &l.QuantityChange,
			&l.OldShelfID, &l.NewShelfID, &l.Note, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
