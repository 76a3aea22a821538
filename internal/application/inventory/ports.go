package inventory

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la actualización del contador y
// el asiento del diario sean un solo paso atómico: nunca queda una mutación
// sin su fila de log ni un log sin su mutación.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		logRepo repository.InventoryLogRepository,
	) error) error
}
