package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// Nota registrada cuando una entrada de dañados descuenta del stock sano.
const noteFromSoundStock = "trasladado desde stock sano"

// MovementResult contadores del producto tras una mutación.
type MovementResult struct {
	NewQuantity        int `json:"new_quantity"`
	NewDamagedQuantity int `json:"new_damaged_quantity"`
}

// MutationUseCase motor de mutaciones de stock: entrada, salida, traslado de
// estantería y entrada/salida de dañados. Cada operación corre en una sola
// transacción con bloqueo de fila (SELECT FOR UPDATE), de modo que dos
// mutaciones concurrentes sobre el mismo producto nunca entrelazan su
// lectura y escritura, y cada mutación produce exactamente un asiento en el
// diario.
//
// Las salidas recortan en cero en lugar de rechazar (decisión heredada del
// panel: la validación de insuficiencia es un pre-chequeo del llamador, no
// de este motor).
type MutationUseCase struct {
	txRunner  TxRunner
	shelfRepo repository.ShelfRepository
}

// NewMutationUseCase construye el motor.
func NewMutationUseCase(txRunner TxRunner, shelfRepo repository.ShelfRepository) *MutationUseCase {
	return &MutationUseCase{txRunner: txRunner, shelfRepo: shelfRepo}
}

// StockIn suma amount al stock sano (sin tope superior) y asienta STOCK_IN.
func (uc *MutationUseCase) StockIn(ctx context.Context, productID string, amount int) (*MovementResult, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var result MovementResult
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, logRepo repository.InventoryLogRepository) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		newQty := product.Quantity + amount
		if err := productRepo.UpdateCounters(productID, newQty, product.DamagedQuantity); err != nil {
			return err
		}
		result = MovementResult{NewQuantity: newQty, NewDamagedQuantity: product.DamagedQuantity}
		return logRepo.Create(newLog(productID, entity.TxStockIn, amount, product.ShelfID, product.ShelfID, nil))
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// StockOut resta amount del stock sano recortando en cero; el asiento
// STOCK_OUT registra -amount completo aunque haya recorte.
func (uc *MutationUseCase) StockOut(ctx context.Context, productID string, amount int) (*MovementResult, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var result MovementResult
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, logRepo repository.InventoryLogRepository) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		newQty := product.Quantity - amount
		if newQty < 0 {
			newQty = 0
		}
		if err := productRepo.UpdateCounters(productID, newQty, product.DamagedQuantity); err != nil {
			return err
		}
		result = MovementResult{NewQuantity: newQty, NewDamagedQuantity: product.DamagedQuantity}
		return logRepo.Create(newLog(productID, entity.TxStockOut, -amount, product.ShelfID, product.ShelfID, nil))
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// MoveShelf reubica el producto en otra estantería y asienta MOVE con
// quantity_change 0. Mover a la misma estantería es legal y también se
// asienta.
func (uc *MutationUseCase) MoveShelf(ctx context.Context, productID, newShelfID string) error {
	if newShelfID == "" {
		return domain.ErrInvalidInput
	}
	shelf, err := uc.shelfRepo.GetByID(newShelfID)
	if err != nil {
		return err
	}
	if shelf == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, logRepo repository.InventoryLogRepository) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		oldShelf := product.ShelfID
		if err := productRepo.UpdateShelf(productID, &newShelfID); err != nil {
			return err
		}
		return logRepo.Create(newLog(productID, entity.TxMove, 0, oldShelf, &newShelfID, nil))
	})
}

// DamagedIn suma amount al stock dañado. Con fromMainStock las unidades salen
// del stock sano (recortando en cero); sin él se registran como llegadas ya
// dañadas y el stock sano no se toca. Este motor no re-valida la
// insuficiencia: ese pre-chequeo es del llamador.
func (uc *MutationUseCase) DamagedIn(ctx context.Context, productID string, amount int, fromMainStock bool) (*MovementResult, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var result MovementResult
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, logRepo repository.InventoryLogRepository) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		newQty := product.Quantity
		newDamaged := product.DamagedQuantity + amount
		var note *string
		if fromMainStock {
			newQty = product.Quantity - amount
			if newQty < 0 {
				newQty = 0
			}
			n := noteFromSoundStock
			note = &n
		}
		if err := productRepo.UpdateCounters(productID, newQty, newDamaged); err != nil {
			return err
		}
		result = MovementResult{NewQuantity: newQty, NewDamagedQuantity: newDamaged}
		return logRepo.Create(newLog(productID, entity.TxDamagedIn, amount, product.ShelfID, product.ShelfID, note))
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DamagedOut resta amount del stock dañado recortando en cero. El stock sano
// nunca se toca: lo dañado que sale del almacén no vuelve a ser vendible.
// El asiento DAMAGED_OUT registra amount en positivo (magnitud retirada).
func (uc *MutationUseCase) DamagedOut(ctx context.Context, productID string, amount int) (*MovementResult, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var result MovementResult
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, logRepo repository.InventoryLogRepository) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		newDamaged := product.DamagedQuantity - amount
		if newDamaged < 0 {
			newDamaged = 0
		}
		if err := productRepo.UpdateCounters(productID, product.Quantity, newDamaged); err != nil {
			return err
		}
		result = MovementResult{NewQuantity: product.Quantity, NewDamagedQuantity: newDamaged}
		return logRepo.Create(newLog(productID, entity.TxDamagedOut, amount, product.ShelfID, product.ShelfID, nil))
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func newLog(productID, txType string, change int, oldShelf, newShelf, note *string) *entity.InventoryLog {
	return &entity.InventoryLog{
		ID:              uuid.New().String(),
		ProductID:       productID,
		TransactionType: txType,
		QuantityChange:  change,
		OldShelfID:      oldShelf,
		NewShelfID:      newShelf,
		Note:            note,
		CreatedAt:       time.Now(),
	}
}
