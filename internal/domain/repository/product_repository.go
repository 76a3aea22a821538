package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// BarcodeThreshold proyección mínima (id, barcode, min_stock) para cruzar el
// catálogo local contra los listings del marketplace sin cargar filas completas.
type BarcodeThreshold struct {
	ProductID string
	Barcode   string
	MinStock  int
}

// ProductRepository puerto de persistencia para productos.
// GetForUpdate y UpdateCounters se usan dentro de una transacción (TxRunner)
// para serializar las mutaciones por producto.
type ProductRepository interface {
	Create(product *entity.Product) error
	CreateBatch(products []*entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByBarcode(barcode string) (*entity.Product, error)
	// GetForUpdate lee la fila con bloqueo (SELECT FOR UPDATE). Nil si no existe.
	GetForUpdate(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	ListByShelf(shelfID string) ([]*entity.Product, error)
	// ListDamaged productos con stock dañado (> 0), más recientes primero.
	ListDamaged() ([]*entity.Product, error)
	// ListCritical productos con quantity <= min_stock, ascendente por quantity.
	ListCritical() ([]*entity.Product, error)
	ListBarcodeThresholds() ([]BarcodeThreshold, error)
	UpdateCounters(id string, quantity, damagedQuantity int) error
	UpdateShelf(id string, shelfID *string) error
	UpdateMinStock(id string, minStock int) error
	// UnassignShelf pone shelf_id = NULL en todos los productos de la estantería.
	// Devuelve cuántas filas tocó.
	UnassignShelf(shelfID string) (int, error)
}
