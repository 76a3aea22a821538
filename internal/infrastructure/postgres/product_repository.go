package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, barcode, name, description, quantity, damaged_quantity, min_stock, shelf_id, category_id, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. Barcode duplicado → ErrDuplicate.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Barcode, product.Name, product.Description,
		product.Quantity, product.DamagedQuantity, product.MinStock,
		product.ShelfID, product.CategoryID, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// CreateBatch inserta productos en lote (sincronización de catálogo).
func (r *ProductRepo) CreateBatch(products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	for _, p := range products {
		_, err := r.q.Exec(context.Background(), query,
			p.ID, p.Barcode, p.Name, p.Description,
			p.Quantity, p.DamagedQuantity, p.MinStock,
			p.ShelfID, p.CategoryID, p.CreatedAt, p.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert product batch: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un producto por ID. Nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product")
}

// GetByBarcode obtiene un producto por barcode. Nil si no existe.
func (r *ProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE barcode = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, barcode), "get product by barcode")
}

// GetForUpdate lee la fila con SELECT FOR UPDATE. Solo tiene sentido con un
// Querier transaccional; serializa las mutaciones concurrentes por producto.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product for update")
}

// List lista productos con paginación, más recientes primero.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, "list products", limit, offset)
}

// ListByShelf productos asignados a una estantería.
func (r *ProductRepo) ListByShelf(shelfID string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE shelf_id = $1 ORDER BY name`
	return r.list(query, "list products by shelf", shelfID)
}

// ListDamaged productos con stock dañado pendiente.
func (r *ProductRepo) ListDamaged() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE damaged_quantity > 0 ORDER BY updated_at DESC`
	return r.list(query, "list damaged products")
}

// ListCritical productos en o bajo su umbral, los más urgentes primero.
func (r *ProductRepo) ListCritical() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE quantity <= min_stock ORDER BY quantity ASC, name`
	return r.list(query, "list critical products")
}

// ListBarcodeThresholds proyección (id, barcode, min_stock) de todo el catálogo.
func (r *ProductRepo) ListBarcodeThresholds() ([]repository.BarcodeThreshold, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, barcode, min_stock FROM products`)
	if err != nil {
		return nil, fmt.Errorf("list barcode thresholds: %w", err)
	}
	defer rows.Close()
	var list []repository.BarcodeThreshold
	for rows.Next() {
		var t repository.BarcodeThreshold
		if err := rows.Scan(&t.ProductID, &t.Barcode, &t.MinStock); err != nil {
			return nil, fmt.Errorf("scan threshold: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// UpdateCounters escribe los dos contadores de stock (usado por el motor de movimientos, dentro de tx).
func (r *ProductRepo) UpdateCounters(id string, quantity, damagedQuantity int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = $2, damaged_quantity = $3, updated_at = now() WHERE id = $1`,
		id, quantity, damagedQuantity,
	)
	if err != nil {
		return fmt.Errorf("update product counters: %w", err)
	}
	return nil
}

// UpdateShelf cambia la estantería asignada (nil = sin estantería).
func (r *ProductRepo) UpdateShelf(id string, shelfID *string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET shelf_id = $2, updated_at = now() WHERE id = $1`,
		id, shelfID,
	)
	if err != nil {
		return fmt.Errorf("update product shelf: %w", err)
	}
	return nil
}

// UpdateMinStock cambia el umbral de reorden.
func (r *ProductRepo) UpdateMinStock(id string, minStock int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET min_stock = $2, updated_at = now() WHERE id = $1`,
		id, minStock,
	)
	if err != nil {
		return fmt.Errorf("update product min_stock: %w", err)
	}
	return nil
}

// UnassignShelf desasigna todos los productos de una estantería. Devuelve cuántas filas tocó.
func (r *ProductRepo) UnassignShelf(shelfID string) (int, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET shelf_id = NULL, updated_at = now() WHERE shelf_id = $1`,
		shelfID,
	)
	if err != nil {
		return 0, fmt.Errorf("unassign shelf: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Barcode, &p.Name, &p.Description, &p.Quantity, &p.DamagedQuantity,
		&p.MinStock, &p.ShelfID, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

func (r *ProductRepo) list(query, op string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Barcode, &p.Name, &p.Description, &p.Quantity, &p.DamagedQuantity,
			&p.MinStock, &p.ShelfID, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
