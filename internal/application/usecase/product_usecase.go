package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

const createDefaultMinStock = 5 // alta manual; la sincronización usa su propio default

// ProductUseCase altas y consultas de productos. Quantity y DamagedQuantity
// nunca se editan por aquí: solo a través del motor de movimientos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create alta manual de un producto.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Barcode == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	minStock := in.MinStock
	if minStock <= 0 {
		minStock = createDefaultMinStock
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Barcode:     in.Barcode,
		Name:        in.Name,
		Description: in.Description,
		Quantity:    in.Quantity,
		MinStock:    minStock,
		ShelfID:     in.ShelfID,
		CategoryID:  in.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// GetByID busca un producto por ID. Nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// GetByBarcode busca un producto por barcode (flujo del escáner). Nil si no existe.
func (uc *ProductUseCase) GetByBarcode(barcode string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByBarcode(barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// List productos paginados.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toProductList(list), nil
}

// ListDamaged productos con stock dañado pendiente.
func (uc *ProductUseCase) ListDamaged() (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListDamaged()
	if err != nil {
		return nil, err
	}
	return toProductList(list), nil
}

// UpdateMinStock cambia el umbral de reorden. Mínimo 1.
func (uc *ProductUseCase) UpdateMinStock(id string, minStock int) error {
	if minStock < 1 {
		return domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UpdateMinStock(id, minStock)
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:              p.ID,
		Barcode:         p.Barcode,
		Name:            p.Name,
		Description:     p.Description,
		Quantity:        p.Quantity,
		DamagedQuantity: p.DamagedQuantity,
		MinStock:        p.MinStock,
		ShelfID:         p.ShelfID,
		CategoryID:      p.CategoryID,
		Critical:        p.IsCritical(),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func toProductList(list []*entity.Product) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}
}
