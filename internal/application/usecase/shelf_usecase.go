package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

const defaultShelfCapacity = 100

// ShelfUseCase altas, listado y borrado de estanterías.
type ShelfUseCase struct {
	shelfRepo   repository.ShelfRepository
	productRepo repository.ProductRepository
	log         *logger.Logger
}

// NewShelfUseCase construye el caso de uso.
func NewShelfUseCase(shelfRepo repository.ShelfRepository, productRepo repository.ProductRepository, log *logger.Logger) *ShelfUseCase {
	return &ShelfUseCase{shelfRepo: shelfRepo, productRepo: productRepo, log: log}
}

// Create crea una estantería. Código duplicado → ErrDuplicate.
func (uc *ShelfUseCase) Create(in dto.CreateShelfRequest) (*dto.ShelfResponse, error) {
	if in.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	capacity := in.Capacity
	if capacity <= 0 {
		capacity = defaultShelfCapacity
	}
	shelf := &entity.Shelf{
		ID:        uuid.New().String(),
		Code:      in.Code,
		Capacity:  capacity,
		CreatedAt: time.Now(),
	}
	if err := uc.shelfRepo.Create(shelf); err != nil {
		return nil, err
	}
	return toShelfResponse(shelf), nil
}

// List estanterías ordenadas por código.
func (uc *ShelfUseCase) List() ([]dto.ShelfResponse, error) {
	list, err := uc.shelfRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ShelfResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toShelfResponse(s))
	}
	return items, nil
}

// ProductsByShelf productos asignados a una estantería.
func (uc *ShelfUseCase) ProductsByShelf(shelfID string) (*dto.ProductListResponse, error) {
	shelf, err := uc.shelfRepo.GetByID(shelfID)
	if err != nil {
		return nil, err
	}
	if shelf == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.productRepo.ListByShelf(shelfID)
	if err != nil {
		return nil, err
	}
	return toProductList(list), nil
}

// Delete borra una estantería. Primero desasigna todos los productos que la
// referencian y después borra la fila; si el borrado falla, la estantería
// sobrevive vacía, pero nunca quedan productos apuntando a una estantería
// inexistente.
func (uc *ShelfUseCase) Delete(id string) (*dto.DeleteShelfResult, error) {
	shelf, err := uc.shelfRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shelf == nil {
		return nil, domain.ErrNotFound
	}

	unassigned, err := uc.productRepo.UnassignShelf(id)
	if err != nil {
		return nil, err
	}
	if err := uc.shelfRepo.Delete(id); err != nil {
		uc.log.Error().Err(err).Str("shelf_id", id).Int("unassigned", unassigned).
			Msg("la estantería quedó vacía pero no se pudo borrar")
		return nil, err
	}
	return &dto.DeleteShelfResult{UnassignedProducts: unassigned}, nil
}

func toShelfResponse(s *entity.Shelf) *dto.ShelfResponse {
	return &dto.ShelfResponse{
		ID:        s.ID,
		Code:      s.Code,
		Capacity:  s.Capacity,
		CreatedAt: s.CreatedAt,
	}
}
