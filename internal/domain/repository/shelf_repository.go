package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// ShelfRepository puerto de persistencia para estanterías.
type ShelfRepository interface {
	Create(shelf *entity.Shelf) error
	GetByID(id string) (*entity.Shelf, error)
	// List todas las estanterías ordenadas por código.
	List() ([]*entity.Shelf, error)
	Delete(id string) error
}
