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

var _ repository.ShelfRepository = (*ShelfRepo)(nil)

// ShelfRepo implementación del puerto ShelfRepository sobre PostgreSQL.
type ShelfRepo struct {
	q Querier
}

// NewShelfRepository construye el adaptador de persistencia para estanterías.
func NewShelfRepository(q Querier) *ShelfRepo {
	return &ShelfRepo{q: q}
}

// Create persiste una estantería. Código duplicado → ErrDuplicate.
func (r *ShelfRepo) Create(shelf *entity.Shelf) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO shelves (id, code, capacity, created_at) VALUES ($1, $2, $3, $4)`,
		shelf.ID, shelf.Code, shelf.Capacity, shelf.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert shelf: %w", err)
	}
	return nil
}

// GetByID obtiene una estantería por ID. Nil si no existe.
func (r *ShelfRepo) GetByID(id string) (*entity.Shelf, error) {
	var s entity.Shelf
	err := r.q.QueryRow(context.Background(),
		`SELECT id, code, capacity, created_at FROM shelves WHERE id = $1`, id,
	).Scan(&s.ID, &s.Code, &s.Capacity, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shelf: %w", err)
	}
	return &s, nil
}

// List todas las estanterías ordenadas por código.
func (r *ShelfRepo) List() ([]*entity.Shelf, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, code, capacity, created_at FROM shelves ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list shelves: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shelf
	for rows.Next() {
		var s entity.Shelf
		if err := rows.Scan(&s.ID, &s.Code, &s.Capacity, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan shelf: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete borra una estantería por ID.
func (r *ShelfRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM shelves WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shelf: %w", err)
	}
	return nil
}
