package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/pedidos-api/internal/domain"
	"github.com/tu-usuario/pedidos-api/internal/domain/entity"
	"github.com/tu-usuario/pedidos-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = `key, name, creation_date, modification_date, created_by, modified_by, row_version`

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Insert persiste una categoría nueva. La base asigna key, creation_date y
// row_version=0; se devuelven vía RETURNING.
func (r *CategoryRepo) Insert(ctx context.Context, c *entity.Category) (*entity.Category, error) {
	row := r.q.QueryRow(ctx,
		`INSERT INTO categories (name, created_by) VALUES ($1, $2) RETURNING `+categoryColumns,
		c.Name, c.CreatedBy,
	)
	created, err := scanCategory(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &domain.RuleViolation{Field: "name", Message: "Category name is already in use."}
		}
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return created, nil
}

// GetByKey obtiene una categoría por clave. Devuelve nil si no existe.
func (r *CategoryRepo) GetByKey(ctx context.Context, key int64) (*entity.Category, error) {
	row := r.q.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE key = $1`, key)
	c, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// GetByName obtiene una categoría por nombre. Devuelve nil si no existe.
func (r *CategoryRepo) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	row := r.q.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE name = $1`, name)
	c, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by name: %w", err)
	}
	return c, nil
}

// ListAll lista todas las categorías ordenadas por clave.
func (r *CategoryRepo) ListAll(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// UpdateIfVersionMatches ejecuta el compare-and-write atómico. El trigger de
// la tabla incrementa row_version; modification_date la sella esta escritura.
// Cero filas afectadas se resuelve a ErrNotFound o ErrVersionConflict
// consultando la existencia de la clave.
func (r *CategoryRepo) UpdateIfVersionMatches(ctx context.Context, c *entity.Category) (*entity.Category, error) {
	row := r.q.QueryRow(ctx,
		`UPDATE categories SET name = $3, modified_by = $4, modification_date = now()
		 WHERE key = $1 AND row_version = $2 RETURNING `+categoryColumns,
		c.Key, c.RowVersion, c.Name, c.ModifiedBy,
	)
	updated, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.resolveMiss(ctx, c.Key)
		}
		if isUniqueViolation(err) {
			return nil, &domain.RuleViolation{Field: "name", Message: "Category name is already in use by another category."}
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return updated, nil
}

// Delete elimina una categoría. FK RESTRICT de products la bloquea si tiene
// productos vivos.
func (r *CategoryRepo) Delete(ctx context.Context, key int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM categories WHERE key = $1`, key)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenced
		}
		return fmt.Errorf("delete category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CategoryRepo) resolveMiss(ctx context.Context, key int64) error {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM categories WHERE key = $1)`, key).Scan(&exists)
	if err != nil {
		return fmt.Errorf("resolve update miss: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrVersionConflict
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	err := row.Scan(&c.Key, &c.Name, &c.CreatedAt, &c.ModifiedAt, &c.CreatedBy, &c.ModifiedBy, &c.RowVersion)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
