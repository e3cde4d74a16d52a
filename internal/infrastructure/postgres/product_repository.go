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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `key, image, name, detail, price, available_quantity, supplied_by, categorized_by,
	creation_date, modification_date, created_by, modified_by, row_version`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Insert persiste un producto nuevo. supplied_by/categorized_by inexistentes
// disparan la FK y se reportan como ErrReferenced.
func (r *ProductRepo) Insert(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	row := r.q.QueryRow(ctx,
		`INSERT INTO products (image, name, detail, price, available_quantity, supplied_by, categorized_by, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING `+productColumns,
		p.Image, p.Name, p.Detail, p.Price, p.AvailableQuantity, p.SuppliedBy, p.CategorizedBy, p.CreatedBy,
	)
	created, err := scanProduct(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &domain.RuleViolation{Field: "name", Message: "Product name is already in use."}
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrReferenced
		}
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return created, nil
}

// GetByKey obtiene un producto por clave. Devuelve nil si no existe.
func (r *ProductRepo) GetByKey(ctx context.Context, key int64) (*entity.Product, error) {
	row := r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE key = $1`, key)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByName obtiene un producto por nombre. Devuelve nil si no existe.
func (r *ProductRepo) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	row := r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE name = $1`, name)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by name: %w", err)
	}
	return p, nil
}

// ListAll lista todos los productos ordenados por clave.
func (r *ProductRepo) ListAll(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// UpdateIfVersionMatches ejecuta el compare-and-write atómico (ver contrato
// en el puerto). El trigger incrementa row_version.
func (r *ProductRepo) UpdateIfVersionMatches(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	row := r.q.QueryRow(ctx,
		`UPDATE products SET image = $3, name = $4, detail = $5, price = $6, available_quantity = $7,
			supplied_by = $8, categorized_by = $9, modified_by = $10, modification_date = now()
		 WHERE key = $1 AND row_version = $2 RETURNING `+productColumns,
		p.Key, p.RowVersion, p.Image, p.Name, p.Detail, p.Price, p.AvailableQuantity,
		p.SuppliedBy, p.CategorizedBy, p.ModifiedBy,
	)
	updated, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.resolveMiss(ctx, p.Key)
		}
		if isUniqueViolation(err) {
			return nil, &domain.RuleViolation{Field: "name", Message: "Product name is already in use by another product."}
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrReferenced
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return updated, nil
}

// Delete elimina un producto por clave.
func (r *ProductRepo) Delete(ctx context.Context, key int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) resolveMiss(ctx context.Context, key int64) error {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE key = $1)`, key).Scan(&exists)
	if err != nil {
		return fmt.Errorf("resolve update miss: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrVersionConflict
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.Key, &p.Image, &p.Name, &p.Detail, &p.Price, &p.AvailableQuantity,
		&p.SuppliedBy, &p.CategorizedBy, &p.CreatedAt, &p.ModifiedAt, &p.CreatedBy, &p.ModifiedBy, &p.RowVersion)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
