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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `key, name, creation_date, modification_date, created_by, modified_by, row_version`

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Insert persiste un proveedor nuevo.
func (r *SupplierRepo) Insert(ctx context.Context, s *entity.Supplier) (*entity.Supplier, error) {
	row := r.q.QueryRow(ctx,
		`INSERT INTO suppliers (name, created_by) VALUES ($1, $2) RETURNING `+supplierColumns,
		s.Name, s.CreatedBy,
	)
	created, err := scanSupplier(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &domain.RuleViolation{Field: "name", Message: "Supplier name is already in use."}
		}
		return nil, fmt.Errorf("insert supplier: %w", err)
	}
	return created, nil
}

// GetByKey obtiene un proveedor por clave. Devuelve nil si no existe.
func (r *SupplierRepo) GetByKey(ctx context.Context, key int64) (*entity.Supplier, error) {
	row := r.q.QueryRow(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE key = $1`, key)
	s, err := scanSupplier(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

// GetByName obtiene un proveedor por nombre. Devuelve nil si no existe.
func (r *SupplierRepo) GetByName(ctx context.Context, name string) (*entity.Supplier, error) {
	row := r.q.QueryRow(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE name = $1`, name)
	s, err := scanSupplier(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier by name: %w", err)
	}
	return s, nil
}

// ListAll lista todos los proveedores ordenados por clave.
func (r *SupplierRepo) ListAll(ctx context.Context) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(ctx, `SELECT `+supplierColumns+` FROM suppliers ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// UpdateIfVersionMatches ejecuta el compare-and-write atómico (ver contrato
// en el puerto). El trigger incrementa row_version.
func (r *SupplierRepo) UpdateIfVersionMatches(ctx context.Context, s *entity.Supplier) (*entity.Supplier, error) {
	row := r.q.QueryRow(ctx,
		`UPDATE suppliers SET name = $3, modified_by = $4, modification_date = now()
		 WHERE key = $1 AND row_version = $2 RETURNING `+supplierColumns,
		s.Key, s.RowVersion, s.Name, s.ModifiedBy,
	)
	updated, err := scanSupplier(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.resolveMiss(ctx, s.Key)
		}
		if isUniqueViolation(err) {
			return nil, &domain.RuleViolation{Field: "name", Message: "Supplier name is already in use by another supplier."}
		}
		return nil, fmt.Errorf("update supplier: %w", err)
	}
	return updated, nil
}

// Delete elimina un proveedor. Productos vivos que lo referencian disparan
// la FK RESTRICT y se reporta como ErrReferenced.
func (r *SupplierRepo) Delete(ctx context.Context, key int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE key = $1`, key)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenced
		}
		return fmt.Errorf("delete supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SupplierRepo) resolveMiss(ctx context.Context, key int64) error {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM suppliers WHERE key = $1)`, key).Scan(&exists)
	if err != nil {
		return fmt.Errorf("resolve update miss: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrVersionConflict
}

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(&s.Key, &s.Name, &s.CreatedAt, &s.ModifiedAt, &s.CreatedBy, &s.ModifiedBy, &s.RowVersion)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
