package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/pedidos-api/internal/domain"
	"github.com/tu-usuario/pedidos-api/internal/domain/entity"
	"github.com/tu-usuario/pedidos-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `key, identification, name, email, phone, address, password,
	creation_date, modification_date, created_by, modified_by, row_version`

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func (r *CustomerRepo) Insert(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	row := r.q.QueryRow(ctx,
		`INSERT INTO customers (identification, name, email, phone, address, password, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING `+customerColumns,
		c.Identification, c.Name, c.Email, c.Phone, c.Address, c.PasswordHash, c.CreatedBy,
	)
	created, err := scanCustomer(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, customerUniqueViolation(err, false)
		}
		return nil, fmt.Errorf("insert customer: %w", err)
	}
	return created, nil
}

func (r *CustomerRepo) GetByKey(ctx context.Context, key int64) (*entity.Customer, error) {
	row := r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE key = $1`, key)
	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

func (r *CustomerRepo) GetByIdentification(ctx context.Context, identification string) (*entity.Customer, error) {
	row := r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE identification = $1`, identification)
	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by identification: %w", err)
	}
	return c, nil
}

func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	row := r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE email = $1`, email)
	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by email: %w", err)
	}
	return c, nil
}

func (r *CustomerRepo) ListAll(ctx context.Context) ([]*entity.Customer, error) {
	rows, err := r.q.Query(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *CustomerRepo) UpdateIfVersionMatches(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	row := r.q.QueryRow(ctx,
		`UPDATE customers SET identification = $3, name = $4, email = $5, phone = $6, address = $7,
			password = $8, modified_by = $9, modification_date = now()
		 WHERE key = $1 AND row_version = $2 RETURNING `+customerColumns,
		c.Key, c.RowVersion, c.Identification, c.Name, c.Email, c.Phone, c.Address,
		c.PasswordHash, c.ModifiedBy,
	)
	updated, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.resolveMiss(ctx, c.Key)
		}
		if isUniqueViolation(err) {
			return nil, customerUniqueViolation(err, true)
		}
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return updated, nil
}

func (r *CustomerRepo) Delete(ctx context.Context, key int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM customers WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CustomerRepo) resolveMiss(ctx context.Context, key int64) error {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE key = $1)`, key).Scan(&exists)
	if err != nil {
		return fmt.Errorf("resolve update miss: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrVersionConflict
}

func customerUniqueViolation(err error, onUpdate bool) *domain.RuleViolation {
	if strings.Contains(constraintName(err), "identification") {
		if onUpdate {
			return &domain.RuleViolation{Field: "identification", Message: "Identification is already in use by another customer."}
		}
		return &domain.RuleViolation{Field: "identification", Message: "Identification is already in use."}
	}
	if onUpdate {
		return &domain.RuleViolation{Field: "email", Message: "Email is already in use by another customer."}
	}
	return &domain.RuleViolation{Field: "email", Message: "Email is already in use."}
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(&c.Key, &c.Identification, &c.Name, &c.Email, &c.Phone, &c.Address,
		&c.PasswordHash, &c.CreatedAt, &c.ModifiedAt, &c.CreatedBy, &c.ModifiedBy, &c.RowVersion)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
