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

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `key, identification, name, email, phone, address, password, role,
	creation_date, modification_date, created_by, modified_by, row_version`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Insert persiste un usuario nuevo con el password ya hasheado.
func (r *UserRepo) Insert(ctx context.Context, u *entity.User) (*entity.User, error) {
	row := r.q.QueryRow(ctx,
		`INSERT INTO users (identification, name, email, phone, address, password, role, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING `+userColumns,
		u.Identification, u.Name, u.Email, u.Phone, u.Address, u.PasswordHash, u.Role, u.CreatedBy,
	)
	created, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, userUniqueViolation(err, false)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return created, nil
}

// GetByKey obtiene un usuario por clave. Devuelve nil si no existe.
func (r *UserRepo) GetByKey(ctx context.Context, key int64) (*entity.User, error) {
	row := r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE key = $1`, key)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetByIdentification obtiene un usuario por identificación.
func (r *UserRepo) GetByIdentification(ctx context.Context, identification string) (*entity.User, error) {
	row := r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE identification = $1`, identification)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by identification: %w", err)
	}
	return u, nil
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// ListAll lista todos los usuarios ordenados por clave.
func (r *UserRepo) ListAll(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// UpdateIfVersionMatches ejecuta el compare-and-write atómico (ver contrato
// en el puerto). El trigger incrementa row_version.
func (r *UserRepo) UpdateIfVersionMatches(ctx context.Context, u *entity.User) (*entity.User, error) {
	row := r.q.QueryRow(ctx,
		`UPDATE users SET identification = $3, name = $4, email = $5, phone = $6, address = $7,
			password = $8, role = $9, modified_by = $10, modification_date = now()
		 WHERE key = $1 AND row_version = $2 RETURNING `+userColumns,
		u.Key, u.RowVersion, u.Identification, u.Name, u.Email, u.Phone, u.Address,
		u.PasswordHash, u.Role, u.ModifiedBy,
	)
	updated, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.resolveMiss(ctx, u.Key)
		}
		if isUniqueViolation(err) {
			return nil, userUniqueViolation(err, true)
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

// Delete elimina un usuario. Los created_by/modified_by que lo referencian
// quedan en NULL (ON DELETE SET NULL).
func (r *UserRepo) Delete(ctx context.Context, key int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM users WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UserRepo) resolveMiss(ctx context.Context, key int64) error {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE key = $1)`, key).Scan(&exists)
	if err != nil {
		return fmt.Errorf("resolve update miss: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrVersionConflict
}

// userUniqueViolation traduce un 23505 al mensaje de la regla de negocio
// según el constraint que disparó (carrera contra el chequeo previo).
func userUniqueViolation(err error, onUpdate bool) *domain.RuleViolation {
	if strings.Contains(constraintName(err), "identification") {
		if onUpdate {
			return &domain.RuleViolation{Field: "identification", Message: "Identification is already in use by another user."}
		}
		return &domain.RuleViolation{Field: "identification", Message: "Identification is already in use."}
	}
	if onUpdate {
		return &domain.RuleViolation{Field: "email", Message: "Email is already in use by another user."}
	}
	return &domain.RuleViolation{Field: "email", Message: "Email is already in use."}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.Key, &u.Identification, &u.Name, &u.Email, &u.Phone, &u.Address,
		&u.PasswordHash, &u.Role, &u.CreatedAt, &u.ModifiedAt, &u.CreatedBy, &u.ModifiedBy, &u.RowVersion)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
