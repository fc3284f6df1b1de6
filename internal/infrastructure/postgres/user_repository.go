package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jcamargo/tienda-api/internal/domain"
	"github.com/jcamargo/tienda-api/internal/domain/entity"
	"github.com/jcamargo/tienda-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, username, email, first_name, last_name, display_name,
	password_hash, provider, provider_data, additional_providers, roles,
	created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// Los payloads de proveedores OAuth se guardan como jsonb opaco.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.DisplayName,
		&u.PasswordHash, &u.Provider, &u.ProviderData, &u.Providers, &u.Roles,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

// duplicateFromConstraint traduce la violación de unicidad al valor en
// conflicto según el constraint que disparó (username o email).
func duplicateFromConstraint(constraint string, u *entity.User) error {
	switch constraint {
	case "users_username_key":
		return &domain.DuplicateError{Value: u.Username}
	case "users_email_key":
		return &domain.DuplicateError{Value: u.Email}
	}
	return domain.ErrDuplicate
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO users (id, username, email, first_name, last_name, display_name,
			password_hash, provider, provider_data, additional_providers, roles,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		user.ID, user.Username, user.Email, user.FirstName, user.LastName, user.DisplayName,
		user.PasswordHash, user.Provider, user.ProviderData, user.Providers, user.Roles,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if pgErr, ok := uniqueViolation(err); ok {
			return duplicateFromConstraint(pgErr.ConstraintName, user)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return scanUser(r.q.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

// GetByUsername obtiene un usuario por username.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	return scanUser(r.q.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username))
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return scanUser(r.q.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

// FindByProviderID busca la cuenta asociada a un identificador de proveedor,
// tanto si el proveedor es el principal como si está en el mapa adicional.
func (r *UserRepo) FindByProviderID(provider, identifierField, identifier string) (*entity.User, error) {
	return scanUser(r.q.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users
		WHERE (provider = $1 AND provider_data->>$2 = $3)
		   OR additional_providers->$1->>$2 = $3`,
		provider, identifierField, identifier))
}

// Update persiste los cambios de un usuario. No toca password_hash: el objeto
// de sesión viaja saneado y sobrescribirlo vaciaría la credencial.
func (r *UserRepo) Update(user *entity.User) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE users SET username = $2, email = $3, first_name = $4, last_name = $5,
			display_name = $6, provider_data = $7, additional_providers = $8,
			updated_at = $9
		WHERE id = $1`,
		user.ID, user.Username, user.Email, user.FirstName, user.LastName,
		user.DisplayName, user.ProviderData, user.Providers, user.UpdatedAt,
	)
	if err != nil {
		if pgErr, ok := uniqueViolation(err); ok {
			return duplicateFromConstraint(pgErr.ConstraintName, user)
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// NextAvailableUsername devuelve base si está libre; si no, prueba base1,
// base2, ... hasta encontrar un hueco.
func (r *UserRepo) NextAvailableUsername(base string) (string, error) {
	for i := 0; ; i++ {
		candidate := base
		if i > 0 {
			candidate = base + strconv.Itoa(i)
		}
		var exists bool
		err := r.q.QueryRow(context.Background(),
			`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, candidate,
		).Scan(&exists)
		if err != nil {
			return "", fmt.Errorf("check username: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}
}
