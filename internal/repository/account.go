package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/shenikar/incident_reporting_system/internal/service"
)

type AccountRepository struct {
	db *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) service.AccountRepository {
	return &AccountRepository{db: db}
}

// Create создает новую учетную запись в бд
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (name, email, password_hash, is_active)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		account.Name,
		account.Email,
		account.PasswordHash,
		account.IsActive,
	).Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func scanAccount(row pgx.Row) (*models.Account, error) {
	account := &models.Account{}
	err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.PasswordHash,
		&account.IsActive,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// GetByID возвращает учетную запись по идентификатору
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	query := `SELECT id, name, email, password_hash, is_active, created_at FROM accounts WHERE id = $1;`

	account, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("account with id %d: %w", id, service.ErrAccountNotFound)
		}
		return nil, fmt.Errorf("failed to get account by id: %w", err)
	}
	return account, nil
}

// GetByName возвращает учетную запись по имени без учета регистра
func (r *AccountRepository) GetByName(ctx context.Context, name string) (*models.Account, error) {
	query := `SELECT id, name, email, password_hash, is_active, created_at FROM accounts WHERE LOWER(name) = LOWER($1);`

	account, err := scanAccount(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("account %q: %w", name, service.ErrAccountNotFound)
		}
		return nil, fmt.Errorf("failed to get account by name: %w", err)
	}
	return account, nil
}

// GetByEmail возвращает учетную запись по email без учета регистра
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `SELECT id, name, email, password_hash, is_active, created_at FROM accounts WHERE LOWER(email) = LOWER($1);`

	account, err := scanAccount(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("account with email %q: %w", email, service.ErrAccountNotFound)
		}
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}
	return account, nil
}

// ExistsByName проверяет занятость имени без учета регистра
func (r *AccountRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM accounts WHERE LOWER(name) = LOWER($1));`
	if err := r.db.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check account name: %w", err)
	}
	return exists, nil
}

// ExistsByEmail проверяет занятость email без учета регистра
func (r *AccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM accounts WHERE LOWER(email) = LOWER($1));`
	if err := r.db.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check account email: %w", err)
	}
	return exists, nil
}

// AddRole привязывает роль к учетной записи
func (r *AccountRepository) AddRole(ctx context.Context, accountID int64, roleName, description string) error {
	query := `INSERT INTO account_roles (account_id, role_name, description) VALUES ($1, $2, $3);`
	if _, err := r.db.Exec(ctx, query, accountID, roleName, description); err != nil {
		return fmt.Errorf("failed to add account role: %w", err)
	}
	return nil
}

// HasAdminLink проверяет, ссылается ли запись администратора хотя бы на одну
// роль аккаунта. Только эта связь делает аккаунт администратором.
func (r *AccountRepository) HasAdminLink(ctx context.Context, accountID int64) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1
			FROM account_roles ar
			JOIN administrators adm ON adm.account_role_id = ar.id
			WHERE ar.account_id = $1
		);
	`
	if err := r.db.QueryRow(ctx, query, accountID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check admin link: %w", err)
	}
	return exists, nil
}

// UpdatePassword перезаписывает хэш пароля учетной записи
func (r *AccountRepository) UpdatePassword(ctx context.Context, accountID int64, passwordHash string) error {
	query := `UPDATE accounts SET password_hash = $1 WHERE id = $2;`
	tag, err := r.db.Exec(ctx, query, passwordHash, accountID)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account with id %d: %w", accountID, service.ErrAccountNotFound)
	}
	return nil
}
