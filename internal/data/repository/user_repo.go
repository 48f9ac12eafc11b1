package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pool-club/internal/data/entity"
	"pool-club/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error

	// Wallet balance mutations. DebitBalance is the sole gate for paid
	// actions: it only decrements when the balance covers the amount.
	CreditBalance(ctx context.Context, id uuid.UUID, amount int64) error
	DebitBalance(ctx context.Context, id uuid.UUID, amount int64) (bool, error)

	UpdateMembershipCache(ctx context.Context, id uuid.UUID, slug, name *string, expires *time.Time) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

const userColumns = `id, email, password, first_name, last_name, phone, role, is_active,
	wallet_balance, membership_slug, membership_name, membership_expires, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.Phone,
		&user.Role,
		&user.IsActive,
		&user.WalletBalance,
		&user.MembershipSlug,
		&user.MembershipName,
		&user.MembershipExpires,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, email, password, first_name, last_name, phone, role, is_active,
			wallet_balance, membership_slug, membership_name, membership_expires, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.Phone,
		user.Role,
		user.IsActive,
		user.WalletBalance,
		user.MembershipSlug,
		user.MembershipName,
		user.MembershipExpires,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, strings.ToLower(strings.TrimSpace(email))))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return user, nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET email = $2, password = $3, first_name = $4, last_name = $5, phone = $6,
		    role = $7, is_active = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.Phone,
		user.Role,
		user.IsActive,
		user.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return fmt.Errorf("update user %s: %w", user.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", user.ID.String())
	}

	return nil
}

func (r *userRepository) CreditBalance(ctx context.Context, id uuid.UUID, amount int64) error {
	query := `UPDATE users SET wallet_balance = wallet_balance + $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, amount)
	if err != nil {
		r.log.Error("Failed to credit balance",
			zap.Error(err),
			zap.String("user_id", id.String()),
			zap.Int64("amount", amount),
		)
		return fmt.Errorf("credit balance for user %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id.String())
	}

	return nil
}

func (r *userRepository) DebitBalance(ctx context.Context, id uuid.UUID, amount int64) (bool, error) {
	// Guard in SQL so the check and the decrement are a single statement.
	query := `
		UPDATE users
		SET wallet_balance = wallet_balance - $2, updated_at = NOW()
		WHERE id = $1 AND wallet_balance >= $2
	`

	result, err := r.db.Exec(ctx, query, id, amount)
	if err != nil {
		r.log.Error("Failed to debit balance",
			zap.Error(err),
			zap.String("user_id", id.String()),
			zap.Int64("amount", amount),
		)
		return false, fmt.Errorf("debit balance for user %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *userRepository) UpdateMembershipCache(ctx context.Context, id uuid.UUID, slug, name *string, expires *time.Time) error {
	query := `
		UPDATE users
		SET membership_slug = $2, membership_name = $3, membership_expires = $4, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, slug, name, expires)
	if err != nil {
		r.log.Error("Failed to update membership cache",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("update membership cache for user %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id.String())
	}

	return nil
}
