package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stockology/backend/internal/db"
	"github.com/stockology/backend/internal/domain"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const userColumns = "id, full_name, email, password_hash, phone_number, pending_otp, is_phone_number_verified, is_profile_complete, joined_on, created_at, updated_at"

type userRepository struct {
	db *sqlx.DB
}

func newUserRepository(db *sqlx.DB) *userRepository {
	return &userRepository{
		db: db,
	}
}

// Create inserts the user. The unique key on email is the final arbiter of
// email uniqueness; a duplicate-key error surfaces as ErrDuplicateEntry.
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
	INSERT INTO user
	(id, full_name, email, password_hash, is_phone_number_verified, is_profile_complete)
	VALUES(uuid_to_bin(?), ?, ?, ?, ?, ?);
	`

	result, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.FullName,
		user.Email,
		user.PasswordHash,
		user.IsPhoneNumberVerified,
		user.IsProfileComplete,
	)

	if err != nil {
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db insert user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (r *userRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const query = `
	SELECT ` + userColumns + ` FROM user WHERE id = uuid_to_bin(?);
	`
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from user by id failed: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
	SELECT ` + userColumns + ` FROM user WHERE email = ?;
	`
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from user by email failed: %w", err)
	}
	return &user, nil
}

// GetVerifiedOwnerByPhone returns the user holding phoneNumber with the
// number already verified. Unverified holders of the same number are not
// reported.
func (r *userRepository) GetVerifiedOwnerByPhone(ctx context.Context, phoneNumber string) (*domain.User, error) {
	const query = `
	SELECT ` + userColumns + ` FROM user WHERE phone_number = ? AND is_phone_number_verified = TRUE;
	`
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, phoneNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select verified owner by phone failed: %w", err)
	}
	return &user, nil
}

// SetPendingOtp stores the freshly issued code and the destination number in
// a single compound update, overwriting any previously pending code.
func (r *userRepository) SetPendingOtp(ctx context.Context, userID uuid.UUID, code string, phoneNumber string) error {
	const query = `
	UPDATE user SET pending_otp = ?, phone_number = ? WHERE id = uuid_to_bin(?);
	`
	res, err := r.db.ExecContext(ctx, query, code, phoneNumber, userID)
	if err != nil {
		return fmt.Errorf("update pending otp failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected failed: %w", err)
	}

	if rows == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

// CompleteVerification flips the verification flags, stamps joined_on and
// clears the pending code in one compound update. The guard on
// is_phone_number_verified makes the false→true transition observable: the
// returned bool is true only for the first successful verification.
func (r *userRepository) CompleteVerification(ctx context.Context, userID uuid.UUID, joinedOn time.Time) (bool, error) {
	const query = `
	UPDATE user
	SET is_profile_complete = TRUE, is_phone_number_verified = TRUE, joined_on = ?, pending_otp = NULL
	WHERE id = uuid_to_bin(?) AND is_phone_number_verified = FALSE;
	`
	res, err := r.db.ExecContext(ctx, query, joinedOn, userID)
	if err != nil {
		return false, fmt.Errorf("update verification state failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("get rows affected failed: %w", err)
	}

	return rows > 0, nil
}
