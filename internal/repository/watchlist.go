package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/stockology/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type watchlistRepository struct {
	db *sqlx.DB
}

func newWatchlistRepository(db *sqlx.DB) *watchlistRepository {
	return &watchlistRepository{
		db: db,
	}
}

// CreateMany inserts the entries in one statement. The unique key on
// (user_id, symbol) plus INSERT IGNORE makes re-seeding a no-op.
func (r *watchlistRepository) CreateMany(ctx context.Context, entries []domain.WatchlistEntry) error {
	if len(entries) == 0 {
		return nil
	}

	placeholders := make([]string, 0, len(entries))
	args := make([]interface{}, 0, len(entries)*5)
	for _, entry := range entries {
		placeholders = append(placeholders, "(uuid_to_bin(?), uuid_to_bin(?), ?, ?, ?)")
		args = append(args, entry.ID, entry.UserID, entry.Symbol, entry.CreatedAt, entry.UpdatedAt)
	}

	query := `
	INSERT IGNORE INTO watchlist (id, user_id, symbol, created_at, updated_at)
	VALUES ` + strings.Join(placeholders, ", ") + `;`

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("db insert watchlist entries: %w", err)
	}

	return nil
}

func (r *watchlistRepository) GetAllByUserID(ctx context.Context, userID uuid.UUID) ([]domain.WatchlistEntry, error) {
	const query = `
	SELECT id, user_id, symbol, created_at, updated_at FROM watchlist WHERE user_id = uuid_to_bin(?) ORDER BY created_at, symbol;
	`
	var entries []domain.WatchlistEntry
	if err := r.db.SelectContext(ctx, &entries, query, userID); err != nil {
		return nil, fmt.Errorf("select watchlist by user failed: %w", err)
	}

	return entries, nil
}
