package domain

import (
	"time"

	"github.com/google/uuid"
)

// WatchlistEntry is one tracked instrument for one user. Entries are only
// ever created, never mutated.
type WatchlistEntry struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Symbol    string    `db:"symbol" json:"symbol"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
