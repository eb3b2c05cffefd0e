package repository

import (
	"context"
	"time"

	"github.com/stockology/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Users      Users
	Watchlists Watchlists
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Users:      newUserRepository(db),
		Watchlists: newWatchlistRepository(db),
	}
}

type Users interface {
	Create(ctx context.Context, user *domain.User) error
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetVerifiedOwnerByPhone(ctx context.Context, phoneNumber string) (*domain.User, error)
	SetPendingOtp(ctx context.Context, userID uuid.UUID, code string, phoneNumber string) error
	CompleteVerification(ctx context.Context, userID uuid.UUID, joinedOn time.Time) (bool, error)
}

type Watchlists interface {
	CreateMany(ctx context.Context, entries []domain.WatchlistEntry) error
	GetAllByUserID(ctx context.Context, userID uuid.UUID) ([]domain.WatchlistEntry, error)
}
