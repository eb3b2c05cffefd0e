package service

import (
	"context"

	"github.com/stockology/backend/internal/domain"
	"github.com/stockology/backend/internal/repository"

	"github.com/google/uuid"
)

type watchlistService struct {
	watchlistRepository repository.Watchlists
}

func newWatchlistService(watchlistRepository repository.Watchlists) *watchlistService {
	return &watchlistService{
		watchlistRepository: watchlistRepository,
	}
}

func (s *watchlistService) GetAllByUserID(ctx context.Context, userID uuid.UUID) ([]domain.WatchlistEntry, error) {
	return s.watchlistRepository.GetAllByUserID(ctx, userID)
}
