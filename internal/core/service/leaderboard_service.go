package service

import (
	"context"
	"time"

	"spinnergy/internal/cache"
	"spinnergy/internal/core/model"
	"spinnergy/internal/core/repository"
)

const (
	defaultRankLimit = 10
	boardCacheSize   = 100
	boardCacheTTL    = 30 * time.Second
)

type LeaderboardService interface {
	Rank(limit int) ([]model.LeaderboardEntry, error)
}

type leaderboardService struct {
	accountRepo repository.AccountRepository
}

func NewLeaderboardService(accountRepo repository.AccountRepository) LeaderboardService {
	return &leaderboardService{
		accountRepo: accountRepo,
	}
}

func (s *leaderboardService) Rank(limit int) ([]model.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultRankLimit
	}

	ctx := context.Background()

	var entries []model.LeaderboardEntry
	if err := cache.Get(ctx, cache.LeaderboardKey, &entries); err == nil && len(entries) >= limit {
		return entries[:limit], nil
	}

	fetch := boardCacheSize
	if limit > fetch {
		fetch = limit
	}

	entries, err := s.accountRepo.TopByScore(fetch)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []model.LeaderboardEntry{}
	}

	// Best effort: a stale or missing cache entry never fails the request.
	cache.Set(ctx, cache.LeaderboardKey, entries, boardCacheTTL)

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
