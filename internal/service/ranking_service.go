package service

import (
	"context"
	"encoding/json"
	"time"
	"trueinvest_backend/internal/model"
	"trueinvest_backend/internal/repository"
	"trueinvest_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const leaderboardCacheKey = "ranking:leaderboard"

// RankingService projects profiles ordered by the points ledger. The
// leaderboard is recomputed from the profile table on every read; Redis
// only shortcuts repeated reads for a few seconds and is flushed on any
// ledger mutation.

type RankingService struct {
	UserRepo *repository.UserRepository
	Redis    *redis.Client
	Size     int
	CacheTTL time.Duration
}

func NewRankingService(userRepo *repository.UserRepository, rdb *redis.Client, size, cacheSeconds int) *RankingService {
	return &RankingService{
		UserRepo: userRepo,
		Redis:    rdb,
		Size:     size,
		CacheTTL: time.Duration(cacheSeconds) * time.Second,
	}
}

type RankingEntry struct {
	Position int                 `json:"position"`
	Profile  model.PublicProfile `json:"profile"`
}

func (s *RankingService) Leaderboard(ctx context.Context) ([]RankingEntry, error) {
	if cached, err := s.Redis.Get(ctx, leaderboardCacheKey).Bytes(); err == nil {
		var entries []RankingEntry
		if err := json.Unmarshal(cached, &entries); err == nil {
			return entries, nil
		}
	} else if err != redis.Nil {
		logger.Log.Warn("leaderboard cache read failed", zap.Error(err))
	}

	users, err := s.UserRepo.FindTopByPoints(s.Size)
	if err != nil {
		return nil, err
	}

	entries := make([]RankingEntry, len(users))
	for i, u := range users {
		entries[i] = RankingEntry{
			Position: i + 1,
			Profile: model.PublicProfile{
				ID:          u.ID,
				Name:        u.Name,
				Photo:       u.Photo,
				TotalPoints: u.TotalPoints,
			},
		}
	}

	if payload, err := json.Marshal(entries); err == nil {
		if err := s.Redis.Set(ctx, leaderboardCacheKey, payload, s.CacheTTL).Err(); err != nil {
			logger.Log.Warn("leaderboard cache write failed", zap.Error(err))
		}
	}

	return entries, nil
}

// Rank returns the 1-based position of the user in the full ordering,
// or 0 when the user has no profile. Always a fresh full read, never
// cached.
func (s *RankingService) Rank(ctx context.Context, userID uint) (int, error) {
	users, err := s.UserRepo.FindAllByPoints()
	if err != nil {
		return 0, err
	}

	for i, u := range users {
		if u.ID == userID {
			return i + 1, nil
		}
	}
	return 0, nil
}

// Invalidate drops the cached leaderboard after any points mutation.
func (s *RankingService) Invalidate(ctx context.Context) {
	if err := s.Redis.Del(ctx, leaderboardCacheKey).Err(); err != nil && err != redis.Nil {
		logger.Log.Warn("leaderboard cache invalidation failed", zap.Error(err))
	}
}
