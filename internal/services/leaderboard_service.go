package services

import (
	"context"
	"sort"

	"github.com/pkg/errors"

	"github.com/projectzeus/checkin-backend/internal/models"
	"github.com/projectzeus/checkin-backend/internal/repositories"
)

// LeaderboardService ranks users by their current streak
type LeaderboardService struct {
	userRepo repositories.UserRepository
}

// NewLeaderboardService creates a new LeaderboardService
func NewLeaderboardService(userRepo repositories.UserRepository) *LeaderboardService {
	return &LeaderboardService{
		userRepo: userRepo,
	}
}

// Rank returns the top users by streak descending. Ties keep the store
// retrieval order.
func (s *LeaderboardService) Rank(ctx context.Context, topN int) ([]models.LeaderboardEntry, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load users")
	}

	sort.SliceStable(users, func(i, j int) bool {
		return users[i].Streak > users[j].Streak
	})

	if topN > 0 && len(users) > topN {
		users = users[:topN]
	}

	entries := make([]models.LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, models.LeaderboardEntry{
			Rank:     i + 1,
			Username: u.Username,
			Streak:   u.Streak,
		})
	}
	return entries, nil
}
