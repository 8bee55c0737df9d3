package services

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/projectzeus/checkin-backend/internal/config"
	"github.com/projectzeus/checkin-backend/internal/models"
	"github.com/projectzeus/checkin-backend/internal/repositories"
	"github.com/projectzeus/checkin-backend/internal/streak"
)

// MilestoneService scans all user records for threshold crossings
type MilestoneService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
	loc      *time.Location
	now      func() time.Time
}

// NewMilestoneService creates a new MilestoneService
func NewMilestoneService(userRepo repositories.UserRepository, cfg *config.Config) (*MilestoneService, error) {
	loc, err := time.LoadLocation(cfg.Bot.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "load timezone %q", cfg.Bot.Timezone)
	}
	return &MilestoneService{
		userRepo: userRepo,
		cfg:      cfg,
		loc:      loc,
		now:      time.Now,
	}, nil
}

// Scan builds the milestone report for the configured thresholds. Level
// and referral thresholds are cumulative: a user past several thresholds
// appears under each of them. Streak milestones only count users who
// checked in today with a streak that is an exact multiple of the divisor,
// so stale streaks are not re-reported.
func (s *MilestoneService) Scan(ctx context.Context) (*models.MilestoneReport, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load users")
	}

	m := s.cfg.Bot.Milestones
	report := &models.MilestoneReport{
		Level:    cumulativeGroups(users, m.Level, func(u *models.User) int { return u.Level }),
		Streak:   s.streakGroups(users, m.StreakDivisor),
		Referral: cumulativeGroups(users, m.Referral, func(u *models.User) int { return u.ReferralCount }),
	}
	return report, nil
}

// cumulativeGroups collects usernames at or past each threshold, in
// ascending threshold order, keeping store retrieval order within groups
func cumulativeGroups(users []*models.User, thresholds []int, value func(*models.User) int) []models.MilestoneGroup {
	sorted := append([]int(nil), thresholds...)
	sort.Ints(sorted)

	var groups []models.MilestoneGroup
	for _, threshold := range sorted {
		var names []string
		for _, u := range users {
			if value(u) >= threshold {
				names = append(names, u.Username)
			}
		}
		if len(names) > 0 {
			groups = append(groups, models.MilestoneGroup{Value: threshold, Usernames: names})
		}
	}
	return groups
}

// streakGroups groups today's check-ins whose streak is a non-zero
// multiple of the divisor, keyed by the exact streak value
func (s *MilestoneService) streakGroups(users []*models.User, divisor int) []models.MilestoneGroup {
	if divisor <= 0 {
		return nil
	}
	today := s.now().In(s.loc).Format(streak.DateLayout)

	byStreak := make(map[int][]string)
	for _, u := range users {
		if u.LastCheckInDate == today && u.Streak > 0 && u.Streak%divisor == 0 {
			byStreak[u.Streak] = append(byStreak[u.Streak], u.Username)
		}
	}

	values := make([]int, 0, len(byStreak))
	for v := range byStreak {
		values = append(values, v)
	}
	sort.Ints(values)

	var groups []models.MilestoneGroup
	for _, v := range values {
		groups = append(groups, models.MilestoneGroup{Value: v, Usernames: byStreak[v]})
	}
	return groups
}
