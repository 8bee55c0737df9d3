package services

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/projectzeus/checkin-backend/internal/commands"
	"github.com/projectzeus/checkin-backend/internal/config"
	"github.com/projectzeus/checkin-backend/internal/identity"
	"github.com/projectzeus/checkin-backend/internal/models"
	"github.com/projectzeus/checkin-backend/internal/repositories"
	"github.com/projectzeus/checkin-backend/internal/streak"
	"github.com/projectzeus/checkin-backend/internal/utils"
	"github.com/projectzeus/checkin-backend/pkg/fitnessapi"
)

const fitnessTimeout = 5 * time.Second

// CheckinService runs the daily check-in state machine against the store
type CheckinService struct {
	userRepo repositories.UserRepository
	fitness  fitnessapi.Client
	locks    *utils.KeyedMutex
	cfg      *config.Config
	logger   *zap.Logger
	loc      *time.Location
	now      func() time.Time
}

// NewCheckinService creates a new CheckinService. All date comparisons run
// in the configured bot timezone. locks is shared with the registration
// service so every mutation for one identifier is serialized.
func NewCheckinService(userRepo repositories.UserRepository, fitness fitnessapi.Client, locks *utils.KeyedMutex, cfg *config.Config, logger *zap.Logger) (*CheckinService, error) {
	loc, err := time.LoadLocation(cfg.Bot.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "load timezone %q", cfg.Bot.Timezone)
	}
	return &CheckinService{
		userRepo: userRepo,
		fitness:  fitness,
		locks:    locks,
		cfg:      cfg,
		logger:   logger,
		loc:      loc,
		now:      time.Now,
	}, nil
}

// CheckIn applies one check-in for the event's sender and returns the
// updated record and the reply text. The read-modify-write is serialized
// per identifier and the write is conditional on the record's prior
// lastCheckInDate, so concurrent check-ins cannot double-increment.
func (s *CheckinService) CheckIn(ctx context.Context, q *models.Query) (*models.User, string, error) {
	ident := identity.Normalize(q, s.cfg.Bot.CountryCodeDigits, s.cfg.Bot.IdentifierDigits)
	if q.IsGroup && !ident.Resolved() {
		return nil, "", ErrUnresolvedContact
	}

	bonus := 0
	if commands.HasBonusToken(q.Message) {
		bonus = s.cfg.Bot.PhotoBonus
	}

	unlock := s.locks.Lock(ident.ID)
	defer unlock()

	user, err := s.userRepo.FindByIdentifier(ctx, ident.ID)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, "", ErrUserNotFound
	}
	if err != nil {
		return nil, "", errors.Wrap(err, "lookup user")
	}

	outcome := streak.Advance(streak.State{
		Level:           user.Level,
		Streak:          user.Streak,
		BestStreak:      user.BestStreak,
		LastCheckInDate: user.LastCheckInDate,
	}, s.now().In(s.loc), bonus)

	if outcome.Result != streak.AlreadyCheckedIn {
		err := s.userRepo.UpdateCheckIn(ctx, user.ID, user.LastCheckInDate, models.CheckInUpdate{
			Level:           outcome.State.Level,
			Streak:          outcome.State.Streak,
			BestStreak:      outcome.State.BestStreak,
			LastCheckInDate: outcome.State.LastCheckInDate,
		})
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			// A concurrent check-in won the write; report the no-op branch
			// with the record as persisted.
			outcome = streak.Outcome{Result: streak.AlreadyCheckedIn, State: outcome.State}
			fresh, rerr := s.userRepo.FindByIdentifier(ctx, ident.ID)
			if rerr != nil {
				return nil, "", errors.Wrap(rerr, "reload user")
			}
			user = fresh
		} else if err != nil {
			return nil, "", errors.Wrap(err, "write check-in")
		} else {
			user.Level = outcome.State.Level
			user.Streak = outcome.State.Streak
			user.BestStreak = outcome.State.BestStreak
			user.LastCheckInDate = outcome.State.LastCheckInDate
		}
	}

	message := CheckInReply(outcome)
	if supplement := s.stepsSupplement(ctx, user.Identifier); supplement != "" {
		message += supplement
	}

	return user, message, nil
}

// stepsSupplement fetches the fitness metric for the configured identifier.
// Failures never block the check-in: log and omit.
func (s *CheckinService) stepsSupplement(ctx context.Context, identifier string) string {
	if s.cfg.Google.StepsIdentifier == "" || identifier != s.cfg.Google.StepsIdentifier {
		return ""
	}

	fctx, cancel := context.WithTimeout(ctx, fitnessTimeout)
	defer cancel()

	steps, err := s.fitness.TodayStepCount(fctx)
	if err != nil {
		s.logger.Warn("step count fetch failed",
			zap.String("identifier", identifier),
			zap.Error(err))
		return ""
	}
	return StepsSupplement(steps)
}
