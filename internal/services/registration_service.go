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
	"github.com/projectzeus/checkin-backend/internal/utils"
	"github.com/projectzeus/checkin-backend/pkg/peopleapi"
)

const (
	referralCodeLength   = 5
	referralCodeAttempts = 5
	contactTimeout       = 10 * time.Second
)

// RegistrationService creates user records from registration messages
type RegistrationService struct {
	userRepo repositories.UserRepository
	contacts peopleapi.Client
	locks    *utils.KeyedMutex
	cfg      *config.Config
	logger   *zap.Logger
}

// NewRegistrationService creates a new RegistrationService. locks must be
// the same KeyedMutex the check-in service uses, so every mutation for one
// identifier is serialized.
func NewRegistrationService(userRepo repositories.UserRepository, contacts peopleapi.Client, locks *utils.KeyedMutex, cfg *config.Config, logger *zap.Logger) *RegistrationService {
	return &RegistrationService{
		userRepo: userRepo,
		contacts: contacts,
		locks:    locks,
		cfg:      cfg,
		logger:   logger,
	}
}

// Register validates a registration event and creates the user record.
// Registration is a direct-message-only command; unresolved senders are
// first materialized as contacts through the People API, and a valid
// referrer grants the new user level 1 and bumps the referrer's count.
func (s *RegistrationService) Register(ctx context.Context, q *models.Query) (*models.User, error) {
	if q.IsGroup {
		return nil, ErrGroupRegistration
	}

	username, referrerCode, err := commands.ParseRegister(q.Message)
	if err != nil {
		return nil, ErrInvalidFormat
	}

	ident := identity.Normalize(q, s.cfg.Bot.CountryCodeDigits, s.cfg.Bot.IdentifierDigits)
	if !ident.Resolved() {
		cctx, cancel := context.WithTimeout(ctx, contactTimeout)
		defer cancel()
		if err := s.contacts.CreateContact(cctx, ident.ID, ident.Digits); err != nil {
			s.logger.Error("contact creation failed",
				zap.String("identifier", ident.ID),
				zap.Error(err))
			return nil, ErrContactCreation
		}
	}

	// The duplicate check and the insert must not interleave with another
	// registration or check-in for the same identifier.
	unlock := s.locks.Lock(ident.ID)
	defer unlock()

	if _, err := s.userRepo.FindByIdentifier(ctx, ident.ID); err == nil {
		return nil, ErrUserExists
	} else if !stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.Wrap(err, "lookup user")
	}

	level := 0
	var referrer *models.User
	if referrerCode != "" {
		referrer, err = s.userRepo.FindByReferralCode(ctx, referrerCode)
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidReferralCode
		}
		if err != nil {
			return nil, errors.Wrap(err, "lookup referrer")
		}
		level = 1
	}

	code, err := s.uniqueReferralCode(ctx)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Identifier:      ident.ID,
		Username:        username,
		ReferrerCode:    referrerCode,
		ReferralCode:    code,
		Level:           level,
		Streak:          0,
		BestStreak:      0,
		ReferralCount:   0,
		LastCheckInDate: "",
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "create user")
	}

	if referrer != nil {
		if err := s.userRepo.IncrementReferralCount(ctx, referrer.ID); err != nil {
			// The new record exists; losing the referrer credit is
			// recoverable, failing the whole registration is not.
			s.logger.Error("referral count increment failed",
				zap.String("referrer", referrer.Identifier),
				zap.Error(err))
		}
	}

	s.logger.Info("user registered",
		zap.String("identifier", user.Identifier),
		zap.String("username", user.Username),
		zap.Int("level", user.Level))

	return user, nil
}

// uniqueReferralCode draws codes until one is free in the store
func (s *RegistrationService) uniqueReferralCode(ctx context.Context) (string, error) {
	for i := 0; i < referralCodeAttempts; i++ {
		code, err := utils.GenerateReferralCode(referralCodeLength)
		if err != nil {
			return "", errors.Wrap(err, "generate referral code")
		}
		_, err = s.userRepo.FindByReferralCode(ctx, code)
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return code, nil
		}
		if err != nil {
			return "", errors.Wrap(err, "check referral code")
		}
	}
	return "", errors.New("could not allocate a unique referral code")
}
