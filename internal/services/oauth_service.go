package services

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/projectzeus/checkin-backend/internal/config"
	"github.com/projectzeus/checkin-backend/internal/models"
	"github.com/projectzeus/checkin-backend/internal/repositories"
)

// googleProvider keys the stored credential document
const googleProvider = "google"

// OAuthService runs the Google authorization-code flow and hands token
// sources to the People and Fitness clients.
type OAuthService struct {
	tokenRepo repositories.TokenRepository
	oauthCfg  *oauth2.Config
	logger    *zap.Logger
}

// NewOAuthService creates a new OAuthService
func NewOAuthService(cfg *config.Config, tokenRepo repositories.TokenRepository, logger *zap.Logger) *OAuthService {
	return &OAuthService{
		tokenRepo: tokenRepo,
		oauthCfg: &oauth2.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURL,
			Scopes:       cfg.Google.Scopes,
			Endpoint:     google.Endpoint,
		},
		logger: logger,
	}
}

// AuthCodeURL builds the consent-screen redirect URL
func (s *OAuthService) AuthCodeURL(state string) string {
	return s.oauthCfg.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange trades the authorization code for a token and persists it
func (s *OAuthService) Exchange(ctx context.Context, code string) error {
	token, err := s.oauthCfg.Exchange(ctx, code)
	if err != nil {
		return errors.Wrap(err, "exchange authorization code")
	}

	err = s.tokenRepo.Save(ctx, &models.OAuthToken{
		Provider:     googleProvider,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		Expiry:       token.Expiry,
	})
	if err != nil {
		return errors.Wrap(err, "persist token")
	}

	s.logger.Info("google credential stored", zap.Time("expiry", token.Expiry))
	return nil
}

// TokenSource returns a refreshing token source backed by the stored
// credential. It satisfies the People and Fitness TokenProvider interfaces.
func (s *OAuthService) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	stored, err := s.tokenRepo.Find(ctx, googleProvider)
	if err != nil {
		return nil, errors.Wrap(err, "load stored credential")
	}

	token := &oauth2.Token{
		AccessToken:  stored.AccessToken,
		RefreshToken: stored.RefreshToken,
		TokenType:    stored.TokenType,
		Expiry:       stored.Expiry,
	}
	return s.oauthCfg.TokenSource(ctx, token), nil
}
