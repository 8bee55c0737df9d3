package services

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

// Domain errors surfaced to handlers. Each maps to a user-visible reply;
// none is fatal to the serving process.
var (
	// ErrGroupRegistration: registration attempted from a group chat
	ErrGroupRegistration = errors.New("registration must be a direct message")
	// ErrInvalidFormat: message is missing the register:<name> token
	ErrInvalidFormat = errors.New("invalid registration format")
	// ErrUserExists: the canonical identifier is already registered
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidReferralCode: no record owns the supplied referrer code
	ErrInvalidReferralCode = errors.New("invalid referral code")
	// ErrUserNotFound: the identifier has no record yet
	ErrUserNotFound = errors.New("user not registered")
	// ErrUnresolvedContact: a group sender not yet saved as a contact
	ErrUnresolvedContact = errors.New("unresolved contact")
	// ErrContactCreation: the People API collaborator declined or failed
	ErrContactCreation = errors.New("contact creation failed")
)

// isErr unwraps through pkg/errors wrapping
func isErr(err, target error) bool {
	return stderrors.Is(err, target)
}
