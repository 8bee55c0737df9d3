// Package commands parses free-text bot messages into typed commands,
// keeping text handling out of the engines.
package commands

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Kind identifies a bot command
type Kind int

const (
	KindUnknown Kind = iota
	KindRegister
	KindCheckIn
	KindInfo
	KindLeaderboard
	KindMilestone
)

// Command is a parsed bot message
type Command struct {
	Kind Kind
	// Username and ReferrerCode are set for KindRegister
	Username     string
	ReferrerCode string
	// Bonus is set for KindCheckIn when the message carries the photo token
	Bonus bool
}

// ErrInvalidFormat means a register message is missing the username token
var ErrInvalidFormat = errors.New("invalid registration format")

var (
	registerRe = regexp.MustCompile(`register:\s*(\w+)`)
	referralRe = regexp.MustCompile(`referral:\s*(\w+)`)
	photoRe    = regexp.MustCompile(`(?i)\bphoto\b`)
)

// ParseRegister extracts the username and optional referrer code from a
// registration message.
func ParseRegister(message string) (username, referrerCode string, err error) {
	m := registerRe.FindStringSubmatch(message)
	if m == nil {
		return "", "", ErrInvalidFormat
	}
	username = m[1]

	if r := referralRe.FindStringSubmatch(message); r != nil {
		referrerCode = r[1]
	}
	return username, referrerCode, nil
}

// HasBonusToken reports whether a check-in message claims the photo bonus
func HasBonusToken(message string) bool {
	return photoRe.MatchString(message)
}

// Parse dispatches a message on its first word and returns the typed
// command. Unrecognized input yields KindUnknown.
func Parse(message string) Command {
	fields := strings.Fields(message)
	if len(fields) == 0 {
		return Command{Kind: KindUnknown}
	}

	// "register:alice" keeps the colon attached to the first word
	word, _, _ := strings.Cut(strings.ToLower(fields[0]), ":")

	switch word {
	case "register":
		username, referrer, err := ParseRegister(message)
		if err != nil {
			return Command{Kind: KindRegister}
		}
		return Command{Kind: KindRegister, Username: username, ReferrerCode: referrer}
	case "checkin":
		return Command{Kind: KindCheckIn, Bonus: HasBonusToken(message)}
	case "info":
		return Command{Kind: KindInfo}
	case "leaderboard":
		return Command{Kind: KindLeaderboard}
	case "milestone":
		return Command{Kind: KindMilestone}
	default:
		return Command{Kind: KindUnknown}
	}
}
