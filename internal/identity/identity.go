package identity

import (
	"strings"

	"github.com/projectzeus/checkin-backend/internal/models"
)

// unsavedPrefix marks a sender the chat platform could not match to a
// saved contact. A leading "+" on a raw phone number means the same thing.
const unsavedPrefix = "~"

// Kind discriminates the two identity cases
type Kind int

const (
	// KindResolved means the raw value is already a canonical short id
	KindResolved Kind = iota
	// KindUnresolved means the sender is not a saved contact; the canonical
	// id was synthesized from the raw phone digits
	KindUnresolved
)

// Identity is the canonical form of an event sender
type Identity struct {
	Kind Kind
	// ID is the canonical user identifier used as the store key
	ID string
	// Digits holds the raw phone digits for an unresolved identity
	Digits string
}

// Resolved reports whether the sender was already a saved contact
func (i Identity) Resolved() bool {
	return i.Kind == KindResolved
}

// Normalize derives the canonical identity from an inbound event. Group
// events identify the sender through the groupParticipant field, direct
// events through sender. An unresolved contact yields a synthesized id of
// "Z" followed by idDigits digits of the phone number, skipping the
// countryCodeDigits-long country code prefix.
func Normalize(q *models.Query, countryCodeDigits, idDigits int) Identity {
	raw := q.Sender
	if q.IsGroup {
		raw = q.GroupParticipant
	}
	raw = strings.Join(strings.Fields(raw), "")

	if !strings.HasPrefix(raw, unsavedPrefix) && !strings.HasPrefix(raw, "+") {
		return Identity{Kind: KindResolved, ID: raw}
	}

	digits := extractDigits(raw)
	return Identity{
		Kind:   KindUnresolved,
		ID:     "Z" + sliceDigits(digits, countryCodeDigits, idDigits),
		Digits: digits,
	}
}

func extractDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// sliceDigits takes the idDigits-long run that follows the country code,
// clamping for numbers too short to cover the full window.
func sliceDigits(digits string, countryCodeDigits, idDigits int) string {
	start := countryCodeDigits
	if start > len(digits) {
		start = 0
	}
	end := start + idDigits
	if end > len(digits) {
		end = len(digits)
	}
	return digits[start:end]
}
