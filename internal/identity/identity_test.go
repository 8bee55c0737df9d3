package identity

import (
	"testing"

	"github.com/projectzeus/checkin-backend/internal/models"
)

func TestNormalizeResolvedDirect(t *testing.T) {
	q := &models.Query{Sender: "Z17698", Message: "checkin"}

	got := Normalize(q, 2, 5)

	if !got.Resolved() {
		t.Fatal("saved contact should resolve")
	}
	if got.ID != "Z17698" {
		t.Errorf("ID = %q, want Z17698", got.ID)
	}
}

func TestNormalizeGroupUsesParticipant(t *testing.T) {
	q := &models.Query{
		IsGroup:          true,
		Sender:           "some-group-jid",
		GroupParticipant: "Z55501",
	}

	got := Normalize(q, 2, 5)

	if got.ID != "Z55501" {
		t.Errorf("ID = %q, want the group participant", got.ID)
	}
}

func TestNormalizeStripsWhitespace(t *testing.T) {
	q := &models.Query{Sender: "  Z176 98 "}

	got := Normalize(q, 2, 5)

	if got.ID != "Z17698" {
		t.Errorf("ID = %q, want Z17698", got.ID)
	}
}

func TestNormalizeUnresolvedPhoneNumber(t *testing.T) {
	q := &models.Query{Sender: "+49 176 9876543"}

	got := Normalize(q, 2, 5)

	if got.Resolved() {
		t.Fatal("a raw phone number must be unresolved")
	}
	if got.Digits != "491769876543" {
		t.Errorf("Digits = %q, want 491769876543", got.Digits)
	}
	// Country code 49 is skipped, then five digits are taken.
	if got.ID != "Z17698" {
		t.Errorf("ID = %q, want Z17698", got.ID)
	}
}

func TestNormalizeUnsavedMarker(t *testing.T) {
	q := &models.Query{Sender: "~234 813 555 0001"}

	got := Normalize(q, 2, 5)

	if got.Resolved() {
		t.Fatal("unsaved-contact marker must be unresolved")
	}
	if got.ID != "Z48135" {
		t.Errorf("ID = %q, want Z48135", got.ID)
	}
}

func TestNormalizeShortNumberClamps(t *testing.T) {
	q := &models.Query{Sender: "+4917"}

	got := Normalize(q, 2, 5)

	if got.ID != "Z17" {
		t.Errorf("ID = %q, want Z17", got.ID)
	}
}
