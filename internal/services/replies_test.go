package services

import (
	"strings"
	"testing"

	"github.com/projectzeus/checkin-backend/internal/models"
)

func TestLeaderboardReply(t *testing.T) {
	entries := []models.LeaderboardEntry{
		{Rank: 1, Username: "bob", Streak: 7},
		{Rank: 2, Username: "alice", Streak: 3},
	}

	got := LeaderboardReply(entries)

	for _, line := range []string{"1. bob (streak 7)", "2. alice (streak 3)"} {
		if !strings.Contains(got, line) {
			t.Errorf("reply %q missing line %q", got, line)
		}
	}
}

func TestLeaderboardReplyEmpty(t *testing.T) {
	if got := LeaderboardReply(nil); !strings.Contains(got, "No one has checked in yet") {
		t.Errorf("reply = %q, want the empty-board text", got)
	}
}
