package services

import (
	"fmt"
	"strings"

	"github.com/projectzeus/checkin-backend/internal/models"
	"github.com/projectzeus/checkin-backend/internal/streak"
)

// Reply text sent back through the chat platform. Wording is part of the
// bot's surface, change with care.

// WelcomeReply is the registration success message
func WelcomeReply(user *models.User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎉 Welcome %s!\n", user.Username)
	fmt.Fprintf(&b, "Upgraded to level %d🔥\n", user.Level)
	b.WriteString("User Card😎\n")
	fmt.Fprintf(&b, "Level: %d\n", user.Level)
	fmt.Fprintf(&b, "Best Streak: %d\n", user.BestStreak)
	fmt.Fprintf(&b, "Referral Code: %s (note it down)\n", user.ReferralCode)
	return b.String()
}

// InfoReply is the user card for the info command
func InfoReply(user *models.User) string {
	var b strings.Builder
	b.WriteString("Info😎\n")
	fmt.Fprintf(&b, "Username: %s\n", user.Username)
	fmt.Fprintf(&b, "Level: %d\n", user.Level)
	fmt.Fprintf(&b, "Streak: %d\n", user.Streak)
	fmt.Fprintf(&b, "Best Streak: %d\n", user.BestStreak)
	fmt.Fprintf(&b, "Referral Code: %s\n", user.ReferralCode)
	fmt.Fprintf(&b, "Referral Count: %d\n", user.ReferralCount)
	return b.String()
}

// CheckInReply describes the branch a check-in took
func CheckInReply(outcome streak.Outcome) string {
	switch outcome.Result {
	case streak.AlreadyCheckedIn:
		return "✅ Check-in has been already done. Next check-in tomorrow"
	case streak.Broken:
		return "🔴 You broke your streak. Starting from level 1"
	default:
		msg := fmt.Sprintf("🎉 Reached level %d", outcome.State.Level)
		if outcome.Bonus > 0 {
			msg += fmt.Sprintf(" (+%d photo bonus)", outcome.Bonus)
		}
		return msg
	}
}

// StepsSupplement formats the optional fitness metric appended to a
// check-in reply
func StepsSupplement(steps int) string {
	return fmt.Sprintf("\n👣 Steps today: %d", steps)
}

// MilestoneReply renders the milestone report
func MilestoneReply(report *models.MilestoneReport) string {
	if report.Empty() {
		return "*Milestone Report*\n\nNo milestones reached."
	}

	var b strings.Builder
	b.WriteString("*Milestone Report*\n\n")
	writeGroups(&b, "Level", "Level", report.Level)
	writeGroups(&b, "Streak", "Streak", report.Streak)
	writeGroups(&b, "Referral", "Referrals", report.Referral)
	return b.String()
}

func writeGroups(b *strings.Builder, heading, label string, groups []models.MilestoneGroup) {
	if len(groups) == 0 {
		return
	}
	fmt.Fprintf(b, "*%s Milestones*\n", heading)
	for _, g := range groups {
		fmt.Fprintf(b, "%s %d:\n%s\n\n", label, g.Value, strings.Join(g.Usernames, "\n"))
	}
}

// LeaderboardReply renders the top streaks
func LeaderboardReply(entries []models.LeaderboardEntry) string {
	if len(entries) == 0 {
		return "🏆 Leaderboard\n\nNo one has checked in yet."
	}

	var b strings.Builder
	b.WriteString("🏆 Leaderboard\n\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "%d. %s (streak %d)\n", e.Rank, e.Username, e.Streak)
	}
	return b.String()
}

// UsageReply is sent for unrecognized commands
func UsageReply() string {
	return "Enter valid input. Refer manual for commands. Spamming can lead to ban"
}

// ReplyForError maps a domain error to its user-visible reply. The second
// return is false for unexpected errors, which get a generic reply.
func ReplyForError(err error) (string, bool) {
	switch {
	case isErr(err, ErrGroupRegistration):
		return "❌ Registration must be done in a direct message", true
	case isErr(err, ErrInvalidFormat):
		return "❌ Invalid registration format", true
	case isErr(err, ErrUserExists):
		return "❌ User already exists", true
	case isErr(err, ErrInvalidReferralCode):
		return "❌ Invalid referral code", true
	case isErr(err, ErrUserNotFound), isErr(err, ErrUnresolvedContact):
		return "Please register first", true
	case isErr(err, ErrContactCreation):
		return "❌ Could not save your contact, try again later", true
	default:
		return "⚠️ Something went wrong, try again later", false
	}
}
