// Package streak implements the daily check-in state machine. It is pure:
// the caller supplies the previous state and the current date, and gets
// back the next state without any storage concerns.
package streak

import (
	"time"
)

// DateLayout is the calendar-date format stored on user records
const DateLayout = "2006-01-02"

// State is the streak-relevant slice of a user record
type State struct {
	Level      int
	Streak     int
	BestStreak int
	// LastCheckInDate is a DateLayout date, empty for never
	LastCheckInDate string
}

// Result names the branch a check-in took
type Result int

const (
	// AlreadyCheckedIn means the record was already stamped today; no mutation
	AlreadyCheckedIn Result = iota
	// Continued means the streak carried on (or started for a first check-in)
	Continued
	// Broken means a day was missed and the progression reset
	Broken
)

// Outcome is the result of one check-in transition
type Outcome struct {
	Result Result
	State  State
	// Bonus is the extra level gain that was applied, zero unless Continued
	Bonus int
}

// Advance applies one check-in to prev as of today. Exactly one branch
// applies:
//
//   - already stamped today: no mutation;
//   - stamped yesterday, or never stamped: level rises by 1+bonus, streak
//     rises by 1 and bestStreak follows it up;
//   - stamped any earlier day: level and streak reset to 1, bestStreak
//     keeps the historical peak.
//
// The caller must pass today in the bot's fixed timezone so "yesterday"
// and the stored dates agree.
func Advance(prev State, today time.Time, bonus int) Outcome {
	todayDate := today.Format(DateLayout)
	yesterdayDate := today.AddDate(0, 0, -1).Format(DateLayout)

	switch prev.LastCheckInDate {
	case todayDate:
		return Outcome{Result: AlreadyCheckedIn, State: prev}

	case yesterdayDate, "":
		next := prev
		next.Level += 1 + bonus
		next.Streak++
		if next.Streak > next.BestStreak {
			next.BestStreak = next.Streak
		}
		next.LastCheckInDate = todayDate
		return Outcome{Result: Continued, State: next, Bonus: bonus}

	default:
		next := prev
		next.Level = 1
		next.Streak = 1
		next.LastCheckInDate = todayDate
		return Outcome{Result: Broken, State: next}
	}
}
