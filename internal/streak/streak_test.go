package streak

import (
	"testing"
	"time"
)

var today = time.Date(2024, 5, 20, 15, 0, 0, 0, time.UTC)

func date(daysAgo int) string {
	return today.AddDate(0, 0, -daysAgo).Format(DateLayout)
}

func TestAdvanceFirstCheckIn(t *testing.T) {
	out := Advance(State{}, today, 0)

	if out.Result != Continued {
		t.Fatalf("Result = %v, want Continued", out.Result)
	}
	want := State{Level: 1, Streak: 1, BestStreak: 1, LastCheckInDate: date(0)}
	if out.State != want {
		t.Errorf("State = %+v, want %+v", out.State, want)
	}
}

func TestAdvanceContinuation(t *testing.T) {
	prev := State{Level: 10, Streak: 4, BestStreak: 5, LastCheckInDate: date(1)}

	out := Advance(prev, today, 0)

	if out.Result != Continued {
		t.Fatalf("Result = %v, want Continued", out.Result)
	}
	want := State{Level: 11, Streak: 5, BestStreak: 5, LastCheckInDate: date(0)}
	if out.State != want {
		t.Errorf("State = %+v, want %+v", out.State, want)
	}
}

func TestAdvanceBestStreakFollows(t *testing.T) {
	prev := State{Level: 5, Streak: 5, BestStreak: 5, LastCheckInDate: date(1)}

	out := Advance(prev, today, 0)

	if out.State.BestStreak != 6 {
		t.Errorf("BestStreak = %d, want 6", out.State.BestStreak)
	}
}

func TestAdvanceSameDayIsNoop(t *testing.T) {
	prev := State{Level: 7, Streak: 3, BestStreak: 8, LastCheckInDate: date(0)}

	out := Advance(prev, today, 0)

	if out.Result != AlreadyCheckedIn {
		t.Fatalf("Result = %v, want AlreadyCheckedIn", out.Result)
	}
	if out.State != prev {
		t.Errorf("State = %+v, want unchanged %+v", out.State, prev)
	}

	// Applying it again must not change anything either.
	again := Advance(out.State, today, 0)
	if again.State != prev {
		t.Errorf("second Advance mutated state: %+v", again.State)
	}
}

func TestAdvanceBrokenStreak(t *testing.T) {
	prev := State{Level: 12, Streak: 4, BestStreak: 9, LastCheckInDate: date(3)}

	out := Advance(prev, today, 0)

	if out.Result != Broken {
		t.Fatalf("Result = %v, want Broken", out.Result)
	}
	want := State{Level: 1, Streak: 1, BestStreak: 9, LastCheckInDate: date(0)}
	if out.State != want {
		t.Errorf("State = %+v, want %+v", out.State, want)
	}
}

func TestAdvancePhotoBonus(t *testing.T) {
	prev := State{Level: 3, Streak: 2, BestStreak: 2, LastCheckInDate: date(1)}

	out := Advance(prev, today, 2)

	if out.State.Level != 6 {
		t.Errorf("Level = %d, want 6 (1 base + 2 bonus)", out.State.Level)
	}
	if out.Bonus != 2 {
		t.Errorf("Bonus = %d, want 2", out.Bonus)
	}
	if out.State.Streak != 3 {
		t.Errorf("Streak = %d, want 3 (bonus must not touch the streak)", out.State.Streak)
	}
}

func TestAdvanceBonusIgnoredOnBreak(t *testing.T) {
	prev := State{Level: 9, Streak: 6, BestStreak: 6, LastCheckInDate: date(5)}

	out := Advance(prev, today, 2)

	if out.State.Level != 1 || out.Bonus != 0 {
		t.Errorf("Level = %d, Bonus = %d; broken streak must reset to 1 with no bonus", out.State.Level, out.Bonus)
	}
}

// Streak may never exceed bestStreak, whatever sequence of check-ins and
// gaps the user produces.
func TestAdvanceStreakNeverExceedsBest(t *testing.T) {
	state := State{}
	day := today
	// Check in for a stretch, miss days, check in again, repeat.
	gaps := []int{1, 1, 1, 3, 1, 1, 2, 1, 1, 1, 1, 5, 1}
	for i, gap := range gaps {
		day = day.AddDate(0, 0, gap)
		out := Advance(state, day, i%3)
		state = out.State
		if state.Streak > state.BestStreak {
			t.Fatalf("after step %d: streak %d > bestStreak %d", i, state.Streak, state.BestStreak)
		}
	}
}
