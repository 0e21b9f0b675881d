package streaks

import (
	"time"

	"github.com/2beens/gymsphere/internal/plans"
	"github.com/2beens/gymsphere/pkg"
)

type Streaks struct {
	Workout int `json:"workout"`
	Diet    int `json:"diet"`
}

func workoutSuccess(e plans.DailyEntry) bool {
	return !e.IsExerciseDay || e.IsExerciseCompleted
}

func dietSuccess(e plans.DailyEntry) bool {
	return e.IsDietCompleted
}

// Compute returns the current workout and diet streaks.
// entries must be sorted by date descending and hold no date after today.
// An unfinished today neither counts nor breaks a streak.
func Compute(entries []plans.DailyEntry, today time.Time) Streaks {
	today = pkg.CalendarDate(today)
	return Streaks{
		Workout: current(entries, today, workoutSuccess),
		Diet:    current(entries, today, dietSuccess),
	}
}

// Longest returns the longest unbroken runs within entries, with the same
// ordering and today rules as Compute.
func Longest(entries []plans.DailyEntry, today time.Time) Streaks {
	today = pkg.CalendarDate(today)
	return Streaks{
		Workout: longest(entries, today, workoutSuccess),
		Diet:    longest(entries, today, dietSuccess),
	}
}

func current(entries []plans.DailyEntry, today time.Time, success func(plans.DailyEntry) bool) int {
	streak := 0
	for i, e := range entries {
		if i == 0 && e.Date.Equal(today) && !success(e) {
			continue
		}
		if !success(e) {
			break
		}
		streak++
	}
	return streak
}

func longest(entries []plans.DailyEntry, today time.Time, success func(plans.DailyEntry) bool) int {
	best, run := 0, 0
	for i, e := range entries {
		if i == 0 && e.Date.Equal(today) && !success(e) {
			continue
		}
		if !success(e) {
			run = 0
			continue
		}
		run++
		best = max(best, run)
	}
	return best
}
