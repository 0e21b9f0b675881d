package plans

import (
	"errors"
	"time"

	"github.com/2beens/gymsphere/internal/diet"
	"github.com/2beens/gymsphere/internal/workout"
	"github.com/2beens/gymsphere/pkg"
)

const (
	PlanTypeWorkoutDiet     = "workout+diet"
	DefaultPreference       = "nonveg"
	DefaultFrequencyPerWeek = 5
	TotalDays               = 30
	restEvery               = 3
)

var (
	ErrPlanNotFound        = errors.New("plan not found")
	ErrEntryNotFound       = errors.New("plan entry not found")
	ErrInvalidCheckInType  = errors.New("invalid check-in type")
	ErrEntryNotOwnedByUser = errors.New("plan entry belongs to another user")
)

type CheckInType string

const (
	CheckInExercise CheckInType = "exercise"
	CheckInDiet     CheckInType = "diet"
)

func ParseCheckInType(s string) (CheckInType, error) {
	switch CheckInType(s) {
	case CheckInExercise, CheckInDiet:
		return CheckInType(s), nil
	}
	return "", ErrInvalidCheckInType
}

type Plan struct {
	ID               int            `json:"id"`
	UserID           int            `json:"user_id"`
	PlanType         string         `json:"plan_type"`
	Goal             string         `json:"goal"`
	Preference       string         `json:"preference"`
	StartDate        time.Time      `json:"start_date"`
	EndDate          time.Time      `json:"end_date"`
	FrequencyPerWeek int            `json:"frequency_per_week"`
	FitnessLevel     string         `json:"fitness_level"`
	Metadata         map[string]any `json:"metadata"`
	CreatedAt        time.Time      `json:"created_at"`
	Entries          []DailyEntry   `json:"entries,omitempty"`
}

type DailyEntry struct {
	ID                  int                       `json:"id"`
	PlanID              int                       `json:"plan_id"`
	Date                time.Time                 `json:"date"`
	IsExerciseDay       bool                      `json:"is_exercise_day"`
	IsExerciseCompleted bool                      `json:"is_exercise_completed"`
	IsDietCompleted     bool                      `json:"is_diet_completed"`
	ExerciseCompletedAt *time.Time                `json:"exercise_completed_at"`
	DietCompletedAt     *time.Time                `json:"diet_completed_at"`
	ExercisePayload     []workout.RoutineExercise `json:"exercise_payload"`
	DietPayload         diet.DietPayload          `json:"diet_payload"`
	StreakGroup         int                       `json:"streak_group"`
}

// Completed is true when everything the day asks for is done.
func (e DailyEntry) Completed() bool {
	if e.IsExerciseDay {
		return e.IsExerciseCompleted && e.IsDietCompleted
	}
	return e.IsDietCompleted
}

// CalendarStatus is one of completed, missed, today or future, relative to today.
func (e DailyEntry) CalendarStatus(today time.Time) string {
	today = pkg.CalendarDate(today)
	switch {
	case e.Date.After(today):
		return "future"
	case e.Completed():
		return "completed"
	case e.Date.Equal(today):
		return "today"
	default:
		return "missed"
	}
}

// EntryOwner pairs an entry with the id of the user whose plan holds it.
type EntryOwner struct {
	Entry  DailyEntry
	UserID int
}

type CheckIn struct {
	ID           int         `json:"id"`
	UserID       int         `json:"user_id"`
	DailyEntryID int         `json:"daily_entry_id"`
	Type         CheckInType `json:"type"`
	Note         string      `json:"note"`
	CreatedAt    time.Time   `json:"created_at"`
}

type CheckInParams struct {
	UserID  int
	EntryID int
	Type    CheckInType
	Note    string
	At      time.Time
}

// IsRestDay reports whether plan day dayIndex (0-based) is a rest day: days 3, 6, 9 ...
func IsRestDay(dayIndex int) bool {
	return (dayIndex+1)%restEvery == 0
}
