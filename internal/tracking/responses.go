package tracking

import (
	"github.com/2beens/gymsphere/internal/diet"
	"github.com/2beens/gymsphere/internal/plans"
	"github.com/2beens/gymsphere/internal/streaks"
	"github.com/2beens/gymsphere/internal/workout"
	"github.com/2beens/gymsphere/pkg"
)

const (
	StatusOK              = "ok"
	StatusNoPlan          = "no_plan"
	StatusNoEntryForToday = "no_entry_for_today"
)

type GenerateRequest struct {
	StartDate string `json:"start_date"`
}

type GenerateResponse struct {
	Status  string `json:"status"`
	PlanID  int    `json:"plan_id"`
	Message string `json:"message"`
}

type Entry struct {
	ID                  int                       `json:"id"`
	Date                string                    `json:"date"`
	IsExerciseDay       bool                      `json:"is_exercise_day"`
	IsExerciseCompleted bool                      `json:"is_exercise_completed"`
	IsDietCompleted     bool                      `json:"is_diet_completed"`
	ExercisePayload     []workout.RoutineExercise `json:"exercise_payload"`
	DietPayload         diet.DietPayload          `json:"diet_payload"`
}

func NewEntry(e plans.DailyEntry) *Entry {
	exercises := e.ExercisePayload
	if exercises == nil {
		exercises = []workout.RoutineExercise{}
	}
	return &Entry{
		ID:                  e.ID,
		Date:                pkg.FormatDate(e.Date),
		IsExerciseDay:       e.IsExerciseDay,
		IsExerciseCompleted: e.IsExerciseCompleted,
		IsDietCompleted:     e.IsDietCompleted,
		ExercisePayload:     exercises,
		DietPayload:         e.DietPayload,
	}
}

type TodayResponse struct {
	Status string `json:"status"`
	Entry  *Entry `json:"entry,omitempty"`
}

type CheckInRequest struct {
	EntryID int    `json:"entry_id"`
	Type    string `json:"type"`
	Note    string `json:"note"`
}

type CheckInResponse struct {
	Status  string          `json:"status"`
	Streaks streaks.Streaks `json:"streaks"`
}

type CalendarDay struct {
	Date                string `json:"date"`
	IsExerciseDay       bool   `json:"is_exercise_day"`
	IsExerciseCompleted bool   `json:"is_exercise_completed"`
	IsDietCompleted     bool   `json:"is_diet_completed"`
	Status              string `json:"status"`
}

type StatsResponse struct {
	Status         string `json:"status"`
	Workout        int    `json:"workout"`
	Diet           int    `json:"diet"`
	LongestWorkout int    `json:"longest_workout"`
	LongestDiet    int    `json:"longest_diet"`
}
