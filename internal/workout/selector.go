package workout

import (
	"context"
	"fmt"
	"strings"

	"github.com/2beens/gymsphere/internal/catalog"
	"github.com/2beens/gymsphere/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=selector_mocks_test.go -package=workout_test

type exerciseFinder interface {
	Find(ctx context.Context, q catalog.ExerciseQuery) ([]catalog.Exercise, error)
}

type EquipmentMode string

const (
	WithEquipment EquipmentMode = "with_equipment"
	NoEquipment   EquipmentMode = "no_equipment"
)

const (
	GoalGeneralFitness = "general_fitness"
	reservedSlots      = 4
)

// dayRotation gives each plan day its focus: push, pull, legs, core, full body.
var dayRotation = [5]string{"muscle_gain", "back", "legs", "abs", "fat_loss"}

var mainExcludedTags = []string{"warmup", "cooldown", "stretch"}

type Recommendation struct {
	Goal              string            `json:"goal"`
	Level             string            `json:"level"`
	Exercises         []RoutineExercise `json:"exercises"`
	FrequencyPerWeek  int               `json:"frequency_per_week"`
	EstimatedDuration string            `json:"estimated_duration"`
	CaloriesBurn      int               `json:"calories_burn"`
}

type Selector struct {
	catalog exerciseFinder
	Rand    Rand
}

func NewSelector(catalog exerciseFinder) *Selector {
	return &Selector{
		catalog: catalog,
		Rand:    DefaultRand,
	}
}

// PrimaryMuscles maps a goal to the muscle groups the main phase favours.
func PrimaryMuscles(goal string) []string {
	switch {
	case strings.Contains(goal, "lose"), strings.Contains(goal, "fat_loss"):
		return []string{"Full Body", "Legs", "Chest", "Back"}
	case strings.Contains(goal, "gain"):
		return []string{"Chest", "Back", "Legs", "Shoulders", "Arms"}
	case strings.Contains(goal, "recomp"), strings.Contains(goal, "core"):
		return []string{"Full Body", "Abs", "Back"}
	default:
		return []string{"Full Body"}
	}
}

// MainCount is the main phase size for a fitness level.
func MainCount(level string) int {
	target := 15
	switch level {
	case "", "beginner":
		target = 10
	case "intermediate":
		target = 12
	}
	return target - reservedSlots
}

func targetsAny(e catalog.Exercise, muscles []string) bool {
	group := strings.ToLower(e.MuscleGroup)
	for _, m := range muscles {
		if strings.Contains(group, strings.ToLower(m)) {
			return true
		}
	}
	return false
}

// Select builds a phased routine of warm-up, main, finisher and cool-down exercises.
// Phases with no catalog matches are left empty.
func (s *Selector) Select(ctx context.Context, goal, level string, equipment EquipmentMode) (_ []RoutineExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workout.select")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if goal == "" {
		goal = GoalGeneralFitness
	}
	span.SetAttributes(
		attribute.String("goal", goal),
		attribute.String("level", level),
		attribute.String("equipment", string(equipment)),
	)

	bodyweightOnly := equipment != WithEquipment
	muscles := PrimaryMuscles(goal)

	pick := func(tag string, limit int) ([]catalog.Exercise, error) {
		candidates, err := s.catalog.Find(ctx, catalog.ExerciseQuery{Tag: tag, BodyweightOnly: bodyweightOnly})
		if err != nil {
			return nil, fmt.Errorf("find %s exercises: %w", tag, err)
		}
		return sample(s.Rand, candidates, limit), nil
	}

	var routine []RoutineExercise
	add := func(phase Phase, exercises []catalog.Exercise) {
		for _, e := range exercises {
			routine = append(routine, newRoutineExercise(phase, e))
		}
	}

	warmups, err := pick("warmup", 2)
	if err != nil {
		return nil, err
	}
	if len(warmups) == 0 {
		warmups, err = s.catalog.Find(ctx, catalog.ExerciseQuery{Tag: "mobility", Limit: 2})
		if err != nil {
			return nil, fmt.Errorf("find mobility exercises: %w", err)
		}
	}
	add(PhaseWarmUp, warmups)

	mainCount := MainCount(level)
	allMain, err := s.catalog.Find(ctx, catalog.ExerciseQuery{
		ExcludeTags:    mainExcludedTags,
		BodyweightOnly: bodyweightOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("find main exercises: %w", err)
	}
	relevant := make([]catalog.Exercise, 0, len(allMain))
	for _, e := range allMain {
		if targetsAny(e, muscles) {
			relevant = append(relevant, e)
		}
	}
	if len(relevant) < mainCount {
		relevant = allMain
	}
	add(PhaseMain, sample(s.Rand, relevant, mainCount))

	finishers, err := pick("hiit", 1)
	if err != nil {
		return nil, err
	}
	if len(finishers) == 0 {
		if finishers, err = pick("abs", 1); err != nil {
			return nil, err
		}
	}
	add(PhaseFinisher, finishers)

	cooldowns, err := pick("stretch", 1)
	if err != nil {
		return nil, err
	}
	add(PhaseCoolDown, cooldowns)

	if routine == nil {
		routine = make([]RoutineExercise, 0)
	}
	return routine, nil
}

// RoutineForDay picks the routine of plan day dayIndex. Rest days get none.
// The focus follows dayRotation rather than the user's goal; equipment is always allowed.
func (s *Selector) RoutineForDay(ctx context.Context, level string, dayIndex int, isRest bool) ([]RoutineExercise, error) {
	if isRest {
		return make([]RoutineExercise, 0), nil
	}
	return s.Select(ctx, DayFocus(dayIndex), level, WithEquipment)
}

// DayFocus is the goal used for plan day dayIndex.
func DayFocus(dayIndex int) string {
	focus := dayRotation[dayIndex%len(dayRotation)]
	if focus == "back" {
		focus = "muscle_gain"
	}
	return focus
}

// Recommend packages one with-equipment routine with rough duration and calorie estimates.
func (s *Selector) Recommend(ctx context.Context, goal, level string, freq int) (*Recommendation, error) {
	exercises, err := s.Select(ctx, goal, level, WithEquipment)
	if err != nil {
		return nil, err
	}
	return &Recommendation{
		Goal:              goal,
		Level:             level,
		Exercises:         exercises,
		FrequencyPerWeek:  freq,
		EstimatedDuration: fmt.Sprintf("%d mins", len(exercises)*3),
		CaloriesBurn:      len(exercises) * 20,
	}, nil
}
