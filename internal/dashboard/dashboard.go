package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymsphere/internal/diet"
	"github.com/2beens/gymsphere/internal/lifestyle"
	"github.com/2beens/gymsphere/internal/plans"
	"github.com/2beens/gymsphere/internal/streaks"
	"github.com/2beens/gymsphere/internal/telemetry/tracing"
	"github.com/2beens/gymsphere/internal/users"
	"github.com/2beens/gymsphere/internal/workout"
	"github.com/2beens/gymsphere/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=dashboard_mocks_test.go -package=dashboard_test

type planStore interface {
	Latest(ctx context.Context, userID int) (*plans.Plan, error)
	Entry(ctx context.Context, planID int, date time.Time) (*plans.DailyEntry, error)
}

type workoutRecommender interface {
	Recommend(ctx context.Context, goal, level string, freq int) (*workout.Recommendation, error)
}

type notificationEngine interface {
	Run(ctx context.Context, user *users.User) (streaks.Streaks, error)
}

type weightHistory interface {
	Weights(ctx context.Context, userID, last int) ([]lifestyle.WeightLog, error)
}

const (
	snippetSize      = 3
	chartPoints      = 7
	workoutDuration  = "45"
	defaultFrequency = 3
	chartLabelLayout = "Jan 02"
)

type WorkoutSnippet struct {
	Frequency      int                       `json:"frequency"`
	Exercises      []workout.RoutineExercise `json:"exercises"`
	TotalExercises int                       `json:"total_exercises"`
	DurationMin    string                    `json:"duration_min"`
	IsRestDay      bool                      `json:"is_rest_day"`
}

type Chart struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

type Dashboard struct {
	Workout            WorkoutSnippet      `json:"workout"`
	Diet               diet.Recommendation `json:"diet"`
	Streaks            streaks.Streaks     `json:"streaks"`
	Chart              Chart               `json:"chart"`
	TransformationDays int                 `json:"transformation_days"`
}

type Service struct {
	plans    planStore
	workouts workoutRecommender
	engine   notificationEngine
	weights  weightHistory

	NowFunc func() time.Time
}

func NewService(plans planStore, workouts workoutRecommender, engine notificationEngine, weights weightHistory) *Service {
	return &Service{
		plans:    plans,
		workouts: workouts,
		engine:   engine,
		weights:  weights,
		NowFunc:  time.Now,
	}
}

// Build assembles the dashboard of user. It never fails: every part that
// cannot be computed gets its fallback, and the causes are logged.
func (s *Service) Build(ctx context.Context, user *users.User) Dashboard {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.build")
	span.SetAttributes(attribute.Int("user.id", user.ID))
	defer span.End()

	snippet, workoutErr := s.workoutSnippet(ctx, user)
	current, streaksErr := s.engine.Run(ctx, user)
	chart, chartErr := s.weightChart(ctx, user.ID)

	d := Dashboard{
		Workout:            snippet,
		Diet:               diet.Recommend(user.Weight(), user.Goal),
		Streaks:            current,
		Chart:              chart,
		TransformationDays: diet.EstimateTransformationDays(user.WeightKg, user.TargetWeightKg, user.Goal),
	}

	if workoutErr != nil {
		log.Errorf("dashboard of user %d, workout: %s", user.ID, workoutErr)
		d.Workout = WorkoutSnippet{Frequency: defaultFrequency, Exercises: []workout.RoutineExercise{}, DurationMin: "0"}
	}
	if streaksErr != nil {
		// the engine has already fallen back to the cached counters
		log.Errorf("dashboard of user %d, notifications: %s", user.ID, streaksErr)
	}
	if chartErr != nil {
		log.Errorf("dashboard of user %d, weight chart: %s", user.ID, chartErr)
		d.Chart = Chart{Labels: []string{}, Values: []float64{}}
	}
	return d
}

func frequency(user *users.User) int {
	if user.FreqPerWeek != nil && *user.FreqPerWeek > 0 {
		return *user.FreqPerWeek
	}
	return 0
}

// workoutSnippet previews today's plan entry, or a generic routine when today has none.
func (s *Service) workoutSnippet(ctx context.Context, user *users.User) (WorkoutSnippet, error) {
	entry, err := s.todayEntry(ctx, user.ID)
	if err != nil {
		return WorkoutSnippet{}, err
	}

	if entry != nil {
		if !entry.IsExerciseDay {
			return WorkoutSnippet{
				Frequency:   frequency(user),
				Exercises:   []workout.RoutineExercise{},
				DurationMin: "0",
				IsRestDay:   true,
			}, nil
		}
		return snippetOf(frequency(user), entry.ExercisePayload), nil
	}

	freq := frequency(user)
	if freq == 0 {
		freq = defaultFrequency
	}
	rec, err := s.workouts.Recommend(ctx, user.Goal, user.FitnessLevel, freq)
	if err != nil {
		return WorkoutSnippet{}, fmt.Errorf("generic routine: %w", err)
	}
	return snippetOf(rec.FrequencyPerWeek, rec.Exercises), nil
}

func snippetOf(freq int, exercises []workout.RoutineExercise) WorkoutSnippet {
	preview := make([]workout.RoutineExercise, 0, snippetSize)
	preview = append(preview, exercises[:min(snippetSize, len(exercises))]...)
	return WorkoutSnippet{
		Frequency:      freq,
		Exercises:      preview,
		TotalExercises: len(exercises),
		DurationMin:    workoutDuration,
	}
}

// todayEntry returns nil, nil when the latest plan has no entry for today.
func (s *Service) todayEntry(ctx context.Context, userID int) (*plans.DailyEntry, error) {
	plan, err := s.plans.Latest(ctx, userID)
	if errors.Is(err, plans.ErrPlanNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest plan: %w", err)
	}

	entry, err := s.plans.Entry(ctx, plan.ID, pkg.CalendarDate(s.NowFunc()))
	if errors.Is(err, plans.ErrEntryNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("today's entry of plan %d: %w", plan.ID, err)
	}
	return entry, nil
}

func (s *Service) weightChart(ctx context.Context, userID int) (Chart, error) {
	logs, err := s.weights.Weights(ctx, userID, chartPoints)
	if err != nil {
		return Chart{}, err
	}

	chart := Chart{
		Labels: make([]string, 0, len(logs)),
		Values: make([]float64, 0, len(logs)),
	}
	for _, l := range logs {
		chart.Labels = append(chart.Labels, l.LoggedAt.UTC().Format(chartLabelLayout))
		chart.Values = append(chart.Values, l.Weight)
	}
	return chart, nil
}
