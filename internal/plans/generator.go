package plans

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymsphere/internal/diet"
	"github.com/2beens/gymsphere/internal/telemetry/metrics"
	"github.com/2beens/gymsphere/internal/telemetry/tracing"
	"github.com/2beens/gymsphere/internal/users"
	"github.com/2beens/gymsphere/internal/workout"
	"github.com/2beens/gymsphere/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=generator_mocks_test.go -package=plans_test

type routinePicker interface {
	RoutineForDay(ctx context.Context, level string, dayIndex int, isRest bool) ([]workout.RoutineExercise, error)
}

type planCreator interface {
	Create(ctx context.Context, plan *Plan) (*Plan, error)
}

type Generator struct {
	workouts       routinePicker
	repo           planCreator
	metricsManager *metrics.Manager
	NowFunc        func() time.Time
}

func NewGenerator(workouts routinePicker, repo planCreator, metricsManager *metrics.Manager) *Generator {
	return &Generator{
		workouts:       workouts,
		repo:           repo,
		metricsManager: metricsManager,
		NowFunc:        time.Now,
	}
}

// Build assembles a 30-day plan for user without storing it.
// startDate is "YYYY-MM-DD"; empty or malformed values start the plan today (UTC).
func (g *Generator) Build(ctx context.Context, user *users.User, startDate string) (*Plan, error) {
	start := pkg.ParseDateOr(startDate, g.NowFunc())

	goal := user.Goal
	if goal == "" {
		goal = string(diet.GoalMaintain)
	}
	level := user.FitnessLevel
	if level == "" {
		level = "beginner"
	}

	rec := diet.Recommend(user.Weight(), goal)

	plan := &Plan{
		UserID:           user.ID,
		PlanType:         PlanTypeWorkoutDiet,
		Goal:             goal,
		Preference:       DefaultPreference,
		StartDate:        start,
		EndDate:          start.AddDate(0, 0, TotalDays-1),
		FrequencyPerWeek: DefaultFrequencyPerWeek,
		FitnessLevel:     level,
		Metadata:         map[string]any{"total_days": TotalDays},
		Entries:          make([]DailyEntry, 0, TotalDays),
	}

	for i := 0; i < TotalDays; i++ {
		isRest := IsRestDay(i)
		exercises, err := g.workouts.RoutineForDay(ctx, level, i, isRest)
		if err != nil {
			return nil, fmt.Errorf("routine for day %d: %w", i, err)
		}

		plan.Entries = append(plan.Entries, DailyEntry{
			Date:            start.AddDate(0, 0, i),
			IsExerciseDay:   !isRest,
			ExercisePayload: exercises,
			DietPayload:     diet.MealsForDay(rec, goal, i),
			StreakGroup:     1,
		})
	}

	return plan, nil
}

// Generate builds a new plan for user and stores it. Older plans are kept.
func (g *Generator) Generate(ctx context.Context, user *users.User, startDate string) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "plans.generate")
	span.SetAttributes(attribute.Int("user.id", user.ID))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	defer func(begin time.Time) {
		if g.metricsManager != nil {
			g.metricsManager.HistPlanGenerateDuration.Observe(time.Since(begin).Seconds())
		}
	}(time.Now())

	plan, err := g.Build(ctx, user, startDate)
	if err != nil {
		return nil, err
	}

	created, err := g.repo.Create(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("store plan: %w", err)
	}

	if g.metricsManager != nil {
		g.metricsManager.CounterPlansGenerated.Inc()
	}
	log.Debugf("plan %d generated for user %d [%s - %s]",
		created.ID, user.ID, pkg.FormatDate(created.StartDate), pkg.FormatDate(created.EndDate))

	return created, nil
}
