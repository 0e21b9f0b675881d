package streaks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymsphere/internal/plans"
	"github.com/2beens/gymsphere/internal/telemetry/tracing"
	"github.com/2beens/gymsphere/internal/users"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=streaks_test

type plansRepo interface {
	Latest(ctx context.Context, userID int) (*plans.Plan, error)
	EntriesUpTo(ctx context.Context, planID int, date time.Time) ([]plans.DailyEntry, error)
}

type streaksStore interface {
	UpdateStreaks(ctx context.Context, id int, workout, diet int) error
}

type Service struct {
	plans   plansRepo
	users   streaksStore
	NowFunc func() time.Time
}

func NewService(plansRepo plansRepo, usersRepo streaksStore) *Service {
	return &Service{
		plans:   plansRepo,
		users:   usersRepo,
		NowFunc: time.Now,
	}
}

// Calculate recomputes the streaks of user from the latest plan and stores
// them when they differ from the cached counters on user. user is updated in place.
func (s *Service) Calculate(ctx context.Context, user *users.User) (_ Streaks, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "streaks.calculate")
	span.SetAttributes(attribute.Int("user.id", user.ID))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	plan, err := s.plans.Latest(ctx, user.ID)
	if errors.Is(err, plans.ErrPlanNotFound) {
		return Streaks{}, nil
	}
	if err != nil {
		return Streaks{}, fmt.Errorf("latest plan: %w", err)
	}

	today := s.NowFunc().UTC()
	entries, err := s.plans.EntriesUpTo(ctx, plan.ID, today)
	if err != nil {
		return Streaks{}, fmt.Errorf("plan entries: %w", err)
	}
	if len(entries) == 0 {
		return Streaks{}, nil
	}

	streaks := Compute(entries, today)
	if streaks.Workout == user.WorkoutStreak && streaks.Diet == user.DietStreak {
		return streaks, nil
	}

	if err := s.users.UpdateStreaks(ctx, user.ID, streaks.Workout, streaks.Diet); err != nil {
		return Streaks{}, fmt.Errorf("store streaks: %w", err)
	}
	log.Debugf("user %d streaks: workout %d -> %d, diet %d -> %d",
		user.ID, user.WorkoutStreak, streaks.Workout, user.DietStreak, streaks.Diet)

	user.WorkoutStreak = streaks.Workout
	user.DietStreak = streaks.Diet
	return streaks, nil
}

// Stats returns current and longest streaks for the given plan.
func (s *Service) Stats(ctx context.Context, planID int) (current, longest Streaks, err error) {
	today := s.NowFunc().UTC()
	entries, err := s.plans.EntriesUpTo(ctx, planID, today)
	if err != nil {
		return Streaks{}, Streaks{}, fmt.Errorf("plan entries: %w", err)
	}
	return Compute(entries, today), Longest(entries, today), nil
}
