package notifications

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/2beens/gymsphere/internal/plans"
	"github.com/2beens/gymsphere/internal/streaks"
	"github.com/2beens/gymsphere/internal/telemetry/metrics"
	"github.com/2beens/gymsphere/internal/telemetry/tracing"
	"github.com/2beens/gymsphere/internal/users"
	"github.com/2beens/gymsphere/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=engine_mocks_test.go -package=notifications_test

type store interface {
	Create(ctx context.Context, n *Notification) (*Notification, error)
	ExistsUnread(ctx context.Context, userID int, title string) (bool, error)
	ExistsSince(ctx context.Context, userID int, title string, since time.Time) (bool, error)
	ExistsForDate(ctx context.Context, userID int, title string, date time.Time) (bool, error)
}

type planLookup interface {
	Covering(ctx context.Context, userID int, date time.Time) (*plans.Plan, error)
	Entry(ctx context.Context, planID int, date time.Time) (*plans.DailyEntry, error)
}

type streakCalculator interface {
	Calculate(ctx context.Context, user *users.User) (streaks.Streaks, error)
}

const eveningHour = 18

var coachMessages = struct {
	onFire   []string
	steady   []string
	starting []string
}{
	onFire: []string{
		"Unstoppable! %d day streak. You're building a new version of yourself.",
		"Consistency is your superpower. Keep this streak alive!",
		"You are crushing it. Remember why you started.",
	},
	steady: []string{
		"Great momentum! Keep pushing.",
		"You're doing great. Stay focused today.",
		"Another day, another opportunity to improve.",
	},
	starting: []string{
		"The hardest part is showing up. You got this!",
		"Small steps every day lead to big results.",
		"Don't give up. Consistency beats intensity.",
		"Let's make today count!",
	},
}

const (
	missedWorkoutMessage = "You missed yesterday's workout. Don't let it break your momentum! Get back on track today."
	restDayMessage       = "Tomorrow is a Rest Day. Focus on recovery and nutrition."
)

type Engine struct {
	store          store
	plans          planLookup
	streaks        streakCalculator
	metricsManager *metrics.Manager

	NowFunc  func() time.Time
	IntnFunc func(n int) int
	// WeeklySummaryFunc runs on Sunday evenings. Nil means no summary.
	WeeklySummaryFunc func(ctx context.Context, user *users.User) error
}

func NewEngine(store store, plans planLookup, streaks streakCalculator, metricsManager *metrics.Manager) *Engine {
	return &Engine{
		store:          store,
		plans:          plans,
		streaks:        streaks,
		metricsManager: metricsManager,
		NowFunc:        time.Now,
		IntnFunc:       rand.Intn,
	}
}

// Run refreshes the streaks of user and creates whichever smart notifications are due.
// A failing step does not stop the others; their errors are combined. On streak
// failure the cached counters of user are returned.
func (e *Engine) Run(ctx context.Context, user *users.User) (_ streaks.Streaks, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "notifications.engine.run")
	span.SetAttributes(attribute.Int("user.id", user.ID))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	now := e.NowFunc().UTC()

	current, streakErr := e.streaks.Calculate(ctx, user)
	if streakErr != nil {
		current = streaks.Streaks{Workout: user.WorkoutStreak, Diet: user.DietStreak}
		err = multierr.Append(err, fmt.Errorf("streaks: %w", streakErr))
	}

	if now.Hour() >= eveningHour {
		err = multierr.Append(err, e.ScheduleTomorrow(ctx, user))
	}
	err = multierr.Append(err, e.coachUpdate(ctx, user, now))
	err = multierr.Append(err, e.missedWorkout(ctx, user, now))

	if now.Weekday() == time.Sunday && now.Hour() >= eveningHour && e.WeeklySummaryFunc != nil {
		if summaryErr := e.WeeklySummaryFunc(ctx, user); summaryErr != nil {
			err = multierr.Append(err, fmt.Errorf("weekly summary: %w", summaryErr))
		}
	}

	return current, err
}

// ScheduleTomorrow creates the preview of tomorrow's plan day, unless an unread one exists.
func (e *Engine) ScheduleTomorrow(ctx context.Context, user *users.User) error {
	tomorrow := pkg.CalendarDate(e.NowFunc()).AddDate(0, 0, 1)

	entry, err := e.entryFor(ctx, user.ID, tomorrow)
	if err != nil || entry == nil {
		return err
	}

	exists, err := e.store.ExistsUnread(ctx, user.ID, TitleTomorrowPlan)
	if err != nil {
		return fmt.Errorf("tomorrow's plan: %w", err)
	}
	if exists {
		return nil
	}

	msg := restDayMessage
	if entry.IsExerciseDay {
		names := make([]string, 0, 2)
		for _, ex := range entry.ExercisePayload {
			if len(names) == 2 {
				break
			}
			names = append(names, ex.Name)
		}
		msg = fmt.Sprintf("Tomorrow's Workout: %s + more. Get ready!", strings.Join(names, ", "))
	}

	return e.create(ctx, user.ID, TitleTomorrowPlan, msg, TypePlan, map[string]any{"date": pkg.FormatDate(tomorrow)})
}

func (e *Engine) coachUpdate(ctx context.Context, user *users.User, now time.Time) error {
	exists, err := e.store.ExistsSince(ctx, user.ID, TitleCoachUpdate, pkg.CalendarDate(now))
	if err != nil {
		return fmt.Errorf("coach update: %w", err)
	}
	if exists {
		return nil
	}
	return e.create(ctx, user.ID, TitleCoachUpdate, e.CoachMessage(user.WorkoutStreak), TypeMotivation, nil)
}

// CoachMessage picks a motivational line for the given workout streak.
func (e *Engine) CoachMessage(workoutStreak int) string {
	switch {
	case workoutStreak > 5:
		msg := coachMessages.onFire[e.IntnFunc(len(coachMessages.onFire))]
		if strings.Contains(msg, "%d") {
			msg = fmt.Sprintf(msg, workoutStreak)
		}
		return msg
	case workoutStreak > 2:
		return coachMessages.steady[e.IntnFunc(len(coachMessages.steady))]
	default:
		return coachMessages.starting[e.IntnFunc(len(coachMessages.starting))]
	}
}

// missedWorkout alerts once per missed exercise day.
func (e *Engine) missedWorkout(ctx context.Context, user *users.User, now time.Time) error {
	yesterday := pkg.CalendarDate(now).AddDate(0, 0, -1)

	entry, err := e.entryFor(ctx, user.ID, yesterday)
	if err != nil || entry == nil {
		return err
	}
	if !entry.IsExerciseDay || entry.IsExerciseCompleted {
		return nil
	}

	exists, err := e.store.ExistsForDate(ctx, user.ID, TitleMissedWorkout, yesterday)
	if err != nil {
		return fmt.Errorf("missed workout: %w", err)
	}
	if exists {
		return nil
	}

	return e.create(ctx, user.ID, TitleMissedWorkout, missedWorkoutMessage, TypeAlert, map[string]any{"date": pkg.FormatDate(yesterday)})
}

// entryFor returns nil, nil when no plan covers date or the plan has no entry for it.
func (e *Engine) entryFor(ctx context.Context, userID int, date time.Time) (*plans.DailyEntry, error) {
	plan, err := e.plans.Covering(ctx, userID, date)
	if errors.Is(err, plans.ErrPlanNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("plan covering %s: %w", pkg.FormatDate(date), err)
	}

	entry, err := e.plans.Entry(ctx, plan.ID, date)
	if errors.Is(err, plans.ErrEntryNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("plan %d entry %s: %w", plan.ID, pkg.FormatDate(date), err)
	}
	return entry, nil
}

func (e *Engine) create(ctx context.Context, userID int, title, message, notificationType string, payload map[string]any) error {
	n, err := e.store.Create(ctx, &Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      notificationType,
		Payload:   payload,
		CreatedAt: e.NowFunc().UTC(),
	})
	if err != nil {
		return fmt.Errorf("create %q: %w", title, err)
	}

	if e.metricsManager != nil {
		e.metricsManager.CounterNotifications.WithLabelValues(notificationType).Inc()
	}
	log.Debugf("notification %d [%s] created for user %d", n.ID, notificationType, userID)
	return nil
}
