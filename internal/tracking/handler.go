package tracking

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/2beens/gymsphere/internal/auth"
	"github.com/2beens/gymsphere/internal/plans"
	"github.com/2beens/gymsphere/internal/streaks"
	"github.com/2beens/gymsphere/internal/telemetry/metrics"
	"github.com/2beens/gymsphere/internal/telemetry/tracing"
	"github.com/2beens/gymsphere/internal/users"
	"github.com/2beens/gymsphere/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=tracking_test

type userGetter interface {
	Get(ctx context.Context, id int) (*users.User, error)
}

type planGenerator interface {
	Generate(ctx context.Context, user *users.User, startDate string) (*plans.Plan, error)
}

type planStore interface {
	Active(ctx context.Context, userID int, date time.Time) (*plans.Plan, error)
	Latest(ctx context.Context, userID int) (*plans.Plan, error)
	Entry(ctx context.Context, planID int, date time.Time) (*plans.DailyEntry, error)
	EntryByID(ctx context.Context, id int) (*plans.EntryOwner, error)
	Entries(ctx context.Context, planID int) ([]plans.DailyEntry, error)
	CheckIn(ctx context.Context, params plans.CheckInParams) (*plans.CheckIn, error)
}

type tomorrowScheduler interface {
	ScheduleTomorrow(ctx context.Context, user *users.User) error
}

type streakService interface {
	Calculate(ctx context.Context, user *users.User) (streaks.Streaks, error)
	Stats(ctx context.Context, planID int) (streaks.Streaks, streaks.Streaks, error)
}

type Handler struct {
	users          userGetter
	generator      planGenerator
	plans          planStore
	scheduler      tomorrowScheduler
	streaks        streakService
	metricsManager *metrics.Manager

	NowFunc func() time.Time
}

func NewHandler(
	users userGetter,
	generator planGenerator,
	plans planStore,
	scheduler tomorrowScheduler,
	streaks streakService,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		users:          users,
		generator:      generator,
		plans:          plans,
		scheduler:      scheduler,
		streaks:        streaks,
		metricsManager: metricsManager,
		NowFunc:        time.Now,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/plan/generate", handler.HandleGenerate).Methods("POST", "OPTIONS").Name("plan-generate")
	router.HandleFunc("/api/plan/today", handler.HandleToday).Methods("GET", "OPTIONS").Name("plan-today")
	router.HandleFunc("/api/plan/checkin", handler.HandleCheckIn).Methods("POST", "OPTIONS").Name("plan-checkin")
	router.HandleFunc("/api/plan/calendar", handler.HandleCalendar).Methods("GET", "OPTIONS").Name("plan-calendar")
	router.HandleFunc("/api/plan/stats", handler.HandleStats).Methods("GET", "OPTIONS").Name("plan-stats")
}

func (handler *Handler) currentUser(w http.ResponseWriter, r *http.Request) (*users.User, bool) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return nil, false
	}

	user, err := handler.users.Get(r.Context(), session.UserID)
	if errors.Is(err, users.ErrUserNotFound) {
		http.Error(w, "user not found", http.StatusUnauthorized)
		return nil, false
	}
	if err != nil {
		log.Errorf("get user %d: %s", session.UserID, err)
		http.Error(w, "failed to get user", http.StatusInternalServerError)
		return nil, false
	}
	return user, true
}

func (handler *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plan.generate")
	defer span.End()

	user, ok := handler.currentUser(w, r)
	if !ok {
		return
	}

	// body is optional
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Debugf("plan generate, ignoring bad body: %s", err)
		req = GenerateRequest{}
	}

	plan, err := handler.generator.Generate(ctx, user, req.StartDate)
	if err != nil {
		log.Errorf("generate plan for user %d: %s", user.ID, err)
		http.Error(w, "failed to generate plan", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, GenerateResponse{
		Status:  StatusOK,
		PlanID:  plan.ID,
		Message: "Plan generated successfully",
	})
}

func (handler *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plan.today")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	today := pkg.CalendarDate(handler.NowFunc())
	plan, err := handler.plans.Active(ctx, session.UserID, today)
	if errors.Is(err, plans.ErrPlanNotFound) {
		pkg.WriteJSONOK(w, TodayResponse{Status: StatusNoPlan})
		return
	}
	if err != nil {
		log.Errorf("plan today, active plan of user %d: %s", session.UserID, err)
		http.Error(w, "failed to get plan", http.StatusInternalServerError)
		return
	}

	entry, err := handler.plans.Entry(ctx, plan.ID, today)
	if errors.Is(err, plans.ErrEntryNotFound) {
		pkg.WriteJSONOK(w, TodayResponse{Status: StatusNoEntryForToday})
		return
	}
	if err != nil {
		log.Errorf("plan today, entry of plan %d: %s", plan.ID, err)
		http.Error(w, "failed to get plan entry", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, TodayResponse{
		Status: StatusOK,
		Entry:  NewEntry(*entry),
	})
}

func (handler *Handler) HandleCheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plan.checkin")
	defer span.End()

	user, ok := handler.currentUser(w, r)
	if !ok {
		return
	}

	var req CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid check-in request", http.StatusBadRequest)
		return
	}

	owner, err := handler.plans.EntryByID(ctx, req.EntryID)
	if errors.Is(err, plans.ErrEntryNotFound) {
		http.Error(w, "entry not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("checkin, get entry %d: %s", req.EntryID, err)
		http.Error(w, "failed to get entry", http.StatusInternalServerError)
		return
	}
	if owner.UserID != user.ID {
		pkg.WriteJSON(w, map[string]string{"error": "Unauthorized"}, http.StatusForbidden)
		return
	}

	checkInType, err := plans.ParseCheckInType(req.Type)
	if err != nil {
		http.Error(w, "invalid check-in type", http.StatusBadRequest)
		return
	}

	if _, err := handler.plans.CheckIn(ctx, plans.CheckInParams{
		UserID:  user.ID,
		EntryID: req.EntryID,
		Type:    checkInType,
		Note:    req.Note,
		At:      handler.NowFunc().UTC(),
	}); err != nil {
		if errors.Is(err, plans.ErrEntryNotFound) {
			http.Error(w, "entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("checkin entry %d for user %d: %s", req.EntryID, user.ID, err)
		http.Error(w, "failed to check in", http.StatusInternalServerError)
		return
	}
	if handler.metricsManager != nil {
		handler.metricsManager.CounterCheckIns.WithLabelValues(string(checkInType)).Inc()
	}

	if err := handler.scheduler.ScheduleTomorrow(ctx, user); err != nil {
		log.Errorf("checkin, schedule tomorrow notification for user %d: %s", user.ID, err)
	}

	current, err := handler.streaks.Calculate(ctx, user)
	if err != nil {
		log.Errorf("checkin, calculate streaks for user %d: %s", user.ID, err)
		current = streaks.Streaks{Workout: user.WorkoutStreak, Diet: user.DietStreak}
	}

	pkg.WriteJSONOK(w, CheckInResponse{
		Status:  StatusOK,
		Streaks: current,
	})
}

func (handler *Handler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plan.calendar")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	days, err := Calendar(ctx, handler.plans, session.UserID, handler.NowFunc())
	if err != nil {
		log.Errorf("plan calendar of user %d: %s", session.UserID, err)
		http.Error(w, "failed to get calendar", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONOK(w, days)
}

type calendarSource interface {
	Latest(ctx context.Context, userID int) (*plans.Plan, error)
	Entries(ctx context.Context, planID int) ([]plans.DailyEntry, error)
}

// Calendar lays out the latest plan of the user day by day. No plan gives an empty calendar.
func Calendar(ctx context.Context, source calendarSource, userID int, now time.Time) ([]CalendarDay, error) {
	plan, err := source.Latest(ctx, userID)
	if errors.Is(err, plans.ErrPlanNotFound) {
		return []CalendarDay{}, nil
	}
	if err != nil {
		return nil, err
	}

	entries, err := source.Entries(ctx, plan.ID)
	if err != nil {
		return nil, err
	}

	days := make([]CalendarDay, 0, len(entries))
	for _, e := range entries {
		days = append(days, CalendarDay{
			Date:                pkg.FormatDate(e.Date),
			IsExerciseDay:       e.IsExerciseDay,
			IsExerciseCompleted: e.IsExerciseCompleted,
			IsDietCompleted:     e.IsDietCompleted,
			Status:              e.CalendarStatus(now),
		})
	}
	return days, nil
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plan.stats")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	plan, err := handler.plans.Active(ctx, session.UserID, handler.NowFunc())
	if errors.Is(err, plans.ErrPlanNotFound) {
		pkg.WriteJSONOK(w, StatsResponse{Status: StatusNoPlan})
		return
	}
	if err != nil {
		log.Errorf("plan stats, active plan of user %d: %s", session.UserID, err)
		http.Error(w, "failed to get plan", http.StatusInternalServerError)
		return
	}

	current, longest, err := handler.streaks.Stats(ctx, plan.ID)
	if err != nil {
		log.Errorf("plan stats of plan %d: %s", plan.ID, err)
		http.Error(w, "failed to get stats", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, StatsResponse{
		Status:         StatusOK,
		Workout:        current.Workout,
		Diet:           current.Diet,
		LongestWorkout: longest.Workout,
		LongestDiet:    longest.Diet,
	})
}
