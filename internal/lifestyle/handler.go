package lifestyle

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/2beens/gymsphere/internal/auth"
	"github.com/2beens/gymsphere/internal/plans"
	"github.com/2beens/gymsphere/internal/telemetry/tracing"
	"github.com/2beens/gymsphere/internal/tracking"
	"github.com/2beens/gymsphere/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=lifestyle_test

type logStore interface {
	LogWater(ctx context.Context, userID, amountMl int, date time.Time) error
	WaterTotal(ctx context.Context, userID int, date time.Time) (int, error)
	LogSleep(ctx context.Context, userID int, hours float64, quality string, date time.Time) error
	SleepFor(ctx context.Context, userID int, date time.Time) (*SleepLog, error)
	LogWeight(ctx context.Context, userID int, weight float64, at time.Time) error
	Weights(ctx context.Context, userID, last int) ([]WeightLog, error)
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardRow, error)
}

type planCalendar interface {
	Latest(ctx context.Context, userID int) (*plans.Plan, error)
	Entries(ctx context.Context, planID int) ([]plans.DailyEntry, error)
}

type WaterRequest struct {
	Amount *int `json:"amount"`
}

type SleepRequest struct {
	Hours   *float64 `json:"hours"`
	Quality string   `json:"quality"`
}

type WeightRequest struct {
	Weight float64 `json:"weight"`
}

type WeightPoint struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

type Hydration struct {
	Current int `json:"current"`
	Goal    int `json:"goal"`
}

type ProgressResponse struct {
	Weights   []WeightPoint          `json:"weights"`
	Hydration Hydration              `json:"hydration"`
	Sleep     SleepLog               `json:"sleep"`
	Calendar  []tracking.CalendarDay `json:"calendar"`
}

type Handler struct {
	store logStore
	plans planCalendar

	NowFunc func() time.Time
}

func NewHandler(store logStore, plans planCalendar) *Handler {
	return &Handler{
		store:   store,
		plans:   plans,
		NowFunc: time.Now,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/water/log", handler.HandleWaterLog).Methods("POST", "OPTIONS").Name("water-log")
	router.HandleFunc("/api/sleep/log", handler.HandleSleepLog).Methods("POST", "OPTIONS").Name("sleep-log")
	router.HandleFunc("/api/progress", handler.HandleProgressLog).Methods("POST", "OPTIONS").Name("progress-log")
	router.HandleFunc("/api/progress", handler.HandleProgress).Methods("GET").Name("progress")
	router.HandleFunc("/api/leaderboard", handler.HandleLeaderboard).Methods("GET", "OPTIONS").Name("leaderboard")
}

// decodeOptional decodes a JSON body into v; an empty body leaves v untouched.
func decodeOptional(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (handler *Handler) HandleWaterLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.lifestyle.water-log")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	var req WaterRequest
	if err := decodeOptional(r, &req); err != nil {
		http.Error(w, "invalid water log", http.StatusBadRequest)
		return
	}
	amount := DefaultWaterMl
	if req.Amount != nil {
		amount = *req.Amount
	}
	if amount <= 0 {
		http.Error(w, "amount must be positive", http.StatusBadRequest)
		return
	}

	if err := handler.store.LogWater(ctx, session.UserID, amount, handler.NowFunc()); err != nil {
		log.Errorf("log water for user %d: %s", session.UserID, err)
		http.Error(w, "failed to log water", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, map[string]any{"status": "ok", "added": amount})
}

func (handler *Handler) HandleSleepLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.lifestyle.sleep-log")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	var req SleepRequest
	if err := decodeOptional(r, &req); err != nil {
		http.Error(w, "invalid sleep log", http.StatusBadRequest)
		return
	}
	hours := DefaultSleepHours
	if req.Hours != nil {
		hours = *req.Hours
	}
	if hours < 0 || hours > 24 {
		http.Error(w, "hours out of range", http.StatusBadRequest)
		return
	}
	quality := req.Quality
	if quality == "" {
		quality = DefaultSleepQuality
	}

	if err := handler.store.LogSleep(ctx, session.UserID, hours, quality, handler.NowFunc()); err != nil {
		log.Errorf("log sleep for user %d: %s", session.UserID, err)
		http.Error(w, "failed to log sleep", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"status":"ok"}`)
}

func (handler *Handler) HandleProgressLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.lifestyle.progress-log")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	var req WeightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Weight <= 0 {
		http.Error(w, "invalid weight", http.StatusBadRequest)
		return
	}

	if err := handler.store.LogWeight(ctx, session.UserID, req.Weight, handler.NowFunc().UTC()); err != nil {
		log.Errorf("log weight for user %d: %s", session.UserID, err)
		http.Error(w, "failed to log weight", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"status":"ok"}`)
}

func (handler *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.lifestyle.progress")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}
	now := handler.NowFunc()

	weights, err := handler.store.Weights(ctx, session.UserID, 0)
	if err != nil {
		log.Errorf("progress, weights of user %d: %s", session.UserID, err)
		http.Error(w, "failed to get progress", http.StatusInternalServerError)
		return
	}
	resp := ProgressResponse{
		Weights:   make([]WeightPoint, 0, len(weights)),
		Hydration: Hydration{Goal: HydrationGoalMl},
		Sleep:     SleepLog{Quality: "-"},
	}
	for _, l := range weights {
		resp.Weights = append(resp.Weights, WeightPoint{Date: pkg.FormatDate(l.LoggedAt.UTC()), Weight: l.Weight})
	}

	if resp.Hydration.Current, err = handler.store.WaterTotal(ctx, session.UserID, now); err != nil {
		log.Errorf("progress, water of user %d: %s", session.UserID, err)
		http.Error(w, "failed to get progress", http.StatusInternalServerError)
		return
	}

	sleep, err := handler.store.SleepFor(ctx, session.UserID, now)
	switch {
	case err == nil:
		resp.Sleep = *sleep
	case !errors.Is(err, ErrNoSleepLog):
		log.Errorf("progress, sleep of user %d: %s", session.UserID, err)
		http.Error(w, "failed to get progress", http.StatusInternalServerError)
		return
	}

	if resp.Calendar, err = tracking.Calendar(ctx, handler.plans, session.UserID, now); err != nil {
		log.Errorf("progress, calendar of user %d: %s", session.UserID, err)
		http.Error(w, "failed to get progress", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, resp)
}

func (handler *Handler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.lifestyle.leaderboard")
	defer span.End()

	board, err := handler.store.Leaderboard(ctx, LeaderboardSize)
	if err != nil {
		log.Errorf("leaderboard: %s", err)
		http.Error(w, "failed to get leaderboard", http.StatusInternalServerError)
		return
	}
	if len(board) == 0 {
		board = FallbackLeaderboard
	}
	pkg.WriteJSONOK(w, board)
}
