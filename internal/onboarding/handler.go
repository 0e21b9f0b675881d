package onboarding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/2beens/gymsphere/internal/auth"
	"github.com/2beens/gymsphere/internal/plans"
	"github.com/2beens/gymsphere/internal/telemetry/tracing"
	"github.com/2beens/gymsphere/internal/users"
	"github.com/2beens/gymsphere/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=onboarding_test

type profileStore interface {
	Get(ctx context.Context, id int) (*users.User, error)
	UpdateProfile(ctx context.Context, id int, p users.ProfileUpdate) error
}

type planGenerator interface {
	Generate(ctx context.Context, user *users.User, startDate string) (*plans.Plan, error)
}

var fitnessLevels = map[string]bool{
	"beginner":     true,
	"intermediate": true,
	"advanced":     true,
}

// Request is a partial profile update. Complete finishes onboarding and
// generates a fresh 30-day plan from the updated profile.
type Request struct {
	users.ProfileUpdate
	Complete bool `json:"complete"`
}

type Response struct {
	Status string `json:"status"`
	PlanID int    `json:"plan_id,omitempty"`
}

func validate(p users.ProfileUpdate) error {
	if p.FitnessLevel != nil && *p.FitnessLevel != "" && !fitnessLevels[*p.FitnessLevel] {
		return fmt.Errorf("unknown fitness level %q", *p.FitnessLevel)
	}
	if p.FreqPerWeek != nil && (*p.FreqPerWeek < 1 || *p.FreqPerWeek > 7) {
		return errors.New("freq_per_week must be between 1 and 7")
	}
	for name, v := range map[string]*float64{
		"height_cm":        p.HeightCm,
		"weight_kg":        p.WeightKg,
		"target_weight_kg": p.TargetWeightKg,
	} {
		if v != nil && *v <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	return nil
}

type Handler struct {
	profiles  profileStore
	generator planGenerator
}

func NewHandler(profiles profileStore, generator planGenerator) *Handler {
	return &Handler{
		profiles:  profiles,
		generator: generator,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/me", handler.HandleMe).Methods("GET", "OPTIONS").Name("me")
	router.HandleFunc("/api/onboard", handler.HandleOnboard).Methods("POST", "OPTIONS").Name("onboard")
}

func (handler *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.onboarding.me")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	user, err := handler.profiles.Get(ctx, session.UserID)
	if errors.Is(err, users.ErrUserNotFound) {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("me, get user %d: %s", session.UserID, err)
		http.Error(w, "failed to get user", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, user)
}

func (handler *Handler) HandleOnboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.onboarding.onboard")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid onboarding request", http.StatusBadRequest)
		return
	}
	if err := validate(req.ProfileUpdate); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !req.ProfileUpdate.IsEmpty() {
		err := handler.profiles.UpdateProfile(ctx, session.UserID, req.ProfileUpdate)
		if errors.Is(err, users.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Errorf("onboard, update profile of user %d: %s", session.UserID, err)
			http.Error(w, "failed to update profile", http.StatusInternalServerError)
			return
		}
	}

	resp := Response{Status: "ok"}
	if req.Complete {
		user, err := handler.profiles.Get(ctx, session.UserID)
		if err != nil {
			log.Errorf("onboard, get user %d: %s", session.UserID, err)
			http.Error(w, "failed to get user", http.StatusInternalServerError)
			return
		}
		plan, err := handler.generator.Generate(ctx, user, "")
		if err != nil {
			log.Errorf("onboard, generate plan for user %d: %s", session.UserID, err)
			http.Error(w, "failed to generate plan", http.StatusInternalServerError)
			return
		}
		resp.PlanID = plan.ID
		log.Debugf("user %d finished onboarding, plan %d", session.UserID, plan.ID)
	}

	pkg.WriteJSONOK(w, resp)
}
