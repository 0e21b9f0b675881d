package dashboard

import (
	"context"
	"net/http"

	"github.com/2beens/gymsphere/internal/auth"
	"github.com/2beens/gymsphere/internal/users"
	"github.com/2beens/gymsphere/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dashboard_test

type userGetter interface {
	Get(ctx context.Context, id int) (*users.User, error)
}

type Handler struct {
	users   userGetter
	service *Service
}

func NewHandler(users userGetter, service *Service) *Handler {
	return &Handler{
		users:   users,
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/dashboard", handler.HandleDashboard).Methods("GET", "OPTIONS").Name("dashboard")
}

func (handler *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	user, err := handler.users.Get(r.Context(), session.UserID)
	if err != nil {
		log.Errorf("dashboard, get user %d: %s", session.UserID, err)
		http.Error(w, "failed to get user", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, handler.service.Build(r.Context(), user))
}
