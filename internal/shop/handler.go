package shop

import (
	"context"
	"net/http"

	"github.com/2beens/gymsphere/internal/auth"
	"github.com/2beens/gymsphere/internal/telemetry/tracing"
	"github.com/2beens/gymsphere/internal/users"
	"github.com/2beens/gymsphere/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=shop_test

type userGetter interface {
	Get(ctx context.Context, id int) (*users.User, error)
}

type Handler struct {
	users       userGetter
	recommender *Recommender
}

func NewHandler(users userGetter, recommender *Recommender) *Handler {
	return &Handler{
		users:       users,
		recommender: recommender,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/shop/recommend", handler.HandleRecommend).Methods("GET", "OPTIONS").Name("shop-recommend")
}

func (handler *Handler) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.shop.recommend")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	user, err := handler.users.Get(ctx, session.UserID)
	if err != nil {
		log.Errorf("shop recommend, get user %d: %s", session.UserID, err)
		http.Error(w, "failed to get user", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, handler.recommender.Recommend(ctx, user.Goal))
}
