package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/2beens/gymsphere/internal/auth"
	"github.com/2beens/gymsphere/internal/telemetry/tracing"
	"github.com/2beens/gymsphere/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=notifications_test

type inbox interface {
	List(ctx context.Context, userID, limit int) ([]Notification, error)
	MarkRead(ctx context.Context, userID, id int) error
	MarkAllRead(ctx context.Context, userID int) (int64, error)
}

type ReadRequest struct {
	ID int `json:"id"`
}

type Handler struct {
	inbox inbox
}

func NewHandler(inbox inbox) *Handler {
	return &Handler{
		inbox: inbox,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/notifications", handler.HandleList).Methods("GET", "OPTIONS").Name("notifications")
	router.HandleFunc("/api/notifications/read", handler.HandleRead).Methods("POST", "OPTIONS").Name("notifications-read")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.notifications.list")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	list, err := handler.inbox.List(ctx, session.UserID, ListLimit)
	if err != nil {
		log.Errorf("list notifications for user %d: %s", session.UserID, err)
		http.Error(w, "failed to get notifications", http.StatusInternalServerError)
		return
	}

	items := make([]Item, 0, len(list))
	for _, n := range list {
		items = append(items, n.Item())
	}
	pkg.WriteJSONOK(w, items)
}

// HandleRead marks one notification as read, or all of them when no id is given.
func (handler *Handler) HandleRead(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.notifications.read")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no session", http.StatusUnauthorized)
		return
	}

	var req ReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Debugf("notifications read, bad body: %s", err)
		req = ReadRequest{}
	}

	if req.ID > 0 {
		err := handler.inbox.MarkRead(ctx, session.UserID, req.ID)
		if err != nil && !errors.Is(err, ErrNotificationNotFound) {
			log.Errorf("mark notification %d read: %s", req.ID, err)
			http.Error(w, "failed to mark notification read", http.StatusInternalServerError)
			return
		}
	} else {
		if _, err := handler.inbox.MarkAllRead(ctx, session.UserID); err != nil {
			log.Errorf("mark all notifications read for user %d: %s", session.UserID, err)
			http.Error(w, "failed to mark notifications read", http.StatusInternalServerError)
			return
		}
	}

	pkg.WriteJSONResponseOK(w, `{"status":"ok"}`)
}
