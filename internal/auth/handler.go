package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/gymsphere/internal/telemetry/metrics"
	"github.com/2beens/gymsphere/internal/telemetry/tracing"
	"github.com/2beens/gymsphere/internal/users"
	"github.com/2beens/gymsphere/pkg"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type usersRepo interface {
	Create(ctx context.Context, u *users.User) (*users.User, error)
	GetByEmail(ctx context.Context, email string) (*users.User, error)
}

type sessionService interface {
	Login(ctx context.Context, userID int, isAdmin bool, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
	MarkIntroShown(ctx context.Context, token string) error
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Fullname string `json:"fullname"`
}

type TokenResponse struct {
	Token  string `json:"token"`
	UserID int    `json:"user_id"`
}

type Handler struct {
	users          usersRepo
	sessions       sessionService
	metricsManager *metrics.Manager

	// injectable for tests, bcrypt with the default cost is slow
	HashPasswordFunc func(password string) (string, error)
	NowFunc          func() time.Time
}

func NewHandler(users usersRepo, sessions sessionService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		users:            users,
		sessions:         sessions,
		metricsManager:   metricsManager,
		HashPasswordFunc: pkg.HashPassword,
		NowFunc:          time.Now,
	}
}

// SetupRoutes registers the /a endpoints on router, which is expected to be the /a subrouter.
func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/register", handler.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	router.HandleFunc("/login", handler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	router.HandleFunc("/logout", handler.HandleLogout).Methods("GET", "OPTIONS").Name("logout")
}

func readCredentials(r *http.Request) (Credentials, error) {
	var creds Credentials
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			return creds, err
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return creds, err
		}
		creds = Credentials{
			Email:    r.Form.Get("email"),
			Password: r.Form.Get("password"),
			Fullname: r.Form.Get("fullname"),
		}
	}
	creds.Email = strings.ToLower(strings.TrimSpace(creds.Email))
	return creds, nil
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.register")
	defer span.End()

	creds, err := readCredentials(r)
	if err != nil {
		log.Errorf("register, read credentials: %s", err)
		http.Error(w, "register failed", http.StatusBadRequest)
		return
	}
	if creds.Email == "" || !strings.Contains(creds.Email, "@") {
		http.Error(w, "error, invalid email", http.StatusBadRequest)
		return
	}
	if creds.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	hash, err := handler.HashPasswordFunc(creds.Password)
	if errors.Is(err, pkg.ErrPasswordTooLong) {
		http.Error(w, "error, password too long", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("register, hash password: %s", err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	user, err := handler.users.Create(ctx, &users.User{
		Email:        creds.Email,
		Fullname:     creds.Fullname,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			http.Error(w, "email already registered", http.StatusConflict)
			return
		}
		log.Errorf("register, create user [%s]: %s", creds.Email, err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	token, err := handler.sessions.Login(ctx, user.ID, user.IsAdmin, handler.NowFunc())
	if err != nil {
		log.Errorf("register, login new user %d: %s", user.ID, err)
		http.Error(w, "generate token error", http.StatusInternalServerError)
		return
	}

	log.Debugf("new user registered: %d", user.ID)
	pkg.WriteJSON(w, TokenResponse{Token: token, UserID: user.ID}, http.StatusCreated)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	creds, err := readCredentials(r)
	if err != nil {
		log.Errorf("login, read credentials: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}
	if creds.Email == "" {
		http.Error(w, "error, email empty", http.StatusBadRequest)
		return
	}
	if creds.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	user, err := handler.users.GetByEmail(ctx, creds.Email)
	if err != nil && !errors.Is(err, users.ErrUserNotFound) {
		log.Errorf("login, get user [%s]: %s", creds.Email, err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}
	if user == nil || !pkg.CheckPasswordHash(creds.Password, user.PasswordHash) {
		log.Tracef("failed login attempt for user: %s", creds.Email)
		handler.countLogin("failed")
		http.Error(w, "error, wrong credentials", http.StatusBadRequest)
		return
	}

	token, err := handler.sessions.Login(ctx, user.ID, user.IsAdmin, handler.NowFunc())
	if err != nil {
		log.Errorf("login failed, generate token error: %s", err)
		http.Error(w, "generate token error", http.StatusInternalServerError)
		return
	}

	handler.countLogin("ok")
	log.Trace("new login success")
	pkg.WriteJSONOK(w, TokenResponse{Token: token, UserID: user.ID})
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	authToken := TokenFromRequest(r)
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := handler.sessions.Logout(ctx, authToken)
	if err != nil {
		log.Errorf("logout => %s: %s", r.URL.Path, err)
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	if !loggedOut {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	log.Trace("logout success")
	pkg.WriteTextResponseOK(w, "logged-out")
}

// HandleIntro reports whether the intro should be shown and marks it as shown for the session.
func (handler *Handler) HandleIntro(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.intro")
	defer span.End()

	session, ok := SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	show := !session.IntroShown
	if show {
		if err := handler.sessions.MarkIntroShown(ctx, session.Token); err != nil {
			log.Errorf("mark intro shown for user %d: %s", session.UserID, err)
		}
	}

	pkg.WriteJSONOK(w, map[string]bool{"show_intro": show})
}

func (handler *Handler) countLogin(outcome string) {
	if handler.metricsManager == nil {
		return
	}
	handler.metricsManager.CounterLogins.With(prometheus.Labels{"outcome": outcome}).Inc()
}
