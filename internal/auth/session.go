package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "gymsphere-session||"
	tokensSetKey     = "gymsphere-sessions"

	fieldUserID     = "user_id"
	fieldIsAdmin    = "is_admin"
	fieldCreatedAt  = "created_at"
	fieldIntroShown = "intro_shown"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// Session is the per-login state kept in redis.
type Session struct {
	Token      string
	UserID     int
	IsAdmin    bool
	CreatedAt  time.Time
	IntroShown bool
}

type sessionCtxKey struct{}

func ContextWithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, s)
}

func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionCtxKey{}).(*Session)
	return s, ok && s != nil
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

func boolField(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// TokenFromRequest reads the session token from the Authorization header.
// Both a bare token and the "Bearer <token>" form are accepted.
func TokenFromRequest(r *http.Request) string {
	token := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(token) > 7 && strings.EqualFold(token[:7], "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	return token
}
