package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

var _ Checker = (*LoginChecker)(nil)

type Checker interface {
	Session(ctx context.Context, token string) (*Session, error)
}

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// Session resolves token into a live session.
func (lc *LoginChecker) Session(ctx context.Context, token string) (*Session, error) {
	cmd := lc.redisClient.HGetAll(ctx, sessionKey(token))
	if err := cmd.Err(); err != nil {
		return nil, err
	}

	fields := cmd.Val()
	if len(fields) == 0 {
		return nil, ErrSessionNotFound
	}

	userID, err := strconv.Atoi(fields[fieldUserID])
	if err != nil {
		return nil, fmt.Errorf("session user id: %w", err)
	}
	createdAtUnix, err := strconv.ParseInt(fields[fieldCreatedAt], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("session created at: %w", err)
	}

	createdAt := time.Unix(createdAtUnix, 0)
	if time.Since(createdAt) > lc.ttl {
		return nil, ErrSessionExpired
	}

	return &Session{
		Token:      token,
		UserID:     userID,
		IsAdmin:    fields[fieldIsAdmin] == "1",
		CreatedAt:  createdAt,
		IntroShown: fields[fieldIntroShown] == "1",
	}, nil
}
