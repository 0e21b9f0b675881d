package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/gymsphere/internal/telemetry/tracing"
	"github.com/2beens/gymsphere/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Create(ctx context.Context, n *Notification) (_ *Notification, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.notifications.create")
	span.SetAttributes(attribute.Int("user.id", n.UserID), attribute.String("type", n.Type))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var payload []byte
	if n.Payload != nil {
		if payload, err = json.Marshal(n.Payload); err != nil {
			return nil, fmt.Errorf("marshal payload: %w", err)
		}
	}

	created := *n
	if err := r.db.QueryRow(ctx, `
		INSERT INTO notification (user_id, title, message, type, is_read, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;`,
		n.UserID, n.Title, n.Message, n.Type, n.IsRead, payload, n.CreatedAt,
	).Scan(&created.ID); err != nil {
		return nil, err
	}
	return &created, nil
}

// List returns up to limit notifications of the user, unread first, then newest first.
func (r *Repo) List(ctx context.Context, userID, limit int) (_ []Notification, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.notifications.list")
	span.SetAttributes(attribute.Int("user.id", userID))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if limit <= 0 || limit > ListLimit {
		limit = ListLimit
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, title, message, type, is_read, payload, created_at
		FROM notification
		WHERE user_id = $1
		ORDER BY is_read ASC, created_at DESC, id DESC
		LIMIT $2;`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]Notification, 0)
	for rows.Next() {
		var n Notification
		var payload []byte
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.IsRead, &payload, &n.CreatedAt); err != nil {
			return nil, err
		}
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &n.Payload); err != nil {
				return nil, fmt.Errorf("unmarshal payload of notification %d: %w", n.ID, err)
			}
		}
		list = append(list, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repo) MarkRead(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.notifications.mark-read")
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("notification.id", id))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(ctx,
		`UPDATE notification SET is_read = TRUE WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *Repo) MarkAllRead(ctx context.Context, userID int) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.notifications.mark-all-read")
	span.SetAttributes(attribute.Int("user.id", userID))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(ctx,
		`UPDATE notification SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE;`,
		userID,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) ExistsUnread(ctx context.Context, userID int, title string) (bool, error) {
	return r.exists(ctx, "repo.notifications.exists-unread",
		`user_id = $1 AND title = $2 AND is_read = FALSE`,
		userID, title,
	)
}

func (r *Repo) ExistsSince(ctx context.Context, userID int, title string, since time.Time) (bool, error) {
	return r.exists(ctx, "repo.notifications.exists-since",
		`user_id = $1 AND title = $2 AND created_at >= $3`,
		userID, title, since,
	)
}

// ExistsForDate checks for a notification whose payload refers to the given calendar date.
func (r *Repo) ExistsForDate(ctx context.Context, userID int, title string, date time.Time) (bool, error) {
	return r.exists(ctx, "repo.notifications.exists-for-date",
		`user_id = $1 AND title = $2 AND payload->>'date' = $3`,
		userID, title, pkg.FormatDate(date),
	)
}

func (r *Repo) exists(ctx context.Context, spanName, where string, args ...any) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, spanName)
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var exists bool
	if err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM notification WHERE `+where+`);`,
		args...,
	).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
