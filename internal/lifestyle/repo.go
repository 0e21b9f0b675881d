package lifestyle

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/gymsphere/internal/telemetry/tracing"
	"github.com/2beens/gymsphere/pkg"

	"github.com/jackc/pgx/v5"
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

func (r *Repo) LogWater(ctx context.Context, userID, amountMl int, date time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.lifestyle.log-water")
	span.SetAttributes(attribute.Int("user.id", userID))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx,
		`INSERT INTO water_log (user_id, amount_ml, date) VALUES ($1, $2, $3);`,
		userID, amountMl, pkg.CalendarDate(date),
	)
	return err
}

// WaterTotal sums the water logged by the user on date.
func (r *Repo) WaterTotal(ctx context.Context, userID int, date time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.lifestyle.water-total")
	span.SetAttributes(attribute.Int("user.id", userID))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var total int
	if err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount_ml), 0) FROM water_log WHERE user_id = $1 AND date = $2;`,
		userID, pkg.CalendarDate(date),
	).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *Repo) LogSleep(ctx context.Context, userID int, hours float64, quality string, date time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.lifestyle.log-sleep")
	span.SetAttributes(attribute.Int("user.id", userID))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx,
		`INSERT INTO sleep_log (user_id, hours, quality, date) VALUES ($1, $2, $3, $4);`,
		userID, hours, quality, pkg.CalendarDate(date),
	)
	return err
}

// SleepFor returns the first sleep log of the user on date, or ErrNoSleepLog.
func (r *Repo) SleepFor(ctx context.Context, userID int, date time.Time) (_ *SleepLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.lifestyle.sleep-for")
	span.SetAttributes(attribute.Int("user.id", userID))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var s SleepLog
	if err := r.db.QueryRow(ctx, `
		SELECT hours, quality, date
		FROM sleep_log
		WHERE user_id = $1 AND date = $2
		ORDER BY id
		LIMIT 1;`,
		userID, pkg.CalendarDate(date),
	).Scan(&s.Hours, &s.Quality, &s.Date); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoSleepLog
		}
		return nil, err
	}
	return &s, nil
}

func (r *Repo) LogWeight(ctx context.Context, userID int, weight float64, at time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.lifestyle.log-weight")
	span.SetAttributes(attribute.Int("user.id", userID))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx,
		`INSERT INTO user_progress (user_id, weight, logged_at) VALUES ($1, $2, $3);`,
		userID, weight, at,
	)
	return err
}

// Weights returns the user's weight logs oldest first. A positive last keeps
// only the most recent last logs.
func (r *Repo) Weights(ctx context.Context, userID, last int) (_ []WeightLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.lifestyle.weights")
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("last", last))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	// LIMIT NULL is no limit
	var limit *int
	if last > 0 {
		limit = &last
	}

	rows, err := r.db.Query(ctx, `
		SELECT weight, logged_at FROM (
			SELECT id, weight, logged_at
			FROM user_progress
			WHERE user_id = $1
			ORDER BY logged_at DESC, id DESC
			LIMIT $2
		) recent
		ORDER BY logged_at ASC, id ASC;`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]WeightLog, 0)
	for rows.Next() {
		var l WeightLog
		if err := rows.Scan(&l.Weight, &l.LoggedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return logs, nil
}

// Leaderboard ranks users by the number of progress logs.
func (r *Repo) Leaderboard(ctx context.Context, limit int) (_ []LeaderboardRow, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.lifestyle.leaderboard")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT u.fullname, COUNT(p.id) AS score
		FROM users u
		JOIN user_progress p ON p.user_id = u.id
		GROUP BY u.id, u.fullname
		ORDER BY score DESC, u.id ASC
		LIMIT $1;`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	board := make([]LeaderboardRow, 0, limit)
	for rows.Next() {
		row := LeaderboardRow{Metric: "Check-ins"}
		if err := rows.Scan(&row.Name, &row.Score); err != nil {
			return nil, err
		}
		board = append(board, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return board, nil
}
