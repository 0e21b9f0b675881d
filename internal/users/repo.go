package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymsphere/internal/telemetry/tracing"
	"github.com/2beens/gymsphere/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const userColumns = `id, email, fullname, password_hash, is_admin,
	COALESCE(goal, ''), COALESCE(body_level, ''), COALESCE(activity_level, ''), COALESCE(fitness_level, ''),
	height_cm, weight_kg, target_weight_kg, freq_per_week,
	workout_streak, diet_streak, last_workout_date, last_diet_date, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Create(ctx context.Context, u *User) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	row := r.db.QueryRow(
		ctx,
		`INSERT INTO users (email, fullname, password_hash, is_admin)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at;`,
		u.Email, u.Fullname, u.PasswordHash, u.IsAdmin,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	span.SetAttributes(attribute.Int("user.id", id))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1;`, id)
	return scanUser(row)
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get-by-email")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1;`, email)
	return scanUser(row)
}

func (r *Repo) List(ctx context.Context) ([]User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var all []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		all = append(all, *u)
	}
	return all, rows.Err()
}

// UpdateProfile writes the set fields of p, keeping the stored value of every nil one.
func (r *Repo) UpdateProfile(ctx context.Context, id int, p ProfileUpdate) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.update-profile")
	span.SetAttributes(attribute.Int("user.id", id))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE users SET
				goal = COALESCE($2, goal),
				body_level = COALESCE($3, body_level),
				activity_level = COALESCE($4, activity_level),
				fitness_level = COALESCE($5, fitness_level),
				height_cm = COALESCE($6, height_cm),
				weight_kg = COALESCE($7, weight_kg),
				target_weight_kg = COALESCE($8, target_weight_kg),
				freq_per_week = COALESCE($9, freq_per_week)
			WHERE id = $1;`,
		id, p.Goal, p.BodyLevel, p.ActivityLevel, p.FitnessLevel, p.HeightCm, p.WeightKg, p.TargetWeightKg, p.FreqPerWeek,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *Repo) UpdateStreaks(ctx context.Context, id int, workout, diet int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.update-streaks")
	span.SetAttributes(attribute.Int("user.id", id))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE users SET workout_streak = $2, diet_streak = $3 WHERE id = $1;`,
		id, workout, diet,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	if err := row.Scan(
		&u.ID, &u.Email, &u.Fullname, &u.PasswordHash, &u.IsAdmin,
		&u.Goal, &u.BodyLevel, &u.ActivityLevel, &u.FitnessLevel,
		&u.HeightCm, &u.WeightKg, &u.TargetWeightKg, &u.FreqPerWeek,
		&u.WorkoutStreak, &u.DietStreak, &u.LastWorkoutDate, &u.LastDietDate, &u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}
