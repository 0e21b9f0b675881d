package plans

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymsphere/internal/telemetry/tracing"
	"github.com/2beens/gymsphere/internal/users"
	"github.com/2beens/gymsphere/internal/workout"
	"github.com/2beens/gymsphere/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const (
	planColumns = `id, user_id, plan_type, goal, preference, start_date, end_date,
		frequency_per_week, fitness_level, metadata, created_at`
	entryColumns = `e.id, e.plan_id, e.date, e.is_exercise_day, e.is_exercise_completed, e.is_diet_completed,
		e.exercise_completed_at, e.diet_completed_at, e.exercise_payload, e.diet_payload, e.streak_group`
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Create stores the plan row and all of its entries in one transaction.
func (r *Repo) Create(ctx context.Context, plan *Plan) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.create")
	span.SetAttributes(attribute.Int("user.id", plan.UserID))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	metadata, err := json.Marshal(plan.Metadata)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `
		INSERT INTO user_plan
			(user_id, plan_type, goal, preference, start_date, end_date, frequency_per_week, fitness_level, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at;`,
		plan.UserID, plan.PlanType, plan.Goal, plan.Preference, plan.StartDate, plan.EndDate,
		plan.FrequencyPerWeek, plan.FitnessLevel, metadata,
	).Scan(&plan.ID, &plan.CreatedAt)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, fmt.Errorf("insert plan for user %d: %w", plan.UserID, users.ErrUserNotFound)
		}
		return nil, fmt.Errorf("insert plan: %w", err)
	}

	batch := &pgx.Batch{}
	for i := range plan.Entries {
		e := &plan.Entries[i]
		e.PlanID = plan.ID

		exercisePayload, err := json.Marshal(e.ExercisePayload)
		if err != nil {
			return nil, fmt.Errorf("marshal exercise payload: %w", err)
		}
		dietPayload, err := json.Marshal(e.DietPayload)
		if err != nil {
			return nil, fmt.Errorf("marshal diet payload: %w", err)
		}

		batch.Queue(`
			INSERT INTO daily_plan_entry
				(plan_id, date, is_exercise_day, exercise_payload, diet_payload, streak_group)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
			e.PlanID, e.Date, e.IsExerciseDay, exercisePayload, dietPayload, e.StreakGroup,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for i := range plan.Entries {
		if err := results.QueryRow().Scan(&plan.Entries[i].ID); err != nil {
			_ = results.Close()
			return nil, fmt.Errorf("insert entry %d: %w", i, err)
		}
	}
	if err := results.Close(); err != nil {
		return nil, fmt.Errorf("close entries batch: %w", err)
	}

	return plan, nil
}

// DeleteForUser removes every plan of the user. Entries and check-ins cascade.
func (r *Repo) DeleteForUser(ctx context.Context, userID int) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.delete-for-user")
	span.SetAttributes(attribute.Int("user.id", userID))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(ctx, `DELETE FROM user_plan WHERE user_id = $1;`, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Latest returns the most recently created plan of the user.
func (r *Repo) Latest(ctx context.Context, userID int) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.latest")
	span.SetAttributes(attribute.Int("user.id", userID))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	row := r.db.QueryRow(ctx, `
		SELECT `+planColumns+`
		FROM user_plan
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1;`,
		userID,
	)
	return scanPlan(row)
}

// Active returns the most recent plan that has not ended before date.
func (r *Repo) Active(ctx context.Context, userID int, date time.Time) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.active")
	span.SetAttributes(attribute.Int("user.id", userID))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	row := r.db.QueryRow(ctx, `
		SELECT `+planColumns+`
		FROM user_plan
		WHERE user_id = $1 AND end_date >= $2
		ORDER BY created_at DESC, id DESC
		LIMIT 1;`,
		userID, pkg.CalendarDate(date),
	)
	return scanPlan(row)
}

// Covering returns the most recent plan whose date range contains date.
func (r *Repo) Covering(ctx context.Context, userID int, date time.Time) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.covering")
	span.SetAttributes(attribute.Int("user.id", userID))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	row := r.db.QueryRow(ctx, `
		SELECT `+planColumns+`
		FROM user_plan
		WHERE user_id = $1 AND start_date <= $2 AND end_date >= $2
		ORDER BY created_at DESC, id DESC
		LIMIT 1;`,
		userID, pkg.CalendarDate(date),
	)
	return scanPlan(row)
}

func (r *Repo) Entry(ctx context.Context, planID int, date time.Time) (_ *DailyEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.entry")
	span.SetAttributes(attribute.Int("plan.id", planID))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	row := r.db.QueryRow(ctx, `
		SELECT `+entryColumns+`
		FROM daily_plan_entry e
		WHERE e.plan_id = $1 AND e.date = $2;`,
		planID, pkg.CalendarDate(date),
	)
	return scanEntry(row)
}

// EntryByID returns the entry together with the id of the user owning its plan.
func (r *Repo) EntryByID(ctx context.Context, id int) (_ *EntryOwner, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.entry-by-id")
	span.SetAttributes(attribute.Int("entry.id", id))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var owner EntryOwner
	row := r.db.QueryRow(ctx, `
		SELECT `+entryColumns+`, p.user_id
		FROM daily_plan_entry e
		JOIN user_plan p ON p.id = e.plan_id
		WHERE e.id = $1;`,
		id,
	)
	entry, err := scanEntry(row, &owner.UserID)
	if err != nil {
		return nil, err
	}
	owner.Entry = *entry
	return &owner, nil
}

// Entries returns all entries of the plan, oldest first.
func (r *Repo) Entries(ctx context.Context, planID int) (_ []DailyEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.entries")
	span.SetAttributes(attribute.Int("plan.id", planID))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT `+entryColumns+`
		FROM daily_plan_entry e
		WHERE e.plan_id = $1
		ORDER BY e.date ASC;`,
		planID,
	)
	if err != nil {
		return nil, err
	}
	return collectEntries(rows)
}

// EntriesUpTo returns the entries dated on or before date, newest first.
func (r *Repo) EntriesUpTo(ctx context.Context, planID int, date time.Time) (_ []DailyEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.entries-up-to")
	span.SetAttributes(attribute.Int("plan.id", planID))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT `+entryColumns+`
		FROM daily_plan_entry e
		WHERE e.plan_id = $1 AND e.date <= $2
		ORDER BY e.date DESC;`,
		planID, pkg.CalendarDate(date),
	)
	if err != nil {
		return nil, err
	}
	return collectEntries(rows)
}

// CheckIn marks the entry done for the given type, stamps the user's last
// workout or diet date and appends the audit row, all in one transaction.
func (r *Repo) CheckIn(ctx context.Context, params CheckInParams) (_ *CheckIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.checkin")
	span.SetAttributes(
		attribute.Int("user.id", params.UserID),
		attribute.Int("entry.id", params.EntryID),
		attribute.String("type", string(params.Type)),
	)
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var entryUpdate, userUpdate string
	switch params.Type {
	case CheckInExercise:
		entryUpdate = `is_exercise_completed = TRUE, exercise_completed_at = $3`
		userUpdate = `last_workout_date = $2`
	case CheckInDiet:
		entryUpdate = `is_diet_completed = TRUE, diet_completed_at = $3`
		userUpdate = `last_diet_date = $2`
	default:
		return nil, ErrInvalidCheckInType
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, `
		UPDATE daily_plan_entry e SET `+entryUpdate+`
		FROM user_plan p
		WHERE e.id = $1 AND p.id = e.plan_id AND p.user_id = $2;`,
		params.EntryID, params.UserID, params.At,
	)
	if err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrEntryNotFound
	}

	if _, err = tx.Exec(ctx,
		`UPDATE users SET `+userUpdate+` WHERE id = $1;`,
		params.UserID, pkg.CalendarDate(params.At),
	); err != nil {
		return nil, fmt.Errorf("update user last check-in: %w", err)
	}

	checkIn := &CheckIn{
		UserID:       params.UserID,
		DailyEntryID: params.EntryID,
		Type:         params.Type,
		Note:         params.Note,
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO user_checkin (user_id, daily_entry_id, type, note, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;`,
		params.UserID, params.EntryID, string(params.Type), params.Note, params.At,
	).Scan(&checkIn.ID, &checkIn.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert check-in: %w", err)
	}

	return checkIn, nil
}

func scanPlan(row pgx.Row) (*Plan, error) {
	var p Plan
	var metadata []byte
	if err := row.Scan(
		&p.ID, &p.UserID, &p.PlanType, &p.Goal, &p.Preference, &p.StartDate, &p.EndDate,
		&p.FrequencyPerWeek, &p.FitnessLevel, &metadata, &p.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("scan plan: %w", err)
	}

	p.Metadata = make(map[string]any)
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &p.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal metadata for plan %d: %w", p.ID, err)
		}
	}
	return &p, nil
}

func scanEntry(row pgx.Row, extra ...any) (*DailyEntry, error) {
	var e DailyEntry
	var exercisePayload, dietPayload []byte
	dest := []any{
		&e.ID, &e.PlanID, &e.Date, &e.IsExerciseDay, &e.IsExerciseCompleted, &e.IsDietCompleted,
		&e.ExerciseCompletedAt, &e.DietCompletedAt, &exercisePayload, &dietPayload, &e.StreakGroup,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("scan entry: %w", err)
	}

	if len(exercisePayload) > 0 {
		if err := json.Unmarshal(exercisePayload, &e.ExercisePayload); err != nil {
			return nil, fmt.Errorf("unmarshal exercise payload of entry %d: %w", e.ID, err)
		}
	}
	if e.ExercisePayload == nil {
		e.ExercisePayload = make([]workout.RoutineExercise, 0)
	}
	if len(dietPayload) > 0 {
		if err := json.Unmarshal(dietPayload, &e.DietPayload); err != nil {
			return nil, fmt.Errorf("unmarshal diet payload of entry %d: %w", e.ID, err)
		}
	}
	return &e, nil
}

func collectEntries(rows pgx.Rows) ([]DailyEntry, error) {
	defer rows.Close()

	entries := make([]DailyEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
