package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymsphere/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) ListExercises(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.exercises")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, muscle_group, equipment, difficulty, tags, description, animation_url, thumbnail_url
			FROM exercise
			ORDER BY id;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exercises []Exercise
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(
			&e.ID, &e.Name, &e.MuscleGroup, &e.Equipment, &e.Difficulty,
			&e.Tags, &e.Description, &e.AnimationURL, &e.ThumbnailURL,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if exercises == nil {
		exercises = make([]Exercise, 0)
	}
	return exercises, nil
}

func (r *Repo) ListProducts(ctx context.Context) (_ []Product, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.products")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, price::float8, image_url, rating, src, affiliate_url
			FROM product
			ORDER BY id;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.ImageURL, &p.Rating, &p.Src, &p.AffiliateURL); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if products == nil {
		products = make([]Product, 0)
	}
	return products, nil
}

func (r *Repo) AddExercise(ctx context.Context, e *Exercise) (*Exercise, error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO exercise
				(name, muscle_group, equipment, difficulty, tags, description, animation_url, thumbnail_url)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id;`,
		e.Name, e.MuscleGroup, e.Equipment, e.Difficulty, e.Tags, e.Description, e.AnimationURL, e.ThumbnailURL,
	)
	if err := row.Scan(&e.ID); err != nil {
		return nil, fmt.Errorf("insert exercise [%s]: %w", e.Name, err)
	}
	return e, nil
}

func (r *Repo) AddProduct(ctx context.Context, p *Product) (*Product, error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO product
				(name, price, image_url, rating, src, affiliate_url)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		p.Name, p.Price, p.ImageURL, p.Rating, p.Src, p.AffiliateURL,
	)
	if err := row.Scan(&p.ID); err != nil {
		return nil, fmt.Errorf("insert product [%s]: %w", p.Name, err)
	}
	return p, nil
}

func (r *Repo) Count(ctx context.Context, table string) (int, error) {
	var query string
	switch table {
	case "exercise", "product":
		query = "SELECT COUNT(*) FROM " + table
	default:
		return -1, fmt.Errorf("unknown catalog table: %s", table)
	}

	var count int
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return -1, err
	}
	return count, nil
}
