package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/coocood/freecache"
)

//go:generate mockgen -source=$GOFILE -destination=exercises_mocks_test.go -package=catalog_test

type exercisesRepo interface {
	ListExercises(ctx context.Context) ([]Exercise, error)
}

type ExerciseCatalog struct {
	repo  exercisesRepo
	table *tableCache[Exercise]
}

// NewExerciseCatalog returns a catalog backed by repo. A nil cache disables caching.
func NewExerciseCatalog(repo exercisesRepo, cache *freecache.Cache, ttl time.Duration) *ExerciseCatalog {
	return &ExerciseCatalog{
		repo:  repo,
		table: newTableCache[Exercise](cache, exercisesCacheKey, ttl),
	}
}

func (c *ExerciseCatalog) All(ctx context.Context) ([]Exercise, error) {
	all, err := c.table.load(ctx, c.repo.ListExercises)
	if err != nil {
		return nil, fmt.Errorf("load exercises: %w", err)
	}
	return all, nil
}

// Find returns the matching exercises in catalog order.
func (c *ExerciseCatalog) Find(ctx context.Context, q ExerciseQuery) ([]Exercise, error) {
	all, err := c.All(ctx)
	if err != nil {
		return nil, err
	}

	found := make([]Exercise, 0)
	for _, e := range all {
		if !q.matches(e) {
			continue
		}
		found = append(found, e)
		if q.Limit > 0 && len(found) == q.Limit {
			break
		}
	}
	return found, nil
}

func (c *ExerciseCatalog) Invalidate() {
	c.table.invalidate()
}
