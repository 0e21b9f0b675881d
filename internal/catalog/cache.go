package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	exercisesCacheKey = "catalog||exercises"
	productsCacheKey  = "catalog||products"
)

// NewCache sizes a freecache instance shared by both catalogs.
func NewCache(sizeMB int) *freecache.Cache {
	if sizeMB <= 0 {
		sizeMB = 8
	}
	return freecache.NewCache(sizeMB * 1024 * 1024)
}

// tableCache keeps a whole serialized catalog table under one key.
type tableCache[T any] struct {
	cache *freecache.Cache
	key   []byte
	ttl   time.Duration
}

func newTableCache[T any](cache *freecache.Cache, key string, ttl time.Duration) *tableCache[T] {
	return &tableCache[T]{
		cache: cache,
		key:   []byte(key),
		ttl:   ttl,
	}
}

func (tc *tableCache[T]) load(ctx context.Context, fetch func(ctx context.Context) ([]T, error)) ([]T, error) {
	if tc.cache != nil {
		if cached, err := tc.cache.Get(tc.key); err == nil {
			var rows []T
			if err := json.Unmarshal(cached, &rows); err == nil {
				return rows, nil
			}
			log.Warnf("catalog cache [%s]: corrupt entry, reloading", tc.key)
		} else if !errors.Is(err, freecache.ErrNotFound) {
			log.Warnf("catalog cache [%s] get: %s", tc.key, err)
		}
	}

	rows, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	if tc.cache != nil {
		encoded, err := json.Marshal(rows)
		if err != nil {
			log.Errorf("catalog cache [%s] marshal: %s", tc.key, err)
			return rows, nil
		}
		if err := tc.cache.Set(tc.key, encoded, int(tc.ttl.Seconds())); err != nil {
			log.Warnf("catalog cache [%s] set: %s", tc.key, err)
		}
	}

	return rows, nil
}

func (tc *tableCache[T]) invalidate() {
	if tc.cache != nil {
		tc.cache.Del(tc.key)
	}
}
