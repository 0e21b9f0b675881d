package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/coocood/freecache"
)

//go:generate mockgen -source=$GOFILE -destination=products_mocks_test.go -package=catalog_test

type productsRepo interface {
	ListProducts(ctx context.Context) ([]Product, error)
}

type ProductCatalog struct {
	repo  productsRepo
	table *tableCache[Product]
}

func NewProductCatalog(repo productsRepo, cache *freecache.Cache, ttl time.Duration) *ProductCatalog {
	return &ProductCatalog{
		repo:  repo,
		table: newTableCache[Product](cache, productsCacheKey, ttl),
	}
}

func (c *ProductCatalog) All(ctx context.Context) ([]Product, error) {
	all, err := c.table.load(ctx, c.repo.ListProducts)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	return all, nil
}

// FirstByName returns the first product whose name contains substr, ignoring case.
// It returns nil, nil when nothing matches.
func (c *ProductCatalog) FirstByName(ctx context.Context, substr string) (*Product, error) {
	all, err := c.All(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(substr)
	for i := range all {
		if strings.Contains(strings.ToLower(all[i].Name), needle) {
			p := all[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (c *ProductCatalog) Invalidate() {
	c.table.invalidate()
}
