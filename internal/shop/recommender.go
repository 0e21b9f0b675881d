package shop

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/2beens/gymsphere/internal/catalog"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:generate mockgen -source=$GOFILE -destination=recommender_mocks_test.go -package=shop_test

type productFinder interface {
	FirstByName(ctx context.Context, substr string) (*catalog.Product, error)
}

const (
	minItems = 5
	maxItems = 6

	defaultRating    = 4.5
	affiliateRating  = 4.8
	defaultPrice     = 25.00
	affiliateTag     = "gymsphere-20"
	placeholderImage = "https://placehold.co/200x200?text=GymSphere"
	productImage     = "https://placehold.co/200x200?text=Product"
)

type Item struct {
	ID           *int    `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"image_url"`
	Rating       float64 `json:"rating"`
	Src          string  `json:"src"`
	AffiliateURL string  `json:"affiliate_url"`
}

var itemsByGoal = map[string][]string{
	"fat_loss":      {"skipping_rope", "resistance_bands", "yoga_mat", "whey_isolate", "smart_watch"},
	"muscle_gain":   {"dumbbells", "creatine", "whey_protein", "weight_bench", "lifting_straps"},
	"body_recomp":   {"adjustable_dumbbells", "yoga_mat", "protein_powder", "kettlebell"},
	"core_strength": {"ab_wheel", "sliders", "yoga_mat", "medicine_ball"},
	"flexibility":   {"yoga_mat", "foam_roller", "yoga_blocks"},
}

var defaultItems = []string{"resistance_bands", "dumbbells", "yoga_mat", "water_bottle"}

type knownItem struct {
	name  string
	price float64
	image string
}

var knownItems = map[string]knownItem{
	"skipping_rope":        {"Pro Speed Rope", 14.99, "https://m.media-amazon.com/images/I/71q+9gE-cAL._AC_SX679_.jpg"},
	"resistance_bands":     {"Heavy Duty Bands Set", 29.99, "https://m.media-amazon.com/images/I/71D0-l-rMzL._AC_SX679_.jpg"},
	"yoga_mat":             {"Non-Slip Yoga Mat", 45.00, "https://m.media-amazon.com/images/I/81+6iM6C5XL._AC_SX679_.jpg"},
	"whey_isolate":         {"Gold Standard Whey", 69.99, "https://m.media-amazon.com/images/I/71+6P+H6+pL._AC_SX679_.jpg"},
	"smart_watch":          {"Fitness Tracker Pro", 129.99, "https://m.media-amazon.com/images/I/61s+N0+1sWL._AC_SX679_.jpg"},
	"dumbbells":            {"Hex Dumbbell Pair (10kg)", 59.99, "https://m.media-amazon.com/images/I/71ShRz-BcxL._AC_SX679_.jpg"},
	"creatine":             {"Micronized Creatine", 24.99, "https://m.media-amazon.com/images/I/71t+vO-4KqL._AC_SX679_.jpg"},
	"ab_wheel":             {"Core Roller", 19.99, "https://m.media-amazon.com/images/I/71-Wl6+FmTL._AC_SX679_.jpg"},
	"adjustable_dumbbells": {"SelectTech Dumbbells", 299.00, "https://m.media-amazon.com/images/I/71+pOdQ7iKL._AC_SX679_.jpg"},
}

var titleCaser = cases.Title(language.English)

type Recommender struct {
	products productFinder
}

func NewRecommender(products productFinder) *Recommender {
	return &Recommender{
		products: products,
	}
}

// ItemKeys returns the shopping item keys for goal, falling back to general equipment.
func ItemKeys(goal string) []string {
	if keys, ok := itemsByGoal[strings.ToLower(goal)]; ok {
		return keys
	}
	return defaultItems
}

// Recommend lists catalog matches for the goal's items, topped up with affiliate
// placeholders when the catalog yields fewer than 5. Catalog errors are logged and skipped.
func (r *Recommender) Recommend(ctx context.Context, goal string) []Item {
	keys := ItemKeys(goal)
	items := make([]Item, 0, maxItems)

	for _, key := range keys {
		p, err := r.products.FirstByName(ctx, spaced(key))
		if err != nil {
			log.Warnf("shop: look up %q: %s", key, err)
			continue
		}
		if p != nil {
			items = append(items, fromProduct(*p))
		}
	}

	if len(items) >= minItems {
		return items
	}

	for _, key := range keys {
		if len(items) >= maxItems {
			break
		}
		if covered(items, key) {
			continue
		}
		items = append(items, placeholder(key))
	}
	return items
}

func spaced(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}

// covered reports whether some item name already stands for key.
func covered(items []Item, key string) bool {
	for _, it := range items {
		if strings.Contains(spaced(key), strings.ToLower(it.Name)) {
			return true
		}
	}
	return false
}

func fromProduct(p catalog.Product) Item {
	id := p.ID
	it := Item{
		ID:           &id,
		Name:         p.Name,
		Price:        p.Price,
		ImageURL:     p.ImageURL,
		Rating:       defaultRating,
		Src:          p.Src,
		AffiliateURL: p.AffiliateURL,
	}
	if it.ImageURL == "" {
		it.ImageURL = placeholderImage
	}
	if p.Rating != nil && *p.Rating > 0 {
		it.Rating = *p.Rating
	}
	if it.Src == "" {
		it.Src = "local"
	}
	if it.AffiliateURL == "" {
		it.AffiliateURL = "#"
	}
	return it
}

func placeholder(key string) Item {
	known, ok := knownItems[key]
	if !ok {
		known = knownItem{name: titleCaser.String(spaced(key)), price: defaultPrice}
	}
	image := known.image
	if image == "" {
		image = productImage
	}

	return Item{
		Name:         known.name,
		Price:        known.price,
		ImageURL:     image,
		Rating:       affiliateRating,
		Src:          "amazon",
		AffiliateURL: AffiliateURL(known.name),
	}
}

// AffiliateURL builds an Amazon search link for name.
func AffiliateURL(name string) string {
	return fmt.Sprintf("https://www.amazon.com/s?k=%s&tag=%s", url.QueryEscape(name), affiliateTag)
}
