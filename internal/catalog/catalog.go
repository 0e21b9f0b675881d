package catalog

import "strings"

type Exercise struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	MuscleGroup  string `json:"muscle_group"`
	Equipment    string `json:"equipment"`
	Difficulty   string `json:"difficulty"`
	Tags         string `json:"tags"`
	Description  string `json:"description"`
	AnimationURL string `json:"animation_url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

func (e Exercise) HasTag(tag string) bool {
	return strings.Contains(strings.ToLower(e.Tags), strings.ToLower(tag))
}

func (e Exercise) IsBodyweight() bool {
	return strings.Contains(strings.ToLower(e.Equipment), "bodyweight")
}

type Product struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	ImageURL     string   `json:"image_url"`
	Rating       *float64 `json:"rating"`
	Src          string   `json:"src"`
	AffiliateURL string   `json:"affiliate_url"`
}

// ExerciseQuery filters the exercise catalog.
// Tag is a case-insensitive substring of the tags column, empty matches all.
// ExcludeTags drops rows whose whole tags value equals one of them.
type ExerciseQuery struct {
	Tag            string
	BodyweightOnly bool
	ExcludeTags    []string
	Limit          int
}

func (q ExerciseQuery) matches(e Exercise) bool {
	if q.Tag != "" && !e.HasTag(q.Tag) {
		return false
	}
	if q.BodyweightOnly && !e.IsBodyweight() {
		return false
	}
	for _, excluded := range q.ExcludeTags {
		if e.Tags == excluded {
			return false
		}
	}
	return true
}
