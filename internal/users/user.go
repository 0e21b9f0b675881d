package users

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

type User struct {
	ID              int        `json:"id"`
	Email           string     `json:"email"`
	Fullname        string     `json:"fullname"`
	PasswordHash    string     `json:"-"`
	IsAdmin         bool       `json:"is_admin"`
	Goal            string     `json:"goal"`
	BodyLevel       string     `json:"body_level"`
	ActivityLevel   string     `json:"activity_level"`
	FitnessLevel    string     `json:"fitness_level"`
	HeightCm        *float64   `json:"height_cm"`
	WeightKg        *float64   `json:"weight_kg"`
	TargetWeightKg  *float64   `json:"target_weight_kg"`
	FreqPerWeek     *int       `json:"freq_per_week"`
	WorkoutStreak   int        `json:"workout_streak"`
	DietStreak      int        `json:"diet_streak"`
	LastWorkoutDate *time.Time `json:"last_workout_date"`
	LastDietDate    *time.Time `json:"last_diet_date"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Weight returns the body weight in kg, or 0 when unknown.
func (u *User) Weight() float64 {
	if u.WeightKg == nil {
		return 0
	}
	return *u.WeightKg
}

// ProfileUpdate holds the profile fields a user may change. Nil fields are left untouched.
type ProfileUpdate struct {
	Goal           *string  `json:"goal"`
	BodyLevel      *string  `json:"body_level"`
	ActivityLevel  *string  `json:"activity_level"`
	FitnessLevel   *string  `json:"fitness_level"`
	HeightCm       *float64 `json:"height_cm"`
	WeightKg       *float64 `json:"weight_kg"`
	TargetWeightKg *float64 `json:"target_weight_kg"`
	FreqPerWeek    *int     `json:"freq_per_week"`
}

func (p ProfileUpdate) IsEmpty() bool {
	return p.Goal == nil && p.BodyLevel == nil && p.ActivityLevel == nil && p.FitnessLevel == nil &&
		p.HeightCm == nil && p.WeightKg == nil && p.TargetWeightKg == nil && p.FreqPerWeek == nil
}

// Apply copies the set fields onto u.
func (p ProfileUpdate) Apply(u *User) {
	if p.Goal != nil {
		u.Goal = *p.Goal
	}
	if p.BodyLevel != nil {
		u.BodyLevel = *p.BodyLevel
	}
	if p.ActivityLevel != nil {
		u.ActivityLevel = *p.ActivityLevel
	}
	if p.FitnessLevel != nil {
		u.FitnessLevel = *p.FitnessLevel
	}
	if p.HeightCm != nil {
		u.HeightCm = p.HeightCm
	}
	if p.WeightKg != nil {
		u.WeightKg = p.WeightKg
	}
	if p.TargetWeightKg != nil {
		u.TargetWeightKg = p.TargetWeightKg
	}
	if p.FreqPerWeek != nil {
		u.FreqPerWeek = p.FreqPerWeek
	}
}
