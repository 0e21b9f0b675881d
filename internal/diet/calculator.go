package diet

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	DefaultWeightKg    = 70.0
	kcalPerKgBase      = 22.0
	activityMultiplier = 1.55
)

type Macros struct {
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatsG    int `json:"fats_g"`
}

type Recommendation struct {
	Calories int    `json:"calories"`
	Macros   Macros `json:"macros"`
	Summary  string `json:"summary"`
}

var titleCaser = cases.Title(language.English)

// Recommend derives a daily calorie target and macro split.
// Non-positive weight falls back to DefaultWeightKg. It never fails.
func Recommend(weightKg float64, goal string) Recommendation {
	if weightKg <= 0 {
		weightKg = DefaultWeightKg
	}

	normalized := NormalizeGoal(goal)
	maintenance := weightKg * kcalPerKgBase * activityMultiplier

	calories := maintenance
	proteinPerKg, fatPerKg := 1.8, 0.8
	switch normalized {
	case GoalFatLoss:
		calories -= 400
		fatPerKg = 0.7
	case GoalMuscleGain:
		calories += 300
		proteinPerKg, fatPerKg = 2.0, 1.0
	case GoalRecomposition:
		calories -= 100
	}

	protein := weightKg * proteinPerKg
	fats := weightKg * fatPerKg
	carbs := math.Max(0, (calories-protein*4-fats*9)/4)

	rec := Recommendation{
		Calories: roundInt(calories),
		Macros: Macros{
			ProteinG: roundInt(protein),
			CarbsG:   roundInt(carbs),
			FatsG:    roundInt(fats),
		},
	}
	rec.Summary = summary(rec, goal)
	return rec
}

func summary(rec Recommendation, goal string) string {
	goalLower := strings.ToLower(goal)

	display := "Balance"
	if goalLower != "" {
		display = titleCaser.String(strings.ReplaceAll(goalLower, "_", " "))
	}

	focus := "balanced macros"
	switch {
	case strings.Contains(goalLower, "gain"):
		focus = "high protein and carbs"
	case strings.Contains(goalLower, "lose"):
		focus = "protein and controlled carbs"
	}

	return fmt.Sprintf(
		"Daily target: %d kcal to support %s. Macros: %dg protein, %dg carbs, %dg fats. Focus on %s.",
		rec.Calories, display, rec.Macros.ProteinG, rec.Macros.CarbsG, rec.Macros.FatsG, focus,
	)
}

// roundInt rounds half to even.
func roundInt(v float64) int {
	return int(math.RoundToEven(v))
}
