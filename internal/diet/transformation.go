package diet

import "math"

// EstimateTransformationDays estimates how long reaching target weight takes
// at a goal-specific weekly rate. Zero when either weight is unknown or the
// difference is negligible, at least a week otherwise.
func EstimateTransformationDays(weightKg, targetKg *float64, goal string) int {
	if weightKg == nil || targetKg == nil {
		return 0
	}

	kgToChange := math.Abs(*targetKg - *weightKg)
	if kgToChange < 0.1 {
		return 0
	}

	ratePerWeek := 0.4
	switch NormalizeGoal(goal) {
	case GoalFatLoss:
		ratePerWeek = 0.55
	case GoalMuscleGain:
		ratePerWeek = 0.3
	case GoalRecomposition:
		ratePerWeek = 0.2
	}

	days := int(kgToChange / ratePerWeek * 7)
	return max(7, days)
}
