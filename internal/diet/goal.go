package diet

import "strings"

type Goal string

const (
	GoalFatLoss       Goal = "fat_loss"
	GoalMuscleGain    Goal = "muscle_gain"
	GoalRecomposition Goal = "recomposition"
	GoalMaintain      Goal = "maintain"
)

// NormalizeGoal maps free-text goal tags (and their synonyms) onto a Goal.
func NormalizeGoal(goal string) Goal {
	switch strings.ToLower(strings.TrimSpace(goal)) {
	case "fat_loss", "lose", "weight_loss":
		return GoalFatLoss
	case "muscle_gain", "gain", "bulk":
		return GoalMuscleGain
	case "recomposition", "recomp":
		return GoalRecomposition
	default:
		return GoalMaintain
	}
}
