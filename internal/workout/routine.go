package workout

import (
	"strings"

	"github.com/2beens/gymsphere/internal/catalog"
)

type Phase string

const (
	PhaseWarmUp   Phase = "Warm-up"
	PhaseMain     Phase = "Main Workout"
	PhaseFinisher Phase = "Finisher"
	PhaseCoolDown Phase = "Cool-down"
)

const (
	DefaultAnimationURL = "https://assets.lottiefiles.com/packages/lf20_9xRkZk.json"
	DefaultThumbnailURL = "https://placehold.co/100x100?text=Ex"
)

type RoutineExercise struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Phase        Phase  `json:"phase"`
	Sets         int    `json:"sets"`
	Reps         string `json:"reps"`
	MuscleGroup  string `json:"muscle_group"`
	Equipment    string `json:"equipment"`
	Difficulty   string `json:"difficulty"`
	Description  string `json:"description"`
	AnimationURL string `json:"animation_url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

func setsAndReps(phase Phase, e catalog.Exercise) (int, string) {
	switch phase {
	case PhaseWarmUp:
		return 1, "60 sec"
	case PhaseMain:
		if strings.Contains(e.Tags, "strength") {
			return 4, "8-10"
		}
		return 3, "12-15"
	case PhaseFinisher:
		return 2, "Failure"
	case PhaseCoolDown:
		return 1, "60 sec hold"
	}
	return 3, "10-12"
}

func newRoutineExercise(phase Phase, e catalog.Exercise) RoutineExercise {
	sets, reps := setsAndReps(phase, e)
	re := RoutineExercise{
		ID:           e.ID,
		Name:         e.Name,
		Phase:        phase,
		Sets:         sets,
		Reps:         reps,
		MuscleGroup:  e.MuscleGroup,
		Equipment:    e.Equipment,
		Difficulty:   e.Difficulty,
		Description:  e.Description,
		AnimationURL: e.AnimationURL,
		ThumbnailURL: e.ThumbnailURL,
	}
	if re.AnimationURL == "" {
		re.AnimationURL = DefaultAnimationURL
	}
	if re.ThumbnailURL == "" {
		re.ThumbnailURL = DefaultThumbnailURL
	}
	return re
}

// EquipmentFor lists the distinct equipment a routine needs, bodyweight moves excluded.
func EquipmentFor(exercises []RoutineExercise) []string {
	seen := make(map[string]bool)
	equipment := make([]string, 0)
	for _, ex := range exercises {
		eq := ex.Equipment
		if eq == "" || strings.Contains(eq, "Bodyweight") || strings.Contains(eq, "None") {
			continue
		}
		for _, item := range strings.Split(eq, ",") {
			clean := strings.TrimSpace(item)
			if clean == "" || seen[clean] {
				continue
			}
			seen[clean] = true
			equipment = append(equipment, clean)
		}
	}
	return equipment
}
