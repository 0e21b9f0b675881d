package catalog

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=seed_mocks_test.go -package=catalog_test

type seedRepo interface {
	Count(ctx context.Context, table string) (int, error)
	AddExercise(ctx context.Context, e *Exercise) (*Exercise, error)
	AddProduct(ctx context.Context, p *Product) (*Product, error)
}

func rating(v float64) *float64 {
	return &v
}

// DefaultExercises covers every phase the workout selector draws from.
var DefaultExercises = []Exercise{
	{Name: "Jumping Jacks", MuscleGroup: "Full Body", Equipment: "Bodyweight", Difficulty: "Beginner", Tags: "warmup", Description: "Jump feet out while raising arms overhead, then return."},
	{Name: "Arm Circles", MuscleGroup: "Shoulders", Equipment: "Bodyweight", Difficulty: "Beginner", Tags: "warmup", Description: "Small to large circles with straight arms."},
	{Name: "High Knees", MuscleGroup: "Legs", Equipment: "Bodyweight", Difficulty: "Beginner", Tags: "warmup, cardio", Description: "Run in place driving knees to hip height."},
	{Name: "Cat Cow", MuscleGroup: "Back", Equipment: "Mat", Difficulty: "Beginner", Tags: "mobility", Description: "Alternate arching and rounding the spine on all fours."},
	{Name: "Hip Openers", MuscleGroup: "Legs", Equipment: "Bodyweight", Difficulty: "Beginner", Tags: "mobility", Description: "Controlled hip rotations in a standing position."},
	{Name: "Push Ups", MuscleGroup: "Chest", Equipment: "Bodyweight", Difficulty: "Beginner", Tags: "strength, push", Description: "Lower the chest to the floor keeping a straight body line."},
	{Name: "Dumbbell Bench Press", MuscleGroup: "Chest", Equipment: "Dumbbells, Bench", Difficulty: "Intermediate", Tags: "strength, push", Description: "Press dumbbells from chest level to full extension."},
	{Name: "Bent Over Rows", MuscleGroup: "Back", Equipment: "Dumbbells", Difficulty: "Intermediate", Tags: "strength, pull", Description: "Hinge at the hips and row the weights to the ribs."},
	{Name: "Superman Hold", MuscleGroup: "Back", Equipment: "Bodyweight", Difficulty: "Beginner", Tags: "core, pull", Description: "Lift arms and legs off the floor while lying face down."},
	{Name: "Goblet Squats", MuscleGroup: "Legs", Equipment: "Dumbbells", Difficulty: "Beginner", Tags: "strength, legs", Description: "Squat holding one dumbbell at the chest."},
	{Name: "Bodyweight Squats", MuscleGroup: "Legs", Equipment: "Bodyweight", Difficulty: "Beginner", Tags: "legs", Description: "Sit back and down, then stand tall."},
	{Name: "Walking Lunges", MuscleGroup: "Legs", Equipment: "Bodyweight", Difficulty: "Intermediate", Tags: "legs", Description: "Step forward into a lunge, alternating legs."},
	{Name: "Shoulder Press", MuscleGroup: "Shoulders", Equipment: "Dumbbells", Difficulty: "Intermediate", Tags: "strength, push", Description: "Press dumbbells overhead from shoulder height."},
	{Name: "Pike Push Ups", MuscleGroup: "Shoulders", Equipment: "Bodyweight", Difficulty: "Intermediate", Tags: "push", Description: "Push ups with hips raised to target the shoulders."},
	{Name: "Bicep Curls", MuscleGroup: "Arms", Equipment: "Dumbbells", Difficulty: "Beginner", Tags: "strength", Description: "Curl the weights while keeping elbows fixed."},
	{Name: "Bench Dips", MuscleGroup: "Arms", Equipment: "Bench", Difficulty: "Beginner", Tags: "push", Description: "Lower and raise the body using a bench behind you."},
	{Name: "Burpees", MuscleGroup: "Full Body", Equipment: "Bodyweight", Difficulty: "Advanced", Tags: "hiit, cardio", Description: "Squat, kick back to a plank, return and jump."},
	{Name: "Kettlebell Swings", MuscleGroup: "Full Body", Equipment: "Kettlebell", Difficulty: "Intermediate", Tags: "strength, hiit", Description: "Swing the kettlebell to chest height driving from the hips."},
	{Name: "Mountain Climbers", MuscleGroup: "Full Body", Equipment: "Bodyweight", Difficulty: "Intermediate", Tags: "hiit", Description: "Drive knees toward the chest from a plank."},
	{Name: "Plank", MuscleGroup: "Abs", Equipment: "Bodyweight, Mat", Difficulty: "Beginner", Tags: "abs, core", Description: "Hold a straight line on forearms and toes."},
	{Name: "Bicycle Crunches", MuscleGroup: "Abs", Equipment: "Bodyweight", Difficulty: "Beginner", Tags: "abs", Description: "Alternate elbow to opposite knee."},
	{Name: "Russian Twists", MuscleGroup: "Abs", Equipment: "Bodyweight", Difficulty: "Intermediate", Tags: "abs, core", Description: "Rotate the torso side to side while seated."},
	{Name: "Hamstring Stretch", MuscleGroup: "Legs", Equipment: "Mat", Difficulty: "Beginner", Tags: "stretch", Description: "Reach toward the toes with straight legs."},
	{Name: "Child's Pose", MuscleGroup: "Back", Equipment: "Mat", Difficulty: "Beginner", Tags: "stretch", Description: "Sit back on the heels with arms long in front."},
	{Name: "Chest Opener", MuscleGroup: "Chest", Equipment: "Bodyweight", Difficulty: "Beginner", Tags: "cooldown", Description: "Clasp hands behind the back and open the chest."},
}

var DefaultProducts = []Product{
	{Name: "Pro Speed Rope", Price: 14.99, Rating: rating(4.7), Src: "local", AffiliateURL: "#"},
	{Name: "Heavy Duty Bands Set", Price: 29.99, Rating: rating(4.6), Src: "local", AffiliateURL: "#"},
	{Name: "Non-Slip Yoga Mat", Price: 45.00, Rating: rating(4.8), Src: "local", AffiliateURL: "#"},
	{Name: "Gold Standard Whey", Price: 69.99, Rating: rating(4.9), Src: "local", AffiliateURL: "#"},
	{Name: "Hex Dumbbell Pair (10kg)", Price: 59.99, Src: "local", AffiliateURL: "#"},
}

// Seed inserts the default catalog into empty tables. Non-empty tables are left as they are.
func Seed(ctx context.Context, repo seedRepo) (exercises int, products int, err error) {
	count, err := repo.Count(ctx, "exercise")
	if err != nil {
		return 0, 0, fmt.Errorf("count exercises: %w", err)
	}
	if count == 0 {
		for i := range DefaultExercises {
			e := DefaultExercises[i]
			if _, err := repo.AddExercise(ctx, &e); err != nil {
				return exercises, products, err
			}
			exercises++
		}
	} else {
		log.Debugf("catalog seed: %d exercises present, skipping", count)
	}

	count, err = repo.Count(ctx, "product")
	if err != nil {
		return exercises, 0, fmt.Errorf("count products: %w", err)
	}
	if count == 0 {
		for i := range DefaultProducts {
			p := DefaultProducts[i]
			if _, err := repo.AddProduct(ctx, &p); err != nil {
				return exercises, products, err
			}
			products++
		}
	} else {
		log.Debugf("catalog seed: %d products present, skipping", count)
	}

	return exercises, products, nil
}
