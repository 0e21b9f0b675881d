package diet

import "fmt"

type Meals struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
	Snacks    string `json:"snacks"`
}

type DayMeals struct {
	Day      int    `json:"day"`
	DayName  string `json:"day_name"`
	Calories int    `json:"calories"`
	Macros   Macros `json:"macros"`
	Meals    Meals  `json:"meals"`
}

// DietPayload is the diet part of a single plan day.
type DietPayload struct {
	Calories int    `json:"calories"`
	ProteinG int    `json:"protein_g"`
	CarbsG   int    `json:"carbs_g"`
	FatsG    int    `json:"fats_g"`
	Meals    Meals  `json:"meals"`
	Note     string `json:"note"`
}

var dayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var mealVariations = [4]string{" (Option A)", " (Option B)", " (Spicy)", " (Herbal)"}

// WeeklyMealPlan lays the goal's 7 meal templates over Monday..Sunday.
func WeeklyMealPlan(rec Recommendation, goal string) []DayMeals {
	templates := templatesFor(goal)
	week := make([]DayMeals, 0, len(dayNames))
	for i, name := range dayNames {
		week = append(week, DayMeals{
			Day:      i + 1,
			DayName:  name,
			Calories: rec.Calories,
			Macros:   rec.Macros,
			Meals:    templates[i%len(templates)],
		})
	}
	return week
}

// MealsForDay builds the diet payload for plan day dayIndex (0-based).
// Templates rotate every 7 days, label suffixes every 4.
func MealsForDay(rec Recommendation, goal string, dayIndex int) DietPayload {
	templates := templatesFor(goal)
	base := templates[dayIndex%len(templates)]
	suffix := mealVariations[dayIndex%len(mealVariations)]

	return DietPayload{
		Calories: rec.Calories,
		ProteinG: rec.Macros.ProteinG,
		CarbsG:   rec.Macros.CarbsG,
		FatsG:    rec.Macros.FatsG,
		Meals: Meals{
			Breakfast: base.Breakfast + suffix,
			Lunch:     base.Lunch + suffix,
			Dinner:    base.Dinner + suffix,
			Snacks:    base.Snacks + suffix,
		},
		Note: fmt.Sprintf("Focus on hitting ~%dg protein today.", rec.Macros.ProteinG),
	}
}

func templatesFor(goal string) []Meals {
	switch NormalizeGoal(goal) {
	case GoalFatLoss:
		return fatLossTemplates
	case GoalMuscleGain:
		return muscleGainTemplates
	default:
		return balancedTemplates
	}
}

// high protein, lower carb
var fatLossTemplates = []Meals{
	{
		Breakfast: "Greek yogurt with berries and almonds",
		Lunch:     "Grilled chicken salad with olive oil dressing",
		Dinner:    "Baked salmon with steamed vegetables",
		Snacks:    "Protein shake, apple with peanut butter",
	},
	{
		Breakfast: "Scrambled eggs with spinach and whole grain toast",
		Lunch:     "Turkey wrap with vegetables",
		Dinner:    "Lean beef stir-fry with broccoli",
		Snacks:    "Cottage cheese, mixed nuts",
	},
	{
		Breakfast: "Protein smoothie with banana and spinach",
		Lunch:     "Tuna salad with mixed greens",
		Dinner:    "Grilled chicken breast with quinoa and asparagus",
		Snacks:    "Hard-boiled eggs, cucumber slices",
	},
	{
		Breakfast: "Oatmeal with protein powder and berries",
		Lunch:     "Chicken and vegetable soup",
		Dinner:    "Baked cod with sweet potato and green beans",
		Snacks:    "Greek yogurt, almonds",
	},
	{
		Breakfast: "Egg white omelet with vegetables",
		Lunch:     "Grilled chicken Caesar salad (light dressing)",
		Dinner:    "Lean pork tenderloin with roasted vegetables",
		Snacks:    "Protein bar, apple",
	},
	{
		Breakfast: "Cottage cheese with fruit and nuts",
		Lunch:     "Salmon and quinoa bowl",
		Dinner:    "Turkey meatballs with zucchini noodles",
		Snacks:    "Protein shake, mixed berries",
	},
	{
		Breakfast: "Whole grain toast with avocado and poached eggs",
		Lunch:     "Chicken and vegetable stir-fry",
		Dinner:    "Grilled fish with brown rice and vegetables",
		Snacks:    "Greek yogurt, trail mix",
	},
}

// calorie dense
var muscleGainTemplates = []Meals{
	{
		Breakfast: "Oatmeal with protein powder, banana, and peanut butter",
		Lunch:     "Chicken breast with rice and vegetables",
		Dinner:    "Beef steak with potatoes and mixed vegetables",
		Snacks:    "Protein shake, granola bar, nuts",
	},
	{
		Breakfast: "Scrambled eggs with bacon and whole grain toast",
		Lunch:     "Pasta with ground turkey and marinara sauce",
		Dinner:    "Salmon with sweet potato and broccoli",
		Snacks:    "Greek yogurt with honey, protein bar",
	},
	{
		Breakfast: "Protein pancakes with syrup and berries",
		Lunch:     "Chicken and rice bowl with avocado",
		Dinner:    "Pork chops with mashed potatoes and green beans",
		Snacks:    "Protein shake, banana, peanut butter",
	},
	{
		Breakfast: "Breakfast burrito with eggs, cheese, and sausage",
		Lunch:     "Beef and rice stir-fry",
		Dinner:    "Grilled chicken with pasta and vegetables",
		Snacks:    "Trail mix, protein shake",
	},
	{
		Breakfast: "Greek yogurt parfait with granola and fruit",
		Lunch:     "Turkey sandwich with whole grain bread",
		Dinner:    "Baked cod with rice and vegetables",
		Snacks:    "Protein bar, mixed nuts, apple",
	},
	{
		Breakfast: "Omelet with cheese, vegetables, and toast",
		Lunch:     "Chicken and quinoa bowl",
		Dinner:    "Lean beef with potatoes and asparagus",
		Snacks:    "Protein shake, Greek yogurt, berries",
	},
	{
		Breakfast: "Protein smoothie bowl with toppings",
		Lunch:     "Salmon with rice and vegetables",
		Dinner:    "Pork tenderloin with sweet potato and broccoli",
		Snacks:    "Protein bar, trail mix, banana",
	},
}

var balancedTemplates = []Meals{
	{
		Breakfast: "Greek yogurt with berries and granola",
		Lunch:     "Grilled chicken with quinoa and vegetables",
		Dinner:    "Baked salmon with sweet potato and greens",
		Snacks:    "Protein shake, mixed nuts",
	},
	{
		Breakfast: "Scrambled eggs with whole grain toast and avocado",
		Lunch:     "Turkey and vegetable wrap",
		Dinner:    "Lean beef with brown rice and broccoli",
		Snacks:    "Greek yogurt, apple",
	},
	{
		Breakfast: "Oatmeal with protein powder and fruit",
		Lunch:     "Chicken salad with olive oil dressing",
		Dinner:    "Grilled fish with quinoa and vegetables",
		Snacks:    "Cottage cheese, almonds",
	},
	{
		Breakfast: "Protein smoothie with spinach and banana",
		Lunch:     "Salmon and rice bowl",
		Dinner:    "Chicken breast with sweet potato and asparagus",
		Snacks:    "Hard-boiled eggs, mixed berries",
	},
	{
		Breakfast: "Whole grain toast with eggs and vegetables",
		Lunch:     "Tuna salad with mixed greens",
		Dinner:    "Pork tenderloin with brown rice and green beans",
		Snacks:    "Protein bar, Greek yogurt",
	},
	{
		Breakfast: "Cottage cheese with fruit and nuts",
		Lunch:     "Chicken and vegetable stir-fry",
		Dinner:    "Baked cod with quinoa and vegetables",
		Snacks:    "Protein shake, trail mix",
	},
	{
		Breakfast: "Egg white omelet with vegetables and cheese",
		Lunch:     "Grilled chicken Caesar salad",
		Dinner:    "Lean beef with potatoes and mixed vegetables",
		Snacks:    "Greek yogurt, protein bar",
	},
}
