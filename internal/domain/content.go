package domain

// Tip is a coach-authored content card.
type Tip struct {
	ID       string `bson:"id" json:"id"`
	Title    string `bson:"title" json:"title"`
	Category string `bson:"category" json:"category"` // e.g. "Mindset", "Nutrition"
	Content  string `bson:"content" json:"content"`
	Date     string `bson:"date" json:"date"`
}

// MealType is the slot of the day a meal belongs to.
type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
	MealSnack     MealType = "Snack"
)

// Macros holds grams per macronutrient.
type Macros struct {
	Protein float64 `bson:"protein" json:"protein"`
	Carbs   float64 `bson:"carbs" json:"carbs"`
	Fat     float64 `bson:"fat" json:"fat"`
}

type Meal struct {
	ID       string   `bson:"id" json:"id"`
	Type     MealType `bson:"type" json:"type"`
	Name     string   `bson:"name" json:"name"`
	Calories int      `bson:"calories" json:"calories"`
	Macros   Macros   `bson:"macros" json:"macros"`
}

// NutritionPlan is the daily meal plan for one client. Read-only at runtime.
type NutritionPlan struct {
	ID                string `bson:"id" json:"id"`
	DailyGoalCalories int    `bson:"dailyGoalCalories" json:"dailyGoalCalories"`
	Meals             []Meal `bson:"meals" json:"meals"`
}
