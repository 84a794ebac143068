package model

import "time"

// Meal is a logged food event. Meals are immutable once created; the only
// lifecycle operations are add and remove.
type Meal struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Time     string  `json:"time"`
	Date     string  `json:"date"`
}

// Recipe is a reusable meal template. Nutrition values are per serving.
type Recipe struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Ingredients  []string         `json:"ingredients"`
	Instructions []string         `json:"instructions"`
	Calories     float64          `json:"calories"`
	Protein      float64          `json:"protein"`
	Carbs        float64          `json:"carbs"`
	Fat          float64          `json:"fat"`
	Image        string           `json:"image,omitempty"`
	CookTime     int              `json:"cookTime"`
	Servings     int              `json:"servings"`
	Difficulty   string           `json:"difficulty,omitempty"`
	Cuisine      string           `json:"cuisine,omitempty"`
	Tags         []string         `json:"tags,omitempty"`
	Description  string           `json:"description,omitempty"`
	Tips         []string         `json:"tips,omitempty"`
	Nutrition    *RecipeNutrition `json:"nutrition,omitempty"`
}

// Meal converts the recipe's per-serving nutrition into a loggable meal for
// the given slot and date.
func (r Recipe) Meal(slot, date string) Meal {
	return Meal{
		Name:     r.Name,
		Calories: r.Calories,
		Protein:  r.Protein,
		Carbs:    r.Carbs,
		Fat:      r.Fat,
		Time:     slot,
		Date:     date,
	}
}

// RecipeNutrition carries the optional extended per-serving values.
type RecipeNutrition struct {
	Fiber    float64 `json:"fiber,omitempty"`
	Sodium   float64 `json:"sodium,omitempty"`
	Sugar    float64 `json:"sugar,omitempty"`
	Calcium  float64 `json:"calcium,omitempty"`
	Iron     float64 `json:"iron,omitempty"`
	VitaminC float64 `json:"vitaminC,omitempty"`
}

// MealPlan maps a date key ("2006-01-02") to a slot label to the planned
// recipe. Dates with no populated slots are absent from the map.
type MealPlan map[string]map[string]Recipe

// PersonalizedGoals are the daily targets derived from the user profile.
type PersonalizedGoals struct {
	Calories int     `json:"calories"`
	Protein  int     `json:"protein"`
	Carbs    int     `json:"carbs"`
	Fat      int     `json:"fat"`
	Fiber    int     `json:"fiber"`
	Water    float64 `json:"water"`
}

// NutritionSummary is a derived aggregate over logged meals.
type NutritionSummary struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

const (
	ActivitySedentary = "sedentary"
	ActivityLight     = "light"
	ActivityModerate  = "moderate"
	ActivityVery      = "very"
	ActivityExtra     = "extra"
)

const (
	GoalLoseWeight    = "lose-weight"
	GoalGainWeight    = "gain-weight"
	GoalMaintain      = "maintain"
	GoalBuildMuscle   = "build-muscle"
	GoalImproveHealth = "improve-health"
)

// Profile holds the measurements and preferences the goal engine works from.
// The validate tags define completeness: an incomplete profile is skipped, not
// rejected.
type Profile struct {
	Age                 int      `json:"age" validate:"required,gt=0"`
	Gender              string   `json:"gender" validate:"required"`
	HeightCm            float64  `json:"height" validate:"required,gt=0"`
	WeightKg            float64  `json:"weight" validate:"required,gt=0"`
	ActivityLevel       string   `json:"activityLevel" validate:"required"`
	Goal                string   `json:"goal" validate:"required"`
	DietaryRestrictions []string `json:"dietaryRestrictions,omitempty"`
	PreferredMeals      []string `json:"preferredMeals,omitempty"`
}

// User is the session identity owned by the session provider.
type User struct {
	ID                  string        `json:"id"`
	Email               string        `json:"email"`
	Name                string        `json:"name"`
	IsPremium           bool          `json:"isPremium"`
	OnboardingCompleted bool          `json:"onboardingCompleted"`
	Profile             *Profile      `json:"profile,omitempty"`
	Subscription        *Subscription `json:"subscription,omitempty"`
}

type Subscription struct {
	Plan      string     `json:"plan"`
	Status    string     `json:"status"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// FastingSession is ephemeral tracker state; it is never persisted. At most
// one session is active at a time.
type FastingSession struct {
	ID          string     `json:"id"`
	StartTime   time.Time  `json:"startTime"`
	EndTime     *time.Time `json:"endTime,omitempty"`
	TargetHours float64    `json:"targetHours"`
	IsActive    bool       `json:"isActive"`
}
