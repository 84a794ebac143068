// Package goals derives daily calorie and macronutrient targets from a user
// profile using the Mifflin-St Jeor equation. Calculation is pure: the same
// profile always yields the same goals.
package goals

import (
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/IcodeAlpha/profoodie/internal/model"
)

var activityMultipliers = map[string]float64{
	model.ActivitySedentary: 1.2,
	model.ActivityLight:     1.375,
	model.ActivityModerate:  1.55,
	model.ActivityVery:      1.725,
	model.ActivityExtra:     1.9,
}

// Unrecognized activity levels fall back to moderate rather than failing.
const defaultActivityMultiplier = 1.55

var validate = validator.New()

// Default returns the targets used before a profile exists.
func Default() model.PersonalizedGoals {
	return model.PersonalizedGoals{
		Calories: 2000,
		Protein:  150,
		Carbs:    250,
		Fat:      65,
		Fiber:    25,
		Water:    2.5,
	}
}

// Complete reports whether the profile carries everything the calculation
// needs: positive age, height and weight, plus gender, activity level and goal.
func Complete(p *model.Profile) bool {
	if p == nil {
		return false
	}
	return validate.Struct(p) == nil
}

// Calculate derives personalized goals from the profile. It returns ok=false
// when the profile is missing or incomplete, in which case the caller keeps
// its previous goals.
func Calculate(p *model.Profile) (model.PersonalizedGoals, bool) {
	if !Complete(p) {
		return model.PersonalizedGoals{}, false
	}

	// Mifflin-St Jeor basal metabolic rate.
	var bmr float64
	if p.Gender == model.GenderMale {
		bmr = 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age) + 5
	} else {
		bmr = 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age) - 161
	}

	mult, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		mult = defaultActivityMultiplier
	}
	tdee := bmr * mult

	switch p.Goal {
	case model.GoalLoseWeight:
		tdee *= 0.85
	case model.GoalGainWeight:
		tdee *= 1.15
	case model.GoalBuildMuscle:
		tdee *= 1.10
	}

	calories := int(math.Round(tdee))

	proteinPerKg := 1.8
	switch p.Goal {
	case model.GoalBuildMuscle:
		proteinPerKg = 2.2
	case model.GoalLoseWeight:
		proteinPerKg = 2.0
	}
	protein := int(math.Round(p.WeightKg * proteinPerKg))

	fatPct := 0.28
	if p.Goal == model.GoalLoseWeight {
		fatPct = 0.25
	}
	fat := int(math.Round(float64(calories) * fatPct / 9))

	// Carbs take whatever calories remain after protein and fat. The
	// remainder can only go negative for pathological profiles; clamp it.
	carbs := int(math.Round(float64(calories-protein*4-fat*9) / 4))
	if carbs < 0 {
		carbs = 0
	}

	fiber := int(math.Round(float64(calories) / 1000 * 14))

	// 35 ml per kg body weight, to one decimal.
	water := math.Round(p.WeightKg*35/1000*10) / 10

	return model.PersonalizedGoals{
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		Fiber:    fiber,
		Water:    water,
	}, true
}
