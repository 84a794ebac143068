// Package estimate defines the AI nutrition-estimation port. The deterministic
// parts live here: the portion multiplier table, result scaling, and the
// conversion of an accepted estimate into a logged meal. The fabricated
// content itself stays behind the Estimator interface.
package estimate

import (
	"context"
	"math"

	"github.com/IcodeAlpha/profoodie/internal/model"
)

type Mode string

const (
	ModePhoto       Mode = "photo"
	ModeDescription Mode = "description"
	ModeIngredients Mode = "ingredients"
)

// Request describes one estimation call: what kind of input the user gave,
// the input itself, and the portion size to scale for.
type Request struct {
	Mode        Mode   `json:"mode"`
	Payload     string `json:"payload"`
	PortionSize string `json:"portionSize"`
}

// Nutrition is the estimated nutrition payload for a medium portion.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sodium   float64 `json:"sodium"`
}

// Result is what an estimator returns. Confidence is a 0-100 score.
type Result struct {
	FoodName    string    `json:"foodName"`
	Confidence  int       `json:"confidence"`
	Nutrition   Nutrition `json:"nutrition"`
	Ingredients []string  `json:"ingredients"`
	Insights    []string  `json:"insights"`
}

// Estimator is the pluggable external service. Implementations may block to
// simulate processing latency and must honor ctx cancellation.
type Estimator interface {
	Estimate(ctx context.Context, req Request) (Result, error)
}

var portionMultipliers = map[string]float64{
	"small":       0.7,
	"medium":      1.0,
	"large":       1.3,
	"extra-large": 1.6,
}

// PortionMultiplier maps a portion size label to its scaling factor.
// Unrecognized labels scale by 1.0.
func PortionMultiplier(size string) float64 {
	if mult, ok := portionMultipliers[size]; ok {
		return mult
	}
	return 1.0
}

// Scaled returns the nutrition multiplied by mult, each field rounded to the
// nearest whole unit.
func (n Nutrition) Scaled(mult float64) Nutrition {
	return Nutrition{
		Calories: math.Round(n.Calories * mult),
		Protein:  math.Round(n.Protein * mult),
		Carbs:    math.Round(n.Carbs * mult),
		Fat:      math.Round(n.Fat * mult),
		Fiber:    math.Round(n.Fiber * mult),
		Sodium:   math.Round(n.Sodium * mult),
	}
}

// Scaled returns a copy of the result with its nutrition scaled by mult.
func (r Result) Scaled(mult float64) Result {
	r.Nutrition = r.Nutrition.Scaled(mult)
	return r
}

// Meal converts an accepted estimate into a meal ready for the tracker, using
// the given slot label and date key.
func (r Result) Meal(slot, date string) model.Meal {
	return model.Meal{
		Name:     r.FoodName,
		Calories: r.Nutrition.Calories,
		Protein:  r.Nutrition.Protein,
		Carbs:    r.Nutrition.Carbs,
		Fat:      r.Nutrition.Fat,
		Time:     slot,
		Date:     date,
	}
}
