package estimate

import (
	"context"
	"strings"
	"time"
)

// Mock is the simulated estimator used in place of a real inference service.
// It returns canned payloads per input mode after a fixed delay and, aside
// from context cancellation, never fails.
type Mock struct {
	// Delay simulates processing time. Zero means respond immediately.
	Delay time.Duration
}

func (m *Mock) Estimate(ctx context.Context, req Request) (Result, error) {
	if m.Delay > 0 {
		timer := time.NewTimer(m.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-timer.C:
		}
	}

	var res Result
	switch req.Mode {
	case ModePhoto:
		res = Result{
			FoodName:   "Mixed Cuisine Plate",
			Confidence: 92,
			Nutrition:  Nutrition{Calories: 520, Protein: 28, Carbs: 45, Fat: 22, Fiber: 8, Sodium: 680},
			Ingredients: []string{
				"Grain-based staple", "Leafy greens", "Grilled protein",
				"Onions", "Tomatoes", "Cooking oil",
			},
			Insights: []string{
				"High in protein for muscle building",
				"Good source of iron from leafy greens",
				"Complex carbs provide sustained energy",
				"Consider adding more vegetables for fiber",
			},
		}
	case ModeIngredients:
		res = Result{
			FoodName:    "Custom recipe",
			Confidence:  88,
			Nutrition:   Nutrition{Calories: 420, Protein: 25, Carbs: 40, Fat: 15, Fiber: 7, Sodium: 480},
			Ingredients: splitIngredients(req.Payload),
			Insights: []string{
				"Fresh ingredients provide better nutrition",
				"Good balance of macronutrients",
				"Cooking method affects final nutrition",
			},
		}
	default:
		lower := strings.ToLower(req.Payload)
		if strings.Contains(lower, "rice") || strings.Contains(lower, "grain") || strings.Contains(lower, "staple") {
			res = Result{
				FoodName:    "Grain-based meal",
				Confidence:  85,
				Nutrition:   Nutrition{Calories: 380, Protein: 12, Carbs: 68, Fat: 8, Fiber: 4, Sodium: 420},
				Ingredients: []string{"Grain flour", "Water", "Salt"},
				Insights: []string{
					"Good source of complex carbohydrates",
					"Often gluten-free depending on grain type",
					"Pair with protein and vegetables for a balanced meal",
				},
			}
		} else {
			res = Result{
				FoodName:    "Mixed meal",
				Confidence:  78,
				Nutrition:   Nutrition{Calories: 450, Protein: 20, Carbs: 35, Fat: 18, Fiber: 6, Sodium: 550},
				Ingredients: []string{"Various ingredients"},
				Insights: []string{
					"Well-balanced macronutrients",
					"Good protein content",
					"Consider portion size for your goals",
				},
			}
		}
	}

	return res.Scaled(PortionMultiplier(req.PortionSize)), nil
}

func splitIngredients(payload string) []string {
	parts := strings.Split(payload, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"Various ingredients"}
	}
	return out
}
