package tracker

import (
	"fmt"
	"time"

	"github.com/IcodeAlpha/profoodie/internal/model"
)

// DailyNutrition sums calories and macros over exactly the meals logged for
// the given date. The aggregate is computed fresh on every read and never
// persisted.
func (s *Store) DailyNutrition(date string) model.NutritionSummary {
	var sum model.NutritionSummary
	for _, m := range s.meals {
		if m.Date != date {
			continue
		}
		sum.Calories += m.Calories
		sum.Protein += m.Protein
		sum.Carbs += m.Carbs
		sum.Fat += m.Fat
	}
	return sum
}

// TodayNutrition is DailyNutrition for the current calendar date.
func (s *Store) TodayNutrition() model.NutritionSummary {
	return s.DailyNutrition(time.Now().Format(dateLayout))
}

// WeeklyNutrition sums over the seven-day window ending at endDate inclusive.
func (s *Store) WeeklyNutrition(endDate string) (model.NutritionSummary, error) {
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return model.NutritionSummary{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", endDate)
	}

	var sum model.NutritionSummary
	for offset := 0; offset < 7; offset++ {
		day := s.DailyNutrition(end.AddDate(0, 0, -offset).Format(dateLayout))
		sum.Calories += day.Calories
		sum.Protein += day.Protein
		sum.Carbs += day.Carbs
		sum.Fat += day.Fat
	}
	return sum, nil
}
