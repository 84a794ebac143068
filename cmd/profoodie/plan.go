package profoodie

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/IcodeAlpha/profoodie/internal/config"
	"github.com/IcodeAlpha/profoodie/internal/session"
	"github.com/IcodeAlpha/profoodie/internal/tracker"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage the weekly meal plan",
}

var (
	planDate   string
	planSlot   string
	planRecipe string
)

var planSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Plan a recipe for a date and slot",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := normalizeDate(planDate)
		if err != nil {
			return err
		}
		return withApp(func(cfg config.Config, store *tracker.Store, sess *session.Session) error {
			recipe := store.RecipeByID(planRecipe)
			if recipe == nil {
				return fmt.Errorf("recipe %q not found", planRecipe)
			}
			if err := store.SetPlanSlot(date, planSlot, recipe); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Planned %s for %s %s\n", recipe.Name, date, planSlot)
			return nil
		})
	},
}

var planClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear a planned slot",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := normalizeDate(planDate)
		if err != nil {
			return err
		}
		return withApp(func(cfg config.Config, store *tracker.Store, sess *session.Session) error {
			if err := store.SetPlanSlot(date, planSlot, nil); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s %s\n", date, planSlot)
			return nil
		})
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the meal plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(cfg config.Config, store *tracker.Store, sess *session.Session) error {
			plan := store.Plan()
			if len(plan) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing planned")
				return nil
			}
			dates := make([]string, 0, len(plan))
			for date := range plan {
				dates = append(dates, date)
			}
			sort.Strings(dates)
			for _, date := range dates {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", date)
				slots := plan[date]
				for _, slot := range cfg.MealSlots {
					if r, ok := slots[slot]; ok {
						fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s (%.0f kcal)\n", slot, r.Name, r.Calories)
					}
				}
				// Slots outside the configured labels still show up.
				labels := make([]string, 0, len(slots))
				for slot := range slots {
					if !containsSlot(cfg.MealSlots, slot) {
						labels = append(labels, slot)
					}
				}
				sort.Strings(labels)
				for _, slot := range labels {
					r := slots[slot]
					fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s (%.0f kcal)\n", slot, r.Name, r.Calories)
				}
			}
			return nil
		})
	},
}

// planPickCmd both plans the recipe and logs it as a meal. These are two
// independent writes with no transaction between them: if the process dies
// after the first, the plan is updated but the log is not.
var planPickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Plan a recipe for a slot and log it as a meal",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := normalizeDate(planDate)
		if err != nil {
			return err
		}
		return withApp(func(cfg config.Config, store *tracker.Store, sess *session.Session) error {
			recipe := store.RecipeByID(planRecipe)
			if recipe == nil {
				return fmt.Errorf("recipe %q not found", planRecipe)
			}
			if err := store.SetPlanSlot(date, planSlot, recipe); err != nil {
				return err
			}
			meal, err := store.AddMeal(recipe.Meal(planSlot, date))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Planned and logged %s for %s %s [%s]\n", recipe.Name, date, planSlot, meal.ID)
			return nil
		})
	},
}

func containsSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.AddCommand(planSetCmd, planClearCmd, planShowCmd, planPickCmd)

	for _, cmd := range []*cobra.Command{planSetCmd, planClearCmd, planPickCmd} {
		cmd.Flags().StringVar(&planDate, "date", "", "Date YYYY-MM-DD (default today)")
		cmd.Flags().StringVar(&planSlot, "slot", "", "Meal slot (breakfast|lunch|dinner|snacks)")
		_ = cmd.MarkFlagRequired("slot")
	}
	planSetCmd.Flags().StringVar(&planRecipe, "recipe", "", "Recipe id")
	planPickCmd.Flags().StringVar(&planRecipe, "recipe", "", "Recipe id")
	_ = planSetCmd.MarkFlagRequired("recipe")
	_ = planPickCmd.MarkFlagRequired("recipe")
}
