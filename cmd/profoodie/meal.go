package profoodie

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IcodeAlpha/profoodie/internal/config"
	"github.com/IcodeAlpha/profoodie/internal/model"
	"github.com/IcodeAlpha/profoodie/internal/session"
	"github.com/IcodeAlpha/profoodie/internal/tracker"
)

var (
	logName     string
	logCalories float64
	logProtein  float64
	logCarbs    float64
	logFat      float64
	logSlot     string
	logDate     string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a meal",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateNonNegative("calories", logCalories); err != nil {
			return err
		}
		if err := validateNonNegative("protein", logProtein); err != nil {
			return err
		}
		if err := validateNonNegative("carbs", logCarbs); err != nil {
			return err
		}
		if err := validateNonNegative("fat", logFat); err != nil {
			return err
		}
		date, err := normalizeDate(logDate)
		if err != nil {
			return err
		}
		return withApp(func(cfg config.Config, store *tracker.Store, sess *session.Session) error {
			meal, err := store.AddMeal(model.Meal{
				Name:     logName,
				Calories: logCalories,
				Protein:  logProtein,
				Carbs:    logCarbs,
				Fat:      logFat,
				Time:     logSlot,
				Date:     date,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%.0f kcal) for %s %s [%s]\n", meal.Name, meal.Calories, meal.Date, meal.Time, meal.ID)
			return nil
		})
	},
}

var mealsCmd = &cobra.Command{
	Use:   "meals",
	Short: "List and remove logged meals",
}

var mealsDate string

var mealsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged meals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(cfg config.Config, store *tracker.Store, sess *session.Session) error {
			meals := store.Meals()
			if mealsDate != "" {
				date, err := normalizeDate(mealsDate)
				if err != nil {
					return err
				}
				filtered := meals[:0]
				for _, m := range meals {
					if m.Date == date {
						filtered = append(filtered, m)
					}
				}
				meals = filtered
			}
			if len(meals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No meals logged")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tSLOT\tNAME\tKCAL\tP\tC\tF")
			for _, m := range meals {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%.0f\t%.1f\t%.1f\t%.1f\n",
					m.ID, m.Date, m.Time, m.Name, m.Calories, m.Protein, m.Carbs, m.Fat)
			}
			return nil
		})
	},
}

var mealsRemoveCmd = &cobra.Command{
	Use:   "remove <meal-id>",
	Short: "Remove a logged meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(cfg config.Config, store *tracker.Store, sess *session.Session) error {
			if err := store.RemoveMeal(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed meal %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(logCmd, mealsCmd)
	mealsCmd.AddCommand(mealsListCmd, mealsRemoveCmd)

	logCmd.Flags().StringVar(&logName, "name", "", "Meal name")
	logCmd.Flags().Float64Var(&logCalories, "calories", 0, "Calories")
	logCmd.Flags().Float64Var(&logProtein, "protein", 0, "Protein grams")
	logCmd.Flags().Float64Var(&logCarbs, "carbs", 0, "Carb grams")
	logCmd.Flags().Float64Var(&logFat, "fat", 0, "Fat grams")
	logCmd.Flags().StringVar(&logSlot, "slot", "snacks", "Meal slot (breakfast|lunch|dinner|snacks)")
	logCmd.Flags().StringVar(&logDate, "date", "", "Date YYYY-MM-DD (default today)")
	_ = logCmd.MarkFlagRequired("name")
	_ = logCmd.MarkFlagRequired("calories")

	mealsListCmd.Flags().StringVar(&mealsDate, "date", "", "Only meals for this date YYYY-MM-DD")
}
