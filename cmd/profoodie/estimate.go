package profoodie

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IcodeAlpha/profoodie/internal/config"
	"github.com/IcodeAlpha/profoodie/internal/estimate"
	"github.com/IcodeAlpha/profoodie/internal/session"
	"github.com/IcodeAlpha/profoodie/internal/tracker"
)

var (
	estimateMode    string
	estimateInput   string
	estimatePortion string
	estimateLog     bool
	estimateSlot    string
	estimateDate    string
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate nutrition from a photo path, description or ingredient list",
	Long:  "estimate runs the AI nutrition estimator (simulated locally) and optionally logs the accepted result as a meal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := estimate.Mode(strings.ToLower(strings.TrimSpace(estimateMode)))
		switch mode {
		case estimate.ModePhoto, estimate.ModeDescription, estimate.ModeIngredients:
		default:
			return fmt.Errorf("invalid --mode %q (expected photo, description or ingredients)", estimateMode)
		}
		date, err := normalizeDate(estimateDate)
		if err != nil {
			return err
		}
		return withApp(func(cfg config.Config, store *tracker.Store, sess *session.Session) error {
			estimator := &estimate.Mock{Delay: cfg.EstimateDelay()}
			res, err := estimator.Estimate(cmd.Context(), estimate.Request{
				Mode:        mode,
				Payload:     estimateInput,
				PortionSize: estimatePortion,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (confidence %d%%)\n", res.FoodName, res.Confidence)
			n := res.Nutrition
			fmt.Fprintf(out, "Calories: %.0f kcal\nProtein: %.0f g\nCarbs: %.0f g\nFat: %.0f g\nFiber: %.0f g\nSodium: %.0f mg\n",
				n.Calories, n.Protein, n.Carbs, n.Fat, n.Fiber, n.Sodium)
			if len(res.Ingredients) > 0 {
				fmt.Fprintf(out, "Ingredients: %s\n", strings.Join(res.Ingredients, ", "))
			}
			for _, insight := range res.Insights {
				fmt.Fprintf(out, "  * %s\n", insight)
			}

			if estimateLog {
				meal, err := store.AddMeal(res.Meal(estimateSlot, date))
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Logged as %s %s [%s]\n", meal.Date, meal.Time, meal.ID)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(estimateCmd)
	estimateCmd.Flags().StringVar(&estimateMode, "mode", "description", "Input mode (photo|description|ingredients)")
	estimateCmd.Flags().StringVar(&estimateInput, "input", "", "Photo path, meal description or comma-separated ingredients")
	estimateCmd.Flags().StringVar(&estimatePortion, "portion", "medium", "Portion size (small|medium|large|extra-large)")
	estimateCmd.Flags().BoolVar(&estimateLog, "log", false, "Log the estimate as a meal")
	estimateCmd.Flags().StringVar(&estimateSlot, "slot", "snacks", "Meal slot when logging")
	estimateCmd.Flags().StringVar(&estimateDate, "date", "", "Date YYYY-MM-DD when logging (default today)")
	_ = estimateCmd.MarkFlagRequired("input")
}
