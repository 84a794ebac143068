package profoodie

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IcodeAlpha/profoodie/internal/config"
	"github.com/IcodeAlpha/profoodie/internal/session"
	"github.com/IcodeAlpha/profoodie/internal/tracker"
)

var weekEnd string

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show totals for the 7 days ending at a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		end, err := normalizeDate(weekEnd)
		if err != nil {
			return err
		}
		return withApp(func(cfg config.Config, store *tracker.Store, sess *session.Session) error {
			week, err := store.WeeklyNutrition(end)
			if err != nil {
				return err
			}
			g := store.Goals()
			fmt.Fprintf(cmd.OutOrStdout(), "Week ending %s\nCalories: %.0f kcal (goal %d/day)\nProtein: %.1f g\nCarbs: %.1f g\nFat: %.1f g\n",
				end, week.Calories, g.Calories, week.Protein, week.Carbs, week.Fat)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weekCmd)
	weekCmd.Flags().StringVar(&weekEnd, "end", "", "Window end date YYYY-MM-DD (default today)")
}
