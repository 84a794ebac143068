package profoodie

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/IcodeAlpha/profoodie/internal/config"
	"github.com/IcodeAlpha/profoodie/internal/session"
	"github.com/IcodeAlpha/profoodie/internal/tracker"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's intake against your goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := normalizeDate(todayDate)
		if err != nil {
			return err
		}
		return withApp(func(cfg config.Config, store *tracker.Store, sess *session.Session) error {
			day := store.DailyNutrition(date)
			g := store.Goals()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Nutrition for %s\n", date)
			printProgress(out, "Calories", day.Calories, float64(g.Calories), "kcal")
			printProgress(out, "Protein", day.Protein, float64(g.Protein), "g")
			printProgress(out, "Carbs", day.Carbs, float64(g.Carbs), "g")
			printProgress(out, "Fat", day.Fat, float64(g.Fat), "g")
			fmt.Fprintf(out, "Fiber goal: %d g, water goal: %.1f L\n", g.Fiber, g.Water)
			return nil
		})
	},
}

func printProgress(out io.Writer, label string, actual, target float64, unit string) {
	if target <= 0 {
		fmt.Fprintf(out, "%-9s %.0f %s\n", label, actual, unit)
		return
	}
	pct := actual / target * 100
	line := fmt.Sprintf("%-9s %.0f / %.0f %s (%.0f%%)", label, actual, target, unit, pct)
	switch {
	case pct > 110:
		fmt.Fprintln(out, color.RedString("%s", line))
	case pct >= 90:
		fmt.Fprintln(out, color.GreenString("%s", line))
	default:
		fmt.Fprintln(out, line)
	}
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
}
