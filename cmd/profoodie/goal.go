package profoodie

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IcodeAlpha/profoodie/internal/config"
	"github.com/IcodeAlpha/profoodie/internal/session"
	"github.com/IcodeAlpha/profoodie/internal/tracker"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Show or recompute personalized daily goals",
}

var goalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active daily goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(cfg config.Config, store *tracker.Store, sess *session.Session) error {
			g := store.Goals()
			fmt.Fprintf(cmd.OutOrStdout(), "Calories: %d kcal\nProtein: %d g\nCarbs: %d g\nFat: %d g\nFiber: %d g\nWater: %.1f L\n",
				g.Calories, g.Protein, g.Carbs, g.Fat, g.Fiber, g.Water)
			if user := sess.Current(); user == nil || !user.OnboardingCompleted {
				fmt.Fprintln(cmd.OutOrStdout(), "(defaults — complete onboarding to personalize)")
			}
			return nil
		})
	},
}

var goalRecalcCmd = &cobra.Command{
	Use:   "recalc",
	Short: "Recompute goals from the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(cfg config.Config, store *tracker.Store, sess *session.Session) error {
			if err := store.RecalculateGoals(); err != nil {
				return err
			}
			g := store.Goals()
			fmt.Fprintf(cmd.OutOrStdout(), "Goals: %d kcal, %dP/%dC/%dF, %dg fiber, %.1fL water\n",
				g.Calories, g.Protein, g.Carbs, g.Fat, g.Fiber, g.Water)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalShowCmd, goalRecalcCmd)
}
