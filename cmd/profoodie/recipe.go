package profoodie

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IcodeAlpha/profoodie/internal/config"
	"github.com/IcodeAlpha/profoodie/internal/model"
	"github.com/IcodeAlpha/profoodie/internal/session"
	"github.com/IcodeAlpha/profoodie/internal/tracker"
)

var recipeCmd = &cobra.Command{
	Use:   "recipe",
	Short: "Browse and manage recipes",
}

var (
	recipeName         string
	recipeCalories     float64
	recipeProtein      float64
	recipeCarbs        float64
	recipeFat          float64
	recipeCookTime     int
	recipeServings     int
	recipeIngredients  []string
	recipeInstructions []string
	recipeCuisine      string
	recipeTags         []string
)

var recipeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipes (built-in and your own)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(cfg config.Config, store *tracker.Store, sess *session.Session) error {
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tKCAL\tP\tC\tF\tSERVES")
			for _, r := range store.Recipes() {
				marker := ""
				if tracker.IsSeedRecipe(r.ID) {
					marker = " (built-in)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s%s\t%.0f\t%.1f\t%.1f\t%.1f\t%d\n",
					r.ID, r.Name, marker, r.Calories, r.Protein, r.Carbs, r.Fat, r.Servings)
			}
			return nil
		})
	},
}

var recipeShowCmd = &cobra.Command{
	Use:   "show <recipe-id>",
	Short: "Show a recipe with ingredients and instructions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(cfg config.Config, store *tracker.Store, sess *session.Session) error {
			r := store.RecipeByID(args[0])
			if r == nil {
				return fmt.Errorf("recipe %q not found", args[0])
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", r.Name)
			if r.Cuisine != "" {
				fmt.Fprintf(out, "Cuisine: %s\n", r.Cuisine)
			}
			if len(r.Tags) > 0 {
				fmt.Fprintf(out, "Tags: %s\n", strings.Join(r.Tags, ", "))
			}
			fmt.Fprintf(out, "Per serving: %.0f kcal, %.1fP/%.1fC/%.1fF\nCook time: %d min, serves %d\n",
				r.Calories, r.Protein, r.Carbs, r.Fat, r.CookTime, r.Servings)
			fmt.Fprintln(out, "\nIngredients:")
			for _, ing := range r.Ingredients {
				fmt.Fprintf(out, "  - %s\n", ing)
			}
			fmt.Fprintln(out, "\nInstructions:")
			for i, step := range r.Instructions {
				fmt.Fprintf(out, "  %d. %s\n", i+1, step)
			}
			return nil
		})
	},
}

var recipeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a recipe",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateNonNegative("calories", recipeCalories); err != nil {
			return err
		}
		if err := validateNonNegative("protein", recipeProtein); err != nil {
			return err
		}
		if err := validateNonNegative("carbs", recipeCarbs); err != nil {
			return err
		}
		if err := validateNonNegative("fat", recipeFat); err != nil {
			return err
		}
		return withApp(func(cfg config.Config, store *tracker.Store, sess *session.Session) error {
			recipe, err := store.AddRecipe(model.Recipe{
				Name:         recipeName,
				Calories:     recipeCalories,
				Protein:      recipeProtein,
				Carbs:        recipeCarbs,
				Fat:          recipeFat,
				CookTime:     recipeCookTime,
				Servings:     recipeServings,
				Ingredients:  recipeIngredients,
				Instructions: recipeInstructions,
				Cuisine:      recipeCuisine,
				Tags:         recipeTags,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added recipe %s [%s]\n", recipe.Name, recipe.ID)
			return nil
		})
	},
}

var recipeRemoveCmd = &cobra.Command{
	Use:   "remove <recipe-id>",
	Short: "Remove a recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(cfg config.Config, store *tracker.Store, sess *session.Session) error {
			if err := store.RemoveRecipe(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed recipe %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(recipeCmd)
	recipeCmd.AddCommand(recipeListCmd, recipeShowCmd, recipeAddCmd, recipeRemoveCmd)

	recipeAddCmd.Flags().StringVar(&recipeName, "name", "", "Recipe name")
	recipeAddCmd.Flags().Float64Var(&recipeCalories, "calories", 0, "Calories per serving")
	recipeAddCmd.Flags().Float64Var(&recipeProtein, "protein", 0, "Protein grams per serving")
	recipeAddCmd.Flags().Float64Var(&recipeCarbs, "carbs", 0, "Carb grams per serving")
	recipeAddCmd.Flags().Float64Var(&recipeFat, "fat", 0, "Fat grams per serving")
	recipeAddCmd.Flags().IntVar(&recipeCookTime, "cook-time", 0, "Cook time in minutes")
	recipeAddCmd.Flags().IntVar(&recipeServings, "servings", 1, "Number of servings")
	recipeAddCmd.Flags().StringArrayVar(&recipeIngredients, "ingredient", nil, "Ingredient (repeatable)")
	recipeAddCmd.Flags().StringArrayVar(&recipeInstructions, "instruction", nil, "Instruction step (repeatable)")
	recipeAddCmd.Flags().StringVar(&recipeCuisine, "cuisine", "", "Cuisine label")
	recipeAddCmd.Flags().StringSliceVar(&recipeTags, "tag", nil, "Tag (repeatable)")
	_ = recipeAddCmd.MarkFlagRequired("name")
	_ = recipeAddCmd.MarkFlagRequired("calories")
}
