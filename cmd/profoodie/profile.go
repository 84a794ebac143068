package profoodie

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IcodeAlpha/profoodie/internal/config"
	"github.com/IcodeAlpha/profoodie/internal/model"
	"github.com/IcodeAlpha/profoodie/internal/session"
	"github.com/IcodeAlpha/profoodie/internal/tracker"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the signed-in user and nutrition profile",
}

var (
	profileEmail    string
	profileName     string
	profileAge      int
	profileGender   string
	profileHeight   float64
	profileWeight   float64
	profileActivity string
	profileGoal     string
)

var profileRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a local account and sign in",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(cfg config.Config, store *tracker.Store, sess *session.Session) error {
			user, err := sess.Register(profileEmail, profileName)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s (%s)\nRun 'profoodie profile onboard' to set up personalized goals.\n", user.Name, user.Email)
			return nil
		})
	},
}

var profileLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(cfg config.Config, store *tracker.Store, sess *session.Session) error {
			user, err := sess.Login(profileEmail)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", user.Email)
			return nil
		})
	},
}

var profileLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the saved session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(cfg config.Config, store *tracker.Store, sess *session.Session) error {
			if err := sess.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the signed-in user and profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(cfg config.Config, store *tracker.Store, sess *session.Session) error {
			user := sess.Current()
			if user == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\nEmail: %s\nOnboarding completed: %v\n", user.Name, user.Email, user.OnboardingCompleted)
			if p := user.Profile; p != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Age: %d\nGender: %s\nHeight: %.0f cm\nWeight: %.1f kg\nActivity: %s\nGoal: %s\n",
					p.Age, p.Gender, p.HeightCm, p.WeightKg, p.ActivityLevel, p.Goal)
			}
			return nil
		})
	},
}

func profileFromFlags() model.Profile {
	return model.Profile{
		Age:           profileAge,
		Gender:        profileGender,
		HeightCm:      profileHeight,
		WeightKg:      profileWeight,
		ActivityLevel: profileActivity,
		Goal:          profileGoal,
	}
}

var profileOnboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Complete onboarding and compute personalized goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(cfg config.Config, store *tracker.Store, sess *session.Session) error {
			if err := sess.CompleteOnboarding(profileFromFlags()); err != nil {
				return err
			}
			g := store.Goals()
			fmt.Fprintf(cmd.OutOrStdout(), "Onboarding complete. Daily goals:\nCalories: %d kcal\nProtein: %d g\nCarbs: %d g\nFat: %d g\nFiber: %d g\nWater: %.1f L\n",
				g.Calories, g.Protein, g.Carbs, g.Fat, g.Fiber, g.Water)
			return nil
		})
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update the nutrition profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(cfg config.Config, store *tracker.Store, sess *session.Session) error {
			if err := sess.UpdateProfile(profileFromFlags()); err != nil {
				return err
			}
			g := store.Goals()
			fmt.Fprintf(cmd.OutOrStdout(), "Profile updated. Daily goals: %d kcal, %dP/%dC/%dF\n",
				g.Calories, g.Protein, g.Carbs, g.Fat)
			return nil
		})
	},
}

func addProfileFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	cmd.Flags().StringVar(&profileGender, "gender", "", "Gender (male|female|other)")
	cmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	cmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kg")
	cmd.Flags().StringVar(&profileActivity, "activity", "", "Activity level (sedentary|light|moderate|very|extra)")
	cmd.Flags().StringVar(&profileGoal, "goal", "", "Goal (lose-weight|gain-weight|maintain|build-muscle|improve-health)")
	_ = cmd.MarkFlagRequired("age")
	_ = cmd.MarkFlagRequired("gender")
	_ = cmd.MarkFlagRequired("height")
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("activity")
	_ = cmd.MarkFlagRequired("goal")
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileRegisterCmd, profileLoginCmd, profileLogoutCmd, profileShowCmd, profileOnboardCmd, profileSetCmd)

	profileRegisterCmd.Flags().StringVar(&profileEmail, "email", "", "Email address")
	profileRegisterCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	_ = profileRegisterCmd.MarkFlagRequired("email")

	profileLoginCmd.Flags().StringVar(&profileEmail, "email", "", "Email address")
	_ = profileLoginCmd.MarkFlagRequired("email")

	addProfileFlags(profileOnboardCmd)
	addProfileFlags(profileSetCmd)
}
