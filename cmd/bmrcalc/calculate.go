package bmrcalc

import (
	"fmt"

	"github.com/avoronin/bmrcalc/internal/calc"
	"github.com/avoronin/bmrcalc/internal/logger"
	"github.com/avoronin/bmrcalc/internal/model"
	"github.com/avoronin/bmrcalc/internal/store"
	"github.com/avoronin/bmrcalc/internal/validation"
	"github.com/spf13/cobra"
)

var (
	calcWeight   float64
	calcHeight   float64
	calcAge      float64
	calcGender   string
	calcActivity string
	calcFormula  string
	calcUser     string
	calcNoSave   bool
)

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Compute BMR/TDEE, show interpretation, and save to history",
	RunE: func(cmd *cobra.Command, args []string) error {
		gender, err := model.ParseGender(calcGender)
		if err != nil {
			return err
		}
		activity, err := model.ParseActivityLevel(calcActivity)
		if err != nil {
			return err
		}

		// Missing formula and user flags fall back to stored defaults.
		// Settings live in the database, so resolve them in the same
		// degraded-tolerant way the save path uses below.
		formulaTag := calcFormula
		userID := calcUser
		withStoreSoft(func(s *store.Store) {
			if formulaTag == "" {
				if v, ok := s.GetConfig(store.ConfigDefaultFormula); ok {
					formulaTag = v
				}
			}
			if userID == "" {
				if v, ok := s.GetConfig(store.ConfigDefaultUser); ok {
					userID = v
				}
			}
		})
		if formulaTag == "" {
			formulaTag = model.Mifflin.String()
		}
		formula, err := model.ParseFormulaType(formulaTag)
		if err != nil {
			return err
		}

		// Age is validated as a float so fractional input fails the
		// whole-number rule instead of being silently truncated.
		res := validation.ValidateAge(calcAge)
		input := model.CalculationInput{
			WeightKg:      calcWeight,
			HeightCm:      calcHeight,
			Age:           int(calcAge),
			Gender:        gender,
			ActivityLevel: activity,
			FormulaType:   formula,
		}
		if res.IsValid {
			res = validation.ValidateAllInputs(input)
		}
		if msg := validation.FormatErrors(res); msg != "" {
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			fmt.Fprintln(cmd.OutOrStdout())
		}
		if !res.IsValid {
			return fmt.Errorf("input validation failed")
		}

		result := calc.PerformCalculation(input, userID)

		if !calcNoSave {
			saved := false
			withStoreSoft(func(s *store.Store) {
				id, err := s.SaveCalculation(result)
				if err != nil {
					logger.Warn("calculation not saved", "err", err)
					return
				}
				result.ID = id
				saved = true
			})
			if saved {
				fmt.Fprintf(cmd.OutOrStdout(), "Saved calculation %d\n", result.ID)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Note: history is unavailable, result was not saved")
			}
		}

		printResult(cmd, result)
		return nil
	},
}

// withStoreSoft runs fn against the store when it can be opened, and
// otherwise logs and carries on. Persistence failures degrade the history
// features without blocking calculation.
func withStoreSoft(fn func(*store.Store)) {
	if err := withStore(func(s *store.Store) error {
		fn(s)
		return nil
	}); err != nil {
		logger.Warn("calculation store unavailable", "err", err)
	}
}

func printResult(cmd *cobra.Command, res model.CalculationResult) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Formula: %s\n", res.Input.FormulaType)
	fmt.Fprintf(out, "BMR: %.2f kcal/day\n", res.BMR)
	fmt.Fprintf(out, "TDEE: %.2f kcal/day (%s)\n", res.TDEE, res.Input.ActivityLevel)
	fmt.Fprintf(out, "Metabolism: %s\n", res.Interpretation.Category)

	bmi := calc.BMI(res.Input.WeightKg, res.Input.HeightCm)
	fmt.Fprintf(out, "BMI: %.1f (%s)\n", bmi, calc.InterpretBMI(bmi))

	fmt.Fprintf(out, "\nCalorie targets:\n")
	fmt.Fprintf(out, "  maintain: %d kcal/day\n", res.Interpretation.TargetCaloriesMaintain)
	fmt.Fprintf(out, "  lose:     %d kcal/day\n", res.Interpretation.TargetCaloriesLose)
	fmt.Fprintf(out, "  gain:     %d kcal/day\n", res.Interpretation.TargetCaloriesGain)

	fmt.Fprintf(out, "\nRecommendations:\n")
	for _, r := range res.Interpretation.Recommendations {
		fmt.Fprintf(out, "  - %s\n", r)
	}
	fmt.Fprintf(out, "\nWarnings:\n")
	for _, w := range res.Interpretation.Warnings {
		fmt.Fprintf(out, "  ! %s\n", w)
	}
}

func init() {
	rootCmd.AddCommand(calculateCmd)

	calculateCmd.Flags().Float64Var(&calcWeight, "weight", 0, "Weight in kg")
	calculateCmd.Flags().Float64Var(&calcHeight, "height", 0, "Height in cm")
	calculateCmd.Flags().Float64Var(&calcAge, "age", 0, "Age in whole years")
	calculateCmd.Flags().StringVar(&calcGender, "gender", "", "Gender: male or female")
	calculateCmd.Flags().StringVar(&calcActivity, "activity", "moderate", "Activity level: sedentary, light, moderate, very_active, extra_active")
	calculateCmd.Flags().StringVar(&calcFormula, "formula", "", "BMR formula: mifflin or harris (default from config, else mifflin)")
	calculateCmd.Flags().StringVar(&calcUser, "user", "", "User id to tag the calculation with (default from config)")
	calculateCmd.Flags().BoolVar(&calcNoSave, "no-save", false, "Compute without writing to history")
	_ = calculateCmd.MarkFlagRequired("weight")
	_ = calculateCmd.MarkFlagRequired("height")
	_ = calculateCmd.MarkFlagRequired("age")
	_ = calculateCmd.MarkFlagRequired("gender")
}
