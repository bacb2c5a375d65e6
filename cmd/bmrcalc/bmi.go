package bmrcalc

import (
	"fmt"

	"github.com/avoronin/bmrcalc/internal/calc"
	"github.com/avoronin/bmrcalc/internal/model"
	"github.com/avoronin/bmrcalc/internal/validation"
	"github.com/spf13/cobra"
)

var (
	bmiWeight float64
	bmiHeight float64
)

var bmiCmd = &cobra.Command{
	Use:   "bmi",
	Short: "Compute body mass index (informational)",
	RunE: func(cmd *cobra.Command, args []string) error {
		wres := validation.ValidateWeight(bmiWeight)
		hres := validation.ValidateHeight(bmiHeight)
		res := model.ValidationResult{
			IsValid: wres.IsValid && hres.IsValid,
			Errors:  append(wres.Errors, hres.Errors...),
		}
		if msg := validation.FormatErrors(res); msg != "" {
			fmt.Fprintln(cmd.OutOrStdout(), msg)
		}
		if !res.IsValid {
			return fmt.Errorf("input validation failed")
		}

		bmi := calc.BMI(bmiWeight, bmiHeight)
		fmt.Fprintf(cmd.OutOrStdout(), "BMI: %.1f\n%s\n", bmi, calc.InterpretBMI(bmi))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bmiCmd)
	bmiCmd.Flags().Float64Var(&bmiWeight, "weight", 0, "Weight in kg")
	bmiCmd.Flags().Float64Var(&bmiHeight, "height", 0, "Height in cm")
	_ = bmiCmd.MarkFlagRequired("weight")
	_ = bmiCmd.MarkFlagRequired("height")
}
