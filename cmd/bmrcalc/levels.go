package bmrcalc

import (
	"fmt"

	"github.com/avoronin/bmrcalc/internal/model"
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List activity levels and BMR formulas",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "Activity levels:")
		for _, level := range []model.ActivityLevel{
			model.Sedentary, model.Light, model.Moderate, model.VeryActive, model.ExtraActive,
		} {
			fmt.Fprintf(cmd.OutOrStdout(), "  %-13s x%-6.4g %s\n",
				level, model.ActivityCoefficients[level], model.ActivityDescriptions[level])
		}
		fmt.Fprintln(cmd.OutOrStdout(), "\nFormulas:")
		for _, f := range []model.FormulaType{model.Mifflin, model.Harris} {
			fmt.Fprintf(cmd.OutOrStdout(), "  %-8s %s\n", f, model.FormulaDescriptions[f])
		}
	},
}

func init() {
	rootCmd.AddCommand(levelsCmd)
}
