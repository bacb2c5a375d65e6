package bmrcalc

import (
	"fmt"

	"github.com/avoronin/bmrcalc/internal/store"
	"github.com/spf13/cobra"
)

var statsUser string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics over the calculation history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			stats := s.GetStatistics(statsUser)
			fmt.Fprintf(cmd.OutOrStdout(), "Calculations: %d\n", stats.TotalCalculations)
			if stats.TotalCalculations == 0 {
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Average BMR: %d kcal/day\n", stats.AvgBMR)
			fmt.Fprintf(cmd.OutOrStdout(), "Average TDEE: %d kcal/day\n", stats.AvgTDEE)
			if stats.Latest != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Latest: #%d at %s (BMR %.2f, TDEE %.2f)\n",
					stats.Latest.ID, stats.Latest.CreatedAt.Local().Format("2006-01-02 15:04"),
					stats.Latest.BMR, stats.Latest.TDEE)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringVar(&statsUser, "user", "", "Restrict to one user id")
}
