package bmrcalc

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/avoronin/bmrcalc/internal/model"
	"github.com/avoronin/bmrcalc/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse and manage the calculation history",
}

var (
	historyUser  string
	historyLimit int
)

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved calculations, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			items := s.GetCalculations(historyUser, historyLimit)
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "History is empty")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tUSER\tFORMULA\tBMR\tTDEE\tCATEGORY")
			for _, r := range items {
				user := r.UserID
				if user == "" {
					user = "-"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%.2f\t%.2f\t%s\n",
					r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"), user,
					r.Input.FormulaType, r.BMR, r.TDEE, r.Interpretation.Category)
			}
			return nil
		})
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one saved calculation with its interpretation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("calculation id", args[0])
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			res, ok := s.GetCalculationByID(id)
			if !ok {
				return fmt.Errorf("calculation %d not found", id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Calculated at: %s\n", res.CreatedAt.Local().Format("2006-01-02 15:04"))
			fmt.Fprintf(cmd.OutOrStdout(), "Input: %.1f kg, %.1f cm, %d y, %s, %s\n",
				res.Input.WeightKg, res.Input.HeightCm, res.Input.Age, res.Input.Gender, res.Input.ActivityLevel)
			printResult(cmd, res)
			return nil
		})
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one saved calculation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("calculation id", args[0])
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			if err := s.DeleteCalculation(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted calculation %d\n", id)
			return nil
		})
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the whole history, or one user's records",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := s.ClearHistory(historyUser); err != nil {
				return err
			}
			if historyUser != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared history for user %s\n", historyUser)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Cleared history")
			}
			return nil
		})
	},
}

// exportRecord is the JSON shape written by history export. Enum tags and
// epoch seconds match the storage contract.
type exportRecord struct {
	ID            int64   `json:"id"`
	UserID        string  `json:"user_id,omitempty"`
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	ActivityLevel string  `json:"activity_level"`
	FormulaType   string  `json:"formula_type"`
	BMR           float64 `json:"bmr"`
	TDEE          float64 `json:"tdee"`
	CreatedAt     int64   `json:"created_at"`
}

var historyExportOut string

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export history to a JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if historyExportOut == "" {
			return fmt.Errorf("--out is required")
		}
		return withStore(func(s *store.Store) error {
			items := s.GetCalculations(historyUser, historyLimit)
			records := make([]exportRecord, 0, len(items))
			for _, r := range items {
				records = append(records, exportRecordFrom(r))
			}
			data, err := json.MarshalIndent(records, "", "  ")
			if err != nil {
				return fmt.Errorf("encode export: %w", err)
			}
			if err := os.WriteFile(historyExportOut, append(data, '\n'), 0o644); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d calculations to %s\n", len(records), historyExportOut)
			return nil
		})
	},
}

func exportRecordFrom(r model.CalculationResult) exportRecord {
	return exportRecord{
		ID:            r.ID,
		UserID:        r.UserID,
		Weight:        r.Input.WeightKg,
		Height:        r.Input.HeightCm,
		Age:           r.Input.Age,
		Gender:        r.Input.Gender.String(),
		ActivityLevel: r.Input.ActivityLevel.String(),
		FormulaType:   r.Input.FormulaType.String(),
		BMR:           r.BMR,
		TDEE:          r.TDEE,
		CreatedAt:     r.CreatedAt.Unix(),
	}
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyDeleteCmd, historyClearCmd, historyExportCmd)

	historyCmd.PersistentFlags().StringVar(&historyUser, "user", "", "Restrict to one user id")
	for _, c := range []*cobra.Command{historyListCmd, historyExportCmd} {
		c.Flags().IntVar(&historyLimit, "limit", store.DefaultListLimit, "Result limit")
	}
	historyExportCmd.Flags().StringVar(&historyExportOut, "out", "", "Output file path")
}
