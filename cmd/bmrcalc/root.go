package bmrcalc

import (
	"fmt"
	"os"

	"github.com/avoronin/bmrcalc/internal/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "bmrcalc",
	Short: "bmrcalc computes BMR and TDEE and keeps a local history",
	Long:  "bmrcalc is a local-first BMR/TDEE calculator with validation, calorie-target interpretation, user profiles, and a SQLite-backed calculation history.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env is fine; it only supplies optional overrides
		// like BMRCALC_DB.
		_ = godotenv.Load()
		logger.Init()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
