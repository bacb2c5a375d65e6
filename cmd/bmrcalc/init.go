package bmrcalc

import (
	"fmt"

	"github.com/avoronin/bmrcalc/internal/app"
	"github.com/avoronin/bmrcalc/internal/store"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local calculation database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := app.ResolveDBPath(dbPath)
		if err != nil {
			return err
		}
		if err := app.EnsureDBDir(path); err != nil {
			return err
		}
		s := store.New(path)
		if err := s.Init(); err != nil {
			return err
		}
		defer s.Close()
		fmt.Fprintf(cmd.OutOrStdout(), "Initialized bmrcalc database at %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
