package bmrcalc

import (
	"fmt"

	"github.com/avoronin/bmrcalc/internal/model"
	"github.com/avoronin/bmrcalc/internal/store"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage user profiles",
}

var (
	profileName  string
	profileEmail string
	profileRole  string
)

var profileAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a user profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		role, err := model.ParseUserRole(profileRole)
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			user, err := s.CreateUser(profileName, profileEmail, role)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added profile %s (%s)\n", user.ID, user.Name)
			return nil
		})
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List user profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			users := s.ListUsers()
			if len(users) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No profiles")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tEMAIL\tROLE\tCREATED")
			for _, u := range users {
				email := u.Email
				if email == "" {
					email = "-"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n",
					u.ID, u.Name, email, u.Role, u.CreatedAt.Local().Format("2006-01-02"))
			}
			return nil
		})
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user profile (their history stays)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := s.DeleteUser(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted profile %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileAddCmd, profileListCmd, profileDeleteCmd)

	profileAddCmd.Flags().StringVar(&profileName, "name", "", "Profile name")
	profileAddCmd.Flags().StringVar(&profileEmail, "email", "", "Optional email")
	profileAddCmd.Flags().StringVar(&profileRole, "role", "patient", "Role: patient, doctor, or admin")
	_ = profileAddCmd.MarkFlagRequired("name")
}
