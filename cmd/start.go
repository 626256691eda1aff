package cmd

import (
	"fmt"

	"github.com/misterclayt0n/repsheet/internal/session"
	"github.com/spf13/cobra"
)

var routineID string

var startCmd = &cobra.Command{
	Use:   "start-session",
	Short: "Starts tracking a routine",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		routine, err := a.repo.Routine(routineID)
		if err != nil {
			return fmt.Errorf("Failed to start session: %w", err)
		}

		// A new session always starts from fresh overrides.
		tr := session.New(*routine)
		if err := a.sessions.Save(tr); err != nil {
			return fmt.Errorf("Failed to save session state: %w", err)
		}

		fmt.Printf("✅ Started session for '%s'\n", routine.Name)
		return nil
	},
}

func init() {
	// Registers the command as a subcommand of rootCmd.
	rootCmd.AddCommand(startCmd)

	// Define flags.
	startCmd.Flags().StringVarP(&routineID, "routine", "r", "", "Routine ID")
	startCmd.MarkFlagRequired("routine")
}
