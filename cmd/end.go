package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var endSessionCmd = &cobra.Command{
	Use:   "end-session",
	Short: "Save the current session into its routine",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		tr, err := a.loadSession()
		if err != nil {
			return err
		}

		routine, err := tr.Reconcile()
		if err != nil {
			return fmt.Errorf("Failed to save session: %w", err)
		}

		if err := a.repo.UpdateRoutine(routine); err != nil {
			return fmt.Errorf("Failed to save session: %w", err)
		}
		a.log.Debug("session saved", zap.String("routine", routine.ID), zap.Time("started", tr.StartedAt()))

		// Clear temp file.
		if err := a.sessions.Clear(); err != nil {
			return fmt.Errorf("Failed to clear session: %w", err)
		}

		fmt.Println("✅ Workout saved!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(endSessionCmd)
}
