package cmd

import (
	"fmt"

	"github.com/misterclayt0n/repsheet/internal/config"
	"github.com/misterclayt0n/repsheet/internal/session"
	"github.com/spf13/cobra"
)

var cancelSessionCmd = &cobra.Command{
	Use:   "cancel-session",
	Short: "Cancel the current session without saving any data",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := config.GetConfigDir()
		if err != nil {
			return err
		}
		store := session.NewStore(dir)
		if !store.Exists() {
			return fmt.Errorf("No active session to cancel")
		}

		// Only the scratch file goes away; the routine was never touched.
		if err := store.Clear(); err != nil {
			return fmt.Errorf("Failed to cancel session: %w", err)
		}

		fmt.Println("✅ Session cancelled successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cancelSessionCmd)
}
