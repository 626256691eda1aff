package cmd

import (
	"fmt"

	"github.com/misterclayt0n/repsheet/internal/utils"
	"github.com/spf13/cobra"
)

var addSetCmd = &cobra.Command{
	Use:   "add-set [exercise-index]",
	Short: "Add a set to an exercise in the current session",
	Args:  cobra.ExactArgs(1),
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

		ex, err := exerciseAt(tr.Routine(), args[0])
		if err != nil {
			return err
		}

		set, err := tr.AddSet(ex.ID)
		if err != nil {
			return err
		}

		if err := a.sessions.Save(tr); err != nil {
			return fmt.Errorf("Failed to save session state: %w", err)
		}

		fmt.Printf("✅ Added set %d (%skg × %d) to '%s'\n",
			set.SetNumber, utils.FormatNumber(set.TargetWeight), *set.Reps, ex.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addSetCmd)
}
