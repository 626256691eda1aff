package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var uncheck bool

var checkSetCmd = &cobra.Command{
	Use:   "check [exercise-index] [set-number]",
	Short: "Mark a set in the current session as done (or not, with --undo)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		setNumber, err := parseSetNumber(args[1])
		if err != nil {
			return err
		}

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

		if err := tr.SetDone(ex.ID, setNumber, !uncheck); err != nil {
			return err
		}
		if err := a.sessions.Save(tr); err != nil {
			return fmt.Errorf("Failed to save session: %w", err)
		}

		if uncheck {
			fmt.Printf("✅ %s set %d unmarked\n", ex.Name, setNumber)
		} else {
			fmt.Printf("✅ %s set %d done\n", ex.Name, setNumber)
		}
		return nil
	},
}

func init() {
	checkSetCmd.Flags().BoolVarP(&uncheck, "undo", "u", false, "Unmark the set")
	rootCmd.AddCommand(checkSetCmd)
}
