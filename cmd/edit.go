package cmd

import (
	"fmt"

	"github.com/misterclayt0n/repsheet/internal/session"
	"github.com/spf13/cobra"
)

var (
	editTarget string
	editReps   string
)

var editSetCmd = &cobra.Command{
	Use:   "edit-set [exercise-index] [set-number]",
	Short: "Change the target weight and/or reps of a set in the current session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		targetChanged := cmd.Flags().Changed("target")
		repsChanged := cmd.Flags().Changed("reps")
		if !targetChanged && !repsChanged {
			return fmt.Errorf("Nothing to edit: pass --target and/or --reps")
		}

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

		// Values are kept as typed and only checked on end-session.
		if targetChanged {
			if err := tr.SetField(ex.ID, setNumber, session.FieldTarget, editTarget); err != nil {
				return err
			}
		}
		if repsChanged {
			if err := tr.SetField(ex.ID, setNumber, session.FieldReps, editReps); err != nil {
				return err
			}
		}

		if err := a.sessions.Save(tr); err != nil {
			return fmt.Errorf("Failed to save session: %w", err)
		}

		fmt.Println("✅ Set updated successfully")
		return nil
	},
}

func init() {
	editSetCmd.Flags().StringVarP(&editTarget, "target", "t", "", "Target weight")
	editSetCmd.Flags().StringVarP(&editReps, "reps", "r", "", "Reps")

	rootCmd.AddCommand(editSetCmd)
}
