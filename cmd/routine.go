package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/repsheet/internal/importer"
	"github.com/misterclayt0n/repsheet/internal/utils"
	"github.com/spf13/cobra"
)

var importCSVCmd = &cobra.Command{
	Use:   "import-csv [file]",
	Short: "Create a routine from a CSV file",
	Long: `Create a routine from a CSV file. The header must contain
Routine Name, Exercise Name, Set Number, Target Weight and Reps
(any case), and may contain Exercise ID.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		routine, err := importer.ParseCSVFile(args[0])
		if err != nil {
			return fmt.Errorf("Failed to import CSV: %w", err)
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.repo.UpdateRoutine(*routine); err != nil {
			return fmt.Errorf("Failed to save routine: %w", err)
		}

		fmt.Printf("✅ Imported '%s' (%d exercises) as %s\n", routine.Name, len(routine.Exercises), routine.ID)
		return nil
	},
}

var listRoutinesCmd = &cobra.Command{
	Use:   "list-routines",
	Short: "List all routines",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		routines, err := a.repo.Routines()
		if err != nil {
			return err
		}

		green := color.New(color.FgGreen).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()

		for _, r := range routines {
			fmt.Printf("%s %s\n", green(r.Name), faint("("+r.ID+")"))
			fmt.Printf("   Exercises: %d\n", len(r.Exercises))
			if r.LastCompleted != nil {
				fmt.Printf("   Last Completed: %s\n", utils.FormatDate(*r.LastCompleted, a.loc))
			}
		}
		return nil
	},
}

var deleteRoutineCmd = &cobra.Command{
	Use:   "delete-routine [id]",
	Short: "Delete a routine",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		routine, err := a.repo.Routine(args[0])
		if err != nil {
			return err
		}

		remaining, err := a.repo.DeleteRoutine(routine.ID)
		if err != nil {
			return fmt.Errorf("Failed to delete routine: %w", err)
		}

		fmt.Printf("✅ Routine '%s' deleted (%d left)\n", routine.Name, len(remaining))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCSVCmd)
	rootCmd.AddCommand(listRoutinesCmd)
	rootCmd.AddCommand(deleteRoutineCmd)
}
