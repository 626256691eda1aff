package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/repsheet/internal/models"
	"github.com/misterclayt0n/repsheet/internal/utils"
	"github.com/spf13/cobra"
)

var showRoutineCmd = &cobra.Command{
	Use:   "show-routine [id]",
	Short: "Display every exercise and set of a routine",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		routine, err := a.repo.Routine(args[0])
		if err != nil {
			return fmt.Errorf("failed to load routine: %w", err)
		}

		green := color.New(color.FgGreen).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()

		fmt.Printf("\n%s\n", green(strings.ToUpper(routine.Name)))
		fmt.Printf("%s: %s\n", cyan("ID"), routine.ID)
		if routine.LastCompleted != nil {
			fmt.Printf("%s: %s\n", cyan("Last Completed"), utils.FormatDate(*routine.LastCompleted, a.loc))
		}
		fmt.Println(strings.Repeat("=", 60))

		for i, ex := range routine.Exercises {
			fmt.Printf("%d. %s\n", i+1, ex.Name)
			if len(ex.Sets) == 0 {
				fmt.Printf("   %s\n", cyan("No sets"))
				continue
			}

			parts := make([]string, 0, len(ex.Sets))
			for _, set := range ex.Sets {
				parts = append(parts, formatPlannedSet(set))
			}
			fmt.Printf("   %s: %s\n", cyan("Sets"), strings.Join(parts, ", "))
		}
		fmt.Println()
		return nil
	},
}

// formatPlannedSet renders "#2 100kg × 8", leaving out reps that were never saved.
func formatPlannedSet(set models.Set) string {
	s := fmt.Sprintf("#%d %skg", set.SetNumber, utils.FormatNumber(set.TargetWeight))
	if set.Reps != nil {
		s += fmt.Sprintf(" × %d", *set.Reps)
	}
	if set.Completed {
		s += " ✓"
	}
	return s
}

func init() {
	rootCmd.AddCommand(showRoutineCmd)
}
