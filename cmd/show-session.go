package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/repsheet/internal/session"
	"github.com/misterclayt0n/repsheet/internal/utils"
	"github.com/spf13/cobra"
)

var showSessionCmd = &cobra.Command{
	Use:   "show-session",
	Short: "Show the tracking sheet of the current session",
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

		renderSession(os.Stdout, tr, a.loc, time.Now())
		return nil
	},
}

// Column widths of the set table.
const (
	setColWidth    = 5
	prevColWidth   = 10
	targetColWidth = 10
	repsColWidth   = 6
	doneColWidth   = 6
	e1rmColWidth   = 9
)

var sessionWidths = []int{setColWidth, prevColWidth, targetColWidth, repsColWidth, doneColWidth, e1rmColWidth}

func tableBorder(left, mid, right string) string {
	parts := make([]string, len(sessionWidths))
	for i, w := range sessionWidths {
		parts[i] = strings.Repeat("─", w)
	}
	return "   " + left + strings.Join(parts, mid) + right
}

// stateColor picks the color of an editable cell: done sets are blue,
// untouched values faint, edited values in the terminal's normal color.
func stateColor(s session.DisplayState) *color.Color {
	switch s {
	case session.StateDone:
		return color.New(color.FgBlue)
	case session.StateDefault:
		return color.New(color.Faint)
	default:
		return color.New(color.Reset)
	}
}

func renderSession(w io.Writer, tr *session.Tracker, loc *time.Location, now time.Time) {
	routine := tr.Routine()

	green := color.New(color.FgGreen).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	fmt.Fprintf(w, "%s\n", green(routine.Name))
	fmt.Fprintf(w, "%s %s\n", cyan("Date:"), utils.FormatDate(now, loc))
	fmt.Fprintf(w, "%s %s\n\n", red("Duration:"), now.Sub(tr.StartedAt()).Round(time.Second))

	header := fmt.Sprintf("   │%-*s│%-*s│%-*s│%-*s│%-*s│%-*s│",
		setColWidth, "Set",
		prevColWidth, "Previous",
		targetColWidth, "Target",
		repsColWidth, "Reps",
		doneColWidth, "Done",
		e1rmColWidth, "e1RM",
	)

	for i, ex := range routine.Exercises {
		fmt.Fprintf(w, "%d - %s\n", i+1, cyan(ex.Name))
		fmt.Fprintln(w, tableBorder("┌", "┬", "┐"))
		fmt.Fprintln(w, header)
		fmt.Fprintln(w, tableBorder("├", "┼", "┤"))

		for _, set := range ex.Sets {
			o, _ := tr.Override(ex.ID, set.SetNumber)

			// Pad before coloring so escape codes do not break alignment.
			target := stateColor(tr.TargetState(ex.ID, set.SetNumber)).Sprintf("%-*s", targetColWidth, o.Target)
			reps := stateColor(tr.RepsState(ex.ID, set.SetNumber)).Sprintf("%-*s", repsColWidth, o.Reps)

			done := "[ ]"
			if o.Done {
				done = "[x]"
			}

			e1rm := "-"
			if weight, err := utils.ParseNumber(o.Target); err == nil {
				if n, err := utils.ParseNumber(o.Reps); err == nil && weight > 0 {
					e1rm = utils.FormatNumber(float64(int(utils.CalculateEpley1RM(weight, int(n))*10)) / 10)
				}
			}

			fmt.Fprintf(w, "   │%-*d│%-*s│%s│%s│%-*s│%-*s│\n",
				setColWidth, set.SetNumber,
				prevColWidth, utils.FormatNumber(set.TargetWeight),
				target,
				reps,
				doneColWidth, done,
				e1rmColWidth, e1rm,
			)
		}
		fmt.Fprintln(w, tableBorder("└", "┴", "┘"))
		fmt.Fprintln(w)
	}
}

func init() {
	rootCmd.AddCommand(showSessionCmd)
}
