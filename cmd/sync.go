package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export all routines to a TOML (or .yaml) file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile := "routines.toml" // Default filename.
		if len(args) == 1 {
			outputFile = args[0]
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.repo.Export(outputFile); err != nil {
			return fmt.Errorf("error exporting routines: %w", err)
		}

		fmt.Printf("✅ Routines exported successfully to %s\n", outputFile)
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore [dump-file]",
	Short: "Replace all routines with the contents of an export file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		routines, err := a.repo.Restore(args[0])
		if err != nil {
			return fmt.Errorf("Failed to restore routines: %w", err)
		}
		fmt.Printf("✅ Restored %d routines from %s\n", len(routines), args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(restoreCmd)
}
