package cmd

import (
	"fmt"

	"github.com/misterclayt0n/repsheet/internal/config"
	"github.com/spf13/cobra"
)

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file and create the routine collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		written, err := config.WriteDefault()
		if err != nil {
			return fmt.Errorf("Failed to write config: %w", err)
		}
		if written {
			path, _ := config.GetConfigPath()
			fmt.Printf("✅ Config written to %s\n", path)
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		// The first load writes the seed routines when nothing is stored yet.
		routines, err := a.repo.Routines()
		if err != nil {
			return fmt.Errorf("Failed to initialize storage: %w", err)
		}
		fmt.Printf("✅ Storage ready (%s backend, %d routines)\n", a.cfg.Storage.Backend, len(routines))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
}
