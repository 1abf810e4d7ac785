package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmoreaux/budgetpilot/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data directory: %s\n", cfg.DataDir())
	fmt.Printf("    Database:       %s\n", cfg.DBPath())
	fmt.Printf("    Currency:       %s\n", cfg.General.Currency)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	sess, err := config.LoadSession(cfg.DataDir())
	if err != nil {
		return err
	}
	fmt.Println("  [Session]")
	fmt.Printf("    User id: %s\n", sess.UserID)
	fmt.Println()

	fmt.Println("  Run `budgetpilot setup` to (re)configure your profile.")
	return nil
}
