package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jmoreaux/budgetpilot/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive budget dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, st, sess, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	month, err := targetMonth()
	if err != nil {
		return err
	}

	return tui.Run(cfg, st, sess.UserID, flagYear, month)
}
