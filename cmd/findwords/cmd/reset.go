package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved game",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sessions, db, err := openSessionStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := sessions.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("clearing saved game: %w", err)
	}
	fmt.Println("Saved game cleared.")
	return nil
}
