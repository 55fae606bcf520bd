package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/f3rmion/findwords/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize findwords configuration",
	Long: `Write a commented config.yaml to your config directory.

The file selects the dictionary used to check words (online API or an
offline JSONL file), where the saved game is stored and how long a
rejected word stays highlighted.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	path := filepath.Join(configDir, config.FileName)

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := config.EnsureConfigDir(configDir); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.Template), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Printf("Created %s\n\n", path)
	fmt.Println("Next steps:")
	fmt.Println("  1. Edit config.yaml to pick a dictionary")
	fmt.Println("  2. Run 'findwords lookup <word>' to check the dictionary works")
	fmt.Println("  3. Run 'findwords' to play")
	return nil
}
