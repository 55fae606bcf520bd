package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/f3rmion/findwords/internal/clipboard"
	"github.com/f3rmion/findwords/internal/report"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the saved game",
	Long: `Print the letters, word count and found words of the saved game.

Examples:
  findwords status
  findwords status --markdown --copy`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().Bool("markdown", false, "render as markdown")
	statusCmd.Flags().Bool("copy", false, "also copy the summary to the clipboard")
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sessions, db, err := openSessionStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	state, err := loadSession(cmd.Context(), sessions)
	if err != nil {
		return err
	}

	gen := report.NewGenerator()
	if md, _ := cmd.Flags().GetBool("markdown"); md {
		if err := gen.SetTemplate(report.MarkdownTemplate); err != nil {
			return err
		}
	}

	out, err := gen.Generate(report.NewSummary(state, nil))
	if err != nil {
		return err
	}
	fmt.Println(out)

	if cp, _ := cmd.Flags().GetBool("copy"); cp {
		if err := clipboard.Write(out); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		fmt.Println("\nCopied to clipboard.")
	}
	return nil
}
