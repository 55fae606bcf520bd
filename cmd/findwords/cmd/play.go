package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/f3rmion/findwords/internal/game"
	"github.com/f3rmion/findwords/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start or resume a game",
	Long: `Open the game. Without flags the menu is shown.

  --random   deal seven random letters
  --choose   pick the seven letters yourself
  --resume   continue the saved game

Controls:
  letters    type a word
  1-7        press a tile
  Enter      check the word
  ?          help
  Esc        quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().Bool("random", false, "deal random letters")
	playCmd.Flags().Bool("choose", false, "choose the letters")
	playCmd.Flags().Bool("resume", false, "resume the saved game")
	playCmd.MarkFlagsMutuallyExclusive("random", "choose", "resume")
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	closeLog, err := setupTUILogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	sessions, db, err := openSessionStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	lookuper, _, err := openDictionary(cfg)
	if err != nil {
		return err
	}

	engine := game.NewEngine(sessions, game.WithCueDuration(cfg.UI.RejectCue))
	if err := engine.Init(ctx); err != nil {
		return err
	}

	// The root command has no such flags; GetBool reports false there.
	random, _ := cmd.Flags().GetBool("random")
	choose, _ := cmd.Flags().GetBool("choose")
	resume, _ := cmd.Flags().GetBool("resume")
	switch {
	case random:
		err = engine.StartRandom(ctx)
	case choose:
		engine.StartChoose()
	case resume:
		err = engine.Resume(ctx)
	}
	if err != nil && engine.Screen() == game.ScreenMenu {
		return err
	}

	p := tea.NewProgram(
		tui.NewApp(ctx, engine, lookuper),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
