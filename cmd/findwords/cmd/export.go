package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/f3rmion/findwords/internal/anki"
)

var exportCmd = &cobra.Command{
	Use:   "export <output.apkg>",
	Short: "Export found words to an Anki deck",
	Long: `Write every word found in the saved game, with its dictionary
definitions, to a new Anki package that can be imported into Anki.

Example:
  findwords export words.apkg
  findwords export words.apkg --deck "Vocabulary::findwords"`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().String("deck", "", "deck name (default \"findwords::<letters>\")")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	outputPath := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sessions, db, err := openSessionStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	state, err := loadSession(ctx, sessions)
	if err != nil {
		return err
	}
	if len(state.Found) == 0 {
		return fmt.Errorf("no words found yet")
	}

	lookuper, _, err := openDictionary(cfg)
	if err != nil {
		return err
	}

	deck, _ := cmd.Flags().GetString("deck")
	if deck == "" {
		deck = "findwords::" + state.Rack.String()
	}

	entries := make([]anki.Entry, 0, len(state.Found))
	for i, word := range state.Found {
		fmt.Printf("\r[%d/%d] %s", i+1, len(state.Found), word)
		res, err := lookuper.Lookup(ctx, word)
		if err != nil {
			fmt.Fprintf(os.Stderr, "\nWarning: no definitions for %s: %v\n", word, err)
		}
		entries = append(entries, anki.EntryFromResult(word, res, "findwords", state.Rack.String()))
	}
	fmt.Println()

	if err := anki.Export(outputPath, deck, entries, time.Now()); err != nil {
		return fmt.Errorf("writing deck: %w", err)
	}

	pkg, err := anki.OpenPackage(outputPath)
	if err != nil {
		return fmt.Errorf("verifying deck: %w", err)
	}
	if err := verifyDeck(pkg, entries); err != nil {
		return fmt.Errorf("verifying deck: %w", err)
	}
	fmt.Print(pkg.Summary())
	return nil
}

// verifyDeck checks that every entry was written with its definition.
func verifyDeck(pkg *anki.Package, entries []anki.Entry) error {
	if got := len(pkg.Words()); got != len(entries) {
		return fmt.Errorf("deck holds %d words, want %d", got, len(entries))
	}
	for _, e := range entries {
		def, ok := pkg.Definition(e.Word)
		if !ok {
			return fmt.Errorf("%s missing from deck", e.Word)
		}
		if def != e.Definition {
			return fmt.Errorf("%s: definition not written", e.Word)
		}
	}
	return nil
}
