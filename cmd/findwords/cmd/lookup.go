package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/f3rmion/findwords/internal/dictionary"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <word>",
	Short: "Look up a word in the dictionary",
	Long: `Look up a word the same way the game checks submissions and print its
definitions. When the word is unknown and an offline dictionary file is
configured, close matches are suggested.

Example:
  findwords lookup cat`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().Int("suggestions", 5, "maximum number of suggestions")
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	lookuper, file, err := openDictionary(cfg)
	if err != nil {
		return err
	}

	word := strings.ToUpper(strings.TrimSpace(args[0]))
	res, err := lookuper.Lookup(cmd.Context(), word)
	switch {
	case errors.Is(err, dictionary.ErrNotFound):
		fmt.Printf("%s: not a dictionary word\n", word)
		n, _ := cmd.Flags().GetInt("suggestions")
		if file != nil && n > 0 {
			if sugg := file.Suggest(word, n, 2); len(sugg) > 0 {
				fmt.Printf("Did you mean: %s\n", strings.Join(sugg, ", "))
			}
		}
		return nil
	case err != nil:
		return fmt.Errorf("looking up %s: %w", word, err)
	}

	printDefinitions(os.Stdout, word, res)
	return nil
}

func printDefinitions(w io.Writer, word string, res dictionary.Result) {
	fmt.Fprintf(w, "%s\n", word)
	for _, e := range res {
		if e.Phonetic != "" {
			fmt.Fprintf(w, "  %s\n", e.Phonetic)
		}
		for _, m := range e.Meanings {
			fmt.Fprintf(w, "\n  %s\n", m.PartOfSpeech)
			for i, d := range m.Definitions {
				fmt.Fprintf(w, "    %d. %s\n", i+1, d.Definition)
				if d.Example != "" {
					fmt.Fprintf(w, "       \"%s\"\n", d.Example)
				}
			}
		}
	}
}
