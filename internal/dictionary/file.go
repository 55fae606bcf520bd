package dictionary

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// File is an offline dictionary loaded from a JSONL file with one Entry per
// line.
type File struct {
	entries map[string]Result
}

// NewFile creates an empty offline dictionary.
func NewFile() *File {
	return &File{
		entries: make(map[string]Result),
	}
}

// LoadFromFile reads entries from path. Malformed lines are skipped.
func (d *File) LoadFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening dictionary file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}
		d.Add(entry)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading dictionary file: %w", err)
	}

	return nil
}

// Add inserts an entry. Entries for the same word accumulate.
func (d *File) Add(e Entry) {
	key := strings.ToUpper(strings.TrimSpace(e.Word))
	if key == "" {
		return
	}
	d.entries[key] = append(d.entries[key], e)
}

// Size returns the number of distinct words.
func (d *File) Size() int {
	return len(d.entries)
}

// Lookup implements Lookuper.
func (d *File) Lookup(_ context.Context, word string) (Result, error) {
	r, ok := d.entries[strings.ToUpper(strings.TrimSpace(word))]
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}

// Suggest returns up to n known words closest to word by edit distance,
// ignoring anything more than maxDistance edits away.
func (d *File) Suggest(word string, n, maxDistance int) []string {
	word = strings.ToUpper(strings.TrimSpace(word))

	type candidate struct {
		word string
		dist int
	}
	var cands []candidate
	for w := range d.entries {
		if w == word {
			continue
		}
		if dist := levenshtein.ComputeDistance(word, w); dist <= maxDistance {
			cands = append(cands, candidate{w, dist})
		}
	}

	sort.Slice(cands, func(i, j int) bool {
		if cands[i].dist != cands[j].dist {
			return cands[i].dist < cands[j].dist
		}
		return cands[i].word < cands[j].word
	})

	if len(cands) > n {
		cands = cands[:n]
	}
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.word
	}
	return out
}
