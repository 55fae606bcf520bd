package anki

import (
	"archive/zip"
	"crypto/sha1"
	"database/sql"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/f3rmion/findwords/internal/dictionary"
)

// Note fields written by Export.
const (
	FieldWord       = "Word"
	FieldDefinition = "Definition"
)

// Entry is one word to put in a deck.
type Entry struct {
	Word       string
	Definition string // HTML
	Tags       []string
}

// EntryFromResult formats dictionary definitions as an HTML list.
func EntryFromResult(word string, res dictionary.Result, tags ...string) Entry {
	var sb strings.Builder
	for _, e := range res {
		for _, m := range e.Meanings {
			if len(m.Definitions) == 0 {
				continue
			}
			if m.PartOfSpeech != "" {
				fmt.Fprintf(&sb, "<i>%s</i>", html.EscapeString(m.PartOfSpeech))
			}
			sb.WriteString("<ol>")
			for _, d := range m.Definitions {
				fmt.Fprintf(&sb, "<li>%s", html.EscapeString(d.Definition))
				if d.Example != "" {
					fmt.Fprintf(&sb, "<br><small>%s</small>", html.EscapeString(d.Example))
				}
				sb.WriteString("</li>")
			}
			sb.WriteString("</ol>")
		}
	}
	return Entry{Word: word, Definition: sb.String(), Tags: tags}
}

const schema = `
CREATE TABLE col (
	id integer primary key, crt integer not null, mod integer not null,
	scm integer not null, ver integer not null, dty integer not null,
	usn integer not null, ls integer not null, conf text not null,
	models text not null, decks text not null, dconf text not null,
	tags text not null
);
CREATE TABLE notes (
	id integer primary key, guid text not null, mid integer not null,
	mod integer not null, usn integer not null, tags text not null,
	flds text not null, sfld integer not null, csum integer not null,
	flags integer not null, data text not null
);
CREATE TABLE cards (
	id integer primary key, nid integer not null, did integer not null,
	ord integer not null, mod integer not null, usn integer not null,
	type integer not null, queue integer not null, due integer not null,
	ivl integer not null, factor integer not null, reps integer not null,
	lapses integer not null, left integer not null, odue integer not null,
	odid integer not null, flags integer not null, data text not null
);
CREATE TABLE revlog (
	id integer primary key, cid integer not null, usn integer not null,
	ease integer not null, ivl integer not null, lastIvl integer not null,
	factor integer not null, time integer not null, type integer not null
);
CREATE TABLE graves (usn integer not null, oid integer not null, type integer not null);
`

const cardCSS = `.card { font-family: arial; font-size: 20px; text-align: center; }
ol { text-align: left; }`

// Export writes entries to a new .apkg file at outputPath as a single deck.
func Export(outputPath, deckName string, entries []Entry, now time.Time) error {
	tempDir, err := os.MkdirTemp("", "anki-export-*")
	if err != nil {
		return fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	if err := writeCollection(filepath.Join(tempDir, "collection.anki2"), deckName, entries, now); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(tempDir, "media"), []byte("{}"), 0644); err != nil {
		return fmt.Errorf("writing media map: %w", err)
	}

	return zipDir(tempDir, outputPath)
}

func writeCollection(dbPath, deckName string, entries []Entry, now time.Time) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	base := now.UnixMilli()
	modelID, deckID := base, base+1
	secs := now.Unix()

	models, decks, err := collectionJSON(modelID, deckID, deckName, secs)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO col VALUES (1, ?, ?, ?, 11, 0, 0, 0, '{}', ?, ?, ?, '{}')`,
		secs, base, base, models, decks, defaultDeckConf)
	if err != nil {
		return fmt.Errorf("writing collection: %w", err)
	}

	for i, e := range entries {
		noteID := base + int64(i) + 2
		flds := e.Word + "\x1f" + e.Definition
		tags := ""
		if len(e.Tags) > 0 {
			tags = " " + strings.Join(e.Tags, " ") + " "
		}

		_, err := tx.Exec(`INSERT INTO notes VALUES (?, ?, ?, ?, -1, ?, ?, ?, ?, 0, '')`,
			noteID, uuid.NewString(), modelID, secs, tags, flds, e.Word, checksum(e.Word))
		if err != nil {
			return fmt.Errorf("writing note %q: %w", e.Word, err)
		}

		_, err = tx.Exec(`INSERT INTO cards VALUES (?, ?, ?, 0, ?, -1, 0, 0, ?, 0, 0, 0, 0, 0, 0, 0, 0, '')`,
			noteID, noteID, deckID, secs, i+1)
		if err != nil {
			return fmt.Errorf("writing card %q: %w", e.Word, err)
		}
	}

	return tx.Commit()
}

// checksum is the first 8 hex digits of the SHA1 of the sort field, as Anki
// computes it for duplicate detection.
func checksum(sortField string) int64 {
	sum := sha1.Sum([]byte(sortField))
	v, _ := strconv.ParseInt(fmt.Sprintf("%x", sum[:4]), 16, 64)
	return v
}

func collectionJSON(modelID, deckID int64, deckName string, mod int64) (string, string, error) {
	model := map[string]any{
		"id":    modelID,
		"name":  "findwords",
		"type":  0,
		"mod":   mod,
		"usn":   -1,
		"sortf": 0,
		"did":   deckID,
		"flds": []Field{
			{Name: FieldWord, Ord: 0, Font: "Arial", Size: 20},
			{Name: FieldDefinition, Ord: 1, Font: "Arial", Size: 20},
		},
		"tmpls": []map[string]any{{
			"name":  "Card 1",
			"ord":   0,
			"qfmt":  "{{" + FieldWord + "}}",
			"afmt":  "{{FrontSide}}<hr id=answer>{{" + FieldDefinition + "}}",
			"did":   nil,
			"bqfmt": "",
			"bafmt": "",
		}},
		"css":       cardCSS,
		"latexPre":  "",
		"latexPost": "",
		"req":       []any{[]any{0, "all", []int{0}}},
		"tags":      []string{},
		"vers":      []any{},
	}

	deck := func(id int64, name string) map[string]any {
		return map[string]any{
			"id": id, "name": name, "desc": "", "mod": mod, "usn": -1,
			"collapsed": false, "dyn": 0, "conf": 1,
			"newToday": []int{0, 0}, "revToday": []int{0, 0},
			"lrnToday": []int{0, 0}, "timeToday": []int{0, 0},
			"extendNew": 10, "extendRev": 50,
		}
	}

	models, err := json.Marshal(map[string]any{strconv.FormatInt(modelID, 10): model})
	if err != nil {
		return "", "", fmt.Errorf("marshaling models: %w", err)
	}
	decks, err := json.Marshal(map[string]any{
		"1":                           deck(1, "Default"),
		strconv.FormatInt(deckID, 10): deck(deckID, deckName),
	})
	if err != nil {
		return "", "", fmt.Errorf("marshaling decks: %w", err)
	}
	return string(models), string(decks), nil
}

const defaultDeckConf = `{"1":{"id":1,"name":"Default","new":{"perDay":20},"rev":{"perDay":200},"maxTaken":60,"autoplay":true,"timer":0,"replayq":true,"dyn":false,"usn":0,"mod":0}}`

// zipDir writes every file under dir to a zip archive at outputPath.
func zipDir(dir, outputPath string) error {
	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer outFile.Close()

	zipWriter := zip.NewWriter(outFile)

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		writer, err := zipWriter.Create(relPath)
		if err != nil {
			return err
		}

		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		_, err = io.Copy(writer, file)
		return err
	})
	if err != nil {
		return fmt.Errorf("creating zip: %w", err)
	}

	if err := zipWriter.Close(); err != nil {
		return fmt.Errorf("finishing zip: %w", err)
	}
	return outFile.Close()
}
