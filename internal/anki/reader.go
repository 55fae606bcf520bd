// Package anki reads and writes Anki .apkg decks of found words.
package anki

import (
	"archive/zip"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// Package is an opened .apkg file.
type Package struct {
	path   string
	Models map[int64]*Model
	Decks  map[int64]*Deck
	Notes  []*Note
	Cards  int
}

// Model represents an Anki note type.
type Model struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Fields []Field `json:"flds"`
	Type   int     `json:"type"` // 0 = standard, 1 = cloze
}

// Field represents a field in a note type.
type Field struct {
	Name   string `json:"name"`
	Ord    int    `json:"ord"`
	Sticky bool   `json:"sticky"`
	RTL    bool   `json:"rtl"`
	Font   string `json:"font"`
	Size   int    `json:"size"`
}

// Deck represents an Anki deck.
type Deck struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Note is one word with its fields.
type Note struct {
	ID      int64
	ModelID int64
	Tags    []string
	Fields  []string // split on the 0x1f separator
	SFLD    string   // sort field
	CSum    int64
}

// OpenPackage reads the collection inside an .apkg file. The package holds
// no open resources once it returns.
func OpenPackage(path string) (*Package, error) {
	tempDir, err := os.MkdirTemp("", "anki-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath, err := extractCollection(path, tempDir)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	pkg := &Package{
		path:   path,
		Models: make(map[int64]*Model),
		Decks:  make(map[int64]*Deck),
	}
	if err := pkg.loadCollection(db); err != nil {
		return nil, err
	}
	if err := pkg.loadNotes(db); err != nil {
		return nil, err
	}
	if err := db.QueryRow("SELECT count(*) FROM cards").Scan(&pkg.Cards); err != nil {
		return nil, fmt.Errorf("counting cards: %w", err)
	}
	return pkg, nil
}

// extractCollection copies the collection database out of the archive and
// returns its path. Newer exports name it collection.anki21.
func extractCollection(path, dir string) (string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("opening zip: %w", err)
	}
	defer r.Close()

	var found *zip.File
	for _, f := range r.File {
		switch f.Name {
		case "collection.anki21":
			found = f
		case "collection.anki2":
			if found == nil {
				found = f
			}
		}
	}
	if found == nil {
		return "", fmt.Errorf("%s: no collection database", path)
	}

	dst := filepath.Join(dir, filepath.Base(found.Name))
	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	rc, err := found.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return "", fmt.Errorf("extracting %s: %w", found.Name, err)
	}
	return dst, out.Close()
}

func (p *Package) loadCollection(db *sql.DB) error {
	var models, decks string
	if err := db.QueryRow("SELECT models, decks FROM col").Scan(&models, &decks); err != nil {
		return fmt.Errorf("reading collection: %w", err)
	}

	var modelsMap map[string]*Model
	if err := json.Unmarshal([]byte(models), &modelsMap); err != nil {
		return fmt.Errorf("parsing models: %w", err)
	}
	for _, m := range modelsMap {
		p.Models[m.ID] = m
	}

	var decksMap map[string]*Deck
	if err := json.Unmarshal([]byte(decks), &decksMap); err != nil {
		return fmt.Errorf("parsing decks: %w", err)
	}
	for _, d := range decksMap {
		p.Decks[d.ID] = d
	}
	return nil
}

func (p *Package) loadNotes(db *sql.DB) error {
	rows, err := db.Query("SELECT id, mid, tags, flds, sfld, csum FROM notes ORDER BY id")
	if err != nil {
		return fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			note       Note
			tags, flds string
		)
		if err := rows.Scan(&note.ID, &note.ModelID, &tags, &flds, &note.SFLD, &note.CSum); err != nil {
			return fmt.Errorf("scanning note: %w", err)
		}
		note.Tags = strings.Fields(tags)
		note.Fields = strings.Split(flds, "\x1f")
		p.Notes = append(p.Notes, &note)
	}
	return rows.Err()
}

// FieldValue returns a note's field by name, or "".
func (p *Package) FieldValue(note *Note, name string) string {
	model := p.Models[note.ModelID]
	if model == nil {
		return ""
	}
	for _, f := range model.Fields {
		if strings.EqualFold(f.Name, name) && f.Ord < len(note.Fields) {
			return note.Fields[f.Ord]
		}
	}
	return ""
}

// Words returns the sort field of every note, in note id order.
func (p *Package) Words() []string {
	words := make([]string, 0, len(p.Notes))
	for _, note := range p.Notes {
		words = append(words, note.SFLD)
	}
	return words
}

// Definition returns the definition field of the note for word.
func (p *Package) Definition(word string) (string, bool) {
	for _, note := range p.Notes {
		if strings.EqualFold(note.SFLD, word) {
			return p.FieldValue(note, FieldDefinition), true
		}
	}
	return "", false
}

// Summary describes the package contents.
func (p *Package) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Deck file: %s\n", p.path)
	for _, deck := range p.Decks {
		if deck.ID == 1 && len(p.Decks) > 1 {
			continue
		}
		fmt.Fprintf(&sb, "  Deck: %s\n", deck.Name)
	}
	fmt.Fprintf(&sb, "  Words: %d\n", len(p.Notes))
	fmt.Fprintf(&sb, "  Cards: %d\n", p.Cards)
	return sb.String()
}
