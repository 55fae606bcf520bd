// Package report renders findwords session summaries as text.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/f3rmion/findwords/internal/dictionary"
	"github.com/f3rmion/findwords/internal/session"
)

// Generator renders a Summary through a text template.
type Generator struct {
	template *template.Template
}

// Summary holds everything a report can show.
type Summary struct {
	Rack        string
	Mode        session.Mode
	Count       int
	Words       []Word
	Definitions map[string]dictionary.Result
}

// Word is one found word with an optional short gloss.
type Word struct {
	Text  string
	Gloss string
}

// NewSummary builds a Summary from a session. defs may be nil.
func NewSummary(st session.State, defs map[string]dictionary.Result) Summary {
	words := make([]Word, 0, len(st.Found))
	for _, w := range st.Found {
		words = append(words, Word{Text: w, Gloss: defs[w].First()})
	}
	return Summary{
		Rack:        st.Rack.String(),
		Mode:        st.Mode,
		Count:       st.Count,
		Words:       words,
		Definitions: defs,
	}
}

var funcs = template.FuncMap{
	"spaced": func(s string) string { return strings.Join(strings.Split(s, ""), " ") },
	"inc":    func(i int) int { return i + 1 },
}

// NewGenerator returns a generator using the plain text template.
func NewGenerator() *Generator {
	return &Generator{
		template: template.Must(template.New("report").Funcs(funcs).Parse(PlainTemplate)),
	}
}

// SetTemplate replaces the template.
func (g *Generator) SetTemplate(tmpl string) error {
	t, err := template.New("report").Funcs(funcs).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("parsing template: %w", err)
	}
	g.template = t
	return nil
}

// Generate renders s.
func (g *Generator) Generate(s Summary) (string, error) {
	var buf bytes.Buffer
	if err := g.template.Execute(&buf, s); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// PlainTemplate is the default terminal summary.
const PlainTemplate = `Letters: {{ spaced .Rack }} ({{ .Mode }})
Words found: {{ .Count }}
{{- range $i, $w := .Words }}
  {{ $i | inc }}. {{ $w.Text }}{{ if $w.Gloss }} - {{ $w.Gloss }}{{ end }}
{{- end }}`

// MarkdownTemplate renders the summary for pasting into notes.
const MarkdownTemplate = `## {{ .Rack }}

**{{ .Count }}** words ({{ .Mode }})
{{ range .Words }}
- **{{ .Text }}**{{ if .Gloss }}: {{ .Gloss }}{{ end }}
{{- end }}`
