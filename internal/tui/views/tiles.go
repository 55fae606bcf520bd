package views

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/findwords/internal/letters"
	"github.com/f3rmion/findwords/internal/tui/bigchar"
)

const (
	tileCols = 8
	tileRows = 4
)

// renderTiles draws one tile per rack slot. Empty slots are drawn dimmed.
// With numbered set, each tile gets its key label underneath.
func renderTiles(rack letters.Rack, width int, numbered bool) string {
	big := bigchar.IsAvailable() && width >= letters.RackSize*(tileCols+4)

	tiles := make([]string, 0, letters.RackSize)
	for i := 0; i < letters.RackSize; i++ {
		var body string
		style := tileStyle
		switch {
		case i >= len(rack):
			style = tileEmptyStyle
			body = "·"
			if big {
				body = lipgloss.Place(tileCols, tileRows, lipgloss.Center, lipgloss.Center, body)
			}
		case big:
			body = bigchar.GetCached(rack[i].String(), tileCols, tileRows)
		default:
			body = rack[i].String()
		}

		tile := style.Render(body)
		if numbered {
			label := tileLabelStyle.Width(lipgloss.Width(tile)).Render(strconv.Itoa(i + 1))
			tile = lipgloss.JoinVertical(lipgloss.Center, tile, label)
		}
		tiles = append(tiles, tile)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}
