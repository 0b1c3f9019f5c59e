package tui

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"pong/internal/cellgrid"
	"pong/internal/entities"
	"pong/internal/pong"

	"github.com/charmbracelet/lipgloss"
)

var tileStyles = map[cellgrid.Tile]lipgloss.Style{
	cellgrid.TileNet:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	cellgrid.TileLeftPaddle:  lipgloss.NewStyle().Foreground(lipgloss.Color("#0080FF")),
	cellgrid.TileRightPaddle: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5300")),
	cellgrid.TileBall:        lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")),
	cellgrid.TileText:        lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true),
}

// textRenderer rasterizes snapshots onto a character grid. The first row
// holds the score labels, the rest is the field.
type textRenderer struct {
	cols, rows int
	grid       *cellgrid.Grid
	showWins   bool
	wins       [2]int
}

func newTextRenderer(cols, rows int) *textRenderer {
	r := &textRenderer{}
	r.resize(cols, rows)
	return r
}

func (r *textRenderer) resize(cols, rows int) {
	if cols < 2 {
		cols = 2
	}
	if rows < 2 {
		rows = 2
	}
	r.cols, r.rows = cols, rows
	r.grid = cellgrid.New(cols, rows)
}

func (r *textRenderer) Render(s pong.Snapshot) {
	g := cellgrid.New(r.cols, r.rows)
	r.grid = g
	const top = 1
	fieldRows := r.rows - top
	cw := s.Width / float64(r.cols)
	ch := s.Height / float64(fieldRows)

	for y := top; y < r.rows; y += 2 {
		g.Set(r.cols/2, y, cellgrid.TileNet)
	}

	for _, p := range s.Paddles {
		tile := cellgrid.TileLeftPaddle
		if p.Side == entities.Right {
			tile = cellgrid.TileRightPaddle
		}
		x0 := int(p.X / cw)
		x1 := int(math.Ceil((p.X + p.Width) / cw))
		y0 := int(p.Y/ch) + top
		y1 := int(math.Ceil((p.Y+p.Height)/ch)) + top
		g.FillRect(x0, y0, x1, y1, tile)
	}

	g.FillDisc(s.Ball.X/cw, s.Ball.Y/ch+top, s.Ball.Radius/cw, s.Ball.Radius/ch, cellgrid.TileBall)

	left, right := r.label(s, 0), r.label(s, 1)
	g.Text(r.cols/4-utf8.RuneCountInString(left)/2, 0, left)
	g.Text(r.cols*3/4-utf8.RuneCountInString(right)/2, 0, right)
}

func (r *textRenderer) label(s pong.Snapshot, i int) string {
	l := fmt.Sprintf("%s: %d", s.Scores[i].Name, s.Scores[i].Points)
	if r.showWins {
		l += fmt.Sprintf(" (%d won)", r.wins[i])
	}
	return l
}

// String returns the last rendered frame with tile colors applied.
func (r *textRenderer) String() string {
	var b strings.Builder
	for y := 0; y < r.grid.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		row := r.grid.Cells[y]
		for x := 0; x < len(row); {
			tile := row[x].Tile
			var run strings.Builder
			for ; x < len(row) && row[x].Tile == tile; x++ {
				run.WriteRune(row[x].Rune)
			}
			if st, ok := tileStyles[tile]; ok {
				b.WriteString(st.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
		}
	}
	return b.String()
}
