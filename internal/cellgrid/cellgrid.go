// Package cellgrid is a small character raster for terminal rendering.
package cellgrid

type Tile int

const (
	TileEmpty Tile = iota
	TileNet
	TileLeftPaddle
	TileRightPaddle
	TileBall
	TileText
)

var tileRunes = map[Tile]rune{
	TileEmpty:       ' ',
	TileNet:         '┊',
	TileLeftPaddle:  '█',
	TileRightPaddle: '█',
	TileBall:        '●',
}

type Cell struct {
	Tile Tile
	Rune rune
}

var blank = Cell{Tile: TileEmpty, Rune: ' '}

type Grid struct {
	Width  int
	Height int
	Cells  [][]Cell
}

func New(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = blank
		}
	}
	return &Grid{Width: width, Height: height, Cells: cells}
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// At returns the cell at (x, y). Out of bounds reads as empty.
func (g *Grid) At(x, y int) Cell {
	if !g.inBounds(x, y) {
		return blank
	}
	return g.Cells[y][x]
}

// Set places t at (x, y) using its default rune. Out of bounds writes are dropped.
func (g *Grid) Set(x, y int, t Tile) {
	g.SetRune(x, y, t, tileRunes[t])
}

func (g *Grid) SetRune(x, y int, t Tile, r rune) {
	if !g.inBounds(x, y) {
		return
	}
	g.Cells[y][x] = Cell{Tile: t, Rune: r}
}

// FillRect fills the half-open cell rectangle [x0,x1) x [y0,y1).
func (g *Grid) FillRect(x0, y0, x1, y1 int, t Tile) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			g.Set(x, y, t)
		}
	}
}

// FillDisc fills every cell whose center lies within r of (cx, cy), both
// measured in cells. A disc smaller than a cell still marks the cell under
// its center.
func (g *Grid) FillDisc(cx, cy, rx, ry float64, t Tile) {
	g.Set(int(cx), int(cy), t)
	if rx <= 0 || ry <= 0 {
		return
	}
	for y := int(cy - ry); y <= int(cy+ry); y++ {
		for x := int(cx - rx); x <= int(cx+rx); x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				g.Set(x, y, t)
			}
		}
	}
}

// Text writes s starting at (x, y), clipping at the grid edges.
func (g *Grid) Text(x, y int, s string) {
	for _, r := range s {
		g.SetRune(x, y, TileText, r)
		x++
	}
}
