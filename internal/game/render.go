package game

import (
	"fmt"
	"image/color"

	"pong/internal/entities"
	"pong/internal/pong"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	// Paddle fills run left to right from the first color to the second.
	paddleGradients = map[entities.Side][2]color.RGBA{
		entities.Left:  {{R: 0, G: 0, B: 255, A: 255}, {R: 0, G: 255, B: 255, A: 255}},   // blue -> cyan
		entities.Right: {{R: 255, G: 0, B: 0, A: 255}, {R: 255, G: 165, B: 0, A: 255}}, // red -> orange
	}
	netColor   = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	pauseColor = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	winsColor  = color.RGBA{R: 160, G: 160, B: 160, A: 255}
)

const (
	labelY     = 30
	winsOffset = 16
	netDash    = 10
	netGap     = 10
	netWidth   = 2
	glyphSize  = 7 // basicfont.Face7x13 advance
)

// screenRenderer draws snapshots onto dst at native field resolution.
type screenRenderer struct {
	dst      *ebiten.Image
	paused   bool
	showWins bool
	wins     [2]int
}

func (r *screenRenderer) Render(s pong.Snapshot) {
	dst := r.dst
	dst.Fill(color.Black)

	cx := float32(s.Width / 2)
	for y := float32(0); y < float32(s.Height); y += netDash + netGap {
		vector.DrawFilledRect(dst, cx-netWidth/2, y, netWidth, netDash, netColor, false)
	}

	for _, p := range s.Paddles {
		drawGradientRect(dst, p)
	}

	vector.DrawFilledCircle(dst, float32(s.Ball.X), float32(s.Ball.Y), float32(s.Ball.Radius), color.White, true)

	for i, pos := range labelPositions(s.Width) {
		text.Draw(dst, scoreLabel(s.Scores[i]), basicfont.Face7x13, pos[0], pos[1], color.White)
		if r.showWins {
			text.Draw(dst, winsLabel(r.wins[i]), basicfont.Face7x13, pos[0], pos[1]+winsOffset, winsColor)
		}
	}

	if r.paused {
		msg := "PAUSED"
		w := len(msg) * glyphSize
		text.Draw(dst, msg, basicfont.Face7x13, (int(s.Width)-w)/2, int(s.Height)/2, pauseColor)
	}
}

// drawGradientRect fills the paddle one pixel column at a time.
func drawGradientRect(dst *ebiten.Image, p pong.PaddleView) {
	cols := int(p.Width)
	if cols < 1 {
		cols = 1
	}
	colW := float32(p.Width) / float32(cols)
	for i := 0; i < cols; i++ {
		c := gradientAt(p.Side, (float64(i)+0.5)/float64(cols))
		x := float32(p.X) + float32(i)*colW
		vector.DrawFilledRect(dst, x, float32(p.Y), colW, float32(p.Height), c, false)
	}
}

// gradientAt interpolates the side's paddle gradient at t in [0,1].
func gradientAt(side entities.Side, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	g := paddleGradients[side]
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return color.RGBA{
		R: lerp(g[0].R, g[1].R),
		G: lerp(g[0].G, g[1].G),
		B: lerp(g[0].B, g[1].B),
		A: 255,
	}
}

// labelPositions returns the baseline origins of the two score labels.
func labelPositions(width float64) [2][2]int {
	w := int(width)
	return [2][2]int{
		{w/4 - 50, labelY},
		{w*3/4 - 120, labelY},
	}
}

func scoreLabel(s pong.ScoreView) string {
	return fmt.Sprintf("%s: %d", s.Name, s.Points)
}

func winsLabel(n int) string {
	if n == 1 {
		return "1 win"
	}
	return fmt.Sprintf("%d wins", n)
}
