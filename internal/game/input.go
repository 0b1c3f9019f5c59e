package game

import (
	"pong/internal/entities"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// Held keys repeat like a keyboard's auto-repeat: once on press, then
	// every repeatInterval ticks after repeatDelay ticks.
	repeatDelay    = 30
	repeatInterval = 3
)

var paddleKeys = []struct {
	key ebiten.Key
	cmd entities.Command
}{
	{ebiten.KeyW, entities.CmdP1Up},
	{ebiten.KeyS, entities.CmdP1Down},
	{ebiten.KeyArrowUp, entities.CmdP2Up},
	{ebiten.KeyArrowDown, entities.CmdP2Down},
}

// keyState is the slice of ebiten's input API the game reads.
type keyState interface {
	PressDuration(key ebiten.Key) int
	JustPressed(key ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) PressDuration(key ebiten.Key) int { return inpututil.KeyPressDuration(key) }
func (ebitenKeys) JustPressed(key ebiten.Key) bool  { return inpututil.IsKeyJustPressed(key) }

func repeating(duration int) bool {
	if duration == 1 {
		return true
	}
	return duration >= repeatDelay && (duration-repeatDelay)%repeatInterval == 0
}

// paddleCommands returns the commands for the paddle keys that fire this tick.
func paddleCommands(keys keyState) []entities.Command {
	var cmds []entities.Command
	for _, b := range paddleKeys {
		if repeating(keys.PressDuration(b.key)) {
			cmds = append(cmds, b.cmd)
		}
	}
	return cmds
}

func (g *Game) handleInput() {
	// Fullscreen toggle with 'F'
	if g.keys.JustPressed(ebiten.KeyF) {
		g.fullscreen = !g.fullscreen
		ebiten.SetFullscreen(g.fullscreen)
	}

	// Pause toggle with Space
	if g.keys.JustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}

	if g.keys.JustPressed(ebiten.KeyQ) || g.keys.JustPressed(ebiten.KeyEscape) {
		g.quit = true
		return
	}

	if g.paused {
		return
	}
	for _, cmd := range paddleCommands(g.keys) {
		g.loop.HandleInput(cmd)
	}
}
