package game

import (
	"log"
	"math"
	"time"

	"pong/internal/pong"
	"pong/internal/results"

	"github.com/hajimehoshi/ebiten/v2"
)

// Options tune the desktop frontend; the match itself is set by pong.Config.
type Options struct {
	// Scale multiplies the window size. Values <= 0 mean 1.
	Scale float64
	// SoundsDir holds optional wav overrides, default "assets/sounds".
	SoundsDir string
	// RecordResults saves the finished match to the results history.
	RecordResults bool
}

type Game struct {
	loop          *pong.Loop
	renderer      *screenRenderer
	offscreen     *ebiten.Image
	keys          keyState
	audio         *AudioManager
	scale         float64
	fullscreen    bool
	paused        bool
	quit          bool
	recordResults bool
	// wins are the players' past match wins, shown when results are recorded.
	wins [2]int
}

func New(cfg pong.Config, opts Options) (*Game, error) {
	loop, err := pong.New(cfg)
	if err != nil {
		return nil, err
	}
	g := &Game{
		loop:          loop,
		renderer:      &screenRenderer{},
		keys:          ebitenKeys{},
		audio:         NewAudioManager(opts.SoundsDir),
		scale:         opts.Scale,
		recordResults: opts.RecordResults,
	}
	if g.scale <= 0 || math.IsNaN(g.scale) || math.IsInf(g.scale, 0) {
		g.scale = 1.0
	}
	g.loadWins()
	return g, nil
}

// FitScale returns the scale that fits a field of fieldW x fieldH into about
// 75% of a screen of screenW x screenH, or 1 when the screen size is unknown.
func FitScale(screenW, screenH int, fieldW, fieldH float64) float64 {
	const fit = 0.75
	if screenW <= 0 || screenH <= 0 || fieldW <= 0 || fieldH <= 0 {
		return 1.0
	}
	scaleW := float64(screenW) * fit / fieldW
	scaleH := float64(screenH) * fit / fieldH
	s := math.Min(scaleW, scaleH)
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return 1.0
	}
	return s
}

func (g *Game) fieldSize() (int, int) {
	cfg := g.loop.Config()
	return int(cfg.Width), int(cfg.Height)
}

func (g *Game) ScreenWidth() int {
	w, _ := g.fieldSize()
	return int(float64(w) * g.scale)
}

func (g *Game) ScreenHeight() int {
	_, h := g.fieldSize()
	return int(float64(h) * g.scale)
}

// TPS is the update rate ebiten should run at.
func (g *Game) TPS() int {
	return g.loop.Config().TickRate
}

// Winner is the winning player's name, empty if the game was quit early.
func (g *Game) Winner() string {
	return g.loop.WinnerName()
}

func (g *Game) Update() error {
	g.handleInput()
	if g.quit {
		return ebiten.Termination
	}
	if g.paused {
		return nil
	}

	ev := g.loop.Tick()
	g.playEvents(ev)
	if ev.Has(pong.EventGameOver) {
		g.saveResult()
		return ebiten.Termination
	}
	return nil
}

func (g *Game) playEvents(ev pong.Events) {
	if g.audio == nil {
		return
	}
	switch {
	case ev.Scored():
		g.audio.PlayScore()
	case ev.Has(pong.EventPaddleHit):
		g.audio.PlayPaddle()
	case ev.Has(pong.EventWallBounce):
		g.audio.PlayWall()
	}
}

func (g *Game) saveResult() {
	if !g.recordResults {
		return
	}
	rec := results.FromSnapshot(g.loop.Snapshot(), time.Now().UTC())
	if err := results.Save(rec); err != nil {
		log.Printf("pong: saving result: %v", err)
	}
	g.loadWins()
}

func (g *Game) loadWins() {
	if !g.recordResults {
		return
	}
	cfg := g.loop.Config()
	g.wins = [2]int{results.Wins(cfg.Player1Name), results.Wins(cfg.Player2Name)}
}

// Wins reports how many recorded matches each player has won, including
// the current one once it is over.
func (g *Game) Wins() [2]int {
	return g.wins
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Render at native field resolution then scale up
	w, h := g.fieldSize()
	if g.offscreen == nil {
		g.offscreen = ebiten.NewImage(w, h)
	}
	g.renderer.dst = g.offscreen
	g.renderer.paused = g.paused
	g.renderer.showWins = g.recordResults
	g.renderer.wins = g.wins
	g.loop.Render(g.renderer)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	screen.DrawImage(g.offscreen, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.ScreenWidth(), g.ScreenHeight()
}
