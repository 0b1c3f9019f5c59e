// Package pong is the two-paddle simulation: ball physics, collisions,
// scoring and paddle input. It knows nothing about windows or terminals.
package pong

import (
	"math"

	"pong/internal/entities"
)

const noWinner = -1

// Loop owns the paddles, the ball and the score of one match. It is not
// safe for concurrent use; callers serialize Tick and HandleInput.
type Loop struct {
	cfg     Config
	paddles [2]entities.Paddle
	ball    entities.Ball
	scores  [2]int
	names   [2]string
	winner  int
	ticks   uint64
}

// New validates cfg and returns a Loop with both paddles centered and the
// ball at the middle of the field.
func New(cfg Config) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	l := &Loop{
		cfg:    cfg,
		names:  [2]string{cfg.Player1Name, cfg.Player2Name},
		winner: noWinner,
	}
	startY := cfg.Height/2 - cfg.PaddleHeight/2
	l.paddles[entities.Left] = entities.Paddle{
		X: 0, Y: startY,
		Width: cfg.PaddleWidth, Height: cfg.PaddleHeight,
		Side: entities.Left,
	}
	l.paddles[entities.Right] = entities.Paddle{
		X: cfg.Width - cfg.PaddleWidth, Y: startY,
		Width: cfg.PaddleWidth, Height: cfg.PaddleHeight,
		Side: entities.Right,
	}
	l.ball.Radius = cfg.BallRadius
	l.resetBall()
	return l, nil
}

func (l *Loop) Config() Config { return l.cfg }

// Tick advances the match by one step and reports what happened. It does
// nothing once the game is over.
//
// Collision compares the ball's leading edge with a paddle's plane and the
// ball's center with its span. There is no sub-step interpolation, so a
// ball moving further than the paddle width in one tick can pass through.
func (l *Loop) Tick() Events {
	if l.IsGameOver() {
		return 0
	}
	l.ticks++
	var ev Events
	b := &l.ball
	b.Advance()

	left, right := &l.paddles[entities.Left], &l.paddles[entities.Right]
	if b.Left() < l.cfg.PaddleWidth && left.Spans(b.Y) {
		b.VX = math.Abs(b.VX)
		ev |= EventPaddleHit
	} else if b.Right() > l.cfg.Width-l.cfg.PaddleWidth && right.Spans(b.Y) {
		b.VX = -math.Abs(b.VX)
		ev |= EventPaddleHit
	}

	if b.Top() < 0 || b.Bottom() > l.cfg.Height {
		b.VY = -b.VY
		ev |= EventWallBounce
	}

	// One miss per tick at most, left first, so two players can never
	// reach the win score on the same tick.
	if b.X < 0 {
		ev |= EventScoreRight | l.score(entities.Right)
	} else if b.X > l.cfg.Width {
		ev |= EventScoreLeft | l.score(entities.Left)
	}
	return ev
}

func (l *Loop) score(side entities.Side) Events {
	l.scores[side]++
	var ev Events
	if l.winner == noWinner && l.scores[side] >= l.cfg.WinScore {
		l.winner = int(side)
		ev = EventGameOver
	}
	l.resetBall()
	return ev
}

func (l *Loop) resetBall() {
	l.ball.Reset(l.cfg.Width/2, l.cfg.Height/2, l.cfg.BallVX, l.cfg.BallVY)
}

// HandleInput moves the paddle cmd refers to by one step, clamped to the
// field. Unknown commands and input after game over are ignored.
func (l *Loop) HandleInput(cmd entities.Command) {
	if l.IsGameOver() {
		return
	}
	side, ok := cmd.Side()
	if !ok {
		return
	}
	l.paddles[side].Move(cmd.Delta(), l.cfg.PaddleStep, l.cfg.Height)
}

func (l *Loop) IsGameOver() bool {
	return l.winner != noWinner
}

// WinnerName is the name of the first player to reach the win score, or ""
// while the match is running.
func (l *Loop) WinnerName() string {
	if l.winner == noWinner {
		return ""
	}
	return l.names[l.winner]
}

func (l *Loop) Score(side entities.Side) int {
	return l.scores[side]
}

func (l *Loop) Snapshot() Snapshot {
	s := Snapshot{
		Width:    l.cfg.Width,
		Height:   l.cfg.Height,
		Ball:     BallView{X: l.ball.X, Y: l.ball.Y, Radius: l.ball.Radius},
		Tick:     l.ticks,
		GameOver: l.IsGameOver(),
		Winner:   l.WinnerName(),
	}
	for i, p := range l.paddles {
		s.Paddles[i] = PaddleView{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height, Side: p.Side}
		s.Scores[i] = ScoreView{Name: l.names[i], Points: l.scores[i]}
	}
	return s
}

// Render hands the current snapshot to r.
func (l *Loop) Render(r Renderer) {
	r.Render(l.Snapshot())
}
