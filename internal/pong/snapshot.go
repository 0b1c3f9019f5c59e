package pong

import "pong/internal/entities"

type PaddleView struct {
	X, Y, Width, Height float64
	Side                entities.Side
}

type BallView struct {
	X, Y, Radius float64
}

type ScoreView struct {
	Name   string
	Points int
}

// Snapshot is a value copy of everything a frontend needs to draw one
// frame. Mutating it has no effect on the Loop.
type Snapshot struct {
	Width, Height float64
	Paddles       [2]PaddleView
	Ball          BallView
	Scores        [2]ScoreView
	Tick          uint64
	GameOver      bool
	Winner        string
}

// Renderer draws snapshots. Frontends implement it so the simulation never
// depends on a graphics toolkit.
type Renderer interface {
	Render(Snapshot)
}
