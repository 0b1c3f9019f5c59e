package pong

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the fixed dimensions, speeds and thresholds of a match.
// A Loop copies it at construction and never changes it.
type Config struct {
	Width        float64
	Height       float64
	PaddleWidth  float64
	PaddleHeight float64
	BallRadius   float64
	// BallVX and BallVY are the velocity the ball starts with and is
	// given again after every point.
	BallVX     float64
	BallVY     float64
	PaddleStep float64
	WinScore   int
	// TickRate is how many times per second frontends call Tick.
	TickRate    int
	Player1Name string
	Player2Name string
}

func DefaultConfig() Config {
	return Config{
		Width:        600,
		Height:       400,
		PaddleWidth:  15,
		PaddleHeight: 100,
		BallRadius:   10,
		BallVX:       3.5,
		BallVY:       3.5,
		PaddleStep:   20,
		WinScore:     5,
		TickRate:     60,
		Player1Name:  "Player 1",
		Player2Name:  "Player 2",
	}
}

// TickInterval is the time between two ticks, about 16ms at 60 ticks per second.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (c Config) Validate() error {
	for _, v := range []float64{
		c.Width, c.Height, c.PaddleWidth, c.PaddleHeight,
		c.BallRadius, c.BallVX, c.BallVY, c.PaddleStep,
	} {
		if !finite(v) {
			return fmt.Errorf("%w: sizes and speeds must be finite, got %v", ErrInvalidConfig, v)
		}
	}
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: field must be positive, got %vx%v", ErrInvalidConfig, c.Width, c.Height)
	case c.PaddleWidth <= 0 || c.PaddleHeight <= 0:
		return fmt.Errorf("%w: paddle must be positive, got %vx%v", ErrInvalidConfig, c.PaddleWidth, c.PaddleHeight)
	case c.PaddleHeight > c.Height:
		return fmt.Errorf("%w: paddle height %v exceeds field height %v", ErrInvalidConfig, c.PaddleHeight, c.Height)
	case 2*c.PaddleWidth >= c.Width:
		return fmt.Errorf("%w: paddles of width %v leave no room in a field of width %v", ErrInvalidConfig, c.PaddleWidth, c.Width)
	case c.BallRadius <= 0 || 2*c.BallRadius >= c.Height:
		return fmt.Errorf("%w: ball radius %v does not fit a field of height %v", ErrInvalidConfig, c.BallRadius, c.Height)
	case c.BallVX == 0:
		return fmt.Errorf("%w: horizontal ball speed must not be zero", ErrInvalidConfig)
	// A vertical step shorter than the radius keeps the ball's center
	// inside the field when it bounces.
	case math.Abs(c.BallVY) >= c.BallRadius:
		return fmt.Errorf("%w: vertical ball speed %v must be below the ball radius %v", ErrInvalidConfig, c.BallVY, c.BallRadius)
	case c.PaddleStep <= 0:
		return fmt.Errorf("%w: paddle step must be positive, got %v", ErrInvalidConfig, c.PaddleStep)
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick rate must be positive, got %d", ErrInvalidConfig, c.TickRate)
	case c.WinScore <= 0:
		return fmt.Errorf("%w: win score must be positive, got %d", ErrInvalidConfig, c.WinScore)
	case c.Player1Name == "" || c.Player2Name == "":
		return fmt.Errorf("%w: player names must not be empty", ErrInvalidConfig)
	}
	return nil
}
