package entities

type Paddle struct {
	X, Y          float64
	Width, Height float64
	Side          Side
}

// Move shifts the paddle by dir*step and clamps it to [0, fieldHeight-Height].
func (p *Paddle) Move(dir int, step, fieldHeight float64) {
	y := p.Y + float64(dir)*step
	maxY := fieldHeight - p.Height
	if y > maxY {
		y = maxY
	}
	if y < 0 {
		y = 0
	}
	p.Y = y
}

// Spans reports whether y lies strictly inside the paddle's vertical extent.
func (p *Paddle) Spans(y float64) bool {
	return y > p.Y && y < p.Y+p.Height
}
