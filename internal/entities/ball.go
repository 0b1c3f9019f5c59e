package entities

type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

func (b *Ball) Advance() {
	b.X += b.VX
	b.Y += b.VY
}

// Reset recenters the ball at (x, y) with velocity (vx, vy).
func (b *Ball) Reset(x, y, vx, vy float64) {
	b.X, b.Y = x, y
	b.VX, b.VY = vx, vy
}

func (b *Ball) Left() float64   { return b.X - b.Radius }
func (b *Ball) Right() float64  { return b.X + b.Radius }
func (b *Ball) Top() float64    { return b.Y - b.Radius }
func (b *Ball) Bottom() float64 { return b.Y + b.Radius }
