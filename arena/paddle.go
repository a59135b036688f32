package arena

// Paddle is a vertical-only rigid body with fixed size. It carries no
// boundary knowledge: Move shifts it unconditionally, and the engine decides
// whether a move is legal before calling it. That split lets the engine
// reject a move without ever mutating paddle state.
type Paddle struct {
	X, Y float64

	originalX, originalY float64
}

// NewPaddle creates a paddle at the given position, capturing it as the
// position Reset restores.
func NewPaddle(x, y float64) *Paddle {
	return &Paddle{X: x, Y: y, originalX: x, originalY: y}
}

// Move shifts the paddle by the fixed velocity in the given direction.
func (p *Paddle) Move(dir Direction) {
	if dir == DirUp {
		p.Y -= PaddleVel
	} else {
		p.Y += PaddleVel
	}
}

// Reset restores the paddle to its construction position.
func (p *Paddle) Reset() {
	p.X = p.originalX
	p.Y = p.originalY
}

// CenterY returns the vertical center of the paddle face.
func (p *Paddle) CenterY() float64 {
	return p.Y + PaddleHeight/2
}
