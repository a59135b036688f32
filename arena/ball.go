package arena

import (
	"math"
	"math/rand"
)

// Ball is a free-moving point body. All randomness flows through the
// injected rand.Rand, so a seeded source reproduces every serve exactly.
type Ball struct {
	X, Y       float64
	VelX, VelY float64

	originalX, originalY float64
	rng                  *rand.Rand
}

// NewBall creates a ball at the given position with a randomized serve: a
// non-zero angle inside the serve cone and a fair coin flip for the
// horizontal direction.
func NewBall(x, y float64, rng *rand.Rand) *Ball {
	b := &Ball{X: x, Y: y, originalX: x, originalY: y, rng: rng}

	angle := b.serveAngle()
	dir := 1.0
	if rng.Float64() < 0.5 {
		dir = -1.0
	}

	b.VelX = dir * math.Abs(math.Cos(angle)*BallMaxVel)
	b.VelY = math.Sin(angle) * BallMaxVel

	return b
}

// serveAngle samples a uniformly random integer degree in
// [-ServeAngleDeg, ServeAngleDeg), rejecting exactly 0 so the ball never
// leaves dead horizontal. The exclusion set is a single value out of 60, so
// the rejection loop terminates almost surely.
func (b *Ball) serveAngle() float64 {
	for {
		deg := b.rng.Intn(2*ServeAngleDeg) - ServeAngleDeg
		if deg != 0 {
			return float64(deg) * math.Pi / 180
		}
	}
}

// Move advances the ball by one Euler step.
func (b *Ball) Move() {
	b.X += b.VelX
	b.Y += b.VelY
}

// Reset restores the ball to its construction position and serves again.
// The vertical velocity is resampled from a fresh angle; the horizontal
// velocity keeps its magnitude and only flips sign, so the side that just
// conceded receives the serve. The asymmetry is deliberate game behavior.
func (b *Ball) Reset() {
	b.X = b.originalX
	b.Y = b.originalY

	angle := b.serveAngle()
	b.VelY = math.Sin(angle) * BallMaxVel
	b.VelX *= -1
}
