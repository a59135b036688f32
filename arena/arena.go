// Package arena implements the deterministic two-paddle ball simulation.
//
// The package owns only the physics and bookkeeping of a single match: ball
// motion, paddle motion with boundary constraints, collision response with
// angle-dependent deflection, and hit/score counters. Deciding when a match
// is over, what the outcome is worth, and how paddles choose to move are all
// the caller's business; the engine just advances one tick at a time and
// reports what it saw.
package arena

// Playfield geometry. Paddle and ball dimensions are fixed properties of the
// game, not tunables; the playfield size is chosen per match at construction.
const (
	PaddleWidth  = 20.0
	PaddleHeight = 100.0
	PaddleVel    = 4.0

	BallRadius = 7.0
	BallMaxVel = 5.0

	// EdgeOffset is the horizontal gap between each paddle and its wall.
	EdgeOffset = 10.0

	// ServeAngleDeg bounds the serve angle: the ball leaves at a uniformly
	// random integer degree in [-ServeAngleDeg, ServeAngleDeg), never 0.
	// The lower bound is inclusive, so a full -30 degree serve can happen;
	// +30 cannot.
	ServeAngleDeg = 30
)

// Side identifies one of the two players.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns the side name for logs and telemetry.
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Direction is a vertical paddle movement.
type Direction int

const (
	DirUp Direction = iota
	DirDown
)

// String returns the direction name.
func (d Direction) String() string {
	if d == DirUp {
		return "up"
	}
	return "down"
}

// Snapshot is the read-only state report produced by every Advance call.
// A fresh value is returned each tick; callers may retain it freely.
type Snapshot struct {
	LeftHits  int
	RightHits int

	LeftScore  int
	RightScore int
}
