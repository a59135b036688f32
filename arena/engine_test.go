package arena

import (
	"math"
	"math/rand"
	"testing"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(700, 500, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestNewEngineGeometry(t *testing.T) {
	e := newTestEngine(t)

	if e.Left.X != EdgeOffset {
		t.Errorf("left paddle X = %v, want %v", e.Left.X, EdgeOffset)
	}
	if want := 700 - EdgeOffset - PaddleWidth; e.Right.X != want {
		t.Errorf("right paddle X = %v, want %v", e.Right.X, want)
	}
	if want := 500/2 - PaddleHeight/2; e.Left.Y != want || e.Right.Y != want {
		t.Errorf("paddle Y = (%v, %v), want both %v", e.Left.Y, e.Right.Y, want)
	}
	if e.Ball.X != 350 || e.Ball.Y != 250 {
		t.Errorf("ball at (%v, %v), want (350, 250)", e.Ball.X, e.Ball.Y)
	}
}

func TestNewEngineRejectsBadGeometry(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
	}{
		{"zero width", 0, 500},
		{"negative width", -700, 500},
		{"zero height", 700, 0},
		{"height below paddle", 700, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewEngine(tt.width, tt.height, rand.New(rand.NewSource(1))); err == nil {
				t.Errorf("NewEngine(%v, %v) succeeded, want error", tt.width, tt.height)
			}
		})
	}
}

func TestMovePaddleBounds(t *testing.T) {
	e := newTestEngine(t)

	// Walk the left paddle to the top edge. From the centered start the
	// paddle reaches exactly Y=0, after which every further move must be
	// rejected without mutation.
	for e.MovePaddle(SideLeft, DirUp) {
	}
	if e.Left.Y != 0 {
		t.Errorf("after walking up, Y = %v, want 0", e.Left.Y)
	}
	if e.MovePaddle(SideLeft, DirUp) {
		t.Error("move up at top edge accepted, want rejection")
	}
	if e.Left.Y != 0 {
		t.Errorf("rejected move mutated Y to %v", e.Left.Y)
	}

	// Same at the bottom edge for the right paddle.
	for e.MovePaddle(SideRight, DirDown) {
	}
	if want := e.Height - PaddleHeight; e.Right.Y != want {
		t.Errorf("after walking down, Y = %v, want %v", e.Right.Y, want)
	}
	if e.MovePaddle(SideRight, DirDown) {
		t.Error("move down at bottom edge accepted, want rejection")
	}
}

func TestMovePaddleAlwaysInBounds(t *testing.T) {
	e := newTestEngine(t)
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 10000; i++ {
		side := SideLeft
		if rng.Intn(2) == 1 {
			side = SideRight
		}
		dir := DirUp
		if rng.Intn(2) == 1 {
			dir = DirDown
		}
		e.MovePaddle(side, dir)

		for _, p := range []*Paddle{e.Left, e.Right} {
			if p.Y < 0 || p.Y > e.Height-PaddleHeight {
				t.Fatalf("iteration %d: paddle Y = %v out of [0, %v]", i, p.Y, e.Height-PaddleHeight)
			}
		}
	}
}

func TestCenterHitDeflection(t *testing.T) {
	e := newTestEngine(t)

	// Ball heading straight at the right paddle's vertical center: the
	// colliding tick must flip the horizontal velocity and send the ball
	// back nearly flat.
	e.Ball.X = e.Right.X - BallRadius - BallMaxVel + 1
	e.Ball.Y = e.Right.CenterY()
	e.Ball.VelX = BallMaxVel
	e.Ball.VelY = 0

	snap := e.Advance()

	if e.Ball.VelX != -BallMaxVel {
		t.Errorf("VelX = %v, want %v", e.Ball.VelX, -BallMaxVel)
	}
	if math.Abs(e.Ball.VelY) > 1e-9 {
		t.Errorf("VelY = %v, want ~0 for a center hit", e.Ball.VelY)
	}
	if snap.RightHits != 1 {
		t.Errorf("RightHits = %d, want 1", snap.RightHits)
	}
	if snap.LeftHits != 0 || snap.LeftScore != 0 || snap.RightScore != 0 {
		t.Errorf("unexpected counters in %+v", snap)
	}
}

func TestEdgeHitDeflection(t *testing.T) {
	e := newTestEngine(t)

	// Strike near the paddle's top edge: the deflection angle grows with
	// the offset from center, negated, so a hit above center sends the
	// ball upward.
	e.Ball.X = e.Right.X - BallRadius - BallMaxVel + 1
	e.Ball.Y = e.Right.Y + 10
	e.Ball.VelX = BallMaxVel
	e.Ball.VelY = 0

	e.Advance()

	offset := e.Right.CenterY() - (e.Right.Y + 10)
	want := -offset / ((PaddleHeight / 2) / BallMaxVel)
	if math.Abs(e.Ball.VelY-want) > 1e-9 {
		t.Errorf("VelY = %v, want %v", e.Ball.VelY, want)
	}
	if e.Ball.VelY >= 0 {
		t.Errorf("VelY = %v, want negative (upward) for an above-center hit", e.Ball.VelY)
	}
}

func TestDirectionGatedCollision(t *testing.T) {
	e := newTestEngine(t)

	// A ball overlapping the left paddle but moving right must not collide:
	// only the paddle the ball is approaching is tested.
	e.Ball.X = e.Left.X + PaddleWidth
	e.Ball.Y = e.Left.CenterY()
	e.Ball.VelX = BallMaxVel
	e.Ball.VelY = 0

	snap := e.Advance()
	if snap.LeftHits != 0 {
		t.Errorf("LeftHits = %d, want 0 (ball moving away)", snap.LeftHits)
	}
}

func TestWallBounce(t *testing.T) {
	e := newTestEngine(t)

	e.Ball.X = 350
	e.Ball.Y = e.Height - BallRadius - 1
	e.Ball.VelX = 2
	e.Ball.VelY = 3

	e.Advance()
	if e.Ball.VelY != -3 {
		t.Errorf("VelY = %v, want -3 after bottom wall bounce", e.Ball.VelY)
	}
}

func TestScoringLeftExit(t *testing.T) {
	e := newTestEngine(t)

	// Out of reach of the left paddle so only the scoring branch fires.
	e.Ball.X = -1
	e.Ball.Y = 100
	e.Ball.VelX = -3
	e.Ball.VelY = 0

	snap := e.Advance()

	if snap.RightScore != 1 {
		t.Errorf("RightScore = %d, want 1", snap.RightScore)
	}
	if snap.LeftScore != 0 {
		t.Errorf("LeftScore = %d, want 0", snap.LeftScore)
	}
	if snap.LeftHits != 0 || snap.RightHits != 0 {
		t.Errorf("scoring touched hit counters: %+v", snap)
	}
	if e.Ball.X != 350 || e.Ball.Y != 250 {
		t.Errorf("ball at (%v, %v) after concede, want reset to (350, 250)", e.Ball.X, e.Ball.Y)
	}
}

func TestScoringRightExit(t *testing.T) {
	e := newTestEngine(t)

	e.Ball.X = e.Width + 1
	e.Ball.Y = 100
	e.Ball.VelX = 3
	e.Ball.VelY = 0

	snap := e.Advance()
	if snap.LeftScore != 1 || snap.RightScore != 0 {
		t.Errorf("scores = (%d, %d), want (1, 0)", snap.LeftScore, snap.RightScore)
	}
}

func TestConcedeScenario(t *testing.T) {
	// End-to-end: 700x500 playfield, ball forced to (0, 250) moving left.
	// One tick later the right side has scored and the ball is back at its
	// construction position.
	e := newTestEngine(t)
	e.Ball.X = 0
	e.Ball.Y = 250
	e.Ball.VelX = -3

	snap := e.Advance()

	if snap.RightScore != 1 {
		t.Errorf("RightScore = %d, want 1", snap.RightScore)
	}
	if e.Ball.X != 350 || e.Ball.Y != 250 {
		t.Errorf("ball at (%v, %v), want (350, 250)", e.Ball.X, e.Ball.Y)
	}
}

func TestEngineReset(t *testing.T) {
	e := newTestEngine(t)

	// Disturb everything, then reset.
	e.Ball.X = -1
	e.Ball.Y = 100
	e.Ball.VelX = -3
	e.Ball.VelY = 0
	e.Advance()
	e.MovePaddle(SideLeft, DirUp)
	e.MovePaddle(SideRight, DirDown)

	e.Reset()

	snap := e.Snapshot()
	if snap != (Snapshot{}) {
		t.Errorf("counters after reset = %+v, want all zero", snap)
	}
	if e.Ball.X != 350 || e.Ball.Y != 250 {
		t.Errorf("ball at (%v, %v), want (350, 250)", e.Ball.X, e.Ball.Y)
	}
	if want := e.Height/2 - PaddleHeight/2; e.Left.Y != want || e.Right.Y != want {
		t.Errorf("paddles at (%v, %v), want both %v", e.Left.Y, e.Right.Y, want)
	}
}

func TestSnapshotIsValueCopy(t *testing.T) {
	e := newTestEngine(t)
	before := e.Snapshot()
	e.Ball.X = -1
	e.Ball.Y = 100
	e.Ball.VelX = -3
	e.Advance()

	if before.RightScore != 0 {
		t.Error("snapshot mutated by a later Advance")
	}
}
