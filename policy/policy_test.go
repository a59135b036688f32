package policy

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/rally/arena"
)

func TestArgmax(t *testing.T) {
	tests := []struct {
		name    string
		outputs []float64
		want    Action
	}{
		{"hold wins", []float64{0.9, 0.3, 0.2}, Hold},
		{"up wins", []float64{0.1, 0.8, 0.2}, MoveUp},
		{"down wins", []float64{0.1, 0.2, 0.9}, MoveDown},
		{"tie resolves low", []float64{0.5, 0.5, 0.5}, Hold},
		{"negative outputs", []float64{-0.4, -0.1, -0.9}, MoveUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := argmax(tt.outputs); got != tt.want {
				t.Errorf("argmax(%v) = %v, want %v", tt.outputs, got, tt.want)
			}
		})
	}
}

func TestObserve(t *testing.T) {
	e, err := arena.NewEngine(700, 500, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	e.Ball.X = 100
	e.Ball.Y = 333

	left := Observe(e, arena.SideLeft)
	if left.PaddleY != e.Left.Y {
		t.Errorf("left PaddleY = %v, want %v", left.PaddleY, e.Left.Y)
	}
	if left.BallDist != 100-arena.EdgeOffset {
		t.Errorf("left BallDist = %v, want %v", left.BallDist, 100-arena.EdgeOffset)
	}
	if left.BallY != 333 {
		t.Errorf("left BallY = %v, want 333", left.BallY)
	}

	// Distance is absolute on both sides of the ball.
	right := Observe(e, arena.SideRight)
	if want := e.Right.X - 100; right.BallDist != want {
		t.Errorf("right BallDist = %v, want %v", right.BallDist, want)
	}
}

func TestChasePolicy(t *testing.T) {
	p := &ChasePolicy{}

	tests := []struct {
		name string
		obs  Observation
		want Action
	}{
		{"ball above", Observation{PaddleY: 200, BallY: 100}, MoveUp},
		{"ball below", Observation{PaddleY: 200, BallY: 400}, MoveDown},
		{"ball centered", Observation{PaddleY: 200, BallY: 250}, Hold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Decide(tt.obs); got != tt.want {
				t.Errorf("Decide(%+v) = %v, want %v", tt.obs, got, tt.want)
			}
		})
	}
}

func TestChasePolicyCustomDeadZone(t *testing.T) {
	// A narrower dead zone must tighten the tolerance without moving the
	// aiming point off the paddle center (PaddleY + 50).
	p := &ChasePolicy{DeadZone: 10}

	tests := []struct {
		name string
		obs  Observation
		want Action
	}{
		{"just above tolerance", Observation{PaddleY: 200, BallY: 243}, MoveUp},
		{"inside tolerance high", Observation{PaddleY: 200, BallY: 247}, Hold},
		{"inside tolerance low", Observation{PaddleY: 200, BallY: 253}, Hold},
		{"just below tolerance", Observation{PaddleY: 200, BallY: 257}, MoveDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Decide(tt.obs); got != tt.want {
				t.Errorf("Decide(%+v) = %v, want %v", tt.obs, got, tt.want)
			}
		})
	}
}

func TestActionDirection(t *testing.T) {
	if MoveUp.Direction() != arena.DirUp {
		t.Error("MoveUp must map to DirUp")
	}
	if MoveDown.Direction() != arena.DirDown {
		t.Error("MoveDown must map to DirDown")
	}
}
