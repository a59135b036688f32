// Package policy defines the decision boundary between the simulation core
// and whatever is steering a paddle: a trained network, a scripted baseline,
// or a human input translator. A policy sees three numbers per tick and
// answers with one of three actions; everything else about the controller is
// its own business.
package policy

import "github.com/pthm-cable/rally/arena"

// Action is the closed set of per-tick paddle decisions.
type Action int

const (
	Hold Action = iota
	MoveUp
	MoveDown
)

// String returns the action name for logs and telemetry.
func (a Action) String() string {
	switch a {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	default:
		return "hold"
	}
}

// Direction converts a movement action to the arena's direction type.
// Only valid for MoveUp and MoveDown.
func (a Action) Direction() arena.Direction {
	if a == MoveUp {
		return arena.DirUp
	}
	return arena.DirDown
}

// Observation is what a paddle controller sees each tick: its own vertical
// position, the absolute horizontal distance to the ball, and the ball's
// vertical position.
type Observation struct {
	PaddleY  float64
	BallDist float64
	BallY    float64
}

// Observe builds the observation for one side of an engine.
func Observe(e *arena.Engine, side arena.Side) Observation {
	p := e.Left
	if side == arena.SideRight {
		p = e.Right
	}
	dist := p.X - e.Ball.X
	if dist < 0 {
		dist = -dist
	}
	return Observation{PaddleY: p.Y, BallDist: dist, BallY: e.Ball.Y}
}

// Policy maps an observation to a paddle action. Implementations must be
// usable for the full length of a match; they may keep internal state.
type Policy interface {
	Decide(obs Observation) Action
}
