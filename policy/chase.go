package policy

import "github.com/pthm-cable/rally/arena"

// ChasePolicy is a deterministic baseline that keeps the paddle centered on
// the ball. It never holds while the ball is outside its dead zone, which
// makes it a useful sparring partner for exhibitions and tests.
type ChasePolicy struct {
	// DeadZone is how far the ball may drift from the paddle center before
	// the policy reacts. Zero means a half-paddle-height dead zone.
	DeadZone float64
}

// Decide steers the paddle center toward the ball's vertical position. The
// dead zone only widens or narrows the tolerance; the aiming point is always
// the paddle center.
func (p *ChasePolicy) Decide(obs Observation) Action {
	dead := p.DeadZone
	if dead == 0 {
		dead = arena.PaddleHeight / 2
	}

	center := obs.PaddleY + arena.PaddleHeight/2
	switch {
	case obs.BallY < center-dead/2:
		return MoveUp
	case obs.BallY > center+dead/2:
		return MoveDown
	default:
		return Hold
	}
}
