package arena

import (
	"fmt"
	"math/rand"
)

// Engine owns one ball and two paddles for the lifetime of a single match
// and advances the simulation one tick per Advance call. It is rate-agnostic
// and has no terminal state: callers decide when a match is over by reading
// the snapshots it returns.
//
// Engines are not safe for concurrent use; run independent matches on
// independent instances.
type Engine struct {
	Width, Height float64

	Ball  *Ball
	Left  *Paddle
	Right *Paddle

	leftHits, rightHits   int
	leftScore, rightScore int
}

// NewEngine creates an engine for a width x height playfield: paddles a
// fixed offset from each wall and vertically centered, ball centered. The
// rng drives every serve; pass a seeded source for reproducible matches.
func NewEngine(width, height float64, rng *rand.Rand) (*Engine, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("arena: playfield dimensions must be positive, got %gx%g", width, height)
	}
	if height < PaddleHeight {
		return nil, fmt.Errorf("arena: playfield height %g cannot fit a paddle of height %g", height, PaddleHeight)
	}

	paddleY := height/2 - PaddleHeight/2

	return &Engine{
		Width:  width,
		Height: height,
		Left:   NewPaddle(EdgeOffset, paddleY),
		Right:  NewPaddle(width-EdgeOffset-PaddleWidth, paddleY),
		Ball:   NewBall(width/2, height/2, rng),
	}, nil
}

// Advance runs one simulation tick: ball motion, collision resolution, then
// the out-of-bounds scoring check. It returns a fresh snapshot of the
// counters after the tick.
func (e *Engine) Advance() Snapshot {
	e.Ball.Move()
	e.handleCollision()

	// At most one side can score per tick: a single-step displacement cannot
	// cross both walls.
	if e.Ball.X < 0 {
		e.Ball.Reset()
		e.rightScore++
	} else if e.Ball.X > e.Width {
		e.Ball.Reset()
		e.leftScore++
	}

	return e.Snapshot()
}

// handleCollision resolves wall and paddle contacts for the current tick.
func (e *Engine) handleCollision() {
	ball := e.Ball

	// Wall bounce flips the vertical velocity without clamping position; the
	// ball may graze past the wall for one frame.
	if ball.Y+BallRadius >= e.Height {
		ball.VelY *= -1
	} else if ball.Y-BallRadius <= 0 {
		ball.VelY *= -1
	}

	// Paddle tests are gated on travel direction so the ball cannot re-hit
	// the paddle it just bounced off within the same frame.
	if ball.VelX < 0 {
		if e.Left.Y <= ball.Y && ball.Y <= e.Left.Y+PaddleHeight {
			if ball.X-BallRadius <= e.Left.X+PaddleWidth {
				e.deflect(e.Left)
				e.leftHits++
			}
		}
	} else {
		if e.Right.Y <= ball.Y && ball.Y <= e.Right.Y+PaddleHeight {
			if ball.X+BallRadius >= e.Right.X {
				e.deflect(e.Right)
				e.rightHits++
			}
		}
	}
}

// deflect reverses the ball horizontally and recomputes the vertical
// velocity from how far off-center the paddle was struck: a center hit sends
// the ball back flat, an edge hit at the maximal angle.
func (e *Engine) deflect(p *Paddle) {
	ball := e.Ball
	ball.VelX *= -1

	offset := p.CenterY() - ball.Y
	reduction := (PaddleHeight / 2) / BallMaxVel
	ball.VelY = -offset / reduction
}

// MovePaddle applies a boundary-checked move to one paddle. The prospective
// position is computed first; a move that would leave the playfield is
// rejected without touching the paddle, and the false return is the only
// signal an external decision-maker gets about it.
func (e *Engine) MovePaddle(side Side, dir Direction) bool {
	p := e.Left
	if side == SideRight {
		p = e.Right
	}

	next := p.Y + PaddleVel
	if dir == DirUp {
		next = p.Y - PaddleVel
	}
	if next < 0 || next > e.Height-PaddleHeight {
		return false
	}

	p.Move(dir)
	return true
}

// Reset restores the ball and both paddles to their original positions and
// zeroes all counters.
func (e *Engine) Reset() {
	e.Ball.Reset()
	e.Left.Reset()
	e.Right.Reset()
	e.leftHits = 0
	e.rightHits = 0
	e.leftScore = 0
	e.rightScore = 0
}

// Snapshot returns the current counters without advancing the simulation.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		LeftHits:   e.leftHits,
		RightHits:  e.rightHits,
		LeftScore:  e.leftScore,
		RightScore: e.rightScore,
	}
}
