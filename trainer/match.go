// Package trainer drives matches between paddle policies and runs the NEAT
// generation loop that evolves them. The simulation core knows nothing about
// fitness; every reward and penalty applied here is driver policy.
package trainer

import (
	"time"

	"github.com/pthm-cable/rally/arena"
	"github.com/pthm-cable/rally/config"
	"github.com/pthm-cable/rally/policy"
)

// Sink accumulates fitness adjustments for the two sides of a match. All
// adjustments are additive; a sink never replaces a running score.
type Sink interface {
	Credit(side arena.Side, delta float64)
}

// NopSink discards all fitness adjustments. Useful for exhibition matches.
type NopSink struct{}

// Credit does nothing.
func (NopSink) Credit(arena.Side, float64) {}

// Conclusion names why a match ended.
type Conclusion string

const (
	ConcludedScore   Conclusion = "score"    // a side conceded
	ConcludedHitCap  Conclusion = "hit_cap"  // a side reached the hit cap
	ConcludedTimeCap Conclusion = "time_cap" // two passive strategies ran out the clock
)

// Result reports one concluded match.
type Result struct {
	Snapshot   arena.Snapshot
	Ticks      int
	Duration   time.Duration
	Conclusion Conclusion
}

// Match drives one engine with two policies, one decision per side per tick,
// and applies fitness shaping through the sink:
//
//   - holding costs a small penalty each tick, to push strategies off passivity
//   - a rejected boundary-crossing move costs a larger penalty
//   - at conclusion each side is credited its hit count plus the match
//     duration in seconds
//
// The engine itself never concludes; Match stops calling Advance when a side
// scores, a side reaches the hit cap, or the wall-clock cap elapses.
type Match struct {
	engine *arena.Engine
	left   policy.Policy
	right  policy.Policy
	sink   Sink

	maxHits     int
	maxDuration time.Duration

	holdPenalty    float64
	invalidPenalty float64
}

// NewMatch builds a match from the configured caps and fitness shaping.
func NewMatch(engine *arena.Engine, left, right policy.Policy, sink Sink, cfg *config.Config) *Match {
	return &Match{
		engine:         engine,
		left:           left,
		right:          right,
		sink:           sink,
		maxHits:        cfg.Match.MaxHits,
		maxDuration:    time.Duration(cfg.Match.MaxDurationSec * float64(time.Second)),
		holdPenalty:    cfg.Fitness.HoldPenalty,
		invalidPenalty: cfg.Fitness.InvalidPenalty,
	}
}

// Run plays the match to conclusion and credits the final hits and duration
// to both sides.
func (m *Match) Run() Result {
	start := time.Now()
	ticks := 0

	for {
		snap := m.engine.Advance()
		ticks++

		m.applyPolicy(arena.SideLeft, m.left)
		m.applyPolicy(arena.SideRight, m.right)

		if conclusion, done := m.concluded(snap, start); done {
			duration := time.Since(start)
			m.sink.Credit(arena.SideLeft, float64(snap.LeftHits)+duration.Seconds())
			m.sink.Credit(arena.SideRight, float64(snap.RightHits)+duration.Seconds())

			return Result{
				Snapshot:   snap,
				Ticks:      ticks,
				Duration:   duration,
				Conclusion: conclusion,
			}
		}
	}
}

// applyPolicy asks one side's policy for a decision and carries it out,
// charging the shaping penalties as it goes.
func (m *Match) applyPolicy(side arena.Side, p policy.Policy) {
	action := p.Decide(policy.Observe(m.engine, side))

	if action == policy.Hold {
		m.sink.Credit(side, -m.holdPenalty)
		return
	}

	if !m.engine.MovePaddle(side, action.Direction()) {
		m.sink.Credit(side, -m.invalidPenalty)
	}
}

// concluded checks the external termination policy against a snapshot.
func (m *Match) concluded(snap arena.Snapshot, start time.Time) (Conclusion, bool) {
	if snap.LeftScore >= 1 || snap.RightScore >= 1 {
		return ConcludedScore, true
	}
	if snap.LeftHits >= m.maxHits || snap.RightHits >= m.maxHits {
		return ConcludedHitCap, true
	}
	if time.Since(start) >= m.maxDuration {
		return ConcludedTimeCap, true
	}
	return "", false
}
