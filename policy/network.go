package policy

import (
	"log/slog"

	"github.com/baldhumanity/neat-go/neat"
	"github.com/baldhumanity/neat-go/neat/nn"
)

// NetworkPolicy steers a paddle with a NEAT feed-forward network: the three
// observation values go in, the arg-max over the three outputs comes back as
// the action. Output index 1 means up, index 2 means down, anything else
// holds.
type NetworkPolicy struct {
	net    *nn.FeedForwardNetwork
	failed bool
}

// NewNetworkPolicy builds a policy from a genome's phenotype network.
func NewNetworkPolicy(g *neat.Genome) (*NetworkPolicy, error) {
	net, err := nn.CreateFeedForwardNetwork(g)
	if err != nil {
		return nil, err
	}
	return &NetworkPolicy{net: net}, nil
}

// Decide activates the network on the observation. A network that fails to
// activate holds for the rest of the match; the failure is logged once.
func (p *NetworkPolicy) Decide(obs Observation) Action {
	if p.failed {
		return Hold
	}

	outputs, err := p.net.Activate([]float64{obs.PaddleY, obs.BallDist, obs.BallY})
	if err != nil || len(outputs) < 3 {
		p.failed = true
		slog.Warn("network activation failed, holding for remainder of match", "error", err)
		return Hold
	}

	return argmax(outputs)
}

// argmax maps the largest output to its action. Ties resolve to the lowest
// index.
func argmax(outputs []float64) Action {
	best := 0
	for i, v := range outputs {
		if v > outputs[best] {
			best = i
		}
	}
	switch best {
	case 1:
		return MoveUp
	case 2:
		return MoveDown
	default:
		return Hold
	}
}
