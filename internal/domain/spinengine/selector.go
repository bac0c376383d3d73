package spinengine

import (
	"github.com/luckydraw-lab/backend/internal/entity"
	"github.com/luckydraw-lab/backend/pkg/crypto"
)

// Rand is the randomness source of the selector. The default draws from
// crypto/rand; tests substitute a deterministic source.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

type cryptoRand struct{}

func (cryptoRand) Float64() float64 { return crypto.RandFloat64() }
func (cryptoRand) Intn(n int) int   { return crypto.RandIntn(n) }

var DefaultRand Rand = cryptoRand{}

// Candidate is a reward allocation that can still produce a win, paired with
// the reward's base win probability.
type Candidate struct {
	RewardEvent *entity.RewardEvent
	Probability float64
}

type Outcome struct {
	Win         bool
	RewardEvent *entity.RewardEvent
}

// EffectiveProbability scales a base win probability by the active golden
// hour multiplier, capped at 1.0.
func EffectiveProbability(base, multiplier float64) float64 {
	p := base * multiplier
	if p > 1.0 {
		return 1.0
	}

	return p
}

// Select draws the outcome of one spin in two stages: first the aggregate
// any-reward win chance (the sum of effective probabilities, capped at 1.0),
// then, on a win, the reward itself weighted by effective probability. With
// the sum below 1.0 this makes each reward's observed win frequency converge
// to its own effective probability no matter how many rewards compete at the
// location. An empty candidate set is always a loss.
func Select(candidates []Candidate, multiplier float64, r Rand) Outcome {
	if len(candidates) == 0 {
		return Outcome{}
	}

	effective := make([]float64, len(candidates))
	total := 0.0
	for i, c := range candidates {
		effective[i] = EffectiveProbability(c.Probability, multiplier)
		total += effective[i]
	}

	if total <= 0 {
		return Outcome{}
	}

	winChance := total
	if winChance > 1.0 {
		winChance = 1.0
	}

	if r.Float64() >= winChance {
		return Outcome{}
	}

	pick := r.Float64() * total
	for i, c := range candidates {
		if pick < effective[i] {
			return Outcome{Win: true, RewardEvent: c.RewardEvent}
		}

		pick -= effective[i]
	}

	// Floating-point underflow can leave pick just past the last bucket;
	// every candidate has the same claim on the residue.
	c := candidates[r.Intn(len(candidates))]
	return Outcome{Win: true, RewardEvent: c.RewardEvent}
}
