// Package agent provides scripted policies for driving the environment
// from the CLI: a random baseline and a geometric gap-seeker. They act
// on the info snapshot, not on pixels.
package agent

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/flappy-gym/internal/env"
	"github.com/vovakirdan/flappy-gym/internal/geom"
)

// Policy maps an info snapshot to the next action.
type Policy interface {
	// Name identifies the policy in logs and storage.
	Name() string

	// Act chooses the action for the current state.
	Act(info env.Info) env.Action
}

// New creates a policy by name. Supported: "random", "seeker".
func New(name string, seed int64) (Policy, error) {
	switch name {
	case "random":
		return NewRandom(seed, 0.1), nil
	case "seeker":
		return NewGapSeeker(), nil
	default:
		return nil, fmt.Errorf("agent: unknown policy %q", name)
	}
}

// Random jumps with a fixed probability each tick. A useful baseline:
// it establishes the reward floor any learned policy must beat.
type Random struct {
	rng      *rand.Rand
	jumpProb float64
}

// NewRandom creates a random policy with the given jump probability.
func NewRandom(seed int64, jumpProb float64) *Random {
	return &Random{
		rng:      rand.New(rand.NewSource(seed)),
		jumpProb: jumpProb,
	}
}

// Name implements Policy.
func (p *Random) Name() string { return "random" }

// Act implements Policy.
func (p *Random) Act(_ env.Info) env.Action {
	if p.rng.Float64() < p.jumpProb {
		return env.ActionJump
	}
	return env.ActionNone
}

// GapSeeker steers toward the active pipe's gap center using the same
// corridor geometry the environment exposes: it jumps when the bird
// has sunk below the gap center, when it has dropped out of the
// approach corridor, or when it is inside the pipe passage but
// off-center downward.
type GapSeeker struct{}

// NewGapSeeker creates the geometric policy.
func NewGapSeeker() *GapSeeker {
	return &GapSeeker{}
}

// Name implements Policy.
func (p *GapSeeker) Name() string { return "seeker" }

// Act implements Policy.
func (p *GapSeeker) Act(info env.Info) env.Action {
	if len(info.Pipes) == 0 {
		return env.ActionNone
	}

	pipe := info.Pipes[0]
	gapCenter := (pipe.Bottom + pipe.Height) / 2
	birdX, birdY := info.Bird.X, info.Bird.Y

	// Below the gap center: flap back up toward it.
	if birdY > gapCenter {
		return env.ActionJump
	}

	// Dropped out of the safe approach corridor on the low side.
	out, err := geom.OutOfCorridor(birdX, birdY, pipe.X, gapCenter, info.Base.Y)
	if err == nil && out && birdY > gapCenter-40 {
		return env.ActionJump
	}

	// Inside the pipe passage but drifting low.
	if geom.OffCenter(birdX, birdY, pipe.X, gapCenter) && birdY > gapCenter {
		return env.ActionJump
	}

	return env.ActionNone
}
