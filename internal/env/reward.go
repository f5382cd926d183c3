package env

import "math"

// The shaping signal, evaluated after the tick's entity updates, in
// strict precedence order:
//
//  1. +PassBonus when the bird cleared a pipe this tick.
//  2. CrashPenalty on termination; the distance ratchet resets so the
//     next episode's first comparison always registers as improvement.
//  3. A normalized closeness reward when the bird matched or beat its
//     best recorded distance to the gap center; the ratchet advances.
//  4. Zero otherwise; the ratchet does not move, so the reward stays
//     zero until the bird re-approaches past its best distance.

// evalReward computes this tick's reward and advances the ratchet.
func (e *Env) evalReward(terminated bool) float64 {
	newDistance := e.gapDistance()

	switch {
	case e.pipeJustPassed():
		return e.cfg.Reward.PassBonus
	case terminated:
		e.bestDistance = math.Inf(1)
		return e.cfg.Reward.CrashPenalty
	case newDistance <= e.bestDistance:
		e.bestDistance = newDistance
		return (e.cfg.Reward.DistanceScale - newDistance) / e.cfg.Reward.DistanceScale
	default:
		return 0
	}
}

// pipeJustPassed reports whether any pipe not yet credited by the step
// loop has crossed behind the bird. The step loop credits pipes with
// their pre-move x, so the crossing registers here, one tick before
// the score increments.
func (e *Env) pipeJustPassed() bool {
	for _, p := range e.pipes {
		if !p.Passed && p.X < e.bird.X {
			return true
		}
	}
	return false
}

// gapDistance returns the Euclidean distance from the bird to the
// active pipe's gap center. The active pipe is always the head of the
// sequence, even once passed, until it scrolls off-screen; reward
// continuity depends on this ordering. The horizontal term is offset
// by GapOffsetX to approximate the gap's effective x.
func (e *Env) gapDistance() float64 {
	p := e.pipes[0]
	dy := e.bird.Y - p.GapCenterY()
	dx := e.bird.X - p.X + e.cfg.Reward.GapOffsetX
	return math.Sqrt(dy*dy + dx*dx)
}

// isTerminated reports whether the episode has reached a terminal
// state: a pipe collision, ground contact, or flying off the top.
func (e *Env) isTerminated() bool {
	for _, p := range e.pipes {
		if p.Collide(e.bird) {
			return true
		}
	}
	return e.bird.Grounded() || e.bird.Y < 0
}
