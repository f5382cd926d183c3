// Package env implements the Flappy Bird reinforcement-learning
// environment: a deterministic-given-seed simulation with the
// step/reset contract of a Gymnasium-style env. Each Step applies one
// discrete action, advances the world by one tick and reports a pixel
// observation, a scalar reward, termination flags and a state snapshot.
package env

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/flappy-gym/internal/config"
	"github.com/vovakirdan/flappy-gym/internal/entity"
	"github.com/vovakirdan/flappy-gym/internal/render"
)

// Action is the agent's per-tick choice.
type Action int

const (
	// ActionNone lets gravity act for one tick.
	ActionNone Action = 0
	// ActionJump applies the upward impulse before the tick.
	ActionJump Action = 1
)

// RenderMode selects what Render does and whether Step has a display
// side effect.
type RenderMode string

const (
	// ModeNone disables rendering side effects; Render returns nil.
	ModeNone RenderMode = ""
	// ModeHuman presents each frame on a display, frame-rate capped,
	// synchronously during Step.
	ModeHuman RenderMode = "human"
	// ModeRGBArray makes Render return the current frame without any
	// display side effect.
	ModeRGBArray RenderMode = "rgb_array"
)

// Renderer is the drawing collaborator: it paints entities into a
// frame. The environment never draws pixels itself.
type Renderer interface {
	DrawBackground(*render.Frame, *entity.Background)
	DrawPipe(*render.Frame, *entity.Pipe)
	DrawBase(*render.Frame, *entity.Base)
	DrawBird(*render.Frame, *entity.Bird)
}

// Display presents finished frames to a human, pacing them to the
// configured frame rate. Present blocks until the frame is shown.
type Display interface {
	Present(*render.Frame) error
	Close() error
}

// StepResult is everything one tick reports back to the agent.
type StepResult struct {
	Observation *render.Frame
	Reward      float64
	Terminated  bool
	Truncated   bool // Always false: there is no time limit
	Info        Info
}

// ResetOptions controls how a new episode starts.
type ResetOptions struct {
	// Seed reseeds the RNG when non-nil. A nil seed preserves the
	// current randomness stream (standard seeded-RNG contract).
	Seed *int64
}

type phase int

const (
	phaseUninitialized phase = iota
	phaseRunning
	phaseDone
)

// Env is the episode controller. It owns all entity state and the
// randomness source. It is not safe for concurrent use: Step, Reset,
// Render and Close must be serialized by the caller.
type Env struct {
	cfg      config.Config
	mode     RenderMode
	renderer Renderer
	display  Display

	rng        *rand.Rand
	bird       *entity.Bird
	pipes      []*entity.Pipe
	base       *entity.Base
	background *entity.Background

	bestDistance float64 // Ratchet state for the closeness reward
	lastAction   Action
	score        int
	frame        *render.Frame
	phase        phase
}

// Option configures an Env at construction.
type Option func(*Env)

// WithRenderMode selects the render mode (default ModeNone).
func WithRenderMode(mode RenderMode) Option {
	return func(e *Env) { e.mode = mode }
}

// WithRenderer replaces the default software renderer.
func WithRenderer(r Renderer) Option {
	return func(e *Env) { e.renderer = r }
}

// WithDisplay attaches the display used by ModeHuman.
func WithDisplay(d Display) Option {
	return func(e *Env) { e.display = d }
}

// New creates an environment. It starts uninitialized; call Reset
// before the first Step. ModeHuman requires WithDisplay.
func New(cfg config.Config, opts ...Option) (*Env, error) {
	e := &Env{
		cfg:          cfg,
		bestDistance: math.Inf(1),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.renderer == nil {
		e.renderer = render.New(cfg)
	}
	if e.mode == ModeHuman && e.display == nil {
		return nil, ErrNoDisplay
	}
	return e, nil
}

// ObservationShape returns the (height, width, channels) dimensions of
// every observation this environment produces. Channel values span
// [0, 255].
func (e *Env) ObservationShape() (height, width, channels int) {
	return e.cfg.Screen.Height, e.cfg.Screen.Width, 3
}

// Score returns the current episode score.
func (e *Env) Score() int {
	return e.score
}

// Reset starts a new episode: reseeds the RNG if a seed is given,
// rebuilds all entities at their spawn state, clears score and ratchet
// state, and returns the initial observation and info.
func (e *Env) Reset(opts *ResetOptions) (*render.Frame, Info, error) {
	switch {
	case opts != nil && opts.Seed != nil:
		e.rng = rand.New(rand.NewSource(*opts.Seed))
	case e.rng == nil:
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e.background = entity.NewBackground()
	e.pipes = []*entity.Pipe{entity.NewPipe(e.cfg.Pipe.SpawnX, e.rng, e.cfg.Pipe)}
	e.base = entity.NewBase(e.cfg.Base)
	e.bird = entity.NewBird(e.cfg.Bird)

	e.frame = nil // Invalidate any cached surface
	e.lastAction = ActionNone
	e.score = 0
	e.bestDistance = math.Inf(1)
	e.phase = phaseRunning

	obs := e.observation()
	if e.mode == ModeHuman {
		if err := e.display.Present(obs); err != nil {
			return nil, Info{}, err
		}
	}

	return obs, e.snapshot(), nil
}

// Step advances the simulation by one tick.
//
// Tick order: the action is applied to the bird, the bird falls, then
// each pipe in sequence order is checked for removal and pass credit
// against its pre-move position before it scrolls. A new pipe spawns
// the tick the head pipe is credited; fully off-screen pipes are
// dropped afterwards; finally the ground scrolls. This ordering is a
// behavioral contract: reward timing depends on it.
func (e *Env) Step(action Action) (StepResult, error) {
	switch e.phase {
	case phaseUninitialized:
		return StepResult{}, ErrNotReset
	case phaseDone:
		return StepResult{}, ErrEpisodeDone
	}
	if action != ActionNone && action != ActionJump {
		return StepResult{}, ErrInvalidAction
	}

	if action == ActionJump {
		e.bird.Jump()
	}
	e.bird.Move()

	addPipe := false
	var toRemove []*entity.Pipe
	for _, p := range e.pipes {
		if p.RightEdge() < 0 {
			toRemove = append(toRemove, p)
		}

		if !p.Passed && p.X < e.bird.X {
			e.score++
			p.Passed = true
			addPipe = true
		}

		p.Move()
	}

	if addPipe {
		e.pipes = append(e.pipes, entity.NewPipe(e.cfg.Pipe.SpawnX, e.rng, e.cfg.Pipe))
	}

	for _, dead := range toRemove {
		for i, p := range e.pipes {
			if p == dead {
				e.pipes = append(e.pipes[:i], e.pipes[i+1:]...)
				break
			}
		}
	}

	e.base.Move()
	e.lastAction = action

	terminated := e.isTerminated()
	reward := e.evalReward(terminated)

	obs := e.observation()
	if e.mode == ModeHuman {
		if err := e.display.Present(obs); err != nil {
			return StepResult{}, err
		}
	}

	if terminated {
		e.phase = phaseDone
	}

	return StepResult{
		Observation: obs,
		Reward:      reward,
		Terminated:  terminated,
		Truncated:   false,
		Info:        e.snapshot(),
	}, nil
}

// Render performs the mode-dependent render operation: nothing for
// ModeNone, a display side effect for ModeHuman, and the current frame
// for ModeRGBArray.
func (e *Env) Render() (*render.Frame, error) {
	if e.phase == phaseUninitialized {
		return nil, ErrNotReset
	}

	switch e.mode {
	case ModeHuman:
		return nil, e.display.Present(e.observation())
	case ModeRGBArray:
		return e.observation(), nil
	default:
		return nil, nil
	}
}

// Close releases display resources. It is idempotent and the
// environment must not be used after it other than calling Close again.
func (e *Env) Close() error {
	if e.display == nil {
		return nil
	}
	d := e.display
	e.display = nil
	return d.Close()
}

// observation redraws the scene into the environment's frame and
// returns it. The frame is reused between ticks; callers that need to
// keep one must Clone it.
func (e *Env) observation() *render.Frame {
	if e.frame == nil {
		e.frame = render.NewFrame(e.cfg.Screen.Width, e.cfg.Screen.Height)
	}

	e.renderer.DrawBackground(e.frame, e.background)
	for _, p := range e.pipes {
		e.renderer.DrawPipe(e.frame, p)
	}
	e.renderer.DrawBase(e.frame, e.base)
	e.renderer.DrawBird(e.frame, e.bird)

	return e.frame
}
