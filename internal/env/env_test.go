package env

import (
	"bytes"
	"errors"
	"testing"

	"github.com/vovakirdan/flappy-gym/internal/config"
	"github.com/vovakirdan/flappy-gym/internal/entity"
)

func newTestEnv(t *testing.T, opts ...Option) *Env {
	t.Helper()
	e, err := New(config.Default(), opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return e
}

func seedPtr(v int64) *int64 { return &v }

func TestStepBeforeReset(t *testing.T) {
	e := newTestEnv(t)

	if _, err := e.Step(ActionNone); !errors.Is(err, ErrNotReset) {
		t.Errorf("Step() before Reset: got %v, want ErrNotReset", err)
	}
	if _, err := e.Render(); !errors.Is(err, ErrNotReset) {
		t.Errorf("Render() before Reset: got %v, want ErrNotReset", err)
	}
}

func TestStepInvalidAction(t *testing.T) {
	e := newTestEnv(t)
	if _, _, err := e.Reset(&ResetOptions{Seed: seedPtr(1)}); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	for _, a := range []Action{-1, 2, 7} {
		if _, err := e.Step(a); !errors.Is(err, ErrInvalidAction) {
			t.Errorf("Step(%d): got %v, want ErrInvalidAction", a, err)
		}
	}
}

func TestResetInitialState(t *testing.T) {
	e := newTestEnv(t)
	cfg := config.Default()

	obs, info, err := e.Reset(&ResetOptions{Seed: seedPtr(42)})
	if err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	if info.Bird.X != cfg.Bird.StartX || info.Bird.Y != cfg.Bird.StartY {
		t.Errorf("bird at (%v, %v), want (%v, %v)",
			info.Bird.X, info.Bird.Y, cfg.Bird.StartX, cfg.Bird.StartY)
	}
	if len(info.Pipes) != 1 {
		t.Fatalf("pipe count = %d, want 1", len(info.Pipes))
	}
	if info.Pipes[0].X != cfg.Pipe.SpawnX {
		t.Errorf("pipe x = %v, want %v", info.Pipes[0].X, cfg.Pipe.SpawnX)
	}
	if info.Score != 0 {
		t.Errorf("score = %d, want 0", info.Score)
	}
	if info.LastAction != ActionNone {
		t.Errorf("last action = %d, want %d", info.LastAction, ActionNone)
	}
	if info.Base.X1 != 0 || info.Base.X2 != cfg.Base.Width || info.Base.Y != cfg.Base.Y {
		t.Errorf("base = %+v, want tiles at 0 and %v on row %v", info.Base, cfg.Base.Width, cfg.Base.Y)
	}

	if obs.Width() != cfg.Screen.Width || obs.Height() != cfg.Screen.Height {
		t.Errorf("observation = %dx%d, want %dx%d",
			obs.Width(), obs.Height(), cfg.Screen.Width, cfg.Screen.Height)
	}
	h, w, c := e.ObservationShape()
	if h != 800 || w != 576 || c != 3 {
		t.Errorf("ObservationShape() = (%d, %d, %d), want (800, 576, 3)", h, w, c)
	}
}

func TestDeterminism(t *testing.T) {
	// Two independently constructed environments with the same seed
	// and action sequence must produce identical trajectories.
	run := func() (rewards []float64, score int, steps int, obs []byte) {
		e := newTestEnv(t)
		if _, _, err := e.Reset(&ResetOptions{Seed: seedPtr(12345)}); err != nil {
			t.Fatalf("Reset() failed: %v", err)
		}

		for i := 0; i < 300; i++ {
			action := ActionNone
			if i%14 == 0 {
				action = ActionJump
			}
			res, err := e.Step(action)
			if err != nil {
				t.Fatalf("Step() failed at tick %d: %v", i, err)
			}
			rewards = append(rewards, res.Reward)
			steps++
			if res.Terminated {
				score = res.Info.Score
				obs = append([]byte(nil), res.Observation.Pix()...)
				return
			}
			score = res.Info.Score
			obs = append([]byte(nil), res.Observation.Pix()...)
		}
		return
	}

	r1, s1, n1, o1 := run()
	r2, s2, n2, o2 := run()

	if n1 != n2 {
		t.Fatalf("episode lengths differ: %d vs %d", n1, n2)
	}
	if s1 != s2 {
		t.Errorf("scores differ: %d vs %d", s1, s2)
	}
	for i := range r1 {
		if r1[i] != r2[i] {
			t.Fatalf("rewards diverge at tick %d: %v vs %v", i, r1[i], r2[i])
		}
	}
	if !bytes.Equal(o1, o2) {
		t.Error("final observations differ between identically seeded runs")
	}
}

func TestReseedIsIdempotentAndNilPreservesStream(t *testing.T) {
	gapAfter := func(e *Env, opts *ResetOptions) float64 {
		t.Helper()
		_, info, err := e.Reset(opts)
		if err != nil {
			t.Fatalf("Reset() failed: %v", err)
		}
		return info.Pipes[0].Height
	}

	e1 := newTestEnv(t)
	e2 := newTestEnv(t)

	// Explicit seed: identical first draws.
	g1 := gapAfter(e1, &ResetOptions{Seed: seedPtr(5)})
	g2 := gapAfter(e2, &ResetOptions{Seed: seedPtr(5)})
	if g1 != g2 {
		t.Fatalf("same seed produced different gaps: %v vs %v", g1, g2)
	}

	// Nil seed: the stream continues rather than restarting.
	n1 := gapAfter(e1, nil)
	n2 := gapAfter(e2, nil)
	if n1 != n2 {
		t.Errorf("continued streams diverged: %v vs %v", n1, n2)
	}

	// Explicit reseed restarts the stream.
	if g := gapAfter(e1, &ResetOptions{Seed: seedPtr(5)}); g != g1 {
		t.Errorf("reseed not idempotent: %v vs %v", g, g1)
	}
}

func TestFreeFallEndsOnGround(t *testing.T) {
	e := newTestEnv(t)
	cfg := config.Default()
	if _, _, err := e.Reset(&ResetOptions{Seed: seedPtr(42)}); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	prevY := e.bird.Y
	for i := 0; i < 100; i++ {
		res, err := e.Step(ActionNone)
		if err != nil {
			t.Fatalf("Step() failed at tick %d: %v", i, err)
		}

		if e.bird.Y <= prevY {
			t.Fatalf("bird.y did not increase at tick %d: %v -> %v", i, prevY, e.bird.Y)
		}
		prevY = e.bird.Y

		if res.Terminated {
			if e.bird.Y+cfg.Bird.Height < cfg.Bird.GroundY {
				t.Errorf("terminated before ground contact: y=%v", e.bird.Y)
			}
			if res.Reward != cfg.Reward.CrashPenalty {
				t.Errorf("terminal reward = %v, want %v", res.Reward, cfg.Reward.CrashPenalty)
			}

			// Terminal state is one-shot until Reset.
			if _, err := e.Step(ActionNone); !errors.Is(err, ErrEpisodeDone) {
				t.Errorf("Step() after terminal: got %v, want ErrEpisodeDone", err)
			}

			// Reset clears the terminal state.
			if _, info, err := e.Reset(nil); err != nil || info.Score != 0 {
				t.Errorf("Reset() after terminal: err=%v score=%d", err, info.Score)
			}
			return
		}
	}
	t.Fatal("free fall never terminated")
}

func TestJumpLiftsBird(t *testing.T) {
	e := newTestEnv(t)
	if _, _, err := e.Reset(&ResetOptions{Seed: seedPtr(1)}); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	startY := e.bird.Y
	if _, err := e.Step(ActionJump); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if e.bird.Y >= startY {
		t.Errorf("bird should rise after jump: %v -> %v", startY, e.bird.Y)
	}

	// It keeps rising for the next few ticks before gravity dominates.
	y1 := e.bird.Y
	if _, err := e.Step(ActionNone); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if e.bird.Y >= y1 {
		t.Errorf("bird should still rise one tick after jump: %v -> %v", y1, e.bird.Y)
	}
}

func TestPassRewardPrecedesScore(t *testing.T) {
	e := newTestEnv(t)
	if _, _, err := e.Reset(&ResetOptions{Seed: seedPtr(9)}); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	// Park the pipe just right of the bird with the gap wrapped safely
	// around it, so the next few ticks produce a pass, not a crash.
	p := e.pipes[0]
	p.X = 230
	p.Height = 300
	p.Top = p.Height - 640
	p.Bottom = p.Height + 200

	// Tick 1: pipe scrolls 230 -> 225, still right of the bird.
	res, err := e.Step(ActionNone)
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if res.Reward == 1 || res.Info.Score != 0 {
		t.Fatalf("tick 1: reward=%v score=%d, pass should not register yet", res.Reward, res.Info.Score)
	}

	// Tick 2: pipe scrolls 225 -> 220, crossing behind the bird after
	// its move. The pass bonus fires now; the score has not moved.
	res, err = e.Step(ActionNone)
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if res.Reward != 1 {
		t.Errorf("tick 2: reward = %v, want pass bonus 1", res.Reward)
	}
	if res.Info.Score != 0 {
		t.Errorf("tick 2: score = %d, want 0 (credited next tick)", res.Info.Score)
	}
	if len(res.Info.Pipes) != 1 {
		t.Errorf("tick 2: pipe count = %d, want 1 (spawn follows the credit)", len(res.Info.Pipes))
	}

	// Tick 3: the step loop credits the pre-move crossing: score
	// increments and a fresh pipe is appended at the spawn x.
	res, err = e.Step(ActionNone)
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if res.Info.Score != 1 {
		t.Errorf("tick 3: score = %d, want 1", res.Info.Score)
	}
	if len(res.Info.Pipes) != 2 {
		t.Fatalf("tick 3: pipe count = %d, want 2", len(res.Info.Pipes))
	}
	// The spawned pipe is appended after the move loop, so it has not
	// scrolled yet this tick.
	if got := res.Info.Pipes[1].X; got != config.Default().Pipe.SpawnX {
		t.Errorf("tick 3: new pipe x = %v, want %v", got, config.Default().Pipe.SpawnX)
	}
	if res.Reward == 1 {
		t.Error("tick 3: pass bonus must not repeat")
	}
}

func TestPipeRemovalKeepsSequenceHead(t *testing.T) {
	e := newTestEnv(t)
	if _, _, err := e.Reset(&ResetOptions{Seed: seedPtr(3)}); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	// Simulate an already-passed head pipe about to leave the screen,
	// with its successor mid-field.
	head := e.pipes[0]
	head.X = -101 // Right edge at 3, still (barely) on screen
	head.Passed = true
	e.pipes = append(e.pipes, newPipeAt(e, 400))

	if _, err := e.Step(ActionJump); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	// Head not yet removed: right edge was >= 0 before the move.
	if len(e.pipes) != 2 {
		t.Fatalf("pipe count = %d, want 2", len(e.pipes))
	}

	if _, err := e.Step(ActionJump); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	// Now the pre-move right edge was negative: head dropped, the
	// successor is the new active pipe.
	if len(e.pipes) != 1 {
		t.Fatalf("pipe count = %d, want 1 after removal", len(e.pipes))
	}
	if e.pipes[0].X >= 400 {
		t.Errorf("active pipe x = %v, want the mid-field successor", e.pipes[0].X)
	}
}

func TestTruncatedAlwaysFalse(t *testing.T) {
	e := newTestEnv(t)
	if _, _, err := e.Reset(&ResetOptions{Seed: seedPtr(8)}); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	for i := 0; i < 200; i++ {
		res, err := e.Step(ActionNone)
		if err != nil {
			t.Fatalf("Step() failed: %v", err)
		}
		if res.Truncated {
			t.Fatal("truncated must always be false")
		}
		if res.Reward > 1 {
			t.Fatalf("reward %v exceeds the pass bonus cap", res.Reward)
		}
		if res.Terminated {
			return
		}
	}
}

// newPipeAt builds a pipe from the env's own RNG and config for
// scenario setup.
func newPipeAt(e *Env, x float64) *entity.Pipe {
	return entity.NewPipe(x, e.rng, e.cfg.Pipe)
}
