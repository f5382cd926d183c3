package agent

import (
	"testing"

	"github.com/vovakirdan/flappy-gym/internal/config"
	"github.com/vovakirdan/flappy-gym/internal/env"
)

func TestNewPolicy(t *testing.T) {
	for _, name := range []string{"random", "seeker"} {
		p, err := New(name, 1)
		if err != nil {
			t.Fatalf("New(%q) failed: %v", name, err)
		}
		if p.Name() != name {
			t.Errorf("Name() = %q, want %q", p.Name(), name)
		}
	}

	if _, err := New("dqn", 1); err == nil {
		t.Error("New() with unknown policy should fail")
	}
}

func TestRandomIsDeterministicGivenSeed(t *testing.T) {
	p1 := NewRandom(99, 0.5)
	p2 := NewRandom(99, 0.5)

	for i := 0; i < 100; i++ {
		if p1.Act(env.Info{}) != p2.Act(env.Info{}) {
			t.Fatalf("random policies with same seed diverged at tick %d", i)
		}
	}
}

func TestGapSeekerJumpsWhenBelowGap(t *testing.T) {
	info := env.Info{
		Pipes: []env.PipeInfo{{X: 700, Height: 300, Bottom: 500}},
		Bird:  env.BirdInfo{X: 222, Y: 600}, // Gap center is 400
		Base:  env.BaseInfo{Y: 700},
	}
	p := NewGapSeeker()
	if p.Act(info) != env.ActionJump {
		t.Error("seeker should jump when below the gap center")
	}

	info.Bird.Y = 380 // Just above center, inside the corridor
	if p.Act(info) != env.ActionNone {
		t.Error("seeker should glide when at the gap center")
	}
}

func TestGapSeekerOutlastsFreeFall(t *testing.T) {
	// The seeker is not expected to play forever, but it must survive
	// far longer than doing nothing.
	steps := func(p Policy) int {
		e, err := env.New(config.Default())
		if err != nil {
			t.Fatalf("env.New() failed: %v", err)
		}
		seed := int64(21)
		_, info, err := e.Reset(&env.ResetOptions{Seed: &seed})
		if err != nil {
			t.Fatalf("Reset() failed: %v", err)
		}

		for i := 0; i < 2000; i++ {
			var action env.Action
			if p != nil {
				action = p.Act(info)
			}
			res, err := e.Step(action)
			if err != nil {
				t.Fatalf("Step() failed: %v", err)
			}
			info = res.Info
			if res.Terminated {
				return i + 1
			}
		}
		return 2000
	}

	idle := steps(nil)
	seeker := steps(NewGapSeeker())

	if seeker <= idle {
		t.Errorf("seeker survived %d steps, free fall %d; expected an improvement", seeker, idle)
	}
}
