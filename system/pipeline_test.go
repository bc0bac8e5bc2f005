package system

import (
	"math"
	"testing"
	"time"

	"github.com/entanglelab/qorbit/engine"
	"github.com/entanglelab/qorbit/event"
	"github.com/entanglelab/qorbit/scene"
	"github.com/entanglelab/qorbit/vmath"
)

func newPipeline(sc *scene.Scene) (*engine.Context, *engine.Loop) {
	ctx := engine.NewContext(sc, engine.NewMockTimeProvider(time.Unix(1000, 0)), 7)
	loop := engine.NewLoop(ctx)
	loop.AddSystem(NewExpansionSystem())
	loop.AddSystem(NewReleaseSystem())
	loop.AddSystem(NewOrbitSystem())
	loop.AddSystem(NewStylingSystem())
	loop.AddSystem(NewConnectionSystem())
	return ctx, loop
}

func TestExpansionReachesRestPositions(t *testing.T) {
	sc := scene.NewConstellation(144, 12)
	ctx, loop := newPipeline(sc)

	// Bodies start collapsed
	loop.Tick()
	if mag := vmath.V3Mag(sc.Bodies.Pos[100]); mag > 1.0 {
		t.Fatalf("body 100 too far out on first tick: %v", mag)
	}

	// Run well past the expansion duration plus stagger
	steps := int((ExpansionDuration+1.0)/ctx.Clock.Step()) + 1
	for i := 0; i < steps; i++ {
		loop.Tick()
	}

	for i := 0; i < sc.Bodies.Count; i++ {
		if sc.Bodies.Expansion[i] != 1.0 {
			t.Fatalf("body %d expansion %v, want 1", i, sc.Bodies.Expansion[i])
		}
		// Position is the base shell plus bounded oscillation
		d := vmath.V3Dist(sc.Bodies.Pos[i], sc.Bodies.Base[i])
		if d > sc.Radius*0.1+orbitBobAmp {
			t.Fatalf("body %d drifted %v from base", i, d)
		}
	}
}

func TestResetExpansionRestarts(t *testing.T) {
	sc := scene.NewConstellation(30, 12)
	ctx, loop := newPipeline(sc)

	for i := 0; i < 200; i++ {
		loop.Tick()
	}
	ctx.Events.Push(event.Event{Type: event.TypeResetExpansion})
	loop.Tick()

	// One tick in, bodies are near the origin again
	for i := 0; i < sc.Bodies.Count; i++ {
		if mag := vmath.V3Mag(sc.Bodies.Pos[i]); mag > 1.0 {
			t.Fatalf("body %d at %v after expansion reset", i, mag)
		}
	}
}

func TestReleaseDriftsOutAndResets(t *testing.T) {
	sc := scene.NewConstellation(30, 12)
	ctx, loop := newPipeline(sc)

	// Expand fully first
	for i := 0; i < 200; i++ {
		loop.Tick()
	}
	baseline := vmath.V3Mag(sc.Bodies.Pos[4])

	ctx.Events.Push(event.Event{Type: event.TypeRelease})
	for i := 0; i < 150; i++ {
		loop.Tick()
	}
	released := vmath.V3Mag(sc.Bodies.Pos[4])
	if released <= baseline*1.1 {
		t.Fatalf("body did not drift out: %v -> %v", baseline, released)
	}

	ctx.Events.Push(event.Event{Type: event.TypeResetRelease})
	for i := 0; i < 5; i++ {
		loop.Tick()
	}
	recaptured := vmath.V3Mag(sc.Bodies.Pos[4])
	if math.Abs(recaptured-baseline) > baseline*0.1 {
		t.Errorf("body not recaptured: %v, baseline %v", recaptured, baseline)
	}
}

func TestConnectionsTrackEndpoints(t *testing.T) {
	sc := scene.NewGHZRing(12, 6)
	_, loop := newPipeline(sc)

	for i := 0; i < 50; i++ {
		loop.Tick()
		for _, e := range sc.Edges {
			if e.PosA != sc.Bodies.Pos[e.A] || e.PosB != sc.Bodies.Pos[e.B] {
				t.Fatalf("edge (%d,%d) stale after tick %d", e.A, e.B, i)
			}
		}
	}
}

func TestConstellationTriadEdges(t *testing.T) {
	sc := scene.NewConstellation(144, 12)
	if len(sc.Edges) != 144 {
		t.Errorf("triad edge count = %d, want 144", len(sc.Edges))
	}
	ghz := scene.NewGHZRing(12, 6)
	if len(ghz.Edges) != 11 {
		t.Errorf("ghz hub edge count = %d, want 11", len(ghz.Edges))
	}
	for _, e := range ghz.Edges {
		if e.A != 0 {
			t.Fatalf("ghz edge not hub-rooted: %+v", e)
		}
	}
}
