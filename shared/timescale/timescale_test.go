package timescale

import (
	"math"
	"math/rand"
	"testing"
)

func testSettings() Settings {
	return Settings{
		Hitstop: HitstopSettings{
			BaseDuration: 0.1,
			RecoveryTime: 0.2,
			FreezeScale:  0,
			Curve:        "in_quad",
		},
		RecoverySpeed: 0.2,
	}
}

// frozenTime ticks h with dt until it leaves FREEZE and returns the time
// spent frozen.
func frozenTime(h *Hitstop, dt float64) float64 {
	total := 0.0
	for i := 0; i < 100000 && h.Phase() == PhaseFreeze; i++ {
		h.Tick(dt)
		total += dt
	}
	return total
}

func TestStackScaleStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	deltas := []float64{0, 1.0 / 60, 1.0 / 30, 0.1, 2, -0.5, math.NaN(), math.Inf(1)}

	for _, s := range []Settings{
		testSettings(),
		{Hitstop: HitstopSettings{Curve: "out_quad", FreezeScale: 0.3, BaseDuration: 0.05}, RecoverySpeed: 1},
		{Hitstop: HitstopSettings{BaseDuration: -1, RecoveryTime: -1}, RecoverySpeed: -3},
	} {
		st := NewStack(s)
		for i := 0; i < 5000; i++ {
			switch rng.Intn(4) {
			case 0:
				st.RequestHitstop(rng.Float64()*3 - 1)
			case 1:
				st.RequestGlobalFreeze(rng.Float64()*2-0.5, rng.Float64()*2-0.5)
			}
			scale := st.Tick(deltas[rng.Intn(len(deltas))])
			if math.IsNaN(scale) || scale < 0 || scale > 1 {
				t.Fatalf("iteration %d: scale %v out of [0,1]", i, scale)
			}
			if eff := st.EffectiveDelta(); math.IsNaN(eff) || eff < 0 {
				t.Fatalf("iteration %d: effective delta %v", i, eff)
			}
		}
	}
}

func TestHitstopExtendsInsteadOfStacking(t *testing.T) {
	cases := []struct {
		name     string
		requests []float64
		want     float64
	}{
		{"weak_then_strong", []float64{0.5, 1.0}, 0.1},
		{"strong_then_weak", []float64{1.0, 0.5}, 0.1},
		{"single_weak", []float64{0.5}, 0.075},
		{"repeated_equal", []float64{0.5, 0.5, 0.5}, 0.075},
	}

	const dt = 0.001
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := NewHitstop(testSettings().Hitstop)
			for _, r := range c.requests {
				h.Request(r)
			}
			got := frozenTime(h, dt)
			if math.Abs(got-c.want) > 1.5*dt {
				t.Fatalf("frozen for %v, want %v", got, c.want)
			}
		})
	}
}

func TestHitstopRequestDuringFreezeKeepsLongerRemaining(t *testing.T) {
	h := NewHitstop(testSettings().Hitstop)
	h.Request(1.0) // 0.1s
	h.Tick(0.02)
	h.Request(0.5) // 0.075s, shorter than the 0.08 left
	if got := h.FreezeRemaining(); math.Abs(got-0.08) > 1e-9 {
		t.Fatalf("remaining %v, want 0.08", got)
	}
	h.Tick(0.05)
	h.Request(0.5) // 0.075 > 0.03 left
	if got := h.FreezeRemaining(); math.Abs(got-0.075) > 1e-9 {
		t.Fatalf("remaining %v, want 0.075", got)
	}
}

func TestHitstopQuadraticRecovery(t *testing.T) {
	h := NewHitstop(testSettings().Hitstop)
	h.Request(1)
	if got := h.Tick(0.1); got != 0 {
		t.Fatalf("freeze frame scale %v, want 0", got)
	}
	if h.Phase() != PhaseRecovering {
		t.Fatalf("phase %v, want recovering", h.Phase())
	}

	steps := []struct {
		dt   float64
		want float64 // t² with t = 1 - remaining/recovery
	}{
		{0.05, 0.0},    // sampled before advancing: t = 0
		{0.05, 0.0625}, // t = 0.25
		{0.05, 0.25},   // t = 0.5
		{0.05, 0.5625}, // t = 0.75
	}
	for i, s := range steps {
		got := h.Tick(s.dt)
		if math.Abs(got-s.want) > 1e-5 {
			t.Fatalf("step %d: scale %v, want %v", i, got, s.want)
		}
	}
	if h.Phase() != PhaseIdle {
		t.Fatalf("phase %v after recovery, want idle", h.Phase())
	}
	if got := h.Tick(0.016); got != 1 {
		t.Fatalf("idle scale %v, want 1", got)
	}
}

func TestHitstopFreezesImpactFrame(t *testing.T) {
	s := testSettings()
	s.Hitstop.BaseDuration = 0.004 // shorter than one frame
	st := NewStack(s)

	st.RequestHitstop(1)
	if got := st.Tick(1.0 / 60); got != 0 {
		t.Fatalf("impact frame scale %v, want 0", got)
	}
	if got := st.EffectiveDelta(); got != 0 {
		t.Fatalf("impact frame effective delta %v, want 0", got)
	}
	if got := st.RawDelta(); got != 1.0/60 {
		t.Fatalf("raw delta %v, want %v", got, 1.0/60)
	}
}

func TestHitstopDegenerateDurations(t *testing.T) {
	cases := []struct {
		name     string
		settings HitstopSettings
		frozen   bool
	}{
		{"zero_base", HitstopSettings{BaseDuration: 0, RecoveryTime: 0.1}, false},
		{"negative_base", HitstopSettings{BaseDuration: -0.1, RecoveryTime: 0.1}, false},
		{"zero_recovery", HitstopSettings{BaseDuration: 0.05, RecoveryTime: 0}, true},
		{"nan_base", HitstopSettings{BaseDuration: math.NaN()}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := NewHitstop(c.settings)
			h.Request(1)
			if got := h.Phase() == PhaseFreeze; got != c.frozen {
				t.Fatalf("frozen = %v, want %v", got, c.frozen)
			}
			for i := 0; i < 20; i++ {
				s := h.Tick(0.01)
				if math.IsNaN(s) || s < 0 || s > 1 {
					t.Fatalf("scale %v", s)
				}
			}
			if h.Phase() != PhaseIdle {
				t.Fatalf("phase %v, want idle", h.Phase())
			}
		})
	}
}

func TestHitstopFreezeScale(t *testing.T) {
	s := testSettings().Hitstop
	s.FreezeScale = 0.2
	s.Curve = "linear"
	h := NewHitstop(s)
	h.Request(1)
	if got := h.Tick(0.1); got != 0.2 {
		t.Fatalf("freeze scale %v, want 0.2", got)
	}
	h.Tick(0.1)
	// halfway through a linear recovery from 0.2 to 1
	if got := h.Scale(); math.Abs(got-0.6) > 1e-5 {
		t.Fatalf("recovery scale %v, want 0.6", got)
	}
}

func TestGlobalFreezeRelaxesAndSnapsBack(t *testing.T) {
	g := NewGlobalFreeze(0.5)
	g.Request(0.2, 0.1)

	prev := 1.0
	for i := 0; i < 4; i++ {
		f := g.Tick(0.02)
		if f >= prev {
			t.Fatalf("tick %d: factor %v did not decrease from %v", i, f, prev)
		}
		if f < 0.2 {
			t.Fatalf("tick %d: factor %v overshot target", i, f)
		}
		prev = f
	}
	if !g.Active() {
		t.Fatal("freeze ended early")
	}
	g.Tick(0.02)
	g.Tick(0.02)
	if g.Active() {
		t.Fatal("freeze still active after its duration")
	}
	if got := g.Tick(0.02); got != 1 {
		t.Fatalf("factor %v after expiry, want 1", got)
	}
}

func TestGlobalFreezeStrongerRequestWins(t *testing.T) {
	g := NewGlobalFreeze(0.1)
	g.Request(0.5, 1)
	g.Request(0.8, 2)
	if g.Target() != 0.5 {
		t.Fatalf("target %v, want 0.5", g.Target())
	}
	if g.Remaining() != 2 {
		t.Fatalf("remaining %v, want 2", g.Remaining())
	}
	g.Request(0.1, 0.5)
	if g.Target() != 0.1 || g.Remaining() != 2 {
		t.Fatalf("target %v remaining %v, want 0.1 and 2", g.Target(), g.Remaining())
	}
}

func TestStackComposesSources(t *testing.T) {
	s := testSettings()
	s.RecoverySpeed = 1 // jump straight to target
	st := NewStack(s)

	st.RequestGlobalFreeze(0.5, 10)
	if got := st.Tick(0.01); got != 0.5 {
		t.Fatalf("slow-motion only scale %v, want 0.5", got)
	}

	st.RequestHitstop(1)
	if got := st.Tick(0.1); got != 0 {
		t.Fatalf("freeze scale %v, want 0", got)
	}
	st.Tick(0.1) // recovering, t = 0 sampled
	got := st.Tick(0.1)
	if want := 0.5 * 0.25; math.Abs(got-want) > 1e-5 {
		t.Fatalf("composed scale %v, want %v", got, want)
	}

	st.Reset()
	if st.EffectiveScale() != 1 || st.RawDelta() != 0 {
		t.Fatalf("reset left scale %v raw %v", st.EffectiveScale(), st.RawDelta())
	}
}

func TestCurveFallback(t *testing.T) {
	if KnownCurve("wobble") {
		t.Fatal("wobble should not be a known curve")
	}
	if got := evalCurve(Curve("wobble"), 0.5); math.Abs(got-0.25) > 1e-6 {
		t.Fatalf("fallback curve(0.5) = %v, want 0.25", got)
	}
}
