package dino

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/dinorun/internal/config"
	"github.com/vovakirdan/dinorun/internal/core"
)

func TestActorJumpArc(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	a := NewActor(cfg.Actor, cfg.World)

	if a.Y != 320 || a.Airborne {
		t.Fatalf("actor should start grounded at y=320, got y=%v airborne=%v", a.Y, a.Airborne)
	}

	a.ApplyInput(true, false)
	if a.Y != 308 {
		t.Errorf("after one jump tick y = %v, expected 308", a.Y)
	}
	if a.Velocity != -11.5 {
		t.Errorf("after one jump tick velocity = %v, expected -11.5", a.Velocity)
	}

	// Holding jump in the air must not relaunch
	a.ApplyInput(true, false)
	if a.Velocity != -11 {
		t.Errorf("jump while airborne changed velocity to %v", a.Velocity)
	}

	ticks := 2
	for a.Airborne {
		a.ApplyInput(false, false)
		ticks++
		if ticks > 200 {
			t.Fatal("actor never landed")
		}
	}
	if ticks != 49 {
		t.Errorf("jump lasted %d ticks, expected 49", ticks)
	}
	if a.Y != a.RestY() || a.Velocity != 0 {
		t.Errorf("landed at y=%v velocity=%v", a.Y, a.Velocity)
	}
}

func TestActorDescend(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	a := NewActor(cfg.Actor, cfg.World)

	// Grounded descend is a no-op
	a.ApplyInput(false, true)
	if a.Y != a.RestY() || a.Airborne {
		t.Errorf("grounded descend moved actor to %v", a.Y)
	}

	for i := 0; i < 10; i++ {
		a.ApplyInput(i == 0, false)
	}
	before := a.Y
	a.ApplyInput(false, true)
	if a.Y <= before {
		t.Errorf("descend should push the actor down: %v -> %v", before, a.Y)
	}
	if a.Y > a.RestY() {
		t.Errorf("actor below ground: %v", a.Y)
	}

	// Descend pins the actor to the ground, but leftover upward velocity
	// keeps it airborne until gravity cancels it.
	limit := int(math.Ceil(-a.Velocity/a.cfg.Gravity)) + 1
	ticks := 0
	for a.Airborne && ticks < 100 {
		a.ApplyInput(false, true)
		ticks++
	}
	if a.Airborne || a.Y != a.RestY() {
		t.Fatalf("repeated descend should land the actor, y=%v airborne=%v", a.Y, a.Airborne)
	}
	if ticks > limit {
		t.Errorf("landed after %d ticks, expected at most %d", ticks, limit)
	}
}

func TestActorStaysInBounds(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	cfg.Actor.JumpVelocity = -100
	a := NewActor(cfg.Actor, cfg.World)

	for i := 0; i < 300; i++ {
		a.ApplyInput(i%7 == 0, i%11 == 0)
		if a.Y < cfg.Actor.MinY || a.Y > a.RestY() {
			t.Fatalf("tick %d: y = %v outside [%v, %v]", i, a.Y, cfg.Actor.MinY, a.RestY())
		}
	}
}

func newTestStatic(x, y, w, h float64) *Static {
	return &Static{
		base: base{kind: config.KindStatic, speed: 10, color: core.ColorRed},
		Rect: core.NewRect(x, y, w, h),
	}
}

func TestMultiDerivedExtent(t *testing.T) {
	m := &Multi{
		base: base{kind: config.KindMulti, speed: 10},
		Segments: []core.Rect{
			core.NewRect(140, 330, 25, 50),
			core.NewRect(100, 340, 30, 40),
		},
	}

	if m.X() != 100 {
		t.Errorf("X() = %v, expected 100", m.X())
	}
	if m.Width() != 55 {
		t.Errorf("Width() = %v, expected 55", m.Width())
	}

	// Only one segment off screen: not expired
	m.Segments[0].X = 10
	m.Segments[1].X = -40
	if m.Expired() {
		t.Error("multi with a visible segment should not be expired")
	}
	m.Segments[0].X = -30
	if !m.Expired() {
		t.Error("multi with every segment off screen should be expired")
	}
}

func TestOscillatingFlipsAtBand(t *testing.T) {
	o := &Oscillating{
		base:      base{kind: config.KindOscillating, speed: 10},
		Rect:      core.NewRect(500, 52, 20, 40),
		Direction: -1,
		step:      2,
		upper:     50,
		lower:     400 - 40 - 50,
	}

	o.Advance()
	if o.Rect.Y != 50 || o.Direction != -1 {
		t.Fatalf("at the band edge: y=%v dir=%v", o.Rect.Y, o.Direction)
	}
	o.Advance()
	if o.Rect.Y != 48 || o.Direction != 1 {
		t.Fatalf("past the band edge: y=%v dir=%v, expected 48 and a flip", o.Rect.Y, o.Direction)
	}
	o.Advance()
	if o.Rect.Y != 50 {
		t.Errorf("after flip y = %v, expected 50", o.Rect.Y)
	}
	if o.Rect.X != 470 {
		t.Errorf("x = %v, expected 470", o.Rect.X)
	}
}

func TestFlyingHitboxModes(t *testing.T) {
	newFly := func(exact bool) *Flying {
		return &Flying{
			base:          base{kind: config.KindFlying, speed: 10},
			Left:          100,
			BaseY:         200,
			W:             30,
			H:             60,
			exactTriangle: exact,
		}
	}

	tests := []struct {
		name   string
		actor  core.Rect
		bounds bool
		exact  bool
	}{
		{"inside triangle", core.NewRect(110, 180, 10, 10), true, true},
		{"bounding box corner only", core.NewRect(95, 135, 10, 10), true, false},
		{"below base", core.NewRect(100, 210, 40, 60), false, false},
		{"touching base edge", core.NewRect(100, 200, 40, 60), false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collides(newFly(false), tc.actor); got != tc.bounds {
				t.Errorf("bounds mode = %v, expected %v", got, tc.bounds)
			}
			if got := Collides(newFly(true), tc.actor); got != tc.exact {
				t.Errorf("triangle mode = %v, expected %v", got, tc.exact)
			}
		})
	}

	// A small triangle entirely inside the actor's box
	small := &Flying{
		base:          base{kind: config.KindFlying, speed: 10},
		Left:          55,
		BaseY:         370,
		W:             20,
		H:             30,
		exactTriangle: true,
	}
	if !Collides(small, core.NewRect(50, 320, 40, 60)) {
		t.Error("triangle inside the actor should collide in triangle mode")
	}
	// The actor's box entirely inside a large triangle
	large := &Flying{
		base:          base{kind: config.KindFlying, speed: 10},
		Left:          0,
		BaseY:         400,
		W:             400,
		H:             300,
		exactTriangle: true,
	}
	if !Collides(large, core.NewRect(180, 300, 40, 60)) {
		t.Error("actor inside the triangle should collide in triangle mode")
	}

	f := newFly(false)
	if got := f.Hitboxes(); !reflect.DeepEqual(got, []core.Rect{core.NewRect(100, 140, 30, 60)}) {
		t.Errorf("Hitboxes() = %v", got)
	}
}

func TestSpawnedVariantsRespectConfig(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	s := spawner{cfg: &cfg, rng: rand.New(rand.NewSource(99)), speed: cfg.Obstacles.Speed()}
	ground := cfg.World.GroundY()

	for i := 0; i < 200; i++ {
		for _, v := range Variants() {
			o, err := createVariant(v.Kind, s)
			if err != nil {
				t.Fatalf("createVariant(%q) failed: %v", v.Kind, err)
			}
			if o.Kind() != v.Kind {
				t.Errorf("Kind() = %q, expected %q", o.Kind(), v.Kind)
			}

			switch ob := o.(type) {
			case *Static:
				if ob.Rect.X != cfg.World.Width || ob.Rect.Bottom() != ground {
					t.Errorf("static spawned at %+v", ob.Rect)
				}
				if ob.Rect.W != 20 && ob.Rect.W != 30 {
					t.Errorf("static width %v", ob.Rect.W)
				}
				if ob.Rect.H < 30 || ob.Rect.H > 60 {
					t.Errorf("static height %v", ob.Rect.H)
				}
			case *Oscillating:
				if ob.Rect.Y != 200 || (ob.Direction != 1 && ob.Direction != -1) {
					t.Errorf("oscillating spawned at y=%v dir=%v", ob.Rect.Y, ob.Direction)
				}
			case *Multi:
				if n := len(ob.Segments); n < 2 || n > 4 {
					t.Errorf("multi has %d segments", n)
				}
				for _, seg := range ob.Segments {
					if seg.X < 800 || seg.X > 900 || seg.W < 20 || seg.W > 30 || seg.H < 30 || seg.H > 50 {
						t.Errorf("multi segment %+v out of range", seg)
					}
					if seg.Bottom() != ground {
						t.Errorf("multi segment not on ground: %+v", seg)
					}
				}
			case *Flying:
				if ob.BaseY < 50 || ob.BaseY > 200 {
					t.Errorf("flying base y %v", ob.BaseY)
				}
			default:
				t.Fatalf("unexpected obstacle type %T", o)
			}
		}
	}
}

func TestVariantsRegistered(t *testing.T) {
	var kinds []string
	for _, v := range Variants() {
		kinds = append(kinds, v.Kind)
		if v.Description == "" {
			t.Errorf("variant %q has no description", v.Kind)
		}
	}
	expected := []string{config.KindFlying, config.KindMulti, config.KindOscillating, config.KindStatic}
	if !reflect.DeepEqual(kinds, expected) {
		t.Errorf("Variants() = %v, expected %v", kinds, expected)
	}
	if VariantExists("cactus") {
		t.Error("unknown kind reported as registered")
	}
}
