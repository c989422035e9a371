package dino

import (
	"math/rand"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/dinorun/internal/config"
	"github.com/vovakirdan/dinorun/internal/core"
)

// Obstacle is the contract shared by every obstacle variant.
// Obstacles only ever move left and are discarded once expired.
type Obstacle interface {
	Kind() string
	// Advance moves the obstacle by one tick.
	Advance()
	// Expired reports whether the whole obstacle is left of the world's left edge.
	Expired() bool
	// X and Width give the horizontal extent used for spawning and scoring.
	X() float64
	Width() float64
	// Hitboxes returns the boxes tested against the actor.
	Hitboxes() []core.Rect
	Passed() bool
	MarkPassed()
	Draw(dst core.Surface)
}

// base holds the fields every variant shares.
type base struct {
	kind   string
	speed  float64
	color  core.Color
	passed bool
}

func (b *base) Kind() string      { return b.kind }
func (b *base) Passed() bool      { return b.passed }
func (b *base) MarkPassed()       { b.passed = true }
func (b *base) Color() core.Color { return b.color }

// refiner is implemented by obstacles whose shape is smaller than their
// hitboxes. HitsExactly is only asked once a hitbox overlaps the actor.
type refiner interface {
	HitsExactly(actor core.Rect) bool
}

// Collides reports whether the actor's box overlaps any of o's hitboxes,
// refined by the obstacle's exact shape when it has one.
func Collides(o Obstacle, actor core.Rect) bool {
	hit := false
	for _, b := range o.Hitboxes() {
		if actor.Intersects(b) {
			hit = true
			break
		}
	}
	if !hit {
		return false
	}
	if r, ok := o.(refiner); ok {
		return r.HitsExactly(actor)
	}
	return true
}

// spawner carries what a variant factory needs to build one obstacle.
type spawner struct {
	cfg   *config.DinoConfig
	rng   *rand.Rand
	speed float64
}

func (s spawner) intn(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

func (s spawner) width() float64 {
	widths := s.cfg.Obstacles.Widths
	return float64(widths[s.rng.Intn(len(widths))])
}

func (s spawner) height() float64 {
	return float64(s.intn(s.cfg.Obstacles.MinHeight, s.cfg.Obstacles.MaxHeight))
}

func (s spawner) color() core.Color {
	return core.ObstacleColors[s.rng.Intn(len(core.ObstacleColors))]
}

func (s spawner) base(kind string) base {
	return base{kind: kind, speed: s.speed, color: s.color()}
}

// Static is a single ground-level block.
type Static struct {
	base
	Rect core.Rect
}

func newStatic(s spawner) Obstacle {
	w, h := s.width(), s.height()
	return &Static{
		base: s.base(config.KindStatic),
		Rect: core.NewRect(s.cfg.World.Width, s.cfg.World.GroundY()-h, w, h),
	}
}

func (o *Static) Advance()              { o.Rect.X -= o.speed }
func (o *Static) Expired() bool         { return o.Rect.Right() < 0 }
func (o *Static) X() float64            { return o.Rect.X }
func (o *Static) Width() float64        { return o.Rect.W }
func (o *Static) Hitboxes() []core.Rect { return []core.Rect{o.Rect} }

func (o *Static) Draw(dst core.Surface) {
	dst.FillRect(o.Rect, o.color)
}

// Oscillating is a block that bounces vertically inside a band while it
// moves left.
type Oscillating struct {
	base
	Rect         core.Rect
	Direction    float64 // -1 up, +1 down
	step         float64
	upper, lower float64
}

func newOscillating(s spawner) Obstacle {
	w, h := s.width(), s.height()
	o := &Oscillating{
		base:  s.base(config.KindOscillating),
		Rect:  core.NewRect(s.cfg.World.Width, float64(int(s.cfg.World.Height)/2), w, h),
		step:  s.cfg.Obstacles.Oscillating.Step,
		upper: s.cfg.Obstacles.Oscillating.Margin,
		lower: s.cfg.World.Height - h - s.cfg.Obstacles.Oscillating.Margin,
	}
	o.Direction = 1
	if s.rng.Intn(2) == 0 {
		o.Direction = -1
	}
	return o
}

// Advance moves left, then one step along the current direction. The
// direction flips once the block leaves its band.
func (o *Oscillating) Advance() {
	o.Rect.X -= o.speed
	o.Rect.Y += o.Direction * o.step
	if o.Rect.Y < o.upper || o.Rect.Y > o.lower {
		o.Direction = -o.Direction
	}
}

func (o *Oscillating) Expired() bool         { return o.Rect.Right() < 0 }
func (o *Oscillating) X() float64            { return o.Rect.X }
func (o *Oscillating) Width() float64        { return o.Rect.W }
func (o *Oscillating) Hitboxes() []core.Rect { return []core.Rect{o.Rect} }

func (o *Oscillating) Draw(dst core.Surface) {
	dst.FillEllipse(o.Rect, o.color)
}

// Multi is a group of 2-4 ground blocks that move together and share one
// color and one passed flag.
type Multi struct {
	base
	Segments []core.Rect
}

func newMulti(s spawner) Obstacle {
	m := s.cfg.Obstacles.Multi
	n := s.intn(m.MinSegments, m.MaxSegments)
	segs := make([]core.Rect, n)
	for i := range segs {
		w := float64(s.intn(m.MinWidth, m.MaxWidth))
		h := float64(s.intn(m.MinHeight, m.MaxHeight))
		x := s.cfg.World.Width + float64(s.intn(0, m.MaxOffset))
		segs[i] = core.NewRect(x, s.cfg.World.GroundY()-h, w, h)
	}
	return &Multi{
		base:     s.base(config.KindMulti),
		Segments: segs,
	}
}

func (o *Multi) Advance() {
	for i := range o.Segments {
		o.Segments[i].X -= o.speed
	}
}

// Expired requires every segment to be off screen.
func (o *Multi) Expired() bool {
	for _, seg := range o.Segments {
		if seg.Right() >= 0 {
			return false
		}
	}
	return true
}

// X returns the leftmost segment edge.
func (o *Multi) X() float64 {
	x := o.Segments[0].X
	for _, seg := range o.Segments[1:] {
		if seg.X < x {
			x = seg.X
		}
	}
	return x
}

// Width returns the summed segment widths. Gaps between segments are not
// counted, so X()+Width() can fall short of the rightmost edge.
func (o *Multi) Width() float64 {
	var w float64
	for _, seg := range o.Segments {
		w += seg.W
	}
	return w
}

func (o *Multi) Hitboxes() []core.Rect {
	boxes := make([]core.Rect, len(o.Segments))
	copy(boxes, o.Segments)
	return boxes
}

func (o *Multi) Draw(dst core.Surface) {
	for _, seg := range o.Segments {
		dst.FillRect(seg, o.color)
	}
}

// Flying is an airborne triangle with its base at BaseY and its apex Height
// units above it.
type Flying struct {
	base
	Left, BaseY   float64
	W, H          float64
	exactTriangle bool
}

func newFlying(s spawner) Obstacle {
	w, h := s.width(), s.height()
	f := s.cfg.Obstacles.Flying
	return &Flying{
		base:          s.base(config.KindFlying),
		Left:          s.cfg.World.Width,
		BaseY:         float64(s.intn(f.MinY, f.MaxY)),
		W:             w,
		H:             h,
		exactTriangle: f.Hitbox == config.HitboxTriangle,
	}
}

func (o *Flying) Advance()       { o.Left -= o.speed }
func (o *Flying) Expired() bool  { return o.Left+o.W < 0 }
func (o *Flying) X() float64     { return o.Left }
func (o *Flying) Width() float64 { return o.W }

// Triangle returns the corners: base left, apex, base right.
func (o *Flying) Triangle() []core.Point {
	return []core.Point{
		{X: o.Left, Y: o.BaseY},
		{X: o.Left + o.W/2, Y: o.BaseY - o.H},
		{X: o.Left + o.W, Y: o.BaseY},
	}
}

// Hitboxes returns the triangle's bounding rectangle, from the apex down
// to the base.
func (o *Flying) Hitboxes() []core.Rect {
	return []core.Rect{core.NewRect(o.Left, o.BaseY-o.H, o.W, o.H)}
}

// HitsExactly tests the triangle itself in triangle mode; in bounds mode
// the bounding rectangle is the hit region.
func (o *Flying) HitsExactly(actor core.Rect) bool {
	if !o.exactTriangle {
		return true
	}
	return triangleIntersects(o.Triangle(), actor)
}

func (o *Flying) Draw(dst core.Surface) {
	dst.FillPolygon(o.Triangle(), o.color)
}

// triangleIntersects reports whether a triangle and a box overlap.
// resolv only reports crossing edges, so containment either way is
// checked separately.
func triangleIntersects(tri []core.Point, box core.Rect) bool {
	points := make([]float64, 0, len(tri)*2)
	for _, p := range tri {
		points = append(points, p.X, p.Y)
	}
	poly := resolv.NewConvexPolygon(0, 0, points)
	rect := resolv.NewRectangleTopLeft(box.X, box.Y, box.W, box.H)
	if poly.IsIntersecting(rect) {
		return true
	}

	for _, p := range tri {
		if p.X > box.X && p.X < box.Right() && p.Y > box.Y && p.Y < box.Bottom() {
			return true
		}
	}
	corners := []core.Point{
		{X: box.X, Y: box.Y},
		{X: box.Right(), Y: box.Y},
		{X: box.X, Y: box.Bottom()},
		{X: box.Right(), Y: box.Bottom()},
	}
	for _, c := range corners {
		if core.PolygonContains(tri, c.X, c.Y) {
			return true
		}
	}
	return false
}
