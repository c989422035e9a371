package core

import "math"

// Surface receives the draw commands of one frame. All coordinates are in
// world units; each front end scales them to its own output.
type Surface interface {
	// Clear fills the whole surface with the background color.
	Clear(bg Color)
	FillRect(r Rect, c Color)
	// FillEllipse fills the ellipse inscribed in r.
	FillEllipse(r Rect, c Color)
	// FillPolygon fills a convex polygon given in drawing order.
	FillPolygon(pts []Point, c Color)
	// DrawText draws a single line of text with its top-left corner at (x, y).
	DrawText(x, y float64, text string, c Color)
}

// EllipsePoints approximates the ellipse inscribed in r with n vertices.
func EllipsePoints(r Rect, n int) []Point {
	if n < 3 {
		n = 3
	}
	c := r.Center()
	rx, ry := r.W/2, r.H/2
	pts := make([]Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{X: c.X + rx*math.Cos(a), Y: c.Y + ry*math.Sin(a)}
	}
	return pts
}

// PolygonBounds returns the axis-aligned bounding box of pts.
func PolygonBounds(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return NewRect(minX, minY, maxX-minX, maxY-minY)
}

// PolygonContains reports whether (x, y) lies inside the polygon pts
// using the even-odd rule.
func PolygonContains(pts []Point, x, y float64) bool {
	inside := false
	j := len(pts) - 1
	for i := range pts {
		pi, pj := pts[i], pts[j]
		if (pi.Y > y) != (pj.Y > y) {
			cross := (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if x < cross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
