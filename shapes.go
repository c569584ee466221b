package ivy

// HitShape is a hit-testable area in a Region's local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area in local coordinates.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside the polygon using a
// cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	// The point must be on the same side of every edge.
	var positive, negative bool
	for i := 0; i < n; i++ {
		x1 := p.Points[i].X
		y1 := p.Points[i].Y
		j := (i + 1) % n
		x2 := p.Points[j].X
		y2 := p.Points[j].Y

		cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// Region is a minimal interactable scene object: a named hit shape placed
// in world space. It satisfies Hittable and is what examples and tests
// register with an InteractionSystem; a real engine registers its own
// display objects instead.
type Region struct {
	Name string

	// X, Y place the shape's local origin in world space.
	X, Y float64

	// Shape is the hit area in local coordinates. A nil shape never hits.
	Shape HitShape

	// Interactive gates hit testing; a non-interactive region never hits.
	Interactive bool

	// Delegate, when non-nil, is returned from HitTest instead of the
	// region itself, delegating the hit to another object.
	Delegate Hittable
}

// NewRegion creates an interactive region with its shape origin at (x, y).
func NewRegion(name string, x, y float64, shape HitShape) *Region {
	return &Region{Name: name, X: x, Y: y, Shape: shape, Interactive: true}
}

// HitTest implements Hittable.
func (r *Region) HitTest(x, y float64) Hittable {
	if !r.Interactive || r.Shape == nil {
		return nil
	}
	if !r.Shape.Contains(x-r.X, y-r.Y) {
		return nil
	}
	if r.Delegate != nil {
		return r.Delegate
	}
	return r
}

// Group is a Hittable container: it scans its children in order and
// reports the first child hit, so a hit on the group resolves to the
// contained target, not the group itself.
type Group struct {
	Name     string
	Children []Hittable
}

// HitTest implements Hittable.
func (g *Group) HitTest(x, y float64) Hittable {
	for _, c := range g.Children {
		if hit := c.HitTest(x, y); hit != nil {
			return hit
		}
	}
	return nil
}
