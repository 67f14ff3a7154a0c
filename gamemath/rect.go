// Package gamemath provides the geometry primitives used by the collision
// core. It has no dependencies on the ECS or level packages — pure data only.
package gamemath

// Vec2 represents a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned bounding box in world space. It is a value type:
// every transformation returns a new Rect. W and H must be non-negative.
type Rect struct {
	X, Y, W, H float64
}

// RectWithSize returns a Rect of the given size positioned at the origin.
func RectWithSize(w, h float64) Rect {
	return Rect{W: w, H: h}
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the box.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// CenterAt returns a copy of the box repositioned so its center is at c.
func (r Rect) CenterAt(c Vec2) Rect {
	return Rect{X: c.X - r.W/2, Y: c.Y - r.H/2, W: r.W, H: r.H}
}

// At returns a copy of the box with its top-left corner moved to (x, y).
func (r Rect) At(x, y float64) Rect {
	return Rect{X: x, Y: y, W: r.W, H: r.H}
}

// Contains reports whether inner lies fully within r. All four edges are
// tested inclusively, so a box flush against r's border still counts.
func (r Rect) Contains(inner Rect) bool {
	return inner.X >= r.X && inner.Right() <= r.Right() &&
		inner.Y >= r.Y && inner.Bottom() <= r.Bottom()
}

// Overlaps reports whether the two boxes share any area. Edge contact alone
// is not an overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

// MoveInside clamps r's position so that it lies fully inside parent,
// preserving its size. Only violated axes are adjusted. Returns false when r
// is larger than parent along either axis, in which case no placement exists.
func (r Rect) MoveInside(parent Rect) (Rect, bool) {
	if r.W > parent.W || r.H > parent.H {
		return Rect{}, false
	}

	out := r
	switch {
	case r.X < parent.X:
		out.X = parent.X
	case r.Right() > parent.Right():
		out.X = parent.Right() - r.W
	}
	switch {
	case r.Y < parent.Y:
		out.Y = parent.Y
	case r.Bottom() > parent.Bottom():
		out.Y = parent.Bottom() - r.H
	}
	return out, true
}

// IntersectionDepth returns the signed overlap vector between two boxes: the
// distance r must move along each axis to just clear other, computed from the
// distance between centers. The sign tells the caller which direction to push.
// Returns false when the boxes do not overlap, including exact edge contact.
func (r Rect) IntersectionDepth(other Rect) (Vec2, bool) {
	ca := r.Center()
	cb := other.Center()

	// Distance between centers and the minimum non-intersecting distance.
	dis := Vec2{X: ca.X - cb.X, Y: ca.Y - cb.Y}
	min := Vec2{X: (r.W + other.W) / 2, Y: (r.H + other.H) / 2}

	if abs(dis.X) >= min.X || abs(dis.Y) >= min.Y {
		return Vec2{}, false
	}

	var depth Vec2
	if dis.X > 0 {
		depth.X = min.X - dis.X
	} else {
		depth.X = -min.X - dis.X
	}
	if dis.Y > 0 {
		depth.Y = min.Y - dis.Y
	} else {
		depth.Y = -min.Y - dis.Y
	}
	return depth, true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
