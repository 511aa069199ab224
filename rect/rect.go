package rect

import (
	"fmt"

	"geo/point"
)

// Rect is an axis-aligned rectangle spanning two corner points. The zero
// value is the degenerate rectangle at the origin. Corner ordering is not
// validated: if topRight sits left of or below bottomLeft, Width, Height
// and Area go negative accordingly.
type Rect struct {
	bottomLeft, topRight point.Point
}

func New(bl, tr point.Point) Rect {
	return Rect{bottomLeft: bl, topRight: tr}
}

// Move translates both corners by the same offset.
func (r *Rect) Move(dx, dy int) {
	r.bottomLeft.Move(dx, dy)
	r.topRight.Move(dx, dy)
}

func (r Rect) BottomLeft() point.Point {
	return r.bottomLeft
}

func (r Rect) TopRight() point.Point {
	return r.topRight
}

func (r Rect) Width() int {
	return r.topRight.X() - r.bottomLeft.X()
}

func (r Rect) Height() int {
	return r.topRight.Y() - r.bottomLeft.Y()
}

func (r Rect) Area() int {
	return r.Width() * r.Height()
}

func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Contains reports whether pt lies inside the rectangle. The left and
// bottom edges are inside, the right and top edges are outside.
func (r Rect) Contains(pt point.Point) bool {
	return pt.X() >= r.bottomLeft.X() && pt.X() < r.topRight.X() &&
		pt.Y() >= r.bottomLeft.Y() && pt.Y() < r.topRight.Y()
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(bl=%v, tr=%v)", r.bottomLeft, r.topRight)
}
