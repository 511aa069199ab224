package point

import "fmt"

// Point is a coordinate in integer 2-space. The zero value is the origin.
type Point struct {
	x, y int
}

func New(x, y int) Point {
	return Point{x: x, y: y}
}

// Move translates the point in place. Overflow wraps.
func (p *Point) Move(dx, dy int) {
	p.x += dx
	p.y += dy
}

func (p Point) X() int {
	return p.x
}

func (p Point) Y() int {
	return p.y
}

func (p Point) Equal(other Point) bool {
	return p.x == other.x && p.y == other.y
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.x, p.y)
}
