package core

import "fmt"

// Rect is a half-open rectangle: Min is inside, Max is not.
type Rect struct {
	Min, Max Coord
}

// RectOf returns a w*h rectangle anchored at the origin. Negative dimensions
// collapse to zero.
func RectOf(w, h int) Rect {
	return Rect{Max: Coord{X: max(w, 0), Y: max(h, 0)}}
}

// Dx returns the rectangle width.
func (r Rect) Dx() int { return max(r.Max.X-r.Min.X, 0) }

// Dy returns the rectangle height.
func (r Rect) Dy() int { return max(r.Max.Y-r.Min.Y, 0) }

// Len returns the number of cells in the rectangle.
func (r Rect) Len() int { return r.Dx() * r.Dy() }

// Empty reports whether the rectangle contains no cells.
func (r Rect) Empty() bool { return r.Dx() == 0 || r.Dy() == 0 }

// Contains reports whether c lies inside the rectangle.
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.Min.X && c.X < r.Max.X && c.Y >= r.Min.Y && c.Y < r.Max.Y
}

// Wrap applies toroidal wrapping to c. An empty rectangle returns c as-is.
func (r Rect) Wrap(c Coord) Coord {
	if r.Empty() {
		return c
	}
	w, h := r.Dx(), r.Dy()
	x := ((c.X-r.Min.X)%w+w)%w + r.Min.X
	y := ((c.Y-r.Min.Y)%h+h)%h + r.Min.Y
	return Coord{X: x, Y: y}
}

func (r Rect) String() string {
	return fmt.Sprintf("%v-%v", r.Min, r.Max)
}
