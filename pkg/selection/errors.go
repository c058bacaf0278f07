package selection

import (
	"errors"
	"fmt"

	"tapestry/pkg/core"
)

// ErrOutOfBounds matches every *BoundsError via errors.Is.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// BoundsError reports a coordinate outside a source's addressable region.
type BoundsError struct {
	Coord  core.Coord
	Bounds core.Rect
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("coordinate %v outside %v", e.Coord, e.Bounds)
}

// Is makes errors.Is(err, ErrOutOfBounds) true.
func (e *BoundsError) Is(target error) bool { return target == ErrOutOfBounds }

// Access names the kind of borrow a Guard hands out.
type Access uint8

const (
	Read Access = iota
	Write
)

func (a Access) String() string {
	if a == Write {
		return "write"
	}
	return "read"
}

// AccessError is the panic value raised when a borrow would alias a live
// write borrow, or a write borrow would alias any live borrow.
type AccessError struct {
	Requested Access
	Readers   int
	Writing   bool
}

func (e *AccessError) Error() string {
	if e.Writing {
		return fmt.Sprintf("selection: %s access while a write borrow is live", e.Requested)
	}
	return fmt.Sprintf("selection: %s access while %d read borrows are live", e.Requested, e.Readers)
}
