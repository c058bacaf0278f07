package selection

// Guard tracks live borrows of a source at runtime. Any number of read
// borrows may overlap; a write borrow excludes everything else. Violations
// panic with *AccessError instead of letting two cursors alias the same cells.
//
// Guards are not safe for concurrent use; a grid and its selections belong to
// one goroutine. The zero value is ready to use.
type Guard struct {
	readers int
	writing bool
}

// Acquire takes a borrow of the given kind and returns its release func.
// Release is idempotent.
func (g *Guard) Acquire(a Access) (release func()) {
	if a == Write {
		return g.acquireWrite()
	}
	return g.acquireRead()
}

func (g *Guard) acquireRead() func() {
	if g.writing {
		panic(&AccessError{Requested: Read, Readers: g.readers, Writing: true})
	}
	g.readers++
	released := false
	return func() {
		if released {
			return
		}
		released = true
		g.readers--
	}
}

func (g *Guard) acquireWrite() func() {
	if g.writing || g.readers > 0 {
		panic(&AccessError{Requested: Write, Readers: g.readers, Writing: g.writing})
	}
	g.writing = true
	released := false
	return func() {
		if released {
			return
		}
		released = true
		g.writing = false
	}
}

// Check panics if a borrow of kind a could not be acquired right now. It is
// meant for one-shot accessors that never hold a borrow across calls.
func (g *Guard) Check(a Access) {
	g.Acquire(a)()
}

// Readers returns the number of live read borrows.
func (g *Guard) Readers() int { return g.readers }

// Writing reports whether a write borrow is live.
func (g *Guard) Writing() bool { return g.writing }
