package internal

// The vertex registry owns the vertex buffer and answers two questions: "is
// this position already stored, and where?" and "where should this new
// position go?". A slot's position in the buffer is the vertex's index, for
// good.
//
// Lookups are a linear scan. Meshes built this way are small (tens to low
// hundreds of vertices), so this is fine. An optional hash index gives the
// same answers for bigger meshes: map keys compare with ==, exactly like the
// scan, so NaN positions are never found and -0 finds +0 either way.
type Registry struct {
	vertices buffer[Position]
	lookup   map[Position]uint32
}

func NewRegistry(capacity, limit int, hashLookup bool) *Registry {
	r := &Registry{vertices: newBuffer[Position](capacity, limit)}
	if hashLookup {
		r.lookup = make(map[Position]uint32, capacity)
	}
	return r
}

// Find the first slot holding a position equal to p.
func (r *Registry) Find(p Position) (uint32, bool) {
	if r.lookup != nil {
		index, ok := r.lookup[p]
		return index, ok
	}
	for i, v := range r.vertices.data {
		if v == p {
			return uint32(i), true
		}
	}
	return 0, false
}

// Return the index of p, storing it first if it is new. Interning the same
// position twice always gives the same index.
//
// Room for at least one more vertex is reserved first if needed, following
// the usual doubling policy.
func (r *Registry) Intern(p Position) (uint32, error) {
	if index, ok := r.Find(p); ok {
		return index, nil
	}
	grown, err := r.vertices.reserve(1)
	if err != nil {
		return 0, err
	}
	r.vertices.adopt(grown)
	return r.insert(p), nil
}

// Append a position known not to be stored yet. Room must be reserved.
func (r *Registry) insert(p Position) uint32 {
	index := uint32(r.vertices.Len())
	r.vertices.push(p)
	if r.lookup != nil {
		// A NaN key can be stored but never found again, which is exactly the
		// behavior of the scan.
		r.lookup[p] = index
	}
	return index
}

// Forget every vertex from slot n onwards.
func (r *Registry) rollback(n int) {
	if r.lookup != nil {
		// A NaN key can't be deleted any more than it can be found, so each
		// rolled back NaN vertex leaves an orphan entry behind. No lookup can
		// ever reach it.
		for i := n; i < r.vertices.Len(); i++ {
			p := r.vertices.at(i)
			if index, ok := r.lookup[p]; ok && int(index) == i {
				delete(r.lookup, p)
			}
		}
	}
	r.vertices.truncate(n)
}

func (r *Registry) Len() int { return r.vertices.Len() }
func (r *Registry) Cap() int { return r.vertices.Cap() }

func (r *Registry) At(index uint32) Position {
	if int(index) >= r.vertices.Len() {
		fatalf("vertex index %d is past the end of the vertex buffer (%d vertices)", index, r.vertices.Len())
	}
	return r.vertices.at(int(index))
}
