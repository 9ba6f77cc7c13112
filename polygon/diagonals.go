package polygon

// Diagonals is an append-only, de-duplicating set of unordered point
// pairs representing interior edges the decomposer adds to split a
// complex polygon into y-monotone pieces. It is owned by the caller and
// passed by reference into [github.com/mikenye/polytri/decompose.Context.Decompose].
type Diagonals struct {
	pairs [][2]PointId
	seen  map[[2]PointId]struct{}
}

// NewDiagonals returns an empty Diagonals set.
func NewDiagonals() *Diagonals {
	return &Diagonals{seen: make(map[[2]PointId]struct{})}
}

// key returns a and b in a canonical order so (a, b) and (b, a) hash the
// same.
func key(a, b PointId) [2]PointId {
	if a <= b {
		return [2]PointId{a, b}
	}
	return [2]PointId{b, a}
}

// Add records a diagonal between a and b. Adding the same unordered pair
// twice is a no-op; it reports whether the diagonal was newly added.
func (d *Diagonals) Add(a, b PointId) bool {
	k := key(a, b)
	if _, ok := d.seen[k]; ok {
		return false
	}
	d.seen[k] = struct{}{}
	d.pairs = append(d.pairs, k)
	return true
}

// Len returns the number of distinct diagonals recorded.
func (d *Diagonals) Len() int {
	return len(d.pairs)
}

// Pairs returns the recorded diagonals in insertion order. The returned
// slice must not be mutated by the caller.
func (d *Diagonals) Pairs() [][2]PointId {
	return d.pairs
}

// IncidentTo returns, for a point p, the other endpoint of every diagonal
// incident to p.
func (d *Diagonals) IncidentTo(p PointId) []PointId {
	var out []PointId
	for _, pr := range d.pairs {
		switch p {
		case pr[0]:
			out = append(out, pr[1])
		case pr[1]:
			out = append(out, pr[0])
		}
	}
	return out
}

// Reset clears the diagonal set for reuse, retaining its backing storage.
func (d *Diagonals) Reset() {
	d.pairs = d.pairs[:0]
	for k := range d.seen {
		delete(d.seen, k)
	}
}
