package shortest

// distances holds best-known path costs for one search, keyed by row-major
// index. Only discovered cells have entries, so memory follows the explored
// region rather than the extent. Entries only ever decrease.
type distances map[int]int

func newDistances() distances { return make(distances) }

// at returns the best-known cost for idx, or Unreached.
func (d distances) at(idx int) int {
	if v, ok := d[idx]; ok {
		return v
	}
	return Unreached
}

// reached reports whether any path to idx has been found.
func (d distances) reached(idx int) bool {
	_, ok := d[idx]
	return ok
}

func (d distances) set(idx, v int) { d[idx] = v }
