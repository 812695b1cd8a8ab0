package linearmap

import "iter"

// LinearMap is a string to string map backed by a single array of cells,
// resolving collisions with linear probing.
// It never grows: it keeps the capacity it was created with and reports
// ErrTableFull once every cell is taken. Elements are never moved or
// removed, which makes iteration safe and deterministic.
//
// LinearMap is not safe for concurrent use.
type LinearMap struct {
	table
}

// Returns a new map with exactly capacity cells.
// Panics if capacity is not positive.
func New(capacity int, opts ...Option) *LinearMap {
	var lm LinearMap
	lm.init(capacity, opts...)

	return &lm
}

// Inserts a key-value pair, overwriting the value if the key is present.
func (lm *LinearMap) Insert(key, value string) error {
	return lm.insert(key, value)
}

// Returns the value stored for the key or ErrKeyNotFound.
func (lm *LinearMap) Get(key string) (string, error) {
	return lm.get(key)
}

// Checks whether a key is in the map.
func (lm *LinearMap) Has(key string) bool {
	_, ok := lm.lookup(key)
	return ok
}

func (lm *LinearMap) Len() int {
	return int(lm.size)
}

func (lm *LinearMap) Capacity() int {
	return int(lm.capacity)
}

// Number of inserts whose start cell was already occupied.
func (lm *LinearMap) Collisions() int {
	return int(lm.collisions)
}

// Number of probe steps taken by all inserts so far.
func (lm *LinearMap) TotalProbes() int {
	return int(lm.totalProbes)
}

// Total probes per stored element, 0 for an empty map.
func (lm *LinearMap) AverageProbeLength() float64 {
	if lm.size == 0 {
		return 0
	}

	return float64(lm.totalProbes) / float64(lm.size)
}

func (lm *LinearMap) LoadFactor() float64 {
	return float64(lm.size) / float64(lm.capacity)
}

// Iterates over the stored pairs in slot order.
func (lm *LinearMap) All() iter.Seq2[string, string] {
	return lm.all()
}

// Returns, for every stored element in slot order, its distance from the
// cell its key hashes to.
func (lm *LinearMap) ProbeLengths() []int {
	lengths := make([]int, 0, lm.size)

	for i := range lm.cells {
		if lm.cells[i].occupied {
			lengths = append(lengths, int(lm.distance(uint64(i))))
		}
	}

	return lengths
}

func (lm *LinearMap) Stats() Stats {
	var maxProbe int
	for _, l := range lm.ProbeLengths() {
		maxProbe = max(maxProbe, l)
	}

	return Stats{
		Size:               lm.Len(),
		Capacity:           lm.Capacity(),
		Collisions:         lm.Collisions(),
		TotalProbes:        lm.TotalProbes(),
		MaxProbeLength:     maxProbe,
		LoadFactor:         lm.LoadFactor(),
		AverageProbeLength: lm.AverageProbeLength(),
	}
}
