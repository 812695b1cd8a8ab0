package linearmap

import (
	"errors"
	"iter"
)

var (
	// ErrTableFull is returned when linear probing visited every cell of the
	// table without finding a free one.
	ErrTableFull = errors.New("linearmap: table is full")

	// ErrKeyNotFound is returned by lookups of keys that were never inserted.
	ErrKeyNotFound = errors.New("linearmap: key not found")
)

type cell struct {
	key   string
	value string

	// Keys are opaque, so the empty string is a valid key and can't be used
	// as the empty marker.
	occupied bool
}

type table struct {
	cells []cell

	capacity    uint64
	size        uint64
	collisions  uint64
	totalProbes uint64

	hashFunc HashFunc
}

type Option func(t *table)

// Override default hash function.
func WithHashFunc(f HashFunc) Option {
	return func(t *table) {
		t.hashFunc = f
	}
}

func (t *table) init(capacity int, opts ...Option) {
	if capacity < 1 {
		panic("linearmap: capacity must be positive")
	}

	t.cells = make([]cell, capacity)
	t.capacity = uint64(capacity)

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = PositionalHash
	}
}

func (t *table) start(key string) uint64 {
	return t.hashFunc(key, t.capacity) % t.capacity
}

func (t *table) next(idx uint64) uint64 {
	idx++
	if idx == t.capacity {
		return 0
	}

	return idx
}

func (t *table) insert(key, value string) error {
	idx := t.start(key)

	if t.cells[idx].occupied {
		t.collisions++

		var err error
		if idx, err = t.probe(idx, key); err != nil {
			return err
		}
	}

	c := &t.cells[idx]
	if !c.occupied {
		c.key = key
		c.occupied = true
		t.size++
	}

	c.value = value

	return nil
}

// probe walks forward from start, wrapping at the end of the table, and
// returns the first cell that is either empty or already holds the key.
// Every step taken is added to the total probe count.
func (t *table) probe(start uint64, key string) (uint64, error) {
	var (
		idx   = start
		steps uint64
	)

	for {
		c := &t.cells[idx]
		if !c.occupied || c.key == key {
			return idx, nil
		}

		idx = t.next(idx)
		steps++
		t.totalProbes++

		if steps == t.capacity {
			return 0, ErrTableFull
		}
	}
}

func (t *table) lookup(key string) (uint64, bool) {
	idx := t.start(key)

	// Nothing is ever deleted, so the first empty cell ends the chain.
	for range t.capacity {
		c := &t.cells[idx]
		if !c.occupied {
			return 0, false
		}

		if c.key == key {
			return idx, true
		}

		idx = t.next(idx)
	}

	return 0, false
}

func (t *table) get(key string) (string, error) {
	idx, ok := t.lookup(key)
	if !ok {
		return "", ErrKeyNotFound
	}

	return t.cells[idx].value, nil
}

// all yields occupied cells in slot order. Elements never move, so the
// order is stable for the lifetime of the table.
func (t *table) all() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for i := range t.cells {
			c := &t.cells[i]
			if !c.occupied {
				continue
			}

			if !yield(c.key, c.value) {
				return
			}
		}
	}
}

// distance returns how many steps separate idx from the start index of the
// key stored in it.
func (t *table) distance(idx uint64) uint64 {
	start := t.start(t.cells[idx].key)
	if idx >= start {
		return idx - start
	}

	return t.capacity - start + idx
}
