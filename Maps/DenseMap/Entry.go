package DenseMap

type entry[K comparable, V any] struct {
	key K
	val V
}

// store keeps live entries contiguous at positions 0..len-1. Positions are
// stable until a deletion swaps the final entry into a vacated slot; the
// bucket index refers to entries only through these positions, never through
// pointers, so relocation stays a bookkeeping update.
type store[K comparable, V any] struct {
	es []entry[K, V]
}

func (u *store[K, V]) append(e entry[K, V]) int {
	u.es = append(u.es, e)
	return len(u.es) - 1
}

func (u *store[K, V]) at(pos int) *entry[K, V] {
	return &u.es[pos]
}

func (u *store[K, V]) overwrite(pos int, e entry[K, V]) {
	u.es[pos] = e
}

func (u *store[K, V]) popLast() {
	u.es[len(u.es)-1] = entry[K, V]{} //don't retain the dropped key/value
	u.es = u.es[:len(u.es)-1]
}

func (u *store[K, V]) len() int {
	return len(u.es)
}

func (u *store[K, V]) reset() {
	u.es = nil
}
