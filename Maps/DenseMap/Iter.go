package DenseMap

// Iter is a forward cursor over a map's entries in storage order. The key is
// exposed by value and stays immutable through the cursor; Value returns a
// pointer for in-place mutation.
//
// Any Insert or Erase on the map invalidates outstanding cursors: a rebuild
// or an erase-driven swap may relocate the referenced entry. Advancing or
// dereferencing an invalidated or end cursor either yields a different entry
// than before or panics on the bounds check; neither is recoverable.
// Cursors compare equal with == iff they address the same position of the
// same map, so End() of an unmutated map matches any exhausted cursor.
type Iter[K comparable, V any] struct {
	m   *DenseMap[K, V]
	pos int
}

func (it Iter[K, V]) Key() K {
	return it.m.store.at(it.pos).key
}

func (it Iter[K, V]) Value() *V {
	return &it.m.store.at(it.pos).val
}

// Next returns the cursor advanced by one position; it doesn't modify the
// receiver.
func (it Iter[K, V]) Next() Iter[K, V] {
	it.pos++
	return it
}

// CIter is the read-only counterpart of Iter: same traversal and equality
// rules, but Value copies instead of aliasing.
type CIter[K comparable, V any] struct {
	m   *DenseMap[K, V]
	pos int
}

func (it CIter[K, V]) Key() K {
	return it.m.store.at(it.pos).key
}

func (it CIter[K, V]) Value() V {
	return it.m.store.at(it.pos).val
}

func (it CIter[K, V]) Next() CIter[K, V] {
	it.pos++
	return it
}

// Begin addresses the first stored entry; for an empty map it equals End().
func (u *DenseMap[K, V]) Begin() Iter[K, V] {
	return Iter[K, V]{u, 0}
}

// End is the past-the-last sentinel. It must not be dereferenced.
func (u *DenseMap[K, V]) End() Iter[K, V] {
	return Iter[K, V]{u, u.store.len()}
}

func (u *DenseMap[K, V]) CBegin() CIter[K, V] {
	return CIter[K, V]{u, 0}
}

func (u *DenseMap[K, V]) CEnd() CIter[K, V] {
	return CIter[K, V]{u, u.store.len()}
}
