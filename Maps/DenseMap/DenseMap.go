// Package DenseMap implements a hashmap with separate chaining over dense
// storage: entries live contiguously in one slice, and each bucket chains the
// storage positions of the keys hashing to it. Erasing a non-final entry
// moves the final entry into the vacated slot, so storage never has holes and
// iteration runs over a plain slice; the price is that iteration order isn't
// insertion order once anything has been erased.
package DenseMap

import (
	"github.com/d-frolkin/go-collections/Maps"
)

// DenseMap is a single-owner map from K to V. It isn't safe for concurrent
// use; synchronize externally or use one per goroutine.
type DenseMap[K comparable, V any] struct {
	store  store[K, V]
	index  buckets
	cap    uint
	sz     uint
	hashF  func(K) uint
	Policy Policy
}

// New DenseMap hashing keys with hashF. hashF must be deterministic for any
// key while it resides in the map.
func New[K comparable, V any](hashF func(K) uint) *DenseMap[K, V] {
	return &DenseMap[K, V]{hashF: hashF, Policy: DefaultPolicy}
}

// From builds a map from a literal list of pairs; later duplicates of a key
// are ignored.
func From[K comparable, V any](hashF func(K) uint, ps ...Maps.Pair[K, V]) *DenseMap[K, V] {
	u := New[K, V](hashF)
	for _, p := range ps {
		u.Insert(p.Key, p.Val)
	}
	return u
}

// FromRange drains the cursor range [first, last) into a fresh map. Both
// cursors must come from the same source map.
func FromRange[K comparable, V any](first, last Iter[K, V], hashF func(K) uint) *DenseMap[K, V] {
	u := New[K, V](hashF)
	for it := first; it != last; it = it.Next() {
		u.Insert(it.Key(), *it.Value())
	}
	return u
}

func (u *DenseMap[K, V]) bucketOf(k K) uint {
	return u.hashF(k) % u.cap
}

// rebuild re-chains every live position under the new capacity. Storage is
// untouched, so positions survive; O(n).
func (u *DenseMap[K, V]) rebuild(newCap uint) {
	u.cap = newCap
	u.index.resize(newCap)
	for pos := 0; pos < u.store.len(); pos++ {
		u.index.add(u.bucketOf(u.store.at(pos).key), pos)
	}
}

// Find returns a cursor to the entry holding k, or End() when k is absent.
// Expected O(1), worst case the length of one chain.
func (u *DenseMap[K, V]) Find(k K) Iter[K, V] {
	if u.cap == 0 {
		return u.End()
	}
	for it := u.index.chain(u.bucketOf(k)).Iterator(); it.Next(); {
		if pos := it.Value().(int); u.store.at(pos).key == k {
			return Iter[K, V]{u, pos}
		}
	}
	return u.End()
}

// Insert adds (k, v) unless k is already present, in which case the existing
// entry is left untouched. Either way the returned cursor addresses the entry
// holding k. Amortized O(1); a triggered rebuild costs O(n).
func (u *DenseMap[K, V]) Insert(k K, v V) Iter[K, V] {
	if it := u.Find(k); it != u.End() {
		return it
	}
	if u.Policy.shouldGrow(u.sz, u.cap) {
		u.rebuild(u.Policy.grownCap(u.cap))
	}
	pos := u.store.append(entry[K, V]{k, v})
	u.index.add(u.bucketOf(k), pos)
	u.sz++
	return Iter[K, V]{u, pos}
}

// Erase removes k if present, otherwise does nothing. When the victim isn't
// the final stored entry, the final entry is moved into its slot and the
// chain record of the moved entry is repointed first; the victim's own record
// is the first one matching its position, so the older record is the one
// dropped even when both keys share a bucket.
func (u *DenseMap[K, V]) Erase(k K) {
	it := u.Find(k)
	if it == u.End() {
		return
	}
	lastPos := u.store.len() - 1
	if last := u.store.at(lastPos); last.key == k {
		u.index.remove(u.bucketOf(k), lastPos)
		u.store.popLast()
	} else {
		lastBkt := u.bucketOf(last.key)
		u.index.remove(lastBkt, lastPos)
		u.index.add(lastBkt, it.pos)
		u.index.remove(u.bucketOf(k), it.pos)
		u.store.overwrite(it.pos, *last)
		u.store.popLast()
	}
	u.sz--
	if u.Policy.shouldShrink(u.sz, u.cap) {
		u.rebuild(u.Policy.shrunkCap(u.cap))
	}
}

// At returns the value stored under k, or *Maps.NotFoundError when k is
// absent. This is the only operation that reports absence as an error.
func (u *DenseMap[K, V]) At(k K) (V, error) {
	if it := u.Find(k); it != u.End() {
		return *it.Value(), nil
	}
	return *new(V), &Maps.NotFoundError{}
}

// Ref returns a pointer to the value stored under k, inserting the zero value
// first when k is absent. The pointer is good for in-place mutation until the
// next Insert or Erase on the map.
func (u *DenseMap[K, V]) Ref(k K) *V {
	it := u.Find(k)
	if it == u.End() {
		it = u.Insert(k, *new(V))
	}
	return it.Value()
}

func (u *DenseMap[K, V]) Has(k K) bool {
	return u.Find(k) != u.End()
}

func (u *DenseMap[K, V]) Size() uint {
	return u.sz
}

func (u *DenseMap[K, V]) Empty() bool {
	return u.sz == 0
}

// Clear drops every entry and resets capacity to its minimum of one bucket.
// The map stays usable.
func (u *DenseMap[K, V]) Clear() {
	u.store.reset()
	u.sz = 0
	u.rebuild(1)
}

// HashFunc returns the hash capability the map was built with.
func (u *DenseMap[K, V]) HashFunc() func(K) uint {
	return u.hashF
}

// Range calls f on every entry in storage order until f returns false. The
// map must not be mutated from inside f.
func (u *DenseMap[K, V]) Range(f func(K, V) bool) {
	for pos := 0; pos < u.store.len(); pos++ {
		e := u.store.at(pos)
		if !f(e.key, e.val) {
			return
		}
	}
}
