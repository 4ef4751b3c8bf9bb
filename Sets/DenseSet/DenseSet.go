// Package DenseSet implements a set as a DenseMap with empty values.
package DenseSet

import (
	"unsafe"

	Go_Collections "github.com/d-frolkin/go-collections"
	"github.com/d-frolkin/go-collections/Maps/DenseMap"
)

type DenseSet[E comparable] struct {
	m *DenseMap.DenseMap[E, struct{}]
}

// New DenseSet hashing elements with hashF.
func New[E comparable](hashF func(E) uint) *DenseSet[E] {
	return &DenseSet[E]{DenseMap.New[E, struct{}](hashF)}
}

// NewMem hashes elements by their memory content using h. Only use it for
// element types without indirection; see Go_Collections.Hasher.HashMem.
func NewMem[E comparable](h Go_Collections.Hasher) *DenseSet[E] {
	return New(func(e E) uint {
		return h.HashMem(unsafe.Pointer(&e), unsafe.Sizeof(e))
	})
}

// Put adds e and reports whether it wasn't already present.
func (u *DenseSet[E]) Put(e E) bool {
	if u.m.Has(e) {
		return false
	}
	u.m.Insert(e, struct{}{})
	return true
}

func (u *DenseSet[E]) Has(e E) bool {
	return u.m.Has(e)
}

// Remove drops e and reports whether it was present.
func (u *DenseSet[E]) Remove(e E) bool {
	if !u.m.Has(e) {
		return false
	}
	u.m.Erase(e)
	return true
}

// Take removes and returns an arbitrary element; the boolean is false on an
// empty set.
func (u *DenseSet[E]) Take() (E, bool) {
	if u.m.Empty() {
		return *new(E), false
	}
	e := u.m.Begin().Key()
	u.m.Erase(e)
	return e, true
}

func (u *DenseSet[E]) Size() uint {
	return u.m.Size()
}

func (u *DenseSet[E]) Empty() bool {
	return u.m.Empty()
}

func (u *DenseSet[E]) Clear() {
	u.m.Clear()
}

// Range calls f on every element until f returns false.
func (u *DenseSet[E]) Range(f func(E) bool) {
	u.m.Range(func(e E, _ struct{}) bool {
		return f(e)
	})
}
