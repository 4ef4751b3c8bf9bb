package Sets

// Set is the minimal surface shared by set implementations. Put and Remove
// report whether they changed the set.
type Set[E any] interface {
	Put(E) bool
	Has(E) bool
	Remove(E) bool
	Size() uint
	Empty() bool
	Clear()
	Range(func(E) bool)
}
