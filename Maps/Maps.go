// Package Maps implements single-owner general-purpose hashmaps. Unlike the
// usual hashmap implementations where the backing storage only expands, these
// also shrink when they become sparse enough; shrinking and expanding happen
// seamlessly with insert and erase operations.
//
// Hash functions are pluggable: every constructor takes a func(K) uint and the
// map never assumes anything about key distribution beyond what that function
// provides. UintHash and StrHash are ready-made capabilities for the common
// key types.
package Maps

import (
	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Pair is a key/value element for literal-list construction.
type Pair[K, V any] struct {
	Key K
	Val V
}

// NotFoundError reports a lookup of an absent key through an operation that
// promises an existing entry.
type NotFoundError struct {
}

func (e *NotFoundError) Error() string {
	return "Map: key not found."
}

// UintHash hashes an integer key by its value. Good enough for keys that are
// already well distributed; pair it with an odd table capacity otherwise.
func UintHash[I constraints.Integer](v I) uint {
	return uint(v)
}

// StrHash hashes a string key by content.
func StrHash(s string) uint {
	return uint(xxhash.Sum64String(s))
}
