// Package Go_Collections holds the helpers shared by the container packages
// under Maps/ and Sets/.
package Go_Collections

import (
	"math/rand"
	_ "runtime"
	"unsafe"
)

//go:linkname rtHash runtime.memhash
//go:noescape
func rtHash(ptr unsafe.Pointer, seed uint, len uintptr) uint

//go:linkname rtHash64 runtime.memhash64
//go:noescape
func rtHash64(ptr unsafe.Pointer, seed uint) uint

//go:linkname rtHash32 runtime.memhash32
//go:noescape
func rtHash32(ptr unsafe.Pointer, seed uint) uint

//go:linkname rtStrHash runtime.strhash
//go:noescape
func rtStrHash(ptr unsafe.Pointer, seed uint) uint

// Hasher is a seeded hash capability over the runtime's memory hash. The
// receivers are safe to call from multiple goroutines, but the memory they
// read isn't read atomically, so only hash synchronized memory.
type Hasher uint

// NewHasher returns a Hasher with a process-random seed.
func NewHasher() Hasher {
	return Hasher(rand.Uint64())
}

// HashMem hashes the bytes in [addr, addr+size). Only meaningful for memory
// without indirection: hashing a value that embeds pointers or string/slice
// headers hashes the headers, not what they point at.
func (u Hasher) HashMem(addr unsafe.Pointer, size uintptr) uint {
	if size == 4 {
		return rtHash32(addr, uint(u))
	} else if size == 8 {
		return rtHash64(addr, uint(u))
	}
	return rtHash(addr, uint(u), size)
}

// HashBytes hashes the given byte slice by content.
func (u Hasher) HashBytes(b []byte) uint {
	return u.HashMem(unsafe.Pointer(&b[0]), uintptr(len(b)))
}

// HashInt hashes v.
func (u Hasher) HashInt(v int) uint {
	if unsafe.Sizeof(v) == 4 {
		return rtHash32(unsafe.Pointer(&v), uint(u))
	}
	return rtHash64(unsafe.Pointer(&v), uint(u))
}

// HashString hashes v by content.
func (u Hasher) HashString(v string) uint {
	return rtStrHash(unsafe.Pointer(&v), uint(u))
}
