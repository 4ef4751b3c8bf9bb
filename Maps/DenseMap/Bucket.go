package DenseMap

import (
	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// buckets maps a bucket number to the chain of storage positions whose keys
// hash there. Chains hold plain int positions, so the index never learns the
// entry shape and never goes stale when a value changes in place; only a
// position change needs a remove/add pair.
type buckets struct {
	chains []*doublylinkedlist.List
}

func makeBuckets(n uint) buckets {
	var u buckets
	u.resize(n)
	return u
}

func (u *buckets) chain(b uint) *doublylinkedlist.List {
	return u.chains[b]
}

func (u *buckets) add(b uint, pos int) {
	u.chains[b].Append(pos)
}

// remove drops the first chain record equal to pos. The caller guarantees the
// record exists; a miss here means the index and the store disagree.
func (u *buckets) remove(b uint, pos int) {
	if i := u.chains[b].IndexOf(pos); i >= 0 {
		u.chains[b].Remove(i)
	}
}

// resize discards every chain and reinitializes n empty ones. Rehashing the
// live positions back in is the owner's job.
func (u *buckets) resize(n uint) {
	u.chains = make([]*doublylinkedlist.List, n)
	for i := range u.chains {
		u.chains[i] = doublylinkedlist.New()
	}
}
