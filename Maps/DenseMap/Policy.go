package DenseMap

// Policy decides when a map rebuilds its bucket array and to what capacity.
// It's a pure function of (stored, capacity); each DenseMap carries its own
// copy, so the thresholds can be tuned per instance.
type Policy struct {
	ScaleFactor uint //capacity multiplier on grow, divisor on shrink
	MinLoad     uint //shrink once stored*MinLoad <= capacity
}

// DefaultPolicy doubles on grow and halves once the table is at most a
// quarter full.
var DefaultPolicy = Policy{ScaleFactor: 2, MinLoad: 4}

func (p Policy) shouldGrow(stored, capacity uint) bool {
	return stored >= capacity
}

// grownCap stays odd so that modulo bucket selection doesn't collapse onto
// the low bits of weak hash functions.
func (p Policy) grownCap(capacity uint) uint {
	return capacity*p.ScaleFactor + 1
}

func (p Policy) shouldShrink(stored, capacity uint) bool {
	return capacity > 1 && stored*p.MinLoad <= capacity
}

func (p Policy) shrunkCap(capacity uint) uint {
	if c := capacity / p.ScaleFactor; c > 0 {
		return c
	}
	return 1
}
