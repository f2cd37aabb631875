package xmath

// KahanSum accumulates float64 values with compensated summation, bounding
// the drift HyperBall's neighbourhood-function and systolic-delta
// accumulators would otherwise pick up over thousands of iterations.
type KahanSum struct {
	sum float64
	c   float64 // running compensation for lost low-order bits
}

// Add folds v into the running sum.
func (k *KahanSum) Add(v float64) {
	y := v - k.c
	t := k.sum + y
	k.c = (t - k.sum) - y
	k.sum = t
}

// Value returns the compensated sum accumulated so far.
func (k *KahanSum) Value() float64 { return k.sum }

// Reset zeroes the accumulator and its compensation term.
func (k *KahanSum) Reset() {
	k.sum = 0
	k.c = 0
}
