package hyperloglog

import (
	"math"

	"github.com/katalvlaran/hyperweb/bitvec"
)

// RegisterArray is a flat, bit-packed buffer of c counters of m = 2^p
// registers each, r bits wide. Because
// m*r is enforced to be a multiple of the machine word width, every
// counter occupies a whole number of words and counters never share a word;
// this is what lets Counter.Insert use plain (non-atomic) read-modify-write
// on the underlying words while a concurrent Insert into a different
// counter is in flight; see bitvec's doc comment for the argument.
type RegisterArray struct {
	p uint // log2(m)
	m int  // 2^p, registers per counter
	r uint // register width in bits
	c int  // number of counters

	mMask       uint64
	sentinel    uint64
	alphaMM     float64
	wordsPerCtr int
	residual    uint64
	msbMask     []uint64 // one counter's worth of template words
	lsbMask     []uint64

	regs *bitvec.PackedVector // backing store: not used directly; see Words()
}

// New allocates a RegisterArray of c counters, each with m = 2^log2NumRegs
// registers sized to count up to upperBoundElements distinct items.
func New(log2NumRegs uint, upperBoundElements int64, c int) (*RegisterArray, error) {
	if log2NumRegs < 4 {
		return nil, ErrLog2NumRegistersTooSmall
	}
	if upperBoundElements < 1 {
		return nil, ErrUpperBoundTooSmall
	}
	if c < 0 {
		return nil, bitvec.ErrNegativeLength
	}

	m := 1 << log2NumRegs
	r := registerSizeForUpperBound(upperBoundElements)
	counterBits := int64(m) * int64(r)
	if counterBits%wordBits != 0 {
		return nil, ErrNotWordAligned
	}
	wordsPerCtr := int(counterBits / wordBits)

	pv, err := bitvec.NewPackedVector(c*m, r)
	if err != nil {
		return nil, err
	}
	msb, lsb := buildRegisterMasks(m, r, wordsPerCtr)

	return &RegisterArray{
		p:           log2NumRegs,
		m:           m,
		r:           r,
		c:           c,
		mMask:       uint64(m - 1),
		sentinel:    sentinelFor(r),
		alphaMM:     alphaFor(log2NumRegs, m) * float64(m) * float64(m),
		wordsPerCtr: wordsPerCtr,
		residual:    residualMaskFor(m, r, wordsPerCtr),
		msbMask:     msb,
		lsbMask:     lsb,
		regs:        pv,
	}, nil
}

// NumCounters returns C.
func (a *RegisterArray) NumCounters() int { return a.c }

// NumRegisters returns m, the registers per counter.
func (a *RegisterArray) NumRegisters() int { return a.m }

// RegisterSize returns r, the bits per register.
func (a *RegisterArray) RegisterSize() uint { return a.r }

// compatible reports whether a and b share layout (m, r, word width), the
// precondition checked before any merge or
// swap between two arrays.
func (a *RegisterArray) compatible(b *RegisterArray) bool {
	return a.m == b.m && a.r == b.r && a.wordsPerCtr == b.wordsPerCtr
}

// counterWords returns the word slice backing counter index i.
func (a *RegisterArray) counterWords(i int) []uint64 {
	words := a.regs.Words()
	start := i * a.wordsPerCtr
	return words[start : start+a.wordsPerCtr]
}

// SwapWith exchanges the entire backing buffer of a with other, the array-
// level analogue of HyperBall's current/result bank swap. It rejects
// mismatched layouts explicitly rather than silently reinterpreting one
// array's bits under the other's parameters (swapping incompatible arrays
// is always a caller bug).
func (a *RegisterArray) SwapWith(other *RegisterArray) error {
	if !a.compatible(other) || a.c != other.c {
		return ErrIncompatibleArrays
	}
	a.regs, other.regs = other.regs, a.regs
	return nil
}

// Clear resets every register of counter i to zero.
func (a *RegisterArray) Clear(i int) error {
	if i < 0 || i >= a.c {
		return ErrCounterIndexOutOfRange
	}
	words := a.counterWords(i)
	for k := range words {
		words[k] = 0
	}
	return nil
}

// insertInto performs the HyperLogLog insertion rule directly on the given
// word slice: h = hash(e); j = h & (m-1); payload =
// (h>>p) | sentinel; v = trailing_zeros(payload)+1; register[j] = max(old,
// v). Plain, non-atomic load/CAS-free read-modify-write: safe because
// distinct counters never share a word, and the estimator tolerates a
// transient lost update within one counter under concurrent insertion.
func (a *RegisterArray) insertInto(words []uint64, element uint64) {
	h := hash64(element)
	j := int(h & a.mMask)
	payload := (h >> a.p) | a.sentinel
	v := uint64(trailingZeros64(payload)) + 1

	bitPos := int64(j) * int64(a.r)
	wordIdx := int(bitPos / wordBits)
	bitOff := uint(bitPos % wordBits)
	regMask := (uint64(1) << a.r) - 1

	cur := (words[wordIdx] >> bitOff) & regMask
	if bitOff+a.r > wordBits {
		spill := wordBits - bitOff
		cur |= (words[wordIdx+1] << spill) & regMask
	}
	if v <= cur {
		return
	}
	words[wordIdx] = (words[wordIdx] &^ (regMask << bitOff)) | (v << bitOff)
	if bitOff+a.r > wordBits {
		spill := wordBits - bitOff
		words[wordIdx+1] = (words[wordIdx+1] &^ (regMask >> spill)) | (v >> spill)
	}
}

// estimate computes the harmonic-mean cardinality estimate for the counter
// backed by words, with the small-range correction.
func (a *RegisterArray) estimate(words []uint64) float64 {
	var harmonic float64
	var zeros int
	regMask := (uint64(1) << a.r) - 1

	for j := 0; j < a.m; j++ {
		bitPos := int64(j) * int64(a.r)
		wordIdx := int(bitPos / wordBits)
		bitOff := uint(bitPos % wordBits)

		v := (words[wordIdx] >> bitOff) & regMask
		if bitOff+a.r > wordBits {
			spill := wordBits - bitOff
			v |= (words[wordIdx+1] << spill) & regMask
		}
		if v == 0 {
			zeros++
		}
		harmonic += 1.0 / float64(uint64(1)<<v)
	}

	est := a.alphaMM / harmonic
	if zeros != 0 && est < 2.5*float64(a.m) {
		est = float64(a.m) * math.Log(float64(a.m)/float64(zeros))
	}
	return est
}

// subtractWords computes x -= y in place as one multi-word unsigned
// subtraction with borrow propagating from word 0 (least significant)
// upward, exactly like a bignum subtract: the
// per-register comparison trick below only works if borrows are allowed to
// cross word boundaries exactly like this, since a register can straddle
// two words.
func subtractWords(x, y []uint64) {
	borrow := false
	for i := range x {
		xi := x[i]
		if !borrow {
			borrow = xi < y[i]
		} else if xi != 0 {
			xi--
			borrow = xi < y[i]
		} else {
			xi--
		}
		x[i] = xi - y[i]
	}
}

// mergeWords performs the register-wise unsigned max of dst <- max(dst, src)
// using a word-parallel bit trick: a strict unsigned
// per-register comparison folded into a selection mask via the identity
//
//	z = ((((y|H) - (x&^H)) | (y^x)) ^ (y|^x)) & H
//
// then broadcasting each register's one comparison bit back across all r
// bits of that register before selecting from x and y. Because every
// counter is word-aligned (m*r is a multiple of the word width, enforced at
// construction), no residual masking of the last word is needed: every bit
// of every word belongs to some register. Reports whether any word of dst
// changed.
func (a *RegisterArray) mergeWords(dst, src []uint64) bool {
	n := a.wordsPerCtr
	rMinus1 := a.r - 1
	shiftRMinus1 := uint(wordBits) - rMinus1

	acc := make([]uint64, n)
	tmp := make([]uint64, n)
	for i := 0; i < n; i++ {
		acc[i] = src[i] | a.msbMask[i]
		tmp[i] = dst[i] &^ a.msbMask[i]
	}
	subtractWords(acc, tmp)
	for i := 0; i < n; i++ {
		acc[i] = ((acc[i] | (src[i] ^ dst[i])) ^ (src[i] | ^dst[i])) & a.msbMask[i]
	}

	mask := make([]uint64, n)
	for i := 0; i < n; i++ {
		m := acc[i] >> rMinus1
		if i+1 < n {
			m |= acc[i+1] << shiftRMinus1
		}
		mask[i] = m | a.msbMask[i]
	}
	subtractWords(mask, a.lsbMask)
	for i := 0; i < n; i++ {
		mask[i] = (mask[i] | a.msbMask[i]) ^ acc[i]
	}

	changed := false
	for i := 0; i < n; i++ {
		newWord := dst[i] ^ ((dst[i] ^ src[i]) & mask[i])
		if newWord != dst[i] {
			changed = true
			dst[i] = newWord
		}
	}
	return changed
}
