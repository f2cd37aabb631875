// Package hyperloglog implements the bit-packed HyperLogLog register array
// the hyperball package diffuses over: construction, insertion, cardinality
// estimation and a word-parallel merge, all operating on a flat buffer of C
// counters of m = 2^p registers each.
//
// A RegisterArray owns the backing bitvec.PackedVector and the per-register
// MSB/LSB masks the word-parallel merge needs; a Counter is a thin,
// zero-allocation view onto one counter's registers within that array, with
// an optional private cache so a caller can merge into overlapping
// word-aligned regions from multiple goroutines without tearing another
// goroutine's in-flight merge.
//
// The insertion rule, the harmonic-mean estimator with small-range
// correction, and the register-wise unsigned-max merge are the classical
// HyperLogLog constructions; see array.go for the merge formula and
// counter.go for the caching contract.
package hyperloglog
