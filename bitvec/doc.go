// Package bitvec provides the fixed-width random-access vector and atomic
// bit-set primitives the rest of this module builds on. Nothing downstream
// of the HyperLogLog register array and the parallel visit engines is
// handed a raw []uint64: they are handed one of the two types here.
//
// BitSet is a single-bit-per-element vector with both plain and atomic
// get/set/reset, used for modification flags (modified_current,
// modified_result, must_be_checked) and for the visited bit a parallel BFS
// claims a node with exactly once.
//
// PackedVector is a fixed-width (1..64 bits per element) random-access
// vector used as the flat backing store for HyperLogLog register arrays.
// It does not itself offer atomic element access: the register array's
// word-alignment invariant (m·r ≡ 0 mod W) exists precisely so that distinct
// HyperLogLog counters never share a machine word, which is what lets the
// hyperloglog package merge and insert into counters concurrently using
// plain, non-atomic reads/writes on the underlying words; see that
// package's doc comment for the concurrency argument.
package bitvec
