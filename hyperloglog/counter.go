package hyperloglog

// Counter is a zero-allocation view onto one counter's registers within a
// RegisterArray, with an optional private cache.
// Callers that may merge into overlapping word-aligned counters from
// multiple goroutines must Cache before merging and Commit afterward; a
// Counter used purely for single-goroutine Insert/Count never needs to
// cache.
type Counter struct {
	array  *RegisterArray
	index  int
	cached []uint64 // non-nil while cached
	dirty  bool
}

// Get returns a Counter view onto counter index i of a.
func (a *RegisterArray) Get(i int) (Counter, error) {
	if i < 0 || i >= a.c {
		return Counter{}, ErrCounterIndexOutOfRange
	}
	return Counter{array: a, index: i}, nil
}

// words returns the word slice this Counter currently reads/writes: the
// private cache if cached, otherwise the shared backing buffer.
func (c *Counter) words() []uint64 {
	if c.cached != nil {
		return c.cached
	}
	return c.array.counterWords(c.index)
}

// Insert adds element to the counter's estimated set.
func (c *Counter) Insert(element uint64) {
	c.array.insertInto(c.words(), element)
	if c.cached != nil {
		c.dirty = true
	}
}

// Count returns the current cardinality estimate for this counter.
func (c *Counter) Count() uint64 {
	est := c.array.estimate(c.words())
	if est < 0 {
		est = 0
	}
	return uint64(est + 0.5)
}

// EstimateFloat returns the raw floating-point cardinality estimate,
// without rounding to an integer; hyperball needs this precision for its
// Kahan-compensated neighbourhood-function accumulation.
func (c *Counter) EstimateFloat() float64 {
	return c.array.estimate(c.words())
}

// Clear zeroes every register of this counter (its cache, if cached, or the
// shared buffer otherwise).
func (c *Counter) Clear() {
	words := c.words()
	for i := range words {
		words[i] = 0
	}
	if c.cached != nil {
		c.dirty = true
	}
}

// Cache copies this counter's registers into a private buffer so that
// subsequent Insert/MergeFrom calls operate without touching the shared
// RegisterArray until Commit is called.
func (c *Counter) Cache() {
	if c.cached != nil {
		return
	}
	src := c.array.counterWords(c.index)
	buf := make([]uint64, len(src))
	copy(buf, src)
	c.cached = buf
	c.dirty = false
}

// Commit writes a cached counter's private buffer back to the shared
// RegisterArray. keepCached controls whether the cache remains active
// afterward (true) or is released, returning the Counter to operating
// directly on the shared buffer (false).
func (c *Counter) Commit(keepCached bool) error {
	if c.cached == nil {
		return ErrUncommittedCache
	}
	dst := c.array.counterWords(c.index)
	copy(dst, c.cached)
	if !keepCached {
		c.cached = nil
	}
	c.dirty = false
	return nil
}

// IsCached reports whether Cache has been called without a matching
// Commit(false).
func (c *Counter) IsCached() bool { return c.cached != nil }

// CopyFrom overwrites c's registers with other's, a byte-for-byte copy
// rather than MergeFrom's register-wise max. HyperBall uses this to write a
// cached, merged counter into the result bank's slot, and to carry an
// unmerged counter across a bank swap unchanged.
func (c *Counter) CopyFrom(other *Counter) error {
	if !c.array.compatible(other.array) {
		return ErrIncompatibleArrays
	}
	copy(c.words(), other.words())
	if c.cached != nil {
		c.dirty = true
	}
	return nil
}

// MergeFrom merges other into c (c <- max(c, other) register-wise),
// returning whether any register of c changed. Both counters must belong
// to layout-compatible RegisterArrays.
func (c *Counter) MergeFrom(other *Counter) (bool, error) {
	if !c.array.compatible(other.array) {
		return false, ErrIncompatibleArrays
	}
	changed := c.array.mergeWords(c.words(), other.words())
	if changed && c.cached != nil {
		c.dirty = true
	}
	return changed, nil
}
