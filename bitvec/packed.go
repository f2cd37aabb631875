package bitvec

// PackedVector is a fixed-width (1..64 bits per element) random-access
// vector backed by a flat []uint64, used by the hyperloglog package as the
// raw storage for register arrays. It is deliberately not safe for
// concurrent writes to elements sharing a word: callers (hyperloglog) are
// responsible for the word-alignment discipline described in this
// package's doc comment.
type PackedVector struct {
	width uint
	n     int
	mask  uint64
	words []uint64
}

// NewPackedVector allocates a PackedVector holding n elements of width
// bits each, all initially zero.
func NewPackedVector(n int, width uint) (*PackedVector, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	if width < 1 || width > 64 {
		return nil, ErrWidthOutOfRange
	}
	totalBits := int64(n) * int64(width)
	nWords := (totalBits + wordBits - 1) / wordBits
	var mask uint64
	if width == 64 {
		mask = ^uint64(0)
	} else {
		mask = (uint64(1) << width) - 1
	}
	return &PackedVector{width: width, n: n, mask: mask, words: make([]uint64, nWords)}, nil
}

// FromWords wraps an existing raw word buffer as a PackedVector of n
// elements of the given width, without copying. The caller guarantees len
// covers at least n*width bits.
func FromWords(words []uint64, n int, width uint) (*PackedVector, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	if width < 1 || width > 64 {
		return nil, ErrWidthOutOfRange
	}
	var mask uint64
	if width == 64 {
		mask = ^uint64(0)
	} else {
		mask = (uint64(1) << width) - 1
	}
	return &PackedVector{width: width, n: n, mask: mask, words: words}, nil
}

// Len returns the element count.
func (p *PackedVector) Len() int { return p.n }

// Width returns the per-element bit width.
func (p *PackedVector) Width() uint { return p.width }

// Words exposes the raw backing buffer for package hyperloglog's
// word-parallel merge, which must operate directly on whole words.
func (p *PackedVector) Words() []uint64 { return p.words }

// Get returns the value stored at index i, possibly split across two
// adjacent words when width does not evenly divide 64.
func (p *PackedVector) Get(i int) uint64 {
	bitPos := int64(i) * int64(p.width)
	wordIdx := bitPos / wordBits
	bitOff := uint(bitPos % wordBits)

	lo := p.words[wordIdx] >> bitOff
	if bitOff+p.width > wordBits {
		hi := p.words[wordIdx+1] << (wordBits - bitOff)
		lo |= hi
	}
	return lo & p.mask
}

// Set stores v (masked to width bits) at index i.
func (p *PackedVector) Set(i int, v uint64) {
	v &= p.mask
	bitPos := int64(i) * int64(p.width)
	wordIdx := bitPos / wordBits
	bitOff := uint(bitPos % wordBits)

	p.words[wordIdx] = (p.words[wordIdx] &^ (p.mask << bitOff)) | (v << bitOff)
	if bitOff+p.width > wordBits {
		spill := wordBits - bitOff
		p.words[wordIdx+1] = (p.words[wordIdx+1] &^ (p.mask >> spill)) | (v >> spill)
	}
}

// CopyFrom overwrites this vector's words with src's, used by
// hyperloglog's counter caching.
func (p *PackedVector) CopyFrom(src *PackedVector) {
	copy(p.words, src.words)
}

// Clone returns a deep copy backed by a fresh word buffer.
func (p *PackedVector) Clone() *PackedVector {
	words := make([]uint64, len(p.words))
	copy(words, p.words)
	return &PackedVector{width: p.width, n: p.n, mask: p.mask, words: words}
}
