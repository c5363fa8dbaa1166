package highlight

// DefaultFragmentSize is the target fragment size, in bytes, of a
// [SimpleFragmenter].
const DefaultFragmentSize = 100

// SimpleFragmenter breaks text into fragments of roughly equal size. It is
// stateful per document; the driver resets it through Start.
type SimpleFragmenter struct {
	size     uint
	boundary uint
	started  bool
}

// NewSimpleFragmenter returns a fragmenter targeting fragments of size bytes.
// A size of 0 falls back to [DefaultFragmentSize].
func NewSimpleFragmenter(size uint) *SimpleFragmenter {
	if size == 0 {
		size = DefaultFragmentSize
	}
	return &SimpleFragmenter{size: size}
}

// Start resets the fragmenter for a new document.
func (f *SimpleFragmenter) Start(_ string) {
	f.boundary = f.size
	f.started = false
}

// IsNewFragment reports whether tok crosses into the next fragment. The
// first token of a document never opens a new fragment.
func (f *SimpleFragmenter) IsNewFragment(tok Token) bool {
	if !f.started {
		f.started = true
		return false
	}
	if tok.End < f.boundary {
		return false
	}
	for tok.End >= f.boundary {
		f.boundary += f.size
	}
	return true
}

// NullFragmenter treats the whole document as a single fragment.
type NullFragmenter struct{}

// NewNullFragmenter returns a fragmenter that never places a boundary.
func NewNullFragmenter() NullFragmenter { return NullFragmenter{} }

// Start implements [Fragmenter]. It is a no-op.
func (NullFragmenter) Start(_ string) {}

// IsNewFragment always reports false.
func (NullFragmenter) IsNewFragment(_ Token) bool { return false }
