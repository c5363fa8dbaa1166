package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleFragmenter(t *testing.T) {
	f := NewSimpleFragmenter(10)
	f.Start("")

	tests := []struct {
		term    string
		start   uint
		end     uint
		newFrag bool
	}{
		// The first token never opens a new fragment, even past the size.
		{term: "alpha", start: 0, end: 5, newFrag: false},
		{term: "beta", start: 6, end: 9, newFrag: false},
		{term: "gamma", start: 10, end: 15, newFrag: true},
		{term: "delta", start: 16, end: 19, newFrag: false},
		{term: "epsilon", start: 20, end: 27, newFrag: true},
	}

	for _, test := range tests {
		got := f.IsNewFragment(Token{Term: test.term, Start: test.start, End: test.end})
		if got != test.newFrag {
			t.Errorf("IsNewFragment(%q [%d, %d)) = %v, want %v", test.term, test.start, test.end, got, test.newFrag)
		}
	}
}

func TestSimpleFragmenter_LongToken(t *testing.T) {
	// A single token spanning several fragment sizes advances the boundary
	// past its end, opening exactly one new fragment.
	f := NewSimpleFragmenter(5)
	f.Start("")

	assert.False(t, f.IsNewFragment(Token{Term: "a", Start: 0, End: 1}))
	assert.True(t, f.IsNewFragment(Token{Term: "long", Start: 2, End: 23}))
	assert.False(t, f.IsNewFragment(Token{Term: "b", Start: 24, End: 24}))
}

func TestSimpleFragmenter_StartResets(t *testing.T) {
	f := NewSimpleFragmenter(10)
	f.Start("")
	assert.False(t, f.IsNewFragment(Token{Start: 0, End: 5}))
	assert.True(t, f.IsNewFragment(Token{Start: 10, End: 15}))

	// A reused fragmenter starts the next document fresh.
	f.Start("")
	assert.False(t, f.IsNewFragment(Token{Start: 0, End: 15}))
	assert.True(t, f.IsNewFragment(Token{Start: 16, End: 20}))
}

func TestNullFragmenter(t *testing.T) {
	f := NewNullFragmenter()
	f.Start("")

	for _, end := range []uint{10, 10_000, 1_000_000} {
		assert.False(t, f.IsNewFragment(Token{Start: end - 5, End: end}))
	}
}
