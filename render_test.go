package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlighter_RenderFragment_Escaping(t *testing.T) {
	text := `x < "y" & z`
	tokens := []Token{
		{Term: "x", Start: 0, End: 1},
		{Term: "y", Start: 5, End: 6},
		{Term: "z", Start: 10, End: 11},
	}

	h := newTestHighlighter("y")
	h.Encoder = HTMLEncoder{}

	rendered, err := h.BestFragment(Tokens(tokens), text)
	require.NoError(t, err)
	assert.Equal(t, `x &lt; &#34;<b>y</b>&#34; &amp; z`, rendered)
}

func TestHighlighter_RenderFragment_CustomFormatter(t *testing.T) {
	h := newTestHighlighter("quick")
	h.Formatter = NewSimpleHTMLFormatter(`<em class="hl">`, "</em>")

	rendered, err := h.BestFragment(Tokens(foxTokens()), foxText)
	require.NoError(t, err)
	assert.Equal(t, `The <em class="hl">quick</em> brown fox`, rendered)
}

func TestHighlighter_BestFragmentsJoined(t *testing.T) {
	// Two matched regions far apart in a larger document; the size-based
	// fragmenter splits them and the joined preview separates them with the
	// configured separator.
	text := "alpha beta gamma delta epsilon zeta eta theta iota kappa"
	tokens := tokenizeForTest(text)

	h := New(NewTermScorer("alpha", "kappa"))
	h.Fragmenter = NewSimpleFragmenter(12)

	joined, err := h.BestFragmentsJoined(Tokens(tokens), text, 2, " ... ")
	require.NoError(t, err)
	assert.Contains(t, joined, "<b>alpha</b>")
	assert.Contains(t, joined, "<b>kappa</b>")
	assert.Contains(t, joined, " ... ")
}

func TestHighlighter_BestFragmentsJoined_Contiguous(t *testing.T) {
	text := "aa bb"
	tokens := []Token{
		{Term: "aa", Start: 0, End: 3},
		{Term: "bb", Start: 3, End: 5},
	}

	h := New(NewTermScorer("aa", "bb"))
	h.Fragmenter = boundaryFragmenter{at: 3}

	// Contiguous fragments are merged, so no separator appears between them
	// and their abutting match spans collapse into one.
	joined, err := h.BestFragmentsJoined(Tokens(tokens), text, 2, "...")
	require.NoError(t, err)
	assert.Equal(t, "<b>aa bb</b>", joined)
}

func TestHighlighter_BestFragmentsJoined_DefaultSeparator(t *testing.T) {
	text := "alpha beta gamma delta epsilon zeta eta theta iota kappa"
	tokens := tokenizeForTest(text)

	h := New(NewTermScorer("alpha", "kappa"))
	h.Fragmenter = NewSimpleFragmenter(12)

	joined, err := h.BestFragmentsJoined(Tokens(tokens), text, 2, "")
	require.NoError(t, err)
	assert.Contains(t, joined, DefaultSeparator)
}

// tokenizeForTest splits text on single spaces, assigning byte offsets.
func tokenizeForTest(text string) []Token {
	var tokens []Token
	start := uint(0)
	for pos, c := range text {
		if c == ' ' {
			if uint(pos) > start {
				tokens = append(tokens, Token{Term: text[start:pos], Start: start, End: uint(pos)})
			}
			start = uint(pos) + 1
		}
	}
	if start < uint(len(text)) {
		tokens = append(tokens, Token{Term: text[start:], Start: start, End: uint(len(text))})
	}
	return tokens
}
