package highlight

import "iter"

// Token is a single term produced by an upstream analysis chain, with byte
// offsets into the original text. Start and end offsets across a stream are
// monotonically non-decreasing, but adjacent tokens may overlap (e.g. synonym
// expansion emits several tokens over the same region).
type Token struct {
	// Term is the analyzed term text. It may differ from the original text
	// slice at [Start:End], e.g. after lowercasing or stemming.
	Term string
	// Start is the byte offset of the first byte of the token.
	Start uint
	// End is the byte offset one past the last byte of the token.
	End uint
}

// ScoredToken is a token paired with the relevance score the [Scorer]
// assigned to it. The group accumulator stores its own copy, since upstream
// tokenizers typically reuse a mutable token buffer.
type ScoredToken struct {
	Token
	// Score is the token's relevance weight, >= 0. Zero means the token did
	// not match the query.
	Score float32
}

// TokenSource produces a lazy, finite sequence of tokens in document order.
// A source is single-pass; restarting requires re-tokenizing upstream.
// Yielding a non-nil error aborts the highlighting pass.
type TokenSource = iter.Seq2[Token, error]

// Tokens returns a TokenSource over a fixed token slice.
func Tokens(tokens []Token) TokenSource {
	return func(yield func(Token, error) bool) {
		for _, tok := range tokens {
			if !yield(tok, nil) {
				return
			}
		}
	}
}

// Scorer assigns a relevance weight to each token of the current document.
// Implementations may keep per-document state and must not be shared across
// two in-flight documents.
type Scorer interface {
	// Score returns the token's relevance weight, >= 0.
	Score(tok Token) float32
}

// ScorerFunc adapts a plain function to the [Scorer] interface.
type ScorerFunc func(tok Token) float32

func (f ScorerFunc) Score(tok Token) float32 { return f(tok) }

// Fragmenter decides where fragment boundaries fall in the token stream.
// Implementations are stateful per document (they typically track accumulated
// fragment size); the driver calls Start once before the pass.
type Fragmenter interface {
	// Start resets the fragmenter for a new document.
	Start(text string)
	// IsNewFragment reports whether tok starts a new fragment. It is called
	// once per token, before any grouping decision.
	IsNewFragment(tok Token) bool
}

// Formatter wraps a matched span in presentation markup. The text passed in
// is already encoded by the [Encoder].
type Formatter interface {
	HighlightTerm(text string) string
}

// FormatterFunc adapts a plain function to the [Formatter] interface.
type FormatterFunc func(text string) string

func (f FormatterFunc) HighlightTerm(text string) string { return f(text) }

// Encoder escapes raw document text for the output medium. It is applied to
// all emitted text, matched or not.
type Encoder interface {
	EncodeText(text string) string
}

// EncoderFunc adapts a plain function to the [Encoder] interface.
type EncoderFunc func(text string) string

func (f EncoderFunc) EncodeText(text string) string { return f(text) }
