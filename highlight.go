package highlight

import "fmt"

// DefaultSeparator is inserted between non-contiguous fragments when
// rendering a joined preview string.
const DefaultSeparator = "..."

// Highlighter selects and renders the best-matching fragments of a document
// from a scored token stream. A Highlighter may be reused across documents,
// but a single instance must not highlight two documents concurrently: the
// scorer and fragmenter are stateful per document. For parallel highlighting
// run one Highlighter (with its own collaborators) per goroutine.
type Highlighter struct {
	// Scorer assigns each token its relevance weight.
	Scorer Scorer
	// Fragmenter decides where fragment boundaries fall. Defaults to a
	// [SimpleFragmenter] with [DefaultFragmentSize].
	Fragmenter Fragmenter
	// Formatter wraps matched spans in markup. Defaults to a
	// [SimpleHTMLFormatter] emitting <b></b>.
	Formatter Formatter
	// Encoder escapes emitted text. Defaults to [DefaultEncoder].
	Encoder Encoder
	// MaxGroupTokens caps the number of tokens retained per token group.
	// Defaults to [DefaultMaxGroupTokens].
	MaxGroupTokens int
	// Separator is inserted between non-contiguous fragments by
	// [Highlighter.BestFragmentsJoined] when the caller passes an empty
	// separator. Defaults to [DefaultSeparator].
	Separator string
}

// New returns a Highlighter using the given scorer and default collaborators:
// a size-based fragmenter, <b></b> markup and no text escaping.
func New(scorer Scorer) *Highlighter {
	return &Highlighter{
		Scorer:         scorer,
		Fragmenter:     NewSimpleFragmenter(DefaultFragmentSize),
		Formatter:      NewSimpleHTMLFormatter("<b>", "</b>"),
		Encoder:        DefaultEncoder{},
		MaxGroupTokens: DefaultMaxGroupTokens,
		Separator:      DefaultSeparator,
	}
}

// fragmentBuilder accumulates closed token groups for the fragment currently
// in progress.
type fragmentBuilder struct {
	start  uint
	end    uint
	score  float32
	spans  []Span
	groups int
}

func (b *fragmentBuilder) addGroup(g *TokenGroup) {
	if b.groups == 0 {
		b.start = g.Start()
		b.end = g.End()
	} else {
		b.start = min(b.start, g.Start())
		b.end = max(b.end, g.End())
	}
	b.groups++

	if g.TotalScore() > 0 {
		b.spans = append(b.spans, Span{Start: g.MatchStart(), End: g.MatchEnd()})
		b.score += g.TotalScore()
	}
}

func (b *fragmentBuilder) build(text string) Fragment {
	return Fragment{
		Text:  text[b.start:b.end],
		Score: b.score,
		Start: b.start,
		End:   b.end,
		Spans: mergeSpans(b.spans),
	}
}

func (b *fragmentBuilder) reset() {
	*b = fragmentBuilder{}
}

// BestTextFragments runs a single pass over the token stream and returns the
// up to maxFragments best-scoring fragments of text, in ascending document
// order. If mergeContiguous is set, adjacent fragments that abut in the
// original text are combined before ranking.
//
// An empty token stream yields no fragments. A stream in which no token
// scored positive still yields fragments (with zero scores and no match
// spans), so a fallback excerpt remains selectable.
func (h *Highlighter) BestTextFragments(tokens TokenSource, text string, mergeContiguous bool, maxFragments int) ([]Fragment, error) {
	frags, err := h.fragments(tokens, text)
	if err != nil {
		return nil, err
	}
	if mergeContiguous {
		frags = mergeContiguousFragments(frags)
	}
	return bestFragments(frags, maxFragments), nil
}

// fragments folds the token stream into the full document-order fragment
// sequence.
func (h *Highlighter) fragments(tokens TokenSource, text string) ([]Fragment, error) {
	scorer := h.Scorer
	if scorer == nil {
		scorer = ScorerFunc(func(Token) float32 { return 0 })
	}
	fragmenter := h.Fragmenter
	if fragmenter == nil {
		fragmenter = NewNullFragmenter()
	}
	fragmenter.Start(text)

	group := NewTokenGroup(h.MaxGroupTokens)

	var (
		frags     []Fragment
		builder   fragmentBuilder
		prevStart uint
		seen      bool
	)

	for tok, err := range tokens {
		if err != nil {
			return nil, fmt.Errorf("error reading token stream: %w", err)
		}
		if tok.End < tok.Start || tok.End > uint(len(text)) {
			return nil, fmt.Errorf("%w: token %q at [%d, %d)", ErrMalformedOffsets, tok.Term, tok.Start, tok.End)
		}
		// Overlap with the previous token is allowed, going back before its
		// start is not.
		if seen && tok.Start < prevStart {
			return nil, fmt.Errorf("%w: token %q start %d before previous start %d", ErrMalformedOffsets, tok.Term, tok.Start, prevStart)
		}
		prevStart = tok.Start
		seen = true

		// A fragment boundary always forces a group break, regardless of
		// offset adjacency.
		if fragmenter.IsNewFragment(tok) {
			if group.NumTokens() > 0 {
				builder.addGroup(group)
				group.Clear()
			}
			if builder.groups > 0 {
				frags = append(frags, builder.build(text))
				builder.reset()
			}
		}

		scored := ScoredToken{Token: tok, Score: scorer.Score(tok)}
		if group.NumTokens() > 0 && !group.IsDistinct(tok.Start) {
			group.AddToken(scored)
			continue
		}
		if group.NumTokens() > 0 {
			builder.addGroup(group)
			group.Clear()
		}
		group.AddToken(scored)
	}

	if group.NumTokens() > 0 {
		builder.addGroup(group)
		group.Clear()
	}
	if builder.groups > 0 {
		frags = append(frags, builder.build(text))
	}

	return frags, nil
}

// BestFragments returns the rendered text of the up to maxFragments
// best-scoring fragments, in document order.
func (h *Highlighter) BestFragments(tokens TokenSource, text string, maxFragments int) ([]string, error) {
	frags, err := h.BestTextFragments(tokens, text, false, maxFragments)
	if err != nil {
		return nil, err
	}
	rendered := make([]string, len(frags))
	for i, frag := range frags {
		rendered[i] = h.renderFragment(frag)
	}
	return rendered, nil
}

// BestFragment returns the rendered text of the single best-scoring fragment,
// or the empty string if the stream produced no fragments.
func (h *Highlighter) BestFragment(tokens TokenSource, text string) (string, error) {
	rendered, err := h.BestFragments(tokens, text, 1)
	if err != nil {
		return "", err
	}
	if len(rendered) == 0 {
		return "", nil
	}
	return rendered[0], nil
}

// BestFragmentsJoined renders the up to maxFragments best-scoring fragments
// as one preview string, inserting separator between fragments that are not
// contiguous in the original text. An empty separator falls back to the
// Highlighter's Separator field.
func (h *Highlighter) BestFragmentsJoined(tokens TokenSource, text string, maxFragments int, separator string) (string, error) {
	if separator == "" {
		separator = h.Separator
	}
	if separator == "" {
		separator = DefaultSeparator
	}
	frags, err := h.BestTextFragments(tokens, text, true, maxFragments)
	if err != nil {
		return "", err
	}
	return h.renderJoined(frags, separator), nil
}
