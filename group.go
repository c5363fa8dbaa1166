package highlight

import "fmt"

// DefaultMaxGroupTokens is the default capacity of a [TokenGroup]. It is a
// safety cap for pathologically dense matches, not a semantic limit.
const DefaultMaxGroupTokens = 50

// TokenGroup accumulates adjacent or overlapping scored tokens into a single
// displayable run. It tracks the union of all token offsets (the group span)
// and the union of positive-score token offsets (the match span, the part
// actually wrapped in highlight markup).
//
// One group instance is reused for a whole document pass: Clear resets it
// between runs without releasing its token storage.
type TokenGroup struct {
	tokens []ScoredToken
	max    int

	groupStart uint
	groupEnd   uint
	matchStart uint
	matchEnd   uint
	totalScore float32
}

// NewTokenGroup returns an empty group holding at most max tokens. A max <= 0
// falls back to [DefaultMaxGroupTokens].
func NewTokenGroup(max int) *TokenGroup {
	if max <= 0 {
		max = DefaultMaxGroupTokens
	}
	return &TokenGroup{
		tokens: make([]ScoredToken, 0, max),
		max:    max,
	}
}

// AddToken folds tok into the group. Once the group holds its maximum number
// of tokens the call is a no-op: the excess token is not retained and does
// not widen the group. Never an error, dropping only affects extremely dense
// matches and must not abort highlighting.
func (g *TokenGroup) AddToken(tok ScoredToken) {
	if len(g.tokens) >= g.max {
		return
	}

	if len(g.tokens) == 0 {
		// First token since Clear establishes the baseline region, even for
		// a zero score.
		g.groupStart = tok.Start
		g.groupEnd = tok.End
		g.matchStart = tok.Start
		g.matchEnd = tok.End
		g.totalScore = tok.Score
	} else {
		g.groupStart = min(g.groupStart, tok.Start)
		g.groupEnd = max(g.groupEnd, tok.End)

		if tok.Score > 0 {
			if g.totalScore == 0 {
				// First positive score: the match region starts fresh here,
				// discarding any zero-score tokens seen so far.
				g.matchStart = tok.Start
				g.matchEnd = tok.End
			} else {
				g.matchStart = min(g.matchStart, tok.Start)
				g.matchEnd = max(g.matchEnd, tok.End)
			}
			g.totalScore += tok.Score
		}
	}

	g.tokens = append(g.tokens, tok)
}

// IsDistinct reports whether a token starting at start belongs to a new run
// rather than this group. This is the sole rule governing group splits.
func (g *TokenGroup) IsDistinct(start uint) bool {
	return start >= g.groupEnd
}

// Clear resets the group for the next run, reusing the token storage. The
// offset fields are left stale and must not be read before the next AddToken.
func (g *TokenGroup) Clear() {
	g.tokens = g.tokens[:0]
	g.totalScore = 0
}

// NumTokens returns the number of tokens currently held by the group.
func (g *TokenGroup) NumTokens() int {
	return len(g.tokens)
}

// Token returns the i-th token of the group. It panics if i is outside
// [0, NumTokens).
func (g *TokenGroup) Token(i int) Token {
	if i < 0 || i >= len(g.tokens) {
		panic(fmt.Sprintf("highlight: token index %d out of range [0, %d)", i, len(g.tokens)))
	}
	return g.tokens[i].Token
}

// Score returns the score of the i-th token of the group. It panics if i is
// outside [0, NumTokens).
func (g *TokenGroup) Score(i int) float32 {
	if i < 0 || i >= len(g.tokens) {
		panic(fmt.Sprintf("highlight: score index %d out of range [0, %d)", i, len(g.tokens)))
	}
	return g.tokens[i].Score
}

// Start returns the start offset of the group span.
func (g *TokenGroup) Start() uint { return g.groupStart }

// End returns the end offset of the group span.
func (g *TokenGroup) End() uint { return g.groupEnd }

// MatchStart returns the start offset of the match span. If TotalScore is
// zero the value is vacuous (it equals the first token's start).
func (g *TokenGroup) MatchStart() uint { return g.matchStart }

// MatchEnd returns the end offset of the match span. If TotalScore is zero
// the value is vacuous (it equals the first token's end).
func (g *TokenGroup) MatchEnd() uint { return g.matchEnd }

// TotalScore returns the sum of the scores of the group's positive-score
// tokens.
func (g *TokenGroup) TotalScore() float32 { return g.totalScore }
