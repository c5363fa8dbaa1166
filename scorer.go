package highlight

import "strings"

// TermScorer scores tokens against a fixed set of query terms. Terms carry
// individual weights, so a query evaluator can pass through per-term
// relevance (e.g. idf-style weights); tokens whose term is not in the set
// score zero.
//
// Matching is exact by default; with case folding enabled both the query
// terms and the incoming token terms are lowercased first.
type TermScorer struct {
	weights  map[string]float32
	foldCase bool
}

// NewTermScorer returns a scorer assigning weight 1 to each of terms.
func NewTermScorer(terms ...string) *TermScorer {
	weights := make(map[string]float32, len(terms))
	for _, term := range terms {
		weights[term] = 1
	}
	return &TermScorer{weights: weights}
}

// NewWeightedTermScorer returns a scorer using the given per-term weights.
// Non-positive weights are ignored.
func NewWeightedTermScorer(weights map[string]float32) *TermScorer {
	scorer := &TermScorer{weights: make(map[string]float32, len(weights))}
	for term, weight := range weights {
		if weight > 0 {
			scorer.weights[term] = weight
		}
	}
	return scorer
}

// FoldCase makes matching case-insensitive and returns the scorer.
func (s *TermScorer) FoldCase() *TermScorer {
	folded := make(map[string]float32, len(s.weights))
	for term, weight := range s.weights {
		folded[strings.ToLower(term)] = weight
	}
	s.weights = folded
	s.foldCase = true
	return s
}

// Score returns the weight of the token's term, or zero if the term is not
// part of the query.
func (s *TermScorer) Score(tok Token) float32 {
	term := tok.Term
	if s.foldCase {
		term = strings.ToLower(term)
	}
	return s.weights[term]
}
