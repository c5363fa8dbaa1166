package highlight

import "sort"

// Span is a half-open byte range [Start, End) into the original text.
type Span struct {
	Start uint
	End   uint
}

// Fragment is a contiguous run of source text selected as a highlight
// preview, with an aggregate relevance score. Fragments are produced in
// document order and never mutated after creation.
type Fragment struct {
	// Text is the raw source text slice covered by the fragment.
	Text string
	// Score is the sum of the contributing groups' total scores. Zero means
	// no query term matched inside the fragment.
	Score float32
	// Start and End are the byte offsets of Text in the original document.
	Start uint
	End   uint
	// Spans are the match sub-ranges to wrap in highlight markup, in
	// ascending order and non-overlapping.
	Spans []Span
}

// Follows reports whether f starts exactly where prev ends in the original
// text.
func (f Fragment) Follows(prev Fragment) bool {
	return f.Start == prev.End
}

// mergeSpans collapses adjacent or overlapping match spans into one. Spans
// arrive sorted by start offset.
func mergeSpans(spans []Span) []Span {
	if len(spans) < 2 {
		return spans
	}
	merged := spans[:1]
	for _, next := range spans[1:] {
		last := &merged[len(merged)-1]
		if next.Start <= last.End {
			if next.End > last.End {
				last.End = next.End
			}
			continue
		}
		merged = append(merged, next)
	}
	return merged
}

// mergeContiguousFragments combines runs of fragments where one ends exactly
// where the next starts, summing scores and spanning offsets. The fragmenter
// placed a boundary between them, but the caller wants them treated as one.
func mergeContiguousFragments(frags []Fragment) []Fragment {
	if len(frags) < 2 {
		return frags
	}

	merged := make([]Fragment, 0, len(frags))
	cur := frags[0]
	for _, next := range frags[1:] {
		if !next.Follows(cur) {
			merged = append(merged, cur)
			cur = next
			continue
		}
		cur = Fragment{
			Text:  cur.Text + next.Text,
			Score: cur.Score + next.Score,
			Start: cur.Start,
			End:   next.End,
			Spans: mergeSpans(append(append([]Span(nil), cur.Spans...), next.Spans...)),
		}
	}
	return append(merged, cur)
}

// bestFragments ranks frags by score, highest first, breaking ties in favor
// of the fragment that appears earlier in the document, and keeps at most
// maxFragments of them. The selection is returned in ascending document
// order so multi-fragment previews read top to bottom.
//
// When every fragment scored zero the ranking degrades to document order, so
// callers still get a leading excerpt as the fallback preview.
func bestFragments(frags []Fragment, maxFragments int) []Fragment {
	if maxFragments <= 0 || len(frags) == 0 {
		return nil
	}

	ranked := make([]Fragment, len(frags))
	copy(ranked, frags)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Start < ranked[j].Start
	})

	if len(ranked) > maxFragments {
		ranked = ranked[:maxFragments]
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Start < ranked[j].Start
	})
	return ranked
}
