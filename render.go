package highlight

import "strings"

// renderFragment walks one fragment, emitting encoded plain text outside the
// match spans and formatted markup inside them.
func (h *Highlighter) renderFragment(frag Fragment) string {
	encoder := h.Encoder
	if encoder == nil {
		encoder = DefaultEncoder{}
	}
	formatter := h.Formatter
	if formatter == nil {
		formatter = FormatterFunc(func(text string) string { return text })
	}

	var out strings.Builder
	out.Grow(len(frag.Text))

	pos := frag.Start
	for _, span := range frag.Spans {
		if span.Start > pos {
			out.WriteString(encoder.EncodeText(frag.slice(pos, span.Start)))
		}
		out.WriteString(formatter.HighlightTerm(encoder.EncodeText(frag.slice(span.Start, span.End))))
		pos = span.End
	}
	if pos < frag.End {
		out.WriteString(encoder.EncodeText(frag.slice(pos, frag.End)))
	}

	return out.String()
}

// renderJoined renders frags in order as one string, separating fragments
// that are not contiguous in the original text.
func (h *Highlighter) renderJoined(frags []Fragment, separator string) string {
	var out strings.Builder
	for i, frag := range frags {
		if i > 0 && !frag.Follows(frags[i-1]) {
			out.WriteString(separator)
		}
		out.WriteString(h.renderFragment(frag))
	}
	return out.String()
}

// slice returns the fragment text between the absolute offsets start and end.
func (f Fragment) slice(start, end uint) string {
	return f.Text[start-f.Start : end-f.Start]
}
