package highlight

import "errors"

// ErrMalformedOffsets is returned when upstream token offsets violate the
// ordering contract: a token whose end precedes its start, an offset past the
// end of the text, or a start offset before the previous token's start.
// Offsets are a contract from the analysis layer; they are not repaired,
// since silently reordering them would corrupt highlight positions in the
// rendered output. Callers should fall back to an unhighlighted excerpt for
// the document.
var ErrMalformedOffsets = errors.New("highlight: malformed token offsets")
