/*
Package highlight selects and renders the text fragments of a document that
best justify why it matched a search query, producing the familiar
"…the quick <b>brown fox</b>…" result preview.

The package is the fragment-highlighting half of a full-text search stack: it
consumes the token stream an analysis chain produced for the document (terms
with byte offsets) together with a per-token relevance score, merges adjacent
scored tokens into groups, folds the groups into fragments, ranks the
fragments and renders the best of them with highlight markup.

# Usage

Create a [Highlighter] with a [Scorer] for your query. The default collaborators
from [New] break the text into ~100 byte fragments and wrap matches in
<b></b>; replace the Fragmenter, Formatter and Encoder fields to change that.
Then feed it the document text and a [TokenSource] over it.

	text := "The quick brown fox"

	tokens := highlight.Tokens([]highlight.Token{
		{Term: "the", Start: 0, End: 3},
		{Term: "quick", Start: 4, End: 9},
		{Term: "brown", Start: 10, End: 15},
		{Term: "fox", Start: 16, End: 19},
	})

	h := highlight.New(highlight.NewTermScorer("quick", "brown"))

	preview, err := h.BestFragmentsJoined(tokens, text, 3, "...")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(preview) // The <b>quick</b> <b>brown</b> fox

[Highlighter.BestFragments] returns the fragments as separate strings instead,
and [Highlighter.BestTextFragments] returns the raw [Fragment] records with
scores, offsets and match spans for callers doing their own rendering.

A Highlighter processes one document at a time; the Scorer and Fragmenter are
stateful per document. Highlight independent documents in parallel by running
one Highlighter per goroutine.
*/
package highlight
