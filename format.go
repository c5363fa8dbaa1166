package highlight

import "strings"

// SimpleHTMLFormatter wraps matched spans in a fixed pair of tags.
type SimpleHTMLFormatter struct {
	pre  string
	post string
}

// NewSimpleHTMLFormatter returns a formatter wrapping matched spans in
// pre and post. Empty arguments fall back to <b> and </b>.
func NewSimpleHTMLFormatter(pre, post string) *SimpleHTMLFormatter {
	if pre == "" {
		pre = "<b>"
	}
	if post == "" {
		post = "</b>"
	}
	return &SimpleHTMLFormatter{pre: pre, post: post}
}

// HighlightTerm wraps text in the formatter's tags.
func (f *SimpleHTMLFormatter) HighlightTerm(text string) string {
	return f.pre + text + f.post
}

// DefaultEncoder passes text through unchanged.
type DefaultEncoder struct{}

// EncodeText returns text unchanged.
func (DefaultEncoder) EncodeText(text string) string { return text }

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"'", "&#39;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&#34;",
)

// HTMLEncoder escapes text for embedding in HTML output.
type HTMLEncoder struct{}

// EncodeText escapes the HTML special characters in text.
func (HTMLEncoder) EncodeText(text string) string {
	return htmlEscaper.Replace(text)
}
