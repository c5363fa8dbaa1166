package main

import (
	"strings"
	"unicode"
	"unicode/utf8"

	highlight "go.gopad.dev/go-search-highlight"
)

// tokenizeWords produces a token source over text, splitting on Unicode word
// boundaries and lowercasing terms. It stands in for a real analysis chain.
func tokenizeWords(text string) highlight.TokenSource {
	return func(yield func(highlight.Token, error) bool) {
		i := 0
		for i < len(text) {
			r, size := utf8.DecodeRuneInString(text[i:])
			if !isWordRune(r) {
				i += size
				continue
			}

			start := i
			for i < len(text) {
				r, size = utf8.DecodeRuneInString(text[i:])
				if !isWordRune(r) {
					break
				}
				i += size
			}

			tok := highlight.Token{
				Term:  strings.ToLower(text[start:i]),
				Start: uint(start),
				End:   uint(i),
			}
			if !yield(tok, nil) {
				return
			}
		}
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
