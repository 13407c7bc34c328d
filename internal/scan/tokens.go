package scan

import (
	"iter"
	"strings"
)

// Tokenizer produces a lazy sequence of lowercase terms from file text.
// Each call to Tokens is one-shot per file; a fresh scan restarts from
// scratch.
type Tokenizer interface {
	Tokens(text string) iter.Seq[string]
}

// wordTokenizer yields maximal alphanumeric/underscore runs longer than
// two characters, lowercased, without identifier splitting.
type wordTokenizer struct{}

func (wordTokenizer) Tokens(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for token := range baseTokens(text) {
			lowered := strings.ToLower(token)
			if len(lowered) > 2 {
				if !yield(lowered) {
					return
				}
			}
		}
	}
}

// codeTokenizer decomposes each alphanumeric run into identifier pieces.
type codeTokenizer struct{}

func (codeTokenizer) Tokens(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for token := range baseTokens(text) {
			for _, piece := range SplitIdentifier(token) {
				if !yield(piece) {
					return
				}
			}
		}
	}
}

// baseTokens yields maximal runs matching [A-Za-z0-9_]+ in order of
// appearance. The character class is pure ASCII, so a byte scan suffices.
func baseTokens(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := -1
		for i := 0; i < len(text); i++ {
			if isWordByte(text[i]) {
				if start < 0 {
					start = i
				}
				continue
			}
			if start >= 0 {
				if !yield(text[start:i]) {
					return
				}
				start = -1
			}
		}
		if start >= 0 {
			yield(text[start:])
		}
	}
}

// SplitIdentifier breaks an identifier into readable lowercase pieces.
//
// Examples:
//
//	"codeCloud"  -> ["code", "cloud"]
//	"code_cloud" -> ["code", "cloud"]
//	"HTTPServer" -> ["http", "server"]
//
// Separator runs ([_-]+) split first, then each chunk is decomposed into
// case pieces. Pieces of length <= 1 are dropped.
func SplitIdentifier(token string) []string {
	var pieces []string
	for _, chunk := range splitSeparators(token) {
		parts := casePieces(chunk)
		if len(parts) == 0 {
			parts = []string{chunk}
		}
		pieces = append(pieces, parts...)
	}

	out := pieces[:0]
	for _, piece := range pieces {
		lowered := strings.ToLower(piece)
		if len(lowered) > 1 {
			out = append(out, lowered)
		}
	}
	return out
}

// splitSeparators splits on runs of underscores or hyphens, dropping
// empty chunks.
func splitSeparators(token string) []string {
	var chunks []string
	start := -1
	for i := 0; i < len(token); i++ {
		if token[i] == '_' || token[i] == '-' {
			if start >= 0 {
				chunks = append(chunks, token[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		chunks = append(chunks, token[start:])
	}
	return chunks
}

// casePieces extracts sub-pieces from a chunk: an optional-capital
// lowercase run, an all-uppercase run not followed by a lowercase letter,
// or a digit run. An uppercase run followed by a lowercase letter donates
// its last capital to the next piece, so "HTTPServer" splits into
// "HTTP" + "Server".
func casePieces(chunk string) []string {
	var pieces []string
	i := 0
	for i < len(chunk) {
		switch c := chunk[i]; {
		case isDigitByte(c):
			j := i
			for j < len(chunk) && isDigitByte(chunk[j]) {
				j++
			}
			pieces = append(pieces, chunk[i:j])
			i = j
		case isLowerByte(c):
			j := i
			for j < len(chunk) && isLowerByte(chunk[j]) {
				j++
			}
			pieces = append(pieces, chunk[i:j])
			i = j
		case isUpperByte(c):
			j := i
			for j < len(chunk) && isUpperByte(chunk[j]) {
				j++
			}
			if j < len(chunk) && isLowerByte(chunk[j]) {
				if j-i > 1 {
					pieces = append(pieces, chunk[i:j-1])
				}
				k := j
				for k < len(chunk) && isLowerByte(chunk[k]) {
					k++
				}
				pieces = append(pieces, chunk[j-1:k])
				i = k
			} else {
				pieces = append(pieces, chunk[i:j])
				i = j
			}
		default:
			i++
		}
	}
	return pieces
}

func isWordByte(b byte) bool {
	return isLowerByte(b) || isUpperByte(b) || isDigitByte(b) || b == '_'
}

func isLowerByte(b byte) bool { return b >= 'a' && b <= 'z' }
func isUpperByte(b byte) bool { return b >= 'A' && b <= 'Z' }
func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }
