package scan

import (
	"bufio"
	"iter"
	"regexp"
	"strings"
)

// SymbolExtractor finds top-level definition names via line-level
// heuristics. It is an explicit, documented heuristic layer with an
// ordered rule list, not a parser: false positives and negatives are
// expected. It satisfies Tokenizer so a real parser could replace it
// without changing the pipeline contract.
type SymbolExtractor struct {
	typePattern *regexp.Regexp
	funcPattern *regexp.Regexp
	varPattern  *regexp.Regexp
}

// Comment markers checked against the trimmed line start.
var commentPrefixes = []string{"#", "//", "/*", "*", "--"}

// NewSymbolExtractor creates a SymbolExtractor with the built-in rules.
func NewSymbolExtractor() *SymbolExtractor {
	return &SymbolExtractor{
		typePattern: regexp.MustCompile(
			`^(?:export\s+)?(?:abstract\s+)?(?:public\s+|private\s+|protected\s+)?` +
				`(?:class|interface|struct|trait)\s+([A-Za-z_]\w*)`),
		funcPattern: regexp.MustCompile(
			`^(?:export\s+)?(?:async\s+)?(?:public\s+|private\s+|protected\s+|static\s+)?` +
				`(?:def|func|fn|function)\s+([A-Za-z_]\w*)`),
		varPattern: regexp.MustCompile(`^([A-Za-z_]\w*)\s*=`),
	}
}

// Tokens yields the lowercased definition names found in text, in order.
// Rules are evaluated per line with fixed precedence: type definitions,
// then function definitions, then top-level variable assignments. The
// first matching rule wins; a line records at most one name.
func (e *SymbolExtractor) Tokens(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		scanner := bufio.NewScanner(strings.NewReader(text))
		// Lines can be long in minified or generated files; the loader
		// caps content at well under 1MB.
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		for scanner.Scan() {
			raw := scanner.Text()
			trimmed := strings.TrimSpace(raw)
			if trimmed == "" {
				continue
			}
			if isCommentLine(trimmed) {
				continue
			}

			name := ""
			if m := e.typePattern.FindStringSubmatch(trimmed); m != nil {
				name = m[1]
			} else if m := e.funcPattern.FindStringSubmatch(trimmed); m != nil {
				name = m[1]
			} else if !strings.HasPrefix(raw, " ") && !strings.HasPrefix(raw, "\t") {
				// Zero indentation only: member and nested assignments
				// are excluded on purpose.
				if m := e.varPattern.FindStringSubmatch(trimmed); m != nil {
					name = m[1]
				}
			}

			if name == "" {
				continue
			}
			lowered := strings.ToLower(name)
			if len(lowered) > 1 {
				if !yield(lowered) {
					return
				}
			}
		}
	}
}

func isCommentLine(trimmed string) bool {
	for _, prefix := range commentPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}
