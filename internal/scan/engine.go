package scan

import (
	"log/slog"
	"sort"
	"time"
)

// Options carries the injected scan configuration. No package-level state
// is consulted anywhere in the pipeline.
type Options struct {
	// Root is the directory to scan
	Root string
	// MaxFileBytes caps how much of each file is read
	MaxFileBytes int
	// ExcludeDirs are path segments that exclude an entry from the walk
	ExcludeDirs []string
	// ScriptExtensions are extensions skipped in symbols mode
	ScriptExtensions []string
	// TopTerms is the maximum number of ranked terms returned
	TopTerms int
}

// CloudItem is one ranked term. Files repeats the scan-wide scanned-file
// count on every item, matching the front-end contract.
type CloudItem struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
	Mode  string `json:"mode"`
	Files int    `json:"files"`
}

// CloudResult is the complete payload for one scan. TotalTerms sums the
// counts of the truncated items only, matching the number the front-end
// shows next to the rendered cloud.
type CloudResult struct {
	Mode       string      `json:"mode"`
	Items      []CloudItem `json:"items"`
	TotalTerms int         `json:"total_terms"`
}

// Engine runs complete scans. It holds no mutable state between scans, so
// concurrent BuildCloud calls are safe without locks.
type Engine struct {
	opts    Options
	walker  *Walker
	loader  *Loader
	symbols *SymbolExtractor
	logger  *slog.Logger
}

// NewEngine creates an Engine with the given options.
func NewEngine(opts Options, logger *slog.Logger) *Engine {
	return &Engine{
		opts:    opts,
		walker:  NewWalker(opts.Root, opts.ExcludeDirs, opts.ScriptExtensions),
		loader:  NewLoader(opts.MaxFileBytes),
		symbols: NewSymbolExtractor(),
		logger:  logger,
	}
}

// BuildCloud walks the tree once, synchronously, and returns the ranked
// term cloud for mode. Per-file failures are invisible: an unreadable or
// binary file simply contributes nothing. The scan always runs to
// completion.
func (e *Engine) BuildCloud(mode Mode) *CloudResult {
	start := time.Now()

	tokenizer := e.tokenizerFor(mode)
	counts := make(map[string]int)
	var order []string
	scanned := 0

	for path := range e.walker.Files(mode) {
		text := e.loader.ReadText(path)
		if text == "" {
			continue
		}
		scanned++

		for term := range tokenizer.Tokens(text) {
			if _, seen := counts[term]; !seen {
				order = append(order, term)
			}
			counts[term]++
		}
	}

	// Rank by count descending; ties keep first-seen order.
	ranked := make([]string, len(order))
	copy(ranked, order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})
	if len(ranked) > e.opts.TopTerms {
		ranked = ranked[:e.opts.TopTerms]
	}

	items := make([]CloudItem, 0, len(ranked))
	total := 0
	for _, term := range ranked {
		items = append(items, CloudItem{
			Term:  term,
			Count: counts[term],
			Mode:  mode.String(),
			Files: scanned,
		})
		total += counts[term]
	}

	e.logger.Info("Scan complete",
		"mode", mode.String(),
		"files", scanned,
		"distinctTerms", len(order),
		"items", len(items),
		"duration", time.Since(start).String())

	return &CloudResult{
		Mode:       mode.String(),
		Items:      items,
		TotalTerms: total,
	}
}

// tokenizerFor selects the mode handler once per scan.
func (e *Engine) tokenizerFor(mode Mode) Tokenizer {
	switch mode {
	case ModeCode:
		return codeTokenizer{}
	case ModeSymbols:
		return e.symbols
	default:
		return wordTokenizer{}
	}
}
