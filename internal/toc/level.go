package toc

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxLevel caps inferred nesting depth.
const MaxLevel = 5

// Tracker infers nesting levels across a single document pass. Hierarchy is
// implicit in real-world TOCs (leading whitespace, numbering prefixes,
// sequential context), so inference is order-dependent: the same lines in a
// different order may resolve to different levels. State is pass-local;
// every pass starts from a fresh Tracker.
type Tracker struct {
	prevIndent int
	prevLevel  int
	lastTop    int
	seenEntry  bool
}

// NewTracker returns tracker state for one document pass.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Infer resolves the nesting level for a classified entry and updates the
// tracker state. Only TOCEntry and Abbreviation entries are fed to it.
func (t *Tracker) Infer(e Entry) int {
	level := e.Indent / indentUnit

	if level == 0 {
		// Indentation signal absent or too shallow to quantize: fall back
		// to the numbering prefix ("1.1" sits one level under "1").
		if d := numberingDepth(e.Label); d > level {
			level = d
		}
	}

	// A line indented strictly deeper than its predecessor is at least one
	// level below it, even when quantization rounds both into one bucket.
	if t.seenEntry && e.Indent > t.prevIndent && level <= t.prevLevel {
		level = t.prevLevel + 1
	}

	// Sibling detection: the successor of the last top-level section number
	// starts a new top-level entry no matter how the line was indented.
	if n, depth := leadingNumber(e.Label); t.lastTop > 0 && depth == 0 && n == t.lastTop+1 {
		level = 0
	}

	if level > MaxLevel {
		level = MaxLevel
	}
	if isTopLevelHeading(e.Label) {
		level = 0
	}

	t.prevIndent = e.Indent
	t.prevLevel = level
	t.seenEntry = true
	if level == 0 {
		if n, _ := leadingNumber(e.Label); n > 0 {
			t.lastTop = n
		}
	}
	return level
}

// numberingPrefix matches a leading numeric/alpha numbering pattern:
// "1", "1.1", "2.10.3", "a)", "(b)".
var numberingPrefix = regexp.MustCompile(`^(?:\(?([a-z])\)|(\d+(?:\.\d+)*))[.)]?\s`)

// numberingDepth estimates level from the numbering separators of a label
// prefix: "1" -> 0, "1.1" -> 1, "1.1.1" -> 2, "a)" -> 1. Best-effort only.
func numberingDepth(label string) int {
	m := numberingPrefix.FindStringSubmatch(label + " ")
	if m == nil {
		return 0
	}
	if m[1] != "" {
		return 1 // alpha sub-numbering sits one level under its parent
	}
	return strings.Count(m[2], ".")
}

// leadingNumber returns the first component of a numeric prefix and the
// depth of the full prefix, e.g. "2.1 Scope" -> (2, 1).
func leadingNumber(label string) (n, depth int) {
	m := numberingPrefix.FindStringSubmatch(label + " ")
	if m == nil || m[2] == "" {
		return 0, 0
	}
	parts := strings.Split(m[2], ".")
	for _, c := range parts[0] {
		n = n*10 + int(c-'0')
	}
	return n, len(parts) - 1
}

// Section headings that are always top-level regardless of how the source
// document indented them.
var topLevelKeywords = []string{
	"CHAPTER", "ABSTRACT", "INTRODUCTION", "METHODS", "RESULTS",
	"DISCUSSION", "CONCLUSION", "REFERENCES", "ACKNOWLEDGEMENTS",
	"CITATION", "DEDICATION", "LIST OF", "SUPPORTING MATERIAL",
	"COMPREHENSIVE", "MATHEMATICAL",
}

func isTopLevelHeading(label string) bool {
	up := strings.ToUpper(strings.TrimLeftFunc(label, unicode.IsSpace))
	for _, kw := range topLevelKeywords {
		if strings.HasPrefix(up, kw) {
			return true
		}
	}
	return strings.HasPrefix(label, "Table ") || strings.HasPrefix(label, "Figure ")
}
