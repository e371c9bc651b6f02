// Package toc classifies messy table-of-contents lines and re-renders them
// with consistent dot leaders and aligned page numbers.
package toc

import (
	"strings"
	"unicode"
)

// Kind tags the classification outcome for one paragraph.
type Kind int

const (
	// Unmatched paragraphs are passed through untouched by the rewriter.
	Unmatched Kind = iota
	// TOCEntry is a heading label followed by a page number.
	TOCEntry
	// Abbreviation is an acronym definition line, no page number.
	Abbreviation
)

func (k Kind) String() string {
	switch k {
	case TOCEntry:
		return "toc_entry"
	case Abbreviation:
		return "abbreviation"
	default:
		return "unmatched"
	}
}

// Entry is the structured form of one classified paragraph. Entries are
// created once per paragraph during a pass and never mutated afterwards.
type Entry struct {
	Kind  Kind
	Label string
	Page  PageNumber
	// Indent is the original leading whitespace measured in width units
	// (space=1, tab=4, arrow glyph=4). Kept even for Unmatched lines so
	// the tracker can use it as a signal.
	Indent int
}

// Width units assigned to leading tab and arrow characters. A single tab or
// arrow marks one nesting step in the documents this tool targets, the same
// weight as a four-space run.
const indentUnit = 4

// measureIndent returns the width of the leading whitespace/arrow prefix of
// text in width units, and the byte offset where the content starts.
func measureIndent(text string) (width, start int) {
	for i, r := range text {
		switch r {
		case ' ':
			width++
		case '\t', '→':
			width += indentUnit
		default:
			return width, i
		}
	}
	return width, len(text)
}

// hasContent reports whether s contains at least one letter or digit after
// cleanup. Labels that are empty or pure punctuation never classify.
func hasContent(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) >= 0
}
