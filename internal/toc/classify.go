package toc

import (
	"regexp"
	"strings"
	"unicode"
)

// dotRun matches the leader artifacts stripped from labels: any run of two or
// more dot-like characters, with optional intervening spaces. A single
// horizontal ellipsis already stands for three dots and matches on its own;
// a lone period (a sentence ending) does not.
var dotRun = regexp.MustCompile(`[.·]([ \t]*[.…·])+|…[ \t.…·]*`)

// arrowRun matches the stray arrow glyphs some word processors leave behind.
var arrowRun = regexp.MustCompile(`→+`)

// Classify decides whether one paragraph's raw text is a TOC entry, an
// abbreviation definition, or neither, and extracts the structured fields.
// The policy is ordered and total: abbreviation first, then TOC entry, then
// Unmatched. Ambiguous lines resolve deterministically, never with an error.
func Classify(text string) Entry {
	indent, start := measureIndent(text)
	body := strings.TrimRightFunc(text[start:], unicode.IsSpace)

	e := Entry{Kind: Unmatched, Indent: indent}
	if body == "" {
		return e
	}

	if label, ok := classifyAbbreviation(body); ok {
		e.Kind = Abbreviation
		e.Label = label
		return e
	}

	page, rest, ok := trailingPageToken(body)
	if !ok {
		return e
	}
	label := cleanLabel(rest)
	if !hasContent(label) {
		// A bare page-number-looking line is not a TOC entry.
		return e
	}
	e.Kind = TOCEntry
	e.Label = label
	e.Page = page
	return e
}

// cleanLabel removes arrows and dot-leader runs from the text preceding a
// page token and trims the result.
func cleanLabel(s string) string {
	s = arrowRun.ReplaceAllString(s, "")
	s = dotRun.ReplaceAllString(s, " ")
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// abbrevMaxLen bounds the acronym token length.
const abbrevMaxLen = 10

// abbrevSep finds the acronym/expansion separator: a colon, a dash set off
// by whitespace, or a run of two or more spaces.
var abbrevSep = regexp.MustCompile(`^([^:\s]+)(?::|\s+[-–—]\s+|\s{2,})\s*(.+)$`)

// classifyAbbreviation matches lines of the form "TOKEN<sep>Expansion".
// Lines that end in a page-number token fall through to the TOC rule: a
// trailing page number is a stronger signal than a leading acronym.
func classifyAbbreviation(body string) (string, bool) {
	if _, _, looksLikeTOC := trailingPageToken(body); looksLikeTOC {
		return "", false
	}
	m := abbrevSep.FindStringSubmatch(body)
	if m == nil {
		return "", false
	}
	token, expansion := m[1], m[2]
	if !isAbbrevToken(token) {
		return "", false
	}
	expansion = cleanLabel(expansion)
	if !hasContent(expansion) {
		return "", false
	}
	return token + " — " + expansion, true
}

// isAbbrevToken accepts all-caps or title-case tokens of bounded length:
// 2..10 runes, starting with a letter, letters/digits/hyphens only (plus the
// Greek letters that show up in scientific acronyms like "β-gal").
func isAbbrevToken(token string) bool {
	runes := []rune(token)
	if len(runes) < 2 || len(runes) > abbrevMaxLen {
		return false
	}
	if !unicode.IsLetter(runes[0]) {
		return false
	}
	// Non-ASCII letters (β and friends in scientific acronyms) are allowed
	// but carry no case signal.
	hasLower, hasUpper := false, false
	for _, r := range runes {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case unicode.IsDigit(r) || r == '-' || unicode.IsLetter(r):
		default:
			return false
		}
	}
	if !hasUpper {
		return false
	}
	if !hasLower {
		return true // all-caps
	}
	// Title-case: single leading capital, the rest lowercase.
	if runes[0] < 'A' || runes[0] > 'Z' {
		return false
	}
	for _, r := range runes[1:] {
		if r >= 'A' && r <= 'Z' {
			return false
		}
	}
	return true
}
