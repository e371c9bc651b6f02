package toc

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// PageNumber is a page token extracted from the end of a TOC line. Roman
// tokens keep their raw spelling but render in canonical uppercase.
type PageNumber struct {
	Raw   string
	Value int
	Roman bool
}

// Canonical returns the text form used in rendered output. Arabic pages
// render their digits as-is; roman pages render uppercase, the canonical
// form for front-matter numbering.
func (p PageNumber) Canonical() string {
	if p.Roman {
		return strings.ToUpper(p.Raw)
	}
	return p.Raw
}

func (p PageNumber) isZero() bool { return p.Raw == "" }

// romanGrammar is the canonical subtractive-pair grammar. Tokens like "IIX"
// or "VX" are rejected even though they are made of roman letters.
var romanGrammar = regexp.MustCompile(`^M{0,3}(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})$`)

var romanValues = map[byte]int{
	'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000,
}

// ParseRoman parses a roman-numeral token, case-insensitive. It returns
// false for the empty string and for any token outside the canonical
// grammar.
func ParseRoman(token string) (int, bool) {
	if token == "" {
		return 0, false
	}
	up := strings.ToUpper(token)
	if !romanGrammar.MatchString(up) {
		return 0, false
	}
	total := 0
	for i := 0; i < len(up); i++ {
		v := romanValues[up[i]]
		if i+1 < len(up) && v < romanValues[up[i+1]] {
			total -= v
		} else {
			total += v
		}
	}
	return total, true
}

// maxPageTokenLen bounds trailing page tokens; longer digit or letter runs
// are never page numbers.
const maxPageTokenLen = 6

// parsePageToken validates a candidate trailing token as a page number.
func parsePageToken(token string) (PageNumber, bool) {
	if token == "" || len(token) > maxPageTokenLen {
		return PageNumber{}, false
	}
	if isDigits(token) {
		n, err := strconv.Atoi(token)
		if err != nil {
			return PageNumber{}, false
		}
		return PageNumber{Raw: token, Value: n}, true
	}
	if n, ok := ParseRoman(token); ok {
		return PageNumber{Raw: token, Value: n, Roman: true}, true
	}
	return PageNumber{}, false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// trailingPageToken scans backwards from the end of text for a page-number
// token (digits or strict roman, optionally parenthesized). It returns the
// parsed page and the text remaining before the token. ok is false when the
// line does not end in a page-number-looking token, or when the token is not
// set off by a word boundary (so "acid" never yields roman "cid").
func trailingPageToken(text string) (page PageNumber, rest string, ok bool) {
	s := strings.TrimRightFunc(text, unicode.IsSpace)
	end := len(s)
	paren := false
	if end > 0 && s[end-1] == ')' {
		paren = true
		end--
	}
	start := end
	for start > 0 {
		c := s[start-1]
		if isPageTokenChar(c) {
			start--
			continue
		}
		break
	}
	if start == end || end-start > maxPageTokenLen+2 {
		return PageNumber{}, "", false
	}
	token := s[start:end]
	cut := start
	if paren {
		if start > 0 && s[start-1] == '(' {
			cut = start - 1
		} else {
			return PageNumber{}, "", false
		}
	}
	// The token must begin at the line start or after a non-word character;
	// otherwise it is the tail of an ordinary word.
	if cut > 0 {
		r := lastRune(s[:cut])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return PageNumber{}, "", false
		}
	}
	p, valid := parsePageToken(token)
	if !valid {
		return PageNumber{}, "", false
	}
	return p, s[:cut], true
}

func isPageTokenChar(c byte) bool {
	if c >= '0' && c <= '9' {
		return true
	}
	switch c {
	case 'i', 'v', 'x', 'l', 'c', 'd', 'm',
		'I', 'V', 'X', 'L', 'C', 'D', 'M':
		return true
	}
	return false
}

func lastRune(s string) rune {
	r := rune(0)
	for _, c := range s {
		r = c
	}
	return r
}
