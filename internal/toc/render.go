package toc

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidConfig wraps all render configuration failures. Config is
// validated once at pass start, before any paragraph is touched.
var ErrInvalidConfig = errors.New("invalid render config")

// RenderConfig controls how classified entries are re-rendered. It is passed
// explicitly through every call; there is no ambient default, so concurrent
// passes with different margins never interfere.
type RenderConfig struct {
	// IndentPerLevel is the indentation width, in columns, added per
	// nesting level.
	IndentPerLevel int
	// MarginColumn is the column at which page numbers right-align.
	MarginColumn int
	// LeaderChar is the fill character between label and page number.
	LeaderChar rune
	// MinLeaderLength floors the leader run so overlong labels still get a
	// visible separator.
	MinLeaderLength int
}

// DefaultRenderConfig returns the standard layout: four columns per level,
// page numbers aligned at column 78, dot leaders of at least three dots.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		IndentPerLevel:  4,
		MarginColumn:    78,
		LeaderChar:      '.',
		MinLeaderLength: 3,
	}
}

// Validate rejects unusable configurations.
func (c RenderConfig) Validate() error {
	if c.MarginColumn <= 0 {
		return fmt.Errorf("%w: margin column must be positive, got %d", ErrInvalidConfig, c.MarginColumn)
	}
	if c.IndentPerLevel < 0 {
		return fmt.Errorf("%w: indent per level must be non-negative, got %d", ErrInvalidConfig, c.IndentPerLevel)
	}
	if c.MinLeaderLength < 1 {
		return fmt.Errorf("%w: minimum leader length must be at least 1, got %d", ErrInvalidConfig, c.MinLeaderLength)
	}
	if c.LeaderChar == 0 || c.LeaderChar == ' ' {
		return fmt.Errorf("%w: leader character must be a printable fill character", ErrInvalidConfig)
	}
	return nil
}

// Line is one rendered output line, split into its parts so callers can
// apply run-level formatting per part.
type Line struct {
	Indent string
	Label  string
	Leader string
	Page   string
}

// String assembles the visible line. For TOC entries the page number's right
// edge lands exactly on the margin column whenever the label leaves room.
func (l Line) String() string {
	return l.Indent + l.Label + l.Leader + l.Page
}

// Render produces the normalized line for a classified entry at the given
// level. Abbreviations carry no page number and no leader, only the
// normalized label with level indentation.
func Render(e Entry, level int, cfg RenderConfig) Line {
	indent := strings.Repeat(" ", cfg.IndentPerLevel*level)
	if e.Kind == Abbreviation {
		return Line{Indent: indent, Label: e.Label}
	}

	page := e.Page.Canonical()
	width := utf8.RuneCountInString(indent) +
		utf8.RuneCountInString(e.Label) +
		utf8.RuneCountInString(page)
	leaderLen := cfg.MarginColumn - width
	if leaderLen < cfg.MinLeaderLength {
		leaderLen = cfg.MinLeaderLength
	}
	return Line{
		Indent: indent,
		Label:  e.Label,
		Leader: strings.Repeat(string(cfg.LeaderChar), leaderLen),
		Page:   page,
	}
}
