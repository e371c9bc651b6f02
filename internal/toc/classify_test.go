package toc

import "testing"

func TestClassify_MessyTOCEntry(t *testing.T) {
	e := Classify("Chapter 1 Overview……………→12")
	if e.Kind != TOCEntry {
		t.Fatalf("expected TOCEntry, got %s", e.Kind)
	}
	if e.Label != "Chapter 1 Overview" {
		t.Errorf("expected label %q, got %q", "Chapter 1 Overview", e.Label)
	}
	if e.Page.Value != 12 || e.Page.Roman {
		t.Errorf("expected arabic page 12, got %+v", e.Page)
	}
	if e.Indent != 0 {
		t.Errorf("expected indent 0, got %d", e.Indent)
	}
}

func TestClassify_IndentedEntryKeepsRawIndentation(t *testing.T) {
	e := Classify("    1.1 Background .... 5")
	if e.Kind != TOCEntry {
		t.Fatalf("expected TOCEntry, got %s", e.Kind)
	}
	if e.Label != "1.1 Background" {
		t.Errorf("expected label %q, got %q", "1.1 Background", e.Label)
	}
	if e.Page.Raw != "5" {
		t.Errorf("expected page token %q, got %q", "5", e.Page.Raw)
	}
	if e.Indent != 4 {
		t.Errorf("expected indent width 4, got %d", e.Indent)
	}
}

func TestClassify_TabAndArrowIndentation(t *testing.T) {
	tab := Classify("\t2.1 Data collection 9")
	if tab.Indent != 4 {
		t.Errorf("tab indent: expected 4 width units, got %d", tab.Indent)
	}
	arrow := Classify("→→Appendix A 55")
	if arrow.Indent != 8 {
		t.Errorf("arrow indent: expected 8 width units, got %d", arrow.Indent)
	}
	if arrow.Kind != TOCEntry || arrow.Label != "Appendix A" {
		t.Errorf("expected TOCEntry %q, got %s %q", "Appendix A", arrow.Kind, arrow.Label)
	}
}

func TestClassify_RomanPageNumber(t *testing.T) {
	e := Classify("List of Figures ........ iv")
	if e.Kind != TOCEntry {
		t.Fatalf("expected TOCEntry, got %s", e.Kind)
	}
	if !e.Page.Roman || e.Page.Value != 4 {
		t.Errorf("expected roman page 4, got %+v", e.Page)
	}
}

func TestClassify_AbbreviationColonSeparator(t *testing.T) {
	e := Classify("API: Application Programming Interface")
	if e.Kind != Abbreviation {
		t.Fatalf("expected Abbreviation, got %s", e.Kind)
	}
	if e.Label != "API — Application Programming Interface" {
		t.Errorf("expected normalized label, got %q", e.Label)
	}
	if !e.Page.isZero() {
		t.Errorf("abbreviation should carry no page number, got %+v", e.Page)
	}
}

func TestClassify_AbbreviationSeparatorVariants(t *testing.T) {
	cases := []string{
		"HTML - Hypertext Markup Language",
		"HTML — Hypertext Markup Language",
		"HTML   Hypertext Markup Language",
		"HTML: ..... Hypertext Markup Language",
	}
	for _, line := range cases {
		e := Classify(line)
		if e.Kind != Abbreviation {
			t.Errorf("Classify(%q): expected Abbreviation, got %s", line, e.Kind)
			continue
		}
		if e.Label != "HTML — Hypertext Markup Language" {
			t.Errorf("Classify(%q): got label %q", line, e.Label)
		}
	}
}

func TestClassify_AbbreviationNormalizationIsStable(t *testing.T) {
	first := Classify("TGF-β: Transforming Growth Factor beta")
	if first.Kind != Abbreviation {
		t.Fatalf("expected Abbreviation, got %s", first.Kind)
	}
	second := Classify(first.Label)
	if second.Kind != Abbreviation || second.Label != first.Label {
		t.Errorf("re-classifying %q changed it to %s %q", first.Label, second.Kind, second.Label)
	}
}

func TestClassify_TrailingPageNumberBeatsAbbreviationShape(t *testing.T) {
	// Ordered policy: a line ending in a page token is a TOC entry even if
	// its head looks like an acronym definition.
	e := Classify("FAQ: Common questions ..... 12")
	if e.Kind != TOCEntry {
		t.Fatalf("expected TOCEntry, got %s", e.Kind)
	}
	if e.Label != "FAQ: Common questions" || e.Page.Value != 12 {
		t.Errorf("got label %q page %+v", e.Label, e.Page)
	}
}

func TestClassify_UnmatchedLines(t *testing.T) {
	unmatched := []string{
		"Introduction",            // no page token
		"42",                      // bare number, no label
		"…… 7",                    // label is pure punctuation after cleanup
		"",                        // empty
		"   ",                     // whitespace only
		"e.g.: that is, for example", // token has punctuation
		"see chapter twelve",      // no trailing token
	}
	for _, line := range unmatched {
		if e := Classify(line); e.Kind != Unmatched {
			t.Errorf("Classify(%q): expected Unmatched, got %s (label %q)", line, e.Kind, e.Label)
		}
	}
}

func TestClassify_LongTokenIsNotAbbreviation(t *testing.T) {
	// Token over ten runes fails the abbreviation rule and the line has no
	// page number, so it falls through to Unmatched.
	if e := Classify("INTRODUCTION: the opening chapter"); e.Kind != Unmatched {
		t.Errorf("expected Unmatched, got %s (%q)", e.Kind, e.Label)
	}
}

func TestClassify_IdempotentOnRenderedOutput(t *testing.T) {
	entry := Classify("Chapter 1 Overview……………→12")
	line := Render(entry, 0, DefaultRenderConfig())
	again := Classify(line.String())
	if again.Kind != TOCEntry || again.Label != entry.Label || again.Page != entry.Page {
		t.Errorf("re-classifying rendered line diverged: %+v vs %+v", again, entry)
	}
}
