package toc

import "testing"

func TestTracker_IndentQuantization(t *testing.T) {
	tr := NewTracker()
	cases := []struct {
		line string
		want int
	}{
		{"Overview of the study 1", 0},
		{"    1.1 Background 2", 1},
		{"        1.1.1 Prior work 3", 2},
		{"    1.2 Aims 4", 1},
		{"Materials used in assays 7", 0},
	}
	for _, tc := range cases {
		e := Classify(tc.line)
		if e.Kind != TOCEntry {
			t.Fatalf("Classify(%q): expected TOCEntry, got %s", tc.line, e.Kind)
		}
		if got := tr.Infer(e); got != tc.want {
			t.Errorf("Infer(%q): expected level %d, got %d", tc.line, tc.want, got)
		}
	}
}

func TestTracker_NumberingFallbackWithoutIndent(t *testing.T) {
	tr := NewTracker()
	cases := []struct {
		line string
		want int
	}{
		{"1 Scope of work 1", 0},
		{"1.1 Planning 2", 1},
		{"1.1.1 Milestones 3", 2},
		{"a) Deliverables 4", 1},
	}
	for _, tc := range cases {
		e := Classify(tc.line)
		if got := tr.Infer(e); got != tc.want {
			t.Errorf("Infer(%q): expected level %d, got %d", tc.line, tc.want, got)
		}
	}
}

func TestTracker_MonotonicTieBreak(t *testing.T) {
	// Two width units quantize to the top bucket, but strictly deeper
	// indentation than the predecessor still means one level down.
	tr := NewTracker()
	parent := Classify("Survey design 10")
	if got := tr.Infer(parent); got != 0 {
		t.Fatalf("parent: expected level 0, got %d", got)
	}
	child := Classify("  Sampling frame 11")
	if got := tr.Infer(child); got != 1 {
		t.Errorf("child: expected level 1 from tie-break, got %d", got)
	}
}

func TestTracker_LevelClampedToMax(t *testing.T) {
	tr := NewTracker()
	e := Classify("                                Deep nesting 99")
	if got := tr.Infer(e); got != MaxLevel {
		t.Errorf("expected clamp to %d, got %d", MaxLevel, got)
	}
}

func TestTracker_SiblingVsChildFromLastTopNumber(t *testing.T) {
	tr := NewTracker()
	top := Classify("2 Methods overview 14")
	if got := tr.Infer(top); got != 0 {
		t.Fatalf("top: expected level 0, got %d", got)
	}
	// Same leading number with a deeper prefix is a child of section 2.
	child := Classify("2.3 Ethics approval 16")
	if got := tr.Infer(child); got != 1 {
		t.Errorf("child: expected level 1, got %d", got)
	}
	// Stray indentation does not turn the next top-level section into a
	// child: 3 follows 2, so it is a sibling.
	sibling := Classify("  3 Results overview 20")
	if got := tr.Infer(sibling); got != 0 {
		t.Errorf("sibling: expected level 0, got %d", got)
	}
}

func TestTracker_TopLevelKeywordOverride(t *testing.T) {
	tr := NewTracker()
	// Even indented, REFERENCES is a top-level section.
	e := Classify("        REFERENCES 120")
	if got := tr.Infer(e); got != 0 {
		t.Errorf("expected keyword override to level 0, got %d", got)
	}
	fig := Classify("    Figure 3 Flow diagram 22")
	if got := tr.Infer(fig); got != 0 {
		t.Errorf("expected Figure prefix override to level 0, got %d", got)
	}
}

func TestTracker_OrderDependence(t *testing.T) {
	// Hierarchy is inferred from sequential context; reordering the same
	// lines may legitimately change levels.
	a := Classify("Primary endpoint 30")
	b := Classify("  Secondary endpoint 31")

	tr1 := NewTracker()
	tr1.Infer(a)
	forward := tr1.Infer(b)

	tr2 := NewTracker()
	alone := tr2.Infer(b)

	if forward != 1 {
		t.Errorf("expected level 1 after shallower predecessor, got %d", forward)
	}
	if alone != 0 {
		t.Errorf("expected level 0 with no predecessor, got %d", alone)
	}
}
