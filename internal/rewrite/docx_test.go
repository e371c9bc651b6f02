package rewrite

import (
	"testing"

	"github.com/fumiama/go-docx"
)

func paragraphOf(parts ...interface{}) *docx.Paragraph {
	run := &docx.Run{Children: parts}
	return &docx.Paragraph{Children: []interface{}{run}}
}

func TestParagraphText_JoinsRunsAndTabs(t *testing.T) {
	para := paragraphOf(
		&docx.Tab{},
		&docx.Text{Text: "1.1 Background "},
		&docx.Text{Text: ".... 5"},
	)
	if got := paragraphText(para); got != "\t1.1 Background .... 5" {
		t.Errorf("got %q", got)
	}
}

func TestParagraphText_IgnoresNonRunChildren(t *testing.T) {
	para := &docx.Paragraph{Children: []interface{}{
		"not a run",
		&docx.Run{Children: []interface{}{&docx.Text{Text: "Chapter 1"}}},
	}}
	if got := paragraphText(para); got != "Chapter 1" {
		t.Errorf("got %q", got)
	}
}

func TestReplaceParagraphText_SingleRun(t *testing.T) {
	para := paragraphOf(
		&docx.Text{Text: "Chapter 1 Overview"},
		&docx.Text{Text: "……………→12"},
	)
	replaceParagraphText(para, "Chapter 1 Overview.....12")
	if got := paragraphText(para); got != "Chapter 1 Overview.....12" {
		t.Errorf("got %q", got)
	}
	if len(para.Children) != 1 {
		t.Errorf("expected a single replacement run, got %d children", len(para.Children))
	}
}
