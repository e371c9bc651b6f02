package rewrite

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/jcleary/toctidy/internal/toc"
)

// DocxRewriter handles .docx files.
type DocxRewriter struct{}

func (rw *DocxRewriter) Rewrite(inputPath, outputPath string, cfg toc.RenderConfig) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}

	doc, err := docx.Parse(f, st.Size())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentParse, err)
	}

	report := &Report{}
	tracker := toc.NewTracker()

	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		report.Paragraphs++

		raw := paragraphText(para)
		entry := toc.Classify(raw)
		if entry.Kind == toc.Unmatched {
			continue
		}

		level := tracker.Infer(entry)
		line := toc.Render(entry, level, cfg)
		replaceParagraphText(para, line.String())

		switch entry.Kind {
		case toc.Abbreviation:
			report.Abbreviations++
			report.logf("formatted: %s (abbreviation)", entry.Label)
		default:
			report.Entries++
			report.logf("formatted: %s -> %s (level %d)", entry.Label, line.Page, level)
		}
	}

	if err := writeAtomic(outputPath, doc); err != nil {
		return nil, err
	}
	return report, nil
}

// paragraphText flattens a paragraph's runs into the raw line the classifier
// sees. Explicit tab characters inside runs count as indentation, so they
// are kept.
func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			switch t := rc.(type) {
			case *docx.Text:
				buf.WriteString(t.Text)
			case *docx.Tab:
				buf.WriteByte('\t')
			}
		}
	}
	return buf.String()
}

// replaceParagraphText swaps a paragraph's run content for a single run
// holding the rendered line. Paragraph-level properties not related to TOC
// formatting stay as they are.
func replaceParagraphText(para *docx.Paragraph, text string) {
	para.Children = para.Children[:0]
	para.AddText(text)
}
