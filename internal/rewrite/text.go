package rewrite

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/jcleary/toctidy/internal/toc"
)

// TextRewriter handles plain-text TOC files, one paragraph per line.
type TextRewriter struct{}

func (rw *TextRewriter) Rewrite(inputPath, outputPath string, cfg toc.RenderConfig) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	report := &Report{}
	tracker := toc.NewTracker()
	var out bytes.Buffer

	// The pass is total and order-preserving: one output line per input
	// line, unmatched lines copied byte for byte.
	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		if i > 0 {
			out.WriteByte('\n')
		}

		body, crlf := strings.CutSuffix(line, "\r")
		entry := toc.Classify(body)
		if entry.Kind == toc.Unmatched {
			out.WriteString(line)
			report.Paragraphs++
			continue
		}
		report.Paragraphs++

		level := tracker.Infer(entry)
		rendered := toc.Render(entry, level, cfg)
		out.WriteString(rendered.String())
		if crlf {
			out.WriteByte('\r')
		}

		switch entry.Kind {
		case toc.Abbreviation:
			report.Abbreviations++
			report.logf("formatted: %s (abbreviation)", entry.Label)
		default:
			report.Entries++
			report.logf("formatted: %s -> %s (level %d)", entry.Label, rendered.Page, level)
		}
	}

	if err := writeAtomic(outputPath, &out); err != nil {
		return nil, err
	}
	return report, nil
}
