// Package rewrite drives a full document pass: every paragraph is classified,
// matched paragraphs are re-rendered with normalized dot leaders, and the
// result is written to a new document. Unmatched paragraphs pass through
// untouched.
package rewrite

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jcleary/toctidy/internal/toc"
)

// ErrDocumentParse marks inputs that are not valid structured documents.
// The operation fails fatally and no output is written.
var ErrDocumentParse = errors.New("document parse failed")

// Rewriter performs one full formatting pass over a document file.
type Rewriter interface {
	Rewrite(inputPath, outputPath string, cfg toc.RenderConfig) (*Report, error)
}

// SupportedExtensions lists file extensions this engine can rewrite.
var SupportedExtensions = map[string]bool{
	".docx": true,
	".txt":  true,
}

// ForFile returns the appropriate rewriter for a filename.
func ForFile(filename string) (Rewriter, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".docx":
		return &DocxRewriter{}, nil
	case ".txt":
		return &TextRewriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// OutputName derives the default output filename for an input, e.g.
// "thesis.docx" -> "thesis_formatted.docx".
func OutputName(filename string) string {
	ext := filepath.Ext(filename)
	return strings.TrimSuffix(filename, ext) + "_formatted" + ext
}

// Report is the human-readable processing log for one pass.
type Report struct {
	Paragraphs    int // paragraphs examined
	Entries       int // TOC entries rewritten
	Abbreviations int // abbreviation definitions rewritten

	lines []string
}

func (r *Report) logf(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

// Formatted is the total number of paragraphs rewritten.
func (r *Report) Formatted() int {
	return r.Entries + r.Abbreviations
}

// Lines returns the per-paragraph log lines in document order.
func (r *Report) Lines() []string {
	return r.lines
}

// Summary is a one-line outcome description.
func (r *Report) Summary() string {
	return fmt.Sprintf("formatted %d of %d paragraphs (%d entries, %d abbreviations)",
		r.Formatted(), r.Paragraphs, r.Entries, r.Abbreviations)
}

// Text renders the full log, one decision per line plus the summary.
func (r *Report) Text() string {
	var b strings.Builder
	for _, l := range r.lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	b.WriteString(r.Summary())
	b.WriteByte('\n')
	return b.String()
}

// writeAtomic materializes output only after the full pass succeeds: the
// content is written to a temp file in the destination directory and renamed
// into place, so a failed write never leaves a partial file behind.
func writeAtomic(path string, content io.WriterTo) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := content.WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close output: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("finalize output: %w", err)
	}
	return nil
}
