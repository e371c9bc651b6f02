package pipeline

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jcleary/toctidy/internal/filestore"
	"github.com/jcleary/toctidy/internal/toc"
)

func newTestWorker(t *testing.T) (*Worker, *filestore.Store) {
	t.Helper()
	store, err := filestore.New(t.TempDir())
	if err != nil {
		t.Fatalf("filestore: %v", err)
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewWorker(store, log), store
}

func newTestJob(filename string, data []byte) *Job {
	now := time.Now()
	job := &Job{
		ID:        NewJobID(),
		Filename:  filename,
		Status:    StatusQueued,
		Render:    toc.DefaultRenderConfig(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	job.SetFileData(data)
	return job
}

func TestWorker_ProcessTextDocument(t *testing.T) {
	w, _ := newTestWorker(t)
	input := "Chapter 1 Overview……………→12\n    1.1 Background .... 5\nIntroduction\n"
	job := newTestJob("toc.txt", []byte(input))

	w.Process(job)

	snap := job.Snapshot()
	if snap.Status != StatusCompleted {
		t.Fatalf("expected completed, got %q (%s)", snap.Status, snap.Error)
	}
	if snap.Entries != 2 {
		t.Errorf("expected 2 formatted entries, got %d", snap.Entries)
	}

	out, err := os.ReadFile(job.OutputPath())
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(out), "Introduction") {
		t.Errorf("unmatched line should survive the pass, got %q", out)
	}
	if !strings.Contains(job.LogText(), "formatted 2 of") {
		t.Errorf("expected summary in log, got %q", job.LogText())
	}
}

func TestWorker_ProcessUnsupportedExtension(t *testing.T) {
	w, _ := newTestWorker(t)
	job := newTestJob("report.pdf", []byte("%PDF-1.4"))

	w.Process(job)

	if job.Snapshot().Status != StatusFailed {
		t.Errorf("expected failed, got %q", job.Snapshot().Status)
	}
}

func TestWorker_ProcessCorruptDocx(t *testing.T) {
	w, _ := newTestWorker(t)
	job := newTestJob("broken.docx", []byte("this is not a zip archive"))

	w.Process(job)

	snap := job.Snapshot()
	if snap.Status != StatusFailed {
		t.Fatalf("expected failed, got %q", snap.Status)
	}
	if job.OutputPath() != "" {
		t.Error("no output path should be recorded on parse failure")
	}
}
