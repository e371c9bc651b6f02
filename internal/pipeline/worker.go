package pipeline

import (
	"log/slog"

	"github.com/jcleary/toctidy/internal/filestore"
	"github.com/jcleary/toctidy/internal/rewrite"
)

// Worker processes a single formatting job.
type Worker struct {
	store *filestore.Store
	log   *slog.Logger
}

func NewWorker(store *filestore.Store, log *slog.Logger) *Worker {
	return &Worker{store: store, log: log}
}

// Process runs the full formatting pass for a job. The pass itself is a
// synchronous, single-threaded transformation; concurrency lives entirely in
// the pool running many Process calls over independent documents.
func (w *Worker) Process(job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	job.SetStatus(StatusFormatting)

	rw, err := rewrite.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.Fail(err.Error())
		return
	}

	inputPath, err := w.store.SaveInput(job.ID, job.Filename, job.TakeFileData())
	if err != nil {
		log.Error("save input failed", "error", err)
		job.Fail(err.Error())
		return
	}

	outputPath := w.store.OutputPath(job.ID, job.Filename)
	report, err := rw.Rewrite(inputPath, outputPath, job.Render)
	if err != nil {
		log.Error("rewrite failed", "error", err)
		job.Fail(err.Error())
		return
	}

	log.Info("formatted document",
		"paragraphs", report.Paragraphs,
		"entries", report.Entries,
		"abbreviations", report.Abbreviations,
	)
	job.SetResult(outputPath, report.Text(), report.Formatted())
}
