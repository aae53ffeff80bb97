package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/dgallion1/crfcf/internal/parser"
	"github.com/dgallion1/crfcf/internal/render"
	"github.com/dgallion1/crfcf/internal/stats"
)

// Worker processes a single parse job: parse the CRFCF source, then
// render the Markdown rendition alongside the tree.
type Worker struct {
	log   *slog.Logger
	stats *stats.ParseStats
}

func NewWorker(log *slog.Logger, st *stats.ParseStats) *Worker {
	return &Worker{log: log, stats: st}
}

// Process runs the full pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	// Phase 1: Parse
	job.SetStatus(StatusParsing, "parsing")
	start := time.Now()
	tree, err := parser.Parse(string(job.Source()))
	w.stats.Record(time.Since(start).Microseconds())
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	if ctx.Err() != nil {
		job.AddError(ctx.Err().Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	// Phase 2: Render
	job.SetStatus(StatusRendering, "rendering")
	markdown := render.Markdown(tree)

	job.SetResult(tree, markdown)
	job.SetStatus(StatusCompleted, "done")
	log.Info("job complete", "nodes", job.Snapshot().NodeCount)
}
