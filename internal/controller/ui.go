// Package controller provides output adapters for displaying analysis results.
package controller

import (
	m "github.com/mole-works/mend/internal/model"
)

// UI receives progress events during a run and renders the final summary.
// FileStarted and FileCompleted may be called concurrently from analysis
// workers; implementations must be safe for that.
type UI interface {
	// Start announces a run over total files.
	Start(total int) error
	// FileStarted reports that a worker picked up path.
	FileStarted(path m.Path)
	// FileCompleted reports a finished file.
	FileCompleted(report m.FileReport)
	// Summary renders the final per-file table.
	Summary(reports []m.FileReport) error
	// Close releases UI resources.
	Close()
}
