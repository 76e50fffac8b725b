package renderer

import "time"

// WorkerStats records what a single render worker did
type WorkerStats struct {
	Band     int           // Band index, top to bottom
	Rows     int           // Image rows covered by the band
	Pixels   int           // Pixels traced
	Duration time.Duration // Wall time spent tracing
}

// RenderStats aggregates per-worker statistics for a finished render
type RenderStats struct {
	Workers      []WorkerStats
	TotalPixels  int
	TotalSamples int
	Elapsed      time.Duration // Wall time for the whole render
}
