package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	Rows        int           // Number of row tasks
	Workers     int           // Workers used for the compute phase (1 when sequential)
	ComputeTime time.Duration // Time spent tracing rays
	DrawTime    time.Duration // Time spent plotting to the surface
	SlowestRow  time.Duration // Longest single row task

	AverageLuminance float64 // Mean pixel luminance of the finished frame
}

// addRow folds a finished row into the statistics
func (s *RenderStats) addRow(d time.Duration) {
	s.Rows++
	s.SlowestRow = max(s.SlowestRow, d)
}
