package generator

import "time"

// Summary describes the outcome of one generation run
type Summary struct {
	RunID           string
	TablesProcessed int
	GeneratedFiles  []string
	Warnings        []string
	DisabledPlugins []string
	Elapsed         time.Duration
	DryRun          bool
}

// Stats returns the summary as key/value pairs for DiagnosticSystem.Summary
func (s *Summary) Stats() map[string]interface{} {
	stats := map[string]interface{}{
		"Run ID":           s.RunID,
		"Tables processed": s.TablesProcessed,
		"Files generated":  len(s.GeneratedFiles),
		"Warnings":         len(s.Warnings),
		"Elapsed":          s.Elapsed.Round(time.Millisecond),
	}
	if len(s.DisabledPlugins) > 0 {
		stats["Disabled plugins"] = len(s.DisabledPlugins)
	}
	if s.DryRun {
		stats["Dry run"] = true
	}
	return stats
}
