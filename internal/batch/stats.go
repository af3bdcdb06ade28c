package batch

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	RunID   string // Tags this run's lines in an append-only log file.
	Total   int
	Current int
	Renamed int // Files actually renamed (--apply).
	Planned int // Dry-run renames and name-only entries.
	Skipped int
	Failed  int
}

// OK reports whether no entry failed.
func (s *RunStats) OK() bool {
	return s.Failed == 0
}
