package model

// OutcomeKind classifies the terminal state of one rename attempt.
type OutcomeKind string

const (
	// Renamed indicates the file now carries the target extension.
	Renamed OutcomeKind = "renamed"
	// SkippedNoMatch indicates the destination equals the source path, so
	// there was nothing to do.
	SkippedNoMatch OutcomeKind = "skipped-no-match"
	// SkippedWouldCollide indicates the destination is occupied by a
	// different file; the source was left untouched.
	SkippedWouldCollide OutcomeKind = "skipped-would-collide"
	// Failed indicates the rename could not be completed.
	Failed OutcomeKind = "failed"
)

// RenameOutcome is the immutable result of a single rename attempt.
type RenameOutcome struct {
	Original Path        `yaml:"original"`
	Target   Path        `yaml:"target,omitempty"`
	Kind     OutcomeKind `yaml:"kind"`
	Reason   string      `yaml:"reason,omitempty"`
}

// RunSummary aggregates the outcomes of one invocation. Successful renames
// are only counted; everything else is retained in full, in order.
type RunSummary struct {
	Root            Path            `yaml:"root"`
	Source          Ext             `yaml:"source"`
	Target          Ext             `yaml:"target"`
	TotalCandidates int             `yaml:"total_candidates"`
	Renamed         int             `yaml:"renamed"`
	Outcomes        []RenameOutcome `yaml:"outcomes,omitempty"`
}

// Record folds the outcome of one candidate into the summary.
func (s *RunSummary) Record(o RenameOutcome) {
	s.TotalCandidates++

	if o.Kind == Renamed {
		s.Renamed++
		return
	}

	s.Outcomes = append(s.Outcomes, o)
}

// RecordTraversalFailure retains a non-fatal traversal failure without
// counting a candidate.
func (s *RunSummary) RecordTraversalFailure(o RenameOutcome) {
	s.Outcomes = append(s.Outcomes, o)
}
