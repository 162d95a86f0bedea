package model

// CandidateFile is a file whose extension matched the source extension.
type CandidateFile struct {
	FullPath Path   // path of the file as discovered
	Dir      Path   // parent directory
	Stem     string // base name with the matched extension removed
}

// Discovery is one element of the traversal stream: either a candidate or a
// non-fatal traversal failure (unreadable directory, vanished entry).
type Discovery struct {
	Candidate CandidateFile
	Failure   *RenameOutcome
}
