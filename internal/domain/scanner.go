// Package domain implements the traversal and rename logic for resuffix.
package domain

import (
	"context"
	"log/slog"
	"sort"

	"resuffix.dev/pkg/resuffix/internal/adapter"
	m "resuffix.dev/pkg/resuffix/internal/model"
)

// CandidateStreamer streams files matching the source extension. The order is
// bottom-up: every subdirectory of a directory completes before any file
// directly in that directory is yielded, so a rename can never invalidate a
// listing that is still being consumed.
type CandidateStreamer interface {
	// Get performs a fresh traversal under root. The channel closes when the
	// traversal finishes or ctx is cancelled; it is single-pass and not
	// restartable. Unreadable directories surface as Failure discoveries and
	// do not stop the traversal.
	Get(ctx context.Context, root m.Path, src m.Ext) <-chan m.Discovery
}

type candidateStreamer struct {
	adapter.RenameFS
}

// NewCandidateStreamer creates a CandidateStreamer backed by the provided
// filesystem.
func NewCandidateStreamer(fs adapter.RenameFS) CandidateStreamer {
	return &candidateStreamer{RenameFS: fs}
}

const streamBufferSize = 16

// Get streams candidates under root.
func (cs *candidateStreamer) Get(ctx context.Context, root m.Path, src m.Ext) <-chan m.Discovery {
	slog.Debug("starting candidate stream", "root", root, "ext", src)
	ch := make(chan m.Discovery, streamBufferSize)

	go func() {
		defer close(ch)
		cs.walk(ctx, root, src, ch)
	}()

	return ch
}

// walk recurses bottom-up: child subtrees first, then the directory's own
// matching files. Each directory is listed exactly once, immediately before
// its subtree is processed, and the snapshot is never re-read. Returns false
// when the stream was cancelled.
func (cs *candidateStreamer) walk(ctx context.Context, dir m.Path, src m.Ext, ch chan<- m.Discovery) bool {
	entries, err := cs.ReadDir(dir)
	if err != nil {
		slog.Error("cannot list directory", "dir", dir, "error", err)

		return cs.send(ctx, ch, m.Discovery{Failure: &m.RenameOutcome{
			Original: dir,
			Kind:     m.Failed,
			Reason:   err.Error(),
		}})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	// ReadDir does not follow symlinks, so a symlink to a directory reports
	// IsDir() == false and is never recursed into. That keeps cycles out.
	for _, entry := range entries {
		if ctx.Err() != nil {
			slog.Debug("candidate stream cancelled", "dir", dir)
			return false
		}

		if !entry.IsDir() {
			continue
		}

		if !cs.walk(ctx, cs.JoinPath(string(dir), entry.Name()), src, ch) {
			return false
		}
	}

	for _, entry := range entries {
		if entry.IsDir() || !src.Matches(entry.Name()) {
			continue
		}

		candidate := m.CandidateFile{
			FullPath: cs.JoinPath(string(dir), entry.Name()),
			Dir:      dir,
			Stem:     src.Strip(entry.Name()),
		}

		if !cs.send(ctx, ch, m.Discovery{Candidate: candidate}) {
			return false
		}
	}

	return true
}

func (cs *candidateStreamer) send(ctx context.Context, ch chan<- m.Discovery, d m.Discovery) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- d:
		return true
	}
}
