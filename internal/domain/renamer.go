package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"resuffix.dev/pkg/resuffix/internal/adapter"
	m "resuffix.dev/pkg/resuffix/internal/model"
)

// Renamer applies the target extension to one candidate. It never overwrites
// a distinct existing file, even when the filesystem folds case, and makes at
// most one rename pair per invocation. An invocation always runs to a
// terminal outcome; cancellation between candidates is the caller's job.
type Renamer interface {
	Rename(candidate m.CandidateFile, target m.Ext) m.RenameOutcome
}

type renamer struct {
	adapter.RenameFS
}

// NewRenamer creates a Renamer backed by the provided filesystem.
func NewRenamer(fs adapter.RenameFS) Renamer {
	return &renamer{RenameFS: fs}
}

// tempAttempts bounds temp-name generation before the rename is reported
// failed.
const tempAttempts = 5

func (r *renamer) Rename(candidate m.CandidateFile, target m.Ext) m.RenameOutcome {
	targetPath := r.JoinPath(string(candidate.Dir), candidate.Stem+string(target))

	if targetPath == candidate.FullPath {
		return m.RenameOutcome{
			Original: candidate.FullPath,
			Target:   targetPath,
			Kind:     m.SkippedNoMatch,
		}
	}

	srcInfo, err := r.Lstat(candidate.FullPath)
	if err != nil {
		return failedOutcome(candidate.FullPath, targetPath, fmt.Sprintf("source vanished: %v", err))
	}

	dstInfo, err := r.Lstat(targetPath)
	dstExists := err == nil

	if dstExists && !r.SameEntry(srcInfo, dstInfo) {
		slog.Debug("destination occupied", "source", candidate.FullPath, "target", targetPath)

		return m.RenameOutcome{
			Original: candidate.FullPath,
			Target:   targetPath,
			Kind:     m.SkippedWouldCollide,
			Reason:   "destination exists and is a different file",
		}
	}

	// Either the destination resolves to the source itself (the filesystem
	// folds case) or the paths differ only by case. A direct rename is
	// ambiguous there: some platforms report a self-collision, others a false
	// success. Stage through a unique temp name instead.
	if dstExists || strings.EqualFold(string(candidate.FullPath), string(targetPath)) {
		return r.renameViaTemp(candidate, targetPath)
	}

	if err := r.RenameFS.Rename(candidate.FullPath, targetPath); err != nil {
		return failedOutcome(candidate.FullPath, targetPath, err.Error())
	}

	slog.Debug("renamed", "from", candidate.FullPath, "to", targetPath)

	return m.RenameOutcome{Original: candidate.FullPath, Target: targetPath, Kind: m.Renamed}
}

// renameViaTemp performs the two-phase rename: source to a unique sibling
// temp name, then temp to the destination. The filesystem never sees a
// same-name-different-case rename in a single operation.
func (r *renamer) renameViaTemp(candidate m.CandidateFile, targetPath m.Path) m.RenameOutcome {
	tmpPath, outcome := r.stageTemp(candidate, targetPath)
	if outcome != nil {
		return *outcome
	}

	if err := r.RenameFS.Rename(tmpPath, targetPath); err != nil {
		slog.Error("second rename phase failed, file left at temp name",
			"temp", tmpPath, "target", targetPath, "error", err)

		return failedOutcome(candidate.FullPath, targetPath,
			fmt.Sprintf("rename from temp %s: %v", tmpPath, err))
	}

	slog.Debug("renamed via temp", "from", candidate.FullPath, "to", targetPath, "temp", tmpPath)

	return m.RenameOutcome{Original: candidate.FullPath, Target: targetPath, Kind: m.Renamed}
}

// stageTemp moves the source to a fresh random sibling name. It retries name
// generation a bounded number of times if a generated name is already taken.
func (r *renamer) stageTemp(candidate m.CandidateFile, targetPath m.Path) (m.Path, *m.RenameOutcome) {
	for attempt := 0; attempt < tempAttempts; attempt++ {
		tmpPath := r.JoinPath(string(candidate.Dir), tempName())
		if _, err := r.Lstat(tmpPath); err == nil {
			continue
		}

		if err := r.RenameFS.Rename(candidate.FullPath, tmpPath); err != nil {
			outcome := failedOutcome(candidate.FullPath, targetPath, err.Error())
			return "", &outcome
		}

		return tmpPath, nil
	}

	outcome := failedOutcome(candidate.FullPath, targetPath, "could not find a free temporary name")

	return "", &outcome
}

func tempName() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)

	return ".resuffix-tmp-" + hex.EncodeToString(buf)
}

func failedOutcome(original, target m.Path, reason string) m.RenameOutcome {
	return m.RenameOutcome{Original: original, Target: target, Kind: m.Failed, Reason: reason}
}
