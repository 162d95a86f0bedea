package domain

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"resuffix.dev/pkg/resuffix/internal/adapter"
	"resuffix.dev/pkg/resuffix/internal/controller"
	m "resuffix.dev/pkg/resuffix/internal/model"
)

// RunArgs carries the parameters for a full rename run.
type RunArgs struct {
	Root       m.Path
	Source     m.Ext
	Target     m.Ext
	Reports    m.Path
	SaveReport bool
}

// PreviewArgs carries the parameters for a dry-run listing.
type PreviewArgs struct {
	Root   m.Path
	Source m.Ext
}

// Workflow wires traversal, renaming, reporting and display together.
type Workflow interface {
	// Run renames every matching file under the root and returns the
	// summary. Only root misconfiguration is an error; per-file problems are
	// recorded in the summary and the run completes.
	Run(ctx context.Context, args RunArgs) (m.RunSummary, error)

	// Preview enumerates candidates without renaming anything and displays
	// per-directory counts.
	Preview(ctx context.Context, args PreviewArgs) error
}

type workflow struct {
	fs       adapter.RenameFS
	reports  adapter.ReportStore
	ui       controller.UI
	streamer CandidateStreamer
	renamer  Renamer
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(
	fs adapter.RenameFS,
	reportStore adapter.ReportStore,
	ui controller.UI,
	streamer CandidateStreamer,
	renamer Renamer,
) Workflow {
	return &workflow{
		fs:       fs,
		reports:  reportStore,
		ui:       ui,
		streamer: streamer,
		renamer:  renamer,
	}
}

func (w *workflow) Run(ctx context.Context, args RunArgs) (m.RunSummary, error) {
	root, err := w.validateRoot(args.Root)
	if err != nil {
		return m.RunSummary{}, err
	}

	summary := m.RunSummary{Root: root, Source: args.Source, Target: args.Target}

	group, groupCtx := errgroup.WithContext(ctx)
	discoveries := w.streamer.Get(groupCtx, root, args.Source)

	// Renaming is strictly sequential: each rename can affect listings the
	// traversal has not snapshotted yet, and bottom-up ordering only holds
	// when the consumer keeps pace file by file.
	group.Go(func() error {
		for {
			select {
			case <-groupCtx.Done():
				return groupCtx.Err()
			case d, ok := <-discoveries:
				if !ok {
					return nil
				}

				w.consume(&summary, d, args.Target)
			}
		}
	})

	if err := group.Wait(); err != nil {
		return summary, fmt.Errorf("collect candidates: %w", err)
	}

	slog.Info("run finished",
		"root", root, "candidates", summary.TotalCandidates, "renamed", summary.Renamed)

	if err := w.ui.DisplaySummary(ctx, summary); err != nil {
		return summary, err
	}

	if args.SaveReport {
		path, err := w.reports.SaveSummary(args.Reports, summary)
		if err != nil {
			slog.Error("failed to save report", "dir", args.Reports, "error", err)
			return summary, fmt.Errorf("save report: %w", err)
		}

		slog.Debug("report saved", "path", path)
	}

	return summary, nil
}

func (w *workflow) consume(summary *m.RunSummary, d m.Discovery, target m.Ext) {
	if d.Failure != nil {
		summary.RecordTraversalFailure(*d.Failure)
		return
	}

	summary.Record(w.renamer.Rename(d.Candidate, target))
}

func (w *workflow) Preview(ctx context.Context, args PreviewArgs) error {
	root, err := w.validateRoot(args.Root)
	if err != nil {
		return err
	}

	counts := make(map[m.Path]int)
	total := 0

	group, groupCtx := errgroup.WithContext(ctx)
	discoveries := w.streamer.Get(groupCtx, root, args.Source)

	group.Go(func() error {
		for {
			select {
			case <-groupCtx.Done():
				return groupCtx.Err()
			case d, ok := <-discoveries:
				if !ok {
					return nil
				}

				if d.Failure != nil {
					slog.Warn("skipping unreadable entry", "path", d.Failure.Original, "reason", d.Failure.Reason)
					continue
				}

				counts[d.Candidate.Dir]++
				total++
			}
		}
	})

	if err := group.Wait(); err != nil {
		return fmt.Errorf("collect candidates: %w", err)
	}

	return w.ui.DisplayPreview(ctx, counts, total)
}

// validateRoot resolves the root and rejects anything that is not an existing
// directory. This is the only fatal misconfiguration in a run.
func (w *workflow) validateRoot(root m.Path) (m.Path, error) {
	abs, err := w.fs.AbsPath(root)
	if err != nil {
		return "", fmt.Errorf("resolve root %s: %w", root, err)
	}

	info, err := w.fs.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("root %s: %w", root, err)
	}

	if !info.IsDir() {
		return "", fmt.Errorf("root %s is not a directory", root)
	}

	return abs, nil
}
