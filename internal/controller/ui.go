// Package controller provides output adapters for displaying rename results.
package controller

import (
	"context"

	m "resuffix.dev/pkg/resuffix/internal/model"
)

// UI defines the interface for presenting run results to the user.
// Implementations can use different output methods (plain text, styled, etc).
type UI interface {
	// DisplaySummary renders the result of a completed run.
	DisplaySummary(ctx context.Context, summary m.RunSummary) error

	// DisplayPreview renders per-directory candidate counts for a dry run.
	DisplayPreview(ctx context.Context, counts map[m.Path]int, total int) error
}
