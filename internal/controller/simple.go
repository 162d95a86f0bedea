package controller

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "resuffix.dev/pkg/resuffix/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd   *cobra.Command
	color bool
}

// NewSimpleUI creates a new SimpleUI. Styles are applied only when color is
// true; pass IsTTY(os.Stdout) for the usual behavior.
func NewSimpleUI(cmd *cobra.Command, color bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, color: color}
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	info, err := f.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}

var (
	renamedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// DisplaySummary prints the renamed count and a table of every non-renamed
// outcome, in the order they occurred.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.RunSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s: %s -> %s\n", summary.Root, summary.Source, summary.Target)
	s.printf("%s %d of %d candidates\n",
		s.style(renamedStyle, "renamed"), summary.Renamed, summary.TotalCandidates)

	if len(summary.Outcomes) == 0 {
		return nil
	}

	s.printf("\n%s", renderOutcomeTable(summary.Outcomes, s.styleKind))

	return nil
}

// DisplayPreview prints per-directory candidate counts with a total footer.
func (s *SimpleUI) DisplayPreview(ctx context.Context, counts map[m.Path]int, total int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dirs := make([]m.Path, 0, len(counts))
	for dir := range counts {
		dirs = append(dirs, dir)
	}

	sort.Slice(dirs, func(i, j int) bool {
		return dirs[i] < dirs[j]
	})

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Directory", "Candidates"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, dir := range dirs {
		table.Append([]string{string(dir), fmt.Sprintf("%d", counts[dir])})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Directories %d", len(dirs)),
		fmt.Sprintf("%d", total),
	})

	table.Render()

	s.printf("\n%s", tableBuffer.String())

	return nil
}

func renderOutcomeTable(outcomes []m.RenameOutcome, styleKind func(m.OutcomeKind) string) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Outcome", "Reason"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT,
	})

	for _, outcome := range outcomes {
		table.Append([]string{string(outcome.Original), styleKind(outcome.Kind), outcome.Reason})
	}

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) styleKind(kind m.OutcomeKind) string {
	switch kind {
	case m.Renamed:
		return s.style(renamedStyle, string(kind))
	case m.Failed:
		return s.style(failedStyle, string(kind))
	default:
		return s.style(skippedStyle, string(kind))
	}
}

func (s *SimpleUI) style(style lipgloss.Style, text string) string {
	if !s.color {
		return text
	}

	return style.Render(text)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
