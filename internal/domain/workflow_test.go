package domain_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resuffix.dev/pkg/resuffix/internal/adapter"
	"resuffix.dev/pkg/resuffix/internal/domain"
	m "resuffix.dev/pkg/resuffix/internal/model"
)

// recordingUI captures what the workflow hands to the display layer.
type recordingUI struct {
	summaries []m.RunSummary
	previews  []map[m.Path]int
	totals    []int
}

func (r *recordingUI) DisplaySummary(_ context.Context, summary m.RunSummary) error {
	r.summaries = append(r.summaries, summary)
	return nil
}

func (r *recordingUI) DisplayPreview(_ context.Context, counts map[m.Path]int, total int) error {
	r.previews = append(r.previews, counts)
	r.totals = append(r.totals, total)

	return nil
}

func newTestWorkflow(ui *recordingUI) domain.Workflow {
	fs := adapter.NewLocalRenameFS()

	return domain.NewWorkflow(
		fs,
		adapter.NewReportStore(),
		ui,
		domain.NewCandidateStreamer(fs),
		domain.NewRenamer(fs),
	)
}

func TestWorkflow_RunScenario(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.TXT"), "alpha")
	writeFile(t, filepath.Join(root, "b.txt"), "bravo")
	mustMkdirAll(t, filepath.Join(root, "sub"))
	writeFile(t, filepath.Join(root, "sub", "c.txt"), "charlie")

	ui := &recordingUI{}
	summary, err := runWorkflow(t, newTestWorkflow(ui), root, "txt", "md")
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalCandidates)
	assert.Equal(t, 3, summary.Renamed)
	assert.Empty(t, summary.Outcomes)

	assertContent(t, filepath.Join(root, "a.md"), "alpha")
	assertContent(t, filepath.Join(root, "b.md"), "bravo")
	assertContent(t, filepath.Join(root, "sub", "c.md"), "charlie")

	require.Len(t, ui.summaries, 1)
	assert.Equal(t, summary, ui.summaries[0])
}

func TestWorkflow_RunIsIdempotent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.TXT"), "alpha")
	writeFile(t, filepath.Join(root, "b.txt"), "bravo")

	ui := &recordingUI{}
	workflow := newTestWorkflow(ui)

	_, err := runWorkflow(t, workflow, root, "txt", "md")
	require.NoError(t, err)

	// Second pass with source == target must be a pure no-op.
	summary, err := runWorkflow(t, workflow, root, "md", "md")
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalCandidates)
	assert.Equal(t, 0, summary.Renamed)
	require.Len(t, summary.Outcomes, 2)
	for _, outcome := range summary.Outcomes {
		assert.Equal(t, m.SkippedNoMatch, outcome.Kind)
	}
}

func TestWorkflow_RunReportsCollision(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "text payload")
	writeFile(t, filepath.Join(root, "a.pdf"), "pdf payload")

	ui := &recordingUI{}
	summary, err := runWorkflow(t, newTestWorkflow(ui), root, "txt", "pdf")
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TotalCandidates)
	assert.Equal(t, 0, summary.Renamed)
	require.Len(t, summary.Outcomes, 1)
	assert.Equal(t, m.SkippedWouldCollide, summary.Outcomes[0].Kind)

	assertContent(t, filepath.Join(root, "a.txt"), "text payload")
	assertContent(t, filepath.Join(root, "a.pdf"), "pdf payload")
}

func TestWorkflow_RunRejectsMissingRoot(t *testing.T) {
	ui := &recordingUI{}
	_, err := runWorkflow(t, newTestWorkflow(ui), filepath.Join(t.TempDir(), "missing"), "txt", "md")

	require.Error(t, err)
	assert.Empty(t, ui.summaries, "no display for an aborted run")
}

func TestWorkflow_RunRejectsFileRoot(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "file.txt")
	writeFile(t, path, "x")

	ui := &recordingUI{}
	_, err := runWorkflow(t, newTestWorkflow(ui), path, "txt", "md")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestWorkflow_RunSavesReport(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "alpha")
	reportsDir := filepath.Join(t.TempDir(), "reports")

	src, err := m.NormalizeExt("txt")
	require.NoError(t, err)
	dst, err := m.NormalizeExt("md")
	require.NoError(t, err)

	ui := &recordingUI{}
	summary, err := newTestWorkflow(ui).Run(context.Background(), domain.RunArgs{
		Root:       m.Path(root),
		Source:     src,
		Target:     dst,
		Reports:    m.Path(reportsDir),
		SaveReport: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Renamed)

	entries, err := os.ReadDir(reportsDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	store := adapter.NewReportStore()
	loaded, err := store.LoadSummary(m.Path(filepath.Join(reportsDir, entries[0].Name())))
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Renamed)
	assert.Equal(t, m.Ext(".md"), loaded.Target)
}

func TestWorkflow_Preview(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a")
	mustMkdirAll(t, filepath.Join(root, "sub"))
	writeFile(t, filepath.Join(root, "sub", "b.txt"), "b")
	writeFile(t, filepath.Join(root, "sub", "c.TXT"), "c")

	src, err := m.NormalizeExt("txt")
	require.NoError(t, err)

	ui := &recordingUI{}
	err = newTestWorkflow(ui).Preview(context.Background(), domain.PreviewArgs{
		Root:   m.Path(root),
		Source: src,
	})
	require.NoError(t, err)

	require.Len(t, ui.previews, 1)
	assert.Equal(t, 3, ui.totals[0])
	assert.Equal(t, 2, ui.previews[0][m.Path(filepath.Join(root, "sub"))])
	assert.Equal(t, 1, ui.previews[0][m.Path(root)])

	// Preview never renames.
	assertContent(t, filepath.Join(root, "a.txt"), "a")
}

func runWorkflow(t *testing.T, workflow domain.Workflow, root, srcExt, dstExt string) (m.RunSummary, error) {
	t.Helper()

	src, err := m.NormalizeExt(srcExt)
	require.NoError(t, err)

	dst, err := m.NormalizeExt(dstExt)
	require.NoError(t, err)

	return workflow.Run(context.Background(), domain.RunArgs{
		Root:   m.Path(root),
		Source: src,
		Target: dst,
	})
}
