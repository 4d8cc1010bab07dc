package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spboyer/scorecard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_PipedOutputDefaultsToJSON(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	snap := writeFile(t, dir, "blue.yaml", blueSnapshot)

	out, err := runCLI(t, "compute", snap)
	require.NoError(t, err)

	var rep models.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "JHS 1 Blue", rep.Cohort)
	require.Len(t, rep.Students, 3)
	assert.Equal(t, "Kofi", rep.Students[0].Name)
	assert.Equal(t, 1, rep.Students[0].Rank)
	assert.Equal(t, 4, rep.Students[0].BestSixAggregate)
	assert.Equal(t, 100, rep.Settings.ScienceBaseScore, "science base comes from project defaults")
	assert.NotEmpty(t, rep.ID)
}

func TestCompute_Formats(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	snap := writeFile(t, dir, "blue.yaml", blueSnapshot)

	tests := []struct {
		format string
		want   string
	}{
		{"table", "MASTER SHEET: JHS 1 Blue"},
		{"markdown", "| 1 | Kofi | 90 (B2) | 80 (B2) | 170 | 4 | Distinction |"},
		{"html", "<td>Kofi</td>"},
		{"csv", "1,1,Kofi,90,B2,80,B2,170,4,Distinction"},
		{"yaml", "cohort: JHS 1 Blue"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, err := runCLI(t, "compute", snap, "--format", tt.format)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestCompute_Interpret(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	snap := writeFile(t, dir, "blue.yaml", blueSnapshot)

	out, err := runCLI(t, "compute", snap, "--format", "table", "--interpret")
	require.NoError(t, err)
	assert.Contains(t, out, "=== Interpretation ===")
	assert.Contains(t, out, "Top Student:    Kofi")
}

func TestCompute_StudentsCSV(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	csvPath := writeFile(t, dir, "term1.csv",
		"id,name,Mathematics,Science.sectionA,Science.sectionB\n1,Kofi,90,50,62\n2,Ama,60,30,40\n")

	out, err := runCLI(t, "compute", "--students-csv", csvPath, "--science-base", "140", "--format", "json")
	require.NoError(t, err)

	var rep models.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "term1", rep.Cohort)
	assert.Equal(t, []string{"Mathematics", "Science"}, rep.Subjects)
	assert.Equal(t, 140, rep.Settings.ScienceBaseScore)

	kofi, ok := rep.Student(1)
	require.True(t, ok)
	sci, ok := kofi.Subject("Science")
	require.True(t, ok)
	// (50 + 62) / 140 * 100 = 80
	assert.Equal(t, 80, sci.Score)
}

func TestCompute_MultipleSnapshotsToDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	blue := writeFile(t, dir, "blue.yaml", blueSnapshot)
	gold := writeFile(t, dir, "gold.json", `{"name": "JHS 1 Gold", "subjects": ["Mathematics"],
  "students": [{"id": 1, "name": "Yaw", "scores": {"Mathematics": 75}}]}`)
	outDir := filepath.Join(dir, "reports")

	_, err := runCLI(t, "compute", blue, gold, "--format", "markdown", "--output", outDir, "--workers", "2")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "jhs-1-blue.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Class Report: JHS 1 Blue")

	data, err = os.ReadFile(filepath.Join(outDir, "jhs-1-gold.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Yaw")
}

func TestCompute_MultipleSnapshotsJSONArray(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	blue := writeFile(t, dir, "blue.yaml", blueSnapshot)
	gold := writeFile(t, dir, "gold.yaml", "subjects: [Mathematics]\nstudents: [{id: 1, name: Yaw, scores: {Mathematics: 75}}]\n")

	out, err := runCLI(t, "compute", blue, gold, "--format", "json")
	require.NoError(t, err)

	var reps []models.Report
	require.NoError(t, json.Unmarshal([]byte(out), &reps))
	require.Len(t, reps, 2)
	assert.Equal(t, "JHS 1 Blue", reps[0].Cohort)
	assert.Equal(t, "gold", reps[1].Cohort)
}

func TestCompute_SingleOutputFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	snap := writeFile(t, dir, "blue.yaml", blueSnapshot)
	outPath := filepath.Join(dir, "out", "blue.csv")

	_, err := runCLI(t, "compute", snap, "--format", "csv", "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "rank,id,name")
}

func TestCompute_ProjectConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, ".scorecard.yaml", `
grading:
  science_base_score: 140
output:
  format: markdown
`)
	snap := writeFile(t, dir, "blue.yaml", blueSnapshot)

	out, err := runCLI(t, "compute", snap)
	require.NoError(t, err)
	assert.Contains(t, out, "# Class Report: JHS 1 Blue")
}

func TestCompute_Cache(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	snap := writeFile(t, dir, "blue.yaml", blueSnapshot)
	cacheDir := filepath.Join(dir, "cache")

	run := func() models.Report {
		out, err := runCLI(t, "compute", snap, "--format", "json", "--cache", "--cache-dir", cacheDir)
		require.NoError(t, err)
		var rep models.Report
		require.NoError(t, json.Unmarshal([]byte(out), &rep))
		return rep
	}

	first := run()
	second := run()
	assert.Equal(t, first.Students, second.Students, "second run should be served from cache")
	assert.NotEqual(t, first.ID, second.ID, "each run gets its own report id")

	entries, err := os.ReadDir(cacheDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCompute_Errors(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	snap := writeFile(t, dir, "blue.yaml", blueSnapshot)
	csvPath := writeFile(t, dir, "s.csv", "id,name\n1,Kofi\n")

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"nothing to grade", []string{"compute"}, "nothing to grade"},
		{"bad format", []string{"compute", snap, "--format", "pdf"}, `unsupported format "pdf"`},
		{"bad science base", []string{"compute", snap, "--science-base", "120"}, "--science-base must be 100 or 140"},
		{"csv with many snapshots", []string{"compute", snap, snap, "--students-csv", csvPath}, "single snapshot"},
		{"missing snapshot", []string{"compute", filepath.Join(dir, "nope.yaml")}, "nope.yaml"},
		{"unsupported snapshot", []string{"compute", writeFile(t, dir, "x.txt", "hi")}, "unsupported snapshot format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, ExitError, exitCode(err))
		})
	}
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "jhs-1-blue", slug("JHS 1 Blue"))
	assert.Equal(t, "basic-6-a", slug("  Basic 6 (A) "))
	assert.Equal(t, "report", slug("***"))
}
