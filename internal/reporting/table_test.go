package reporting

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/spboyer/scorecard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, sampleReport(t)))
	out := buf.String()

	assert.Contains(t, out, "MASTER SHEET: JHS 1 Blue")
	assert.Contains(t, out, "90 B2")
	assert.Contains(t, out, "40 D7")
	assert.Contains(t, out, "FACILITATORS")
	assert.Contains(t, out, "Mrs. Owusu")
	assert.Contains(t, out, "51.85")
	assert.Contains(t, out, "Distinction 2, Merit 1, Pass 0, Fail 0")
	assert.Contains(t, out, "Top student:     Kofi")

	// Rank order
	assert.Less(t, strings.Index(out, "Kofi"), strings.Index(out, "Ama"))
	assert.Less(t, strings.Index(out, "Ama"), strings.Index(out, "Esi"))
}

func TestWriteTable_WideNamesStayAligned(t *testing.T) {
	rep := sampleReport(t)
	rep.Students[0].Name = "Kwame 日本"

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, rep))

	var header, row string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, "Rank") {
			header = line
		}
		if strings.Contains(line, "Kwame") {
			row = line
		}
	}
	require.NotEmpty(t, header)
	require.NotEmpty(t, row)

	// Category column starts at the same display column in both lines.
	cut := func(s, marker string) int { return runewidth.StringWidth(s[:strings.Index(s, marker)]) }
	assert.Equal(t, cut(header, "Category"), cut(row, "Distinction"))
}

func TestWriteTable_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	rep := &models.Report{Digest: models.Digest{CategoryCounts: map[models.Category]int{}}}
	require.NoError(t, WriteTable(&buf, rep))

	assert.Contains(t, buf.String(), "Students:        0")
	assert.NotContains(t, buf.String(), "Top student")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteTable_WriteError(t *testing.T) {
	err := WriteTable(failingWriter{}, sampleReport(t))
	assert.EqualError(t, err, "disk full")
}

func TestPadding(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "   ab", padLeft("ab", 5))
	assert.Equal(t, "abcdef", padRight("abcdef", 3))
	assert.Equal(t, "日本 ", padRight("日本", 5))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.Equal(t, "abc", truncate("abc", 5))
}
