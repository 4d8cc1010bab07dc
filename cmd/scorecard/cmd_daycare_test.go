package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaycareCommand_Table(t *testing.T) {
	out, err := runCLI(t, "daycare", "85", "70", "69", "40", "12")
	require.NoError(t, err)

	assert.Equal(t,
		"   85  G  High Proficiency\n"+
			"   70  G  High Proficiency\n"+
			"   69  S  Sufficient\n"+
			"   40  S  Sufficient\n"+
			"   12  B  Approaching\n",
		out)
}

func TestDaycareCommand_JSON(t *testing.T) {
	out, err := runCLI(t, "daycare", "39", "--format", "json")
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, float64(39), got[0]["score"])
	assert.Equal(t, "B", got[0]["grade"])
	assert.Equal(t, "Approaching", got[0]["remark"])
}

func TestDaycareCommand_Errors(t *testing.T) {
	_, err := runCLI(t, "daycare")
	require.Error(t, err)

	_, err = runCLI(t, "daycare", "seventy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid score "seventy"`)

	_, err = runCLI(t, "daycare", "50", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
