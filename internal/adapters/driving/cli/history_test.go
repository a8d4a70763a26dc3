package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
)

func TestHistoryCmd_Empty(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, nil, "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No optimized resumes yet")

	out, err = executeCommand(t, nil, "jobs", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No job descriptions saved.")

	out, err = executeCommand(t, nil, "letters", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No cover letters yet")
}

func TestHistoryCmd_ShowAndDelete(t *testing.T) {
	env := setupTestServices(t)
	env.ready(t)

	_, err := executeCommand(t, nil, "optimize", "--jd-text", testJobText, "--title", "SWE", "--company", "Globex")
	require.NoError(t, err)

	out, err := executeCommand(t, nil, "history", "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Resume #1: SWE @ Globex")
	assert.Contains(t, out, "Backend engineer shipping Go services.")

	out, err = executeCommand(t, nil, "jobs", "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, testJobText)

	out, err = executeCommand(t, nil, "history", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted resume 1")

	_, err = executeCommand(t, nil, "history", "show", "1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// The job description outlives the resume.
	out, err = executeCommand(t, nil, "jobs", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "SWE @ Globex")
}

func TestHistoryCmd_InvalidID(t *testing.T) {
	setupTestServices(t)

	for _, args := range [][]string{
		{"history", "show", "abc"},
		{"history", "delete", "0"},
		{"jobs", "show", "-1"},
		{"letters", "show", "x"},
	} {
		_, err := executeCommand(t, nil, args...)
		require.Error(t, err, args)
		assert.Contains(t, err.Error(), "invalid id")
	}
}

func TestParseID(t *testing.T) {
	id, err := parseID("17")
	require.NoError(t, err)
	assert.Equal(t, int64(17), id)

	_, err = parseID("1.5")
	assert.Error(t, err)
}

func TestJobLabel(t *testing.T) {
	tests := []struct {
		title, company, want string
	}{
		{"SWE", "Acme", "SWE @ Acme"},
		{"Cover Letter JD", "", "Cover Letter JD"},
		{"", "", "(deleted job description)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, jobLabel(tt.title, tt.company))
	}
}
