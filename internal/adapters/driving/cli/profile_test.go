package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const profileTOML = `summary = "Backend engineer"
skills = ["Go", "SQL"]

[personal_info]
name = "Ada Lovelace"
email = "ada@example.com"

[[experience]]
company = "Analytical Engines"
role = "Engineer"
start_date = "1843"
end_date = "Present"
bullets = ["Wrote the first program"]
`

func TestProfileCmd_ShowEmpty(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, nil, "profile", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "(no name)")
	assert.Contains(t, out, "Experience (0)")
	assert.Contains(t, out, "No experience yet")
}

func TestProfileCmd_ImportShowExport(t *testing.T) {
	setupTestServices(t)
	in := writeTempFile(t, "profile.toml", profileTOML)

	out, err := executeCommand(t, nil, "profile", "import", in)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported profile: 1 roles, 0 projects, 2 skills")

	out, err = executeCommand(t, nil, "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "ada@example.com")
	assert.Contains(t, out, "Wrote the first program")
	assert.Contains(t, out, "Go, SQL")

	exported := filepath.Join(t.TempDir(), "out", "profile.toml")
	out, err = executeCommand(t, nil, "profile", "export", exported)
	require.NoError(t, err)
	assert.Contains(t, out, "Profile written to")

	data, err := os.ReadFile(exported)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Ada Lovelace")
}

func TestProfileCmd_JSON(t *testing.T) {
	env := setupTestServices(t)
	env.ready(t)

	out, err := executeCommand(t, nil, "profile", "show", "--json")
	require.NoError(t, err)

	var profile domain.Profile
	require.NoError(t, json.Unmarshal([]byte(out), &profile))
	require.Len(t, profile.Experience, 1)
	assert.Equal(t, "Acme", profile.Experience[0].Company)
}

func TestProfileCmd_Skills(t *testing.T) {
	env := setupTestServices(t)

	out, err := executeCommand(t, nil, "profile", "skill", "add", "  Kubernetes ")
	require.NoError(t, err)
	assert.Contains(t, out, "Added skill: Kubernetes")

	_, err = executeCommand(t, nil, "profile", "skill", "add", "kubernetes")
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	_, err = executeCommand(t, nil, "profile", "skill", "remove", "Kubernetes")
	require.NoError(t, err)

	profile, err := env.profile.Get(t.Context())
	require.NoError(t, err)
	assert.Empty(t, profile.Skills)
}

func TestProfileCmd_Experience(t *testing.T) {
	env := setupTestServices(t)

	out, err := executeCommand(t, nil, "profile", "experience", "add",
		"--company", "Globex", "--role", "SRE", "--start", "2021",
		"--bullet", "Cut paging by half", "--bullet", "Ran on-call")
	require.NoError(t, err)
	assert.Contains(t, out, "Added SRE at Globex")

	profile, err := env.profile.Get(t.Context())
	require.NoError(t, err)
	require.Len(t, profile.Experience, 1)
	exp := profile.Experience[0]
	assert.Equal(t, []string{"Cut paging by half", "Ran on-call"}, exp.Bullets)

	_, err = executeCommand(t, nil, "profile", "experience", "remove", exp.ID)
	require.NoError(t, err)

	_, err = executeCommand(t, nil, "profile", "experience", "remove", exp.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProfileCmd_ExperienceRequiresFlags(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, nil, "profile", "experience", "add", "--company", "Globex")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "role")
}

func TestProfileCmd_ProjectAndEducation(t *testing.T) {
	env := setupTestServices(t)

	_, err := executeCommand(t, nil, "profile", "project", "add",
		"--name", "resumebuddy", "--tech", "Go", "--tech", "SQLite")
	require.NoError(t, err)

	_, err = executeCommand(t, nil, "profile", "education", "add",
		"--school", "MIT", "--degree", "BSc", "--year", "2015")
	require.NoError(t, err)

	profile, err := env.profile.Get(t.Context())
	require.NoError(t, err)
	require.Len(t, profile.Projects, 1)
	require.Len(t, profile.Education, 1)
	assert.Equal(t, []string{"Go", "SQLite"}, profile.Projects[0].Technologies)

	out, err := executeCommand(t, nil, "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Tech: Go, SQLite")
	assert.Contains(t, out, "BSc, MIT")

	_, err = executeCommand(t, nil, "profile", "project", "remove", profile.Projects[0].ID)
	require.NoError(t, err)
	_, err = executeCommand(t, nil, "profile", "education", "remove", profile.Education[0].ID)
	require.NoError(t, err)
}
