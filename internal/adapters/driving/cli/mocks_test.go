package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/resumebuddy/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/resumebuddy/internal/core/domain"
	"github.com/custodia-labs/resumebuddy/internal/core/ports/driven"
	"github.com/custodia-labs/resumebuddy/internal/core/services"
	"github.com/custodia-labs/resumebuddy/internal/extractors"
)

// fakeGateway implements driven.ModelGateway with canned JSON replies.
type fakeGateway struct {
	mu       sync.Mutex
	payload  string
	err      error
	requests []domain.GenerateRequest
}

func (g *fakeGateway) Generate(_ context.Context, req domain.GenerateRequest, out any) error {
	g.mu.Lock()
	g.requests = append(g.requests, req)
	g.mu.Unlock()
	if g.err != nil {
		return g.err
	}
	return json.Unmarshal([]byte(g.payload), out)
}

var _ driven.ModelGateway = (*fakeGateway)(nil)

const optimizeReply = `{
  "optimized_summary": "Backend engineer shipping Go services.",
  "optimized_experience": [
    {"company": "Acme", "role": "Engineer", "startDate": "2020", "endDate": "Present",
     "bullets": ["Built ingestion pipeline handling 2M events/day"]}
  ],
  "optimized_skills": ["Go", "PostgreSQL"],
  "score": {
    "total": 85,
    "breakdown": {
      "keyword_match": {"score": 34, "findings": ["Go present"]},
      "formatting": {"score": 18, "findings": []},
      "job_alignment": {"score": 33, "findings": ["Strong backend fit"]}
    }
  },
  "suggestions": ["Mention Kubernetes"]
}`

const coverLetterReply = `{
  "cover_letter": "Dear Hiring Manager,\n\nI build Go services.",
  "key_matches": ["Go", "distributed systems"]
}`

const testJobText = "We are hiring a senior Go engineer to build distributed ingestion services on Kubernetes."

// testEnv holds the real services wired over memory stores.
type testEnv struct {
	gateway  *fakeGateway
	settings *services.SettingsService
	profile  *services.ProfileService
	history  *services.HistoryService
	pipeline *services.Pipeline
}

// setupTestServices wires services over memory stores and restores the
// package state when the test ends.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv(services.APIKeyEnv, "")

	jobs := memory.NewJobDescriptionStore()
	resumes := memory.NewResumeStore()
	letters := memory.NewCoverLetterStore()
	profiles := memory.NewProfileStore()

	env := &testEnv{
		gateway:  &fakeGateway{payload: optimizeReply},
		settings: services.NewSettingsService(memory.NewConfigStore()),
		profile:  services.NewProfileService(profiles),
		history:  services.NewHistoryService(jobs, resumes, letters),
	}
	env.pipeline = services.NewPipeline(profiles, jobs, resumes, letters, env.gateway)

	SetServices(&Services{
		Pipeline: env.pipeline,
		Profile:  env.profile,
		History:  env.history,
		Settings: env.settings,
		JobText:  services.NewJobTextLoader(extractors.DefaultRegistry()),
	})
	t.Cleanup(func() { SetServices(nil) })
	return env
}

// ready stores an API key and a profile with one role.
func (e *testEnv) ready(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, e.settings.SetAPIKey("test-key"))
	_, err := e.profile.AddExperience(ctx, domain.Experience{
		Company: "Acme",
		Role:    "Engineer",
		Bullets: []string{"Built ingestion pipeline"},
	})
	require.NoError(t, err)
}

// executeCommand runs rootCmd with args and returns stdout.
func executeCommand(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag to its default so runs do not leak state.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
