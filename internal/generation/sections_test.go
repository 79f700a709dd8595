package generation

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/types"
)

// recordingClient captures the prompts of each call and returns a fixed reply.
type recordingClient struct {
	systemPrompts []string
	userPrompts   []string
	response      string
}

func (r *recordingClient) GenerateContent(_ context.Context, system, user string) (string, error) {
	r.systemPrompts = append(r.systemPrompts, system)
	r.userPrompts = append(r.userPrompts, user)
	return r.response, nil
}

func (r *recordingClient) GenerateJSON(ctx context.Context, system, user string) (string, error) {
	return r.GenerateContent(ctx, system, user)
}

func (r *recordingClient) Model() string { return "fake" }
func (r *recordingClient) Close() error  { return nil }

func profileFixture() *types.JobProfile {
	p := types.EmptyJobProfile()
	p.RequiredSkills = []string{"Go"}
	p.JobTitle = "Backend Engineer"
	return p
}

func TestSummary_PromptCarriesProfileJSON(t *testing.T) {
	client := &recordingClient{response: "A crisp summary."}

	out, err := Summary(context.Background(), client, profileFixture())
	require.NoError(t, err)
	assert.Equal(t, "A crisp summary.", out)

	require.Len(t, client.userPrompts, 1)
	assert.Contains(t, client.userPrompts[0], `"job_title": "Backend Engineer"`)
	assert.Contains(t, client.systemPrompts[0], "resume summary")
}

func TestProjects_PromptCarriesBank(t *testing.T) {
	client := &recordingClient{response: "Rewritten projects."}
	bank := &types.ProjectsBank{Projects: []types.Project{
		json.RawMessage(`{"name": "CLI tool"}`),
	}}

	out, err := Projects(context.Background(), client, profileFixture(), bank)
	require.NoError(t, err)
	assert.Equal(t, "Rewritten projects.", out)

	require.Len(t, client.userPrompts, 1)
	assert.Contains(t, client.userPrompts[0], "CLI tool")
	assert.Contains(t, client.userPrompts[0], `"required_skills"`)
}

func TestExperience_PromptCarriesBank(t *testing.T) {
	client := &recordingClient{response: "Rewritten experience."}
	bank := &types.ExperienceBank{Experience: []types.Experience{
		json.RawMessage(`{"company": "Acme"}`),
	}}

	out, err := Experience(context.Background(), client, profileFixture(), bank)
	require.NoError(t, err)
	assert.Equal(t, "Rewritten experience.", out)
	assert.Contains(t, client.userPrompts[0], "Acme")
}

func TestCoverLetter(t *testing.T) {
	client := &recordingClient{response: "Dear hiring manager,"}

	out, err := CoverLetter(context.Background(), client, profileFixture())
	require.NoError(t, err)
	assert.Equal(t, "Dear hiring manager,", out)
	assert.Contains(t, client.systemPrompts[0], "cover letter")
}
