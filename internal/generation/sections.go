// Package generation produces the tailored prose sections of the resume and
// the cover letter via single-shot LLM calls.
package generation

import (
	"context"
	"encoding/json"

	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/prompts"
	"github.com/jonathan/resume-tailor/internal/types"
)

const promptFile = "tailoring.json"

// Summary writes a short resume summary aligned with the job profile.
func Summary(ctx context.Context, client llm.Client, profile *types.JobProfile) (string, error) {
	return generate(ctx, client, "generate-summary", map[string]string{
		"JobProfile": mustIndent(profile),
	})
}

// Projects rewrites the candidate's project descriptions toward the posting.
func Projects(ctx context.Context, client llm.Client, profile *types.JobProfile, bank *types.ProjectsBank) (string, error) {
	return generate(ctx, client, "generate-projects", map[string]string{
		"JobProfile": mustIndent(profile),
		"Projects":   mustIndent(bank.Projects),
	})
}

// Experience rewrites the candidate's work history to highlight transferable skills.
func Experience(ctx context.Context, client llm.Client, profile *types.JobProfile, bank *types.ExperienceBank) (string, error) {
	return generate(ctx, client, "generate-experience", map[string]string{
		"JobProfile": mustIndent(profile),
		"Experience": mustIndent(bank.Experience),
	})
}

// CoverLetter writes a tailored cover letter for the posting.
func CoverLetter(ctx context.Context, client llm.Client, profile *types.JobProfile) (string, error) {
	return generate(ctx, client, "generate-cover-letter", map[string]string{
		"JobProfile": mustIndent(profile),
	})
}

// generate runs one prompt pair through the client and returns raw text.
func generate(ctx context.Context, client llm.Client, key string, data map[string]string) (string, error) {
	systemPrompt := prompts.MustGet(promptFile, key+"-system")
	userPrompt := prompts.Format(prompts.MustGet(promptFile, key), data)
	return client.GenerateContent(ctx, systemPrompt, userPrompt)
}

// mustIndent renders a value as indented JSON for prompt interpolation.
// The inputs are structs and slices that already round-tripped through
// encoding/json, so marshaling cannot fail.
func mustIndent(v any) string {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		panic(err)
	}
	return string(out)
}
