// Package parsing extracts a structured JobProfile from free-text job
// postings using LLM extraction.
package parsing

import (
	"context"
	"encoding/json"

	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/prompts"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/types"
)

// ExtractionResult is the two-variant outcome of a profile extraction.
// Degraded is set when the model's output could not be used and the fixed
// all-empty profile was substituted; Cause then records why, so callers can
// log the degraded case instead of it being masked entirely.
type ExtractionResult struct {
	Profile  *types.JobProfile
	Degraded bool
	Cause    error
}

// ExtractJobProfile asks the model for the fixed JSON schema and parses the
// response. Malformed output never surfaces as an error: the result degrades
// to the all-empty profile. Only a transport-level failure reaching the
// endpoint is returned as an error.
func ExtractJobProfile(ctx context.Context, client llm.Client, jobPosting string) (*ExtractionResult, error) {
	systemPrompt := prompts.MustGet("tailoring.json", "extract-job-profile-system")
	userPrompt := prompts.Format(
		prompts.MustGet("tailoring.json", "extract-job-profile"),
		map[string]string{"JobPosting": jobPosting},
	)

	responseText, err := client.GenerateJSON(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to generate content from LLM",
			Cause:   err,
		}
	}

	if err := schemas.ValidateJobProfileJSON(responseText); err != nil {
		return degraded(&ParseError{Message: "response does not match job profile schema", Cause: err}), nil
	}

	var profile types.JobProfile
	if err := json.Unmarshal([]byte(responseText), &profile); err != nil {
		return degraded(&ParseError{Message: "failed to parse JSON response", Cause: err}), nil
	}

	return &ExtractionResult{Profile: &profile}, nil
}

// degraded builds the fallback result around the all-empty profile.
func degraded(cause error) *ExtractionResult {
	return &ExtractionResult{
		Profile:  types.EmptyJobProfile(),
		Degraded: true,
		Cause:    cause,
	}
}
