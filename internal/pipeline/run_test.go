package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/llm"
)

// scriptedClient answers extraction with profileJSON and generation calls
// with a section name inferred from the prompt.
type scriptedClient struct {
	profileJSON string
}

func (s *scriptedClient) GenerateContent(_ context.Context, system, _ string) (string, error) {
	switch {
	case strings.Contains(system, "summary"):
		return "Generated summary.", nil
	case strings.Contains(system, "project"):
		return "Generated projects.\nWith bullets.", nil
	case strings.Contains(system, "experience"):
		return "Generated experience.", nil
	case strings.Contains(system, "cover letter"):
		return "Generated cover letter.\nSecond paragraph.", nil
	default:
		return s.profileJSON, nil
	}
}

func (s *scriptedClient) GenerateJSON(ctx context.Context, system, user string) (string, error) {
	text, err := s.GenerateContent(ctx, system, user)
	if err != nil {
		return "", err
	}
	return llm.CleanJSONBlock(text), nil
}

func (s *scriptedClient) Model() string { return "scripted" }
func (s *scriptedClient) Close() error  { return nil }

// captureRenderer records rendered documents instead of driving a browser.
type captureRenderer struct {
	rendered map[string]string
}

func (c *captureRenderer) RenderPDF(_ context.Context, html, outputPath string) error {
	if c.rendered == nil {
		c.rendered = make(map[string]string)
	}
	c.rendered[outputPath] = html
	return nil
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunPipeline_EndToEnd(t *testing.T) {
	dir := t.TempDir()

	skillsPath := writeTestFile(t, dir, "skills.json", `{
		"Languages": ["Go", "Haskell"],
		"Databases": ["MySQL"]
	}`)
	projectsPath := writeTestFile(t, dir, "projects.json", `{"projects": [{"name": "CLI tool"}]}`)
	experiencePath := writeTestFile(t, dir, "experience.json", `{"experience": [{"company": "Acme"}]}`)
	templatePath := writeTestFile(t, dir, "resume_template.html",
		"<html>{{FIRST_NAME}} {{LAST_NAME}} {{EMAIL}}"+
			"<div>{{SUMMARY}}</div><div>{{PROJECTS}}</div><div>{{EXPERIENCE}}</div>{{SKILLS_TABLE}}</html>")

	env := map[string]string{"FIRST_NAME": "Ada", "LAST_NAME": "Lovelace", "EMAIL": "ada@example.com"}
	identity := config.LoadProfile(func(key string) string { return env[key] })

	client := &scriptedClient{profileJSON: `{
		"required_skills": ["go"],
		"preferred_skills": [],
		"tools": [],
		"responsibilities": [],
		"soft_skills": [],
		"keywords": [],
		"job_title": "Backend Engineer",
		"company_name": "Acme"
	}`}
	renderer := &captureRenderer{}

	var out bytes.Buffer
	opts := RunOptions{
		In:             strings.NewReader("We need a Go engineer.\n\n"),
		Out:            &out,
		Identity:       identity,
		SkillsPath:     skillsPath,
		ProjectsPath:   projectsPath,
		ExperiencePath: experiencePath,
		TemplatePath:   templatePath,
		ResumeOutPath:  filepath.Join(dir, "tailored_resume.pdf"),
		LetterOutPath:  filepath.Join(dir, "tailored_cover_letter.pdf"),
		Client:         client,
		Renderer:       renderer,
	}

	require.NoError(t, RunPipeline(context.Background(), opts))
	require.Len(t, renderer.rendered, 2)

	resume := renderer.rendered[opts.ResumeOutPath]
	assert.Contains(t, resume, "Ada Lovelace ada@example.com")
	assert.Contains(t, resume, "Generated summary.")
	assert.Contains(t, resume, "Generated projects.<br>With bullets.")
	assert.Contains(t, resume, "Generated experience.")
	// "go" matches Go; MySQL survives via the always-keep list; Haskell is dropped.
	assert.Contains(t, resume, "<td class='skill-item'>Go</td>")
	assert.Contains(t, resume, "MySQL")
	assert.NotContains(t, resume, "Haskell")
	assert.NotContains(t, resume, "{{")

	letter := renderer.rendered[opts.LetterOutPath]
	assert.Contains(t, letter, "Generated cover letter.<br>Second paragraph.")
	assert.Contains(t, letter, "Ada Lovelace")

	assert.Contains(t, out.String(), "Generated "+opts.ResumeOutPath)
}

func TestRunPipeline_DegradedExtractionStillProducesDocuments(t *testing.T) {
	dir := t.TempDir()

	skillsPath := writeTestFile(t, dir, "skills.json", `{"Databases": ["MySQL", "Cassandra"]}`)
	projectsPath := writeTestFile(t, dir, "projects.json", `{"projects": []}`)
	experiencePath := writeTestFile(t, dir, "experience.json", `{"experience": []}`)
	templatePath := writeTestFile(t, dir, "resume_template.html", "<html>{{SUMMARY}}{{SKILLS_TABLE}}</html>")

	client := &scriptedClient{profileJSON: "I refuse to answer in JSON."}
	renderer := &captureRenderer{}

	var out bytes.Buffer
	opts := RunOptions{
		In:             strings.NewReader("Some posting.\n\n"),
		Out:            &out,
		Identity:       config.LoadProfile(func(string) string { return "" }),
		SkillsPath:     skillsPath,
		ProjectsPath:   projectsPath,
		ExperiencePath: experiencePath,
		TemplatePath:   templatePath,
		ResumeOutPath:  filepath.Join(dir, "resume.pdf"),
		LetterOutPath:  filepath.Join(dir, "letter.pdf"),
		Client:         client,
		Renderer:       renderer,
	}

	require.NoError(t, RunPipeline(context.Background(), opts))

	// The degraded case is surfaced, not masked.
	assert.Contains(t, out.String(), "DEGRADED EXTRACTION")

	// Empty term set keeps only always-keep skills.
	resume := renderer.rendered[opts.ResumeOutPath]
	assert.Contains(t, resume, "MySQL")
	assert.NotContains(t, resume, "Cassandra")
}

func TestRunPipeline_MissingSkillsFileAborts(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	opts := RunOptions{
		In:             strings.NewReader("posting\n\n"),
		Out:            &out,
		Identity:       config.LoadProfile(func(string) string { return "" }),
		SkillsPath:     filepath.Join(dir, "missing.json"),
		ProjectsPath:   filepath.Join(dir, "missing.json"),
		ExperiencePath: filepath.Join(dir, "missing.json"),
		TemplatePath:   filepath.Join(dir, "missing.html"),
		ResumeOutPath:  filepath.Join(dir, "resume.pdf"),
		LetterOutPath:  filepath.Join(dir, "letter.pdf"),
		Client:         &scriptedClient{},
		Renderer:       &captureRenderer{},
	}

	err := RunPipeline(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "skills catalog")
}
