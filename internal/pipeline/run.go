// Package pipeline provides the high-level orchestration for the tailoring process.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-tailor/internal/candidate"
	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/generation"
	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/parsing"
	"github.com/jonathan/resume-tailor/internal/rendering"
	"github.com/jonathan/resume-tailor/internal/skills"
	"github.com/jonathan/resume-tailor/internal/templates"
)

// RunOptions holds everything the pipeline needs, injected by the caller.
type RunOptions struct {
	// Job posting source: JobPath, JobURL, or interactive paste-in via In/Out.
	JobPath string
	JobURL  string
	In      io.Reader
	Out     io.Writer

	// Candidate data
	Identity       *config.Profile
	SkillsPath     string
	ProjectsPath   string
	ExperiencePath string
	TemplatePath   string

	// Outputs
	ResumeOutPath string
	LetterOutPath string

	// Collaborators
	Client   llm.Client
	Renderer rendering.Renderer

	Verbose bool
}

// sections collects the generated prose for template filling.
type sections struct {
	summary     string
	projects    string
	experience  string
	coverLetter string
}

// RunPipeline orchestrates the full tailoring run: ingest, extract, filter,
// generate, fill, render. Either both PDFs are produced or the run aborts
// with the first error.
func RunPipeline(ctx context.Context, opts RunOptions) error {
	printer := observability.NewPrinter(opts.Out)
	runID := uuid.New()
	if opts.Verbose {
		fmt.Fprintf(opts.Out, "[VERBOSE] Run ID: %s\n", runID)
	}

	// Step 1: Ingest job posting
	var jobPosting string
	var err error
	switch {
	case opts.JobPath != "":
		fmt.Fprintf(opts.Out, "Step 1/7: Reading job posting from file: %s...\n", opts.JobPath)
		jobPosting, err = ingestion.ReadFile(opts.JobPath)
	case opts.JobURL != "":
		fmt.Fprintf(opts.Out, "Step 1/7: Fetching job posting from URL: %s...\n", opts.JobURL)
		jobPosting, err = ingestion.FromURL(ctx, opts.JobURL)
	default:
		jobPosting, err = ingestion.ReadInteractive(opts.In, opts.Out)
	}
	if err != nil {
		return fmt.Errorf("job ingestion failed: %w", err)
	}

	// Load candidate data up front so file problems surface before any model call.
	master, err := candidate.LoadSkillsCatalog(opts.SkillsPath)
	if err != nil {
		return fmt.Errorf("loading skills catalog failed: %w", err)
	}
	projects, err := candidate.LoadProjects(opts.ProjectsPath)
	if err != nil {
		return fmt.Errorf("loading projects failed: %w", err)
	}
	experience, err := candidate.LoadExperience(opts.ExperiencePath)
	if err != nil {
		return fmt.Errorf("loading experience failed: %w", err)
	}
	resumeTemplate, err := templates.Load(opts.TemplatePath)
	if err != nil {
		return fmt.Errorf("loading resume template failed: %w", err)
	}

	// Step 2: Extract job profile
	fmt.Fprintf(opts.Out, "Step 2/7: Extracting job profile...\n")
	extraction, err := parsing.ExtractJobProfile(ctx, opts.Client, jobPosting)
	if err != nil {
		return fmt.Errorf("job profile extraction failed: %w", err)
	}
	if extraction.Degraded {
		printer.PrintDegradedExtraction(extraction.Cause)
	}
	jobProfile := extraction.Profile
	if opts.Verbose {
		printer.PrintJobProfile(jobProfile)
	}

	// Step 3: Filter skills and render the table
	fmt.Fprintf(opts.Out, "Step 3/7: Filtering relevant skills...\n")
	filtered := skills.BuildRelevantSkills(jobProfile, master)
	skillsTable := skills.RenderTableHTML(filtered)
	if opts.Verbose {
		printer.PrintFilteredSkills(filtered)
	}

	// Step 4: Generate prose sections. The four calls are independent
	// single-shot requests, so they run concurrently.
	fmt.Fprintf(opts.Out, "Step 4/7: Generating summary, projects, experience and cover letter...\n")
	var sec sections
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := generation.Summary(gCtx, opts.Client, jobProfile)
		if err != nil {
			return fmt.Errorf("generating summary failed: %w", err)
		}
		sec.summary = out
		return nil
	})
	g.Go(func() error {
		out, err := generation.Projects(gCtx, opts.Client, jobProfile, projects)
		if err != nil {
			return fmt.Errorf("generating projects section failed: %w", err)
		}
		sec.projects = out
		return nil
	})
	g.Go(func() error {
		out, err := generation.Experience(gCtx, opts.Client, jobProfile, experience)
		if err != nil {
			return fmt.Errorf("generating experience section failed: %w", err)
		}
		sec.experience = out
		return nil
	})
	g.Go(func() error {
		out, err := generation.CoverLetter(gCtx, opts.Client, jobProfile)
		if err != nil {
			return fmt.Errorf("generating cover letter failed: %w", err)
		}
		sec.coverLetter = out
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	// Step 5: Fill templates
	fmt.Fprintf(opts.Out, "Step 5/7: Filling document templates...\n")
	identity := opts.Identity.Placeholders()
	resumeHTML := templates.FillResume(resumeTemplate, identity, templates.Sections{
		Summary:     sec.summary,
		Projects:    sec.projects,
		Experience:  sec.experience,
		SkillsTable: skillsTable,
	})
	letterHTML := templates.BuildCoverLetter(sec.coverLetter, identity)

	// Steps 6-7: Render PDFs
	fmt.Fprintf(opts.Out, "Step 6/7: Rendering %s...\n", opts.ResumeOutPath)
	if err := opts.Renderer.RenderPDF(ctx, resumeHTML, opts.ResumeOutPath); err != nil {
		return fmt.Errorf("rendering resume failed: %w", err)
	}

	fmt.Fprintf(opts.Out, "Step 7/7: Rendering %s...\n", opts.LetterOutPath)
	if err := opts.Renderer.RenderPDF(ctx, letterHTML, opts.LetterOutPath); err != nil {
		return fmt.Errorf("rendering cover letter failed: %w", err)
	}

	fmt.Fprintf(opts.Out, "Generated %s and %s\n", opts.ResumeOutPath, opts.LetterOutPath)
	return nil
}
