package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/pipeline"
	"github.com/jonathan/resume-tailor/internal/rendering"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full tailoring pipeline end-to-end",
	Long: `Orchestrates the tailoring process: ingestion -> extraction -> skill filtering -> generation -> template filling -> PDF rendering.

With no input flags the job posting is pasted interactively, terminated by a blank line. Configuration can be loaded from a JSON file using --config; command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath string
	runJob        string
	runJobURL     string
	runTemplate   string
	runSkills     string
	runProjects   string
	runExperience string
	runResumeOut  string
	runLetterOut  string
	runOllamaURL  string
	runModel      string
	runVerbose    bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	runCommand.Flags().StringVar(&runJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	runCommand.Flags().StringVarP(&runTemplate, "template", "t", "", "Path to resume HTML template")
	runCommand.Flags().StringVar(&runSkills, "skills", "", "Path to master skills catalog JSON")
	runCommand.Flags().StringVar(&runProjects, "projects", "", "Path to projects bank JSON")
	runCommand.Flags().StringVar(&runExperience, "experience", "", "Path to experience bank JSON")
	runCommand.Flags().StringVar(&runResumeOut, "resume-out", "", "Output path for the tailored resume PDF")
	runCommand.Flags().StringVar(&runLetterOut, "letter-out", "", "Output path for the tailored cover letter PDF")
	runCommand.Flags().StringVar(&runOllamaURL, "ollama-url", "", "Base URL of the local inference endpoint")
	runCommand.Flags().StringVarP(&runModel, "model", "m", "", "Model name served by the endpoint")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority).
	// Only override if the flag was explicitly set.
	if cmd.Flags().Changed("job") {
		cfg.Job = runJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = runJobURL
	}
	if cmd.Flags().Changed("template") {
		cfg.Template = runTemplate
	}
	if cmd.Flags().Changed("skills") {
		cfg.Skills = runSkills
	}
	if cmd.Flags().Changed("projects") {
		cfg.Projects = runProjects
	}
	if cmd.Flags().Changed("experience") {
		cfg.Exper = runExperience
	}
	if cmd.Flags().Changed("resume-out") {
		cfg.ResumeOut = runResumeOut
	}
	if cmd.Flags().Changed("letter-out") {
		cfg.LetterOut = runLetterOut
	}
	if cmd.Flags().Changed("ollama-url") {
		cfg.OllamaURL = runOllamaURL
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = runModel
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	// Step 3: Apply defaults for unset values
	defaults := config.Config{
		Template:  "resume_template.html",
		Skills:    "skills.json",
		Projects:  "projects.json",
		Exper:     "experience.json",
		ResumeOut: "tailored_resume.pdf",
		LetterOut: "tailored_cover_letter.pdf",
		OllamaURL: llm.DefaultBaseURL,
		Model:     llm.DefaultModel,
	}
	cfg = cfg.MergeWithDefaults(defaults)

	// Step 4: Validate merged configuration
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	// Identity profile comes from the environment (.env already loaded).
	identity := config.LoadProfile(os.Getenv)

	client := llm.NewClient(&llm.Config{
		BaseURL: cfg.OllamaURL,
		Model:   cfg.Model,
	})
	defer func() { _ = client.Close() }()

	opts := pipeline.RunOptions{
		JobPath:        cfg.Job,
		JobURL:         cfg.JobURL,
		In:             os.Stdin,
		Out:            os.Stdout,
		Identity:       identity,
		SkillsPath:     cfg.Skills,
		ProjectsPath:   cfg.Projects,
		ExperiencePath: cfg.Exper,
		TemplatePath:   cfg.Template,
		ResumeOutPath:  cfg.ResumeOut,
		LetterOutPath:  cfg.LetterOut,
		Client:         client,
		Renderer:       rendering.NewChromeRenderer(),
		Verbose:        cfg.Verbose,
	}

	return pipeline.RunPipeline(ctx, opts)
}
