package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"github.com/tberndt/review-triage/internal/config"
	"github.com/tberndt/review-triage/internal/github"
	"github.com/tberndt/review-triage/internal/github/projecturl"
	"github.com/tberndt/review-triage/internal/triage"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "review-triage",
	Short:        "Keeps linked issues and their board status in step with pull request reviews",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Configure logging based on verbose level
		var level slog.Level
		switch verboseLevel {
		case 0:
			level = slog.LevelInfo
		default:
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
	},
}

var runCmd = &cobra.Command{
	Use:          "run",
	Short:        "Process the trigger event from the CI environment",
	SilenceUsage: true,
	RunE:         runTriage,
}

var (
	inputs       config.Inputs
	testersFlag  string
	verboseLevel int
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&inputs.Token, "token", "", "API token (defaults to GITHUB_TOKEN)")
	runCmd.Flags().IntVar(&inputs.ProjectNumber, "project-number", 0, "Project number on the repository owner's board (defaults to PROJECT_NUMBER)")
	runCmd.Flags().StringVar(&inputs.ProjectURL, "project-url", "", "Project URL (e.g., https://github.com/orgs/org/projects/123), overrides --project-number")
	runCmd.Flags().StringVar(&testersFlag, "testers", "", "Comma-separated reviewer logins that route status to Test instead of Review")
	runCmd.Flags().StringVar(&inputs.ConfigPath, "config", ".github/review-triage.yml", "Optional repository config file")
	runCmd.Flags().BoolVar(&inputs.DryRun, "dry-run", false, "Log mutations without applying them")
	rootCmd.PersistentFlags().CountVarP(&verboseLevel, "verbose", "v", "Verbosity level (-v for debug logs, -vv for debug logs and HTTP traffic)")
}

func runTriage(cmd *cobra.Command, args []string) error {
	inputs.Testers = config.SplitList(testersFlag)
	inputs.FromEnv()
	if err := inputs.Validate(); err != nil {
		return err
	}

	owner, repo := inputs.SplitRepository()
	cfg := triage.Config{
		Owner:            owner,
		Repo:             repo,
		ProjectOwnerType: github.OwnerTypeOrg,
		ProjectOwner:     owner,
		ProjectNumber:    inputs.ProjectNumber,
		Testers:          inputs.Testers,
		StatusLabels:     triage.DefaultStatusLabels(),
	}

	if inputs.ProjectURL != "" {
		info, err := projecturl.Parse(inputs.ProjectURL)
		if err != nil {
			return fmt.Errorf("invalid project URL: %w", err)
		}
		cfg.ProjectOwnerType = info.OwnerType
		cfg.ProjectOwner = info.OwnerLogin
		cfg.ProjectNumber = info.ProjectNumber
	}

	file, err := config.LoadFile(inputs.ConfigPath)
	if err != nil {
		return err
	}
	if file != nil {
		if len(cfg.Testers) == 0 {
			cfg.Testers = file.Testers
		}
		if file.StatusLabels.Review != "" {
			cfg.StatusLabels.Review = file.StatusLabels.Review
		}
		if file.StatusLabels.Test != "" {
			cfg.StatusLabels.Test = file.StatusLabels.Test
		}
		if file.StatusLabels.InProgress != "" {
			cfg.StatusLabels.InProgress = file.StatusLabels.InProgress
		}
	}

	ev, err := triage.LoadEvent(inputs.EventName, inputs.EventPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: inputs.Token})
	httpClient := oauth2.NewClient(ctx, src)
	if verboseLevel >= 2 {
		httpClient.Transport = &github.DebugTransport{Transport: httpClient.Transport}
	}

	client := github.NewAPIClient(httpClient, inputs.DryRun)
	service := triage.NewService(client, cfg)

	if err := service.Run(ctx, ev); err != nil {
		return fmt.Errorf("triage run failed: %w", err)
	}

	slog.Info("triage completed successfully")
	return nil
}
