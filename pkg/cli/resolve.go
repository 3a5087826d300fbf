package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/upstreamci/relver/pkg/cli/config"
	"github.com/upstreamci/relver/pkg/domain/interfaces"
	"github.com/upstreamci/relver/pkg/infra/actions"
	"github.com/upstreamci/relver/pkg/infra/console"
	githubinfra "github.com/upstreamci/relver/pkg/infra/github"
	"github.com/upstreamci/relver/pkg/infra/gitrepo"
	"github.com/upstreamci/relver/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdResolve() *cli.Command {
	var (
		triggerCfg config.Trigger
		githubCfg  config.GitHub
		sourceCfg  config.Source
		outputCfg  config.Output
		sentryCfg  config.Sentry
		configPath string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to a relver.toml or relver.yaml config file",
			Destination: &configPath,
			Sources:     cli.EnvVars("RELVER_CONFIG"),
		},
	}
	flags = append(flags, triggerCfg.Flags()...)
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, sourceCfg.Flags()...)
	flags = append(flags, outputCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "resolve",
		Aliases: []string{"r"},
		Usage:   "Resolve the version for the current CI run",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := config.ApplyFile(c, configPath, &triggerCfg, &githubCfg, &sourceCfg, &outputCfg); err != nil {
				return err
			}

			flush, err := sentryCfg.Configure()
			if err != nil {
				return err
			}
			defer flush()

			if err := runResolve(ctx, &triggerCfg, &githubCfg, &sourceCfg, &outputCfg); err != nil {
				sentry.CaptureException(err)
				if actions.OnActions() {
					actions.Error(os.Stdout, err.Error())
				}
				return err
			}
			return nil
		},
	}
}

func runResolve(ctx context.Context, triggerCfg *config.Trigger, githubCfg *config.GitHub, sourceCfg *config.Source, outputCfg *config.Output) error {
	logger := ctxlog.From(ctx).With(slog.String("run_id", uuid.NewString()))
	ctx = ctxlog.With(ctx, logger)

	logger.Debug("Starting version resolution",
		slog.Any("trigger", *triggerCfg),
		slog.Any("github", *githubCfg),
		slog.String("source", sourceCfg.Kind),
	)

	// Create the release source
	source, err := newSource(sourceCfg, githubCfg)
	if err != nil {
		return err
	}

	// Assemble the trigger context
	trigger, err := actions.LoadTrigger(ctx, actions.TriggerInput{
		EventName:     triggerCfg.EventName,
		EventPath:     triggerCfg.EventPath,
		Ref:           triggerCfg.Ref,
		DefaultBranch: triggerCfg.DefaultBranch,
		RunNumber:     triggerCfg.RunNumber,
		Repository:    triggerCfg.Repository,
	})
	if err != nil {
		return err
	}

	res, err := usecase.NewResolver(source).Resolve(ctx, trigger)
	if err != nil {
		return err
	}

	// Surface non-fatal findings
	for _, warning := range res.Warnings {
		if actions.OnActions() {
			actions.Warning(os.Stdout, warning)
		} else {
			color.New(color.FgYellow).Fprintln(os.Stderr, "warning: "+warning)
		}
	}

	// Deliver the result to every sink
	sinks := []interfaces.ResultSink{console.NewSink(os.Stdout, outputCfg.JSON)}
	if outputCfg.File != "" {
		sinks = append(sinks, actions.NewOutputSink(outputCfg.File))
	}
	for _, sink := range sinks {
		if err := sink.Write(ctx, res); err != nil {
			return err
		}
	}

	return nil
}

func newSource(sourceCfg *config.Source, githubCfg *config.GitHub) (interfaces.ReleaseSource, error) {
	switch sourceCfg.Kind {
	case "github":
		return githubinfra.NewClient(githubCfg.Token, githubCfg.BaseURL, githubCfg.Timeout)
	case "git":
		return gitrepo.Open(sourceCfg.RepoPath)
	default:
		return nil, goerr.New("unknown release source", goerr.V("source", sourceCfg.Kind))
	}
}
