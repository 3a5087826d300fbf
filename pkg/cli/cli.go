package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/upstreamci/relver/pkg/cli/config"
	"github.com/upstreamci/relver/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Run executes the relver command line. The logger is built once in the root
// Before hook and installed on the context, so every subcommand and the
// layers below it log through the same handler.
func Run(ctx context.Context, args []string) error {
	var (
		loggerCfg config.Logger
		logger    *slog.Logger
	)

	cmd := &cli.Command{
		Name:  "relver",
		Usage: "One-shot semantic version resolver for CI runs",
		Description: "relver computes the version a CI run should build, from the " +
			"event that triggered the run and the most recently published release, " +
			"and hands it to the following build steps.",
		Version: types.Version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			l, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}
			logger = l
			slog.SetDefault(l)
			return ctxlog.With(ctx, l), nil
		},
		Commands: []*cli.Command{
			cmdResolve(),
		},
	}

	if err := cmd.Run(ctx, args); err != nil {
		log := logger
		if log == nil {
			log = slog.Default()
		}
		log.Error("Command failed", slog.Any("error", err))
		return err
	}

	return nil
}
