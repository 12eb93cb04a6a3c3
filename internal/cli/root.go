// Package cli builds the alumnihub command tree.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/okian/alumnihub/internal/adapters/repository"
	"github.com/okian/alumnihub/internal/config"
	"github.com/okian/alumnihub/pkg/logger"
	"github.com/spf13/cobra"
)

// NewRootCommand returns the alumnihub root command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "alumnihub",
		Short: "Alumni engagement directory",
		Long: `alumnihub serves the alumni directory, job board, events and donation
campaigns over HTTP, and offers offline commands to query, seed and export
the dataset behind them.

Configuration is read from ALUMNIHUB_* environment variables, an optional
.env file and an optional YAML file named by ALUMNIHUB_CONFIG.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newServeCommand(),
		newListCommand(),
		newShowCommand(),
		newSeedCommand(),
		newExportCommand(),
	)
	return root
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context, args []string) error {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// setup loads the configuration and points the global logger at w.
func setup(ctx context.Context, w io.Writer) (*config.Config, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := logger.Configure(w, cfg.LogFormat); err != nil {
		return nil, err
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newProvider(ctx context.Context, cfg *config.Config) (repository.Provider, error) {
	p, err := repository.New(ctx, cfg.DataSource,
		repository.WithPath(cfg.DataPath),
		repository.WithDSN(cfg.SQLiteDSN),
	)
	if err != nil {
		return nil, fmt.Errorf("open %s data source: %w", cfg.DataSource, err)
	}
	return p, nil
}
