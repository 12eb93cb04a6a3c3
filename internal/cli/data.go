package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/okian/alumnihub/internal/adapters/repository"
	"github.com/okian/alumnihub/internal/domain/model"
	"github.com/okian/alumnihub/pkg/logger"
	"github.com/spf13/cobra"
)

func newSeedCommand() *cobra.Command {
	var dsn, from string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a dataset into a SQLite database",
		Long: `seed replaces the listing tables of a SQLite database with the records of a
YAML dataset, or with the built-in dataset when --from is not given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := setup(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if dsn == "" {
				dsn = cfg.SQLiteDSN
			}
			if dsn == "" {
				return fmt.Errorf("seed: --dsn or ALUMNIHUB_SQLITE_DSN is required")
			}
			return seed(cmd.Context(), dsn, from)
		},
	}
	cmd.Flags().StringVar(&dsn, "dsn", "", "SQLite database to seed, defaults to ALUMNIHUB_SQLITE_DSN")
	cmd.Flags().StringVar(&from, "from", "", "YAML dataset to load instead of the built-in one")
	return cmd
}

func seed(ctx context.Context, dsn, from string) error {
	ds := repository.BuiltinDataset()
	if from != "" {
		var err error
		if ds, err = readDataset(from); err != nil {
			return err
		}
	}

	db, err := repository.Open(ctx, dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repository.Seed(ctx, db, ds); err != nil {
		return err
	}
	logger.Named("seed").Info(ctx, "dataset seeded",
		logger.String("dsn", dsn),
		logger.Int("alumni", len(ds.Alumni)),
		logger.Int("jobs", len(ds.Jobs)),
		logger.Int("events", len(ds.Events)),
		logger.Int("campaigns", len(ds.Campaigns)),
	)
	return nil
}

func readDataset(path string) (*model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrLoadDataset, err)
	}
	defer f.Close()
	return repository.ReadYAML(f)
}

func newExportCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the configured data source as a YAML dataset",
		Long: `export snapshots the configured data source and writes it in the format read
by the file source, to --out or standard output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := setup(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			provider, err := newProvider(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer provider.Close()

			ds, err := provider.Snapshot(cmd.Context())
			if err != nil {
				return err
			}
			if out == "" {
				return repository.WriteYAML(cmd.OutOrStdout(), ds)
			}
			return writeDataset(out, ds)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, defaults to standard output")
	return cmd
}

func writeDataset(path string, ds *model.Dataset) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return repository.WriteYAML(f, ds)
}
