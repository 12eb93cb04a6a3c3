package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	service "github.com/okian/alumnihub/internal/app"
	"github.com/okian/alumnihub/internal/config"
	"github.com/okian/alumnihub/internal/domain/filter"
	"github.com/okian/alumnihub/internal/domain/listing"
	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	var (
		query   string
		filters []string
		toggles []string
	)
	cmd := &cobra.Command{
		Use:       "list <" + strings.Join(listing.Names(), "|") + ">",
		Short:     "Filter a listing and print the page as JSON",
		Example:   "  alumnihub list jobs --filter domain=Technology --toggle remote\n  alumnihub list alumni --query python",
		Args:      cobra.ExactArgs(1),
		ValidArgs: listing.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, ok := listing.Describe(args[0])
			if !ok {
				return fmt.Errorf("unknown listing %q, want one of %s", args[0], strings.Join(listing.Names(), ", "))
			}
			c, err := criteriaFromFlags(query, filters, toggles)
			if err != nil {
				return err
			}
			cfg, err := setup(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return withService(cmd.Context(), cfg, func(svc *service.Service) error {
				page, err := listPage(cmd.Context(), svc, d.Name, c)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), page)
			})
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "free-text search")
	cmd.Flags().StringArrayVarP(&filters, "filter", "f", nil, "categorical selector as field=value, repeatable")
	cmd.Flags().StringArrayVarP(&toggles, "toggle", "t", nil, "boolean toggle to switch on, repeatable")
	return cmd
}

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "show <home|analytics|health>",
		Short:     "Print a content view as JSON",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"home", "analytics", "health"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return withService(cmd.Context(), cfg, func(svc *service.Service) error {
				var (
					v   any
					err error
				)
				switch args[0] {
				case "home":
					v, err = svc.Home(cmd.Context())
				case "analytics":
					v, err = svc.Analytics(cmd.Context())
				case "health":
					v, err = svc.Health(cmd.Context())
				default:
					return fmt.Errorf("unknown view %q", args[0])
				}
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), v)
			})
		},
	}
}

// criteriaFromFlags builds criteria from field=value selectors and toggle names.
func criteriaFromFlags(query string, filters, toggles []string) (filter.Criteria, error) {
	c := filter.Criteria{
		Query:    query,
		Selected: make(map[string]string, len(filters)),
		Toggles:  make(map[string]bool, len(toggles)),
	}
	for _, f := range filters {
		field, value, ok := strings.Cut(f, "=")
		field = strings.TrimSpace(field)
		if !ok || field == "" {
			return filter.Criteria{}, fmt.Errorf("invalid filter %q, want field=value", f)
		}
		c.Selected[field] = strings.TrimSpace(value)
	}
	for _, t := range toggles {
		c.Toggles[strings.TrimSpace(t)] = true
	}
	return c, nil
}

func listPage(ctx context.Context, svc *service.Service, name string, c filter.Criteria) (any, error) {
	switch name {
	case listing.Alumni:
		return svc.ListAlumni(ctx, c)
	case listing.Jobs:
		return svc.ListJobs(ctx, c)
	case listing.Events:
		return svc.ListEvents(ctx, c)
	case listing.Campaigns:
		return svc.ListCampaigns(ctx, c)
	}
	return nil, fmt.Errorf("unknown listing %q", name)
}

// withService runs fn against a started service over the configured data source.
func withService(ctx context.Context, cfg *config.Config, fn func(*service.Service) error) error {
	provider, err := newProvider(ctx, cfg)
	if err != nil {
		return err
	}
	svc := service.New(
		service.WithProvider(provider),
		service.WithOptionCacheSize(cfg.OptionCacheSize),
	)
	if err := svc.Start(ctx); err != nil {
		_ = provider.Close()
		return err
	}
	defer svc.Stop()
	return fn(svc)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
