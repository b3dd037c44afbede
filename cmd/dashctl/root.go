package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shenikar/climate_dashboard/internal/query"
	"github.com/shenikar/climate_dashboard/internal/service"
	"github.com/spf13/cobra"
)

// listFlags - общие флаги команд выборки
type listFlags struct {
	search   string
	filters  []string
	page     int
	pageSize int
}

func newRootCmd(svc service.DashboardService) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dashctl",
		Short: "Query the climate dashboard catalog from the command line",
		Long: "Query the climate dashboard catalog from the command line\n\n" +
			"Filters take the form dimension=value, e.g. --filter severity=High",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newListCmd("reports", "List a page of incident reports", func(cmd *cobra.Command, q service.ListQuery) (any, error) {
			return svc.ListReports(cmd.Context(), q)
		}),
		newListCmd("users", "List a page of system users", func(cmd *cobra.Command, q service.ListQuery) (any, error) {
			return svc.ListUsers(cmd.Context(), q)
		}),
		newListCmd("pins", "List a page of map pins", func(cmd *cobra.Command, q service.ListQuery) (any, error) {
			return svc.ListMapPins(cmd.Context(), q)
		}),
	)
	return rootCmd
}

func newListCmd(use, short string, list func(*cobra.Command, service.ListQuery) (any, error)) *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := flags.toQuery()
			if err != nil {
				return err
			}
			result, err := list(cmd, q)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&flags.search, "search", "", "Case-insensitive search term")
	cmd.Flags().StringArrayVar(&flags.filters, "filter", nil, "Filter as dimension=value (repeatable)")
	cmd.Flags().IntVar(&flags.page, "page", 1, "Page number")
	cmd.Flags().IntVar(&flags.pageSize, "page-size", 0, "Number of items per page")
	return cmd
}

func (f listFlags) toQuery() (service.ListQuery, error) {
	filters := make(map[string]string, len(f.filters))
	for _, raw := range f.filters {
		dimension, value, ok := strings.Cut(raw, "=")
		if !ok || dimension == "" {
			return service.ListQuery{}, fmt.Errorf("invalid filter %q: expected dimension=value", raw)
		}
		filters[dimension] = value
	}
	return service.ListQuery{
		Criteria: query.Criteria{Filters: filters, Search: f.search},
		Page:     query.PageRequest{Number: f.page, Size: f.pageSize},
	}, nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
