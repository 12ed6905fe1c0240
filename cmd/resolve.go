package main

import (
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/prospect-cli/internal/model"
	"github.com/sells-group/prospect-cli/internal/resolve"
	"github.com/sells-group/prospect-cli/internal/table"
	"github.com/sells-group/prospect-cli/pkg/brave"
	"github.com/sells-group/prospect-cli/pkg/brightdata"
)

var (
	resolveCSV    string
	resolveOutput string
	resolveFormat string
	resolveLimit  int
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve interchange rows to LinkedIn profile identifiers",
	Long: `Reads the interchange table produced by extract, looks each person up
through the keyword-search API and (when configured) the scrape-backed
search-engine API, reconciles the candidate profile slugs into linkedin_id
plus other_matches, assigns a fresh database_id per row, and re-exports the
table.

Examples:
  prospect-cli resolve --csv 1_names.csv
  prospect-cli resolve --csv 1_names.csv --output out.xlsx --format xlsx`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if cfg.Brave.Key == "" {
			return eris.New("resolve: PROSPECT_BRAVE_KEY is not set")
		}

		rows, err := table.ReadCSV(resolveCSV)
		if err != nil {
			return eris.Wrap(err, "resolve: read table")
		}
		zap.L().Info("resolve: table loaded", zap.Int("rows", len(rows)))

		// The limit scopes resolution, not the export: every row is written
		// back, rows past the limit with their resolution fields untouched.
		target := resolveScope(rows, resolveLimit)

		opts := []resolve.Option{
			resolve.WithSearchCount(cfg.Brave.Count),
			resolve.WithOrganicCount(cfg.BrightData.Count),
			resolve.WithDelay(time.Duration(cfg.Resolve.DelaySecs) * time.Second),
		}
		if cfg.BrightData.Key != "" {
			proxy := brightdata.NewClient(cfg.BrightData.Key,
				brightdata.WithZone(cfg.BrightData.Zone),
			)
			opts = append(opts, resolve.WithProxy(proxy))
		} else {
			zap.L().Warn("PROSPECT_BRIGHTDATA_KEY not set, resolving from keyword search only")
		}

		resolver := resolve.New(brave.NewClient(cfg.Brave.Key), opts...)
		if err := resolver.ResolveAll(ctx, target); err != nil {
			return err
		}

		if err := writeTable(resolveOutput, resolveFormat, rows); err != nil {
			return err
		}

		zap.L().Info("resolve: batch complete",
			zap.Int("rows", len(rows)),
			zap.Int("resolved", len(target)),
			zap.String("output", resolveOutput),
		)
		return nil
	},
}

// resolveScope returns the leading rows to resolve. ResolveAll mutates rows
// in place, so resolving the sub-slice still updates the full table.
func resolveScope(rows []model.Prospect, limit int) []model.Prospect {
	if limit > 0 && limit < len(rows) {
		return rows[:limit]
	}
	return rows
}

func init() {
	resolveCmd.Flags().StringVar(&resolveCSV, "csv", "", "path to the interchange CSV (required)")
	resolveCmd.Flags().StringVar(&resolveOutput, "output", "2_linkedin_identifiers.csv", "output table path")
	resolveCmd.Flags().StringVar(&resolveFormat, "format", "csv", "output format: csv or xlsx")
	resolveCmd.Flags().IntVar(&resolveLimit, "limit", 0, "max rows to resolve (0 = all); rows past the limit are written through unresolved")
	_ = resolveCmd.MarkFlagRequired("csv")
	rootCmd.AddCommand(resolveCmd)
}
