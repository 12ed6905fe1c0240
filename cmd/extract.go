package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/prospect-cli/internal/document"
	"github.com/sells-group/prospect-cli/internal/extract"
	"github.com/sells-group/prospect-cli/internal/model"
	"github.com/sells-group/prospect-cli/internal/table"
	"github.com/sells-group/prospect-cli/pkg/anthropic"
	"github.com/sells-group/prospect-cli/pkg/openai"
)

var (
	extractOrg        string
	extractOutput     string
	extractFormat     string
	extractPromptFile string
	extractBackend    string
	extractNoDedupe   bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [files...]",
	Short: "Extract names from documents into the interchange table",
	Long: `Extracts leadership names from PDF, HTML, and image files via a
structured-output LLM call, tags every record with the organization, dedupes
by (first_name, last_name), and writes the interchange table.

Examples:
  # One PDF, CSV output
  prospect-cli extract --org "Acme Corp" board.pdf

  # Several documents for the same organization, XLSX output
  prospect-cli extract --org "Acme Corp" --format xlsx a.html b.png`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		backend, err := buildBackend()
		if err != nil {
			return err
		}

		opts := []extract.Option{}
		if extractPromptFile != "" {
			raw, readErr := os.ReadFile(extractPromptFile)
			if readErr != nil {
				return eris.Wrap(readErr, "extract: read prompt file")
			}
			opts = append(opts, extract.WithPrompt(string(raw)))
		}
		engine := extract.NewEngine(backend, opts...)
		loader := document.NewLoader(cfg.Document.PdfToTextPath)

		var rows []model.Prospect
		var failed int
		for _, path := range args {
			doc, loadErr := loader.Load(ctx, path)
			if loadErr != nil {
				failed++
				zap.L().Error("extract: load document failed",
					zap.String("file", path),
					zap.Error(loadErr),
				)
				continue // don't abort the batch on one document
			}

			records, extractErr := engine.Extract(ctx, doc)
			if extractErr != nil {
				failed++
				zap.L().Error("extract: document failed",
					zap.String("file", path),
					zap.Error(extractErr),
				)
				continue
			}

			zap.L().Info("extract: document complete",
				zap.String("file", path),
				zap.String("kind", string(doc.Kind)),
				zap.Int("names", len(records)),
			)
			rows = append(rows, normalizeRecords(records)...)
		}

		if err := writeTable(extractOutput, extractFormat, rows); err != nil {
			return err
		}

		zap.L().Info("extract: batch complete",
			zap.Int("documents", len(args)),
			zap.Int("failed", failed),
			zap.Int("rows", len(rows)),
			zap.String("output", extractOutput),
		)
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractOrg, "org", "", "organization label attached to every record (required)")
	extractCmd.Flags().StringVar(&extractOutput, "output", "1_names.csv", "output table path")
	extractCmd.Flags().StringVar(&extractFormat, "format", "csv", "output format: csv or xlsx")
	extractCmd.Flags().StringVar(&extractPromptFile, "prompt-file", "", "override the extraction prompt from a file")
	extractCmd.Flags().StringVar(&extractBackend, "backend", "", "model backend: openai or anthropic (default from config)")
	extractCmd.Flags().BoolVar(&extractNoDedupe, "no-dedupe", false, "keep duplicate (first,last) records")
	_ = extractCmd.MarkFlagRequired("org")
	rootCmd.AddCommand(extractCmd)
}

// buildBackend constructs the configured model backend. Missing credentials
// fail here, before any document is read.
func buildBackend() (extract.Completer, error) {
	backend := cfg.Extract.Backend
	if extractBackend != "" {
		backend = extractBackend
	}

	switch backend {
	case "openai":
		if cfg.OpenAI.Key == "" {
			return nil, eris.New("extract: PROSPECT_OPENAI_KEY is not set")
		}
		client := openai.NewClient(cfg.OpenAI.Key,
			openai.WithBaseURL(cfg.OpenAI.BaseURL),
			openai.WithModel(cfg.OpenAI.Model),
		)
		return extract.NewOpenAIBackend(client, cfg.OpenAI.Model, cfg.OpenAI.Temperature), nil

	case "anthropic":
		if cfg.Anthropic.Key == "" {
			return nil, eris.New("extract: PROSPECT_ANTHROPIC_KEY is not set")
		}
		client := anthropic.NewClient(cfg.Anthropic.Key)
		return extract.NewAnthropicBackend(client, cfg.Anthropic.Model, cfg.Anthropic.MaxTokens), nil

	default:
		return nil, eris.Errorf("extract: unknown backend %q", backend)
	}
}

func normalizeRecords(records []model.NameRecord) []model.Prospect {
	if extractNoDedupe || !cfg.Extract.Dedupe {
		return extract.NormalizeKeepAll(records, extractOrg)
	}
	return extract.Normalize(records, extractOrg)
}

// writeTable writes rows in the requested format.
func writeTable(path, format string, rows []model.Prospect) error {
	switch format {
	case "csv":
		return table.WriteCSV(path, rows)
	case "xlsx":
		return table.WriteXLSX(path, rows)
	default:
		return eris.Errorf("unknown output format %q", format)
	}
}
