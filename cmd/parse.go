package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inkwell-data/policyscan/internal/extract"
	"github.com/inkwell-data/policyscan/internal/pdf"
	"github.com/inkwell-data/policyscan/internal/report"
)

var (
	parseWindow  int
	parseNoStore bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.pdf|file.txt>",
	Short: "Extract fields from a single policy document",
	Long: `Extracts financial fields from one insurance document, writes
<input-stem>_results.json next to the input, and prints a summary.

Table rows pre-extracted by the table layer are picked up automatically
from a <input-stem>_tables.json sidecar when present.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		reg, err := cfg.FieldRegistry()
		if err != nil {
			return err
		}
		ec := cfg.EngineConfig()
		if parseWindow > 0 {
			ec.WindowSize = parseWindow
		}
		engine, err := extract.New(reg, ec)
		if err != nil {
			return err
		}

		doc, err := pdf.LoadDocument(ctx, args[0], pdf.NewPdfToText(cfg.PDF.PdfToTextPath))
		if err != nil {
			return err
		}

		result, err := engine.Extract(doc)
		if err != nil {
			return err
		}

		outPath := pdf.InputStem(args[0]) + "_results.json"
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return eris.Wrap(err, "marshal result")
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return eris.Wrapf(err, "write %s", outPath)
		}

		if !parseNoStore {
			s, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer s.Close()
			run, err := s.CreateRun(ctx, result)
			if err != nil {
				return err
			}
			zap.L().Info("parse: run stored", zap.String("run_id", run.ID))
		}

		fmt.Print(report.FormatSummary(result, cfg.Extract.Buckets))
		fmt.Printf("\nResults written to %s\n", outPath)
		return nil
	},
}

func init() {
	parseCmd.Flags().IntVar(&parseWindow, "window", 0, "context window size in characters (default from config)")
	parseCmd.Flags().BoolVar(&parseNoStore, "no-store", false, "skip persisting the run")
	rootCmd.AddCommand(parseCmd)
}
