package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/inkwell-data/policyscan/internal/extract"
	"github.com/inkwell-data/policyscan/internal/pdf"
	"github.com/inkwell-data/policyscan/internal/store"
)

var (
	batchConcurrency int
	batchLimit       int
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Extract fields from every document in a directory",
	Long: `Walks a directory for .pdf and .txt documents, runs extraction on
each concurrently, and persists every result to the store. Documents are
independent; a failure on one does not stop the rest.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		reg, err := cfg.FieldRegistry()
		if err != nil {
			return err
		}
		engine, err := extract.New(reg, cfg.EngineConfig())
		if err != nil {
			return err
		}

		paths, err := collectInputs(args[0], batchLimit)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return eris.Errorf("no .pdf or .txt documents under %s", args[0])
		}

		s, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		extractor := pdf.NewPdfToText(cfg.PDF.PdfToTextPath)

		var processed, failed atomic.Int64
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(batchConcurrency)
		for _, path := range paths {
			g.Go(func() error {
				err := processOne(gctx, path, engine, extractor, s)
				if err != nil {
					failed.Add(1)
					zap.L().Error("batch: document failed",
						zap.String("path", path), zap.Error(err))
					return nil // keep processing the rest
				}
				processed.Add(1)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		fmt.Printf("\nProcessed %d documents, %d failed\n", processed.Load(), failed.Load())
		return nil
	},
}

func processOne(ctx context.Context, path string, engine *extract.Engine, extractor *pdf.PdfToText, s store.Store) error {
	doc, err := pdf.LoadDocument(ctx, path, extractor)
	if err != nil {
		return err
	}
	res, err := engine.Extract(doc)
	if err != nil {
		return err
	}
	if _, err := s.CreateRun(ctx, res); err != nil {
		return err
	}
	fmt.Printf("%-50s %s (%d warnings)\n",
		filepath.Base(path), res.DocumentMetadata.DocumentType, len(res.Warnings))
	return nil
}

func collectInputs(dir string, limit int) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".pdf", ".txt":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, eris.Wrapf(err, "walk %s", dir)
	}
	sort.Strings(paths)
	if limit > 0 && len(paths) > limit {
		paths = paths[:limit]
	}
	return paths, nil
}

func init() {
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "max documents processed in parallel")
	batchCmd.Flags().IntVar(&batchLimit, "limit", 0, "max number of documents to process (0 = all)")
	rootCmd.AddCommand(batchCmd)
}
