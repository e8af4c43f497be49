package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/inkwell-data/policyscan/internal/export"
	"github.com/inkwell-data/policyscan/internal/model"
)

var (
	exportFormat string
	exportOutput string
	exportLimit  int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored extraction runs to xlsx or csv",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		runs, err := s.ListRuns(ctx, model.RunFilter{Limit: exportLimit})
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			return eris.New("no stored runs to export")
		}

		switch exportFormat {
		case "csv":
			out := os.Stdout
			if exportOutput != "" {
				f, err := os.Create(exportOutput)
				if err != nil {
					return eris.Wrapf(err, "create %s", exportOutput)
				}
				defer f.Close()
				out = f
			}
			if err := export.WriteCSV(out, runs); err != nil {
				return err
			}
		case "xlsx":
			if exportOutput == "" {
				exportOutput = "extractions.xlsx"
			}
			if err := export.WriteXLSX(exportOutput, runs); err != nil {
				return err
			}
		default:
			return eris.Errorf("unknown export format %q (want csv or xlsx)", exportFormat)
		}

		if exportOutput != "" {
			fmt.Printf("Exported %d runs to %s\n", len(runs), exportOutput)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "export format (csv or xlsx)")
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "output path (csv defaults to stdout)")
	exportCmd.Flags().IntVar(&exportLimit, "limit", 0, "max runs to export (0 = all)")
	rootCmd.AddCommand(exportCmd)
}
