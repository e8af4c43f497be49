package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/inkwell-data/policyscan/internal/model"
	"github.com/inkwell-data/policyscan/internal/report"
)

var (
	runsLimit   int
	runsDocType string
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List stored extraction runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		runs, err := s.ListRuns(ctx, model.RunFilter{
			Limit:        runsLimit,
			DocumentType: model.DocumentType(runsDocType),
		})
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tFILE\tTYPE\tCREATED")
		for _, r := range runs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				r.ID, r.Filename, r.DocumentType, r.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		return w.Flush()
	},
}

var runsShowJSON bool

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one stored extraction run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		run, err := s.GetRun(ctx, args[0])
		if err != nil {
			return err
		}
		if run.Result == nil {
			return eris.Errorf("run %s has no result", run.ID)
		}

		if runsShowJSON {
			data, err := json.MarshalIndent(run.Result, "", "  ")
			if err != nil {
				return eris.Wrap(err, "marshal result")
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Print(report.FormatSummary(run.Result, cfg.Extract.Buckets))
		return nil
	},
}

func init() {
	runsCmd.Flags().IntVar(&runsLimit, "limit", 50, "max runs to list")
	runsCmd.Flags().StringVar(&runsDocType, "type", "", "filter by document type")
	runsShowCmd.Flags().BoolVar(&runsShowJSON, "json", false, "print the raw JSON result")
	runsCmd.AddCommand(runsShowCmd)
	rootCmd.AddCommand(runsCmd)
}
