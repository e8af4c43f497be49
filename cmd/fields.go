package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List registered field definitions and keyword synonyms",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := cfg.FieldRegistry()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tCATEGORY\tKEYWORDS")
		for _, f := range reg.Fields {
			fmt.Fprintf(w, "%s\t%s\t%s\n", f.Key, f.Category, strings.Join(f.Keywords, ", "))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
}
