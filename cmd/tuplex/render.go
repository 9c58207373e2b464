// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tuplex/driver"
	"github.com/katalvlaran/tuplex/values"
)

const (
	formatFlag = "format"
	limitFlag  = "limit"

	formatText  = "text"
	formatTable = "table"
	formatJSON  = "json"
)

func newRenderCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the rows of a composition",
		Long:  "Print the rows of a composition as text lines, an aligned table, or a JSON array of arrays.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render(v, cmd)
		},
	}
	addSourceFlags(v, cmd)
	cmd.Flags().String(formatFlag, formatText, "output format: text, table or json")
	cmd.Flags().Int(limitFlag, 0, "print at most this many rows (0 prints all)")
	mustBindPFlag(v, "render."+formatFlag, cmd.Flags().Lookup(formatFlag))
	mustBindPFlag(v, "render."+limitFlag, cmd.Flags().Lookup(limitFlag))

	return cmd
}

func render(v *viper.Viper, cmd *cobra.Command) error {
	format := v.GetString("render." + formatFlag)
	limit := v.GetInt("render." + limitFlag)
	if limit < 0 {
		return fmt.Errorf("--%s must be ≥ 0, got %d", limitFlag, limit)
	}
	out := cmd.OutOrStdout()

	var emit func(values.Tuple) error
	var flush func() error
	switch format {
	case formatText:
		emit = func(r values.Tuple) error {
			_, err := fmt.Fprintln(out, r)

			return err
		}
		flush = func() error { return nil }
	case formatTable:
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		emit = func(r values.Tuple) error { return writeTableRow(tw, r) }
		flush = tw.Flush
	case formatJSON:
		var rows [][]values.Value
		emit = func(r values.Tuple) error {
			rows = append(rows, []values.Value(r))

			return nil
		}
		flush = func() error {
			if rows == nil {
				rows = [][]values.Value{}
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")

			return enc.Encode(rows)
		}
	default:
		return fmt.Errorf("unknown --%s %q: want text, table or json", formatFlag, format)
	}

	log, err := newLogger(v)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	vs, err := loadValues(v, cmd, log)
	if err != nil {
		return err
	}

	opts := []driver.Option{driver.WithLogger(log), driver.WithFailFast()}
	if limit > 0 {
		opts = append(opts, driver.WithLimit(limit))
	}
	if _, err := driver.Each(vs, emit, opts...); err != nil {
		return err
	}

	return flush()
}

func writeTableRow(w io.Writer, r values.Tuple) error {
	for i, x := range r {
		sep := "\t"
		if i == len(r)-1 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(w, "%v%s", x, sep); err != nil {
			return err
		}
	}
	if len(r) == 0 {
		_, err := fmt.Fprintln(w)

		return err
	}

	return nil
}
