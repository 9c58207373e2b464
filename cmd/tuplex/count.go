// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func newCountCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Print the number of rows of a composition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger(v)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			vs, err := loadValues(v, cmd, log)
			if err != nil {
				return err
			}
			n, err := vs.Len()
			if err != nil {
				return err
			}
			log.Info("counted", zap.Int("rows", n))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), n)

			return err
		},
	}
	addSourceFlags(v, cmd)

	return cmd
}
