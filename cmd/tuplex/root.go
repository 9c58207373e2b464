// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/tuplex/dsl"
	"github.com/katalvlaran/tuplex/internal/logger"
	"github.com/katalvlaran/tuplex/values"
)

const (
	logFormatFlag = "log-format"
	logLevelFlag  = "log-level"
	fileFlag      = "file"
	defFlag       = "def"
)

// NewRootCommand wires every subcommand to one viper instance. Flags win over
// TUPLEX_* environment variables, which win over tuplex.yaml in the working
// directory or $HOME/.tuplex.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	v.SetConfigName("tuplex")
	v.SetConfigType("yaml")
	v.SetEnvPrefix("TUPLEX")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.tuplex")

	root := &cobra.Command{
		Use:           "tuplex",
		Short:         "Compose combinatorial test data from YAML",
		Long:          "tuplex builds test matrices out of columns, products, diagonals, unions and intersections, and prints their rows.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := v.ReadInConfig(); err != nil {
				var notFound viper.ConfigFileNotFoundError
				if !errors.As(err, &notFound) {
					return fmt.Errorf("reading config: %w", err)
				}
			}

			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String(logFormatFlag, logger.FormatText, "log format: text or json")
	flags.String(logLevelFlag, "warn", "log level: none, debug, info, warn or error")
	mustBindPFlag(v, logFormatFlag, flags.Lookup(logFormatFlag))
	mustBindPFlag(v, logLevelFlag, flags.Lookup(logLevelFlag))

	root.AddCommand(newRenderCommand(v), newCountCommand(v), newVersionCommand())

	return root
}

// mustBindPFlag binds key to flag and panics if the binding fails.
func mustBindPFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic("failed to bind pflag: " + err.Error())
	}
}

// addSourceFlags registers the flags shared by commands that read a document.
func addSourceFlags(v *viper.Viper, cmd *cobra.Command) {
	cmd.Flags().StringP(fileFlag, "f", "", "YAML document to build (- for stdin)")
	cmd.Flags().String(defFlag, "", "build this def instead of the root")
	mustBindPFlag(v, cmd.Name()+"."+fileFlag, cmd.Flags().Lookup(fileFlag))
	mustBindPFlag(v, cmd.Name()+"."+defFlag, cmd.Flags().Lookup(defFlag))
}

func newLogger(v *viper.Viper) (*zap.Logger, error) {
	return logger.NewLogger(v.GetString(logFormatFlag), v.GetString(logLevelFlag))
}

// loadValues reads the document named by the command's --file flag.
func loadValues(v *viper.Viper, cmd *cobra.Command, log *zap.Logger) (values.Values, error) {
	path := v.GetString(cmd.Name() + "." + fileFlag)
	if path == "" {
		return values.Values{}, fmt.Errorf("--%s is required", fileFlag)
	}

	in := cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return values.Values{}, err
		}
		defer f.Close()
		in = f
	}

	doc, err := dsl.Load(in)
	if err != nil {
		return values.Values{}, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("document loaded", zap.String("file", path), zap.Int("defs", len(doc.Defs)))

	var vs values.Values
	if def := v.GetString(cmd.Name() + "." + defFlag); def != "" {
		vs, err = doc.BuildDef(def)
	} else {
		vs, err = doc.Build()
	}
	if err != nil {
		return values.Values{}, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("composition built", zap.Stringer("kind", vs.Kind()), zap.Int("width", vs.Width()))

	return vs, nil
}
