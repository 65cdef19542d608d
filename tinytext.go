// MIT License

// Copyright (c) 2018 Akhil Indurti

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// This CLI utility runs the text helpers used by the plugin catalog:
// the tiny markup renderer, the printf-style formatter and the size and
// duration formatters.
//
// Usage:
//   tinytext [command]
//
// Available Commands:
//   duration    Format durations given in milliseconds
//   format      Format arguments with a printf-style template
//   help        Help about any command
//   html        HTML output generator for tiny markup source
//   size        Format byte counts
//
// Flags:
//       --config      config file (default is .tinytext.yaml)
//   -h, --help        help for tinytext
//       --log-level   log level (debug, info, warn, error)
//
// Use "tinytext [command] --help" for more information about a command.
//
// Settings may also come from the config file or from TINYTEXT_*
// environment variables, for example TINYTEXT_LOG_LEVEL=debug.
package main

import (
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func prefix(msg string, err error) error {
	return errors.New(msg + err.Error())
}

// app carries the state shared by all commands.
type app struct {
	cfgFile string
	v       *viper.Viper
	log     *slog.Logger
}

func newApp() *app {
	return &app{
		v:   viper.New(),
		log: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
	}
}

func newRootCmd() *cobra.Command {
	a := newApp()
	rootCmd := &cobra.Command{
		Use:   "tinytext",
		Short: "text helpers for plugin descriptions and metadata",
		Long: `This CLI utility runs the text helpers used by the plugin catalog:
the tiny markup renderer, the printf-style formatter and the size and
duration formatters.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "``config file (default is .tinytext.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "``log level (debug, info, warn, error)")
	a.bind(rootCmd.PersistentFlags(), "log-level")

	rootCmd.AddCommand(a.htmlCmd(), a.formatCmd(), a.sizeCmd(), a.durationCmd())
	return rootCmd
}

// init loads the configuration and sets up logging for cmd.
func (a *app) init(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigName(".tinytext")
		a.v.SetConfigType("yaml")
	}
	a.v.SetEnvPrefix("TINYTEXT")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return prefix("(CONFIG) ", err)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.v.GetString("log-level"))); err != nil {
		return prefix("(CONFIG) ", err)
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug("loaded config", "file", used)
	}
	return nil
}

// flagErrors makes cmd report flag errors with the same prefix as its
// other errors.
func flagErrors(cmd *cobra.Command, tag string) {
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if err != nil {
			return prefix(tag, err)
		}
		return nil
	})
}

// bind binds the named flags of fs to config keys of the same names.
// It panics if fs has no flag of one of the names.
func (a *app) bind(fs *pflag.FlagSet, names ...string) {
	for _, name := range names {
		if err := a.v.BindPFlag(name, fs.Lookup(name)); err != nil {
			panic("bind " + name + ": " + err.Error())
		}
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
