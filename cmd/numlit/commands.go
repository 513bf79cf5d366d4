// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bufbuild/numlit/batch"
	"github.com/bufbuild/numlit/classify"
	"github.com/bufbuild/numlit/extract"
	"github.com/bufbuild/numlit/options"
	"github.com/bufbuild/numlit/reporter"
	"github.com/bufbuild/numlit/resolve"
)

// app is the state shared by every subcommand.
type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer
	logger         *slog.Logger

	config  string
	verbose bool
	opts    options.Options
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "numlit",
		Short: "Classify and convert numeric literals",
		Long: `numlit recognizes integer and float literals, reports how they classify,
and converts them with configurable fallbacks.

Configuration comes from a YAML file (--config), overridden by flags.
Flags go before the literals; use "--" if the first literal is negative:

  numlit convert -t int -- -7 12`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.config, "config", "", "YAML options file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug information")
	flags.String("base", "default", `numeric base: "default", "prefix" or 2-36`)
	flags.Bool("underscores", false, "allow underscores between digits")
	flags.Bool("unicode", false, "allow non-ASCII decimal digits")
	flags.Bool("coerce", false, "treat int-like floats as integers")
	flags.String("inf", "allowed", "infinity policy: allowed, disallowed, text_only or numeric_only")
	flags.String("nan", "allowed", "NaN policy: allowed, disallowed, text_only or numeric_only")

	root.AddCommand(a.classifyCommand(), a.convertCommand(), a.statsCommand())
	for _, sub := range root.Commands() {
		// Flags end at the first literal, so "-7" after it is a literal.
		// A leading negative literal needs "--" before it.
		sub.Flags().SetInterspersed(false)
	}
	return root
}

// setup builds the logger and the options, before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

	if a.config != "" {
		opts, err := options.LoadFile(a.config)
		if err != nil {
			return err
		}
		a.opts = opts
		a.logger.Debug("loaded config", slog.String("path", a.config))
	}

	flags := cmd.Flags()
	var errs []error
	if flags.Changed("base") {
		s, _ := flags.GetString("base")
		base, err := options.ParseBase(s)
		errs = append(errs, err)
		a.opts.Base = base
	}
	for name, dst := range map[string]*bool{
		"underscores": &a.opts.AllowUnderscores,
		"unicode":     &a.opts.AllowUnicodeDigits,
		"coerce":      &a.opts.CoerceIntLike,
	} {
		if flags.Changed(name) {
			*dst, _ = flags.GetBool(name)
		}
	}
	for name, dst := range map[string]*options.Allowance{
		"inf": &a.opts.Inf,
		"nan": &a.opts.NaN,
	} {
		if flags.Changed(name) {
			s, _ := flags.GetString(name)
			v, err := options.ParseAllowance(s)
			errs = append(errs, err)
			*dst = v
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	if err := a.opts.Validate(); err != nil {
		return err
	}

	a.logger.Debug("effective options", slog.String("options", a.opts.String()))
	return nil
}

// inputs returns the literals to work on: args, or lines of stdin.
func (a *app) inputs(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var lines []string
	sc := bufio.NewScanner(a.stdin)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

func (a *app) classifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classify [literal...]",
		Short: "Print the classification of each literal",
		RunE: func(cmd *cobra.Command, args []string) error {
			texts, err := a.inputs(args)
			if err != nil {
				return err
			}
			for _, text := range texts {
				e := classify.Evaluate(classify.Text(text), a.opts)
				fmt.Fprintf(a.stdout, "%s\t%v\t%v\n", strconv.Quote(text), e.Flags, e.Kind(a.opts))
			}
			return nil
		},
	}
}

func (a *app) convertCommand() *cobra.Command {
	var (
		target, width string
		actions       = map[string]*string{}
		keepGoing     bool
		parallelism   int
	)

	cmd := &cobra.Command{
		Use:   "convert [literal...]",
		Short: "Convert each literal, printing one value per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := resolve.Resolver{Options: a.opts}
			var err error
			if r.Target, err = resolve.ParseTarget(target); err != nil {
				return err
			}
			if r.Width, err = extract.ParseWidth(width); err != nil {
				return err
			}
			for name, dst := range map[string]*resolve.Action{
				"on-fail":     &r.Actions.OnFail,
				"on-type":     &r.Actions.OnType,
				"on-overflow": &r.Actions.OnOverflow,
				"on-inf":      &r.Actions.OnInf,
				"on-nan":      &r.Actions.OnNaN,
			} {
				if *dst, err = resolve.ParseAction(*actions[name]); err != nil {
					return fmt.Errorf("--%s: %w", name, err)
				}
			}

			texts, err := a.inputs(args)
			if err != nil {
				return err
			}
			inputs := make([]any, len(texts))
			for i, text := range texts {
				inputs[i] = text
			}

			values, err := batch.Map(cmd.Context(), r, inputs, batch.Config{
				Parallelism: parallelism,
				Reporter:    a.reporter(keepGoing),
			})
			for _, v := range values {
				if v == nil {
					v = "-"
				}
				fmt.Fprintln(a.stdout, v)
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&target, "target", "t", "real", "conversion target: int, forceint, float or real")
	flags.StringVarP(&width, "width", "w", "default", "result type, such as int8 or float32")
	flags.BoolVarP(&keepGoing, "keep-going", "k", false, "report every failure instead of stopping at the first")
	flags.IntVarP(&parallelism, "jobs", "j", 0, "number of concurrent workers (0 means one per CPU)")
	for _, name := range []string{"on-fail", "on-type", "on-overflow", "on-inf", "on-nan"} {
		actions[name] = flags.String(name, "raise", `fallback: "raise", "input" or "default=VALUE"`)
	}
	return cmd
}

// reporter logs failures and substitutions. Unless keepGoing is set, the
// first failure aborts the batch.
func (a *app) reporter(keepGoing bool) reporter.Reporter {
	return reporter.NewReporter(
		func(err reporter.ErrorWithIndex) error {
			a.logger.Error("conversion failed", slog.Int("index", err.Index()), slog.Any("error", err.Unwrap()))
			if keepGoing {
				return nil
			}
			return err
		},
		func(err reporter.ErrorWithIndex) {
			a.logger.Warn("value replaced", slog.Int("index", err.Index()), slog.Any("reason", err.Unwrap()))
		},
	)
}

func (a *app) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [literal...]",
		Short: "Print how many literals fall into each classification",
		RunE: func(cmd *cobra.Command, args []string) error {
			texts, err := a.inputs(args)
			if err != nil {
				return err
			}
			inputs := make([]any, len(texts))
			for i, text := range texts {
				inputs[i] = text
			}

			h, err := batch.Tally(cmd.Context(), inputs, a.opts, batch.Config{})
			if err != nil {
				return err
			}
			fmt.Fprint(a.stdout, h)
			a.logger.Debug("tallied", slog.Int("total", h.Total()), slog.Int("distinct", h.Len()))
			return nil
		},
	}
}
