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

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"akhil.cc/tinytext/format"
	"akhil.cc/tinytext/gen/html"
	"akhil.cc/tinytext/parser"
	"github.com/dustin/go-humanize"
	sq "github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
)

func (a *app) htmlCmd() *cobra.Command {
	var outputfile string
	prefixHTML := "(HTML) "
	htmlCmd := &cobra.Command{
		Use:   "html [input] [-o output]",
		Short: "HTML output generator for tiny markup source",
		Long: `This command converts tiny markup to HTML.
Text inside code spans is escaped and never scanned for links.
[text](url) and <url> become nofollow anchors. Everything else
is escaped, so the output can be placed into a page as is.

If no input file is specified, input is read from
standard input. Similarly, if no output argument is
specified, output is written to standard output.`,
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src := cmd.InOrStdin()
			if len(args) != 0 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return prefix(prefixHTML, err)
				}
				defer f.Close()
				src = f
			}
			out := cmd.OutOrStdout()
			if len(outputfile) != 0 {
				f, err := os.Create(outputfile)
				if err != nil {
					return prefix(prefixHTML, err)
				}
				defer f.Close()
				out = f
			}
			text, err := parser.Parse(src)
			if err != nil {
				return prefix(prefixHTML, err)
			}
			a.log.Debug("parsed markup", "tokens", len(text.List))
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if timeout := a.v.GetDuration("timeout"); timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			g := html.GenContext(ctx, text)
			g.Stdout = out
			if err := g.Run(); err != nil {
				return prefix(prefixHTML, err)
			}
			return nil
		},
	}
	flagErrors(htmlCmd, prefixHTML)
	// pflag includes the argument type when it unquotes its usage.
	// To prevent this behavior we prefix the usage with backquotes ``.
	htmlCmd.Flags().StringVarP(&outputfile, "output", "o", "", "``name of the output file")
	htmlCmd.Flags().DurationP("timeout", "t", 0, "``timeout used to halt generation")
	a.bind(htmlCmd.Flags(), "timeout")
	return htmlCmd
}

func (a *app) formatCmd() *cobra.Command {
	var strs bool
	prefixFormat := "(FORMAT) "
	formatCmd := &cobra.Command{
		Use:   "format TEMPLATE [ARG...]",
		Short: "Format arguments with a printf-style template",
		Long: `This command prints its arguments formatted by TEMPLATE.
TEMPLATE takes %s, %d and %f directives with an optional
N$ argument index, the -, + and 0 flags, a width and a precision.
Malformed directives are printed as they are.

Arguments that look like integers or decimal numbers are passed
as numbers unless --strings is given.

If TEMPLATE is "-", lines are read from standard input. Each line
is split according to the Bourne shell's word-splitting rules; the
first word is the template and the rest are its arguments.`,
		Args:                  cobra.MinimumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if args[0] == "-" && len(args) == 1 {
				if err := a.formatLines(cmd.InOrStdin(), out, strs); err != nil {
					return prefix(prefixFormat, err)
				}
				return nil
			}
			fmt.Fprintln(out, format.Format(args[0], toArgs(args[1:], strs)...))
			return nil
		},
	}
	flagErrors(formatCmd, prefixFormat)
	formatCmd.Flags().BoolVarP(&strs, "strings", "S", false, "pass every argument as a string")
	return formatCmd
}

// formatLines formats each line of r as a shell-quoted template and
// arguments, writing one result line to w per input line.
func (a *app) formatLines(r io.Reader, w io.Writer, strs bool) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		words, err := sq.Split(sc.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
		if len(words) == 0 {
			a.log.Debug("skipping empty line", "line", n)
			continue
		}
		if _, err := fmt.Fprintln(w, format.Format(words[0], toArgs(words[1:], strs)...)); err != nil {
			return err
		}
	}
	return sc.Err()
}

func toArgs(words []string, strs bool) []format.Arg {
	args := make([]format.Arg, len(words))
	for i, w := range words {
		if strs {
			args[i] = format.Str(w)
		} else {
			args[i] = format.Guess(w)
		}
	}
	return args
}

func (a *app) sizeCmd() *cobra.Command {
	var verbose bool
	prefixSize := "(SIZE) "
	sizeCmd := &cobra.Command{
		Use:   "size BYTES...",
		Short: "Format byte counts",
		Long: `This command prints each byte count scaled to B, KB, MB, GB or TB,
with at most two fraction digits.`,
		Args:                  cobra.MinimumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				n, err := format.ParseInt(arg)
				if err != nil {
					return prefix(prefixSize, err)
				}
				if verbose {
					fmt.Fprintf(out, "%s\t%s bytes\n", format.Size(int64(n)), humanize.Comma(int64(n)))
				} else {
					fmt.Fprintln(out, format.Size(int64(n)))
				}
			}
			return nil
		},
	}
	flagErrors(sizeCmd, prefixSize)
	sizeCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print the exact count")
	return sizeCmd
}

func (a *app) durationCmd() *cobra.Command {
	prefixDuration := "(DURATION) "
	durationCmd := &cobra.Command{
		Use:   "duration MS... [-p precision]",
		Short: "Format durations given in milliseconds",
		Long: `This command prints each duration scaled to ms, s, min, h or d.
A duration is a number of milliseconds or a Go duration such as 1h30m.`,
		Args:                  cobra.MinimumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			precision := a.v.GetInt("precision")
			for _, arg := range args {
				ms, err := parseMillis(arg)
				if err != nil {
					return prefix(prefixDuration, err)
				}
				fmt.Fprintln(out, format.TimestampN(ms, precision))
			}
			return nil
		},
	}
	flagErrors(durationCmd, prefixDuration)
	durationCmd.Flags().IntP("precision", "p", 2, "``number of fraction digits")
	a.bind(durationCmd.Flags(), "precision")
	return durationCmd
}

func parseMillis(s string) (float64, error) {
	if ms, err := strconv.ParseFloat(s, 64); err == nil {
		return ms, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return float64(d) / float64(time.Millisecond), nil
}
