// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// distcalc describes data samples and evaluates and fits the
// distributions of the catalog.
package main

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/probkit/probdist/fit"
)

var verbose bool

func main() {
	root := &cobra.Command{
		Use:           "distcalc",
		Short:         "describe, evaluate, and fit probability distributions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log fitting diagnostics")
	root.AddCommand(newDescribeCmd(), newEvalCmd(), newFitCmd())

	if err := root.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

// readInput reads newline-separated numbers from r into a sample.
func readInput(r io.Reader) (fit.Sample, error) {
	var s fit.Sample
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := scanner.Text()
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return s, errors.Wrapf(err, "bad input line %q", l)
		}
		s.Xs = append(s.Xs, value)
	}
	if err := scanner.Err(); err != nil {
		return s, errors.Wrap(err, "reading input")
	}
	if len(s.Xs) == 0 {
		return s, errors.New("no input values")
	}
	return s, nil
}

func stdinSample() (fit.Sample, error) {
	return readInput(os.Stdin)
}
