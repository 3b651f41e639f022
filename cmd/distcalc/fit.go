// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/probkit/probdist/dist"
	"github.com/probkit/probdist/fit"
)

func newFitCmd() *cobra.Command {
	var components int
	var maxIter int

	cmd := &cobra.Command{
		Use:   "fit <model>",
		Short: "fit a distribution to numbers read from stdin",
		Long: "Fit a distribution to newline-separated numbers from stdin.\n\n" +
			"Models: normal, lognormal, exponential, laplace, uniform,\n" +
			"gamma, beta, poisson, geometric, mixture.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := stdinSample()
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"parameter", "value"})
			row := func(name string, v float64) {
				table.Append([]string{name, fmt.Sprintf("%.9g", v)})
			}

			switch args[0] {
			case "normal":
				d, err := fit.Normal(s)
				if err != nil {
					return err
				}
				row("mu", d.Mu())
				row("sigma", d.Sigma())
			case "lognormal":
				d, err := fit.LogNormal(s)
				if err != nil {
					return err
				}
				row("mu", d.Mu())
				row("sigma", d.Sigma())
			case "exponential":
				d, err := fit.Exponential(s)
				if err != nil {
					return err
				}
				row("rate", d.Rate())
			case "laplace":
				d, err := fit.Laplace(s)
				if err != nil {
					return err
				}
				row("mu", d.Mu())
				row("b", d.B())
			case "uniform":
				d, err := fit.Uniform(s)
				if err != nil {
					return err
				}
				row("min", d.Min())
				row("max", d.Max())
			case "gamma":
				d, err := fit.Gamma(s)
				if err != nil {
					return err
				}
				row("shape", d.Shape())
				row("rate", d.Rate())
			case "beta":
				d, err := fit.Beta(s)
				if err != nil {
					return err
				}
				row("alpha", d.Alpha())
				row("beta", d.Beta())
			case "poisson":
				d, err := fit.Poisson(s)
				if err != nil {
					return err
				}
				row("lambda", d.Lambda())
			case "geometric":
				d, err := fit.Geometric(s)
				if err != nil {
					return err
				}
				row("p", d.P())
			case "mixture":
				m, logLik, err := fit.NormalMixture(s, components, fit.EMConfig{
					MaxIter: maxIter,
					Progress: func(iter int, ll float64) {
						logrus.WithFields(logrus.Fields{
							"iter":   iter,
							"loglik": ll,
						}).Debug("em iteration")
					},
				})
				if err != nil {
					return err
				}
				for i, w := range m.Weights() {
					c := m.Component(i).(*dist.NormalDist)
					row(fmt.Sprintf("weight %d", i), w)
					row(fmt.Sprintf("mu %d", i), c.Mu())
					row(fmt.Sprintf("sigma %d", i), c.Sigma())
				}
				row("log-likelihood", logLik)
			default:
				return errors.Errorf("unknown model %q", args[0])
			}

			table.Render()
			return nil
		},
	}
	cmd.Flags().IntVarP(&components, "components", "k", 2, "mixture component count")
	cmd.Flags().IntVar(&maxIter, "max-iter", 0, "cap on EM iterations (0 = default)")
	return cmd
}
