// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/probkit/probdist/dist"
)

// evaluable is the common surface of the univariate catalog needed
// by the eval command.
type evaluable interface {
	dist.Vectorizable
	CDF(float64) float64
	InvCDF(float64) float64
	Mean() float64
	Variance() float64
}

// catalog maps distribution names to default-parameterized
// instances. eval overwrites the parameters from --params via the
// vector codec.
var catalog = map[string]func() evaluable{
	"normal":      func() evaluable { return dist.StdNormal() },
	"lognormal":   func() evaluable { d, _ := dist.NewLogNormalDist(0, 1); return d },
	"exponential": func() evaluable { d, _ := dist.NewExponentialDist(1); return d },
	"uniform":     func() evaluable { d, _ := dist.NewUniformDist(0, 1); return d },
	"laplace":     func() evaluable { d, _ := dist.NewLaplaceDist(0, 1); return d },
	"gamma":       func() evaluable { d, _ := dist.NewGammaDist(1, 1); return d },
	"beta":        func() evaluable { d, _ := dist.NewBetaDist(1, 1); return d },
	"weibull":     func() evaluable { d, _ := dist.NewWeibullDist(1, 1); return d },
	"studentt":    func() evaluable { d, _ := dist.NewTDist(1); return d },
	"cauchy":      func() evaluable { d, _ := dist.NewCauchyDist(0, 1); return d },
	"bernoulli":   func() evaluable { d, _ := dist.NewBernoulliDist(0.5); return d },
	"binomial":    func() evaluable { d, _ := dist.NewBinomialDist(1, 0.5); return d },
	"poisson":     func() evaluable { d, _ := dist.NewPoissonDist(1); return d },
	"geometric":   func() evaluable { d, _ := dist.NewGeometricDist(0.5); return d },
}

func catalogNames() string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func newEvalCmd() *cobra.Command {
	var params, at []float64
	var fn string

	cmd := &cobra.Command{
		Use:   "eval <distribution>",
		Short: "evaluate a catalog distribution at the given points",
		Long: "Evaluate a catalog distribution at the given points.\n\n" +
			"Known distributions: " + catalogNames() + ".\n" +
			"--params is the distribution's parameter vector, e.g.\n" +
			"eval normal --params 0,1 --at 1.96 --fn cdf",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mk, ok := catalog[args[0]]
			if !ok {
				return errors.Errorf("unknown distribution %q (know %s)", args[0], catalogNames())
			}
			d := mk()
			if params != nil {
				if err := d.FromVector(params); err != nil {
					return err
				}
			}
			if len(at) == 0 {
				return errors.New("no evaluation points; use --at")
			}

			var eval func(float64) float64
			switch fn {
			case "pdf", "pmf":
				eval = densityOf(d)
			case "cdf":
				eval = d.CDF
			case "quantile":
				eval = d.InvCDF
			default:
				return errors.Errorf("unknown function %q, want pdf, pmf, cdf, or quantile", fn)
			}

			fmt.Printf("%s %v  mean %.6g  variance %.6g\n\n",
				args[0], d.ToVector(), d.Mean(), d.Variance())
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"x", fn})
			for _, x := range at {
				table.Append([]string{fmt.Sprintf("%g", x), fmt.Sprintf("%.9g", eval(x))})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&params, "params", nil, "parameter vector of the distribution")
	cmd.Flags().Float64SliceVar(&at, "at", nil, "points to evaluate at")
	cmd.Flags().StringVar(&fn, "fn", "pdf", "function to evaluate: pdf, pmf, cdf, or quantile")
	return cmd
}

// densityOf returns the mass function of a discrete distribution or
// the density function of a continuous one.
func densityOf(d evaluable) func(float64) float64 {
	switch v := d.(type) {
	case dist.Discrete:
		return v.PMF
	case dist.Continuous:
		return v.PDF
	}
	panic(fmt.Sprintf("distribution %T has no density", d))
}
