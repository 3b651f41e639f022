// Copyright 2024 The Probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// newDescribeCmd reads newline-separated numbers from stdin and
// describes their distribution.
func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "read numbers from stdin and describe their distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := stdinSample()
			if err != nil {
				return err
			}
			s.Sort()

			fmt.Printf("N %d  sum %.6g  mean %.6g", len(s.Xs), s.Sum(), s.Mean())
			gmean := s.GeoMean()
			if !math.IsNaN(gmean) {
				fmt.Printf("  gmean %.6g", gmean)
			}
			fmt.Printf("  std dev %.6g  variance %.6g\n\n", s.StdDev(), s.Variance())

			// Quartiles and tails.
			labels := map[int]string{0: "min", 50: "median", 100: "max"}
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"quantile", "value"})
			for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
				label, ok := labels[p]
				if !ok {
					label = fmt.Sprintf("%d%%ile", p)
				}
				table.Append([]string{label, fmt.Sprintf("%.6g", s.Quantile(float64(p) / 100))})
			}
			table.Render()
			return nil
		},
	}
}
