package main

import (
	"fmt"
	"log/slog"

	"github.com/averch/qhobound"
	"github.com/averch/qhobound/bigfloat"
	"github.com/averch/qhobound/expr"
	"github.com/spf13/cobra"
)

var (
	boundaryP      int
	boundaryTau    string
	boundarySymbol string
	boundaryDigits uint
	boundaryLatex  bool
)

var boundaryCmd = &cobra.Command{
	Use:   "boundary",
	Short: "Print the boundary weight and phase sequences",
	Long: `Prints the per-position boundary variance coefficients: the squared
weight sequence a[i] and the squared phase sequence b[i].

Without --tau the phases are printed symbolically in the sampling-interval
symbol; with --tau both sequences are evaluated numerically at the given
decimal precision.`,
	RunE: runBoundary,
}

func init() {
	boundaryCmd.Flags().IntVar(&boundaryP, "p", 1, "Stencil half-width (p >= 1)")
	boundaryCmd.Flags().StringVar(&boundaryTau, "tau", "", "Sampling interval; empty keeps tau symbolic")
	boundaryCmd.Flags().StringVar(&boundarySymbol, "symbol", "tau", "Name of the sampling-interval symbol")
	boundaryCmd.Flags().UintVar(&boundaryDigits, "digits", qhobound.DefaultDigits, "Decimal working precision")
	boundaryCmd.Flags().BoolVar(&boundaryLatex, "latex", false, "Render symbolic output as LaTeX")
	rootCmd.AddCommand(boundaryCmd)
}

func runBoundary(cmd *cobra.Command, args []string) error {
	if boundaryTau == "" {
		weights, phases, err := qhobound.BoundaryCoefficients(boundaryP, expr.Symbol(boundarySymbol))
		if err != nil {
			return fmt.Errorf("building boundary coefficients: %w", err)
		}
		for i := range weights {
			fmt.Printf("a[%d] = %s\n", i+1, weights[i].RatString())
		}
		for i, b := range phases {
			if boundaryLatex {
				fmt.Printf("b[%d] = %s\n", i+1, b.LaTeX())
			} else {
				fmt.Printf("b[%d] = %s\n", i+1, b)
			}
		}
		return nil
	}

	ctx := bigfloat.NewContext(boundaryDigits)
	tau, err := ctx.Parse(boundaryTau)
	if err != nil {
		return fmt.Errorf("parsing --tau: %w", err)
	}
	slog.Debug("numeric boundary coefficients", "p", boundaryP, "tau", boundaryTau, "digits", boundaryDigits)

	weights, phases, err := qhobound.NumericBoundaryCoefficients(boundaryP, tau, boundaryDigits)
	if err != nil {
		return fmt.Errorf("building boundary coefficients: %w", err)
	}
	for i := range weights {
		fmt.Printf("a[%d] = %s\n", i+1, weights[i].Text('g', int(boundaryDigits)))
	}
	for i := range phases {
		fmt.Printf("b[%d] = %s\n", i+1, phases[i].Text('g', int(boundaryDigits)))
	}
	return nil
}
