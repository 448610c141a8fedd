package main

import (
	"fmt"
	"log/slog"

	"github.com/averch/qhobound"
	"github.com/averch/qhobound/bigfloat"
	"github.com/spf13/cobra"
)

var (
	boundP      int
	boundTau    string
	boundDigits uint
)

var boundCmd = &cobra.Command{
	Use:   "bound",
	Short: "Compute the boundary-variance lower bound L(p, tau)",
	RunE:  runBound,
}

func init() {
	boundCmd.Flags().IntVar(&boundP, "p", 1, "Stencil half-width (p >= 1)")
	boundCmd.Flags().StringVar(&boundTau, "tau", "", "Sampling interval (required, > 0)")
	boundCmd.Flags().UintVar(&boundDigits, "digits", qhobound.DefaultDigits, "Decimal working precision")

	boundCmd.MarkFlagRequired("tau")
	rootCmd.AddCommand(boundCmd)
}

func runBound(cmd *cobra.Command, args []string) error {
	ctx := bigfloat.NewContext(boundDigits)
	tau, err := ctx.Parse(boundTau)
	if err != nil {
		return fmt.Errorf("parsing --tau: %w", err)
	}

	slog.Debug("computing bound", "p", boundP, "tau", boundTau, "digits", boundDigits)
	l, err := qhobound.LowerBound(boundP, tau, boundDigits)
	if err != nil {
		return fmt.Errorf("computing bound: %w", err)
	}

	fmt.Printf("L(%d, %s) = %s\n", boundP, boundTau, l.Text('g', int(boundDigits)))
	return nil
}
