// Package main provides the quadcheck CLI, a command-line front end for the
// quad classifier: feed it four vertex positions (or a YAML batch file) and
// it prints the detected shape name and, optionally, the full property set.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/quad"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd assembles a fresh command tree. Building it per invocation
// keeps flag state out of package globals, which also keeps tests honest.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "quadcheck",
		Short: "Quadcheck names the quadrilateral four vertices form",
		Long: `Quadcheck classifies four-vertex configurations into named
quadrilaterals (square, rectangle, rhombus, kite, ...) using the same
tolerance-aware detection the quad library provides to interactive tools.

Vertices are given in winding order A, B, C, D as "x,y" pairs.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file (default: .quadcheck.yaml in the working directory)")
	root.PersistentFlags().Float64("step", 0, "minimum input position step (overrides config)")
	root.PersistentFlags().String("input", "", "input precision class: precise or device (overrides config)")

	root.AddCommand(newClassifyCmd())
	root.AddCommand(newPropsCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "quadcheck v"+quad.Version)
		},
	}
}
