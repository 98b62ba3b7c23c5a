package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/quad"
)

func newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Name the quadrilateral the given vertices form",
		Long: `Classify four vertices into the most specific named quadrilateral.

Vertices are "x,y" pairs in winding order:

	quadcheck classify --a 0,0 --b 1,0 --c 1,1 --d 0,1

or a YAML batch file of labeled vertex sets:

	quadcheck classify --file quads.yaml`,
		RunE: runClassify,
	}

	addVertexFlags(cmd)
	cmd.Flags().String("file", "", "YAML batch file of labeled vertex sets")
	cmd.Flags().BoolP("verbose", "v", false, "also print detected properties with deviations")
	return cmd
}

func newPropsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "props",
		Short: "Print the detected property set for the given vertices",
		RunE:  runProps,
	}
	addVertexFlags(cmd)
	return cmd
}

func addVertexFlags(cmd *cobra.Command) {
	cmd.Flags().String("a", "", "vertex A as x,y")
	cmd.Flags().String("b", "", "vertex B as x,y")
	cmd.Flags().String("c", "", "vertex C as x,y")
	cmd.Flags().String("d", "", "vertex D as x,y")
}

func runClassify(cmd *cobra.Command, args []string) error {
	tol, err := loadTolerances(cmd)
	if err != nil {
		return err
	}

	if file, _ := cmd.Flags().GetString("file"); file != "" {
		return classifyBatch(cmd, file, tol)
	}

	pts, err := vertexFlags(cmd)
	if err != nil {
		return err
	}

	res, err := quad.Classify(pts, tol)
	if err != nil {
		return fmt.Errorf("classify: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Shape)

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		printProperties(cmd, res)
	}
	return nil
}

func runProps(cmd *cobra.Command, args []string) error {
	tol, err := loadTolerances(cmd)
	if err != nil {
		return err
	}

	pts, err := vertexFlags(cmd)
	if err != nil {
		return err
	}

	res, err := quad.Classify(pts, tol)
	if err != nil {
		return fmt.Errorf("classify: %w", err)
	}

	printProperties(cmd, res)
	return nil
}

// printProperties writes one line per detected property with its raw
// deviation, degrees for angle facts and coordinate units for length facts.
func printProperties(cmd *cobra.Command, res quad.Result) {
	for _, p := range res.Properties.List() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (deviation %.4g)\n", p, res.Properties.Deviation(p))
	}
}

// vertexFlags reads the four --a/--b/--c/--d flags.
func vertexFlags(cmd *cobra.Command) ([4]quad.Point, error) {
	var pts [4]quad.Point
	for i, name := range []string{"a", "b", "c", "d"} {
		raw, _ := cmd.Flags().GetString(name)
		if raw == "" {
			return pts, fmt.Errorf("missing vertex --%s (or use --file)", name)
		}
		p, err := parsePoint(raw)
		if err != nil {
			return pts, fmt.Errorf("vertex --%s: %w", name, err)
		}
		pts[i] = p
	}
	return pts, nil
}

// parsePoint parses an "x,y" pair.
func parsePoint(s string) (quad.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return quad.Point{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return quad.Point{}, fmt.Errorf("bad x coordinate %q", parts[0])
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return quad.Point{}, fmt.Errorf("bad y coordinate %q", parts[1])
	}
	return quad.Pt(x, y), nil
}
