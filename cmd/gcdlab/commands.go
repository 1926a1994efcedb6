package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gcdlab/analyzer"
	"github.com/katalvlaran/gcdlab/gcd"
)

var (
	// overflowMode is the global --overflow flag: "reject" (default)
	// or "reference", mirroring gcd.OverflowPolicy.
	overflowMode string

	// benchIterations is the -i/--iterations flag of `benchmark`.
	benchIterations uint64
)

var (
	rootCmd = &cobra.Command{
		Use:           "gcdlab",
		Short:         "Compute, compare and benchmark GCD algorithms",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	executeCmd = &cobra.Command{
		Use:   "execute <variant> <a> <b>",
		Short: "Run one GCD variant on a pair of operands",
		Args:  cobra.ExactArgs(3),
		RunE:  runExecute,
	}

	compareCmd = &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Run every variant and check cross-variant agreement",
		Args:  cobra.ExactArgs(2),
		RunE:  runCompare,
	}

	extendedCmd = &cobra.Command{
		Use:   "extended <a> <b>",
		Short: "Extended Euclid: gcd plus Bézout coefficients",
		Args:  cobra.ExactArgs(2),
		RunE:  runExtended,
	}

	fastestCmd = &cobra.Command{
		Use:   "fastest <a> <b>",
		Short: "Find the variant with the lowest elapsed time",
		Args:  cobra.ExactArgs(2),
		RunE:  runFastest,
	}

	benchmarkCmd = &cobra.Command{
		Use:   "benchmark <a> <b>",
		Short: "Average each variant's runtime over N repetitions",
		Args:  cobra.ExactArgs(2),
		RunE:  runBenchmark,
	}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List the registered variants",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&overflowMode, "overflow", "reject",
		"math.MinInt64 policy: reject | reference")
	benchmarkCmd.Flags().Uint64VarP(&benchIterations, "iterations", "i", 1000,
		"repetitions per variant")

	rootCmd.AddCommand(executeCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(extendedCmd)
	rootCmd.AddCommand(fastestCmd)
	rootCmd.AddCommand(benchmarkCmd)
	rootCmd.AddCommand(listCmd)
}

// gcdOptions translates the global flags into gcd options.
func gcdOptions() ([]gcd.Option, error) {
	switch overflowMode {
	case "reject":
		return nil, nil
	case "reference":
		return []gcd.Option{gcd.WithOverflowPolicy(gcd.ReferenceOnMinInt64)}, nil
	default:
		return nil, fmt.Errorf("unknown --overflow mode %q (want reject or reference)", overflowMode)
	}
}

// parseOperands converts two decimal argument strings into int64s.
func parseOperands(args []string) (int64, int64, error) {
	a, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("operand %q is not a 64-bit integer", args[0])
	}
	b, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("operand %q is not a 64-bit integer", args[1])
	}

	return a, b, nil
}

func runExecute(cmd *cobra.Command, args []string) error {
	opts, err := gcdOptions()
	if err != nil {
		return err
	}
	a, b, err := parseOperands(args[1:])
	if err != nil {
		return err
	}

	res, err := gcd.ComputeByName(args[0], a, b, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", res.Status, err)
	}

	fmt.Printf("gcd(%d, %d) = %d  [%v, %d iterations]\n", a, b, res.Value, res.Duration, res.Iterations)

	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	opts, err := gcdOptions()
	if err != nil {
		return err
	}
	a, b, err := parseOperands(args)
	if err != nil {
		return err
	}

	cmp := analyzer.New(opts...).CompareAll(a, b)
	for _, r := range cmp.Results {
		if r.Result.Valid {
			fmt.Printf("%-22s %12d  %12v\n", r.Variant.DisplayName(), r.Result.Value, r.Result.Duration)
		} else {
			fmt.Printf("%-22s %12s  (%s)\n", r.Variant.DisplayName(), "-", r.Result.Status)
		}
	}
	if !cmp.Consistent {
		return fmt.Errorf("variants disagree for gcd(%d, %d)", a, b)
	}
	fmt.Println("consistent: true")

	return nil
}

func runExtended(cmd *cobra.Command, args []string) error {
	opts, err := gcdOptions()
	if err != nil {
		return err
	}
	a, b, err := parseOperands(args)
	if err != nil {
		return err
	}

	ext, err := gcd.Extended(a, b, opts...)
	if err != nil {
		return fmt.Errorf("extended gcd failed: %w", err)
	}

	fmt.Printf("gcd(%d, %d) = %d\n", a, b, ext.Gcd)
	fmt.Printf("%d·(%d) + %d·(%d) = %d\n", a, ext.X, b, ext.Y, ext.Gcd)

	return nil
}

func runFastest(cmd *cobra.Command, args []string) error {
	opts, err := gcdOptions()
	if err != nil {
		return err
	}
	a, b, err := parseOperands(args)
	if err != nil {
		return err
	}

	v, elapsed, err := analyzer.New(opts...).FindFastest(a, b)
	if err != nil {
		return err
	}

	fmt.Printf("fastest: %s (%v)\n", v.DisplayName(), elapsed)

	return nil
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	opts, err := gcdOptions()
	if err != nil {
		return err
	}
	a, b, err := parseOperands(args)
	if err != nil {
		return err
	}

	results, err := analyzer.New(opts...).Benchmark(a, b, benchIterations)
	if err != nil {
		return err
	}

	fmt.Printf("benchmark gcd(%d, %d), %d iterations per variant:\n", a, b, benchIterations)
	for _, r := range results {
		fmt.Printf("%-22s avg %12v  (%d/%d successful)\n",
			r.Variant.DisplayName(), r.AvgDuration, r.SuccessfulRuns, r.TotalRuns)
	}

	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	for _, v := range gcd.Variants() {
		fmt.Printf("%-22s %s\n", v.String(), v.DisplayName())
	}

	return nil
}
