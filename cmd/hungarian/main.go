// Command hungarian is a demo harness for the matching engine: it solves a
// random or stdin-supplied assignment problem and prints the cost table
// with the optimal assignment highlighted.
//
// Usage:
//
//	hungarian            solve a random 10×15 table with values in 0..63
//	hungarian n m        read n·m integers row-major from stdin and solve
//
// The argument-count boundary is deliberate: zero args means random mode,
// exactly two args means stdin mode, anything else is a usage error.
package main

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hungarian/kuhn"
	"github.com/katalvlaran/hungarian/render"
	"github.com/katalvlaran/hungarian/table"
)

const (
	defaultRows    = 10
	defaultCols    = 15
	maxRandomValue = 63
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		seed     int64
		maximize bool
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "hungarian [n m]",
		Short: "Solve an assignment problem with the Hungarian algorithm",
		Long: "With no arguments, generates a random 10x15 cost table (values 0..63)\n" +
			"and solves it. With exactly two arguments n and m, reads n*m integers\n" +
			"row-major from stdin instead.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("expected zero or two arguments, got %d", len(args))
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, seed, maximize, verbose)
		},
		SilenceUsage: true,
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for random tables (0 = fresh entropy)")
	cmd.Flags().BoolVar(&maximize, "max", false, "maximize total cost instead of minimizing")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log solver diagnostics to stderr")

	return cmd
}

func run(args []string, seed int64, maximize, verbose bool) error {
	logger := zap.NewNop()
	if verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		logger = dev
		defer func() { _ = logger.Sync() }()
	}

	tab, err := loadTable(args, seed, logger)
	if err != nil {
		return err
	}

	fmt.Println("\nInput:")
	fmt.Println(render.Matrix(tab, nil, render.DefaultOptions()))

	var opts []kuhn.Option
	if maximize {
		opts = append(opts, kuhn.WithMaximize())
	}

	// Default copy mode keeps tab pristine for the output view and the sum.
	start := time.Now()
	pairs, err := kuhn.Match(tab, opts...)
	if err != nil {
		return err
	}
	logger.Info("solved",
		zap.Int("rows", len(tab)),
		zap.Int("cols", len(tab[0])),
		zap.Bool("maximize", maximize),
		zap.Duration("elapsed", time.Since(start)),
	)

	fmt.Println("Output:")
	fmt.Println(render.Matrix(tab, pairs, render.DefaultOptions()))
	fmt.Printf("\nSum: %d\n", kuhn.Total(tab, pairs))

	return nil
}

func loadTable(args []string, seed int64, logger *zap.Logger) ([][]kuhn.Cell, error) {
	if len(args) == 2 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("rows: %w", err)
		}
		m, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("cols: %w", err)
		}
		logger.Info("reading table from stdin", zap.Int("rows", n), zap.Int("cols", m))

		return table.Read(os.Stdin, n, m)
	}

	if seed == 0 {
		seed = entropySeed()
	}
	logger.Info("generating random table", zap.Int64("seed", seed))

	return table.Random(defaultRows, defaultCols, maxRandomValue, seed)
}

// entropySeed draws a one-shot seed from the OS entropy pool, falling back
// to the clock if that fails.
func entropySeed() int64 {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}

	return int64(binary.LittleEndian.Uint64(b[:]))
}
