// Package main provides the salp CLI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/salp-ml/salp/backend/cpu"
	"github.com/salp-ml/salp/tensor"
)

const version = "v0.1.0-dev"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	os.Exit(run(os.Args[1:], os.Stdout, logger))
}

// run executes one subcommand and returns the process exit code. User output
// goes to stdout; every diagnostic goes through logger.
func run(args []string, stdout io.Writer, logger *slog.Logger) int {
	if len(args) < 1 {
		usage(stdout)
		return 0
	}

	var err error
	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "salp %s\n", version)
	case "info":
		info(stdout)
	case "verify":
		err = verify(args[1:], stdout)
	default:
		logger.Error("unknown command", "command", args[0])
		usage(stdout)
		return 2
	}

	switch {
	case errors.Is(err, flag.ErrHelp):
		return 0
	case err != nil:
		logger.Error("command failed", "command", args[0], "error", err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "salp - N-dimensional tensors for Go")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  info       Show CPU backend settings")
	fmt.Fprintln(w, "  verify     Check sequential and parallel execution agree")
}

func info(w io.Writer) {
	backend := cpu.New[float64]()
	cfg := backend.Config()
	fmt.Fprintf(w, "backend:   %s\n", backend.Name())
	fmt.Fprintf(w, "device:    %s\n", backend.Device())
	fmt.Fprintf(w, "parallel:  %t\n", cfg.Enabled)
	fmt.Fprintf(w, "workers:   %d\n", cfg.NumWorkers)
	fmt.Fprintf(w, "threshold: %d elements\n", cfg.Threshold)
}

func verify(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	// Flag usage is user output; parse errors are returned and logged by run.
	fs.SetOutput(w)
	n := fs.Int("n", 4*cpu.MinLengthForParallelism, "number of elements")
	workers := fs.Int("workers", 0, "parallel workers (0 = number of CPUs)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := cpu.DefaultConfig()
	cfg.Enabled = true
	if *workers > 0 {
		cfg.NumWorkers = *workers
	}
	seq := cpu.NewWithConfig[float64](cpu.SequentialConfig())
	par := cpu.NewWithConfig[float64](cfg)

	a, err := tensor.Arange[float64](0, float64(*n))
	if err != nil {
		return fmt.Errorf("create operand: %w", err)
	}
	b, err := tensor.Full[float64](tensor.Shape{*n}, 3)
	if err != nil {
		return fmt.Errorf("create operand: %w", err)
	}

	f := func(x float64) float64 { return x*x - 1 }
	g := func(x, y float64) float64 { return x/y + y }

	checks := []struct {
		name string
		run  func(backend *cpu.Backend[float64]) (*tensor.Tensor[float64], error)
	}{
		{"map", func(backend *cpu.Backend[float64]) (*tensor.Tensor[float64], error) {
			return backend.Map(a, f), nil
		}},
		{"zip", func(backend *cpu.Backend[float64]) (*tensor.Tensor[float64], error) {
			return backend.Zip(a, b, g)
		}},
		{"multiply", func(backend *cpu.Backend[float64]) (*tensor.Tensor[float64], error) {
			return backend.Multiply(a, b)
		}},
	}

	for _, c := range checks {
		start := time.Now()
		want, err := c.run(seq)
		if err != nil {
			return fmt.Errorf("%s (sequential): %w", c.name, err)
		}
		seqTime := time.Since(start)

		start = time.Now()
		got, err := c.run(par)
		if err != nil {
			return fmt.Errorf("%s (parallel): %w", c.name, err)
		}
		parTime := time.Since(start)

		if !seq.Equal(want, got) {
			return fmt.Errorf("%s: parallel result differs from sequential for %d elements", c.name, *n)
		}
		fmt.Fprintf(w, "%-9s ok  n=%d sequential=%v parallel=%v (workers=%d)\n",
			c.name, *n, seqTime, parTime, cfg.NumWorkers)
	}
	return nil
}
