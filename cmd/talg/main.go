// Package main provides the talg CLI, which runs built-in tensor contraction kernels.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"k8s.io/klog/v2"

	"github.com/born-ml/tensoralg/tensor"
)

const version = "v0.1.0-dev"

func main() {
	ctx := context.Background()
	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		klog.ErrorS(err, "talg failed")
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("talg", flag.ContinueOnError)
	klog.InitFlags(fs)
	strategyName := fs.String("strategy", "loop", "contraction strategy: loop or ttgt")
	fs.Usage = func() { usage(fs.Output()) }
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch fs.Arg(0) {
	case "version":
		fmt.Fprintf(out, "talg %s\n", version)
		return nil
	case "run":
	case "":
		usage(out)
		return nil
	default:
		usage(fs.Output())
		return fmt.Errorf("unknown command %q", fs.Arg(0))
	}

	strategy, err := tensor.ParseStrategy(*strategyName)
	if err != nil {
		return err
	}

	name := fs.Arg(1)
	k, ok := kernels[name]
	if !ok {
		return fmt.Errorf("unknown kernel %q (available: %v)", name, kernelNames())
	}

	log := klog.FromContext(ctx)
	log.Info("Running kernel", "kernel", name, "strategy", strategy)

	result, err := k(tensor.WithStrategy(strategy))
	if err != nil {
		return fmt.Errorf("kernel %s: %w", name, err)
	}
	_, err = result.WriteTo(out)
	return err
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "talg %s - tensor index algebra runtime\n\n", version)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  talg [-strategy loop|ttgt] [-v N] run <kernel>")
	fmt.Fprintln(w, "  talg version")
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Kernels: %v\n", kernelNames())
}

func kernelNames() []string {
	names := make([]string, 0, len(kernels))
	for name := range kernels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
