package main

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/flowgrad-ml/flowgrad/autodiff"
	"github.com/flowgrad-ml/flowgrad/backend/vector"
	"github.com/flowgrad-ml/flowgrad/logging"
	"github.com/flowgrad-ml/flowgrad/timing"
)

func newBenchCmd() *cobra.Command {
	var (
		size  int
		depth int
		iters int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time graph construction and backward passes",
		Long: `Builds a chain of elementwise vector sums of the given depth over
vectors of the given size, then times the forward (graph construction)
and backward (gradient propagation) phases separately.`,
		Run: func(_ *cobra.Command, _ []string) {
			runBench(size, depth, iters)
		},
	}

	cmd.Flags().IntVar(&size, "size", 1024, "vector length")
	cmd.Flags().IntVar(&depth, "depth", 100, "number of chained sum operations")
	cmd.Flags().IntVar(&iters, "iters", 20, "benchmark iterations")
	return cmd
}

func runBench(size, depth, iters int) {
	logging.Init(os.Stderr, slog.LevelInfo)
	log := logging.L().With("run_id", uuid.NewString())

	log.Info("bench starting", "size", size, "depth", depth, "iters", iters)

	sum := autodiff.NewModule[vector.Vector](vector.Sum{})
	var forward, backward timing.Stopwatch

	for i := 0; i < iters; i++ {
		data := make(vector.Vector, size)
		for j := range data {
			data[j] = float64(j)
		}

		// The graph is rebuilt every iteration so each backward pass runs
		// over fresh, zeroed gradients.
		forward.Start()
		x := autodiff.NewNode(data)
		out := x
		for d := 0; d < depth; d++ {
			out = sum.Forward([]*vector.Node{out, x})[0]
		}
		forward.Stop()

		backward.Start()
		out.Backward()
		backward.Stop()
	}

	log.Info("forward",
		"mean_us", forward.Mean(),
		"std_us", forward.StdDev(),
		"samples", forward.N(),
	)
	log.Info("backward",
		"mean_us", backward.Mean(),
		"std_us", backward.StdDev(),
		"samples", backward.N(),
	)
}
