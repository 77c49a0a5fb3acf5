// Package main provides the Deep Netts CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"

	"github.com/stjordanis/deepnetts-communityedition/data"
	"github.com/stjordanis/deepnetts-communityedition/nn"
	"github.com/stjordanis/deepnetts-communityedition/parallel"
	"github.com/stjordanis/deepnetts-communityedition/train"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("Deep Netts %s\n", version)
	case "demo":
		if err := demo(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "demo: %v\n", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("Deep Netts - feed-forward neural networks for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Train a classifier on a synthetic two-class data set")
}

func demo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	var (
		items   = fs.Int("items", 200, "number of generated items")
		epochs  = fs.Int("epochs", 500, "maximum training epochs")
		lr      = fs.Float64("lr", 0.1, "learning rate")
		workers = fs.Int("workers", 0, "apply weight changes on a pool with this many workers (0 = sequential)")
		seed    = fs.Int64("seed", 1, "random seed")
		verbose = fs.Bool("v", false, "log every epoch")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	//nolint:gosec // Using math/rand for synthetic data (not security-critical)
	rng := rand.New(rand.NewSource(*seed))
	ds := twoClass(*items, rng)
	trainSet, testSet, err := data.TrainTestSplit(ds, 0.7, rng)
	if err != nil {
		return err
	}

	builder := nn.NewBuilder().
		AddInputLayer(2).
		AddDenseLayer(8, nn.LeakyReLU).
		AddSoftmaxOutputLayer(2).
		LossFunction(nn.CrossEntropy).
		OutputLabels("below", "above").
		Label("two-class demo").
		RandomSeed(*seed)
	if *workers > 0 {
		pool := parallel.NewPool(parallel.Config{Workers: *workers})
		defer pool.Close()
		builder.Pool(pool)
	}
	net, err := builder.Build()
	if err != nil {
		return err
	}

	trainer := train.NewBackpropagationTrainer(net, train.Config{
		MaxEpochs:    *epochs,
		MaxError:     0.02,
		LearningRate: float32(*lr),
		Logger:       logger,
	})
	net.SetTrainer(trainer)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := net.Train(ctx, trainSet); err != nil {
		return err
	}

	m, err := net.Test(testSet)
	if err != nil {
		return err
	}
	logger.Info("evaluation", "network", net.Label(), "items", testSet.Size(), "measures", m.String())
	return nil
}

// twoClass generates points in the unit square labeled by which side of the
// diagonal they fall on.
func twoClass(n int, rng *rand.Rand) *data.BasicDataSet {
	ds := data.NewBasicDataSet(2, 2)
	_ = ds.SetColumnNames([]string{"x", "y", "below", "above"})
	for ds.Size() < n {
		x, y := rng.Float32(), rng.Float32()
		// Keep a margin around the boundary.
		if d := x - y; d > -0.05 && d < 0.05 {
			continue
		}
		target := []float32{1, 0}
		if y > x {
			target = []float32{0, 1}
		}
		_ = ds.Add(data.NewItem([]float32{x, y}, target))
	}
	return ds
}
