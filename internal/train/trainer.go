// Package train implements the backpropagation training loop.
//
// The trainer repeatedly feeds data set items through a network, computes the
// loss and output errors, runs the backward pass and applies the accumulated
// weight changes, either after every item or once per mini-batch.
//
// Example usage:
//
//	trainer := train.NewBackpropagationTrainer(net, train.Config{
//	    MaxEpochs:    1000,
//	    MaxError:     0.01,
//	    LearningRate: 0.1,
//	})
//	net.SetTrainer(trainer)
//
//	if err := net.Train(ctx, dataSet); err != nil {
//	    return err
//	}
package train

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/stjordanis/deepnetts-communityedition/internal/data"
	"github.com/stjordanis/deepnetts-communityedition/internal/nn"
	"github.com/stjordanis/deepnetts-communityedition/internal/optim"
)

// Stop reasons reported by Result.
const (
	StopMaxError  = "max_error"
	StopMaxEpochs = "max_epochs"
	StopCancelled = "cancelled"
)

// Config holds training hyperparameters.
type Config struct {
	MaxEpochs    int          // Upper bound on epochs (default: 1000)
	MaxError     float32      // Stop once the epoch mean loss is <= MaxError (default: 0.01)
	LearningRate float32      // Optimizer learning rate (default: 0.01)
	Momentum     float32      // Momentum factor, MomentumType only (default: 0.9)
	Optimizer    optim.Type   // Optimizer installed on every layer (default: SGD)
	BatchMode    bool         // Accumulate deltas over BatchSize items before applying
	BatchSize    int          // Items per weight update in batch mode (default: whole data set)
	LogEvery     int          // Log every n-th epoch; 0 disables epoch logging (default: 1)
	Logger       *slog.Logger // Progress logger (default: slog.Default())
}

// DefaultConfig returns the default training configuration.
func DefaultConfig() Config {
	return Config{
		MaxEpochs:    1000,
		MaxError:     0.01,
		LearningRate: optim.DefaultConfig().LearningRate,
		Momentum:     optim.DefaultConfig().Momentum,
		Optimizer:    optim.SGDType,
		LogEvery:     1,
	}
}

// Result summarizes a finished training run.
type Result struct {
	Epochs     int
	Loss       float32
	StopReason string
	Duration   time.Duration
}

// BackpropagationTrainer trains a network with error backpropagation.
type BackpropagationTrainer struct {
	net     *nn.Network
	cfg     Config
	logger  *slog.Logger
	history []float32
	result  Result
}

// NewBackpropagationTrainer creates a trainer for net.
//
// Zero-valued fields of cfg fall back to DefaultConfig.
func NewBackpropagationTrainer(net *nn.Network, cfg Config) *BackpropagationTrainer {
	def := DefaultConfig()
	if cfg.MaxEpochs <= 0 {
		cfg.MaxEpochs = def.MaxEpochs
	}
	if cfg.MaxError <= 0 {
		cfg.MaxError = def.MaxError
	}
	if cfg.LearningRate == 0 {
		cfg.LearningRate = def.LearningRate
	}
	if cfg.Momentum == 0 {
		cfg.Momentum = def.Momentum
	}
	if cfg.LogEvery < 0 {
		cfg.LogEvery = 0
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &BackpropagationTrainer{
		net:    net,
		cfg:    cfg,
		logger: logger,
	}
}

// Config returns the effective configuration.
func (t *BackpropagationTrainer) Config() Config {
	return t.cfg
}

// History returns the mean loss of every completed epoch.
func (t *BackpropagationTrainer) History() []float32 {
	return t.history
}

// Result returns the summary of the last Train call.
func (t *BackpropagationTrainer) Result() Result {
	return t.result
}

// Train runs epochs over ds until the mean loss reaches MaxError, MaxEpochs
// is exhausted or ctx is cancelled.
//
// Data set widths must match the network; a mismatch fails before any
// weight is touched.
func (t *BackpropagationTrainer) Train(ctx context.Context, ds data.DataSet) error {
	if ds.Size() == 0 {
		return errors.New("training data set is empty")
	}
	if t.net.LossFunction() == nil {
		return errors.New("training configuration: loss function not set")
	}
	in, out := t.net.InputLayer().Width(), t.net.OutputLayer().Width()
	if err := data.ValidateWidths(ds, in, out); err != nil {
		return fmt.Errorf("training configuration: %w", err)
	}
	if err := t.net.SetOptimizer(t.cfg.Optimizer, optim.Config{
		LearningRate: t.cfg.LearningRate,
		Momentum:     t.cfg.Momentum,
	}); err != nil {
		return fmt.Errorf("training configuration: %w", err)
	}
	t.net.SetBatchMode(t.cfg.BatchMode)

	batchSize := t.cfg.BatchSize
	if !t.cfg.BatchMode {
		batchSize = 1
	} else if batchSize <= 0 {
		batchSize = ds.Size()
	}

	t.history = t.history[:0]
	start := time.Now()
	t.logger.Info("training started",
		"layers", t.net.Len(),
		"items", ds.Size(),
		"loss", t.net.LossFunction().Type().String(),
		"optimizer", t.cfg.Optimizer.String(),
		"learning_rate", t.cfg.LearningRate,
		"batch_size", batchSize,
	)

	t.result = Result{StopReason: StopMaxEpochs}
	for epoch := 1; epoch <= t.cfg.MaxEpochs; epoch++ {
		if err := ctx.Err(); err != nil {
			t.result.StopReason = StopCancelled
			t.finish(start)
			return err
		}

		loss, err := t.epoch(ds, batchSize)
		if err != nil {
			t.finish(start)
			return fmt.Errorf("epoch %d: %w", epoch, err)
		}
		t.history = append(t.history, loss)
		t.result.Epochs = epoch
		t.result.Loss = loss

		if t.cfg.LogEvery > 0 && epoch%t.cfg.LogEvery == 0 {
			t.logger.Debug("epoch finished", "epoch", epoch, "loss", loss)
		}
		if loss <= t.cfg.MaxError {
			t.result.StopReason = StopMaxError
			break
		}
	}

	t.finish(start)
	return nil
}

// epoch runs one pass over ds and returns the mean loss.
func (t *BackpropagationTrainer) epoch(ds data.DataSet, batchSize int) (float32, error) {
	var total float32
	count := 0
	for item := range ds.Items() {
		if err := t.net.SetInput(item.Input); err != nil {
			return 0, err
		}
		loss, err := t.net.Loss(item.Target)
		if err != nil {
			return 0, err
		}
		total += loss
		count++

		t.net.Backward()
		if count%batchSize == 0 {
			if err := t.net.ApplyWeightChanges(); err != nil {
				return 0, err
			}
		}
	}
	// Flush a trailing partial batch.
	if count%batchSize != 0 {
		if err := t.net.ApplyWeightChanges(); err != nil {
			return 0, err
		}
	}
	return total / float32(count), nil
}

func (t *BackpropagationTrainer) finish(start time.Time) {
	t.result.Duration = time.Since(start)
	t.logger.Info("training finished",
		"epochs", t.result.Epochs,
		"loss", t.result.Loss,
		"reason", t.result.StopReason,
		"duration", t.result.Duration,
	)
}
