// Copyright 2025 Deep Netts Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package parallel provides the worker pool used for concurrent weight updates.
//
// Example:
//
//	pool := parallel.NewPool(parallel.Config{Workers: 4})
//	defer pool.Close()
//
//	net, err := nn.NewBuilder().
//	    AddInputLayer(2).
//	    AddDenseLayer(8, nn.ReLU).
//	    AddOutputLayer(1, nn.Linear).
//	    LossFunction(nn.MeanSquaredError).
//	    Pool(pool).
//	    Build()
package parallel

import (
	"github.com/stjordanis/deepnetts-communityedition/internal/parallel"
)

// Pool is a fixed-size worker pool.
type Pool = parallel.Pool

// Config configures a Pool.
type Config = parallel.Config

// Task is a unit of work.
type Task = parallel.Task

// ErrClosed is returned for tasks submitted to a closed pool.
var ErrClosed = parallel.ErrClosed

// DefaultConfig returns the default pool configuration.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}

// NewPool starts a pool with cfg.Workers workers.
func NewPool(cfg Config) *Pool {
	return parallel.NewPool(cfg)
}
