// Copyright 2025 Deep Netts Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the float32 tensors that flow through networks.
//
// # Overview
//
// A Tensor is a dense row-major matrix. Vectors are 1×n tensors. Layer
// activations, weights, deltas and data set items are all tensors.
//
// # Basic Usage
//
//	import "github.com/stjordanis/deepnetts-communityedition/tensor"
//
//	func main() {
//	    x := tensor.FromSlice([]float32{1, 2, 3})
//	    y := tensor.FromSlice([]float32{4, 5, 6})
//
//	    // In-place elementwise operations
//	    if err := x.Add(y); err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(x) // [5 7 9]
//	}
//
// # Broadcasting
//
// Elementwise operations require equal shapes. A 1×1 operand is broadcast
// as a scalar:
//
//	x.Add(tensor.FromSlice([]float32{1})) // adds 1 to every element
//
// Mismatched shapes return an error wrapping ErrShapeMismatch and leave the
// receiver unchanged.
package tensor
