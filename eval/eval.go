// Copyright 2025 Deep Netts Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package eval computes performance measures of trained networks.
//
// Network.Test picks the classifier or regressor measures from the loss
// function; the functions here evaluate any Predictor directly.
package eval

import (
	"github.com/stjordanis/deepnetts-communityedition/internal/data"
	"github.com/stjordanis/deepnetts-communityedition/internal/eval"
)

// Measure names.
const (
	Accuracy  = eval.Accuracy
	Precision = eval.Precision
	Recall    = eval.Recall
	F1Score   = eval.F1Score
	MSE       = eval.MSE
	RMSE      = eval.RMSE
	MAE       = eval.MAE
	RSquared  = eval.RSquared
)

// ErrEmptyDataSet is returned when evaluating on a data set without items.
var ErrEmptyDataSet = eval.ErrEmptyDataSet

// Predictor maps an input vector to an output vector.
type Predictor = eval.Predictor

// PerformanceMeasure maps measure names to values.
type PerformanceMeasure = eval.PerformanceMeasure

// ConfusionMatrix counts predictions per (actual, predicted) class pair.
type ConfusionMatrix = eval.ConfusionMatrix

// NewConfusionMatrix creates an empty matrix for the given number of classes.
func NewConfusionMatrix(classes int) *ConfusionMatrix {
	return eval.NewConfusionMatrix(classes)
}

// EvaluateClassifier scores the predicted classes of p on ds.
func EvaluateClassifier(p Predictor, ds data.DataSet) (PerformanceMeasure, error) {
	return eval.EvaluateClassifier(p, ds)
}

// EvaluateRegressor scores the residuals of p on ds.
func EvaluateRegressor(p Predictor, ds data.DataSet) (PerformanceMeasure, error) {
	return eval.EvaluateRegressor(p, ds)
}
