package optim

// SGD implements plain gradient descent.
//
// Update rule:
//
//	delta = -lr * gradient
type SGD struct {
	lr float32
}

// NewSGD creates a gradient descent optimizer with the given learning rate.
func NewSGD(lr float32) *SGD {
	return &SGD{lr: lr}
}

// WeightDelta returns -lr * grad.
func (s *SGD) WeightDelta(grad float32, _, _ int) float32 {
	return -s.lr * grad
}

// BiasDelta returns -lr * grad.
func (s *SGD) BiasDelta(grad float32, _ int) float32 {
	return -s.lr * grad
}

// LearningRate returns the current learning rate.
func (s *SGD) LearningRate() float32 {
	return s.lr
}

// SetLearningRate updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLearningRate(lr float32) {
	s.lr = lr
}

// Momentum implements gradient descent with momentum.
//
// Update rule:
//
//	delta = -lr * gradient + momentum * previousDelta
//
// previousDelta is the delta the layer applied in its last weight update.
// Momentum helps accelerate descent in consistent directions and dampens oscillations.
type Momentum struct {
	lr       float32
	momentum float32
	history  History
}

// NewMomentum creates a momentum optimizer bound to a layer's delta history.
func NewMomentum(lr, momentum float32, history History) *Momentum {
	return &Momentum{
		lr:       lr,
		momentum: momentum,
		history:  history,
	}
}

// WeightDelta returns -lr * grad + momentum * previous weight delta at (row, col).
func (m *Momentum) WeightDelta(grad float32, row, col int) float32 {
	return -m.lr*grad + m.momentum*m.history.PrevDeltaWeights().GetAt(row, col)
}

// BiasDelta returns -lr * grad + momentum * previous bias delta at col.
func (m *Momentum) BiasDelta(grad float32, col int) float32 {
	return -m.lr*grad + m.momentum*m.history.PrevDeltaBiases().Get(col)
}

// LearningRate returns the current learning rate.
func (m *Momentum) LearningRate() float32 {
	return m.lr
}

// SetLearningRate updates the learning rate.
func (m *Momentum) SetLearningRate(lr float32) {
	m.lr = lr
}
