package ml

import "fmt"

// Accuracy returns the fraction of predictions equal to the truth.
func Accuracy(truth, predicted []int) (float64, error) {
	if len(truth) != len(predicted) {
		return 0, fmt.Errorf("%d labels for %d predictions", len(truth), len(predicted))
	}
	if len(truth) == 0 {
		return 0, fmt.Errorf("no samples to evaluate")
	}
	c := 0
	for i := range truth {
		if truth[i] == predicted[i] {
			c++
		}
	}
	return float64(c) / float64(len(truth)), nil
}

// Evaluation is the outcome of scoring a classifier on a test set.
type Evaluation struct {
	Predicted []int
	Correct   int
	Accuracy  float64
}

// Evaluate predicts every row of x and compares against y.
func Evaluate(model Classifier, x *Matrix, y []int) (Evaluation, error) {
	if x.Rows() != len(y) {
		return Evaluation{}, fmt.Errorf("features have %d rows, labels %d", x.Rows(), len(y))
	}
	predicted := make([]int, x.Rows())
	correct := 0
	for i := range predicted {
		predicted[i] = model.Predict(x.Row(i))
		if predicted[i] == y[i] {
			correct++
		}
	}
	accuracy, err := Accuracy(y, predicted)
	if err != nil {
		return Evaluation{}, err
	}
	return Evaluation{
		Predicted: predicted,
		Correct:   correct,
		Accuracy:  accuracy,
	}, nil
}
