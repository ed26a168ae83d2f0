package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// constant always predicts the same class
type constant int

func (c constant) Fit(x *Matrix, y []int, classes int) error { return nil }
func (c constant) Predict(v Vector) int                      { return int(c) }
func (c constant) Importance() []float64                     { return nil }

func TestAccuracy(t *testing.T) {

	type test struct {
		truth     []int
		predicted []int
		accuracy  float64
		err       bool
	}

	tests := map[string]test{
		"all": {
			truth:     []int{0, 1, 1},
			predicted: []int{0, 1, 1},
			accuracy:  1,
		},
		"none": {
			truth:     []int{0, 1},
			predicted: []int{1, 0},
			accuracy:  0,
		},
		"third": {
			truth:     []int{0, 1, 1},
			predicted: []int{0, 0, 0},
			accuracy:  1.0 / 3.0,
		},
		"empty": {
			truth:     []int{},
			predicted: []int{},
			err:       true,
		},
		"mismatch": {
			truth:     []int{0},
			predicted: []int{0, 1},
			err:       true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a, err := Accuracy(tt.truth, tt.predicted)
			if tt.err {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.accuracy, a)
		})
	}
}

func TestEvaluate(t *testing.T) {

	x, _ := NewMatrix([]Vector{{}, {}, {}, {}}, 1)
	y := []int{1, 0, 1, 1}

	e, err := Evaluate(constant(1), x, y)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 1}, e.Predicted)
	assert.Equal(t, 3, e.Correct)
	assert.Equal(t, 0.75, e.Accuracy)

	_, err = Evaluate(constant(1), x, y[:2])
	assert.Error(t, err)

}

func TestMetadata_Top(t *testing.T) {

	m := NewMetadata()
	m.Features = []float64{0.1, 0, 0.6, 0.3}

	top := m.Top([]string{"cure", "falls", "market", "miracle"}, 2)
	assert.Equal(t, []Feature{
		{Name: "market", Importance: 0.6},
		{Name: "miracle", Importance: 0.3},
	}, top)

}
