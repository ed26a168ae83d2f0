package ml

import (
	"fmt"
	"math"
	"math/rand"
)

// Partition holds the row indices of the train and test sets.
type Partition struct {
	Train []int
	Test  []int
}

// TrainTestSplit shuffles n rows with the given seed and assigns
// round((1-testSize)*n) of them to training, the rest to test.
func TrainTestSplit(n int, testSize float64, seed int64) (Partition, error) {
	if testSize <= 0 || testSize >= 1 {
		return Partition{}, fmt.Errorf("test size must be in (0,1): %v", testSize)
	}
	nTrain := int(math.Round((1 - testSize) * float64(n)))
	perm := rand.New(rand.NewSource(seed)).Perm(n)
	return Partition{
		Train: perm[:nTrain],
		Test:  perm[nTrain:],
	}, nil
}

// Apply splits the features and labels along the partition.
func (p Partition) Apply(x *Matrix, y []int) (xTrain, xTest *Matrix, yTrain, yTest []int, err error) {
	if x.Rows() != len(y) {
		return nil, nil, nil, nil, fmt.Errorf("features have %d rows, labels %d", x.Rows(), len(y))
	}
	return x.Select(p.Train), x.Select(p.Test), pick(y, p.Train), pick(y, p.Test), nil
}

func pick(y []int, idx []int) []int {
	out := make([]int, len(idx))
	for k, i := range idx {
		out[k] = y[i]
	}
	return out
}
