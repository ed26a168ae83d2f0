package ml

import (
	"fmt"
	"math"
	"math/rand"

	randomforest "github.com/malaschitz/randomForest"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
)

const (
	CartBackend       = "cart"
	MalaschitzBackend = "malaschitz"
)

// Classifier predicts a class code for a feature row.
type Classifier interface {
	Fit(x *Matrix, y []int, classes int) error
	Predict(v Vector) int
	// Importance returns the normalised importance of each feature.
	Importance() []float64
}

// ForestConfig configures the random forest.
type ForestConfig struct {
	Trees   int
	Seed    int64
	Backend string
}

// NewForest creates the random forest for the configured backend.
func NewForest(cfg ForestConfig) (Classifier, error) {
	if cfg.Trees <= 0 {
		return nil, fmt.Errorf("forest needs at least one tree: %d", cfg.Trees)
	}
	switch cfg.Backend {
	case "", CartBackend:
		return NewRandomForest(cfg.Trees, cfg.Seed), nil
	case MalaschitzBackend:
		return NewMalaschitzForest(cfg.Trees, cfg.Seed), nil
	}
	return nil, fmt.Errorf("unknown forest backend: %s", cfg.Backend)
}

func validate(x *Matrix, y []int, classes int) error {
	if x.Rows() == 0 {
		return fmt.Errorf("no training samples")
	}
	if x.Rows() != len(y) {
		return fmt.Errorf("features have %d rows, labels %d", x.Rows(), len(y))
	}
	for i, c := range y {
		if c < 0 || c >= classes {
			return fmt.Errorf("label %d at row %d outside [0,%d)", c, i, classes)
		}
	}
	return nil
}

// RandomForest is an ensemble of cart trees fit on bootstrap samples of the sparse rows.
// Every tree gets its own seed drawn from the forest seed.
type RandomForest struct {
	trees      int
	seed       int64
	cols       int
	classes    int
	estimators []*tree
	importance []float64
}

func NewRandomForest(trees int, seed int64) *RandomForest {
	return &RandomForest{
		trees: trees,
		seed:  seed,
	}
}

func (rf *RandomForest) Fit(x *Matrix, y []int, classes int) error {
	if err := validate(x, y, classes); err != nil {
		return err
	}
	rf.cols = x.Cols()
	rf.classes = classes
	maxFeatures := int(math.Sqrt(float64(x.Cols())))
	if maxFeatures < 1 {
		maxFeatures = 1
	}

	master := rand.New(rand.NewSource(rf.seed))
	index := newColumnIndex(x)
	n := x.Rows()
	rf.estimators = make([]*tree, rf.trees)
	rf.importance = make([]float64, x.Cols())
	for k := range rf.estimators {
		rnd := rand.New(rand.NewSource(master.Int63()))
		idx := make([]int, n)
		for i := range idx {
			idx[i] = rnd.Intn(n)
		}
		t := newTree(classes, x.Cols(), maxFeatures)
		t.fitIndexed(x, index, y, idx, rnd)
		rf.estimators[k] = t
		if s := floats.Sum(t.importance); s > 0 {
			floats.AddScaled(rf.importance, 1/s, t.importance)
		}
	}
	if s := floats.Sum(rf.importance); s > 0 {
		floats.Scale(1/s, rf.importance)
	}
	log.Debug().Int("trees", rf.trees).Int("samples", n).Int("max-features", maxFeatures).Msg("trained random forest")
	return nil
}

// Predict returns the class with the highest mean probability over the trees.
func (rf *RandomForest) Predict(v Vector) int {
	probas := make([]float64, rf.classes)
	for _, t := range rf.estimators {
		floats.Add(probas, t.predict(v))
	}
	return floats.MaxIdx(probas)
}

func (rf *RandomForest) Importance() []float64 {
	return rf.importance
}

// MalaschitzForest trains github.com/malaschitz/randomForest on the densified rows.
// The library draws from the global math/rand source, so Fit reseeds it with the forest seed
// and changes the random sequence seen by the rest of the process.
type MalaschitzForest struct {
	trees  int
	seed   int64
	cols   int
	forest *randomforest.Forest
}

func NewMalaschitzForest(n int, seed int64) *MalaschitzForest {
	return &MalaschitzForest{
		trees: n,
		seed:  seed,
	}
}

func (rf *MalaschitzForest) Fit(x *Matrix, y []int, classes int) error {
	if err := validate(x, y, classes); err != nil {
		return err
	}
	rf.cols = x.Cols()
	xData := make([][]float64, x.Rows())
	for i := range xData {
		xData[i] = x.Dense(i)
	}
	log.Warn().Int("rows", x.Rows()).Int("cols", x.Cols()).Msg("densifying features for malaschitz forest")

	// the library samples from the global source
	rand.Seed(rf.seed)
	forest := &randomforest.Forest{}
	forest.Data = randomforest.ForestData{X: xData, Class: y}
	forest.Train(rf.trees)
	rf.forest = forest
	return nil
}

func (rf *MalaschitzForest) Predict(v Vector) int {
	votes := rf.forest.Vote(v.Dense(rf.cols))
	if len(votes) == 0 {
		return 0
	}
	return floats.MaxIdx(votes)
}

func (rf *MalaschitzForest) Importance() []float64 {
	return rf.forest.FeatureImportance
}
