package ml

import (
	"math"
	"math/rand"
	"sort"
)

// node is a cart tree node. x[feature] <= threshold goes left.
type node struct {
	leaf      bool
	feature   int
	threshold float64
	left      *node
	right     *node
	probas    []float64
}

// tree is a gini cart classifier grown until its leaves are pure.
type tree struct {
	root        *node
	classes     int
	features    int
	maxFeatures int
	importance  []float64

	// scratch space reused across the nodes of one fit
	index  *columnIndex
	weight []int
	drawn  map[int]int
	items  []entry
	zeros  []int
	left   []int
	right  []int
}

func newTree(classes, features, maxFeatures int) *tree {
	return &tree{
		classes:     classes,
		features:    features,
		maxFeatures: maxFeatures,
		importance:  make([]float64, features),
	}
}

// columnIndex holds the non-zero entries of a matrix per column.
type columnIndex struct {
	rows   [][]int
	values [][]float64
}

func newColumnIndex(x *Matrix) *columnIndex {
	nnz := make([]int, x.Cols())
	for i := 0; i < x.Rows(); i++ {
		for _, f := range x.Row(i).Indices {
			nnz[f]++
		}
	}
	index := &columnIndex{
		rows:   make([][]int, x.Cols()),
		values: make([][]float64, x.Cols()),
	}
	for f, n := range nnz {
		if n > 0 {
			index.rows[f] = make([]int, 0, n)
			index.values[f] = make([]float64, 0, n)
		}
	}
	for i := 0; i < x.Rows(); i++ {
		row := x.Row(i)
		for k, f := range row.Indices {
			index.rows[f] = append(index.rows[f], i)
			index.values[f] = append(index.values[f], row.Values[k])
		}
	}
	return index
}

// fit grows the tree on the rows of x listed in idx. Rows may repeat.
func (t *tree) fit(x *Matrix, y []int, idx []int, rnd *rand.Rand) {
	t.fitIndexed(x, newColumnIndex(x), y, idx, rnd)
}

// fitIndexed grows the tree using a column index of x shared between trees.
func (t *tree) fitIndexed(x *Matrix, index *columnIndex, y []int, idx []int, rnd *rand.Rand) {
	t.index = index
	t.weight = make([]int, x.Rows())
	t.drawn = make(map[int]int, 2*t.maxFeatures)
	t.zeros = make([]int, t.classes)
	t.left = make([]int, t.classes)
	t.right = make([]int, t.classes)
	t.root = t.build(x, y, idx, rnd)
	t.index, t.weight, t.drawn, t.items = nil, nil, nil, nil
	t.zeros, t.left, t.right = nil, nil, nil
}

func (t *tree) predict(v Vector) []float64 {
	n := t.root
	for !n.leaf {
		if v.At(n.feature) <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.probas
}

type entry struct {
	v float64
	c int
	w int
}

type byValue []entry

func (e byValue) Len() int           { return len(e) }
func (e byValue) Less(a, b int) bool { return e[a].v < e[b].v }
func (e byValue) Swap(a, b int)      { e[a], e[b] = e[b], e[a] }

type split struct {
	feature   int
	threshold float64
	gain      float64
}

func (t *tree) build(x *Matrix, y []int, idx []int, rnd *rand.Rand) *node {
	counts := make([]int, t.classes)
	for _, i := range idx {
		counts[y[i]]++
	}
	if len(idx) < 2 || pure(counts) {
		return leaf(counts)
	}

	// multiplicity of every row in the node, cleared before the children are built
	for _, i := range idx {
		t.weight[i]++
	}
	best := t.search(y, counts, len(idx), rnd)
	for _, i := range idx {
		t.weight[i]--
	}

	if best.feature < 0 {
		return leaf(counts)
	}

	left := make([]int, 0, len(idx))
	right := make([]int, 0, len(idx))
	for _, i := range idx {
		if x.At(i, best.feature) <= best.threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	t.importance[best.feature] += float64(len(idx)) * best.gain

	return &node{
		feature:   best.feature,
		threshold: best.threshold,
		left:      t.build(x, y, left, rnd),
		right:     t.build(x, y, right, rnd),
	}
}

// search draws features without replacement until enough non-constant ones were visited
// and returns the best split among them. The feature is -1 if every drawn feature is constant.
func (t *tree) search(y []int, counts []int, n int, rnd *rand.Rand) split {
	for k := range t.drawn {
		delete(t.drawn, k)
	}
	at := func(k int) int {
		if f, ok := t.drawn[k]; ok {
			return f
		}
		return k
	}

	parent := gini(counts, n)
	best := split{feature: -1, gain: -1}
	visited, constants := 0, 0
	for k := 0; k < t.features && (visited < t.maxFeatures || visited <= constants); k++ {
		j := k + rnd.Intn(t.features-k)
		f := at(j)
		t.drawn[j] = at(k)
		t.drawn[k] = f
		visited++

		s, ok := t.bestSplit(f, y, counts, n, parent)
		if !ok {
			constants++
			continue
		}
		if s.gain > best.gain {
			best = s
		}
	}
	return best
}

// bestSplit scans the thresholds of feature f over the rows of the node.
// It reports false if the feature is constant on the node.
func (t *tree) bestSplit(f int, y []int, counts []int, n int, parent float64) (split, bool) {
	rows, values := t.index.rows[f], t.index.values[f]
	items := t.items[:0]
	copy(t.zeros, counts)
	for k, i := range rows {
		w := t.weight[i]
		if w == 0 {
			continue
		}
		items = append(items, entry{v: values[k], c: y[i], w: w})
		t.zeros[y[i]] -= w
	}
	// all zero on the node
	if len(items) == 0 {
		return split{}, false
	}
	for c, w := range t.zeros {
		if w > 0 {
			items = append(items, entry{v: 0, c: c, w: w})
		}
	}
	t.items = items

	sort.Sort(byValue(items))
	if items[0].v == items[len(items)-1].v {
		return split{}, false
	}

	best := split{feature: f, gain: -1}
	left, right := t.left, t.right
	for c := range left {
		left[c] = 0
	}
	copy(right, counts)
	nl := 0
	for k := 0; k < len(items)-1; k++ {
		e := items[k]
		left[e.c] += e.w
		right[e.c] -= e.w
		nl += e.w
		next := items[k+1].v
		if e.v == next {
			continue
		}
		nr := n - nl
		weighted := float64(nl)/float64(n)*gini(left, nl) + float64(nr)/float64(n)*gini(right, nr)
		gain := parent - weighted
		if gain > best.gain {
			thr := e.v/2 + next/2
			if thr == next || math.IsInf(thr, 0) || math.IsNaN(thr) {
				thr = e.v
			}
			best.gain = gain
			best.threshold = thr
		}
	}
	return best, true
}

func gini(counts []int, n int) float64 {
	if n == 0 {
		return 0
	}
	g := 1.0
	for _, c := range counts {
		p := float64(c) / float64(n)
		g -= p * p
	}
	return g
}

func pure(counts []int) bool {
	nonZero := 0
	for _, c := range counts {
		if c > 0 {
			nonZero++
		}
	}
	return nonZero <= 1
}

func leaf(counts []int) *node {
	n := 0
	for _, c := range counts {
		n += c
	}
	p := make([]float64, len(counts))
	for i, c := range counts {
		if n > 0 {
			p[i] = float64(c) / float64(n)
		}
	}
	return &node{leaf: true, probas: p}
}
