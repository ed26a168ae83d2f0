package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/drakos74/news-forest/infra/config"
	"github.com/drakos74/news-forest/internal/dataset"
	"github.com/drakos74/news-forest/internal/math/ml"
	"github.com/drakos74/news-forest/internal/metrics"
	"github.com/drakos74/news-forest/internal/storage"
	json_storage "github.com/drakos74/news-forest/internal/storage/file/json"
)

const topFeatures = 10

// Pipeline loads the dataset, trains the forest and reports the test accuracy.
type Pipeline struct {
	cfg     config.Classifier
	run     string
	out     io.Writer
	storage storage.Persistence
	metrics *metrics.Metrics
}

type Option func(p *Pipeline)

// WithOutput sets the writer the report is printed to.
func WithOutput(w io.Writer) Option {
	return func(p *Pipeline) {
		p.out = w
	}
}

// WithStorage sets where the run report is persisted.
func WithStorage(s storage.Persistence) Option {
	return func(p *Pipeline) {
		p.storage = s
	}
}

func New(cfg config.Classifier, opts ...Option) *Pipeline {
	run := uuid.New().String()
	p := &Pipeline{
		cfg:     cfg,
		run:     run,
		out:     os.Stdout,
		storage: storage.NewVoidStorage(),
		metrics: metrics.New(run),
	}
	if cfg.Report.Dir != "" {
		p.storage = json_storage.NewFileStorage(cfg.Report.Dir)
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ID returns the run id.
func (p *Pipeline) ID() string {
	return p.run
}

// Metrics returns the metrics of the run.
func (p *Pipeline) Metrics() *metrics.Metrics {
	return p.metrics
}

func (p *Pipeline) stage(name string, start time.Time) {
	d := time.Since(start)
	p.metrics.Stage(name, d)
	log.Debug().Str("run", p.run).Str("stage", name).Dur("duration", d).Msg("stage complete")
}

// Run executes the pipeline once.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	started := time.Now()
	result := &Result{
		Run:     p.run,
		Dataset: p.cfg.Dataset.Path,
		Backend: p.cfg.Forest.Backend,
		Trees:   p.cfg.Forest.Trees,
		Started: started,
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// load
	start := time.Now()
	ds, err := dataset.NewLoader(dataset.Columns{
		Text:  p.cfg.Dataset.TextColumn,
		Label: p.cfg.Dataset.LabelColumn,
	}).WithDiagnostics(p.out).Load(ctx, p.cfg.Dataset.Path)
	if err != nil {
		return nil, err
	}
	result.Documents = ds.Len()
	p.metrics.Documents(ds.Len())
	p.stage("load", start)

	// features and labels
	start = time.Now()
	stopWords, ok := ml.LookupStopWords(p.cfg.Vectorizer.StopWords)
	if !ok {
		return nil, fmt.Errorf("unknown stop words list: %s", p.cfg.Vectorizer.StopWords)
	}
	vectorizer := ml.NewVectorizer(ml.VectorizerConfig{
		MaxDF:     p.cfg.Vectorizer.MaxDF,
		StopWords: stopWords,
	})
	x, err := vectorizer.FitTransform(ds.Texts)
	if err != nil {
		return nil, fmt.Errorf("could not extract features: %w", err)
	}
	result.Vocabulary = x.Cols()
	p.metrics.Vocabulary(x.Cols())

	encoder := ml.NewLabelEncoder()
	y, err := encoder.FitTransform(ds.Labels)
	if err != nil {
		return nil, fmt.Errorf("could not encode labels: %w", err)
	}
	result.Mapping = encoder.Mapping()
	log.Info().
		Str("run", p.run).
		Int("vocabulary", x.Cols()).
		Int("nnz", x.NNZ()).
		Strs("classes", encoder.Classes()).
		Msg("extracted features")
	p.stage("features", start)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// split
	partition, err := ml.TrainTestSplit(x.Rows(), p.cfg.Split.TestSize, p.cfg.Split.Seed)
	if err != nil {
		return nil, err
	}
	xTrain, xTest, yTrain, yTest, err := partition.Apply(x, y)
	if err != nil {
		return nil, err
	}
	result.Train = len(yTrain)
	result.Test = len(yTest)
	p.metrics.Partition("train", len(yTrain))
	p.metrics.Partition("test", len(yTest))

	// train
	fmt.Fprintln(p.out, "\nTraining RandomForestClassifier...")
	start = time.Now()
	forest, err := ml.NewForest(ml.ForestConfig{
		Trees:   p.cfg.Forest.Trees,
		Seed:    p.cfg.Forest.Seed,
		Backend: p.cfg.Forest.Backend,
	})
	if err != nil {
		return nil, err
	}
	err = forest.Fit(xTrain, yTrain, len(encoder.Classes()))
	if err != nil {
		return nil, fmt.Errorf("could not train forest: %w", err)
	}
	fmt.Fprintln(p.out, "Training complete.")
	p.stage("train", start)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// evaluate
	start = time.Now()
	evaluation, err := ml.Evaluate(forest, xTest, yTest)
	if err != nil {
		return nil, fmt.Errorf("could not evaluate forest: %w", err)
	}
	result.Correct = evaluation.Correct
	result.Accuracy = evaluation.Accuracy
	p.metrics.Accuracy(evaluation.Accuracy)
	p.stage("evaluate", start)

	metadata := ml.NewMetadata()
	metadata.Samples = len(yTrain)
	metadata.Accuracy = evaluation.Accuracy
	metadata.Features = forest.Importance()
	result.TopFeatures = metadata.Top(vectorizer.Vocabulary(), topFeatures)
	result.Duration = time.Since(started)

	printReport(p.out, result)

	log.Info().
		Str("run", p.run).
		Int("train", result.Train).
		Int("test", result.Test).
		Float64("accuracy", result.Accuracy).
		Dur("duration", result.Duration).
		Msg("pipeline complete")

	err = p.storage.Store(storage.Key{Run: p.run, Label: "report"}, result)
	if err != nil {
		log.Error().Err(err).Str("run", p.run).Msg("could not store report")
	}
	if file := p.cfg.Report.MetricsFile; file != "" {
		if err := p.metrics.WriteTo(file); err != nil {
			log.Error().Err(err).Str("run", p.run).Msg("could not write metrics")
		}
	}

	return result, nil
}
