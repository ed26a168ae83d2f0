package config

import "fmt"

// Classifier is the configuration of the text classification pipeline.
type Classifier struct {
	Dataset    Dataset    `json:"dataset"`
	Vectorizer Vectorizer `json:"vectorizer"`
	Split      Split      `json:"split"`
	Forest     Forest     `json:"forest"`
	Report     Report     `json:"report"`
}

// Dataset points to the csv input and the columns to use.
type Dataset struct {
	Path        string `json:"path"`
	TextColumn  string `json:"text_column"`
	LabelColumn string `json:"label_column"`
}

// Vectorizer holds the tf-idf settings.
// MaxDF is the document frequency ceiling as a fraction of the documents.
type Vectorizer struct {
	MaxDF     float64 `json:"max_df"`
	StopWords string  `json:"stop_words"`
}

// Split defines the train/test partition.
type Split struct {
	TestSize float64 `json:"test_size"`
	Seed     int64   `json:"seed"`
}

// Forest defines the ensemble.
type Forest struct {
	Trees   int    `json:"trees"`
	Seed    int64  `json:"seed"`
	Backend string `json:"backend"`
}

// Report defines the optional outputs next to the console report.
type Report struct {
	Dir         string `json:"dir"`
	MetricsFile string `json:"metrics_file"`
}

// DefaultClassifier returns the settings the pipeline runs with when nothing is configured.
func DefaultClassifier() Classifier {
	return Classifier{
		Dataset: Dataset{
			Path:        "news.csv",
			TextColumn:  "text",
			LabelColumn: "label",
		},
		Vectorizer: Vectorizer{
			MaxDF:     0.7,
			StopWords: "english",
		},
		Split: Split{
			TestSize: 0.2,
			Seed:     42,
		},
		Forest: Forest{
			Trees:   100,
			Seed:    42,
			Backend: "cart",
		},
	}
}

// Validate checks the config values are usable.
func (c Classifier) Validate() error {
	if c.Dataset.Path == "" {
		return fmt.Errorf("dataset path is empty")
	}
	if c.Dataset.TextColumn == "" || c.Dataset.LabelColumn == "" {
		return fmt.Errorf("dataset columns must be named: text='%s' label='%s'", c.Dataset.TextColumn, c.Dataset.LabelColumn)
	}
	if c.Vectorizer.MaxDF <= 0 || c.Vectorizer.MaxDF > 1 {
		return fmt.Errorf("max_df must be in (0,1]: %v", c.Vectorizer.MaxDF)
	}
	if c.Split.TestSize <= 0 || c.Split.TestSize >= 1 {
		return fmt.Errorf("test_size must be in (0,1): %v", c.Split.TestSize)
	}
	if c.Forest.Trees <= 0 {
		return fmt.Errorf("forest needs at least one tree: %d", c.Forest.Trees)
	}
	return nil
}
