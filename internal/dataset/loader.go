package dataset

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rocketlaunchr/dataframe-go/imports"
	"github.com/rs/zerolog/log"

	"github.com/drakos74/news-forest/internal/storage"
)

// Loader reads a csv dataset into memory.
type Loader struct {
	columns Columns
	out     io.Writer
}

// NewLoader creates a loader for the given columns.
// Diagnostics are printed to stdout unless configured otherwise.
func NewLoader(columns Columns) *Loader {
	return &Loader{
		columns: columns,
		out:     os.Stdout,
	}
}

// WithDiagnostics sets the writer the missing file diagnostics are printed to.
func (l *Loader) WithDiagnostics(w io.Writer) *Loader {
	l.out = w
	return l
}

// Load reads the csv file at the given path.
// It fails with storage.NotFoundErr if the file cannot be read
// and with InvalidSchemaErr if one of the configured columns is absent.
// Blank and repeated column names are renamed before the frame is built,
// the first column with a given name keeps it.
func (l *Loader) Load(ctx context.Context, path string) (*Dataset, error) {

	f, err := open(path)
	if err != nil {
		name := filepath.Base(path)
		fmt.Fprintf(l.out, "ERROR: %s not found at: %s\n", name, path)
		fmt.Fprintf(l.out, "Please ensure '%s' is present or update the dataset path.\n", name)
		return nil, fmt.Errorf("could not open dataset '%s' %s: %w", path, err.Error(), storage.NotFoundErr)
	}
	defer f.Close()

	body, err := normalize(f)
	if err != nil {
		return nil, fmt.Errorf("could not read dataset '%s': %w", path, err)
	}

	df, err := imports.LoadFromCSV(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("could not parse dataset '%s': %w", path, err)
	}

	textIdx, textErr := df.NameToColumn(l.columns.Text)
	labelIdx, labelErr := df.NameToColumn(l.columns.Label)
	if textErr != nil || labelErr != nil {
		return nil, fmt.Errorf("%s must contain '%s' and '%s' columns, found %v: %w",
			filepath.Base(path), l.columns.Text, l.columns.Label, df.Names(), InvalidSchemaErr)
	}

	rows := df.NRows()
	ds := &Dataset{
		Path:   path,
		Frame:  df,
		Texts:  column(df.Series[textIdx], rows),
		Labels: column(df.Series[labelIdx], rows),
	}

	log.Info().
		Str("path", path).
		Int("rows", rows).
		Strs("columns", df.Names()).
		Msg("loaded dataset")

	return ds, nil
}

func open(path string) (*os.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("'%s' is a directory", path)
	}
	return os.Open(path)
}
