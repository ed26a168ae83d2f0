package dataset

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/rocketlaunchr/dataframe-go"
)

// InvalidSchemaErr signals the dataset is missing one of the required columns.
var InvalidSchemaErr = errors.New("invalid schema")

// Columns names the columns holding the document text and its label.
type Columns struct {
	Text  string
	Label string
}

// DefaultColumns are the column names of the news dataset.
var DefaultColumns = Columns{
	Text:  "text",
	Label: "label",
}

// Dataset is the loaded table together with the coerced text and label columns.
// Texts and Labels are aligned by row.
type Dataset struct {
	Path   string
	Frame  *dataframe.DataFrame
	Texts  []string
	Labels []string
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.Texts)
}

// Coerce converts a cell value to its string form.
// Missing values become the empty string, numbers use their canonical decimal format.
func Coerce(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case *string:
		if x == nil {
			return ""
		}
		return *x
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}

func column(s dataframe.Series, rows int) []string {
	values := make([]string, rows)
	for i := 0; i < rows; i++ {
		values[i] = Coerce(s.Value(i))
	}
	return values
}
