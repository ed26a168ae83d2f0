package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// normalize re-encodes the csv with a header the frame accepts.
// Blank column names become "Unnamed: <position>" and repeated ones get a ".<n>" suffix,
// the way pandas names them on export and import.
func normalize(r io.Reader) (*bytes.Reader, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no header row: %w", InvalidSchemaErr)
	}

	records[0] = uniqueNames(records[0])

	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)
	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return bytes.NewReader(buf.Bytes()), nil
}

func uniqueNames(names []string) []string {
	unique := make([]string, len(names))
	used := make(map[string]bool, len(names))
	for i, name := range names {
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		candidate := name
		for k := 1; used[candidate]; k++ {
			candidate = name + "." + strconv.Itoa(k)
		}
		used[candidate] = true
		unique[i] = candidate
	}
	return unique
}
