package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var ErrMissingColumns = errors.New("missing required columns")

// table is a parsed CSV with normalized headers.
type table struct {
	columns map[string]int
	records [][]string
}

func readTable(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return parseTable(f)
}

func parseTable(r io.Reader) (*table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("csv has no header row")
		}
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	t := &table{columns: make(map[string]int, len(header))}
	for i, h := range header {
		name := NormalizeHeader(h)
		if _, dup := t.columns[name]; !dup && name != "" {
			t.columns[name] = i
		}
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		if isBlank(record) {
			continue
		}
		t.records = append(t.records, record)
	}

	return t, nil
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func (t *table) has(names ...string) bool {
	for _, name := range names {
		if _, ok := t.columns[name]; ok {
			return true
		}
	}
	return false
}

// missing returns the required columns not present under any alias.
func (t *table) missing(required [][]string) []string {
	var out []string
	for _, aliases := range required {
		if !t.has(aliases...) {
			out = append(out, aliases[0])
		}
	}
	return out
}

// get returns the first non-empty value among the aliases. Columns that
// are absent, or cut short on a ragged row, read as empty.
func (t *table) get(record []string, aliases ...string) string {
	for _, name := range aliases {
		i, ok := t.columns[name]
		if !ok || i >= len(record) {
			continue
		}
		if v := cleanCell(record[i]); v != "" {
			return v
		}
	}
	return ""
}
