// Package table reads the tab-separated annotation files that are scored.
package table

import (
	"bufio"
	"github.com/pkg/errors"
	"io"
	"strings"
)

// Table is a header and the rows below it. Every row has exactly as many fields as the header.
type Table struct {
	Header []string
	Rows   [][]string
}

// Column finds the index of a column by name, or -1.
func (t Table) Column(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Values extracts every value of the column at index i.
func (t Table) Values(i int) []string {
	v := make([]string, len(t.Rows))
	for j, row := range t.Rows {
		v[j] = row[i]
	}
	return v
}

// ReadTSV reads a tab-separated table that has a header and no quoting. Quote characters are kept as they are.
func ReadTSV(r io.Reader) (Table, error) {
	var t Table
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if line == 1 {
			t.Header = strings.Split(text, "\t")
			continue
		}
		if len(text) == 0 {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) != len(t.Header) {
			return Table{}, errors.Errorf("line %d has %d fields, header has %d", line, len(fields), len(t.Header))
		}
		t.Rows = append(t.Rows, fields)
	}
	if err := scanner.Err(); err != nil {
		return Table{}, errors.Wrap(err, "scan table")
	}
	if line == 0 {
		return Table{}, errors.New("missing header")
	}
	return t, nil
}
