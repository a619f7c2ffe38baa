package table

import (
	"github.com/hscells/wsieval/record"
	"github.com/pkg/errors"
	"os"
	"strings"
)

const (
	// HeadColumn names the column that contains the head of each instance.
	HeadColumn = "head"
	// SensePrefix is the prefix of every gold sense column.
	SensePrefix = "sense"
	// DefaultClusterColumn is the column the predicted clusters are read from unless told otherwise.
	DefaultClusterColumn = "cluster"

	clusterFileSuffix = "__clusterfile__"
)

// Source loads records to be scored.
type Source interface {
	Load() ([]record.Record, error)
}

// FileSource reads records from a tab-separated file, optionally taking the predicted clusters from a second file
// whose rows are aligned with the first.
type FileSource struct {
	Path          string
	ClusterColumn string
	ClusterFile   string
}

// FileSourceOption configures a FileSource.
type FileSourceOption func(*FileSource)

// ClusterColumn sets the name of the column containing the predicted clusters.
func ClusterColumn(name string) FileSourceOption {
	return func(s *FileSource) {
		if len(name) > 0 {
			s.ClusterColumn = name
		}
	}
}

// ClusterFile reads the predicted clusters from a separate file. The ClusterColumn applies to this file.
func ClusterFile(path string) FileSourceOption {
	return func(s *FileSource) {
		s.ClusterFile = path
	}
}

// NewFileSource creates a source for the file at path.
func NewFileSource(path string, options ...FileSourceOption) FileSource {
	s := FileSource{
		Path:          path,
		ClusterColumn: DefaultClusterColumn,
	}
	for _, option := range options {
		option(&s)
	}
	return s
}

func readFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()
	t, err := ReadTSV(f)
	if err != nil {
		return Table{}, errors.Wrapf(err, "read %s", path)
	}
	return t, nil
}

// Load reads the file(s) and converts every row into a record.
func (s FileSource) Load() ([]record.Record, error) {
	t, err := readFile(s.Path)
	if err != nil {
		return nil, err
	}

	clusterColumn := s.ClusterColumn
	if len(s.ClusterFile) > 0 {
		c, err := readFile(s.ClusterFile)
		if err != nil {
			return nil, err
		}
		i := c.Column(s.ClusterColumn)
		if i < 0 {
			return nil, errors.Errorf("%s: missing column %q", s.ClusterFile, s.ClusterColumn)
		}
		if len(c.Rows) != len(t.Rows) {
			return nil, errors.Errorf("%s has %d rows, %s has %d", s.ClusterFile, len(c.Rows), s.Path, len(t.Rows))
		}
		// The clusters are appended under a new name so they cannot be confused with a column of the same name in
		// the annotation file.
		clusterColumn = s.ClusterColumn + clusterFileSuffix
		t.Header = append(t.Header, clusterColumn)
		for j, v := range c.Values(i) {
			t.Rows[j] = append(t.Rows[j], v)
		}
	}

	records, err := Records(t, clusterColumn)
	if err != nil {
		return nil, errors.Wrap(err, s.Path)
	}
	return records, nil
}

// Records converts the rows of a table into records. Sense columns are those whose name begins with "sense", in
// header order; the cluster column is never a sense column.
func Records(t Table, clusterColumn string) ([]record.Record, error) {
	head := t.Column(HeadColumn)
	if head < 0 {
		return nil, errors.Errorf("missing column %q", HeadColumn)
	}
	cluster := t.Column(clusterColumn)
	if cluster < 0 {
		return nil, errors.Errorf("missing column %q", clusterColumn)
	}

	var senses []int
	for i, h := range t.Header {
		if strings.HasPrefix(h, SensePrefix) && h != clusterColumn {
			senses = append(senses, i)
		}
	}
	if len(senses) < 2 {
		return nil, errors.Errorf("found %d %q columns, at least two are required", len(senses), SensePrefix)
	}

	records := make([]record.Record, len(t.Rows))
	for j, row := range t.Rows {
		r := record.Record{
			Head:    row[head],
			Senses:  make([]string, len(senses)),
			Cluster: row[cluster],
		}
		for k, i := range senses {
			r.Senses[k] = row[i]
		}
		records[j] = r
	}
	return records, record.Validate(records)
}
