// Package record contains the normalised representation of annotated instances used when scoring word sense
// induction output, and the grouping of those instances into heads.
package record

import (
	"fmt"
	"github.com/pkg/errors"
	"strings"
)

// UnclearMarker is the suffix that marks a sense annotation as unclear. Unclear annotations never match any other
// annotation, including themselves.
const UnclearMarker = "x"

// ErrSenseCount indicates that the records do not share a common number of sense annotations, or have too few.
var ErrSenseCount = errors.New("records must have the same number (at least two) of sense annotations")

// Record is one annotated instance of a head.
type Record struct {
	// Head is the lexical item the instance belongs to.
	Head string
	// Senses contains one gold annotation per sense column, in column order.
	Senses []string
	// Cluster is the cluster predicted for the instance by a WSI system.
	Cluster string
}

// Unclear reports whether a sense annotation is the unclear marker.
func Unclear(sense string) bool {
	return strings.HasSuffix(sense, UnclearMarker)
}

// SenseCount is the number of sense annotations in the record.
func (r Record) SenseCount() int {
	return len(r.Senses)
}

func (r Record) String() string {
	return fmt.Sprintf("%s\t%s\t%s", r.Head, strings.Join(r.Senses, "\t"), r.Cluster)
}

// Validate checks that every record has the same number of senses, and that this number is at least two.
func Validate(records []Record) error {
	if len(records) == 0 {
		return nil
	}
	l := records[0].SenseCount()
	if l < 2 {
		return errors.Wrapf(ErrSenseCount, "found %d", l)
	}
	for i, r := range records {
		if r.SenseCount() != l {
			return errors.Wrapf(ErrSenseCount, "record %d has %d, expected %d", i, r.SenseCount(), l)
		}
	}
	return nil
}
