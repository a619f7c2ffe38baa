// Package output provides different formats of output for scored word sense induction runs.
package output

import (
	"github.com/hscells/wsieval/eval"
	"math"
	"strconv"
)

// Columns are the fixed columns of the result table, in order.
var Columns = []string{"head", "RI", "sRI", "wsRI", "TP", "FP", "TN", "FN", "UP", "UN", "Precision", "Recall", "F1", "Instances"}

// Report is everything a run produces: the score of each head, additional measures requested for each head, and the
// summary over all heads.
type Report struct {
	Summary eval.Summary
	Results []eval.GroupResult
	// Measures names the additional measures, and Extra[i][k] is measure k of Results[i].
	Measures []string
	Extra    [][]float64
}

// ReportFormatter is used to output a report in a particular format.
type ReportFormatter func(r Report) (string, error)

// Formatters maps the names accepted on the command line to formatters.
var Formatters = map[string]ReportFormatter{
	"tsv":     TsvReportFormatter,
	"json":    JsonReportFormatter,
	"summary": SummaryReportFormatter,
}

// FormatFloat writes a float the shortest way that parses back to the same value. Non-finite values are written as
// NaN, inf, and -inf.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Row converts a group result into the fields of the result table.
func Row(r eval.GroupResult) []string {
	return []string{
		r.Head,
		FormatFloat(r.RI),
		FormatFloat(r.SRI),
		FormatFloat(r.WSRI),
		strconv.Itoa(r.TP),
		strconv.Itoa(r.FP),
		strconv.Itoa(r.TN),
		strconv.Itoa(r.FN),
		strconv.Itoa(r.UP),
		strconv.Itoa(r.UN),
		FormatFloat(r.Precision),
		FormatFloat(r.Recall),
		FormatFloat(r.F1),
		strconv.Itoa(r.Instances),
	}
}
