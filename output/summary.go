package output

import (
	"bytes"
	"fmt"
	"strings"
)

// SummaryReportFormatter outputs only the mean RI, sRI, and wsRI lines.
func SummaryReportFormatter(r Report) (string, error) {
	b := bytes.NewBufferString("")
	fmt.Fprintf(b, "mean RI: %s\n", FormatFloat(r.Summary.MeanRI))
	fmt.Fprintf(b, "mean sRI: %s\n", FormatFloat(r.Summary.MeanSRI))
	fmt.Fprintf(b, "mean wsRI: %s\n", FormatFloat(r.Summary.MeanWSRI))
	return b.String(), nil
}

// TsvReportFormatter outputs the summary lines followed by a tab-separated table with a header and one row per head.
// Nothing is quoted.
func TsvReportFormatter(r Report) (string, error) {
	s, err := SummaryReportFormatter(r)
	if err != nil {
		return "", err
	}
	b := bytes.NewBufferString(s)

	h := append([]string{}, Columns...)
	h = append(h, r.Measures...)
	b.WriteString(strings.Join(h, "\t"))
	b.WriteByte('\n')

	for i, result := range r.Results {
		record := Row(result)
		if i < len(r.Extra) {
			for _, v := range r.Extra[i] {
				record = append(record, FormatFloat(v))
			}
		}
		b.WriteString(strings.Join(record, "\t"))
		b.WriteByte('\n')
	}
	return b.String(), nil
}
