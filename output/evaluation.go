package output

import (
	"encoding/json"
	"math"
)

// jsonFloat keeps non-finite values, which encoding/json refuses, as the strings used in the tsv output.
func jsonFloat(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return FormatFloat(v)
	}
	return v
}

// JsonReportFormatter outputs the report in a JSON format. Heads are keys of the "heads" object.
func JsonReportFormatter(r Report) (string, error) {
	heads := make(map[string]map[string]interface{}, len(r.Results))
	for i, result := range r.Results {
		m := map[string]interface{}{
			"RI":        jsonFloat(result.RI),
			"sRI":       jsonFloat(result.SRI),
			"wsRI":      jsonFloat(result.WSRI),
			"TP":        result.TP,
			"FP":        result.FP,
			"TN":        result.TN,
			"FN":        result.FN,
			"UP":        result.UP,
			"UN":        result.UN,
			"Precision": jsonFloat(result.Precision),
			"Recall":    jsonFloat(result.Recall),
			"F1":        jsonFloat(result.F1),
			"Instances": result.Instances,
		}
		if i < len(r.Extra) {
			for k, name := range r.Measures {
				m[name] = jsonFloat(r.Extra[i][k])
			}
		}
		heads[result.Head] = m
	}

	v, err := json.MarshalIndent(map[string]interface{}{
		"summary": map[string]interface{}{
			"RI":        jsonFloat(r.Summary.MeanRI),
			"sRI":       jsonFloat(r.Summary.MeanSRI),
			"wsRI":      jsonFloat(r.Summary.MeanWSRI),
			"Heads":     r.Summary.Groups,
			"Instances": r.Summary.Instances,
		},
		"heads": heads,
	}, "", "    ")
	if err != nil {
		return "", err
	}
	return string(v), nil
}
