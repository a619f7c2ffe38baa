package eval

import (
	"fmt"
	"sort"
	"strings"
)

// Evaluator is an interface for deriving a measure from the pairwise counters of a group.
type Evaluator interface {
	Score(c Counters) float64
	Name() string
}

// Measures maps the names accepted on the command line to evaluators.
var Measures = map[string]Evaluator{
	"precision": PrecisionEvaluator,
	"recall":    RecallEvaluator,
	"f1":        F1Measure,
	"f0.5":      F05Measure,
	"f3":        F3Measure,
	"ri":        RandIndex,
	"sri":       SignedRandIndex,
	"wsri":      WeightedSignedRandIndex,
}

// Evaluate scores the counters using supplied evaluation measurements.
func Evaluate(evaluators []Evaluator, c Counters) map[string]float64 {
	scores := make(map[string]float64, len(evaluators))
	for _, evaluator := range evaluators {
		scores[evaluator.Name()] = evaluator.Score(c)
	}
	return scores
}

// Lookup finds the evaluators registered under each of the given names.
func Lookup(names ...string) ([]Evaluator, error) {
	evaluators := make([]Evaluator, len(names))
	for i, name := range names {
		e, ok := Measures[strings.ToLower(name)]
		if !ok {
			known := make([]string, 0, len(Measures))
			for k := range Measures {
				known = append(known, k)
			}
			sort.Strings(known)
			return nil, fmt.Errorf("unknown measure %q (known measures: %s)", name, strings.Join(known, ", "))
		}
		evaluators[i] = e
	}
	return evaluators, nil
}
