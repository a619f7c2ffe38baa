package eval

import (
	"fmt"
	"math"
)

type recallEvaluator struct{}
type precisionEvaluator struct{}

// FMeasure computes f-measure, with the beta parameter controlling the precision and recall trade-off.
type FMeasure struct {
	beta float64
}

var (
	// RecallEvaluator calculates pairwise recall.
	RecallEvaluator = recallEvaluator{}
	// PrecisionEvaluator calculates pairwise precision.
	PrecisionEvaluator = precisionEvaluator{}

	// F1Measure is f-measure with beta=1.
	F1Measure = FMeasure{beta: 1}
	// F05Measure is f-measure with beta=0.5.
	F05Measure = FMeasure{beta: 0.5}
	// F3Measure is f-measure with beta=3.
	F3Measure = FMeasure{beta: 3}
)

func (recallEvaluator) Name() string {
	return "Recall"
}

// Score is TP/(TP+FN). Uncertain pairs are not counted.
func (recallEvaluator) Score(c Counters) float64 {
	return float64(c.TP) / float64(c.TP+c.FN)
}

func (precisionEvaluator) Name() string {
	return "Precision"
}

// Score is TP/(TP+FP). Uncertain pairs are not counted.
func (precisionEvaluator) Score(c Counters) float64 {
	return float64(c.TP) / float64(c.TP+c.FP)
}

// Score uses the beta parameter to compute f-measure. Undefined precision or recall results in NaN.
func (f FMeasure) Score(c Counters) float64 {
	precision := PrecisionEvaluator.Score(c)
	recall := RecallEvaluator.Score(c)
	betaSquared := math.Pow(f.beta, 2)
	return ((1 + betaSquared) * (precision * recall)) / ((betaSquared * precision) + recall)
}

// Name calculates the name of the f-measure with beta parameter.
func (f FMeasure) Name() string {
	if f.beta == 1 {
		return "F1"
	}
	return fmt.Sprintf("F%v", f.beta)
}
