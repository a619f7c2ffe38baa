package eval

import "github.com/hscells/wsieval/record"

// GroupResult contains the scores of a single head. Any of the derived measures may be NaN or infinite when the
// counters they depend on are empty.
type GroupResult struct {
	Head      string
	RI        float64
	SRI       float64
	WSRI      float64
	TP        int
	FP        int
	TN        int
	FN        int
	UP        int
	UN        int
	Precision float64
	Recall    float64
	F1        float64
	Instances int

	TPw, FPw, TNw, FNw float64
}

// Counters recovers the pairwise counters the result was derived from.
func (r GroupResult) Counters() Counters {
	return Counters{
		TP: r.TP, FP: r.FP, TN: r.TN, FN: r.FN, UP: r.UP, UN: r.UN,
		TPw: r.TPw, FPw: r.FPw, TNw: r.TNw, FNw: r.FNw,
	}
}

// Derive computes the measures of a group from its counters.
func Derive(head string, instances int, c Counters) GroupResult {
	return GroupResult{
		Head:      head,
		RI:        RandIndex.Score(c),
		SRI:       SignedRandIndex.Score(c),
		WSRI:      WeightedSignedRandIndex.Score(c),
		TP:        c.TP,
		FP:        c.FP,
		TN:        c.TN,
		FN:        c.FN,
		UP:        c.UP,
		UN:        c.UN,
		Precision: PrecisionEvaluator.Score(c),
		Recall:    RecallEvaluator.Score(c),
		F1:        F1Measure.Score(c),
		Instances: instances,
		TPw:       c.TPw,
		FPw:       c.FPw,
		TNw:       c.TNw,
		FNw:       c.FNw,
	}
}

// Score classifies and derives the measures of a group in one step.
func Score(g record.Group) GroupResult {
	return Derive(g.Head, g.Len(), Classify(g))
}
