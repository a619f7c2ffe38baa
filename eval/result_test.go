package eval_test

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/hscells/wsieval/eval"
	"math"
	"testing"
)

func TestScore(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name  string
		group func() eval.GroupResult
		want  eval.GroupResult
	}{
		{
			// Every pair is in the same cluster and agrees, so there are no negatives at all.
			name: "all agree",
			group: func() eval.GroupResult {
				return eval.Score(group(rec("A", "1", "1"), rec("A", "1", "1")))
			},
			want: eval.GroupResult{
				Head: "X", RI: 1, SRI: nan, WSRI: nan,
				TP: 4, Precision: 1, Recall: 1, F1: 1, Instances: 2,
				TPw: 4,
			},
		},
		{
			name: "one cluster for two senses",
			group: func() eval.GroupResult {
				return eval.Score(group(rec("A", "1", "1"), rec("A", "2", "2")))
			},
			want: eval.GroupResult{
				Head: "X", RI: 0.5, SRI: 0, WSRI: 0,
				TP: 2, FP: 2, Precision: 0.5, Recall: 1, F1: 2.0 / 3.0, Instances: 2,
				TPw: 2, FPw: 2,
			},
		},
		{
			name: "perfect clustering",
			group: func() eval.GroupResult {
				return eval.Score(group(rec("A", "1", "1"), rec("B", "2", "2")))
			},
			want: eval.GroupResult{
				Head: "X", RI: 1, SRI: 1, WSRI: 1,
				TP: 2, TN: 2, Precision: 1, Recall: 1, F1: 1, Instances: 2,
				TPw: 2, TNw: 2,
			},
		},
		{
			name: "split sense",
			group: func() eval.GroupResult {
				return eval.Score(group(rec("A", "1", "1"), rec("B", "1", "1")))
			},
			want: eval.GroupResult{
				Head: "X", RI: 0.5, SRI: 0, WSRI: 0,
				TP: 2, FN: 2, Precision: 1, Recall: 0.5, F1: 2.0 / 3.0, Instances: 2,
				TPw: 2, FNw: 2,
			},
		},
		{
			name: "no countable pairs",
			group: func() eval.GroupResult {
				return eval.Score(group(rec("A", "1", "x"), rec("A", "x", "2")))
			},
			want: eval.GroupResult{
				Head: "X", RI: nan, SRI: nan, WSRI: nan,
				Precision: nan, Recall: nan, F1: nan, Instances: 2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.group()
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateNaNs(), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("Score() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDeriveNonFinite(t *testing.T) {
	// No false positives and no true positives makes precision 0/0.
	r := eval.Derive("X", 3, eval.Counters{TN: 4, FN: 2})
	if !math.IsNaN(r.Precision) {
		t.Errorf("Precision = %v, want NaN", r.Precision)
	}
	if r.Recall != 0 {
		t.Errorf("Recall = %v, want 0", r.Recall)
	}
	if !math.IsNaN(r.F1) {
		t.Errorf("F1 = %v, want NaN", r.F1)
	}
	if math.Abs(r.RI-4.0/6.0) > 1e-12 {
		t.Errorf("RI = %v, want %v", r.RI, 4.0/6.0)
	}
}

func TestSignedRandIndex(t *testing.T) {
	c := eval.Counters{TP: 6, FP: 2, TN: 5, FN: 1, TPw: 3.5, FPw: 0.5, TNw: 2, FNw: 1}

	// 2*(6*5 - 2*1) / ((5+1)*(6+2) + (5+2)*(6+1)) = 56 / 97
	if got, want := eval.SignedRandIndex.Score(c), 56.0/97.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("sRI = %v, want %v", got, want)
	}

	// 2*(3.5*2 - 0.5*1) / ((2+1)*(3.5+0.5) + (2+0.5)*(3.5+1)) = 13 / 23.25
	if got, want := eval.WeightedSignedRandIndex.Score(c), 13.0/23.25; math.Abs(got-want) > 1e-12 {
		t.Errorf("wsRI = %v, want %v", got, want)
	}

	// The additive denominator differs from the Matthews correlation coefficient.
	mcc := (6.0*5.0 - 2.0*1.0) / math.Sqrt((6+2)*(6+1)*(5+2)*(5+1))
	if math.Abs(eval.SignedRandIndex.Score(c)-mcc) < 1e-6 {
		t.Errorf("sRI = %v should not equal MCC %v", eval.SignedRandIndex.Score(c), mcc)
	}
}

func TestGroupResultCounters(t *testing.T) {
	c := eval.Classify(mixed)
	r := eval.Derive(mixed.Head, mixed.Len(), c)
	if r.Counters() != c {
		t.Errorf("Counters() = %+v, want %+v", r.Counters(), c)
	}
}
