package eval_test

import (
	"github.com/hscells/wsieval/eval"
	"math"
	"testing"
)

func TestAggregate(t *testing.T) {
	results := []eval.GroupResult{
		{Head: "a", RI: 1, SRI: 0.5, WSRI: 0.25, Instances: 10},
		{Head: "b", RI: 0.5, SRI: -0.5, WSRI: 0.75, Instances: 2},
		{Head: "c", RI: 0.75, SRI: 0.3, WSRI: 0.2, Instances: 100},
	}
	s := eval.Aggregate(results)

	if math.Abs(s.MeanRI-0.75) > 1e-12 {
		t.Errorf("MeanRI = %v, want 0.75", s.MeanRI)
	}
	if math.Abs(s.MeanSRI-0.1) > 1e-12 {
		t.Errorf("MeanSRI = %v, want 0.1", s.MeanSRI)
	}
	if math.Abs(s.MeanWSRI-0.4) > 1e-12 {
		t.Errorf("MeanWSRI = %v, want 0.4", s.MeanWSRI)
	}
	if s.Groups != 3 || s.Instances != 112 {
		t.Errorf("Groups = %d, Instances = %d, want 3 and 112", s.Groups, s.Instances)
	}
}

func TestAggregateNaN(t *testing.T) {
	results := []eval.GroupResult{
		eval.Score(group(rec("A", "1", "1"), rec("A", "1", "1"))),
		eval.Score(group(rec("A", "1", "1"), rec("B", "2", "2"))),
	}
	s := eval.Aggregate(results)
	if s.MeanRI != 1 {
		t.Errorf("MeanRI = %v, want 1", s.MeanRI)
	}
	if !math.IsNaN(s.MeanSRI) || !math.IsNaN(s.MeanWSRI) {
		t.Errorf("MeanSRI = %v, MeanWSRI = %v, want NaN", s.MeanSRI, s.MeanWSRI)
	}
}

func TestAggregateEmpty(t *testing.T) {
	s := eval.Aggregate(nil)
	if s.Groups != 0 || !math.IsNaN(s.MeanRI) {
		t.Errorf("Aggregate(nil) = %+v, want no groups and NaN means", s)
	}
}
