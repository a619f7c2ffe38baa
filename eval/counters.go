package eval

import (
	"github.com/hscells/wsieval/record"
	"math"
)

// Threshold is the tolerance band used when classifying a pair. A pair whose sense match ratio is at least
// 1-Threshold agrees, a pair whose ratio is at most Threshold disagrees, and anything in between is uncertain.
const Threshold = 0.25

// Bucket is the contingency cell a pair of instances is classified into.
type Bucket uint8

const (
	// TruePositive is a pair in the same cluster whose senses agree.
	TruePositive Bucket = iota
	// FalsePositive is a pair in the same cluster whose senses disagree.
	FalsePositive
	// TrueNegative is a pair in different clusters whose senses disagree.
	TrueNegative
	// FalseNegative is a pair in different clusters whose senses agree.
	FalseNegative
	// UncertainPositive is a pair in the same cluster whose senses partially agree.
	UncertainPositive
	// UncertainNegative is a pair in different clusters whose senses partially agree.
	UncertainNegative
)

func (b Bucket) String() string {
	switch b {
	case TruePositive:
		return "TP"
	case FalsePositive:
		return "FP"
	case TrueNegative:
		return "TN"
	case FalseNegative:
		return "FN"
	case UncertainPositive:
		return "UP"
	case UncertainNegative:
		return "UN"
	}
	return "?"
}

// Agreement is the classification of one ordered pair of instances.
type Agreement struct {
	Bucket Bucket
	// Ratio is the fraction of valid sense slots on which the pair matches.
	Ratio float64
	// Weight is the pair's contribution to the weighted counters.
	Weight float64
	// SameCluster is true when both instances were assigned the same cluster.
	SameCluster bool
}

// Counters is the pairwise contingency table of a single group.
type Counters struct {
	TP, FP, TN, FN, UP, UN int
	TPw, FPw, TNw, FNw     float64
}

// Weight maps a sense match ratio onto [0, 1]; 0 at a ratio of one half and 1 at either extreme.
func Weight(ratio float64) float64 {
	return 2 * math.Abs(0.5-ratio)
}

// ComparePair classifies the ordered pair (a, b). The second return value is false when fewer than half of the
// sense slots can be compared, in which case the pair must not be counted at all.
func ComparePair(a, b record.Record) (Agreement, bool) {
	total := len(a.Senses)
	var valid, matched int
	for i := range a.Senses {
		s1, s2 := a.Senses[i], b.Senses[i]
		if record.Unclear(s1) || record.Unclear(s2) {
			continue
		}
		valid++
		if s1 == s2 {
			matched++
		}
	}

	if !(float64(valid)/float64(total) > 0.5) {
		return Agreement{}, false
	}

	ratio := float64(matched) / float64(valid)
	agreement := Agreement{
		Ratio:       ratio,
		Weight:      Weight(ratio),
		SameCluster: a.Cluster == b.Cluster,
	}

	switch {
	case agreement.SameCluster && ratio >= 1-Threshold:
		agreement.Bucket = TruePositive
	case agreement.SameCluster && ratio <= Threshold:
		agreement.Bucket = FalsePositive
	case agreement.SameCluster:
		agreement.Bucket = UncertainPositive
	case ratio >= 1-Threshold:
		agreement.Bucket = FalseNegative
	case ratio <= Threshold:
		agreement.Bucket = TrueNegative
	default:
		agreement.Bucket = UncertainNegative
	}
	return agreement, true
}

// Add folds a pair classification into the counters.
func (c *Counters) Add(a Agreement) {
	switch a.Bucket {
	case TruePositive:
		c.TP++
	case FalsePositive:
		c.FP++
	case TrueNegative:
		c.TN++
	case FalseNegative:
		c.FN++
	case UncertainPositive:
		c.UP++
	case UncertainNegative:
		c.UN++
	}

	// The weighted counters split at one half rather than at the tolerance band.
	switch {
	case a.Ratio > 0.5 && a.SameCluster:
		c.TPw += a.Weight
	case a.Ratio > 0.5:
		c.FNw += a.Weight
	case a.SameCluster:
		c.FPw += a.Weight
	default:
		c.TNw += a.Weight
	}
}

// Classify compares every ordered pair of instances in a group, including each instance with itself.
func Classify(g record.Group) Counters {
	var c Counters
	for _, a := range g.Records {
		for _, b := range g.Records {
			if agreement, ok := ComparePair(a, b); ok {
				c.Add(agreement)
			}
		}
	}
	return c
}
