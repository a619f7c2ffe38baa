package eval

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary is the dataset level view of a set of group results. The means are unweighted over groups.
type Summary struct {
	MeanRI    float64
	MeanSRI   float64
	MeanWSRI  float64
	Groups    int
	Instances int
}

// Aggregate computes the mean RI, sRI, and wsRI of the groups. Non-finite group scores are not filtered, so a single
// NaN makes the corresponding mean NaN.
func Aggregate(results []GroupResult) Summary {
	ri := make([]float64, len(results))
	sri := make([]float64, len(results))
	wsri := make([]float64, len(results))
	instances := make([]float64, len(results))
	for i, r := range results {
		ri[i] = r.RI
		sri[i] = r.SRI
		wsri[i] = r.WSRI
		instances[i] = float64(r.Instances)
	}
	return Summary{
		MeanRI:    stat.Mean(ri, nil),
		MeanSRI:   stat.Mean(sri, nil),
		MeanWSRI:  stat.Mean(wsri, nil),
		Groups:    len(results),
		Instances: int(floats.Sum(instances)),
	}
}
