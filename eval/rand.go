package eval

type randIndex struct{}
type signedRandIndex struct{}
type weightedSignedRandIndex struct{}

var (
	// RandIndex is the fraction of definitively classified pairs on which the clustering and the gold senses agree.
	RandIndex = randIndex{}
	// SignedRandIndex is an association coefficient over the hard pair counts.
	SignedRandIndex = signedRandIndex{}
	// WeightedSignedRandIndex is SignedRandIndex computed over the weighted pair counts.
	WeightedSignedRandIndex = weightedSignedRandIndex{}
)

func (randIndex) Score(c Counters) float64 {
	return float64(c.TP+c.TN) / float64(c.TP+c.TN+c.FP+c.FN)
}

func (randIndex) Name() string {
	return "RI"
}

func (signedRandIndex) Score(c Counters) float64 {
	return signed(float64(c.TP), float64(c.FP), float64(c.TN), float64(c.FN))
}

func (signedRandIndex) Name() string {
	return "sRI"
}

func (weightedSignedRandIndex) Score(c Counters) float64 {
	return signed(c.TPw, c.FPw, c.TNw, c.FNw)
}

func (weightedSignedRandIndex) Name() string {
	return "wsRI"
}

// signed is similar in shape to the Matthews correlation coefficient, however the denominator is the sum of the
// two marginal products rather than the square root of their product.
func signed(tp, fp, tn, fn float64) float64 {
	return 2 * (tp*tn - fp*fn) / ((tn+fn)*(tp+fp) + (tn+fp)*(tp+fn))
}
