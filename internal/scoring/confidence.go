package scoring

// Confidence derives a 0-10 confidence scalar from the counts of
// ambivalent and strongly negative option selections. This is a
// presentation-layer heuristic, not a statistical measure: each ambivalent
// pick costs one point, each negative pick two.
func Confidence(ambivalentCount, negativeCount int) int {
	return clampInt(10-ambivalentCount-negativeCount*2, 0, 10)
}
