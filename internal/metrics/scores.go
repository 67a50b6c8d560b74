package metrics

import (
	"math"

	"cc-analytics-go/internal/types"
)

// QualityBinaryScore scores the four rated quality booleans on 0-100.
// customer_name_used is informational and stays out of the score.
func QualityBinaryScore(q types.Quality) float64 {
	passed := 0
	for _, ok := range []bool{q.ActiveListening, q.EmpathyShown, q.SolutionOffered, q.ProfessionalTone} {
		if ok {
			passed++
		}
	}
	return round(100*float64(passed)/4, 1)
}

// AES weights: sentiment 25%, compliance 30%, resolution 30%, quality 15%.
func AES(sentimentStart, sentimentEnd, complianceScore float64, resolutionAchieved string, qualityScore float64) float64 {
	// Sentiment delta spans -2..+2; rescale to 0..100.
	delta := sentimentEnd - sentimentStart
	sentimentComponent := math.Max(0, math.Min(100, (delta+2)/4*100))

	resolutionComponent := 0.0
	switch resolutionAchieved {
	case types.ResolutionFull:
		resolutionComponent = 100
	case types.ResolutionPartial:
		resolutionComponent = 50
	}

	score := 0.25*sentimentComponent +
		0.30*complianceScore +
		0.30*resolutionComponent +
		0.15*qualityScore
	return round(score, 1)
}

// AESForCall derives the per-call compliance and quality inputs and scores
// the call.
func AESForCall(c types.CallRecord) float64 {
	comp := ComplianceScore(c.Compliance)
	qual := QualityBinaryScore(c.Quality)
	return AES(c.SentimentStart, c.SentimentEnd, comp.Score, c.Resolution.Achieved, qual)
}

type ACIResult struct {
	ACI       float64 `json:"aci"`
	Stability string  `json:"stability"`
	Std       float64 `json:"std"`
	Mean      float64 `json:"mean"`
}

// ACI is an inverted coefficient of variation over an agent's AES values:
// 100 - 100*(stddev/mean), floored at 0. Fewer than two samples score a
// perfect 100 with no stability label.
func ACI(aesValues []float64) ACIResult {
	if len(aesValues) < 2 {
		mean := 0.0
		if len(aesValues) == 1 {
			mean = aesValues[0]
		}
		return ACIResult{ACI: 100.0, Stability: "N/A", Std: 0.0, Mean: round(mean, 1)}
	}

	mean := 0.0
	for _, v := range aesValues {
		mean += v
	}
	mean /= float64(len(aesValues))

	// population stddev
	variance := 0.0
	for _, v := range aesValues {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(aesValues))
	std := math.Sqrt(variance)

	cv := 0.0
	if mean > 0 {
		cv = std / mean
	}
	score := math.Max(0, 100-100*cv)

	stability := "Highly Unstable"
	switch {
	case score >= 85:
		stability = "Very Stable"
	case score >= 70:
		stability = "Stable"
	case score >= 50:
		stability = "Unstable"
	}

	return ACIResult{
		ACI:       round(score, 1),
		Stability: stability,
		Std:       round(std, 1),
		Mean:      round(mean, 1),
	}
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
