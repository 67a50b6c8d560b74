package generator

import (
	"math/rand"

	"cc-analytics-go/internal/types"
)

// Synthetic AutoQA outputs. Probabilities follow the demo dataset's tuning:
// most checks pass, failure odds rise with topic complexity.

func generateCompliance(rng *rand.Rand) types.Compliance {
	c := types.Compliance{
		GreetingProper:          rng.Float64() > 0.05,
		Identification:          rng.Float64() > 0.08,
		CustomerVerification:    rng.Float64() > 0.1,
		DataProtectionMentioned: rng.Float64() > 0.12,
		CallRecordingNotice:     rng.Float64() > 0.15,
		ClearCommunication:      rng.Float64() > 0.03,
		NoMisleadingInfo:        rng.Float64() > 0.02,
		ProperClosing:           rng.Float64() > 0.1,
		OptOutOffered:           rng.Float64() > 0.2,
	}

	violations := []string{}
	if !c.DataProtectionMentioned && rng.Float64() < 0.5 {
		violations = append(violations, "gdpr_missing")
	}
	if !c.CustomerVerification && rng.Float64() < 0.3 {
		violations = append(violations, "id_not_verified")
	}
	c.CriticalViolations = violations
	return c
}

func generateResolution(rng *rand.Rand, topic string) types.Resolution {
	complexity := Topics[topic].Complexity

	// Higher complexity lowers the odds of a full resolution.
	fullProb := 0.85 - float64(complexity)*0.1

	res := types.Resolution{
		IssueIdentified: true,
		IssueCategory:   topic,
	}
	if rng.Float64() < fullProb {
		res.Achieved = types.ResolutionFull
		res.CustomerSatisfied = rng.Float64() > 0.1
		res.CallbackNeeded = false
	} else if rng.Float64() < 0.7 {
		res.Achieved = types.ResolutionPartial
		res.CustomerSatisfied = rng.Float64() > 0.5
		res.CallbackNeeded = rng.Float64() < 0.4
	} else {
		res.Achieved = types.ResolutionNone
		res.CustomerSatisfied = false
		res.CallbackNeeded = rng.Float64() < 0.6
	}

	res.Escalated = rng.Float64() < 0.05+float64(complexity)*0.02
	if res.Escalated {
		res.EscalationReason = choice(rng, []string{"authority", "knowledge", "customer_request"})
	} else {
		res.EscalationReason = "none"
	}
	return res
}

func generateQuality(rng *rand.Rand, res types.Resolution) types.Quality {
	// Quality correlates with resolution outcome.
	baseProb := 0.6
	if res.Achieved == types.ResolutionFull {
		baseProb = 0.85
	}

	q := types.Quality{
		ActiveListening:  rng.Float64() < baseProb,
		EmpathyShown:     rng.Float64() < baseProb-0.1,
		SolutionOffered:  rng.Float64() < baseProb,
		ProfessionalTone: rng.Float64() < baseProb+0.1,
		CustomerNameUsed: rng.Float64() < 0.5,
	}

	scriptOptions := []string{"good", "partial", "poor"}
	weights := []float64{0.4, 0.4, 0.2}
	if baseProb > 0.7 {
		weights = []float64{0.7, 0.25, 0.05}
	}
	q.ScriptAdherence = weightedChoice(rng, scriptOptions, weights)
	q.CallControl = weightedChoice(rng, scriptOptions, weights)

	positive := []string{}
	negative := []string{}
	if q.EmpathyShown {
		positive = append(positive, "Excellent empathy demonstrated")
	}
	if q.SolutionOffered {
		positive = append(positive, "Clear solution provided")
	}
	if !q.ActiveListening {
		negative = append(negative, "Missed customer cues")
	}
	if q.ScriptAdherence == "poor" {
		negative = append(negative, "Script not followed")
	}
	q.PositiveMoments = positive
	q.NegativeMoments = negative
	return q
}

func generateTopicData(rng *rand.Rand, topic, language string) types.TopicData {
	return types.TopicData{
		PrimaryTopic:    topic,
		SubTopics:       sample(rng, subTopics[topic], 1+rng.Intn(2)),
		CustomerIntent:  weightedChoice(rng, intents, intentWeights[topic]),
		TopicComplexity: Topics[topic].Complexity,
		Keywords:        []string{topic, language},
	}
}

// generateSentimentJourney returns (start, middle, end) in [-1, 1]. The start
// comes from the topic profile, the middle drifts up slightly and the end
// depends on the resolution outcome.
func generateSentimentJourney(rng *rand.Rand, topic string, res types.Resolution) (float64, float64, float64) {
	start := clamp(Topics[topic].SentimentStart+uniform(rng, -0.2, 0.2), -1, 1)
	middle := clamp(start+uniform(rng, 0.1, 0.3), -1, 1)

	var end float64
	switch res.Achieved {
	case types.ResolutionFull:
		end = uniform(rng, 0.5, 0.9)
	case types.ResolutionPartial:
		end = uniform(rng, 0.0, 0.5)
	default:
		end = uniform(rng, -0.6, 0.1)
	}
	end = clamp(end, -1, 1)

	return round(start, 3), round(middle, 3), round(end, 3)
}

// generateSalesOpportunity returns nil for the 30% of Sales calls without one.
func generateSalesOpportunity(rng *rand.Rand) *types.SalesOpportunity {
	if rng.Float64() > 0.7 {
		return nil
	}

	oppType := choice(rng, []string{"upsell", "cross_sell", "closing"})

	successRates := map[string]float64{"upsell": 0.35, "cross_sell": 0.42, "closing": 0.61}
	valueRanges := map[string][2]float64{
		"upsell":     {50, 200},
		"cross_sell": {30, 150},
		"closing":    {100, 500},
	}

	vr := valueRanges[oppType]
	return &types.SalesOpportunity{
		Type:    oppType,
		Success: rng.Float64() < successRates[oppType],
		Value:   round(uniform(rng, vr[0], vr[1]), 2),
		Product: choice(rng, SalesProducts),
	}
}

// compliancePassRate is the fraction of the nine checks that passed.
func compliancePassRate(c types.Compliance) float64 {
	checks := c.Checks()
	passed := 0
	for _, ok := range checks {
		if ok {
			passed++
		}
	}
	return float64(passed) / float64(len(checks))
}

// qualityBinaryScore scores the four rated quality booleans on 0-100.
func qualityBinaryScore(q types.Quality) float64 {
	passed := 0
	for _, ok := range []bool{q.ActiveListening, q.EmpathyShown, q.SolutionOffered, q.ProfessionalTone} {
		if ok {
			passed++
		}
	}
	return round(100*float64(passed)/4, 1)
}
