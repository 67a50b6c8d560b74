package metrics

import (
	"fmt"
	"sort"

	"cc-analytics-go/internal/types"
)

type SentimentJourney struct {
	Delta        float64 `json:"delta"`
	Trend        string  `json:"trend"`
	RecoveryRate float64 `json:"recovery_rate"`
}

// ComputeSentimentJourney classifies the start-to-end sentiment movement of
// one call. Recovery rate measures how much of a negative start was recovered.
func ComputeSentimentJourney(start, end float64) SentimentJourney {
	delta := end - start

	trend := "Stable"
	switch {
	case delta > 0.3:
		trend = "Strong Improvement"
	case delta > 0.1:
		trend = "Slight Improvement"
	case delta < -0.1:
		trend = "Deterioration"
	}

	recovery := 0.0
	if start < 0 {
		recovery = delta / -start * 100
	} else if delta > 0 {
		recovery = 100.0
	}

	return SentimentJourney{
		Delta:        round(delta, 3),
		Trend:        trend,
		RecoveryRate: round(recovery, 1),
	}
}

// BucketSentiment maps a -1..+1 score into Neg / Neutral / Pos.
func BucketSentiment(v float64) string {
	switch {
	case v < -0.2:
		return "Neg"
	case v <= 0.2:
		return "Neutral"
	default:
		return "Pos"
	}
}

type SentimentTransition struct {
	StartBucket string  `json:"start_bucket"`
	EndBucket   string  `json:"end_bucket"`
	Count       int     `json:"count"`
	Pct         float64 `json:"pct"`
}

// SentimentTransitions builds the start-to-end bucket transition matrix used
// by the Sankey widget.
func SentimentTransitions(calls []types.CallRecord) []SentimentTransition {
	if len(calls) == 0 {
		return nil
	}

	counts := map[[2]string]int{}
	for _, c := range calls {
		key := [2]string{BucketSentiment(c.SentimentStart), BucketSentiment(c.SentimentEnd)}
		counts[key]++
	}

	out := make([]SentimentTransition, 0, len(counts))
	for key, n := range counts {
		out = append(out, SentimentTransition{
			StartBucket: key[0],
			EndBucket:   key[1],
			Count:       n,
			Pct:         round(100*float64(n)/float64(len(calls)), 1),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartBucket != out[j].StartBucket {
			return out[i].StartBucket < out[j].StartBucket
		}
		return out[i].EndBucket < out[j].EndBucket
	})
	return out
}

type SentimentImprovementKPIs struct {
	PctImproving       float64 `json:"pct_improving"`
	PctStable          float64 `json:"pct_stable"`
	PctDeteriorating   float64 `json:"pct_deteriorating"`
	CountImproving     int     `json:"count_improving"`
	CountStable        int     `json:"count_stable"`
	CountDeteriorating int     `json:"count_deteriorating"`
}

// ComputeSentimentImprovementKPIs splits calls by sentiment delta at ±0.1.
func ComputeSentimentImprovementKPIs(calls []types.CallRecord) SentimentImprovementKPIs {
	if len(calls) == 0 {
		return SentimentImprovementKPIs{}
	}

	improving, deteriorating := 0, 0
	for _, c := range calls {
		delta := c.SentimentEnd - c.SentimentStart
		if delta > 0.1 {
			improving++
		} else if delta < -0.1 {
			deteriorating++
		}
	}
	stable := len(calls) - improving - deteriorating
	total := float64(len(calls))

	return SentimentImprovementKPIs{
		PctImproving:       round(100*float64(improving)/total, 1),
		PctStable:          round(100*float64(stable)/total, 1),
		PctDeteriorating:   round(100*float64(deteriorating)/total, 1),
		CountImproving:     improving,
		CountStable:        stable,
		CountDeteriorating: deteriorating,
	}
}

type NamedCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type SentimentSummary struct {
	ImprovingPct     float64      `json:"improving_pct"`
	StablePct        float64      `json:"stable_pct"`
	DecliningPct     float64      `json:"declining_pct"`
	ImprovingCount   int          `json:"improving_count"`
	StableCount      int          `json:"stable_count"`
	DecliningCount   int          `json:"declining_count"`
	TopFlow          string       `json:"top_flow"`
	TopFlowCount     int          `json:"top_flow_count"`
	DecliningByTopic []NamedCount `json:"declining_by_topic"`
	DecliningByAgent []NamedCount `json:"declining_by_agent"`
}

// coarse buckets for the journey summary, wider than BucketSentiment's
func journeyBucket(v float64) string {
	switch {
	case v < -0.3:
		return "Negative"
	case v < 0.3:
		return "Neutral"
	default:
		return "Positive"
	}
}

// ComputeSentimentSummary aggregates the customer sentiment journey view:
// improving/declining split at ±0.2, the most common bucket flow and who or
// what drives the declining calls.
func ComputeSentimentSummary(calls []types.CallRecord) SentimentSummary {
	if len(calls) == 0 {
		return SentimentSummary{TopFlow: "N/A"}
	}

	improving, declining := 0, 0
	flows := map[string]int{}
	topicCounts := map[string]int{}
	agentCounts := map[string]int{}

	for _, c := range calls {
		delta := c.SentimentEnd - c.SentimentStart
		if delta > 0.2 {
			improving++
		} else if delta < -0.2 {
			declining++
			topicCounts[c.Resolution.IssueCategory]++
			agentCounts[c.AgentName]++
		}
		flow := fmt.Sprintf("%s → %s", journeyBucket(c.SentimentStart), journeyBucket(c.SentimentEnd))
		flows[flow]++
	}
	stable := len(calls) - improving - declining
	total := float64(len(calls))

	topFlow, topFlowCount := "N/A", 0
	for flow, n := range flows {
		if n > topFlowCount || (n == topFlowCount && flow < topFlow) {
			topFlow, topFlowCount = flow, n
		}
	}

	return SentimentSummary{
		ImprovingPct:     round(100*float64(improving)/total, 1),
		StablePct:        round(100*float64(stable)/total, 1),
		DecliningPct:     round(100*float64(declining)/total, 1),
		ImprovingCount:   improving,
		StableCount:      stable,
		DecliningCount:   declining,
		TopFlow:          topFlow,
		TopFlowCount:     topFlowCount,
		DecliningByTopic: topCounts(topicCounts, 3),
		DecliningByAgent: topCounts(agentCounts, 3),
	}
}

func topCounts(counts map[string]int, n int) []NamedCount {
	out := make([]NamedCount, 0, len(counts))
	for name, c := range counts {
		out = append(out, NamedCount{Name: name, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}
