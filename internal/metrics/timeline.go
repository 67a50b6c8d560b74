package metrics

import "cc-analytics-go/internal/types"

type TimelineStats struct {
	PauseCount      int     `json:"pause_count"`
	HoldCount       int     `json:"hold_count"`
	PauseTotal      float64 `json:"pause_total"` // seconds
	HoldTotal       float64 `json:"hold_total"`
	AgentWPMAvg     float64 `json:"agent_wpm_avg"`
	AgentWPMPeak    int     `json:"agent_wpm_peak"`
	CustomerWPMAvg  float64 `json:"customer_wpm_avg"`
	CustomerWPMPeak int     `json:"customer_wpm_peak"`
	SentimentDelta  float64 `json:"sentiment_delta"`
}

// CalculateTimelineStats summarizes one call's timeline: silence breakdown,
// per-speaker speaking rate and the overall sentiment movement.
func CalculateTimelineStats(segments []types.TranscriptSegment, silences []types.SilencePeriod, sentimentStart, sentimentEnd float64) TimelineStats {
	stats := TimelineStats{SentimentDelta: round(sentimentEnd-sentimentStart, 3)}

	for _, s := range silences {
		if s.Type == "hold" {
			stats.HoldCount++
			stats.HoldTotal += s.Duration
		} else {
			stats.PauseCount++
			stats.PauseTotal += s.Duration
		}
	}
	stats.PauseTotal = round(stats.PauseTotal, 2)
	stats.HoldTotal = round(stats.HoldTotal, 2)

	agentSum, customerSum := 0, 0
	agentN, customerN := 0, 0
	for _, seg := range segments {
		if seg.Speaker == "AGENT" {
			agentSum += seg.WPM
			agentN++
			if seg.WPM > stats.AgentWPMPeak {
				stats.AgentWPMPeak = seg.WPM
			}
		} else {
			customerSum += seg.WPM
			customerN++
			if seg.WPM > stats.CustomerWPMPeak {
				stats.CustomerWPMPeak = seg.WPM
			}
		}
	}
	if agentN > 0 {
		stats.AgentWPMAvg = round(float64(agentSum)/float64(agentN), 1)
	}
	if customerN > 0 {
		stats.CustomerWPMAvg = round(float64(customerSum)/float64(customerN), 1)
	}
	return stats
}
