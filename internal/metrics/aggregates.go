package metrics

import (
	"math"
	"sort"

	"cc-analytics-go/internal/types"
)

type AHTResult struct {
	AHT         float64 `json:"aht"` // seconds
	AHTMinutes  float64 `json:"aht_minutes"`
	Target      float64 `json:"target"`
	Variance    float64 `json:"variance"`
	VariancePct float64 `json:"variance_pct"`
}

const ahtTargetSec = 300

func CalculateAHT(calls []types.CallRecord) AHTResult {
	if len(calls) == 0 {
		return AHTResult{Target: ahtTargetSec}
	}

	sum := 0.0
	for _, c := range calls {
		sum += c.DurationSec
	}
	aht := sum / float64(len(calls))
	variance := aht - ahtTargetSec

	return AHTResult{
		AHT:         round(aht, 1),
		AHTMinutes:  round(aht/60, 2),
		Target:      ahtTargetSec,
		Variance:    round(variance, 1),
		VariancePct: round(100*variance/ahtTargetSec, 1),
	}
}

type TopicEfficiency struct {
	Topic          string  `json:"topic"`
	AvgTime        float64 `json:"avg_time"` // seconds
	Benchmark      float64 `json:"benchmark"`
	Efficiency     float64 `json:"efficiency"`
	ResolutionRate float64 `json:"resolution_rate"`
	Status         string  `json:"status"`
	CallCount      int     `json:"call_count"`
}

// CalculateTRE compares each topic's average handling time against its
// benchmark duration (seconds). Topics absent from the data are omitted.
func CalculateTRE(calls []types.CallRecord, benchmarks map[string]float64) []TopicEfficiency {
	byTopic := map[string][]types.CallRecord{}
	for _, c := range calls {
		topic := c.Resolution.IssueCategory
		byTopic[topic] = append(byTopic[topic], c)
	}

	topics := make([]string, 0, len(byTopic))
	for topic := range byTopic {
		topics = append(topics, topic)
	}
	sort.Strings(topics)

	var out []TopicEfficiency
	for _, topic := range topics {
		benchmark, ok := benchmarks[topic]
		if !ok {
			continue
		}
		group := byTopic[topic]

		sum := 0.0
		resolved := 0
		for _, c := range group {
			sum += c.DurationSec
			if c.Resolution.Achieved == types.ResolutionFull {
				resolved++
			}
		}
		avgTime := sum / float64(len(group))

		efficiency := 100.0
		if avgTime > benchmark {
			efficiency = math.Max(0, 100*(1-(avgTime-benchmark)/benchmark))
		}
		resolutionRate := round(100*float64(resolved)/float64(len(group)), 1)

		status := "Critical"
		switch {
		case efficiency >= 90 && resolutionRate >= 80:
			status = "Excellent"
		case efficiency >= 70 && resolutionRate >= 70:
			status = "Good"
		case efficiency >= 50:
			status = "Needs Improvement"
		}

		out = append(out, TopicEfficiency{
			Topic:          capitalize(topic),
			AvgTime:        round(avgTime, 1),
			Benchmark:      benchmark,
			Efficiency:     round(efficiency, 1),
			ResolutionRate: resolutionRate,
			Status:         status,
			CallCount:      len(group),
		})
	}
	return out
}

type DailyValue struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Value float64 `json:"metric_avg"`
}

// SevenDayTrend averages a per-call metric by calendar day and keeps the last
// seven days present in the data.
func SevenDayTrend(calls []types.CallRecord, metric func(types.CallRecord) float64) []DailyValue {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, c := range calls {
		day := c.Timestamp.Format("2006-01-02")
		sums[day] += metric(c)
		counts[day]++
	}

	days := make([]string, 0, len(sums))
	for day := range sums {
		days = append(days, day)
	}
	sort.Strings(days)
	if len(days) > 7 {
		days = days[len(days)-7:]
	}

	out := make([]DailyValue, 0, len(days))
	for _, day := range days {
		out = append(out, DailyValue{Date: day, Value: round(sums[day]/float64(counts[day]), 1)})
	}
	return out
}

// VolumeDistribution counts calls by topic, team, language or direction.
func VolumeDistribution(calls []types.CallRecord, groupBy string) map[string]int {
	counts := map[string]int{}
	for _, c := range calls {
		var key string
		switch groupBy {
		case "topic":
			key = c.Resolution.IssueCategory
		case "team":
			key = c.Team
		case "language":
			key = c.Language
		case "direction":
			key = c.Direction
		default:
			return map[string]int{}
		}
		counts[key]++
	}
	return counts
}

type AgentStats struct {
	AgentID   string  `json:"agent_id"`
	AgentName string  `json:"agent_name"`
	Team      string  `json:"team"`
	AESAvg    float64 `json:"aes_avg"`
	ACI       float64 `json:"aci"`
	Stability string  `json:"stability"`
	FCRRate   float64 `json:"fcr_rate"`
	CompAvg   float64 `json:"comp_avg"`
	AHTAvg    float64 `json:"aht_avg"`
	CallCount int     `json:"call_count"`
}

// AgentAggregates rolls every per-call score up to the agent level, ordered
// by agent ID.
func AgentAggregates(calls []types.CallRecord) []AgentStats {
	byAgent := map[string][]types.CallRecord{}
	for _, c := range calls {
		byAgent[c.AgentID] = append(byAgent[c.AgentID], c)
	}

	ids := make([]string, 0, len(byAgent))
	for id := range byAgent {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]AgentStats, 0, len(ids))
	for _, id := range ids {
		group := byAgent[id]

		aesValues := make([]float64, 0, len(group))
		aesSum, compSum, ahtSum := 0.0, 0.0, 0.0
		fcrCount := 0
		for _, c := range group {
			aes := AESForCall(c)
			aesValues = append(aesValues, aes)
			aesSum += aes
			compSum += ComplianceScore(c.Compliance).Score
			ahtSum += c.DurationSec
			if IsFCR(c.Resolution) {
				fcrCount++
			}
		}
		aci := ACI(aesValues)
		n := float64(len(group))

		out = append(out, AgentStats{
			AgentID:   id,
			AgentName: group[0].AgentName,
			Team:      group[0].Team,
			AESAvg:    round(aesSum/n, 1),
			ACI:       aci.ACI,
			Stability: aci.Stability,
			FCRRate:   round(100*float64(fcrCount)/n, 1),
			CompAvg:   round(compSum/n, 1),
			AHTAvg:    round(ahtSum/n, 1),
			CallCount: len(group),
		})
	}
	return out
}

// CompareToBenchmark returns Above, On Target (within 5%) or Below.
func CompareToBenchmark(value, benchmark float64, higherIsBetter bool) string {
	if math.Abs(value-benchmark)/benchmark <= 0.05 {
		return "On Target"
	}
	if higherIsBetter {
		if value > benchmark {
			return "Above"
		}
		return "Below"
	}
	if value > benchmark {
		return "Below"
	}
	return "Above"
}

type QualityDaily struct {
	Date               string  `json:"date"`
	ActiveListeningPct float64 `json:"active_listening_pct"`
	EmpathyPct         float64 `json:"empathy_pct"`
	SolutionPct        float64 `json:"solution_pct"`
	ProfessionalPct    float64 `json:"professional_pct"`
	AESAvg             float64 `json:"aes_avg"`
}

// QualityComponentsDaily averages the four scored quality booleans and AES by
// day, keeping the last seven days present in the data.
func QualityComponentsDaily(calls []types.CallRecord) []QualityDaily {
	type acc struct {
		listening, empathy, solution, professional int
		aesSum                                     float64
		n                                          int
	}
	byDay := map[string]*acc{}
	for _, c := range calls {
		day := c.Timestamp.Format("2006-01-02")
		a := byDay[day]
		if a == nil {
			a = &acc{}
			byDay[day] = a
		}
		if c.Quality.ActiveListening {
			a.listening++
		}
		if c.Quality.EmpathyShown {
			a.empathy++
		}
		if c.Quality.SolutionOffered {
			a.solution++
		}
		if c.Quality.ProfessionalTone {
			a.professional++
		}
		a.aesSum += AESForCall(c)
		a.n++
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)
	if len(days) > 7 {
		days = days[len(days)-7:]
	}

	out := make([]QualityDaily, 0, len(days))
	for _, day := range days {
		a := byDay[day]
		n := float64(a.n)
		out = append(out, QualityDaily{
			Date:               day,
			ActiveListeningPct: round(100*float64(a.listening)/n, 1),
			EmpathyPct:         round(100*float64(a.empathy)/n, 1),
			SolutionPct:        round(100*float64(a.solution)/n, 1),
			ProfessionalPct:    round(100*float64(a.professional)/n, 1),
			AESAvg:             round(a.aesSum/n, 1),
		})
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
