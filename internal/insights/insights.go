package insights

import (
	"fmt"

	"cc-analytics-go/internal/types"
)

type Insight struct {
	EscalationByTopic map[string]float64 `json:"escalation_by_topic"`
	CategoryCounts    map[string]int     `json:"category_counts"`
}

// Aggregate rolls escalation rates and volume up by topic.
func Aggregate(calls []types.CallRecord) Insight {
	total := map[string]int{}
	escalated := map[string]int{}
	for _, c := range calls {
		topic := c.Resolution.IssueCategory
		total[topic]++
		if c.Resolution.Escalated {
			escalated[topic]++
		}
	}

	rates := map[string]float64{}
	for topic, n := range total {
		if n > 0 {
			rates[topic] = float64(escalated[topic]) / float64(n)
		}
	}
	return Insight{EscalationByTopic: rates, CategoryCounts: total}
}

type ActionCard struct {
	Insight string `json:"insight"`
	Action  string `json:"action"`
	Impact  string `json:"impact"`
}

// escalation rate above this flags a topic for intervention
const escalationAlertRate = 0.10

// Generate turns the aggregate insight into a single recommended action.
func Generate(ins Insight) ActionCard {
	worst := ""
	highest := 0.0
	for topic, rate := range ins.EscalationByTopic {
		if rate > highest || (rate == highest && topic < worst) {
			highest = rate
			worst = topic
		}
	}

	if highest >= escalationAlertRate && worst != "" {
		return ActionCard{
			Insight: fmt.Sprintf("High escalation rate in %s (%.0f%%)", worst, highest*100),
			Action:  "Schedule targeted coaching for the topic; review first-line knowledge base articles",
			Impact:  "Reduce escalations and repeat contacts",
		}
	}
	return ActionCard{
		Insight: "No strong escalation pattern detected",
		Action:  "Monitor and collect more data",
		Impact:  "Low immediate intervention",
	}
}
