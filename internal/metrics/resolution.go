package metrics

import "cc-analytics-go/internal/types"

// IsFCR reports first contact resolution: fully resolved with no callback and
// no escalation.
func IsFCR(res types.Resolution) bool {
	return res.Achieved == types.ResolutionFull && !res.CallbackNeeded && !res.Escalated
}

type FCRResult struct {
	FCRRate    float64 `json:"fcr_rate"`
	FCRCount   int     `json:"fcr_count"`
	TotalCalls int     `json:"total_calls"`
}

func CalculateFCRRate(calls []types.CallRecord) FCRResult {
	if len(calls) == 0 {
		return FCRResult{}
	}

	count := 0
	for _, c := range calls {
		if IsFCR(c.Resolution) {
			count++
		}
	}
	return FCRResult{
		FCRRate:    round(100*float64(count)/float64(len(calls)), 1),
		FCRCount:   count,
		TotalCalls: len(calls),
	}
}

type EPRResult struct {
	EPR              float64        `json:"epr"`
	PreventedCount   int            `json:"prevented_count"`
	EscalatedCount   int            `json:"escalated_count"`
	ReasonsBreakdown map[string]int `json:"reasons_breakdown"`
}

// CalculateEPR computes the escalation prevention rate and the reason split
// for the calls that did escalate.
func CalculateEPR(calls []types.CallRecord) EPRResult {
	if len(calls) == 0 {
		return EPRResult{ReasonsBreakdown: map[string]int{}}
	}

	escalated := 0
	reasons := map[string]int{}
	for _, c := range calls {
		if c.Resolution.Escalated {
			escalated++
			reason := c.Resolution.EscalationReason
			if reason == "" {
				reason = "unknown"
			}
			reasons[reason]++
		}
	}
	prevented := len(calls) - escalated

	return EPRResult{
		EPR:              round(100*float64(prevented)/float64(len(calls)), 1),
		PreventedCount:   prevented,
		EscalatedCount:   escalated,
		ReasonsBreakdown: reasons,
	}
}
