package metrics

import (
	"sort"

	"cc-analytics-go/internal/types"
)

// Critical checks carry 5 risk points each when failed.
var criticalComplianceFields = map[string]bool{
	"data_protection_mentioned": true,
	"customer_verification":     true,
	"no_misleading_info":        true,
}

// Non-critical checks with elevated weight.
var complianceWeights = map[string]int{
	"call_recording_notice": 3,
	"proper_closing":        2,
	"greeting_proper":       1,
}

type ComplianceResult struct {
	Score                   float64 `json:"score"` // pass rate %
	RiskPoints              int     `json:"risk_points"`
	RiskLevel               string  `json:"risk_level"` // Low, Medium or High
	CriticalViolationsCount int     `json:"critical_violations_count"`
}

// ComplianceScore scores one call's compliance block and assigns a risk level.
func ComplianceScore(c types.Compliance) ComplianceResult {
	checks := c.Checks()

	passed := 0
	for _, ok := range checks {
		if ok {
			passed++
		}
	}
	score := round(100*float64(passed)/float64(len(checks)), 1)

	risk := 0
	for field := range criticalComplianceFields {
		if !checks[field] {
			risk += 5
		}
	}
	for field, weight := range complianceWeights {
		if !checks[field] {
			risk += weight
		}
	}
	if len(c.CriticalViolations) > 0 {
		risk += 7
	}

	level := "High"
	switch {
	case risk < 5:
		level = "Low"
	case risk < 15:
		level = "Medium"
	}

	return ComplianceResult{
		Score:                   score,
		RiskPoints:              risk,
		RiskLevel:               level,
		CriticalViolationsCount: len(c.CriticalViolations),
	}
}

type ComplianceFailure struct {
	Field string `json:"field"`
	Count int    `json:"count"`
}

// ComplianceTopFailures ranks the most frequently failed checks across calls.
func ComplianceTopFailures(calls []types.CallRecord, topN int) []ComplianceFailure {
	counts := map[string]int{}
	for _, call := range calls {
		for field, ok := range call.Compliance.Checks() {
			if !ok {
				counts[field]++
			}
		}
	}

	failures := make([]ComplianceFailure, 0, len(counts))
	for field, n := range counts {
		failures = append(failures, ComplianceFailure{Field: field, Count: n})
	}
	sort.Slice(failures, func(i, j int) bool {
		if failures[i].Count != failures[j].Count {
			return failures[i].Count > failures[j].Count
		}
		return failures[i].Field < failures[j].Field
	})

	if topN < len(failures) {
		failures = failures[:topN]
	}
	return failures
}
