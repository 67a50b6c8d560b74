package metrics

import "cc-analytics-go/internal/types"

type SalesMetrics struct {
	UpsellCount        int     `json:"upsell_count"`
	CrossSellCount     int     `json:"cross_sell_count"`
	ClosingCount       int     `json:"closing_count"`
	UpsellSuccess      int     `json:"upsell_success"`
	CrossSellSuccess   int     `json:"cross_sell_success"`
	ClosingSuccess     int     `json:"closing_success"`
	TotalOpportunities int     `json:"total_opportunities"`
	TotalSuccess       int     `json:"total_success"`
	ConversionRate     float64 `json:"conversion_rate"`
	TotalValue         float64 `json:"total_value"` // EUR, successful only
}

// CalculateSalesMetrics summarizes sales opportunities. Only Sales-team calls
// carrying an opportunity count.
func CalculateSalesMetrics(calls []types.CallRecord) SalesMetrics {
	var m SalesMetrics
	for _, c := range calls {
		if c.Team != "Sales" || c.SalesOpp == nil {
			continue
		}
		opp := c.SalesOpp
		m.TotalOpportunities++

		switch opp.Type {
		case "upsell":
			m.UpsellCount++
			if opp.Success {
				m.UpsellSuccess++
			}
		case "cross_sell":
			m.CrossSellCount++
			if opp.Success {
				m.CrossSellSuccess++
			}
		case "closing":
			m.ClosingCount++
			if opp.Success {
				m.ClosingSuccess++
			}
		}
		if opp.Success {
			m.TotalValue += opp.Value
		}
	}

	m.TotalSuccess = m.UpsellSuccess + m.CrossSellSuccess + m.ClosingSuccess
	if m.TotalOpportunities > 0 {
		m.ConversionRate = round(100*float64(m.TotalSuccess)/float64(m.TotalOpportunities), 1)
	}
	m.TotalValue = round(m.TotalValue, 2)
	return m
}
