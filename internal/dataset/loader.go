package dataset

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"cc-analytics-go/internal/logger"
	"cc-analytics-go/internal/types"
)

// Load reads a previously exported workbook back into call records. Columns
// are matched by header name so reordered or extended sheets still load.
// Rows without a parseable call ID or timestamp are skipped quietly.
func Load(path string) ([]types.CallRecord, error) {
	log := logger.New().WithComponent("dataset.loader").WithField("path", path)

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("no data rows")
	}

	idx := map[string]int{}
	for i, h := range rows[0] {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}

	cell := func(r []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(r) {
			return ""
		}
		return r[i]
	}

	var out []types.CallRecord
	skipped := 0
	for i, r := range rows {
		if i == 0 {
			continue
		}

		callID := cell(r, "call_id")
		ts, err := time.Parse(time.RFC3339, cell(r, "timestamp"))
		if callID == "" || err != nil {
			skipped++
			continue
		}

		rec := types.CallRecord{
			CallID:          callID,
			Timestamp:       ts,
			Direction:       cell(r, "direction"),
			Language:        cell(r, "language"),
			AgentID:         cell(r, "agent_id"),
			AgentName:       cell(r, "agent_name"),
			Team:            cell(r, "team"),
			DurationSec:     parseFloat(cell(r, "duration_sec")),
			AgentTalkSec:    parseFloat(cell(r, "agent_talk_sec")),
			CustomerTalkSec: parseFloat(cell(r, "customer_talk_sec")),
			Turns:           parseInt(cell(r, "turns")),
			SilenceRatio:    parseFloat(cell(r, "silence_ratio")),
			InterruptCount:  parseInt(cell(r, "interrupt_count")),
			SentimentStart:  parseFloat(cell(r, "sentiment_start")),
			SentimentMiddle: parseFloat(cell(r, "sentiment_middle")),
			SentimentEnd:    parseFloat(cell(r, "sentiment_end")),
			AutoQAScore:     parseFloat(cell(r, "autoqa_score")),
			BenchmarkAHT:    parseFloat(cell(r, "benchmark_aht")),
		}

		if v := cell(r, "compliance"); v != "" {
			if err := json.Unmarshal([]byte(v), &rec.Compliance); err != nil {
				skipped++
				continue
			}
		}
		if v := cell(r, "resolution"); v != "" {
			if err := json.Unmarshal([]byte(v), &rec.Resolution); err != nil {
				skipped++
				continue
			}
		}
		if v := cell(r, "quality"); v != "" {
			if err := json.Unmarshal([]byte(v), &rec.Quality); err != nil {
				skipped++
				continue
			}
		}
		if v := cell(r, "topic_data"); v != "" {
			if err := json.Unmarshal([]byte(v), &rec.TopicData); err != nil {
				skipped++
				continue
			}
		}
		if v := cell(r, "sales_opportunity"); v != "" {
			var opp types.SalesOpportunity
			if err := json.Unmarshal([]byte(v), &opp); err == nil {
				rec.SalesOpp = &opp
			}
		}

		out = append(out, rec)
	}

	log.WithField("loaded", len(out)).WithField("skipped", skipped).Info("dataset loaded")
	return out, nil
}
