package dataset

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
	"cc-analytics-go/internal/types"
)

const sheetName = "calls"

var exportHeader = []string{
	"call_id", "timestamp", "direction", "language",
	"agent_id", "agent_name", "team",
	"duration_sec", "agent_talk_sec", "customer_talk_sec",
	"turns", "silence_ratio", "interrupt_count",
	"sentiment_start", "sentiment_middle", "sentiment_end",
	"compliance", "resolution", "quality", "topic_data", "sales_opportunity",
	"autoqa_score", "benchmark_aht",
}

// Export writes the calls table to an xlsx workbook. Nested AutoQA blocks are
// stored as JSON cells so the loader can round-trip them.
func Export(calls []types.CallRecord) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for i, h := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for rowIdx, c := range calls {
		row, err := callToRow(c)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", c.CallID, err)
		}
		for colIdx, v := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", rowIdx+2, err)
			}
		}
	}
	return f, nil
}

// ExportToFile writes the workbook to disk.
func ExportToFile(calls []types.CallRecord, path string) error {
	f, err := Export(calls)
	if err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func callToRow(c types.CallRecord) ([]interface{}, error) {
	compliance, err := json.Marshal(c.Compliance)
	if err != nil {
		return nil, err
	}
	resolution, err := json.Marshal(c.Resolution)
	if err != nil {
		return nil, err
	}
	quality, err := json.Marshal(c.Quality)
	if err != nil {
		return nil, err
	}
	topicData, err := json.Marshal(c.TopicData)
	if err != nil {
		return nil, err
	}
	salesOpp := ""
	if c.SalesOpp != nil {
		b, err := json.Marshal(c.SalesOpp)
		if err != nil {
			return nil, err
		}
		salesOpp = string(b)
	}

	return []interface{}{
		c.CallID, c.Timestamp.Format(time.RFC3339), c.Direction, c.Language,
		c.AgentID, c.AgentName, c.Team,
		c.DurationSec, c.AgentTalkSec, c.CustomerTalkSec,
		c.Turns, c.SilenceRatio, c.InterruptCount,
		c.SentimentStart, c.SentimentMiddle, c.SentimentEnd,
		string(compliance), string(resolution), string(quality), string(topicData), salesOpp,
		c.AutoQAScore, c.BenchmarkAHT,
	}, nil
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}
