package server

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"sync"

	"cc-analytics-go/internal/config"
	"cc-analytics-go/internal/dataset"
	"cc-analytics-go/internal/generator"
	"cc-analytics-go/internal/insights"
	"cc-analytics-go/internal/logger"
	"cc-analytics-go/internal/metrics"
	"cc-analytics-go/internal/notify"
	"cc-analytics-go/internal/types"
)

// Server owns the in-memory dataset and serves the dashboard API. The
// dataset is replaced wholesale on regenerate; a RWMutex guards the swap.
type Server struct {
	cfg      *config.Config
	notifier *notify.Client

	mu sync.RWMutex
	ds *types.Dataset
}

func New(cfg *config.Config, ds *types.Dataset) *Server {
	return &Server{
		cfg:      cfg,
		notifier: notify.NewClient(cfg.WebhookURL),
		ds:       ds,
	}
}

func (s *Server) snapshot() *types.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds
}

// Overview is the headline KPI block of the dashboard.
type Overview struct {
	TotalCalls    int                              `json:"total_calls"`
	Seed          int64                            `json:"seed"`
	AHT           metrics.AHTResult                `json:"aht"`
	FCR           metrics.FCRResult                `json:"fcr"`
	EPR           metrics.EPRResult                `json:"epr"`
	AESAvg        float64                          `json:"aes_avg"`
	AutoQAAvg     float64                          `json:"autoqa_avg"`
	Sentiment     metrics.SentimentImprovementKPIs `json:"sentiment"`
	VolumeByTopic map[string]int                   `json:"volume_by_topic"`
}

func (s *Server) overview() Overview {
	ds := s.snapshot()
	calls := ds.Calls

	aesSum, autoQASum := 0.0, 0.0
	for _, c := range calls {
		aesSum += metrics.AESForCall(c)
		autoQASum += c.AutoQAScore
	}
	aesAvg, autoQAAvg := 0.0, 0.0
	if len(calls) > 0 {
		n := float64(len(calls))
		aesAvg = roundTo(aesSum/n, 1)
		autoQAAvg = roundTo(autoQASum/n, 1)
	}

	return Overview{
		TotalCalls:    len(calls),
		Seed:          ds.Seed,
		AHT:           metrics.CalculateAHT(calls),
		FCR:           metrics.CalculateFCRRate(calls),
		EPR:           metrics.CalculateEPR(calls),
		AESAvg:        aesAvg,
		AutoQAAvg:     autoQAAvg,
		Sentiment:     metrics.ComputeSentimentImprovementKPIs(calls),
		VolumeByTopic: metrics.VolumeDistribution(calls, "topic"),
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).Debug("health check")
		fmt.Fprint(w, "ok")
	})

	mux.HandleFunc("GET /api/overview", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, s.overview())
	})

	mux.HandleFunc("GET /api/agents", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, metrics.AgentAggregates(s.snapshot().Calls))
	})

	mux.HandleFunc("GET /api/topics", func(w http.ResponseWriter, r *http.Request) {
		benchmarks := map[string]float64{}
		for name, profile := range generator.Topics {
			benchmarks[name] = profile.AvgDurationSec
		}
		writeJSON(w, r, metrics.CalculateTRE(s.snapshot().Calls, benchmarks))
	})

	mux.HandleFunc("GET /api/sentiment", func(w http.ResponseWriter, r *http.Request) {
		calls := s.snapshot().Calls
		writeJSON(w, r, map[string]interface{}{
			"transitions": metrics.SentimentTransitions(calls),
			"kpis":        metrics.ComputeSentimentImprovementKPIs(calls),
			"summary":     metrics.ComputeSentimentSummary(calls),
		})
	})

	mux.HandleFunc("GET /api/quality", func(w http.ResponseWriter, r *http.Request) {
		calls := s.snapshot().Calls
		writeJSON(w, r, map[string]interface{}{
			"daily":        metrics.QualityComponentsDaily(calls),
			"top_failures": metrics.ComplianceTopFailures(calls, 2),
		})
	})

	mux.HandleFunc("GET /api/sales", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, metrics.CalculateSalesMetrics(s.snapshot().Calls))
	})

	mux.HandleFunc("GET /api/trend", s.handleTrend)
	mux.HandleFunc("GET /api/calls", s.handleCalls)
	mux.HandleFunc("GET /api/calls/{id}", s.handleCallDetail)

	mux.HandleFunc("GET /api/insights", func(w http.ResponseWriter, r *http.Request) {
		ins := insights.Aggregate(s.snapshot().Calls)
		writeJSON(w, r, map[string]interface{}{
			"insight":     ins,
			"action_card": insights.Generate(ins),
		})
	})

	mux.HandleFunc("POST /api/regenerate", s.handleRegenerate)
	mux.HandleFunc("GET /api/export", s.handleExport)
	mux.HandleFunc("POST /api/notify", s.handleNotify)

	return mux
}

func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	reqLog := logger.New().WithRequest(r).WithField("handler", "trend")

	name := r.URL.Query().Get("metric")
	if name == "" {
		name = "aes"
	}

	var metric func(types.CallRecord) float64
	switch name {
	case "aes":
		metric = metrics.AESForCall
	case "autoqa":
		metric = func(c types.CallRecord) float64 { return c.AutoQAScore }
	case "duration":
		metric = func(c types.CallRecord) float64 { return c.DurationSec }
	case "sentiment_delta":
		metric = func(c types.CallRecord) float64 { return c.SentimentEnd - c.SentimentStart }
	default:
		reqLog.WithField("metric", name).Warn("unknown trend metric")
		http.Error(w, "unknown metric", http.StatusBadRequest)
		return
	}

	writeJSON(w, r, map[string]interface{}{
		"metric": name,
		"daily":  metrics.SevenDayTrend(s.snapshot().Calls, metric),
	})
}

func (s *Server) handleCalls(w http.ResponseWriter, r *http.Request) {
	calls := s.snapshot().Calls

	limit, offset := 50, 0
	if v := r.URL.Query().Get("limit"); v != "" {
		fmt.Sscanf(v, "%d", &limit)
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		fmt.Sscanf(v, "%d", &offset)
	}
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}
	if offset > len(calls) {
		offset = len(calls)
	}
	end := offset + limit
	if end > len(calls) {
		end = len(calls)
	}

	writeJSON(w, r, map[string]interface{}{
		"total":  len(calls),
		"offset": offset,
		"calls":  calls[offset:end],
	})
}

func (s *Server) handleCallDetail(w http.ResponseWriter, r *http.Request) {
	reqLog := logger.New().WithRequest(r).WithField("handler", "call_detail")
	id := r.PathValue("id")

	ds := s.snapshot()
	var call *types.CallRecord
	for i := range ds.Calls {
		if ds.Calls[i].CallID == id {
			call = &ds.Calls[i]
			break
		}
	}
	if call == nil {
		reqLog.WithField("call_id", id).Warn("call not found")
		http.Error(w, "call not found", http.StatusNotFound)
		return
	}

	segments := ds.Transcript(id)
	silences, _ := generator.DetectSilences(segments, call.DurationSec)
	interruptions := generator.DetectInterruptions(segments)

	writeJSON(w, r, map[string]interface{}{
		"call":          call,
		"segments":      segments,
		"silences":      silences,
		"interruptions": interruptions,
		"timeline":      metrics.CalculateTimelineStats(segments, silences, call.SentimentStart, call.SentimentEnd),
		"scores": map[string]interface{}{
			"aes":        metrics.AESForCall(*call),
			"compliance": metrics.ComplianceScore(call.Compliance),
			"quality":    metrics.QualityBinaryScore(call.Quality),
			"sentiment":  metrics.ComputeSentimentJourney(call.SentimentStart, call.SentimentEnd),
		},
	})
}

func (s *Server) handleRegenerate(w http.ResponseWriter, r *http.Request) {
	reqLog := logger.New().WithRequest(r).WithField("handler", "regenerate")

	opts := generator.Options{
		Calls:                 s.cfg.Simulation.Calls,
		Agents:                s.cfg.Simulation.Agents,
		Seed:                  s.cfg.Simulation.Seed,
		SimulateInterruptions: s.cfg.Simulation.SimulateInterruptions,
	}
	if v := r.URL.Query().Get("calls"); v != "" {
		fmt.Sscanf(v, "%d", &opts.Calls)
	}
	if v := r.URL.Query().Get("agents"); v != "" {
		fmt.Sscanf(v, "%d", &opts.Agents)
	}
	if v := r.URL.Query().Get("seed"); v != "" {
		fmt.Sscanf(v, "%d", &opts.Seed)
	}
	if opts.Calls <= 0 || opts.Agents <= 0 {
		http.Error(w, "calls and agents must be positive", http.StatusBadRequest)
		return
	}

	reqLog = reqLog.WithField("calls", opts.Calls).WithField("agents", opts.Agents).WithField("seed", opts.Seed)
	reqLog.Info("regenerating dataset")

	ds := generator.GenerateDataset(opts)
	s.mu.Lock()
	s.ds = ds
	s.mu.Unlock()

	reqLog.Info("dataset regenerated")
	writeJSON(w, r, map[string]interface{}{
		"total_calls": len(ds.Calls),
		"agents":      len(ds.Agents),
		"seed":        ds.Seed,
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	reqLog := logger.New().WithRequest(r).WithField("handler", "export")

	ds := s.snapshot()
	f, err := dataset.Export(ds.Calls)
	if err != nil {
		reqLog.WithError(err).Error("export failed")
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="cc-analytics-%d.xlsx"`, ds.Seed))
	if err := f.Write(w); err != nil {
		reqLog.WithError(err).Error("failed to stream workbook")
	}
}

func (s *Server) handleNotify(w http.ResponseWriter, r *http.Request) {
	reqLog := logger.New().WithRequest(r).WithField("handler", "notify")
	reqLog.Info("pushing overview snapshot")

	if err := s.notifier.Push(s.overview()); err != nil {
		reqLog.WithError(err).Warn("push failed")
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, r, map[string]string{"status": "delivered"})
}

func writeJSON(w http.ResponseWriter, r *http.Request, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		logger.New().WithRequest(r).WithError(err).Error("failed to write response")
	}
}

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
