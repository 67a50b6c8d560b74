package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cc-analytics-go/internal/config"
	"cc-analytics-go/internal/generator"
)

func newTestServer(t *testing.T, webhookURL string) *httptest.Server {
	t.Helper()

	cfg := config.Default()
	cfg.Simulation.Calls = 40
	cfg.Simulation.Agents = 5
	cfg.WebhookURL = webhookURL

	ds := generator.GenerateDataset(generator.Options{
		Calls:  cfg.Simulation.Calls,
		Agents: cfg.Simulation.Agents,
		Seed:   cfg.Simulation.Seed,
		Now:    time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC),
	})

	srv := httptest.NewServer(New(cfg, ds).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out interface{}) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, "")

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
}

func TestOverview(t *testing.T) {
	srv := newTestServer(t, "")

	var ov Overview
	getJSON(t, srv.URL+"/api/overview", &ov)

	assert.Equal(t, 40, ov.TotalCalls)
	assert.Equal(t, int64(42), ov.Seed)
	assert.Greater(t, ov.AHT.AHT, 0.0)
	assert.Equal(t, 40, ov.FCR.TotalCalls)
	assert.Greater(t, ov.AESAvg, 0.0)
	assert.NotEmpty(t, ov.VolumeByTopic)
}

func TestAgents(t *testing.T) {
	srv := newTestServer(t, "")

	var agents []map[string]interface{}
	getJSON(t, srv.URL+"/api/agents", &agents)

	require.NotEmpty(t, agents)
	for _, a := range agents {
		assert.NotEmpty(t, a["agent_id"])
		assert.GreaterOrEqual(t, a["aes_avg"].(float64), 0.0)
	}
}

func TestTopics(t *testing.T) {
	srv := newTestServer(t, "")

	var topics []map[string]interface{}
	getJSON(t, srv.URL+"/api/topics", &topics)

	require.NotEmpty(t, topics)
	for _, topic := range topics {
		assert.NotEmpty(t, topic["status"])
		assert.Greater(t, topic["benchmark"].(float64), 0.0)
	}
}

func TestSentimentAndQualityAndSales(t *testing.T) {
	srv := newTestServer(t, "")

	var sentiment map[string]interface{}
	getJSON(t, srv.URL+"/api/sentiment", &sentiment)
	assert.Contains(t, sentiment, "transitions")
	assert.Contains(t, sentiment, "kpis")
	assert.Contains(t, sentiment, "summary")

	var quality map[string]interface{}
	getJSON(t, srv.URL+"/api/quality", &quality)
	assert.Contains(t, quality, "daily")
	assert.Contains(t, quality, "top_failures")

	var sales map[string]interface{}
	getJSON(t, srv.URL+"/api/sales", &sales)
	assert.Contains(t, sales, "conversion_rate")
}

func TestTrend(t *testing.T) {
	srv := newTestServer(t, "")

	var trend map[string]interface{}
	getJSON(t, srv.URL+"/api/trend?metric=aes", &trend)
	assert.Equal(t, "aes", trend["metric"])

	resp, err := http.Get(srv.URL + "/api/trend?metric=bogus")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCallsPagination(t *testing.T) {
	srv := newTestServer(t, "")

	var page struct {
		Total  int                      `json:"total"`
		Offset int                      `json:"offset"`
		Calls  []map[string]interface{} `json:"calls"`
	}
	getJSON(t, srv.URL+"/api/calls?limit=10&offset=35", &page)

	assert.Equal(t, 40, page.Total)
	assert.Equal(t, 35, page.Offset)
	assert.Len(t, page.Calls, 5) // only 5 left past offset 35
}

func TestCallDetail(t *testing.T) {
	srv := newTestServer(t, "")

	var detail map[string]interface{}
	getJSON(t, srv.URL+"/api/calls/CALL-10000", &detail)
	assert.Contains(t, detail, "call")
	assert.Contains(t, detail, "segments")
	assert.Contains(t, detail, "timeline")
	assert.Contains(t, detail, "scores")

	resp, err := http.Get(srv.URL + "/api/calls/CALL-99999")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRegenerate(t *testing.T) {
	srv := newTestServer(t, "")

	resp, err := http.Post(srv.URL+"/api/regenerate?calls=15&seed=7", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ov Overview
	getJSON(t, srv.URL+"/api/overview", &ov)
	assert.Equal(t, 15, ov.TotalCalls)
	assert.Equal(t, int64(7), ov.Seed)
}

func TestRegenerateRejectsBadParams(t *testing.T) {
	srv := newTestServer(t, "")

	resp, err := http.Post(srv.URL+"/api/regenerate?calls=0", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExport(t *testing.T) {
	srv := newTestServer(t, "")

	resp, err := http.Get(srv.URL + "/api/export")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".xlsx")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotEmpty(t, body)
}

func TestNotify(t *testing.T) {
	var received map[string]interface{}
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer hook.Close()

	srv := newTestServer(t, hook.URL)

	resp, err := http.Post(srv.URL+"/api/notify", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 40, received["total_calls"])
}

func TestNotifyWithoutWebhook(t *testing.T) {
	srv := newTestServer(t, "")

	resp, err := http.Post(srv.URL+"/api/notify", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}
