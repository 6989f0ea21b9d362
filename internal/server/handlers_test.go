package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/models"
	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/predictor"
	"github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEnv struct {
	server      *httptest.Server
	predictions *memory.PredictionRepository
	statuses    *memory.StatusRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	predictions := memory.NewPredictionRepository()
	statuses := memory.NewStatusRepository()
	s := New(
		models.ServerConfig{Port: 0, CORSOrigins: []string{"*"}},
		predictor.New(42),
		predictions,
		statuses,
		nil,
		zap.NewNop(),
	)

	handler, err := s.Handler()
	require.NoError(t, err)

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	return &testEnv{server: ts, predictions: predictions, statuses: statuses}
}

func (e *testEnv) postJSON(t *testing.T, path string, body any) (*http.Response, map[string]json.RawMessage) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(e.server.URL+path, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestRootEndpoint(t *testing.T) {
	env := newTestEnv(t)

	resp, err := http.Get(env.server.URL + "/api/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Bangalore Traffic Sentinel API", body["message"])
	assert.Equal(t, "1.0.0", body["version"])
}

func TestLocationsEndpoint(t *testing.T) {
	env := newTestEnv(t)

	resp, err := http.Get(env.server.URL + "/api/locations")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var locations []models.Location
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&locations))
	require.Len(t, locations, 4)

	ids := make([]string, len(locations))
	for i, loc := range locations {
		ids[i] = loc.ID
	}
	assert.ElementsMatch(t, []string{"silk_board", "kr_puram", "whitefield", "hebbal"}, ids)
}

func TestDaysEndpoint(t *testing.T) {
	env := newTestEnv(t)

	resp, err := http.Get(env.server.URL + "/api/days")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string][]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body["days"], 7)
	assert.Equal(t, "Monday", body["days"][0])
}

func TestPredictTraffic(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.postJSON(t, "/api/predict-traffic", models.PredictionRequest{
		Place: "silk_board", Day: "Monday", StartHour: 8, EndHour: 10,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result models.PredictionResponse
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &result))

	require.Len(t, result.Predictions, 3)
	for i, entry := range result.Predictions {
		assert.Equal(t, 8+i, entry.Hour)
		tier := models.ClassifyTraffic(entry.TrafficValue)
		assert.Equal(t, tier.Color, entry.Color, "severity-to-color mapping must be consistent")
	}
	assert.GreaterOrEqual(t, result.PeakHour, 8)
	assert.LessOrEqual(t, result.PeakHour, 10)
	assert.NotEmpty(t, result.Insight)

	// a served prediction lands in the analytics store
	count, err := env.predictions.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPredictTrafficAcceptsDisplayNames(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.postJSON(t, "/api/predict-traffic", map[string]any{
		"place": "Silk Board", "day": "Monday", "start_hour": 9, "end_hour": 9,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `"silk_board"`, string(body["place"]))
}

func TestPredictTrafficValidation(t *testing.T) {
	tests := []struct {
		name       string
		request    map[string]any
		wantDetail string
	}{
		{
			name:       "end before start",
			request:    map[string]any{"place": "silk_board", "day": "Monday", "start_hour": 10, "end_hour": 8},
			wantDetail: "End hour must be greater than or equal to start hour",
		},
		{
			name:       "unknown place",
			request:    map[string]any{"place": "mg_road", "day": "Monday", "start_hour": 8, "end_hour": 10},
			wantDetail: "Invalid location",
		},
		{
			name:       "unknown day",
			request:    map[string]any{"place": "silk_board", "day": "Mondy", "start_hour": 8, "end_hour": 10},
			wantDetail: "Invalid day",
		},
		{
			name:       "hour out of bounds",
			request:    map[string]any{"place": "silk_board", "day": "Monday", "start_hour": 8, "end_hour": 24},
			wantDetail: "Hours must be between 0 and 23",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			resp, body := env.postJSON(t, "/api/predict-traffic", tt.request)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var detail string
			require.NoError(t, json.Unmarshal(body["detail"], &detail))
			assert.Contains(t, detail, tt.wantDetail)

			// rejected requests leave no analytics trace
			count, err := env.predictions.Count(context.Background())
			require.NoError(t, err)
			assert.Zero(t, count)
		})
	}
}

func TestPredictTrafficBadBody(t *testing.T) {
	env := newTestEnv(t)

	resp, err := http.Post(env.server.URL+"/api/predict-traffic", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStatusEndpoints(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.postJSON(t, "/api/status", models.StatusCheckCreate{ClientName: "probe-1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `"probe-1"`, string(body["client_name"]))

	resp2, _ := env.postJSON(t, "/api/status", models.StatusCheckCreate{ClientName: ""})
	assert.Equal(t, http.StatusBadRequest, resp2.StatusCode)

	getResp, err := http.Get(env.server.URL + "/api/status")
	require.NoError(t, err)
	defer getResp.Body.Close()
	require.Equal(t, http.StatusOK, getResp.StatusCode)

	var checks []models.StatusCheck
	require.NoError(t, json.NewDecoder(getResp.Body).Decode(&checks))
	require.Len(t, checks, 1)
	assert.Equal(t, "probe-1", checks[0].ClientName)
}

func TestMethodNotAllowed(t *testing.T) {
	env := newTestEnv(t)

	resp, err := http.Get(env.server.URL + "/api/predict-traffic")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp2, err := http.Post(env.server.URL+"/api/locations", "application/json", bytes.NewReader(nil))
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp2.StatusCode)
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)

	resp, err := http.Get(env.server.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCORSHeaders(t *testing.T) {
	env := newTestEnv(t)

	req, err := http.NewRequest(http.MethodOptions, env.server.URL+"/api/predict-traffic", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestStaticFrontEndIsServed(t *testing.T) {
	env := newTestEnv(t)

	resp, err := http.Get(env.server.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}
