package integration

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"job-matcher/internal/config"
	"job-matcher/internal/delivery/http/middleware"
	"job-matcher/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type matchData struct {
	Matches []map[string]any `json:"matches"`
}

func newTestApp(t *testing.T, normalize bool) *fiber.App {
	t.Helper()

	cfg := config.Config{
		App:   config.AppConfig{AppName: "JobMatcher", Environment: "test", HTTPPort: "0"},
		Match: config.MatchConfig{NormalizeSkills: normalize},
	}

	app := fiber.New(fiber.Config{})
	app.Use(middleware.NewErrorMiddleware().Middleware())
	routes.NewRegistry(cfg, nil, nil).Register(app)
	return app
}

func postMatch(t *testing.T, app *fiber.App, body any) semanticResponse {
	t.Helper()

	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}

	req := httptest.NewRequest("POST", "/api/v1/match", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("match request error: %v", err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return sr
}

func TestMatchEndpoint_RanksJobs(t *testing.T) {
	app := newTestApp(t, false)

	sr := postMatch(t, app, map[string]any{
		"candidate": map[string]any{"name": "Jane", "skills": []string{"python", "sql"}},
		"jobs": []map[string]any{
			{"id": "job1", "title": "Gopher", "required_skills": []string{"python", "go"}},
			{"id": "job2", "title": "Analyst", "required_skills": []string{"sql", "python"}},
			{"id": "job3", "title": "Rustacean", "required_skills": []string{"rust"}},
		},
	})

	if sr.Status != 200 || sr.Message != "ok" {
		t.Fatalf("expected 200/ok, got %d/%s", sr.Status, sr.Message)
	}

	var data matchData
	if err := json.Unmarshal(sr.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(data.Matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(data.Matches))
	}

	first := data.Matches[0]
	if first["id"] != "job2" || first["match_score"] != float64(2) {
		t.Fatalf("expected job2 with match_score 2 first, got %v", first)
	}
	if first["title"] != "Analyst" {
		t.Fatalf("expected original fields preserved, got %v", first)
	}

	second := data.Matches[1]
	if second["id"] != "job1" || second["match_score"] != float64(1) {
		t.Fatalf("expected job1 with match_score 1 second, got %v", second)
	}
}

func TestMatchEndpoint_TiesKeepInputOrder(t *testing.T) {
	app := newTestApp(t, false)

	sr := postMatch(t, app, map[string]any{
		"candidate": map[string]any{"skills": []string{"go"}},
		"jobs": []map[string]any{
			{"id": "jobA", "required_skills": []string{"go", "docker"}},
			{"id": "jobB", "required_skills": []string{"go", "kubernetes"}},
		},
	})

	var data matchData
	if err := json.Unmarshal(sr.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(data.Matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(data.Matches))
	}
	if data.Matches[0]["id"] != "jobA" || data.Matches[1]["id"] != "jobB" {
		t.Fatalf("expected input order preserved for ties, got %v then %v",
			data.Matches[0]["id"], data.Matches[1]["id"])
	}
}

func TestMatchEndpoint_EmptyJobs(t *testing.T) {
	app := newTestApp(t, false)

	sr := postMatch(t, app, map[string]any{
		"candidate": map[string]any{"skills": []string{"go"}},
		"jobs":      []map[string]any{},
	})

	if sr.Status != 200 {
		t.Fatalf("expected 200, got %d (message=%s)", sr.Status, sr.Message)
	}
	var data matchData
	if err := json.Unmarshal(sr.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(data.Matches) != 0 {
		t.Fatalf("expected empty matches, got %d", len(data.Matches))
	}
}

func TestMatchEndpoint_MalformedInput(t *testing.T) {
	app := newTestApp(t, false)

	cases := []struct {
		name string
		body map[string]any
	}{
		{"missing candidate skills", map[string]any{
			"candidate": map[string]any{"name": "Jane"},
			"jobs":      []map[string]any{},
		}},
		{"skills not an array", map[string]any{
			"candidate": map[string]any{"skills": "go"},
			"jobs":      []map[string]any{},
		}},
		{"job missing required_skills", map[string]any{
			"candidate": map[string]any{"skills": []string{"go"}},
			"jobs":      []map[string]any{{"id": "job1"}},
		}},
		{"missing jobs", map[string]any{
			"candidate": map[string]any{"skills": []string{"go"}},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sr := postMatch(t, app, tc.body)
			if sr.Status != 400 {
				t.Fatalf("expected 400, got %d (message=%s)", sr.Status, sr.Message)
			}
			if sr.Message != "Malformed input" {
				t.Fatalf("expected malformed input message, got %q", sr.Message)
			}
		})
	}
}

func TestMatchEndpoint_InvalidJSONBody(t *testing.T) {
	app := newTestApp(t, false)

	req := httptest.NewRequest("POST", "/api/v1/match", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if sr.Status != 400 {
		t.Fatalf("expected 400, got %d (message=%s)", sr.Status, sr.Message)
	}
}

func TestMatchEndpoint_NormalizedMode(t *testing.T) {
	app := newTestApp(t, true)

	sr := postMatch(t, app, map[string]any{
		"candidate": map[string]any{"skills": []string{"Python "}},
		"jobs": []map[string]any{
			{"id": "job1", "required_skills": []string{"python"}},
		},
	})

	var data matchData
	if err := json.Unmarshal(sr.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(data.Matches) != 1 || data.Matches[0]["match_score"] != float64(1) {
		t.Fatalf("expected normalized match with score 1, got %v", data.Matches)
	}
}

func TestLivenessEndpoints(t *testing.T) {
	app := newTestApp(t, false)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("liveness request error: %v", err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("decode liveness: %v", err)
	}
	if sr.Status != 200 {
		t.Fatalf("expected 200, got %d", sr.Status)
	}
	var home map[string]string
	if err := json.Unmarshal(sr.Data, &home); err != nil {
		t.Fatalf("decode liveness data: %v", err)
	}
	if home["message"] != "Job Matcher API Running" {
		t.Fatalf("unexpected liveness message: %q", home["message"])
	}

	resp2, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("health request error: %v", err)
	}
	defer resp2.Body.Close()

	var hr semanticResponse
	if err := json.NewDecoder(resp2.Body).Decode(&hr); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if hr.Status != 200 || hr.Message != "ok" {
		t.Fatalf("expected 200/ok from /health, got %d/%s", hr.Status, hr.Message)
	}
}
