// Gustus - Recipe Analytics and Seasonal Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustus

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/gustus/internal/classifier"
	"github.com/tomtom215/gustus/internal/config"
	"github.com/tomtom215/gustus/internal/database"
	"github.com/tomtom215/gustus/internal/models"
	"github.com/tomtom215/gustus/internal/ranking"
)

func testConfig() *config.Config {
	return &config.Config{
		API: config.APIConfig{
			DefaultPageSize:   100,
			MaxPageSize:       1000,
			RateLimitRequests: 100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: true,
			CORSOrigins:       []string{"*"},
		},
		Ranking: config.RankingConfig{
			TopN:     20,
			MainDish: config.BayesianParams{KBayes: 65, KPop: 45, Gamma: 1.2},
			Dessert:  config.BayesianParams{KBayes: 60, KPop: 40, Gamma: 1.2},
			Beverage: config.BayesianParams{KBayes: 20, KPop: 4, Gamma: 0.7},
		},
		Classifier: classifier.DefaultConfig(),
	}
}

// newTestRouter builds a full route tree backed by an in-memory database
// seeded with three recipes, their classifications, and summer reviews.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	db, err := database.New(&config.DatabaseConfig{Path: ":memory:", MaxMemory: "512MB"})
	if err != nil {
		t.Fatalf("database.New() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	seedTestData(t, db)

	cfg := testConfig()
	engine, err := classifier.NewEngine(cfg.Classifier)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	return NewRouter(db, engine, ranking.New(cfg.Ranking), cfg).Setup()
}

func seedTestData(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()

	recipes := []struct {
		id       int64
		name     string
		tags     string
		calories float64
		sugar    float64
	}{
		{101, "hearty beef stew", "['main-dish', 'meat']", 350, 6},
		{102, "chocolate cheesecake", "['desserts', 'cheesecake']", 420, 120},
		{103, "iced raspberry tea", "['beverages', 'summer']", 20, 4},
	}
	for _, rec := range recipes {
		_, err := db.Conn().ExecContext(ctx,
			`INSERT INTO recipes (id, name, submitted, tags, calories, sugar)
			 VALUES (?, ?, '2019-04-02', ?, ?, ?)`,
			rec.id, rec.name, rec.tags, rec.calories, rec.sugar)
		if err != nil {
			t.Fatalf("seed recipe insert error = %v", err)
		}
	}

	classifications := []struct {
		id       int64
		name     string
		category classifier.Category
	}{
		{101, "hearty beef stew", classifier.MainDish},
		{102, "chocolate cheesecake", classifier.Dessert},
		{103, "iced raspberry tea", classifier.Beverage},
	}
	for _, c := range classifications {
		_, err := db.Conn().ExecContext(ctx,
			`INSERT INTO classifications (recipe_id, name, category, confidence, provenance,
			                              p_main_dish, p_dessert, p_beverage, run_id, classified_at)
			 VALUES (?, ?, ?, 85.0, 'strong_agree', 0.1, 0.1, 0.8, 'run-test', now())`,
			c.id, c.name, string(c.category))
		if err != nil {
			t.Fatalf("seed classification insert error = %v", err)
		}
	}

	// Summer reviews for the beverage so /rankings has a populated cell.
	reviews := []struct {
		userID int64
		rating float64
	}{{1, 5}, {2, 4}, {3, 5}}
	for _, rv := range reviews {
		_, err := db.Conn().ExecContext(ctx,
			`INSERT INTO interactions (user_id, recipe_id, date, rating, season)
			 VALUES (?, 103, '2020-07-15', ?, 'Summer')`,
			rv.userID, rv.rating)
		if err != nil {
			t.Fatalf("seed interaction insert error = %v", err)
		}
	}
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) (*httptest.ResponseRecorder, models.APIResponse) {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response models.APIResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response for %s %s: %v", method, target, err)
	}
	return w, response
}

func dataMap(t *testing.T, response models.APIResponse) map[string]interface{} {
	t.Helper()
	data, ok := response.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("response data is %T, want object", response.Data)
	}
	return data
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	w, response := doRequest(t, router, http.MethodGet, "/api/v1/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if response.Status != "success" {
		t.Errorf("response.Status = %q, want success", response.Status)
	}

	data := dataMap(t, response)
	if data["status"] != "healthy" {
		t.Errorf("health status = %v, want healthy", data["status"])
	}
	if data["database_connected"] != true {
		t.Errorf("database_connected = %v, want true", data["database_connected"])
	}
}

func TestHealthLiveAndReady(t *testing.T) {
	router := newTestRouter(t)

	w, _ := doRequest(t, router, http.MethodGet, "/api/v1/health/live", "")
	if w.Code != http.StatusOK {
		t.Errorf("live status = %d, want 200", w.Code)
	}

	w, _ = doRequest(t, router, http.MethodGet, "/api/v1/health/ready", "")
	if w.Code != http.StatusOK {
		t.Errorf("ready status = %d, want 200", w.Code)
	}
}

func TestGetRecipe(t *testing.T) {
	router := newTestRouter(t)

	w, response := doRequest(t, router, http.MethodGet, "/api/v1/recipes/101", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	data := dataMap(t, response)
	if data["name"] != "hearty beef stew" {
		t.Errorf("name = %v, want hearty beef stew", data["name"])
	}
}

func TestGetRecipeNotFound(t *testing.T) {
	router := newTestRouter(t)

	w, response := doRequest(t, router, http.MethodGet, "/api/v1/recipes/999", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if response.Error == nil || response.Error.Code != "NOT_FOUND" {
		t.Errorf("error = %+v, want code NOT_FOUND", response.Error)
	}
}

func TestGetRecipeInvalidID(t *testing.T) {
	router := newTestRouter(t)

	w, response := doRequest(t, router, http.MethodGet, "/api/v1/recipes/abc", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if response.Error == nil || response.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("error = %+v, want code VALIDATION_ERROR", response.Error)
	}
}

func TestListRecipes(t *testing.T) {
	router := newTestRouter(t)

	w, response := doRequest(t, router, http.MethodGet, "/api/v1/recipes?limit=2&offset=1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	data := dataMap(t, response)
	if data["total"] != float64(3) {
		t.Errorf("total = %v, want 3", data["total"])
	}
	recipes, ok := data["recipes"].([]interface{})
	if !ok {
		t.Fatalf("recipes is %T, want array", data["recipes"])
	}
	if len(recipes) != 2 {
		t.Errorf("len(recipes) = %d, want 2", len(recipes))
	}
}

func TestListRecipesLimitTooLarge(t *testing.T) {
	router := newTestRouter(t)

	w, _ := doRequest(t, router, http.MethodGet, "/api/v1/recipes?limit=100000", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRecipeClassification(t *testing.T) {
	router := newTestRouter(t)

	w, response := doRequest(t, router, http.MethodGet, "/api/v1/recipes/103/classification", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	data := dataMap(t, response)
	if data["category"] != "beverage" {
		t.Errorf("category = %v, want beverage", data["category"])
	}
	if data["run_id"] != "run-test" {
		t.Errorf("run_id = %v, want run-test", data["run_id"])
	}
}

func TestClassify(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name         string
		body         string
		wantCategory string
	}{
		{
			name: "main dish",
			body: `{"name": "beef stew", "tags": ["main-dish"],
			        "nutrition": {"calories": 350, "fat": 12, "sugar": 6, "sodium": 900,
			                      "protein": 30, "saturated_fat": 4, "carbs": 20}}`,
			wantCategory: "main_dish",
		},
		{
			name: "dessert",
			body: `{"name": "chocolate cake", "tags": ["desserts"],
			        "nutrition": {"calories": 420, "fat": 22, "sugar": 120, "sodium": 8,
			                      "protein": 5, "saturated_fat": 14, "carbs": 130}}`,
			wantCategory: "dessert",
		},
		{
			name: "beverage",
			body: `{"name": "iced tea", "tags": ["beverages"],
			        "nutrition": {"calories": 20, "sugar": 4, "sodium": 2, "carbs": 5}}`,
			wantCategory: "beverage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, response := doRequest(t, router, http.MethodPost, "/api/v1/classify", tt.body)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}

			data := dataMap(t, response)
			if data["category"] != tt.wantCategory {
				t.Errorf("category = %v, want %s", data["category"], tt.wantCategory)
			}
			conf, _ := data["confidence"].(float64)
			if conf <= 0 || conf > 100 {
				t.Errorf("confidence = %v, want in (0, 100]", data["confidence"])
			}
			if data["provenance"] == "" {
				t.Error("provenance is empty")
			}
		})
	}
}

func TestClassifyValidation(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"tags": ["main-dish"]}`},
		{"malformed json", `{"name": `},
		{"unknown field", `{"name": "stew", "bogus": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, response := doRequest(t, router, http.MethodPost, "/api/v1/classify", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			if response.Error == nil {
				t.Fatal("response.Error is nil")
			}
		})
	}
}

func TestClassifyBatch(t *testing.T) {
	router := newTestRouter(t)

	body := `{"records": [
		{"name": "beef stew", "tags": ["main-dish"],
		 "nutrition": {"calories": 350, "fat": 12, "sugar": 6, "sodium": 900,
		               "protein": 30, "saturated_fat": 4, "carbs": 20}},
		{"name": "iced tea", "tags": ["beverages"],
		 "nutrition": {"calories": 20, "sugar": 4, "sodium": 2, "carbs": 5}}
	]}`

	w, response := doRequest(t, router, http.MethodPost, "/api/v1/classify/batch", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	data := dataMap(t, response)
	if data["count"] != float64(2) {
		t.Errorf("count = %v, want 2", data["count"])
	}
	results, ok := data["results"].([]interface{})
	if !ok || len(results) != 2 {
		t.Fatalf("results = %v, want 2 entries", data["results"])
	}
	first, _ := results[0].(map[string]interface{})
	if first["category"] != "main_dish" {
		t.Errorf("results[0].category = %v, want main_dish", first["category"])
	}
}

func TestClassifyBatchEmpty(t *testing.T) {
	router := newTestRouter(t)

	w, _ := doRequest(t, router, http.MethodPost, "/api/v1/classify/batch", `{"records": []}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRankings(t *testing.T) {
	router := newTestRouter(t)

	w, response := doRequest(t, router, http.MethodGet, "/api/v1/rankings?season=Summer&category=beverage", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	data := dataMap(t, response)
	if data["season"] != "Summer" {
		t.Errorf("season = %v, want Summer", data["season"])
	}

	rankings, ok := data["rankings"].([]interface{})
	if !ok || len(rankings) != 1 {
		t.Fatalf("rankings = %v, want 1 cell", data["rankings"])
	}
	cell, _ := rankings[0].(map[string]interface{})
	if cell["category"] != "beverage" {
		t.Errorf("category = %v, want beverage", cell["category"])
	}
	entries, ok := cell["entries"].([]interface{})
	if !ok || len(entries) != 1 {
		t.Fatalf("entries = %v, want 1 entry", cell["entries"])
	}
	top, _ := entries[0].(map[string]interface{})
	if top["recipe_id"] != float64(103) {
		t.Errorf("top recipe_id = %v, want 103", top["recipe_id"])
	}
	if top["rank"] != float64(1) {
		t.Errorf("rank = %v, want 1", top["rank"])
	}
}

func TestRankingsAllCategories(t *testing.T) {
	router := newTestRouter(t)

	w, response := doRequest(t, router, http.MethodGet, "/api/v1/rankings?season=Summer", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	data := dataMap(t, response)
	rankings, ok := data["rankings"].([]interface{})
	if !ok || len(rankings) != 3 {
		t.Fatalf("rankings has %d cells, want 3", len(rankings))
	}
}

func TestRankingsLimit(t *testing.T) {
	router := newTestRouter(t)

	w, response := doRequest(t, router, http.MethodGet, "/api/v1/rankings?season=Summer&limit=1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	data := dataMap(t, response)
	rankings, ok := data["rankings"].([]interface{})
	if !ok || len(rankings) != 3 {
		t.Fatalf("rankings has %d cells, want 3", len(rankings))
	}
	for _, cell := range rankings {
		m, _ := cell.(map[string]interface{})
		entries, _ := m["entries"].([]interface{})
		if len(entries) > 1 {
			t.Errorf("category %v has %d entries, want at most 1", m["category"], len(entries))
		}
	}
}

func TestRankingsValidation(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		target string
	}{
		{"bad season", "/api/v1/rankings?season=monsoon"},
		{"lowercase season", "/api/v1/rankings?season=summer"},
		{"bad category", "/api/v1/rankings?category=appetizer"},
		{"negative limit", "/api/v1/rankings?season=Summer&limit=-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, response := doRequest(t, router, http.MethodGet, tt.target, "")
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			if response.Error == nil || response.Error.Code != "VALIDATION_ERROR" {
				t.Errorf("error = %+v, want code VALIDATION_ERROR", response.Error)
			}
		})
	}
}

func TestStats(t *testing.T) {
	router := newTestRouter(t)

	w, response := doRequest(t, router, http.MethodGet, "/api/v1/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	data := dataMap(t, response)
	if data["total_recipes"] != float64(3) {
		t.Errorf("total_recipes = %v, want 3", data["total_recipes"])
	}
	if data["total_classifications"] != float64(3) {
		t.Errorf("total_classifications = %v, want 3", data["total_classifications"])
	}
}

func TestRequestIDHeader(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header not set")
	}
}

func TestSecurityHeaders(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q, want nosniff", got)
	}
	if got := w.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q, want DENY", got)
	}
}
