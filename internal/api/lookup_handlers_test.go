package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go-lexicon/internal/config"
	"go-lexicon/internal/definition"
	"go-lexicon/internal/lookup"
)

type fakeHistory struct {
	gotLimit int
	lookups  []lookup.Lookup
	err      error
}

func (f *fakeHistory) Recent(_ context.Context, limit int) ([]lookup.Lookup, error) {
	f.gotLimit = limit
	return f.lookups, f.err
}

type fakeStats struct {
	gotTop  int
	summary lookup.Summary
	err     error
}

func (f *fakeStats) Summary(_ context.Context, top int) (lookup.Summary, error) {
	f.gotTop = top
	return f.summary, f.err
}

func TestRecentLookupsHandler_ReturnsLookups(t *testing.T) {
	h := &fakeHistory{lookups: []lookup.Lookup{
		{ID: "1", Word: "tafel", Language: "NL", Mode: "fixed", Outcome: lookup.OutcomeSucceeded, DurationMs: 812},
	}}
	gin.SetMode(gin.TestMode)
	r := SetupRouter(&config.Config{}, Deps{Definitions: definition.NewService(&stubGenerator{}), History: h})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/lookups?limit=5", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	if h.gotLimit != 5 {
		t.Errorf("expected limit 5, got %d", h.gotLimit)
	}
	var list []lookup.Lookup
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if len(list) != 1 || list[0].Word != "tafel" || list[0].DurationMs != 812 {
		t.Errorf("unexpected lookups: %+v", list)
	}
}

func TestRecentLookupsHandler_BadLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/lookups", RecentLookupsHandler(&fakeHistory{}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/lookups?limit=lots", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad limit, got %d", w.Code)
	}
}

func TestRecentLookupsHandler_StoreError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/lookups", RecentLookupsHandler(&fakeHistory{err: errors.New("db down")}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/lookups", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}

func TestStatsHandler_ReturnsSummary(t *testing.T) {
	s := &fakeStats{summary: lookup.Summary{Total: 3, Failed: 1, TopWords: []lookup.WordCount{{Word: "chair", Count: 2}}}}
	gin.SetMode(gin.TestMode)
	r := SetupRouter(&config.Config{}, Deps{Definitions: definition.NewService(&stubGenerator{}), Stats: s})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/stats?top=3", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	if s.gotTop != 3 {
		t.Errorf("expected top 3, got %d", s.gotTop)
	}
	var sum lookup.Summary
	if err := json.Unmarshal(w.Body.Bytes(), &sum); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if sum.Total != 3 || sum.Failed != 1 || len(sum.TopWords) != 1 {
		t.Errorf("unexpected summary: %+v", sum)
	}
}

func TestStatsHandler_Error(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/stats", StatsHandler(&fakeStats{err: errors.New("redis down")}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/stats", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}

func TestStatsHandler_BadTop(t *testing.T) {
	s := &fakeStats{}
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/stats", StatsHandler(s))

	for _, q := range []string{"top=abc", "top=-1"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/stats?"+q, nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", q, w.Code)
		}
	}
	if s.gotTop != 0 {
		t.Errorf("store should not be queried on a bad top, got top=%d", s.gotTop)
	}
}
