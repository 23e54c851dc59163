package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"team-fit/internal/domain"
	"team-fit/internal/genome"
	"team-fit/internal/service"
)

func setupAnalysisRouter(client genome.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	analysisSvc := service.NewAnalysisService(client, nil, logger)
	analysisH := NewAnalysisHandler(logger, analysisSvc)
	peopleH := NewPeopleHandler(logger, client)
	teamH := NewTeamHandler(logger, newMockTeamRepo(), analysisSvc)
	return NewRouter(logger, analysisH, peopleH, teamH)
}

func TestAnalyzeRaw_RunsPipeline(t *testing.T) {
	router := setupAnalysisRouter(&genome.MockClient{})

	teamProfiles := []domain.Profile{}
	for i := 0; i < 9; i++ {
		teamProfiles = append(teamProfiles, domain.Profile{
			Skills: []domain.SkillObservation{{Name: "Go", Proficiency: domain.ProficiencyExpert}},
		})
	}
	teamProfiles = append(teamProfiles, domain.Profile{})

	body, _ := json.Marshal(map[string]interface{}{
		"teamProfiles": teamProfiles,
		"candidateProfile": domain.Profile{
			Skills: []domain.SkillObservation{{Name: "Go", Proficiency: domain.ProficiencyExpert}},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analysis/raw", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result service.AnalysisResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("expected valid JSON response, got %v", err)
	}
	if result.Team.TotalMembers != 10 {
		t.Fatalf("expected 10 team members, got %d", result.Team.TotalMembers)
	}
	if len(result.Alerts.RedundancyAlerts) != 1 {
		t.Fatalf("expected one redundancy alert, got %d", len(result.Alerts.RedundancyAlerts))
	}
	want := "Warning: You already have 9 team members with Go at Expert proficiency level."
	if result.Alerts.RedundancyAlerts[0].Message != want {
		t.Fatalf("expected message %q, got %q", want, result.Alerts.RedundancyAlerts[0].Message)
	}
}

func TestAnalyzeRaw_InvalidBody(t *testing.T) {
	router := setupAnalysisRouter(&genome.MockClient{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analysis/raw", bytes.NewReader([]byte("{broken")))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAnalyze_FetchesProfilesByUsername(t *testing.T) {
	client := &genome.MockClient{Profiles: map[string]domain.Profile{
		"alice": {Skills: []domain.SkillObservation{{Name: "Go", Proficiency: domain.ProficiencyExpert}}},
		"carol": {Skills: []domain.SkillObservation{{Name: "Rust", Proficiency: domain.ProficiencyNovice}}},
	}}
	router := setupAnalysisRouter(client)

	body, _ := json.Marshal(map[string]interface{}{
		"team":      []string{"alice"},
		"candidate": "carol",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analysis", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result service.AnalysisResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("expected valid JSON response, got %v", err)
	}
	if result.Delta.Summary.TotalValueAddSkills != 1 {
		t.Fatalf("expected 1 value-add skill, got %d", result.Delta.Summary.TotalValueAddSkills)
	}
}

func TestAnalyze_CandidateNotFound(t *testing.T) {
	router := setupAnalysisRouter(&genome.MockClient{Profiles: map[string]domain.Profile{}})

	body, _ := json.Marshal(map[string]interface{}{
		"team":      []string{},
		"candidate": "ghost",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analysis", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestAnalyze_MissingCandidate(t *testing.T) {
	router := setupAnalysisRouter(&genome.MockClient{})

	body, _ := json.Marshal(map[string]interface{}{"team": []string{"alice"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analysis", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	router := setupAnalysisRouter(&genome.MockClient{Profiles: map[string]domain.Profile{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/people/ghost", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestSearchPeople_ReturnsResults(t *testing.T) {
	router := setupAnalysisRouter(&genome.MockClient{People: []genome.PersonSummary{
		{Username: "alice", Name: "Alice Example"},
	}})

	body, _ := json.Marshal(genome.SearchQuery{Term: "ali"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/search/people", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Results []genome.PersonSummary `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("expected valid JSON response, got %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].Username != "alice" {
		t.Fatalf("unexpected results: %#v", resp.Results)
	}
}
