package rest

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/nkal22/ncaa-hoops-pbp/internal/csvio"
	"github.com/nkal22/ncaa-hoops-pbp/internal/ncaa"
	"github.com/nkal22/ncaa-hoops-pbp/internal/onoff"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	client *ncaa.Client
}

// NewHandler creates a new handler
func NewHandler(client *ncaa.Client) *Handler {
	return &Handler{client: client}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "ncaa-hoops-pbp",
	})
}

// GetTeams returns the live team directory for a season
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	sport := q.Get("sport")
	if sport == "" {
		sport = "MBB"
	}

	season := 2025 // default
	if s := q.Get("season"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid season", err)
			return
		}
		season = v
	}

	division := 1 // default
	if d := q.Get("division"); d != "" {
		v, err := strconv.Atoi(d)
		if err != nil || v < 1 || v > 3 {
			respondError(w, http.StatusBadRequest, "Invalid division (use 1-3)", err)
			return
		}
		division = v
	}

	doc, err := h.client.FetchDocument(r.Context(), ncaa.TeamDirectoryPath(season, sport, division))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch team directory", err)
		return
	}

	byName := ncaa.ParseTeamDirectory(doc)
	teams := make([]ncaa.Team, 0, len(byName))
	for _, team := range byName {
		teams = append(teams, team)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"teams": teams,
		"count": len(teams),
	})
}

// OnOffRequest is the body of POST /api/v1/onoff.
type OnOffRequest struct {
	PBPPath   string   `json:"pbp_path"`
	Team      string   `json:"team"`
	Players   []string `json:"players"`
	Opponents []string `json:"opponents,omitempty"`
}

// RunOnOff computes an on/off report from a collected play-by-play file
func (h *Handler) RunOnOff(w http.ResponseWriter, r *http.Request) {
	var req OnOffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.PBPPath == "" || req.Team == "" || len(req.Players) == 0 {
		respondError(w, http.StatusBadRequest, "pbp_path, team and players are required", nil)
		return
	}

	events, err := csvio.ReadEventsFile(req.PBPPath)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read play-by-play file", err)
		return
	}

	if len(req.Opponents) > 0 && !containsAll(req.Opponents) {
		events, err = onoff.FilterOpponents(events, req.Opponents)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid opponent filter", err)
			return
		}
	}

	report, err := onoff.Compute(events, req.Team, req.Players)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to compute on/off report", err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// containsAll reports whether the opponent filter selects every game.
func containsAll(opponents []string) bool {
	for _, o := range opponents {
		if strings.EqualFold(o, "all") {
			return true
		}
	}
	return false
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}
