package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"euchre-sim/internal/database"
	"euchre-sim/internal/protocol"
	"euchre-sim/internal/simulation"

	"github.com/dustin/go-humanize"
)

// API serves stored studies and runs new ones.
type API struct {
	DB            *database.Service
	DefaultTrials int
	DefaultSeed   uint64
	Workers       int
	MaxTrials     int // zero means no limit
}

func HandleRoutes(mux *http.ServeMux, api *API) {
	mux.HandleFunc("GET /api/simulations/{id}", api.GetSimulationHandler)
	log.Println("Registered route: GET /api/simulations/{id}")

	mux.HandleFunc("GET /api/simulations", api.GetSimulationsHandler)
	log.Println("Registered route: GET /api/simulations")

	mux.HandleFunc("POST /api/simulations", api.CreateSimulationHandler)
	log.Println("Registered route: POST /api/simulations")
}

func (a *API) GetSimulationHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		http.Error(w, "Simulation id is required", http.StatusBadRequest)
		return
	}

	result, err := a.DB.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Simulation not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch simulation", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) GetSimulationsHandler(w http.ResponseWriter, r *http.Request) {
	var results []database.SimulationResult
	var err error
	if hand := r.URL.Query().Get("hand"); hand != "" {
		results, err = a.DB.GetByHand(hand)
		if errors.Is(err, sql.ErrNoRows) {
			results, err = []database.SimulationResult{}, nil
		}
	} else {
		results, err = a.DB.GetAll()
	}
	if err != nil {
		http.Error(w, "Failed to fetch simulations", http.StatusInternalServerError)
		return
	}
	if results == nil {
		results = []database.SimulationResult{}
	}
	writeJSON(w, http.StatusOK, results)
}

func (a *API) CreateSimulationHandler(w http.ResponseWriter, r *http.Request) {
	var req protocol.SimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid simulation request", http.StatusBadRequest)
		return
	}
	cfg, err := req.Config(a.DefaultTrials, a.DefaultSeed)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if a.MaxTrials > 0 && cfg.Trials > a.MaxTrials {
		http.Error(w, "Too many trials, limit is "+humanize.Comma(int64(a.MaxTrials)), http.StatusBadRequest)
		return
	}
	cfg.Workers = a.Workers

	start := time.Now()
	report, err := simulation.RunParallel(r.Context(), cfg)
	if err != nil {
		log.Printf("Simulation failed: %v", err)
		http.Error(w, "Simulation failed", http.StatusInternalServerError)
		return
	}
	elapsed := time.Since(start)

	result := database.NewSimulationResult(cfg, report, elapsed)
	if err := a.DB.Insert(result); err != nil {
		log.Printf("Failed to store simulation %s: %v", result.ID, err)
		http.Error(w, "Failed to store simulation", http.StatusInternalServerError)
		return
	}
	log.Printf("Simulation %s: %s trials of %s in %s", result.ID, humanize.Comma(int64(report.Trials)), result.Hand, elapsed.Round(time.Millisecond))
	writeJSON(w, http.StatusCreated, result)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
