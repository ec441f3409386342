package main

import (
	"net/http"

	"github.com/peladahub/api-server/internals/teams"
)

func (app *App) GetTeams(w http.ResponseWriter, r *http.Request) {
	assignment, err := app.Teams.Load()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Erro ao carregar times")
		return
	}
	respondJSON(w, http.StatusOK, assignment)
}

func (app *App) SaveTeams(w http.ResponseWriter, r *http.Request) {
	var assignment teams.Assignment
	if err := getBody(r, &assignment); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := app.Teams.Save(assignment); err != nil {
		respondError(w, http.StatusInternalServerError, "Erro ao salvar times")
		return
	}
	respondJSON(w, http.StatusOK, assignment)
}

func (app *App) ResetTeams(w http.ResponseWriter, r *http.Request) {
	if err := app.Teams.Reset(); err != nil {
		respondError(w, http.StatusInternalServerError, "Erro ao limpar times")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Times limpos"})
}

// GenerateTeams draws a fresh random assignment from the current roster and
// returns it without saving; the admin reviews and saves explicitly.
func (app *App) GenerateTeams(w http.ResponseWriter, r *http.Request) {
	roster, err := app.Players.List()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Erro ao carregar jogadores")
		return
	}

	pool := make([]teams.PoolPlayer, 0, len(roster))
	for _, p := range roster {
		pool = append(pool, teams.PoolPlayer{ID: p.ID, IsGoalkeeper: p.IsGoalkeeper})
	}
	respondJSON(w, http.StatusOK, teams.AutoGenerate(pool))
}
