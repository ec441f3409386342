package main

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/peladahub/api-server/internals/players"
)

const maxPhotoUpload = 10 << 20

func (app *App) GetPlayers(w http.ResponseWriter, r *http.Request) {
	list, err := app.Players.List()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Erro ao carregar jogadores")
		return
	}
	respondJSON(w, http.StatusOK, list)
}

// storePhoto saves the optional "foto" multipart file, returning an empty
// reference when no file was sent.
func (app *App) storePhoto(r *http.Request) (string, error) {
	file, header, err := r.FormFile("foto")
	if err == http.ErrMissingFile {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer file.Close()
	return app.Images.Save(file, filepath.Ext(header.Filename))
}

func (app *App) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxPhotoUpload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	name := r.FormValue("nome")
	if name == "" {
		respondError(w, http.StatusBadRequest, "Nome é obrigatório")
		return
	}

	photoRef, err := app.storePhoto(r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Erro ao salvar foto")
		return
	}

	player, err := app.Players.Create(name, r.FormValue("isGoleiro") == "true", photoRef)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Erro ao criar jogador")
		return
	}
	respondJSON(w, http.StatusCreated, player)
}

func (app *App) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Identificador inválido")
		return
	}
	if err := r.ParseMultipartForm(maxPhotoUpload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	photoRef, err := app.storePhoto(r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Erro ao salvar foto")
		return
	}

	player, err := app.Players.Update(id, r.FormValue("nome"), r.FormValue("isGoleiro") == "true", photoRef)
	if errors.Is(err, players.ErrPlayerNotFound) {
		respondError(w, http.StatusNotFound, "Jogador não encontrado")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Erro ao atualizar jogador")
		return
	}
	respondJSON(w, http.StatusOK, player)
}

func (app *App) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Identificador inválido")
		return
	}

	err = app.Players.Delete(id)
	if errors.Is(err, players.ErrPlayerNotFound) {
		respondError(w, http.StatusNotFound, "Jogador não encontrado")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Erro ao remover jogador")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Jogador removido com sucesso"})
}

func (app *App) ResetPlayers(w http.ResponseWriter, r *http.Request) {
	if err := app.Players.ResetAll(); err != nil {
		respondError(w, http.StatusInternalServerError, "Erro ao resetar jogadores")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Todos os jogadores, pagamentos e times foram removidos"})
}
