package main

import (
	"net/http"

	"github.com/peladahub/api-server/internals/ledger"
)

type transactionRequest struct {
	Description string  `json:"descricao"`
	Amount      float64 `json:"valor"`
	Direction   string  `json:"tipo"`
	PlayerID    int64   `json:"jogadorId,omitempty"`
	PlayerName  string  `json:"jogadorNome,omitempty"`
}

func (app *App) GetLedger(w http.ResponseWriter, r *http.Request) {
	box, err := app.Ledger.Get()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Erro ao carregar caixinha")
		return
	}
	respondJSON(w, http.StatusOK, box)
}

func (app *App) AppendTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := getBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Direction != ledger.DirectionCredit && req.Direction != ledger.DirectionDebit {
		respondError(w, http.StatusBadRequest, "Tipo de transação inválido")
		return
	}

	_, box, err := app.Ledger.Append(ledger.Transaction{
		Description: req.Description,
		Amount:      req.Amount,
		Direction:   req.Direction,
		PlayerID:    req.PlayerID,
		PlayerName:  req.PlayerName,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Erro ao registrar transação")
		return
	}
	respondJSON(w, http.StatusCreated, box)
}

func (app *App) ResetLedger(w http.ResponseWriter, r *http.Request) {
	if err := app.Ledger.Reset(); err != nil {
		respondError(w, http.StatusInternalServerError, "Erro ao zerar caixinha")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Caixinha zerada"})
}
