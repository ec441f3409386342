package main

import (
	"errors"
	"net/http"

	"github.com/peladahub/api-server/internals/ledger"
	"github.com/peladahub/api-server/internals/payments"
)

type paymentsResponse struct {
	payments.Payments
	Summary payments.Summary `json:"resumo"`
}

type paymentPairResponse struct {
	Payments payments.Payments `json:"pagamentos"`
	Ledger   ledger.Ledger     `json:"caixinha"`
}

type feeConfigRequest struct {
	EventFeeBase float64 `json:"valorChurrascoBase"`
}

type payRequest struct {
	PlayerID   int64   `json:"jogadorId"`
	PlayerName string  `json:"jogadorNome"`
	FeeType    string  `json:"tipo"`
	Amount     float64 `json:"valor"`
}

type cancelRequest struct {
	PlayerID int64  `json:"jogadorId"`
	FeeType  string `json:"tipo"`
}

func (app *App) GetPayments(w http.ResponseWriter, r *http.Request) {
	p, err := app.Payments.Get()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Erro ao carregar pagamentos")
		return
	}
	summary, err := app.Payments.Summarize(p)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Erro ao carregar pagamentos")
		return
	}
	respondJSON(w, http.StatusOK, paymentsResponse{Payments: p, Summary: summary})
}

func (app *App) SetFeeConfig(w http.ResponseWriter, r *http.Request) {
	var req feeConfigRequest
	if err := getBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := app.Payments.SetFeeConfig(req.EventFeeBase)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Erro ao salvar configuração")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (app *App) PayFee(w http.ResponseWriter, r *http.Request) {
	var req payRequest
	if err := getBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	feeType, err := payments.ParseFeeType(req.FeeType)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Tipo de taxa inválido")
		return
	}

	p, box, err := app.Payments.Pay(req.PlayerID, req.PlayerName, feeType, req.Amount)
	switch {
	case errors.Is(err, payments.ErrGoalkeeperExempt):
		respondError(w, http.StatusBadRequest, "Goleiros são isentos da mensalidade")
		return
	case errors.Is(err, payments.ErrAlreadyPaid):
		respondError(w, http.StatusBadRequest, "Este jogador já pagou esta taxa")
		return
	case errors.Is(err, payments.ErrInvalidAmount):
		respondError(w, http.StatusBadRequest, "Defina um valor maior que zero para o pagamento")
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "Erro ao registrar pagamento")
		return
	}
	respondJSON(w, http.StatusOK, paymentPairResponse{Payments: p, Ledger: box})
}

func (app *App) CancelFee(w http.ResponseWriter, r *http.Request) {
	var req cancelRequest
	if err := getBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	feeType, err := payments.ParseFeeType(req.FeeType)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Tipo de taxa inválido")
		return
	}

	p, box, err := app.Payments.Cancel(req.PlayerID, feeType)
	switch {
	case errors.Is(err, payments.ErrPaymentNotFound):
		respondError(w, http.StatusNotFound, "Pagamento não encontrado")
		return
	case errors.Is(err, ledger.ErrTransactionNotFound):
		// The paid flag was still cleared; only the ledger half was missing.
		respondError(w, http.StatusNotFound, "Transação na caixinha não encontrada, mas pagamento foi resetado")
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "Erro ao cancelar pagamento")
		return
	}
	respondJSON(w, http.StatusOK, paymentPairResponse{Payments: p, Ledger: box})
}

func (app *App) ResetPayments(w http.ResponseWriter, r *http.Request) {
	p, err := app.Payments.ResetStatuses()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Erro ao resetar pagamentos")
		return
	}
	respondJSON(w, http.StatusOK, p)
}
