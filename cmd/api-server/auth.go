package main

import (
	"net/http"

	"github.com/peladahub/api-server/internals/auth"
)

func (app *App) Login(w http.ResponseWriter, r *http.Request) {
	var loginDetails auth.LoginRequestBody
	if err := getBody(r, &loginDetails); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := app.Auth.Login(loginDetails.Password)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Senha incorreta")
		return
	}

	setSessionCookie(w, token, int(app.Auth.TTL().Seconds()))
	respondJSON(w, http.StatusOK, map[string]string{"message": "Login efetuado com sucesso"})
}

func (app *App) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		if err := app.Auth.RevokeToken(cookie.Value); err != nil {
			app.Log.WithError(err).Warn("could not revoke session token")
		}
	}
	clearSessionCookie(w)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Sessão encerrada"})
}

func (app *App) CheckAuth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "ok"})
}
