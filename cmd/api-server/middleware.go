package main

import (
	"net/http"
)

const sessionCookie = "session_token"

func setSessionCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	setSessionCookie(w, "", -1)
}

// Middleware gates mutating endpoints behind the admin session cookie. Any
// failure clears the stored credential so the browser drops stale tokens.
func (app *App) Middleware(next http.Handler) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil || cookie.Value == "" {
			respondError(w, http.StatusUnauthorized, "Não autorizado")
			return
		}

		if err := app.Auth.ValidateToken(cookie.Value); err != nil {
			clearSessionCookie(w)
			respondError(w, http.StatusUnauthorized, "Não autorizado")
			return
		}

		next.ServeHTTP(w, r)
	})
}
