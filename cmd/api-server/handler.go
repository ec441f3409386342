package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/peladahub/api-server/internals/images"
)

func (app *App) initHandlers() {
	app.R.Post("/api/login", app.Login)
	app.R.Post("/api/logout", app.Logout)
	app.R.Get("/api/check-auth", app.Middleware(http.HandlerFunc(app.CheckAuth)))

	app.R.Get("/api/jogadores", app.GetPlayers)
	app.R.Post("/api/jogadores", app.Middleware(http.HandlerFunc(app.CreatePlayer)))
	app.R.Put("/api/jogadores/{id}", app.Middleware(http.HandlerFunc(app.UpdatePlayer)))
	app.R.Delete("/api/jogadores/{id}", app.Middleware(http.HandlerFunc(app.DeletePlayer)))
	app.R.Post("/api/jogadores/reset", app.Middleware(http.HandlerFunc(app.ResetPlayers)))

	app.R.Get("/api/time-do-mes", app.GetTeams)
	app.R.Post("/api/time-do-mes", app.Middleware(http.HandlerFunc(app.SaveTeams)))
	app.R.Post("/api/time-do-mes/reset", app.Middleware(http.HandlerFunc(app.ResetTeams)))
	app.R.Post("/api/time-do-mes/gerar", app.Middleware(http.HandlerFunc(app.GenerateTeams)))

	app.R.Get("/api/caixinha", app.GetLedger)
	app.R.Post("/api/caixinha", app.Middleware(http.HandlerFunc(app.AppendTransaction)))
	app.R.Post("/api/caixinha/reset", app.Middleware(http.HandlerFunc(app.ResetLedger)))

	app.R.Get("/api/pagamentos", app.GetPayments)
	app.R.Post("/api/pagamentos/config", app.Middleware(http.HandlerFunc(app.SetFeeConfig)))
	app.R.Post("/api/pagamentos/pagar", app.Middleware(http.HandlerFunc(app.PayFee)))
	app.R.Post("/api/pagamentos/cancelar", app.Middleware(http.HandlerFunc(app.CancelFee)))
	app.R.Post("/api/pagamentos/reset", app.Middleware(http.HandlerFunc(app.ResetPayments)))

	if ds, ok := app.Images.(*images.DiskStore); ok {
		fs := http.StripPrefix(images.BaseURL+"/", http.FileServer(http.Dir(ds.Dir())))
		app.R.Get(images.BaseURL+"/*", fs.ServeHTTP)
	}

	app.R.Handle("/metrics", promhttp.Handler())
	app.R.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("I am Healthy"))
	})
}
