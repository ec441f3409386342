package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/peladahub/api-server/internals/auth"
	"github.com/peladahub/api-server/internals/images"
	"github.com/peladahub/api-server/internals/ledger"
	"github.com/peladahub/api-server/internals/payments"
	"github.com/peladahub/api-server/internals/players"
	"github.com/peladahub/api-server/internals/storage"
	"github.com/peladahub/api-server/internals/teams"
	"github.com/peladahub/api-server/pkg/conf"
	"github.com/peladahub/api-server/pkg/kvstore"
)

type App struct {
	R        *chi.Mux
	Conf     *viper.Viper
	Log      *logrus.Logger
	Store    storage.Store
	KV       kvstore.KVStore
	Images   images.Store
	Auth     *auth.Service
	Players  *players.Service
	Teams    *teams.Service
	Ledger   *ledger.Service
	Payments *payments.Service
}

func main() {
	app := &App{
		Conf: conf.Config("."),
	}
	app.initLogger()

	app.initStore()
	app.initKVStore()
	app.initImages()
	app.initServices()

	r := chi.NewRouter()
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{app.Conf.GetString("server.cors_origin")},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler)
	r.Use(app.Metrics)
	app.R = r

	app.initHandlers()

	addr := ":" + app.Conf.GetString("server.port")
	app.Log.WithField("addr", addr).Info("server starting")
	if err := http.ListenAndServe(addr, r); err != nil {
		app.Log.WithError(err).Fatal("server stopped")
	}
}
