package main

import (
	"github.com/sirupsen/logrus"

	"github.com/peladahub/api-server/internals/auth"
	"github.com/peladahub/api-server/internals/images"
	"github.com/peladahub/api-server/internals/ledger"
	"github.com/peladahub/api-server/internals/payments"
	"github.com/peladahub/api-server/internals/players"
	"github.com/peladahub/api-server/internals/storage"
	"github.com/peladahub/api-server/internals/teams"
	"github.com/peladahub/api-server/pkg/kvstore"
)

func (app *App) initLogger() {
	log := logrus.New()
	level, err := logrus.ParseLevel(app.Conf.GetString("log.level"))
	if err == nil {
		log.SetLevel(level)
	}
	app.Log = log
}

func (app *App) initStore() {
	var (
		store storage.Store
		err   error
	)
	switch backend := app.Conf.GetString("storage.backend"); backend {
	case "postgres":
		store, err = storage.NewGormStore(app.Conf.GetString("storage.dsn"), app.Log)
	default:
		store, err = storage.NewFileStore(app.Conf.GetString("storage.data_dir"), app.Log)
	}
	if err != nil {
		app.Log.WithError(err).Fatal("could not open document store")
	}
	app.Store = store
}

func (app *App) initKVStore() {
	if app.Conf.GetString("session.backend") == "memory" {
		app.KV = kvstore.NewMemory()
		return
	}
	kv, err := kvstore.NewRedis(app.Conf.GetString("session.redis_addr"), "", 0)
	if err != nil {
		app.Log.WithError(err).Fatal("could not connect to redis")
	}
	app.KV = kv
}

func (app *App) initImages() {
	store, err := images.NewDiskStore(app.Conf.GetString("uploads.dir"), app.Log)
	if err != nil {
		app.Log.WithError(err).Fatal("could not open uploads directory")
	}
	app.Images = store
}

func (app *App) initServices() {
	if app.Conf.GetString("auth.password_hash") == "" {
		app.Log.Warn("auth.password_hash is not configured, every login will fail")
	}
	app.Auth = auth.New(
		app.KV,
		app.Conf.GetString("auth.password_hash"),
		app.Conf.GetString("auth.jwt_secret"),
		app.Conf.GetDuration("auth.session_ttl"),
	)
	app.Ledger = ledger.New(app.Store, app.Log)
	app.Teams = teams.New(app.Store, app.Log)
	app.Payments = payments.New(app.Store, app.Ledger, app.Conf.GetFloat64("fees.monthly_base"), app.Log)
	app.Players = players.New(app.Store, app.Images, app.Teams, app.Payments, app.Log)
}
