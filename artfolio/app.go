package main

import (
	"net/http"

	"artfolio/artfolio/config"
	"artfolio/artfolio/controllers"
	"artfolio/artfolio/live"
	"artfolio/artfolio/routes"
	"artfolio/artfolio/sources/storage"
	"artfolio/artfolio/sources/store"
)

func newImporter(cfg config.Config) controllers.ImageImporter {
	if cfg.SocialImporter == config.ImporterPage {
		return controllers.NewPageImporter(cfg.SocialPageURL)
	}
	return controllers.MockImporter{}
}

func newRouter(cfg config.Config, s store.Store, files storage.FileHost) http.Handler {
	hub := live.NewHub(0)
	portfolios := controllers.NewPortfolioController(s, hub)
	uploads := controllers.NewUploadController(files, portfolios, cfg.MaxUploadBytes)

	deps := routes.Deps{
		Config:     cfg,
		Auth:       controllers.NewAuthController(s, cfg),
		Profiles:   controllers.NewProfileController(s, uploads, hub),
		Portfolios: portfolios,
		Uploads:    uploads,
		Events:     controllers.NewEventsController(s, hub),
		Social:     controllers.NewSocialController(s, portfolios, newImporter(cfg)),
		Health:     controllers.NewHealthController(cfg.StoreBackend),
		Hub:        hub,
	}
	if local, ok := files.(*storage.LocalHost); ok {
		deps.Files = local.Handler()
	}
	return routes.New(deps)
}
