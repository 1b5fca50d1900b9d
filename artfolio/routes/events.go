package routes

import (
	"net/http"
	"time"

	"artfolio/artfolio/config"
	"artfolio/artfolio/controllers"
	"artfolio/artfolio/middlewares"
	"artfolio/artfolio/types"

	"github.com/go-chi/chi/v5"
)

func EventRoutes(ctrl *controllers.EventsController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.AuthMiddleware(cfg))

	r.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
		list, err := ctrl.ListEvents(r.Context(), currentUser(r), time.Now())
		if err != nil {
			return nil, 0, err
		}
		return list, http.StatusOK, nil
	}))

	r.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.EventRequest
		if err := decode(r, &req); err != nil {
			return nil, 0, err
		}
		ev, err := ctrl.AddEvent(r.Context(), currentUser(r), controllers.EventInput(req))
		if err != nil {
			return nil, 0, err
		}
		return ev, http.StatusCreated, nil
	}))

	r.Delete("/{id}", handleJSON(func(r *http.Request) (any, int, error) {
		if err := ctrl.RemoveEvent(r.Context(), currentUser(r), chi.URLParam(r, "id")); err != nil {
			return nil, 0, err
		}
		return nil, http.StatusNoContent, nil
	}))

	return r
}
