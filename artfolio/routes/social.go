package routes

import (
	"net/http"

	"artfolio/artfolio/config"
	"artfolio/artfolio/controllers"
	"artfolio/artfolio/middlewares"
	"artfolio/artfolio/sources/models"
	"artfolio/artfolio/types"

	"github.com/go-chi/chi/v5"
)

type connectResponse struct {
	*controllers.ConnectResult
	ImportError string `json:"import_error,omitempty"`
}

func SocialRoutes(ctrl *controllers.SocialController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.AuthMiddleware(cfg))

	r.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
		statuses, err := ctrl.List(r.Context(), currentUser(r))
		if err != nil {
			return nil, 0, err
		}
		return statuses, http.StatusOK, nil
	}))

	// The account stays connected when only the import fails, so that case
	// is still a 200 carrying the import error.
	r.Post("/{platform}/connect", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.ConnectRequest
		if err := decode(r, &req); err != nil {
			return nil, 0, err
		}
		res, err := ctrl.Connect(r.Context(), currentUser(r), chi.URLParam(r, "platform"), req.Username)
		if res == nil {
			return nil, 0, err
		}
		out := connectResponse{ConnectResult: res}
		if err != nil {
			out.ImportError = err.Error()
		}
		return out, http.StatusOK, nil
	}))

	r.Post("/{platform}/refresh", handleJSON(func(r *http.Request) (any, int, error) {
		images, err := ctrl.Refresh(r.Context(), currentUser(r), chi.URLParam(r, "platform"))
		if err != nil && len(images) == 0 {
			return nil, 0, err
		}
		if images == nil {
			images = []models.Image{}
		}
		return map[string]any{"images": images}, http.StatusOK, nil
	}))

	return r
}
