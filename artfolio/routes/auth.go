package routes

import (
	"net/http"

	"artfolio/artfolio/controllers"
	"artfolio/artfolio/types"

	"github.com/go-chi/chi/v5"
)

func AuthRoutes(ctrl *controllers.AuthController) chi.Router {
	r := chi.NewRouter()
	r.Post("/login", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.LoginRequest
		if err := decode(r, &req); err != nil {
			return nil, 0, err
		}
		token, user, err := ctrl.Login(r.Context(), req.Username)
		if err != nil {
			return nil, 0, err
		}
		return map[string]any{"token": token, "user": user}, http.StatusOK, nil
	}))
	return r
}
