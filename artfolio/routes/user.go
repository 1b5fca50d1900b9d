package routes

import (
	"net/http"

	"artfolio/artfolio/config"
	"artfolio/artfolio/controllers"
	"artfolio/artfolio/middlewares"
	"artfolio/artfolio/sources/models"
	"artfolio/artfolio/sources/store"
	"artfolio/artfolio/types"

	"github.com/go-chi/chi/v5"
)

func UserRoutes(profiles *controllers.ProfileController, portfolios *controllers.PortfolioController, uploads *controllers.UploadController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.AuthMiddleware(cfg))

	r.Get("/me", handleJSON(func(r *http.Request) (any, int, error) {
		user, err := portfolios.GetUserProfile(r.Context(), currentUser(r))
		if err != nil {
			return nil, 0, err
		}
		if user == nil {
			return notFound("GetUserProfile")
		}
		return user, http.StatusOK, nil
	}))

	r.Put("/me", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.UpdateUserRequest
		if err := decode(r, &req); err != nil {
			return nil, 0, err
		}
		user, err := profiles.UpdateUser(r.Context(), currentUser(r), models.UserUpdate{
			FullName:        req.FullName,
			Username:        req.Username,
			ProfileImageURL: req.ProfileImageURL,
		})
		if err != nil {
			return nil, 0, err
		}
		return user, http.StatusOK, nil
	}))

	r.Post("/me/picture", handleJSON(func(r *http.Request) (any, int, error) {
		files, closeAll, err := multipartFiles(r, "file", uploads.MaxBytes())
		defer closeAll()
		if err != nil {
			return nil, 0, err
		}
		if len(files) != 1 {
			return nil, 0, store.Invalid("UpdateProfilePicture", "exactly one file is required")
		}
		user, err := profiles.UpdateProfilePicture(r.Context(), currentUser(r), files[0])
		if err != nil {
			return nil, 0, err
		}
		return user, http.StatusOK, nil
	}))

	return r
}
