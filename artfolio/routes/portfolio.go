package routes

import (
	"errors"
	"net/http"

	"artfolio/artfolio/config"
	"artfolio/artfolio/controllers"
	"artfolio/artfolio/middlewares"
	"artfolio/artfolio/sources/models"
	"artfolio/artfolio/types"
	"artfolio/artfolio/utils/slug"

	"github.com/go-chi/chi/v5"
)

var errNotOwner = errors.New("portfolio belongs to another user")

func PortfolioRoutes(portfolios *controllers.PortfolioController, profiles *controllers.ProfileController, cfg config.Config) chi.Router {
	r := chi.NewRouter()

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.OptionalAuth(cfg))
		// GET /portfolios/{ref} : slug, id or my-portfolio
		gr.Get("/{ref}", handleJSON(func(r *http.Request) (any, int, error) {
			page, err := portfolios.PublicPage(r.Context(), chi.URLParam(r, "ref"), currentUser(r))
			if err != nil {
				return nil, 0, err
			}
			if page == nil {
				return notFound("PublicPage")
			}
			return page, http.StatusOK, nil
		}))

		gr.Get("/{id}/images", handleJSON(func(r *http.Request) (any, int, error) {
			images, err := portfolios.VisibleImages(r.Context(), chi.URLParam(r, "id"), currentUser(r))
			if err != nil {
				return nil, 0, err
			}
			if images == nil {
				return notFound("VisibleImages")
			}
			return images, http.StatusOK, nil
		}))
	})

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		gr.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
			var req types.SaveProfileRequest
			if err := decode(r, &req); err != nil {
				return nil, 0, err
			}
			res, err := profiles.SaveProfile(r.Context(), currentUser(r), controllers.ProfileInput{
				Name:     req.Name,
				Bio:      req.Bio,
				Website:  req.Website,
				Slug:     req.Slug,
				IsPublic: req.IsPublic,
			})
			if err != nil {
				return nil, 0, err
			}
			return res, http.StatusOK, nil
		}))

		gr.Put("/{id}", handleJSON(func(r *http.Request) (any, int, error) {
			id := chi.URLParam(r, "id")
			p, err := portfolios.GetPortfolioByID(r.Context(), id)
			if err != nil {
				return nil, 0, err
			}
			if p == nil {
				return notFound("UpdatePortfolio")
			}
			if p.UserID != currentUser(r) {
				return nil, http.StatusForbidden, errNotOwner
			}
			var req types.UpdatePortfolioRequest
			if err := decode(r, &req); err != nil {
				return nil, 0, err
			}
			if req.Slug != nil && *req.Slug != "" {
				s := slug.Normalize(*req.Slug)
				req.Slug = &s
			}
			updated, err := portfolios.UpdatePortfolio(r.Context(), id, models.PortfolioUpdate{
				Title:       req.Title,
				Description: req.Description,
				Website:     req.Website,
				Slug:        req.Slug,
				IsPublic:    req.IsPublic,
			})
			if err != nil {
				return nil, 0, err
			}
			if updated == nil {
				return notFound("UpdatePortfolio")
			}
			return updated, http.StatusOK, nil
		}))
	})

	return r
}

func SlugRoutes(portfolios *controllers.PortfolioController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.AuthMiddleware(cfg))
	r.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
		s, err := portfolios.GenerateUniqueSlug(r.Context(), r.URL.Query().Get("base"))
		if err != nil {
			return nil, 0, err
		}
		return map[string]string{"slug": s}, http.StatusOK, nil
	}))
	return r
}
