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

type uploadResponse struct {
	Images []models.Image `json:"images"`
	Failed int            `json:"failed"`
	Error  string         `json:"error,omitempty"`
}

func ImageRoutes(portfolios *controllers.PortfolioController, uploads *controllers.UploadController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.AuthMiddleware(cfg))

	r.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
		images, err := portfolios.GetImagesForUser(r.Context(), currentUser(r))
		if err != nil {
			return nil, 0, err
		}
		return images, http.StatusOK, nil
	}))

	r.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.SaveImageRequest
		if err := decode(r, &req); err != nil {
			return nil, 0, err
		}
		userID := currentUser(r)
		source := req.Source
		if source == "" {
			source = models.SourceUpload
		}
		portfolioID := req.PortfolioID
		if portfolioID == nil {
			id, err := portfolios.DefaultPortfolioID(r.Context(), userID)
			if err != nil {
				return nil, 0, err
			}
			portfolioID = id
		}
		img, err := portfolios.SaveImage(r.Context(), models.ImageInput{
			ImageURL:    req.ImageURL,
			PortfolioID: portfolioID,
			UserID:      &userID,
			Source:      source,
		})
		if err != nil {
			return nil, 0, err
		}
		return img, http.StatusCreated, nil
	}))

	// POST /images/batch : several URLs at once, partial success allowed
	r.Post("/batch", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.SaveImagesRequest
		if err := decode(r, &req); err != nil {
			return nil, 0, err
		}
		userID := currentUser(r)
		defaultID, err := portfolios.DefaultPortfolioID(r.Context(), userID)
		if err != nil {
			return nil, 0, err
		}
		inputs := make([]models.ImageInput, len(req.Images))
		for i, img := range req.Images {
			in := models.ImageInput{ImageURL: img.ImageURL, PortfolioID: img.PortfolioID, UserID: &userID, Source: img.Source}
			if in.PortfolioID == nil {
				in.PortfolioID = defaultID
			}
			if in.Source == "" {
				in.Source = models.SourceUpload
			}
			inputs[i] = in
		}
		saved, err := portfolios.SaveImages(r.Context(), inputs)
		if err != nil && len(saved) == 0 {
			return nil, 0, err
		}
		res := uploadResponse{Images: saved, Failed: len(inputs) - len(saved)}
		if err != nil {
			res.Error = err.Error()
		}
		return res, http.StatusOK, nil
	}))

	// POST /images/upload : multipart "files", optional "portfolio_id"
	r.Post("/upload", handleJSON(func(r *http.Request) (any, int, error) {
		files, closeAll, err := multipartFiles(r, "files", uploads.MaxBytes())
		defer closeAll()
		if err != nil {
			return nil, 0, err
		}
		var portfolioID *string
		if id := r.FormValue("portfolio_id"); id != "" {
			portfolioID = &id
		}
		saved, err := uploads.UploadImages(r.Context(), currentUser(r), portfolioID, files)
		if err != nil && len(saved) == 0 {
			return nil, 0, err
		}
		res := uploadResponse{Images: saved, Failed: len(files) - len(saved)}
		if err != nil {
			res.Error = err.Error()
		}
		return res, http.StatusOK, nil
	}))

	// Deleting an image the caller does not own is a no-op, same as a missing id.
	r.Delete("/{id}", handleJSON(func(r *http.Request) (any, int, error) {
		if err := uploads.DeleteImage(r.Context(), currentUser(r), chi.URLParam(r, "id")); err != nil {
			return nil, 0, err
		}
		return nil, http.StatusNoContent, nil
	}))

	return r
}
