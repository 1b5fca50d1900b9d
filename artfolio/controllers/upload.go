package controllers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"artfolio/artfolio/sources/models"
	"artfolio/artfolio/sources/storage"
	"artfolio/artfolio/sources/store"
	"artfolio/artfolio/utils/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultMaxUploadBytes int64 = 10 << 20

// Upload is one file taken from a multipart request.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type UploadController struct {
	files      storage.FileHost
	portfolios *PortfolioController
	maxBytes   int64
}

func NewUploadController(files storage.FileHost, portfolios *PortfolioController, maxBytes int64) *UploadController {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &UploadController{files: files, portfolios: portfolios, maxBytes: maxBytes}
}

func (c *UploadController) MaxBytes() int64 {
	return c.maxBytes
}

func (c *UploadController) validate(f Upload) error {
	if !strings.HasPrefix(f.ContentType, "image/") {
		return store.Invalid("Upload", fmt.Sprintf("%s is not an image", f.Filename))
	}
	if f.Size > c.maxBytes {
		return store.Invalid("Upload", fmt.Sprintf("%s exceeds the %d byte limit", f.Filename, c.maxBytes))
	}
	return nil
}

// Host validates f and stores it under <prefix>/<userID>/<uuid><ext>.
func (c *UploadController) Host(ctx context.Context, prefix, userID string, f Upload) (string, error) {
	if err := c.validate(f); err != nil {
		return "", err
	}
	key := path.Join(prefix, userID, uuid.NewString()+strings.ToLower(filepath.Ext(f.Filename)))
	url, err := c.files.Put(ctx, key, f.Body, f.Size, f.ContentType)
	if err != nil {
		return "", store.E(store.KindUnavailable, "Upload", err)
	}
	logging.AppLogger.Info("file hosted", zap.String("key", key), zap.Int64("size", f.Size))
	return url, nil
}

// DeleteImage removes userID's image and, when it was uploaded here, the
// hosted file behind it. A file that cannot be removed is logged, not returned.
func (c *UploadController) DeleteImage(ctx context.Context, userID, imageID string) error {
	img, err := c.portfolios.DeleteUserImage(ctx, userID, imageID)
	if err != nil || img == nil || img.Source != models.SourceUpload {
		return err
	}
	key, ok := c.files.Key(img.ImageURL)
	if !ok {
		return nil
	}
	if err := c.files.Delete(ctx, key); err != nil {
		logging.ErrorLogger.Error("hosted file delete failed", zap.String("key", key), zap.Error(err))
	}
	return nil
}

// UploadImages hosts every file and saves an image row for each. Files that
// fail validation or hosting are reported in the joined error alongside any
// rows that failed to save.
func (c *UploadController) UploadImages(ctx context.Context, userID string, portfolioID *string, files []Upload) ([]models.Image, error) {
	defer logging.LogDuration(ctx, "UploadImages")()
	if len(files) == 0 {
		return nil, store.Invalid("UploadImages", "no files uploaded")
	}
	if portfolioID == nil {
		id, err := c.portfolios.DefaultPortfolioID(ctx, userID)
		if err != nil {
			return nil, err
		}
		portfolioID = id
	}

	var errs []error
	inputs := make([]models.ImageInput, 0, len(files))
	for _, f := range files {
		url, err := c.Host(ctx, "images", userID, f)
		if err != nil {
			errs = append(errs, fail("UploadImages", err))
			continue
		}
		inputs = append(inputs, models.ImageInput{
			ImageURL:    url,
			PortfolioID: portfolioID,
			UserID:      &userID,
			Source:      models.SourceUpload,
		})
	}
	saved, err := c.portfolios.SaveImages(ctx, inputs)
	return saved, errors.Join(append(errs, err)...)
}
