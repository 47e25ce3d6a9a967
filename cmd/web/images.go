package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"nubhostel/internal/media"
	"nubhostel/internal/notice"
)

const maxFormBytes = 5 << 20

var errBadImage = errors.New("only JPEG, PNG and WebP images are allowed")

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

func parseMultipartForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseMultipartForm(maxFormBytes); err != nil {
		return fmt.Errorf("parse form: %w", err)
	}
	return nil
}

// uploadFormImage stores the file sent as field under folder and returns its
// URL. It returns "" when the form has no such file.
func (app *application) uploadFormImage(ctx context.Context, r *http.Request, field, folder string) (string, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", field, err)
	}
	defer file.Close()

	if !allowedImageTypes[strings.ToLower(header.Header.Get("Content-Type"))] {
		return "", errBadImage
	}

	publicID := fmt.Sprintf("%s_%s", strings.TrimSuffix(folder, "s"), uuid.NewString())
	url, err := app.media.Upload(ctx, file, folder, publicID)
	if err != nil {
		return "", err
	}
	app.logger.Infow("image uploaded", "folder", folder, "url", url)
	return url, nil
}

// deleteImage removes an uploaded image. Failures are logged only; the
// record that pointed at it is already gone.
func (app *application) deleteImage(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := app.media.Delete(ctx, url); err != nil && !errors.Is(err, media.ErrNotConfigured) {
		app.logger.Warnw("failed to delete image", "url", url, "error", err.Error())
	}
}

// imageErrorResponse handles errors from uploadFormImage. It reports false
// for errors it does not own.
func (app *application) imageErrorResponse(w http.ResponseWriter, r *http.Request, err error) bool {
	switch {
	case errors.Is(err, errBadImage):
		app.badRequestResponse(w, r, err)
	case errors.Is(err, media.ErrNotConfigured):
		app.logger.Warnw("image upload attempted without a host", "path", r.URL.Path)
		writeNoticeError(w, http.StatusServiceUnavailable, err.Error(),
			notice.Error("Upload Failed", "Image uploads are not available right now."))
	default:
		return false
	}
	return true
}
