package main

import (
	"errors"
	"net/http"

	"nubhostel/internal/action"
	"nubhostel/internal/catalog"
	"nubhostel/internal/membership"
	"nubhostel/internal/notice"
)

// writeNoticeError is writeJSONError plus the notice the front end shows once.
func writeNoticeError(w http.ResponseWriter, status int, message string, n notice.Notice) error {
	type envelope struct {
		Success bool          `json:"success"`
		Message string        `json:"message"`
		Status  int           `json:"status"`
		Notice  notice.Notice `json:"notice"`
	}

	return writeJSON(w, status, &envelope{
		Success: false,
		Message: message,
		Status:  status,
		Notice:  n,
	})
}

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())
	writeJSONError(w, http.StatusInternalServerError, "the server encountered a problem")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())
	writeNoticeError(w, http.StatusBadRequest, err.Error(),
		notice.Warning("Invalid Input", "%s", err.Error()))
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("not found", "method", r.Method, "path", r.URL.Path, "error", err.Error())
	writeNoticeError(w, http.StatusNotFound, "not found",
		notice.Error("Not Found", "%s", err.Error()))
}

func (app *application) forbiddenResponse(w http.ResponseWriter, r *http.Request) {
	app.logger.Warnw("forbidden", "method", r.Method, "path", r.URL.Path)
	writeNoticeError(w, http.StatusForbidden, "forbidden",
		notice.Error("Access Denied", "You do not have permission to view this page."))
}

func (app *application) unauthorizedErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized error", "method", r.Method, "path", r.URL.Path, "error", err.Error())
	writeNoticeError(w, http.StatusUnauthorized, "unauthorized",
		notice.Info("Please Login", "You must be logged in to continue."))
}

func (app *application) unauthorizedBasicErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized basic error", "method", r.Method, "path", r.URL.Path, "error", err.Error())
	w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)
	writeJSONError(w, http.StatusUnauthorized, "unauthorized")
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter string) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)
	w.Header().Set("Retry-After", retryAfter)
	writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded, retry after: "+retryAfter)
}

// pageNotFound is the fallback for every unmatched route.
func (app *application) pageNotFound(w http.ResponseWriter, r *http.Request) {
	writeNoticeError(w, http.StatusNotFound, "page not found",
		notice.Error("Oops!", "The page you are looking for does not exist."))
}

func (app *application) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// actionErrorResponse reports a failed user action. Local rejections keep
// their own notice; remote failures show failure.
func (app *application) actionErrorResponse(w http.ResponseWriter, r *http.Request, err error, failure notice.Notice) {
	status, n := classify(err, failure)
	n.Log(app.logger, "method", r.Method, "path", r.URL.Path, "status", status, "error", err.Error())
	writeNoticeError(w, status, err.Error(), n)
}

func classify(err error, failure notice.Notice) (int, notice.Notice) {
	var (
		ve *catalog.ValidationError
		se *catalog.StatusError
		te *catalog.TransportError
	)

	switch {
	case errors.Is(err, action.ErrInProgress):
		return http.StatusConflict, notice.Info("Please Wait", "This action is already in progress.")
	case errors.Is(err, catalog.ErrNotAuthenticated):
		return http.StatusUnauthorized, notice.Info("Please Login", "You must be logged in to continue.")
	case errors.Is(err, catalog.ErrAlreadyLiked):
		return http.StatusConflict, notice.Info("Already Liked", "You already liked this meal.")
	case errors.Is(err, catalog.ErrEmptyReview):
		return http.StatusUnprocessableEntity, notice.Warning("Empty Review", "Please write something before submitting.")
	case errors.Is(err, membership.ErrInvalidPackage):
		return http.StatusBadRequest, notice.Error("Invalid Package", "Please choose Silver, Gold or Platinum.")
	case errors.As(err, &ve):
		return http.StatusBadRequest, notice.Warning("Invalid Input", "%s", ve.Error())
	case catalog.IsNotFound(err):
		return http.StatusNotFound, failure
	case errors.As(err, &se):
		if se.Code == http.StatusConflict {
			return http.StatusConflict, failure
		}
		return http.StatusBadGateway, failure
	case errors.As(err, &te):
		return http.StatusBadGateway, failure
	default:
		return http.StatusInternalServerError, failure
	}
}
