package main

import (
	"net/http"
)

// healthCheckHandler godoc
//
//	@Summary		Health check
//	@Description	Reports service status, version and the catalog API it talks to
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Failure		401	{object}	error	"Unauthorized"
//	@Security		BasicAuth
//	@Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	data := map[string]string{
		"status":  "ok",
		"env":     app.config.Env,
		"version": version,
		"catalog": app.catalog.BaseURL(),
	}

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}
