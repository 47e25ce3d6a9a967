package main

import (
	"net/http"

	"nubhostel/internal/session"
)

type CreateTokenPayload struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Name     string `json:"name" validate:"max=100"`
	PhotoURL string `json:"photo_url" validate:"omitempty,url"`
}

// createTokenHandler godoc
//
//	@Summary		Issue a session token
//	@Description	Signs a bearer token for an identity already verified by the auth provider. Meant for trusted tooling.
//	@Tags			authentication
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateTokenPayload	true	"Identity"
//	@Success		201		{string}	string				"Token"
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Security		BasicAuth
//	@Router			/authentication/token [post]
func (app *application) createTokenHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateTokenPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	token, err := app.authenticator.GenerateToken(session.Session{
		Email:    payload.Email,
		Name:     payload.Name,
		PhotoURL: payload.PhotoURL,
	}, app.config.Auth.Token.Exp)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, map[string]string{"token": token}); err != nil {
		app.internalServerError(w, r, err)
	}
}
