package main

import (
	"context"
	"net/http"
	"strings"

	"nubhostel/internal/notice"
	"nubhostel/internal/session"
)

// joinHandler godoc
//
//	@Summary		Join with email and password
//	@Description	Records a freshly registered identity with badge Bronze. The optional image is uploaded first.
//	@Tags			users
//	@Accept			mpfd
//	@Produce		json
//	@Param			name		formData	string	false	"Display name"
//	@Param			image		formData	file	false	"Profile picture (JPEG, PNG or WebP, max 5MB)"
//	@Param			image_url	formData	string	false	"Profile picture URL when no file is sent"
//	@Success		201			{object}	map[string]any
//	@Failure		400			{object}	error
//	@Failure		401			{object}	error
//	@Failure		502			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/users/join [post]
func (app *application) joinHandler(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	if err := parseMultipartForm(w, r); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if name := strings.TrimSpace(r.FormValue("name")); name != "" {
		named := *sess
		named.Name = name
		sess = &named
	}

	err := app.runAction(r, "join", sess.ID(), func(ctx context.Context) error {
		image, err := app.uploadFormImage(ctx, r, "image", "users")
		if err != nil {
			return err
		}
		if image == "" {
			image = strings.TrimSpace(r.FormValue("image_url"))
		}
		return app.catalog.RegisterUser(ctx, sess, image)
	})
	if err != nil {
		if app.imageErrorResponse(w, r, err) {
			return
		}
		app.actionErrorResponse(w, r, err, notice.Error("Error", "Registration failed!"))
		return
	}

	app.jsonResponse(w, http.StatusCreated, map[string]any{
		"notice": notice.Success("Success", "Registration complete!"),
	})
}

// federatedJoinHandler godoc
//
//	@Summary		Join with a federated provider
//	@Description	Records the identity behind the token. Repeating it is harmless.
//	@Tags			users
//	@Produce		json
//	@Success		200	{object}	map[string]any
//	@Failure		401	{object}	error
//	@Failure		502	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/users/federated [post]
func (app *application) federatedJoinHandler(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	err := app.runAction(r, "join", sess.ID(), func(ctx context.Context) error {
		return app.catalog.RegisterFederatedUser(ctx, sess)
	})
	if err != nil {
		app.actionErrorResponse(w, r, err, notice.Error("Error", "Login failed!"))
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]any{
		"notice": notice.Success("Success", "Login successful!"),
	})
}
