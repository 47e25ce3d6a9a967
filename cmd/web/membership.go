package main

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"nubhostel/internal/membership"
	"nubhostel/internal/notice"
	"nubhostel/internal/session"
)

// listPackagesHandler godoc
//
//	@Summary		Membership packages
//	@Tags			membership
//	@Produce		json
//	@Success		200	{array}	membership.Package
//	@Router			/membership [get]
func (app *application) listPackagesHandler(w http.ResponseWriter, r *http.Request) {
	app.jsonResponse(w, http.StatusOK, membership.All())
}

// getPackageHandler godoc
//
//	@Summary		Checkout page of a package
//	@Description	Unknown names get the invalid package state
//	@Tags			membership
//	@Produce		json
//	@Param			packageName	path		string	true	"silver, gold or platinum"
//	@Success		200			{object}	membership.Package
//	@Failure		404			{object}	error	"Invalid package"
//	@Router			/membership/{packageName} [get]
func (app *application) getPackageHandler(w http.ResponseWriter, r *http.Request) {
	pkg, err := membership.Lookup(chi.URLParam(r, "packageName"))
	if err != nil {
		writeNoticeError(w, http.StatusNotFound, "invalid package",
			notice.Error("Invalid Package", "Please choose Silver, Gold or Platinum."))
		return
	}
	app.jsonResponse(w, http.StatusOK, pkg)
}

// checkoutHandler godoc
//
//	@Summary		Buy a membership
//	@Description	Upgrades the current user's badge to the package tier
//	@Tags			membership
//	@Produce		json
//	@Param			packageName	path		string	true	"silver, gold or platinum"
//	@Success		200			{object}	map[string]any
//	@Failure		400			{object}	error	"Invalid package"
//	@Failure		401			{object}	error
//	@Failure		409			{object}	error	"In progress"
//	@Failure		502			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/membership/{packageName}/checkout [post]
func (app *application) checkoutHandler(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	name := chi.URLParam(r, "packageName")

	// "gold" and "Gold" are the same purchase and share one pending action.
	pkg, err := membership.Lookup(name)
	if err != nil {
		app.actionErrorResponse(w, r, err, notice.Error("Invalid Package", "Please choose Silver, Gold or Platinum."))
		return
	}

	var message string
	err = app.runAction(r, "checkout", pkg.Key, func(ctx context.Context) error {
		var err error
		pkg, message, err = app.catalog.Checkout(ctx, sess, pkg.Key)
		return err
	})
	if err != nil {
		app.actionErrorResponse(w, r, err, notice.Error("Oops...", "Checkout failed. Please try again later."))
		return
	}

	if message == "" {
		message = "Membership upgraded to " + pkg.Name
	}
	n := notice.Success("Success!", "%s", message)
	n.Log(app.logger, "user", sess.ID(), "package", pkg.Key)
	app.jsonResponse(w, http.StatusOK, map[string]any{
		"package": pkg,
		"badge":   pkg.Badge(),
		"notice":  n,
	})
}
