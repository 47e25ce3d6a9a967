package main

import (
	"context"
	"net/http"

	"nubhostel/internal/action"
	"nubhostel/internal/session"
)

// runAction executes fn as the session user's name action on entity. A second
// call for the same key while the first is pending returns
// action.ErrInProgress and fn is not run.
func (app *application) runAction(r *http.Request, name, entity string, fn func(ctx context.Context) error) error {
	sess := session.FromContext(r.Context())
	k := action.Key{Actor: sess.ID(), Action: name, Entity: entity}

	state, err := app.actions.Run(k, func() error {
		return fn(r.Context())
	})
	app.logger.Debugw("action", "name", name, "entity", entity, "actor", k.Actor, "state", state.String())
	return err
}
