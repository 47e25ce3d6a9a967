package main

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"nubhostel/internal/catalog"
	"nubhostel/internal/notice"
	"nubhostel/internal/session"
)

type userKey string

const userCtx userKey = "user"

func (app *application) BasicAuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				app.unauthorizedBasicErrorResponse(w, r, fmt.Errorf("authorization header is missing"))
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Basic" {
				app.unauthorizedBasicErrorResponse(w, r, fmt.Errorf("authorization header is malformed"))
				return
			}

			decoded, err := base64.StdEncoding.DecodeString(parts[1])
			if err != nil {
				app.unauthorizedBasicErrorResponse(w, r, err)
				return
			}

			username := app.config.Auth.Basic.User
			pass := app.config.Auth.Basic.Pass

			creds := strings.SplitN(string(decoded), ":", 2)
			if username == "" || len(creds) != 2 || creds[0] != username || !basicPasswordMatches(pass, creds[1]) {
				app.unauthorizedBasicErrorResponse(w, r, fmt.Errorf("invalid credentials"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// basicPasswordMatches accepts either the plain configured password or a
// bcrypt hash of it.
func basicPasswordMatches(configured, given string) bool {
	if strings.HasPrefix(configured, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(given)) == 1
}

func bearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", nil
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", fmt.Errorf("authorization header is malformed")
	}
	return parts[1], nil
}

// AuthTokenMiddleware requires a valid bearer token and stores the session.
func (app *application) AuthTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r)
		if err != nil {
			app.unauthorizedErrorResponse(w, r, err)
			return
		}
		if token == "" {
			app.unauthorizedErrorResponse(w, r, fmt.Errorf("authorization header is missing"))
			return
		}

		sess, err := app.authenticator.ValidateToken(token)
		if err != nil {
			app.unauthorizedErrorResponse(w, r, err)
			return
		}

		ctx := session.WithSession(r.Context(), sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalSessionMiddleware attaches the session when a token is sent. Public
// pages use it to render viewer specific state.
func (app *application) OptionalSessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r)
		if err != nil {
			app.unauthorizedErrorResponse(w, r, err)
			return
		}
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		sess, err := app.authenticator.ValidateToken(token)
		if err != nil {
			app.unauthorizedErrorResponse(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), sess)))
	})
}

// RequireAdmin looks the session user up in the catalog and lets admins
// through. Must run after AuthTokenMiddleware.
func (app *application) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromContext(r.Context())
		if !sess.Authenticated() {
			app.unauthorizedErrorResponse(w, r, errors.New("no session"))
			return
		}

		user, err := app.catalog.GetUser(r.Context(), sess.ID())
		if err != nil {
			if catalog.IsNotFound(err) {
				app.forbiddenResponse(w, r)
				return
			}
			app.actionErrorResponse(w, r, err, notice.Error("Error", "Could not verify your role."))
			return
		}
		if !user.IsAdmin() {
			app.forbiddenResponse(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), userCtx, &user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getUserFromContext(r *http.Request) *catalog.User {
	if user, ok := r.Context().Value(userCtx).(*catalog.User); ok {
		return user
	}
	return nil
}

func (app *application) RateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.config.RateLimiter.Enabled {
			if allow, retryAfter := app.rateLimiter.Allow(r.RemoteAddr); !allow {
				app.rateLimitExceededResponse(w, r, strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
