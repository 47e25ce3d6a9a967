package main

import (
	"context"
	"errors"
	"expvar"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"nubhostel/docs"
	"nubhostel/internal/action"
	"nubhostel/internal/auth"
	"nubhostel/internal/catalog"
	"nubhostel/internal/media"
	"nubhostel/internal/ratelimiter"
)

type application struct {
	config        config
	logger        *zap.SugaredLogger
	catalog       *catalog.Client
	media         media.Uploader
	authenticator auth.Authenticator
	rateLimiter   ratelimiter.Limiter
	actions       *action.Tracker
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	allowedOrigins := []string{"https://*", "http://*"}
	if app.config.FrontendURL != "" {
		allowedOrigins = []string{app.config.FrontendURL}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Use(middleware.Timeout(60 * time.Second))

	r.NotFound(app.pageNotFound)
	r.MethodNotAllowed(app.methodNotAllowed)

	r.Route("/v1", func(r chi.Router) {
		r.With(app.BasicAuthMiddleware()).Get("/health", app.healthCheckHandler)
		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/v1/swagger/doc.json")))

		r.With(app.BasicAuthMiddleware()).Post("/authentication/token", app.createTokenHandler)

		r.Get("/site", app.siteHandler)
		r.Get("/home", app.homeHandler)

		r.Route("/meals", func(r chi.Router) {
			r.With(app.OptionalSessionMiddleware).Get("/", app.listMealsHandler)
			r.With(app.OptionalSessionMiddleware).Get("/{mealID}", app.getMealHandler)

			r.Group(func(r chi.Router) {
				r.Use(app.AuthTokenMiddleware)
				r.Post("/{mealID}/like", app.likeMealHandler)
				r.Post("/{mealID}/reviews", app.reviewMealHandler)
				r.Post("/{mealID}/request", app.requestMealHandler)
			})
		})

		r.Route("/upcoming-meals", func(r chi.Router) {
			r.With(app.OptionalSessionMiddleware).Get("/", app.listUpcomingHandler)
			r.With(app.AuthTokenMiddleware).Post("/{mealID}/like", app.likeUpcomingHandler)
		})

		r.Route("/membership", func(r chi.Router) {
			r.Get("/", app.listPackagesHandler)
			r.Get("/{packageName}", app.getPackageHandler)
			r.With(app.AuthTokenMiddleware).Post("/{packageName}/checkout", app.checkoutHandler)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Post("/join", app.joinHandler)
			r.Post("/federated", app.federatedJoinHandler)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Get("/profile", app.profileHandler)
			r.Get("/reviews", app.myReviewsHandler)
			r.Delete("/reviews/{reviewID}", app.deleteMyReviewHandler)
			r.Get("/requests", app.myRequestsHandler)
			r.Delete("/requests/{requestID}", app.cancelMyRequestHandler)
			r.Get("/payments", app.myPaymentsHandler)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Use(app.RequireAdmin)

			r.Get("/profile", app.adminProfileHandler)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", app.adminListUsersHandler)
				r.Patch("/{userID}/role", app.adminPromoteUserHandler)
				r.Delete("/{userID}", app.adminDeleteUserHandler)
			})

			r.Route("/meals", func(r chi.Router) {
				r.Get("/", app.adminListMealsHandler)
				r.Post("/", app.adminCreateMealHandler)
				r.Delete("/{mealID}", app.adminDeleteMealHandler)
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Get("/", app.adminListReviewsHandler)
				r.Delete("/{reviewID}", app.adminDeleteReviewHandler)
			})

			r.Route("/requests", func(r chi.Router) {
				r.Get("/", app.adminListRequestsHandler)
				r.Patch("/{requestID}/serve", app.adminServeRequestHandler)
			})

			r.Route("/upcoming-meals", func(r chi.Router) {
				r.Get("/", app.adminListUpcomingHandler)
				r.Post("/", app.adminCreateUpcomingHandler)
				r.Post("/{mealID}/publish", app.adminPublishUpcomingHandler)
				r.Delete("/{mealID}", app.adminDeleteUpcomingHandler)
			})
		})
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.APIURL
	docs.SwaggerInfo.BasePath = "/v1"

	srv := &http.Server{
		Addr:         app.config.Addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.Addr, "env", app.config.Env, "catalog", app.catalog.BaseURL())

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.Addr, "env", app.config.Env)

	return nil
}
