package main

import (
	"expvar"
	"fmt"
	"os"
	"runtime"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"nubhostel/internal/action"
	"nubhostel/internal/auth"
	"nubhostel/internal/catalog"
	"nubhostel/internal/media"
	"nubhostel/internal/ratelimiter"
)

// NewLogger creates a console zap logger with colored levels.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)
	level := zapcore.InfoLevel

	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout)), level)
	logger := zap.New(core)

	return logger.Sugar(), nil
}

var version = "1.0.0"

//	@title			Hostel Meals Web API
//	@description	Screens of the hostel meals front end: catalog, reviews, membership and the admin dashboard.

//	@contact.name	API Support
//	@contact.email	support@hostel.example

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@BasePath					/v1
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description

//	@securityDefinitions.basic	BasicAuth

func main() {
	// A missing .env is fine; the environment may already be set.
	envErr := godotenv.Load()

	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	if envErr != nil {
		logger.Infow("no .env file loaded", "error", envErr.Error())
	}

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal(err)
	}

	client, err := catalog.NewClient(cfg.Catalog.BaseURL,
		catalog.WithLogger(logger.Named("catalog")),
		catalog.WithTimeout(cfg.Catalog.Timeout),
		catalog.WithUserAgent("nubhostel-web/"+version),
	)
	if err != nil {
		logger.Fatal(err)
	}

	var uploader media.Uploader = media.Disabled{}
	if cfg.Media.CloudinaryURL != "" {
		cld, err := media.NewCloudinary(cfg.Media.CloudinaryURL)
		if err != nil {
			logger.Fatal(err)
		}
		uploader = cld
	} else {
		logger.Warn("CLOUDINARY_URL not set, image uploads are disabled")
	}

	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.RateLimiter.RequestsPerTimeFrame,
		cfg.RateLimiter.TimeFrame,
	)
	defer rateLimiter.Stop()

	jwtAuthenticator := auth.NewJWTAuthenticator(
		cfg.Auth.Token.Secret,
		cfg.Auth.Token.Aud,
		cfg.Auth.Token.Iss,
	)

	app := &application{
		config:        cfg,
		logger:        logger,
		catalog:       client,
		media:         uploader,
		authenticator: jwtAuthenticator,
		rateLimiter:   rateLimiter,
		actions:       action.NewTracker(),
	}

	// Metrics collected at http://localhost:8080/v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))
	expvar.Publish("pending_actions", expvar.Func(func() any {
		return app.actions.Len()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
