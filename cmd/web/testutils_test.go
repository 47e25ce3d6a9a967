package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"nubhostel/internal/action"
	"nubhostel/internal/auth"
	"nubhostel/internal/catalog"
	"nubhostel/internal/catalog/catalogtest"
	"nubhostel/internal/notice"
	"nubhostel/internal/ratelimiter"
	"nubhostel/internal/session"
)

const (
	testSecret    = "test-secret"
	testBasicUser = "ops"
	testBasicPass = "hunter2"
)

type fakeUploader struct {
	mu      sync.Mutex
	uploads []string
	deleted []string
}

func (f *fakeUploader) Upload(_ context.Context, file io.Reader, folder, publicID string) (string, error) {
	if _, err := io.Copy(io.Discard, file); err != nil {
		return "", err
	}
	url := "https://res.cloudinary.com/demo/image/upload/v1/" + folder + "/" + publicID + ".png"
	f.mu.Lock()
	f.uploads = append(f.uploads, url)
	f.mu.Unlock()
	return url, nil
}

func (f *fakeUploader) Delete(_ context.Context, imageURL string) error {
	f.mu.Lock()
	f.deleted = append(f.deleted, imageURL)
	f.mu.Unlock()
	return nil
}

type testApp struct {
	app      *application
	catalog  *catalogtest.Server
	uploader *fakeUploader
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	srv := catalogtest.NewServer(t)
	logger := zaptest.NewLogger(t).Sugar()

	client, err := catalog.NewClient(srv.URL,
		catalog.WithLogger(logger.Named("catalog")),
		catalog.WithTimeout(2*time.Second),
	)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	cfg := config{
		Env: "test",
		Auth: authConfig{
			Basic: basicConfig{User: testBasicUser, Pass: testBasicPass},
			Token: tokenConfig{Secret: testSecret, Iss: "nubhostel", Aud: "nubhostel", Exp: time.Hour},
		},
		RateLimiter: ratelimiter.Config{RequestsPerTimeFrame: 100, TimeFrame: time.Minute},
		Site:        siteConfig{Name: "Hostel Meals", AccentColor: "#ec4899"},
	}

	limiter := ratelimiter.NewFixedWindowLimiter(cfg.RateLimiter.RequestsPerTimeFrame, cfg.RateLimiter.TimeFrame)
	t.Cleanup(limiter.Stop)

	uploader := &fakeUploader{}
	return &testApp{
		app: &application{
			config:        cfg,
			logger:        logger,
			catalog:       client,
			media:         uploader,
			authenticator: auth.NewJWTAuthenticator(testSecret, "nubhostel", "nubhostel"),
			rateLimiter:   limiter,
			actions:       action.NewTracker(),
		},
		catalog:  srv,
		uploader: uploader,
	}
}

func (ta *testApp) token(t *testing.T, email, name string) string {
	t.Helper()

	token, err := ta.app.authenticator.GenerateToken(session.Session{Email: email, Name: name}, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	return token
}

func (ta *testApp) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return ta.serve(req)
}

func (ta *testApp) serve(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	ta.app.mount().ServeHTTP(rr, req)
	return rr
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Status  int             `json:"status"`
	Notice  notice.Notice   `json:"notice"`
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	if err := json.NewDecoder(rr.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return env
}

func decodeData(t *testing.T, rr *httptest.ResponseRecorder, dst any) {
	t.Helper()

	env := decode(t, rr)
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data %s: %v", env.Data, err)
	}
}

func checkStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()

	if rr.Code != want {
		t.Fatalf("status = %d, want %d (body %s)", rr.Code, want, rr.Body.String())
	}
}
