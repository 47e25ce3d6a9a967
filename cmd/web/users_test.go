package main

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"nubhostel/internal/catalog"
	"nubhostel/internal/membership"
	"nubhostel/internal/notice"
)

func joinRequest(t *testing.T, token, name, contentType string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("name", name); err != nil {
		t.Fatalf("WriteField() error = %v", err)
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="me.png"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatalf("CreatePart() error = %v", err)
	}
	part.Write([]byte("\x89PNG fake image"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/v1/users/join", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestJoinUploadsImageAndRegistersBronze(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t)
	rr := ta.serve(joinRequest(t, ta.token(t, "Alice@Hostel.com", ""), "Alice", "image/png"))
	checkStatus(t, rr, http.StatusCreated)

	if len(ta.uploader.uploads) != 1 {
		t.Fatalf("uploads = %v, want 1", ta.uploader.uploads)
	}
	users := ta.catalog.Users()
	if len(users) != 1 {
		t.Fatalf("len(users) = %d, want 1", len(users))
	}
	u := users[0]
	if u.Email != "alice@hostel.com" || u.Name != "Alice" || u.Badge != membership.DefaultBadge {
		t.Fatalf("user = %+v", u)
	}
	if u.Image != ta.uploader.uploads[0] || !strings.Contains(u.Image, "/users/user_") {
		t.Fatalf("image = %q, want uploaded url", u.Image)
	}
}

func TestJoinRejectsUnsupportedImage(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t)
	rr := ta.serve(joinRequest(t, ta.token(t, "alice@hostel.com", "Alice"), "Alice", "image/gif"))
	checkStatus(t, rr, http.StatusBadRequest)

	if len(ta.uploader.uploads) != 0 || ta.catalog.TotalHits() != 0 {
		t.Fatalf("uploads = %v, hits = %d, want none", ta.uploader.uploads, ta.catalog.TotalHits())
	}
}

func TestFederatedJoinIsIdempotent(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t)
	token := ta.token(t, "bob@hostel.com", "Bob")

	for i := 0; i < 2; i++ {
		rr := ta.request(t, http.MethodPost, "/v1/users/federated", token, nil)
		checkStatus(t, rr, http.StatusOK)
	}
	if n := len(ta.catalog.Users()); n != 1 {
		t.Fatalf("users = %d, want 1", n)
	}
}

func TestDashboardOnlyDeletesOwnReview(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t)
	mine := ta.catalog.SeedReview(catalog.Review{UserEmail: "alice@hostel.com", UserName: "Alice", Review: "Nice"})
	theirs := ta.catalog.SeedReview(catalog.Review{UserEmail: "bob@hostel.com", UserName: "Bob", Review: "Meh"})
	token := ta.token(t, "alice@hostel.com", "Alice")

	rr := ta.request(t, http.MethodGet, "/v1/dashboard/reviews", token, nil)
	checkStatus(t, rr, http.StatusOK)
	var reviews []catalog.Review
	decodeData(t, rr, &reviews)
	if len(reviews) != 1 || reviews[0].ID != mine {
		t.Fatalf("reviews = %+v, want only alice's", reviews)
	}

	rr = ta.request(t, http.MethodDelete, "/v1/dashboard/reviews/"+theirs, token, nil)
	checkStatus(t, rr, http.StatusNotFound)
	if env := decode(t, rr); env.Notice.Kind != notice.KindError || env.Notice.Title == "" {
		t.Fatalf("notice = %+v, want error notice", env.Notice)
	}

	rr = ta.request(t, http.MethodDelete, "/v1/dashboard/reviews/"+mine, token, nil)
	checkStatus(t, rr, http.StatusOK)
	if n := len(ta.catalog.Reviews()); n != 1 {
		t.Fatalf("reviews left = %d, want 1", n)
	}
}
