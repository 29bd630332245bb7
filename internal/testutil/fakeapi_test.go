package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func makeTestToken(tokenType string, expiry time.Time, secret string) string {
	claims := jwt.MapClaims{
		"sub":  "alice",
		"exp":  expiry.Unix(),
		"iat":  time.Now().Unix(),
		"type": tokenType,
	}
	s, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	return s
}

func recommend(t *testing.T, b *FakeBackend, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/add_recommendation", strings.NewReader(`{"movie_id": 1}`))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	b.Router().ServeHTTP(w, req)
	return w
}

func TestVerifyToken_ValidAccessToken(t *testing.T) {
	b := NewFakeBackend(TestMovies())
	w := recommend(t, b, "Bearer "+IssueToken("alice", FarFuture()))

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d. body: %s", w.Code, http.StatusCreated, w.Body.String())
	}
	if b.Count(1) != 1 {
		t.Errorf("Count(1) = %d, want 1", b.Count(1))
	}
}

func TestVerifyToken_MissingAuthorizationHeader(t *testing.T) {
	w := recommend(t, NewFakeBackend(TestMovies()), "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestVerifyToken_ExpiredToken(t *testing.T) {
	w := recommend(t, NewFakeBackend(TestMovies()), "Bearer "+makeTestToken("access", time.Now().Add(-time.Hour), FakeBackendSecret))
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	w := recommend(t, NewFakeBackend(TestMovies()), "Bearer "+makeTestToken("access", FarFuture(), "wrong-secret"))
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
	}
}

func TestVerifyToken_RefreshTokenRejected(t *testing.T) {
	w := recommend(t, NewFakeBackend(TestMovies()), "Bearer "+makeTestToken("refresh", FarFuture(), FakeBackendSecret))
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
	}
}

func TestSearch_PagesAndNotFound(t *testing.T) {
	b := NewFakeBackend(TestMovies())
	r := b.Router()

	for _, tc := range []struct {
		target string
		status int
	}{
		{"/search?query=batman&page=1", http.StatusOK},
		{"/search?query=batman&page=2", http.StatusOK},
		{"/search?query=batman&page=3", http.StatusNotFound},
		{"/search", http.StatusBadRequest},
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", tc.target, nil))
		if w.Code != tc.status {
			t.Errorf("GET %s status = %d, want %d", tc.target, w.Code, tc.status)
		}
	}
	if b.Hits("/search") != 4 {
		t.Errorf("Hits(/search) = %d, want 4", b.Hits("/search"))
	}
}

func TestRequestID_EchoedOrGenerated(t *testing.T) {
	b := NewFakeBackend(TestMovies())
	r := b.Router()

	req := httptest.NewRequest("GET", "/recommended_movies", nil)
	req.Header.Set("X-Request-ID", "given-id")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "given-id" {
		t.Errorf("X-Request-ID = %q, want given-id", got)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/recommended_movies", nil))
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID should be generated when absent")
	}
}
