package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mlehnert/linkup-backend/internal/domain"
	"github.com/mlehnert/linkup-backend/internal/service"
	"github.com/mlehnert/linkup-backend/internal/session"
	"github.com/mlehnert/linkup-backend/internal/util"
)

// memoryUserRepo is a small stateful user store keyed by email.
type memoryUserRepo struct {
	users map[string]*domain.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: map[string]*domain.User{}}
}

func (r *memoryUserRepo) CreateUser(ctx context.Context, first, last, email string, passwordHash, passwordSalt []byte) (*domain.User, error) {
	user := &domain.User{
		ID:           uuid.New(),
		FirstName:    first,
		LastName:     last,
		Email:        email,
		PasswordHash: passwordHash,
		PasswordSalt: passwordSalt,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	r.users[email] = user
	return user, nil
}

func (r *memoryUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if user, ok := r.users[email]; ok {
		return user, nil
	}
	return nil, sql.ErrNoRows
}

func (r *memoryUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *memoryUserRepo) UpdatePassword(ctx context.Context, email string, passwordHash, passwordSalt []byte) error {
	user, ok := r.users[email]
	if !ok {
		return sql.ErrNoRows
	}
	user.PasswordHash = passwordHash
	user.PasswordSalt = passwordSalt
	return nil
}

func (r *memoryUserRepo) UpdateProfileImage(ctx context.Context, id uuid.UUID, imageURL string) (*domain.User, error) {
	user, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.ImageURL = &imageURL
	return user, nil
}

func (r *memoryUserRepo) UpdateBio(ctx context.Context, id uuid.UUID, bio string) (*domain.User, error) {
	user, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Bio = &bio
	return user, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthTestServer(t *testing.T) (*echo.Echo, *memoryUserRepo, *session.Manager) {
	t.Helper()
	e := echo.New()
	repo := newMemoryUserRepo()
	sessions := session.NewManager("test-secret", 14*24*time.Hour, false)
	RegisterAuth(e, service.NewAuthService(repo), sessions, discardLogger())
	return e, repo, sessions
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return body
}

func hasSessionCookie(rec *httptest.ResponseRecorder) bool {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == session.CookieName && cookie.Value != "" {
			return true
		}
	}
	return false
}

func TestRegistrationEndpoint(t *testing.T) {
	e, repo, _ := newAuthTestServer(t)

	rec := postJSON(e, "/registration", `{"first":"Jo","last":"Doe","email":"jo@x.com","password":"pw123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	if success, _ := body["success"].(bool); !success {
		t.Fatalf("expected success true, got %v", body)
	}
	if !hasSessionCookie(rec) {
		t.Fatal("expected session cookie to be set")
	}
	if _, ok := repo.users["jo@x.com"]; !ok {
		t.Fatal("expected user record to exist")
	}

	t.Run("missing field fails without creating a user", func(t *testing.T) {
		rec := postJSON(e, "/registration", `{"first":"","last":"Doe","email":"second@x.com","password":"pw123"}`)
		body := decodeEnvelope(t, rec)
		if success, _ := body["success"].(bool); success {
			t.Fatal("expected success false")
		}
		if hasSessionCookie(rec) {
			t.Fatal("expected no session cookie")
		}
		if _, ok := repo.users["second@x.com"]; ok {
			t.Fatal("expected no user record")
		}
	})
}

func TestLoginEndpoint(t *testing.T) {
	e, repo, _ := newAuthTestServer(t)

	hash, salt, err := util.DerivePassword("pw123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.CreateUser(context.Background(), "Jo", "Doe", "jo@x.com", hash, salt); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	t.Run("correct password", func(t *testing.T) {
		rec := postJSON(e, "/login", `{"email":"jo@x.com","password":"pw123"}`)
		body := decodeEnvelope(t, rec)
		if success, _ := body["success"].(bool); !success {
			t.Fatalf("expected success true, got %v", body)
		}
		if !hasSessionCookie(rec) {
			t.Fatal("expected session cookie to be set")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := postJSON(e, "/login", `{"email":"jo@x.com","password":"wrong"}`)
		body := decodeEnvelope(t, rec)
		if success, _ := body["success"].(bool); success {
			t.Fatal("expected success false")
		}
		if hasSessionCookie(rec) {
			t.Fatal("expected no session cookie on failure")
		}
	})

	t.Run("unknown email reads the same as wrong password", func(t *testing.T) {
		rec := postJSON(e, "/login", `{"email":"none@x.com","password":"pw123"}`)
		body := decodeEnvelope(t, rec)
		if success, _ := body["success"].(bool); success {
			t.Fatal("expected success false")
		}
	})
}

func TestLogoutClearsSessionAndRedirects(t *testing.T) {
	e, _, sessions := newAuthTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(sessionCookie(t, sessions, uuid.New()))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}

	cleared := false
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == session.CookieName && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected session cookie to be expired")
	}
}
