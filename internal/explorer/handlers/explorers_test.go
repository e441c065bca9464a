package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"oasis-server/internal/auth"
	"oasis-server/internal/explorer"
	"oasis-server/internal/middleware"
	"oasis-server/internal/shared/config"
	"oasis-server/internal/shared/errors"
)

type stubStore struct {
	explorers []explorer.Explorer
}

func (s *stubStore) List(ctx context.Context) ([]explorer.Explorer, error) {
	return s.explorers, nil
}

func (s *stubStore) Create(ctx context.Context, username, email, displayName string, avatarURL *string, role explorer.Role) (*explorer.Explorer, error) {
	return nil, errors.Internal("not used")
}

func (s *stubStore) FindByEmail(ctx context.Context, email string) (*explorer.Explorer, error) {
	return nil, errors.NotFound("not used")
}

func (s *stubStore) GetByID(ctx context.Context, id int) (*explorer.Explorer, error) {
	for i := range s.explorers {
		if s.explorers[i].ID == id {
			return &s.explorers[i], nil
		}
	}
	return nil, errors.NotFoundf("explorer %d not found", id)
}

func (s *stubStore) UsernameTaken(ctx context.Context, username string) (bool, error) {
	return false, nil
}

func (s *stubStore) UpdateRole(ctx context.Context, id int, role explorer.Role) error {
	return nil
}

func newHandler() *ExplorersHandler {
	store := &stubStore{explorers: []explorer.Explorer{
		{ID: 1, Username: "nova", Email: "nova@oasis.test", Role: explorer.RoleUser},
		{ID: 2, Username: "captain", Email: "captain@oasis.test", Role: explorer.RoleAdmin},
	}}
	svc := explorer.NewService(store, config.AdminConfig{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewExplorersHandler(svc)
}

func TestListHidesEmails(t *testing.T) {
	rec := httptest.NewRecorder()
	newHandler().List(rec, httptest.NewRequest(http.MethodGet, "/api/explorers", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "@oasis.test") {
		t.Fatalf("list leaks emails: %s", rec.Body)
	}
	var profiles []explorer.Profile
	if err := json.NewDecoder(rec.Body).Decode(&profiles); err != nil || len(profiles) != 2 {
		t.Fatalf("profiles = %v, %v", profiles, err)
	}
}

func TestMe(t *testing.T) {
	h := newHandler()

	rec := httptest.NewRecorder()
	h.Me(rec, httptest.NewRequest(http.MethodGet, "/api/explorers/me", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous status = %d", rec.Code)
	}

	for id, want := range map[int]int{2: http.StatusOK, 9: http.StatusNotFound} {
		req := httptest.NewRequest(http.MethodGet, "/api/explorers/me", nil)
		req = req.WithContext(middleware.WithClaims(req.Context(), &auth.Claims{ExplorerID: id}))
		rec := httptest.NewRecorder()
		h.Me(rec, req)
		if rec.Code != want {
			t.Fatalf("explorer %d status = %d, want %d", id, rec.Code, want)
		}
	}
}
