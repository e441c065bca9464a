package explorer

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"oasis-server/internal/shared/config"
	"oasis-server/internal/shared/errors"
)

type fakeStore struct {
	byID   map[int]*Explorer
	nextID int
}

func newFakeStore() *fakeStore {
	return &fakeStore{byID: make(map[int]*Explorer), nextID: 1}
}

func (f *fakeStore) List(ctx context.Context) ([]Explorer, error) {
	var out []Explorer
	for _, e := range f.byID {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeStore) Create(ctx context.Context, username, email, displayName string, avatarURL *string, role Role) (*Explorer, error) {
	e := &Explorer{ID: f.nextID, Username: username, Email: email, DisplayName: displayName, AvatarURL: avatarURL, Role: role}
	f.byID[e.ID] = e
	f.nextID++
	copied := *e
	return &copied, nil
}

func (f *fakeStore) FindByEmail(ctx context.Context, email string) (*Explorer, error) {
	for _, e := range f.byID {
		if e.Email == email {
			copied := *e
			return &copied, nil
		}
	}
	return nil, errors.NotFoundf("no explorer with email %s", email)
}

func (f *fakeStore) GetByID(ctx context.Context, id int) (*Explorer, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, errors.NotFoundf("explorer %d not found", id)
	}
	copied := *e
	return &copied, nil
}

func (f *fakeStore) UsernameTaken(ctx context.Context, username string) (bool, error) {
	for _, e := range f.byID {
		if e.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) UpdateRole(ctx context.Context, id int, role Role) error {
	e, ok := f.byID[id]
	if !ok {
		return errors.NotFoundf("explorer %d not found", id)
	}
	e.Role = role
	return nil
}

func newTestService(store Store) *Service {
	admin := config.AdminConfig{Email: "captain@oasis.test", Username: "captain", DisplayName: "The Captain"}
	return NewService(store, admin, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestFindOrCreateCreatesUser(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	e, err := svc.FindOrCreateByOAuth(ctx, "github", "Jo.Doe+stars@mail.test", "", nil)
	if err != nil {
		t.Fatalf("FindOrCreateByOAuth: %v", err)
	}
	if e.Username != "jo.doestars" || e.Role != RoleUser || e.DisplayName != "jo.doestars" {
		t.Fatalf("explorer = %+v", e)
	}

	again, err := svc.FindOrCreateByOAuth(ctx, "google", "Jo.Doe+stars@mail.test", "Jo", nil)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if again.ID != e.ID {
		t.Fatalf("second call created a new explorer: %d vs %d", again.ID, e.ID)
	}
}

func TestFindOrCreateAvoidsUsernameClash(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	if _, err := svc.FindOrCreateByOAuth(ctx, "github", "nova@a.test", "Nova", nil); err != nil {
		t.Fatal(err)
	}
	e, err := svc.FindOrCreateByOAuth(ctx, "discord", "nova@b.test", "Nova", nil)
	if err != nil {
		t.Fatal(err)
	}
	if e.Username != "nova2" {
		t.Fatalf("username = %q, want nova2", e.Username)
	}
}

func TestFindOrCreatePromotesAdmin(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	existing, _ := store.Create(ctx, "cap", "captain@oasis.test", "Cap", nil, RoleUser)

	e, err := svc.FindOrCreateByOAuth(ctx, "google", "captain@oasis.test", "Cap", nil)
	if err != nil {
		t.Fatalf("FindOrCreateByOAuth: %v", err)
	}
	if e.ID != existing.ID || e.Role != RoleAdmin {
		t.Fatalf("explorer = %+v, want promoted #%d", e, existing.ID)
	}
	if store.byID[existing.ID].Role != RoleAdmin {
		t.Fatal("role not persisted")
	}
}

func TestFindOrCreateNewAdmin(t *testing.T) {
	svc := newTestService(newFakeStore())

	e, err := svc.FindOrCreateByOAuth(context.Background(), "github", "captain@oasis.test", "ignored", nil)
	if err != nil {
		t.Fatal(err)
	}
	if e.Role != RoleAdmin || e.Username != "captain" || e.DisplayName != "The Captain" {
		t.Fatalf("explorer = %+v", e)
	}
}

func TestParseRole(t *testing.T) {
	if ParseRole("admin") != RoleAdmin || ParseRole("root") != RoleUser {
		t.Fatal("ParseRole mismatch")
	}
	if !RoleAdmin.IsValid() || Role("root").IsValid() {
		t.Fatal("IsValid mismatch")
	}
}
