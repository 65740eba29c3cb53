package session

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"eventsphere/internal/domain/entities"
)

func TestStoreRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "session.yaml")
	store := NewStore(path)

	session := &entities.Session{
		Token: "tok123",
		User: entities.User{
			ID:    "u1",
			Name:  "Ada",
			Email: "ada@example.com",
		},
		ReturnTo: []string{"rsvp", "e1"},
	}
	if err := store.Save(session); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Token != "tok123" || loaded.User.Email != "ada@example.com" {
		t.Errorf("loaded = %+v", loaded)
	}
	if len(loaded.ReturnTo) != 2 || loaded.ReturnTo[0] != "rsvp" {
		t.Errorf("return-to = %v", loaded.ReturnTo)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Stat: %v", err)
		}
		if perm := info.Mode().Perm(); perm != 0o600 {
			t.Errorf("permissions = %o, want 600", perm)
		}
	}
}

func TestStoreMissingFile(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "absent.yaml"))
	session, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if session != nil {
		t.Errorf("session = %+v, want nil for a missing file", session)
	}
	if session.Authenticated() {
		t.Error("missing session must not count as authenticated")
	}
}

func TestStoreClear(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.yaml")
	store := NewStore(path)

	if err := store.Clear(); err != nil {
		t.Fatalf("clearing an absent session: %v", err)
	}

	if err := store.Save(&entities.Session{Token: "tok"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file still exists after Clear")
	}
}

func TestStoreCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.yaml")
	if err := os.WriteFile(path, []byte("\tnot yaml"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewStore(path).Load(); err == nil {
		t.Error("corrupt file should fail to load")
	}
}
