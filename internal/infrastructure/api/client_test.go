package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"eventsphere/internal/domain"
	"eventsphere/internal/domain/entities"
)

// memorySessions is an in-memory SessionStore for tests.
type memorySessions struct {
	session *entities.Session
}

func (m *memorySessions) Load() (*entities.Session, error) { return m.session, nil }
func (m *memorySessions) Save(s *entities.Session) error   { m.session = s; return nil }
func (m *memorySessions) Clear() error                     { m.session = nil; return nil }

func sampleEventJSON(id string, seats, total int) map[string]any {
	return map[string]any{
		"_id":       id,
		"title":     "Go Meetup",
		"eventMode": "Inperson",
		"category":  "Technology",
		"startAt":   "2026-09-12T18:00:00Z",
		"endAt":     "2026-09-12T20:00:00Z",
		"price":     map[string]any{"amount": 0, "currency": "EUR"},
		"capacity":  map[string]any{"number": total, "seatsRemaining": seats},
		"location":  map[string]any{"city": "Amsterdam", "postCode": "1012AB"},
	}
}

func newTestClient(t *testing.T, handler http.Handler, session *entities.Session) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second, &memorySessions{session: session})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func TestEventRepository(t *testing.T) {
	t.Parallel()

	t.Run("list forwards the filter and decodes data and total", func(t *testing.T) {
		t.Parallel()
		router := chi.NewRouter()
		var gotQuery map[string]string
		router.Get("/api/events", func(w http.ResponseWriter, r *http.Request) {
			gotQuery = map[string]string{
				"q":        r.URL.Query().Get("q"),
				"category": r.URL.Query().Get("category"),
				"page":     r.URL.Query().Get("page"),
				"limit":    r.URL.Query().Get("limit"),
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"data":  []any{sampleEventJSON("e1", 3, 10)},
				"total": 25,
			})
		})
		repo := NewEventRepository(newTestClient(t, router, nil))

		events, total, err := repo.List(context.Background(), entities.ListFilter{
			Query: "go", Category: "Technology", Page: 2, PageSize: 12,
		})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if total != 25 || len(events) != 1 {
			t.Errorf("total=%d items=%d, want 25/1", total, len(events))
		}
		if gotQuery["q"] != "go" || gotQuery["category"] != "Technology" || gotQuery["page"] != "2" || gotQuery["limit"] != "12" {
			t.Errorf("query = %v", gotQuery)
		}
		if events[0].Capacity.SeatsRemaining != 3 || events[0].Location == nil {
			t.Errorf("decoded event = %+v", events[0])
		}
	})

	t.Run("get rejects a payload with impossible seat counts", func(t *testing.T) {
		t.Parallel()
		router := chi.NewRouter()
		router.Get("/api/events/{id}", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, sampleEventJSON("e1", 12, 10))
		})
		repo := NewEventRepository(newTestClient(t, router, nil))

		if _, err := repo.Get(context.Background(), "e1"); !errors.Is(err, domain.ErrMalformedResponse) {
			t.Fatalf("err = %v, want malformed_response", err)
		}
	})

	t.Run("get maps 404 to event_not_found", func(t *testing.T) {
		t.Parallel()
		router := chi.NewRouter()
		repo := NewEventRepository(newTestClient(t, router, nil))

		if _, err := repo.Get(context.Background(), "nope"); !errors.Is(err, domain.ErrEventNotFound) {
			t.Fatalf("err = %v, want event_not_found", err)
		}
	})

	t.Run("server errors surface as fetch_failed", func(t *testing.T) {
		t.Parallel()
		router := chi.NewRouter()
		router.Get("/api/events/{id}", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "boom"})
		})
		repo := NewEventRepository(newTestClient(t, router, nil))

		_, err := repo.Get(context.Background(), "e1")
		if domain.Code(err) != "fetch_failed" {
			t.Fatalf("err = %v, want code fetch_failed", err)
		}
	})

	t.Run("unreachable server surfaces as fetch_failed", func(t *testing.T) {
		t.Parallel()
		client := NewClient("http://127.0.0.1:1", 200*time.Millisecond, &memorySessions{})
		repo := NewEventRepository(client)

		_, err := repo.Get(context.Background(), "e1")
		if domain.Code(err) != "fetch_failed" {
			t.Fatalf("err = %v, want code fetch_failed", err)
		}
	})
}

func TestRequestHeaders(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	var auth, requestID string
	router.Get("/api/events/{id}", func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		requestID = r.Header.Get("X-Request-ID")
		writeJSON(w, http.StatusOK, sampleEventJSON("e1", 3, 10))
	})
	session := &entities.Session{Token: "tok123"}
	repo := NewEventRepository(newTestClient(t, router, session))

	if _, err := repo.Get(context.Background(), "e1"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if auth != "Bearer tok123" {
		t.Errorf("Authorization = %q", auth)
	}
	if requestID == "" {
		t.Error("X-Request-ID missing")
	}
}

func TestToggleRSVP(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		body     map[string]any
		wantErr  string
		reserved bool
		seats    int
	}{
		{
			name:     "reserve",
			body:     map[string]any{"success": true, "status": "reserved", "seatsRemaining": 2},
			reserved: true,
			seats:    2,
		},
		{
			name:     "cancel",
			body:     map[string]any{"success": true, "status": "cancelled", "seatsRemaining": 3},
			reserved: false,
			seats:    3,
		},
		{
			name:    "rejected",
			body:    map[string]any{"success": false, "status": "none", "seatsRemaining": 0},
			wantErr: "rsvp_rejected",
		},
		{
			name:    "unknown status",
			body:    map[string]any{"success": true, "status": "maybe", "seatsRemaining": 1},
			wantErr: "malformed_response",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			router := chi.NewRouter()
			router.Post("/api/my-events/attending/{id}/rsvp/toggle", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, tc.body)
			})
			client := NewReservationClient(newTestClient(t, router, &entities.Session{Token: "tok"}))

			result, err := client.ToggleRSVP(context.Background(), "e1")
			if tc.wantErr != "" {
				if domain.Code(err) != tc.wantErr {
					t.Fatalf("err = %v, want code %s", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToggleRSVP: %v", err)
			}
			if result.Reserved != tc.reserved || result.SeatsRemaining != tc.seats {
				t.Errorf("result = %+v", result)
			}
		})
	}

	t.Run("full event maps 409 to event_full", func(t *testing.T) {
		t.Parallel()
		router := chi.NewRouter()
		router.Post("/api/my-events/attending/{id}/rsvp/toggle", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusConflict, map[string]any{"message": "event is full"})
		})
		client := NewReservationClient(newTestClient(t, router, &entities.Session{Token: "tok"}))

		if _, err := client.ToggleRSVP(context.Background(), "e1"); !errors.Is(err, domain.ErrEventFull) {
			t.Fatalf("err = %v, want event_full", err)
		}
	})

	t.Run("signed out maps 401 to not_authenticated", func(t *testing.T) {
		t.Parallel()
		router := chi.NewRouter()
		router.Post("/api/my-events/attending/{id}/rsvp/toggle", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "no token"})
		})
		client := NewReservationClient(newTestClient(t, router, nil))

		if _, err := client.ToggleRSVP(context.Background(), "e1"); !errors.Is(err, domain.ErrNotAuthenticated) {
			t.Fatalf("err = %v, want not_authenticated", err)
		}
	})
}

func TestSavedSet(t *testing.T) {
	t.Parallel()

	t.Run("unsaving a non-member is a success", func(t *testing.T) {
		t.Parallel()
		router := chi.NewRouter()
		router.Delete("/api/saved-events/{id}", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusNotFound, map[string]any{"message": "not saved"})
		})
		client := NewReservationClient(newTestClient(t, router, &entities.Session{Token: "tok"}))

		if err := client.UnsaveEvent(context.Background(), "e1"); err != nil {
			t.Fatalf("UnsaveEvent: %v", err)
		}
	})

	t.Run("list skips dangling entries", func(t *testing.T) {
		t.Parallel()
		router := chi.NewRouter()
		router.Get("/api/saved-events/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []any{
				map[string]any{"_id": "s1", "eventId": sampleEventJSON("e1", 3, 10)},
				map[string]any{"_id": "s2", "eventId": nil},
			})
		})
		client := NewReservationClient(newTestClient(t, router, &entities.Session{Token: "tok"}))

		entries, err := client.ListSaved(context.Background())
		if err != nil {
			t.Fatalf("ListSaved: %v", err)
		}
		if len(entries) != 1 || entries[0].Event.ID != "e1" {
			t.Errorf("entries = %+v, want only e1", entries)
		}
	})

	t.Run("save failure maps to save_toggle_failed", func(t *testing.T) {
		t.Parallel()
		router := chi.NewRouter()
		router.Post("/api/saved-events/{id}", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "boom"})
		})
		client := NewReservationClient(newTestClient(t, router, &entities.Session{Token: "tok"}))

		if err := client.SaveEvent(context.Background(), "e1"); domain.Code(err) != "save_toggle_failed" {
			t.Fatalf("err = %v, want code save_toggle_failed", err)
		}
	})
}

func TestAuthClient(t *testing.T) {
	t.Parallel()

	t.Run("login decodes the session", func(t *testing.T) {
		t.Parallel()
		router := chi.NewRouter()
		router.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			if body["email"] != "ada@example.com" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"token": "tok123",
				"user":  map[string]any{"_id": "u1", "name": "Ada", "email": "ada@example.com"},
			})
		})
		auth := NewAuthClient(newTestClient(t, router, nil))

		session, err := auth.Login(context.Background(), "ada@example.com", "secret")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if session.Token != "tok123" || session.User.Name != "Ada" {
			t.Errorf("session = %+v", session)
		}
	})

	t.Run("login without a token is malformed", func(t *testing.T) {
		t.Parallel()
		router := chi.NewRouter()
		router.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"user": map[string]any{"_id": "u1"}})
		})
		auth := NewAuthClient(newTestClient(t, router, nil))

		if _, err := auth.Login(context.Background(), "a@b.c", "x"); !errors.Is(err, domain.ErrMalformedResponse) {
			t.Fatalf("err = %v, want malformed_response", err)
		}
	})
}
