package httpapi

import (
	"net/http"
	"testing"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func createEvent(t *testing.T, s *Server, token string, req EventRequest) EventResponse {
	t.Helper()
	var out EventResponse
	resp := doJSON(t, s, http.MethodPost, "/api/events", token, req, &out)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create event: status %d", resp.StatusCode)
	}
	return out
}

func TestCreateEvent(t *testing.T) {
	s := newTestServer(t)
	userID, token := registerUser(t, s, "alice")

	event := createEvent(t, s, token, EventRequest{
		Title: strPtr("standup"),
		Date:  strPtr("2025-03-10T00:00:00Z"),
	})
	if event.ID == "" || event.UserID != userID {
		t.Errorf("unexpected event: %+v", event)
	}
	if event.Priority != 1 || event.Category != "Uncategorized" {
		t.Errorf("defaults not applied: %+v", event)
	}
}

func TestCreateEvent_BadInput(t *testing.T) {
	s := newTestServer(t)
	_, token := registerUser(t, s, "alice")

	tests := []struct {
		name string
		req  EventRequest
	}{
		{"missing title", EventRequest{Date: strPtr("2025-03-10T00:00:00Z")}},
		{"missing date", EventRequest{Title: strPtr("x")}},
		{"malformed date", EventRequest{Title: strPtr("x"), Date: strPtr("10/03/2025")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, s, http.MethodPost, "/api/events", token, tt.req, nil)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestEventOwnership(t *testing.T) {
	s := newTestServer(t)
	_, aliceToken := registerUser(t, s, "alice")
	_, bobToken := registerUser(t, s, "bob")

	event := createEvent(t, s, aliceToken, EventRequest{
		Title: strPtr("standup"),
		Date:  strPtr("2025-03-10T00:00:00Z"),
	})

	// Bob can see the event exists but cannot touch it.
	resp := doJSON(t, s, http.MethodGet, "/api/events/"+event.ID, bobToken, nil, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("foreign get: status = %d, want 403", resp.StatusCode)
	}
	resp = doJSON(t, s, http.MethodPut, "/api/events/"+event.ID, bobToken, EventRequest{Title: strPtr("mine now")}, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("foreign update: status = %d, want 403", resp.StatusCode)
	}
	resp = doJSON(t, s, http.MethodDelete, "/api/events/"+event.ID, bobToken, nil, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("foreign delete: status = %d, want 403", resp.StatusCode)
	}

	// A missing event is 404 regardless of who asks.
	resp = doJSON(t, s, http.MethodGet, "/api/events/e-404", bobToken, nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing get: status = %d, want 404", resp.StatusCode)
	}

	var got EventResponse
	resp = doJSON(t, s, http.MethodGet, "/api/events/"+event.ID, aliceToken, nil, &got)
	if resp.StatusCode != http.StatusOK || got.Title != "standup" {
		t.Errorf("owner get: status %d, event %+v", resp.StatusCode, got)
	}
}

func TestUpdateEvent(t *testing.T) {
	s := newTestServer(t)
	_, token := registerUser(t, s, "alice")

	event := createEvent(t, s, token, EventRequest{
		Title:    strPtr("standup"),
		Date:     strPtr("2025-03-10T00:00:00Z"),
		Priority: intPtr(2),
		Category: strPtr("Work"),
	})

	var updated EventResponse
	resp := doJSON(t, s, http.MethodPut, "/api/events/"+event.ID, token, EventRequest{Title: strPtr("retro")}, &updated)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if updated.Title != "retro" {
		t.Errorf("title = %q, want retro", updated.Title)
	}
	if updated.Priority != 2 || updated.Category != "Work" {
		t.Errorf("untouched fields changed: %+v", updated)
	}
}

func TestListEvents(t *testing.T) {
	s := newTestServer(t)
	_, aliceToken := registerUser(t, s, "alice")
	_, bobToken := registerUser(t, s, "bob")

	createEvent(t, s, aliceToken, EventRequest{Title: strPtr("early"), Date: strPtr("2025-03-01T00:00:00Z")})
	createEvent(t, s, aliceToken, EventRequest{Title: strPtr("mid"), Date: strPtr("2025-03-15T00:00:00Z")})
	createEvent(t, s, bobToken, EventRequest{Title: strPtr("bobs"), Date: strPtr("2025-03-15T00:00:00Z")})

	var all []EventResponse
	resp := doJSON(t, s, http.MethodGet, "/api/events", aliceToken, nil, &all)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if len(all) != 2 {
		t.Errorf("alice sees %d events, want 2", len(all))
	}

	var window []EventResponse
	resp = doJSON(t, s, http.MethodGet,
		"/api/events?start=2025-03-10T00:00:00Z&end=2025-03-20T00:00:00Z", aliceToken, nil, &window)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if len(window) != 1 || window[0].Title != "mid" {
		t.Errorf("window = %+v, want just mid", window)
	}

	resp = doJSON(t, s, http.MethodGet, "/api/events?start=not-a-date", aliceToken, nil, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad start: status = %d, want 400", resp.StatusCode)
	}
}

func TestDeleteEvent(t *testing.T) {
	s := newTestServer(t)
	_, token := registerUser(t, s, "alice")

	event := createEvent(t, s, token, EventRequest{Title: strPtr("standup"), Date: strPtr("2025-03-10T00:00:00Z")})

	resp := doJSON(t, s, http.MethodDelete, "/api/events/"+event.ID, token, nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	resp = doJSON(t, s, http.MethodGet, "/api/events/"+event.ID, token, nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("get after delete: status = %d, want 404", resp.StatusCode)
	}
}
