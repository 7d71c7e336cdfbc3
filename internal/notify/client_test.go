package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tukrent/internal/domain/models"
)

func TestClientPostsAssignment(t *testing.T) {
	var gotPath string
	var gotPayload AssignmentPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	p := AssignmentPayload{
		BookingRef:     "TR-1001",
		Name:           "Asha",
		AssignedTuks:   []string{"TK-01", "TK-05"},
		AssignedPerson: "Nuwan",
		RentalPrice:    "295.00",
	}
	if err := c.SendAssignment(p); err != nil {
		t.Fatalf("SendAssignment error: %v", err)
	}
	if gotPath != "/notifications/assignment" {
		t.Fatalf("posted to %q", gotPath)
	}
	if gotPayload.BookingRef != p.BookingRef || len(gotPayload.AssignedTuks) != 2 {
		t.Fatalf("payload mismatch: %+v", gotPayload)
	}
}

func TestClientNonOKStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if err := c.SendCompletion(models.Booking{BookingRef: "TR-1"}); err == nil {
		t.Fatalf("expected error on 502")
	}
}

func TestClientWithoutBaseURL(t *testing.T) {
	c := NewClient("")
	if err := c.SendWhatsApp("+94770000000", "payment link"); err == nil {
		t.Fatalf("expected error when base URL missing")
	}
}
