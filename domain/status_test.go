package domain

import "testing"

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"", "assigned", "onboard", "finished", "PENDING_PAYMENT", "PAID"} {
		if _, err := ParseStatus(raw); err != nil {
			t.Fatalf("ParseStatus(%q) error: %v", raw, err)
		}
	}
	if _, err := ParseStatus("cancelled"); err == nil {
		t.Fatalf("ParseStatus accepted unknown status")
	}
}

func TestTransitionsForwardOnly(t *testing.T) {
	allowed := []struct{ from, to BookingStatus }{
		{StatusNew, StatusAssigned},
		{StatusNew, StatusPendingPayment},
		{StatusAssigned, StatusOnboard},
		{StatusOnboard, StatusFinished},
		{StatusPendingPayment, StatusPaid},
	}
	for _, tr := range allowed {
		if !CanTransition(tr.from, tr.to) {
			t.Fatalf("transition %q -> %q should be allowed", tr.from, tr.to)
		}
	}

	all := []BookingStatus{StatusNew, StatusAssigned, StatusOnboard, StatusFinished, StatusPendingPayment, StatusPaid}
	order := map[BookingStatus]int{
		StatusNew: 0, StatusAssigned: 1, StatusOnboard: 2, StatusFinished: 3,
		StatusPendingPayment: 1, StatusPaid: 2,
	}
	for _, from := range all {
		for _, to := range all {
			if CanTransition(from, to) && order[to] <= order[from] {
				t.Fatalf("backward transition %q -> %q permitted", from, to)
			}
		}
	}

	// Terminal states stay terminal.
	for _, from := range []BookingStatus{StatusFinished, StatusPaid} {
		for _, to := range all {
			if CanTransition(from, to) {
				t.Fatalf("terminal status %q can still move to %q", from, to)
			}
		}
	}
}

func TestValidateAssignment(t *testing.T) {
	if err := ValidateAssignment([]string{"TK-01", "TK-07"}, 2, "Nuwan"); err != nil {
		t.Fatalf("valid assignment rejected: %v", err)
	}
	if err := ValidateAssignment([]string{"TK-01"}, 2, "Nuwan"); err == nil {
		t.Fatalf("short tuk list accepted")
	}
	if err := ValidateAssignment([]string{"TK-01", "  "}, 2, "Nuwan"); err == nil {
		t.Fatalf("blank tuk entry accepted")
	}
	if err := ValidateAssignment([]string{"TK-01", "TK-07"}, 2, ""); err == nil {
		t.Fatalf("missing person accepted")
	}
}
