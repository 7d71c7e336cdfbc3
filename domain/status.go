package domain

import (
	"fmt"
	"strings"
)

// BookingStatus is the closed set of booking lifecycle states. The empty
// string is a valid state: a freshly submitted booking that no admin has
// touched yet.
type BookingStatus string

const (
	StatusNew            BookingStatus = ""
	StatusAssigned       BookingStatus = "assigned"
	StatusOnboard        BookingStatus = "onboard"
	StatusFinished       BookingStatus = "finished"
	StatusPendingPayment BookingStatus = "PENDING_PAYMENT"
	StatusPaid           BookingStatus = "PAID"
)

// transitions is the only allowed forward movement; anything not listed is
// rejected, so a status can never regress.
var transitions = map[BookingStatus][]BookingStatus{
	StatusNew:            {StatusAssigned, StatusPendingPayment},
	StatusAssigned:       {StatusOnboard},
	StatusOnboard:        {StatusFinished},
	StatusPendingPayment: {StatusPaid},
	StatusFinished:       {},
	StatusPaid:           {},
}

// ParseStatus validates a raw status value read from storage or a request.
func ParseStatus(raw string) (BookingStatus, error) {
	s := BookingStatus(strings.TrimSpace(raw))
	if _, ok := transitions[s]; !ok {
		return StatusNew, fmt.Errorf("unknown booking status %q", raw)
	}
	return s, nil
}

// CanTransition reports whether moving from -> to is allowed.
func CanTransition(from, to BookingStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateAssignment checks the precondition for the New -> assigned move:
// one non-empty vehicle per requested tuk and a handover agent.
func ValidateAssignment(assignedTuks []string, tukCount int, assignedPerson string) error {
	if strings.TrimSpace(assignedPerson) == "" {
		return fmt.Errorf("assigned person is required")
	}
	if len(assignedTuks) != tukCount {
		return fmt.Errorf("expected %d assigned tuks, got %d", tukCount, len(assignedTuks))
	}
	for i, tuk := range assignedTuks {
		if strings.TrimSpace(tuk) == "" {
			return fmt.Errorf("assigned tuk %d is empty", i+1)
		}
	}
	return nil
}
