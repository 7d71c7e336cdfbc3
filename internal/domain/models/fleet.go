package models

import "time"

// TukTuk is one rentable vehicle. Deletion is hard; there is no soft-delete.
type TukTuk struct {
	ID              int64    `json:"id"`
	Owner           string   `json:"owner"`
	VehicleNumber   string   `json:"vehicleNumber"`
	AssignedUsers   []string `json:"assignedUsers"`
	District        string   `json:"district"`
	Province        string   `json:"province"`
	ManufactureYear int      `json:"manufactureYear"`
	InsuranceExpiry string   `json:"insuranceExpiry"` // YYYY-MM-DD
	LicenseExpiry   string   `json:"licenseExpiry"`
	Active          bool     `json:"active"`
}

// Location is a pickup/return point with its surcharge.
type Location struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Status string  `json:"status"` // active / inactive
}

// Person is an agent or trainer selectable for handover, return and
// train-transfer assignment.
type Person struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	District string `json:"district"`
	Province string `json:"province"`
	IsActive bool   `json:"isActive"`
}

// TrainTransferRoute is a priced station-transfer offering.
type TrainTransferRoute struct {
	ID         int64   `json:"id"`
	From       string  `json:"from"`
	To         string  `json:"to"`
	PickupTime string  `json:"pickupTime"`
	DownTime   string  `json:"downTime"`
	Price      float64 `json:"price"`
	Status     bool    `json:"status"`
}

// VehicleStatus is the per-category bookability switch.
type VehicleStatus struct {
	Category        string     `json:"category"`
	IsActive        bool       `json:"isActive"`
	DeactivateUntil *time.Time `json:"deactivateUntil,omitempty"`
	BasePrice       *float64   `json:"basePrice,omitempty"`
}

// Bookable reports whether the category accepts new bookings at the given
// moment: active, and any temporary deactivation window has passed.
func (v VehicleStatus) Bookable(now time.Time) bool {
	if !v.IsActive {
		return false
	}
	if v.DeactivateUntil != nil && now.Before(*v.DeactivateUntil) {
		return false
	}
	return true
}
