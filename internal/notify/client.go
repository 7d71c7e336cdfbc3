package notify

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"tukrent/internal/domain/models"
)

// AssignmentPayload is pushed to the operations endpoint when vehicles and an
// agent are assigned to a booking.
type AssignmentPayload struct {
	BookingRef          string   `json:"bookingId"`
	Name                string   `json:"name"`
	WhatsApp            string   `json:"whatsapp"`
	PickupLocation      string   `json:"pickupLocation"`
	PickupDate          string   `json:"pickupDate"`
	PickupTime          string   `json:"pickupTime"`
	ReturnLocation      string   `json:"returnLocation"`
	ReturnDate          string   `json:"returnDate"`
	ReturnTime          string   `json:"returnTime"`
	AssignedTuks        []string `json:"assignedTuks"`
	AssignedPerson      string   `json:"assignedPerson"`
	HoldbackPerson      string   `json:"holdBackAssignedPerson,omitempty"`
	TrainTransferPerson string   `json:"trainTransferAssignedPerson,omitempty"`
	RentalPrice         string   `json:"rentalPrice"`
}

// Notifier is the outbound side-effect surface of the booking lifecycle.
// Implementations must be safe to call after a committed write; failures are
// the caller's to log, never to roll back.
type Notifier interface {
	SendAssignment(p AssignmentPayload) error
	SendCompletion(b models.Booking) error
	SendWhatsApp(number, message string) error
}

// Client posts JSON to the notification endpoints under a shared base URL.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
	}
}

func (c *Client) SendAssignment(p AssignmentPayload) error {
	return c.post("/notifications/assignment", p)
}

func (c *Client) SendCompletion(b models.Booking) error {
	return c.post("/notifications/completion", b)
}

func (c *Client) SendWhatsApp(number, message string) error {
	return c.post("/whatsapp/send", map[string]string{
		"number":  number,
		"message": message,
	})
}

func (c *Client) post(path string, payload any) error {
	if c.baseURL == "" {
		return errors.New("notify: base URL not configured")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return errors.New("notify: endpoint returned " + resp.Status)
	}
	return nil
}
