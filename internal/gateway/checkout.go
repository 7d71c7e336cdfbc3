package gateway

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"strings"
)

// Checkout builds redirect payloads for the hosted third-party payment page.
// The receiving gateway validates the payload strictly: the order id and
// amount are pipe-joined, RSA PKCS#1 v1.5 encrypted with the merchant public
// key and base64 encoded, and custom fields travel as one base64 pipe-joined
// string. Do not change the field names or the encoding.
type Checkout struct {
	merchantID string
	publicKey  *rsa.PublicKey
	returnURL  string
	cancelURL  string
}

// Payload is the form the caller redirects the customer with.
type Payload struct {
	MerchantID   string `json:"merchant_id"`
	Payment      string `json:"payment"`
	CustomFields string `json:"custom_fields"`
	ReturnURL    string `json:"return_url"`
	CancelURL    string `json:"cancel_url"`
}

func New(merchantID, publicKeyPEM, returnURL, cancelURL string) (*Checkout, error) {
	if strings.TrimSpace(merchantID) == "" {
		return nil, fmt.Errorf("gateway: merchant id is required")
	}
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, fmt.Errorf("gateway: public key is not valid PEM")
	}

	var pub *rsa.PublicKey
	if key, err := x509.ParsePKIXPublicKey(block.Bytes); err == nil {
		rsaKey, ok := key.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("gateway: public key is not RSA")
		}
		pub = rsaKey
	} else if key, err := x509.ParsePKCS1PublicKey(block.Bytes); err == nil {
		pub = key
	} else {
		return nil, fmt.Errorf("gateway: cannot parse public key: %w", err)
	}

	return &Checkout{
		merchantID: merchantID,
		publicKey:  pub,
		returnURL:  returnURL,
		cancelURL:  cancelURL,
	}, nil
}

// Build encrypts "orderID|amount" and assembles the redirect payload.
func (c *Checkout) Build(orderID string, amount float64, customFields ...string) (Payload, error) {
	if strings.TrimSpace(orderID) == "" {
		return Payload{}, fmt.Errorf("gateway: order id is required")
	}
	if amount <= 0 {
		return Payload{}, fmt.Errorf("gateway: amount must be positive")
	}

	plain := fmt.Sprintf("%s|%.2f", orderID, amount)
	cipher, err := rsa.EncryptPKCS1v15(rand.Reader, c.publicKey, []byte(plain))
	if err != nil {
		return Payload{}, fmt.Errorf("gateway: encrypt payment: %w", err)
	}

	return Payload{
		MerchantID:   c.merchantID,
		Payment:      base64.StdEncoding.EncodeToString(cipher),
		CustomFields: base64.StdEncoding.EncodeToString([]byte(strings.Join(customFields, "|"))),
		ReturnURL:    c.returnURL,
		CancelURL:    c.cancelURL,
	}, nil
}
