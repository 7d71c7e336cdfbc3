package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	intconfig "tukrent/internal/config"
)

func newQuoteContext(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	prev := intconfig.DB
	intconfig.DB = db
	t.Cleanup(func() {
		intconfig.DB = prev
		db.Close()
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/quote", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w, mock
}

func TestPublicQuoteRejectsUnknownPickupLocation(t *testing.T) {
	body := `{"pickupLocation":"Nowhereville","pickupDate":"2026-03-10","returnDate":"2026-03-14","tukCount":1}`
	c, w, mock := newQuoteContext(t, body)

	mock.ExpectQuery("SELECT(.+)FROM locations").WithArgs("Nowhereville").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "status"}))

	PublicQuote(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "unknown_location") {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestPublicQuotePricesKnownLocation(t *testing.T) {
	body := `{"pickupLocation":"Colombo Fort","pickupDate":"2026-03-10","returnDate":"2026-03-14","tukCount":1}`
	c, w, mock := newQuoteContext(t, body)

	mock.ExpectQuery("SELECT(.+)FROM locations").WithArgs("Colombo Fort").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "status"}).
			AddRow(1, "Colombo Fort", 5.0, "active"))
	mock.ExpectQuery("SELECT(.+)FROM master_prices").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}))

	PublicQuote(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	// 5 ladder days at 16 plus the 5.00 pickup surcharge
	if !strings.Contains(w.Body.String(), `"total":"85.00"`) {
		t.Fatalf("body = %s", w.Body.String())
	}
}
