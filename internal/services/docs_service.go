package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"tukrent/internal/domain"
	"tukrent/internal/domain/models"
	"tukrent/internal/repositories"
	"tukrent/internal/utils"
)

// DocsService renders the booking voucher and invoice PDFs.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	RequestID   string
	Loader      func(int64) (models.Booking, error)
}

func (s DocsService) load(id int64) (models.Booking, error) {
	if s.Loader != nil {
		return s.Loader(id)
	}
	b, err := s.BookingRepo.GetByID(id)
	if err != nil {
		return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
	}
	return b, nil
}

func (s DocsService) GenerateVoucher(bookingID int64) ([]byte, string, error) {
	b, err := s.load(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_voucher", fmt.Sprintf("booking_id=%d", bookingID))
	return buildVoucherPDF(b)
}

func (s DocsService) GenerateInvoice(bookingID int64) ([]byte, string, error) {
	b, err := s.load(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", fmt.Sprintf("booking_id=%d", bookingID))
	return buildInvoicePDF(b)
}

func buildVoucherPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Voucher", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TUK-TUK BOOKING VOUCHER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking Ref   : %s", safe(b.BookingRef, "-")),
		fmt.Sprintf("Name          : %s", safe(b.Name, "-")),
		fmt.Sprintf("WhatsApp      : %s", safe(b.WhatsApp, "-")),
		fmt.Sprintf("Pickup        : %s, %s %s", safe(b.PickupLocation, "-"), safe(b.PickupDate, "-"), safe(b.PickupTime, "")),
		fmt.Sprintf("Return        : %s, %s %s", safe(b.ReturnLocation, "-"), safe(b.ReturnDate, "-"), safe(b.ReturnTime, "")),
		fmt.Sprintf("Tuk-tuks      : %d", b.TukCount),
		fmt.Sprintf("Licenses      : %d", b.LicenseCount),
		fmt.Sprintf("Assigned Tuks : %s", safe(strings.Join(b.AssignedTuks, ", "), "pending")),
		fmt.Sprintf("Handover By   : %s", safe(b.AssignedPerson, "pending")),
		fmt.Sprintf("Total         : %s", safe(b.RentalPrice, "-")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Note: the refundable deposit included in the total is returned when the tuk-tuk comes back undamaged.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("VOUCHER_%s.pdf", safeFilenamePart(b.BookingRef))
	return buf.Bytes(), filename, nil
}

func buildInvoicePDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	invNo := fmt.Sprintf("INV-%s", safeFilenamePart(b.BookingRef))
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice No : "+invNo)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date       : "+utils.FormatDateTime(time.Now()))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Name  : %s", safe(b.Name, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Email : %s", safe(b.Email, "-")))
	pdf.Ln(10)

	desc := fmt.Sprintf("Tuk-tuk rental %s -> %s (%s to %s), %d vehicle(s)",
		safe(b.PickupLocation, "-"), safe(b.ReturnLocation, "-"),
		safe(b.PickupDate, "-"), safe(b.ReturnDate, "-"), b.TukCount)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(130, 8, "Description")
	pdf.Cell(0, 8, "Amount")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 12)
	pdf.MultiCell(130, 7, desc, "", "", false)
	pdf.SetXY(140, pdf.GetY()-7)
	pdf.Cell(0, 7, safe(b.RentalPrice, "-"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(130, 8, "Total")
	pdf.Cell(0, 8, safe(b.RentalPrice, "-"))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("%s.pdf", invNo)
	return buf.Bytes(), filename, nil
}

func safe(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "booking"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-")
	return replacer.Replace(s)
}
