package receipt

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
)

var ErrRender = errors.New("receipt: failed to render pdf")

// Renderer формирует PDF квитанцию по бронированию
type Renderer struct {
	issuer string
	now    func() time.Time
}

func NewRenderer(issuer string) *Renderer {
	return &Renderer{issuer: issuer, now: time.Now}
}

// Render возвращает PDF документ; денормализованные данные бронирования обязательны
func (r *Renderer) Render(b *domain.Booking) ([]byte, error) {
	if b == nil || b.Property == nil || b.User == nil {
		return nil, fmt.Errorf("%w: booking details are incomplete", ErrRender)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Booking receipt #%d", b.ID), false)
	pdf.SetCreator(r.issuer, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Receipt no   : RB-%06d", b.ID),
		"Issued at    : " + r.now().UTC().Format("2006-01-02 15:04 MST"),
		"Status       : " + string(b.Status),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Guest")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	guest := (&domain.User{FirstName: b.User.FirstName, LastName: b.User.LastName}).FullName()
	if guest == "" {
		guest = "-"
	}
	pdf.Cell(0, 7, "Name  : "+guest)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Email : "+b.User.Email)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Stay")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.MultiCell(0, 6, fmt.Sprintf("%s, %s", b.Property.Title, b.Property.Location), "", "", false)
	pdf.Cell(0, 7, fmt.Sprintf("Check-in  : %s", b.CheckIn))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Check-out : %s", b.CheckOut))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Nights    : %d x %s", b.Nights(), b.Property.PricePerNight.StringFixed(2)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "Total: "+b.TotalPrice.StringFixed(2))
	pdf.Ln(12)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	return buf.Bytes(), nil
}
