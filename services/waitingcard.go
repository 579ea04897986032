package services

import (
	"context"
	"fmt"
	"strings"

	"id_console_app_go/models"

	"github.com/microcosm-cc/bluemonday"
)

// The acknowledgement card reproduces the statutory waiting-card form: a
// landscape A4 page with a fixed coordinate layout. Correctness here means
// "every field lands at its designated position", so the layout is a
// declarative table of positioned elements rather than imperative draw calls.

// CardElement is a single positioned text run. X and Y are millimetres from
// the top-left corner of the landscape page.
type CardElement struct {
	Text   string
	X, Y   float64
	Size   float64 // point size
	Bold   bool
	Italic bool
	Align  string // "left", "center" or "right"
}

// CardBox is a positioned rectangle outline, in millimetres.
type CardBox struct {
	X, Y, W, H float64
}

const (
	cardLeftX  = 30.0
	cardRightX = 160.0
)

// cardPolicy strips any markup from field values before they are placed into
// the rendered page.
var cardPolicy = bluemonday.StrictPolicy()

// WaitingCardLayout returns the full element and box layout for a card.
// Field values are placed as-is; empty values leave their slot blank.
func WaitingCardLayout(data models.WaitingCardData) ([]CardElement, []CardBox) {
	elements := []CardElement{
		// Serial header, top right
		{Text: data.ApplicationNumber, X: 280, Y: 15, Size: 16, Bold: true, Align: "right"},
		{Text: "SERIAL NO.", X: 280, Y: 20, Size: 10, Align: "right"},

		// Bilingual legal header, centered
		{Text: "REPUBLIC OF KENYA", X: 148, Y: 35, Size: 18, Bold: true, Align: "center"},
		{Text: "THE REGISTRATION OF PERSONS ACT (CAP. 107)", X: 148, Y: 45, Size: 12, Align: "center"},
		{Text: "APPLICATION FOR REGISTRATION ACKNOWLEDGEMENT", X: 148, Y: 55, Size: 14, Bold: true, Align: "center"},

		// Left column: personal details
		{Text: "1. Misc. Receipt No.", X: cardLeftX, Y: 85, Size: 11, Bold: true},
		{Text: data.ApplicationNumber, X: cardLeftX + 5, Y: 93, Size: 11},
		{Text: "2. Office of Issue", X: cardLeftX, Y: 100, Size: 11, Bold: true},
		{Text: data.District, X: cardLeftX + 5, Y: 108, Size: 11},
		{Text: "3. Full names", X: cardLeftX, Y: 115, Size: 11, Bold: true},
		{Text: data.FullName, X: cardLeftX + 5, Y: 123, Size: 11},
		{Text: "4. Home district", X: cardLeftX, Y: 130, Size: 11, Bold: true},
		{Text: data.District, X: cardLeftX + 5, Y: 138, Size: 11},

		// Right column: application details and signatures
		{Text: "5. Type of Application", X: cardRightX, Y: 85, Size: 11, Bold: true},
		{Text: data.ApplicationType, X: cardRightX + 5, Y: 93, Size: 11},
		{Text: "6. Address", X: cardRightX, Y: 100, Size: 11, Bold: true},
		{Text: "________________________", X: cardRightX + 5, Y: 108, Size: 11},
		{Text: "Signature", X: cardRightX, Y: 115, Size: 11, Bold: true},
		{Text: "Date", X: cardRightX + 60, Y: 115, Size: 11, Bold: true},
		{Text: "_________________", X: cardRightX, Y: 123, Size: 11},
		{Text: data.Date, X: cardRightX + 60, Y: 123, Size: 11},
		{Text: "This acknowledgement is not an", X: cardRightX, Y: 138, Size: 9, Italic: true},
		{Text: "identity card", X: cardRightX, Y: 143, Size: 9, Italic: true},

		// Officer details at the bottom
		{Text: "7. Name of Registration Officer", X: cardLeftX, Y: 175, Size: 11, Bold: true},
		{Text: data.OfficerName, X: cardLeftX + 5, Y: 185, Size: 11},
		{Text: "Thumbprint", X: cardRightX + 80, Y: 175, Size: 11, Bold: true},
	}

	boxes := []CardBox{
		{X: 20, Y: 70, W: 256, H: 130},             // main border
		{X: cardRightX + 80, Y: 180, W: 30, H: 20}, // thumbprint box
	}

	return elements, boxes
}

// WaitingCardHTML renders the layout as absolutely positioned HTML suitable
// for printing to a landscape A4 page.
func WaitingCardHTML(data models.WaitingCardData) string {
	elements, boxes := WaitingCardLayout(data)

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  * { margin: 0; padding: 0; }
  body { font-family: Helvetica, Arial, sans-serif; }
  .page { position: relative; width: 297mm; height: 210mm; overflow: hidden; }
  .el { position: absolute; white-space: nowrap; }
  .box { position: absolute; border: 1px solid #000; }
</style>
</head>
<body>
<div class="page">
`)

	for _, el := range elements {
		style := fmt.Sprintf("left: %.1fmm; top: %.1fmm; font-size: %.0fpt;", el.X, el.Y, el.Size)
		if el.Bold {
			style += " font-weight: bold;"
		}
		if el.Italic {
			style += " font-style: italic;"
		}
		switch el.Align {
		case "center":
			style += " transform: translateX(-50%);"
		case "right":
			style += " transform: translateX(-100%);"
		}
		b.WriteString(`<div class="el" style="`)
		b.WriteString(style)
		b.WriteString(`">`)
		b.WriteString(cardPolicy.Sanitize(el.Text))
		b.WriteString("</div>\n")
	}

	for _, box := range boxes {
		b.WriteString(fmt.Sprintf(`<div class="box" style="left: %.1fmm; top: %.1fmm; width: %.1fmm; height: %.1fmm;"></div>`,
			box.X, box.Y, box.W, box.H))
		b.WriteString("\n")
	}

	b.WriteString("</div>\n</body>\n</html>\n")
	return b.String()
}

// WaitingCardFilename returns the deterministic download name for a card.
func WaitingCardFilename(data models.WaitingCardData) string {
	return "application-" + data.ApplicationNumber + ".pdf"
}

// GenerateWaitingCard lays out the card and prints it to PDF. The returned
// filename follows the application-<number>.pdf pattern regardless of field
// content.
func GenerateWaitingCard(ctx context.Context, data models.WaitingCardData) (string, []byte, error) {
	html := WaitingCardHTML(data)
	pdf, err := GeneratePDF(ctx, html, CardPDFOptions())
	if err != nil {
		return "", nil, fmt.Errorf("failed to render waiting card: %w", err)
	}
	return WaitingCardFilename(data), pdf, nil
}
