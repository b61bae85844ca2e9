package entity

import "time"

// LandingPage is the metadata and asset references behind one /view/:id page.
// QRImageReference stays nil until the QR code has been generated and stored.
type LandingPage struct {
	ID string `json:"id"`

	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	Description     string `json:"description"`
	BackgroundColor string `json:"bgColor"`

	PDFReference          string  `json:"pdfUrl"`
	PreviewImageReference string  `json:"previewImage"`
	QRImageReference      *string `json:"qrCodeUrl,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LandingPageFields are the values written when a record is created.
type LandingPageFields struct {
	Title           string
	Subtitle        string
	Description     string
	BackgroundColor string

	PDFReference          string
	PreviewImageReference string
}

func (p *LandingPage) HasQRCode() bool {
	return p.QRImageReference != nil && *p.QRImageReference != ""
}
