package dto

import "encoding/base64"

type Metadata struct {
	Title           string
	Subtitle        string
	Description     string
	BackgroundColor string
}

type GenerateInput struct {
	PDF      []byte
	Preview  []byte
	Metadata Metadata
	// BaseURL is the scheme and host the view URL is built on, e.g. "http://host".
	BaseURL string
}

type GeneratedLandingPage struct {
	ID                  string
	ViewURL             string
	QRImage             []byte
	QRDownloadReference string
}

// QRDataURL returns the QR image as a data URL an <img> tag can display.
func (g *GeneratedLandingPage) QRDataURL() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(g.QRImage)
}

type LandingPageGeneratedEvent struct {
	ID          string `json:"id"`
	ViewURL     string `json:"view_url"`
	QRReference string `json:"qr_reference"`
	CreatedAt   string `json:"created_at"`
}
