package response

type GeneratedLandingPage struct {
	ID            string `json:"id"`
	ViewURL       string `json:"view_url"`
	QRImage       string `json:"qr_image"`
	QRDownloadURL string `json:"qr_download_url"`
}

type LandingPage struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Subtitle     string  `json:"subtitle"`
	Description  string  `json:"description"`
	BgColor      string  `json:"bgColor"`
	PDFURL       string  `json:"pdfUrl"`
	PreviewImage string  `json:"previewImage"`
	QRCodeURL    *string `json:"qrCodeUrl,omitempty"`
	CreatedAt    string  `json:"created_at"`
}
