package entity

type AssetCategory string

const (
	AssetPDF     AssetCategory = "pdf"
	AssetPreview AssetCategory = "preview"
	AssetQR      AssetCategory = "qr"
)

// Folder is the storage prefix assets of this category are written under.
func (c AssetCategory) Folder() string {
	switch c {
	case AssetPDF:
		return "qr_pdfs"
	case AssetPreview:
		return "qr_previews"
	case AssetQR:
		return "qr_codes"
	default:
		return "misc"
	}
}
