package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/Sa-pphire/qr-code-gen/internal/controller/restapi/v1/response"
	"github.com/Sa-pphire/qr-code-gen/internal/controller/upload"
	"github.com/Sa-pphire/qr-code-gen/pkg/types/errs"
	"github.com/gofiber/fiber/v2"
)

// @Summary  	Create landing page
// @Description Stores the PDF and preview image, saves the landing page record and generates its QR code
// @Tags 		landing-pages
// @Accept 		mpfd
// @Produce 	json
// @Param 		pdf 		formData file   true  "PDF document"
// @Param 		preview 	formData file   true  "Preview image"
// @Param 		title 		formData string false "Title"
// @Param 		subtitle 	formData string false "Subtitle"
// @Param 		description formData string false "Description"
// @Param 		bgColor 	formData string false "Background color"
// @Success 	201 {object} response.GeneratedLandingPage
// @Failure 	400 {object} response.Error "Missing or invalid file"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/landing-pages [post]
func (r *V1) createLandingPage(ctx *fiber.Ctx) error {
	input, err := upload.ParseGenerateForm(ctx, r.baseURL)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "pdf and preview files are required")
	}

	out, err := r.lp.Generate(ctx.UserContext(), input)
	if err != nil {
		r.logger.Error(err, "restapi - v1 - createLandingPage")

		var genErr *errs.GenerationError
		if errors.As(err, &genErr) {
			return errorResponse(ctx, http.StatusInternalServerError, "qr code generation failed for "+genErr.ID)
		}

		return errorResponse(ctx, http.StatusInternalServerError, "storage problems")
	}

	return ctx.Status(http.StatusCreated).JSON(response.GeneratedLandingPage{
		ID:            out.ID,
		ViewURL:       out.ViewURL,
		QRImage:       out.QRDataURL(),
		QRDownloadURL: out.QRDownloadReference,
	})
}

// @Summary 	Get landing page
// @Description Returns the stored landing page record
// @Tags 		landing-pages
// @Produce 	json
// @Param 		id path string true "Landing page ID"
// @Success 	200 {object} response.LandingPage
// @Failure 	404 {object} response.Error "Landing page not found"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/landing-pages/{id} [get]
func (r *V1) getLandingPage(ctx *fiber.Ctx) error {
	page, err := r.lp.View(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "landing page not found")
		}
		r.logger.Error(err, "restapi - v1 - getLandingPage")

		return errorResponse(ctx, http.StatusInternalServerError, "storage problems")
	}

	return ctx.Status(http.StatusOK).JSON(response.LandingPage{
		ID:           page.ID,
		Title:        page.Title,
		Subtitle:     page.Subtitle,
		Description:  page.Description,
		BgColor:      page.BackgroundColor,
		PDFURL:       page.PDFReference,
		PreviewImage: page.PreviewImageReference,
		QRCodeURL:    page.QRImageReference,
		CreatedAt:    page.CreatedAt.Format(time.RFC3339),
	})
}
