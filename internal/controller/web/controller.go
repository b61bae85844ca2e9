package web

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/Sa-pphire/qr-code-gen/internal/controller/upload"
	"github.com/Sa-pphire/qr-code-gen/internal/usecase"
	"github.com/Sa-pphire/qr-code-gen/pkg/logger"
	"github.com/Sa-pphire/qr-code-gen/pkg/types/errs"
	"github.com/gofiber/fiber/v2"
)

const (
	msgUploadFailed   = "File upload failed."
	msgGenerateFailed = "Error processing the request."
	msgPageNotFound   = "Page not found."
	msgPageLoadFailed = "Error loading the page."
)

type Web struct {
	lp      usecase.LandingPageUseCase
	baseURL string
	logger  logger.Interface
}

func NewRoutes(app fiber.Router, lp usecase.LandingPageUseCase, baseURL string, l logger.Interface) {
	r := &Web{lp: lp, baseURL: baseURL, logger: l}

	{
		app.Get("/", r.showForm)
		app.Post("/generate", r.generate)
		app.Get("/view/:id", r.viewLandingPage)
	}
}

func (r *Web) showForm(ctx *fiber.Ctx) error {
	return ctx.Render("index", fiber.Map{"QRImage": nil})
}

func (r *Web) generate(ctx *fiber.Ctx) error {
	input, err := upload.ParseGenerateForm(ctx, r.baseURL)
	if err != nil {
		r.logger.Error(err, "web - generate - upload.ParseGenerateForm")

		return ctx.Status(http.StatusInternalServerError).SendString(msgUploadFailed)
	}

	out, err := r.lp.Generate(ctx.UserContext(), input)
	if err != nil {
		r.logger.Error(err, "web - generate - r.lp.Generate")

		var genErr *errs.GenerationError
		if !errors.As(err, &genErr) &&
			(errors.Is(err, errs.ErrUploadFailure) || errors.Is(err, errs.ErrStorageFailure)) {
			return ctx.Status(http.StatusInternalServerError).SendString(msgUploadFailed)
		}

		return ctx.Status(http.StatusInternalServerError).SendString(msgGenerateFailed)
	}

	return ctx.Render("index", fiber.Map{
		// html/template rejects data: URLs in src unless typed as template.URL
		"QRImage":    template.URL(out.QRDataURL()),
		"QRDownload": out.QRDownloadReference,
		"ViewURL":    out.ViewURL,
	})
}

func (r *Web) viewLandingPage(ctx *fiber.Ctx) error {
	page, err := r.lp.View(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return ctx.Status(http.StatusNotFound).SendString(msgPageNotFound)
		}
		r.logger.Error(err, "web - viewLandingPage - r.lp.View")

		return ctx.Status(http.StatusInternalServerError).SendString(msgPageLoadFailed)
	}

	return ctx.Render("landing", fiber.Map{
		"Title":        page.Title,
		"Subtitle":     page.Subtitle,
		"Description":  page.Description,
		"BgColor":      page.BackgroundColor,
		"PDFURL":       page.PDFReference,
		"PreviewImage": page.PreviewImageReference,
	})
}
