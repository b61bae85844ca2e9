package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Sa-pphire/qr-code-gen/internal/controller/controllertest"
	"github.com/Sa-pphire/qr-code-gen/internal/controller/restapi/v1/response"
	"github.com/Sa-pphire/qr-code-gen/internal/dto"
	"github.com/Sa-pphire/qr-code-gen/internal/entity"
	"github.com/Sa-pphire/qr-code-gen/pkg/logger"
	"github.com/Sa-pphire/qr-code-gen/pkg/types/errs"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type landingUseCaseStub struct {
	input dto.GenerateInput

	generated   *dto.GeneratedLandingPage
	generateErr error
	page        *entity.LandingPage
	viewErr     error
}

func (s *landingUseCaseStub) Generate(_ context.Context, input dto.GenerateInput) (*dto.GeneratedLandingPage, error) {
	s.input = input
	return s.generated, s.generateErr
}

func (s *landingUseCaseStub) View(context.Context, string) (*entity.LandingPage, error) {
	return s.page, s.viewErr
}

func newTestApp(lp *landingUseCaseStub) *fiber.App {
	app := fiber.New()
	NewLandingPageRoutes(app.Group("/v1"), lp, "http://host", logger.New("disabled"))

	return app
}

func TestCreateLandingPage(t *testing.T) {
	lp := &landingUseCaseStub{
		generated: &dto.GeneratedLandingPage{
			ID:                  "X",
			ViewURL:             "http://host/view/X",
			QRImage:             []byte("png"),
			QRDownloadReference: "/uploads/qr_codes/x.png",
		},
	}
	app := newTestApp(lp)

	req, err := controllertest.GenerateRequest("/v1/landing-pages", []byte("P"), []byte("I"), map[string]string{"title": "A"})
	require.NoError(t, err)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body response.GeneratedLandingPage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "X", body.ID)
	assert.Equal(t, "http://host/view/X", body.ViewURL)
	assert.Equal(t, "data:image/png;base64,cG5n", body.QRImage)
	assert.Equal(t, "/uploads/qr_codes/x.png", body.QRDownloadURL)
	assert.Equal(t, "A", lp.input.Metadata.Title)
	assert.Equal(t, "http://host", lp.input.BaseURL)
}

func TestCreateLandingPage_Errors(t *testing.T) {
	t.Run("missing preview", func(t *testing.T) {
		app := newTestApp(&landingUseCaseStub{})

		req, err := controllertest.GenerateRequest("/v1/landing-pages", []byte("P"), nil, nil)
		require.NoError(t, err)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("generation", func(t *testing.T) {
		app := newTestApp(&landingUseCaseStub{
			generateErr: &errs.GenerationError{ID: "X", Err: errs.ErrEncodingFailure},
		})

		req, err := controllertest.GenerateRequest("/v1/landing-pages", []byte("P"), []byte("I"), nil)
		require.NoError(t, err)

		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var body response.Error
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Contains(t, body.Error, "X")
	})
}

func TestGetLandingPage(t *testing.T) {
	qrRef := "/uploads/qr_codes/x.png"
	lp := &landingUseCaseStub{
		page: &entity.LandingPage{
			ID:                    "X",
			Title:                 "A",
			Subtitle:              "B",
			Description:           "C",
			BackgroundColor:       "#fff",
			PDFReference:          "/uploads/qr_pdfs/x.pdf",
			PreviewImageReference: "/uploads/qr_previews/x.png",
			QRImageReference:      &qrRef,
			CreatedAt:             time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		},
	}
	app := newTestApp(lp)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/v1/landing-pages/X", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body response.LandingPage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "A", body.Title)
	assert.Equal(t, "B", body.Subtitle)
	assert.Equal(t, "C", body.Description)
	assert.Equal(t, "#fff", body.BgColor)
	assert.Equal(t, "/uploads/qr_pdfs/x.pdf", body.PDFURL)
	assert.Equal(t, "/uploads/qr_previews/x.png", body.PreviewImage)
	require.NotNil(t, body.QRCodeURL)
	assert.Equal(t, qrRef, *body.QRCodeURL)
	assert.Equal(t, "2024-01-02T03:04:05Z", body.CreatedAt)
}

func TestGetLandingPage_NotFound(t *testing.T) {
	app := newTestApp(&landingUseCaseStub{viewErr: errs.ErrRecordNotFound})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/v1/landing-pages/nonexistent", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
