package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"resume-builder/internal/delivery/http/middleware"
	"resume-builder/internal/export"
	"resume-builder/internal/render"
	ucexport "resume-builder/internal/usecase/exporting"
)

// ExportHandler serves the read-only projections of a stored resume:
// the live HTML preview, the plain-text download, and the PDF download.
type ExportHandler struct {
	uc *ucexport.Service
}

func NewExportHandler(uc *ucexport.Service) *ExportHandler {
	return &ExportHandler{uc: uc}
}

func (h *ExportHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/:id/preview", h.Preview)
	r.Get("/:id/export/text", h.ExportText)
	r.Get("/:id/export/pdf", h.ExportPDF)
}

// Preview renders the resume as standalone HTML under the requested
// template and zoom. Both parameters are optional.
func (h *ExportHandler) Preview(c fiber.Ctx) error {
	userID, id, appErr := ownerAndResumeID(c)
	if appErr != nil {
		return appErr
	}

	template, appErr := templateFromQuery(c)
	if appErr != nil {
		return appErr
	}

	p := render.NewPreview(template)
	if raw := c.Query("zoom"); raw != "" {
		z, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid zoom value", nil, err)
		}
		p.Zoom = render.ClampZoom(z)
	}

	html, err := h.uc.PreviewHTML(c.Context(), userID, id, p)
	if err != nil {
		return mapResumesUsecaseError(err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

func (h *ExportHandler) ExportText(c fiber.Ctx) error {
	userID, id, appErr := ownerAndResumeID(c)
	if appErr != nil {
		return appErr
	}

	file, err := h.uc.Text(c.Context(), userID, id)
	if err != nil {
		return mapResumesUsecaseError(err)
	}

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.Filename+`"`)
	return c.Send(file.Content)
}

func (h *ExportHandler) ExportPDF(c fiber.Ctx) error {
	userID, id, appErr := ownerAndResumeID(c)
	if appErr != nil {
		return appErr
	}

	template, appErr := templateFromQuery(c)
	if appErr != nil {
		return appErr
	}

	pdf, err := h.uc.PDF(c.Context(), userID, id, template)
	if err != nil {
		if errors.Is(err, ucexport.ErrUnavailable) {
			return middleware.NewAppError(fiber.StatusServiceUnavailable, "PDF export is unavailable right now", nil, err)
		}
		return mapResumesUsecaseError(err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.PDFFilename+`"`)
	return c.Send(pdf)
}

func templateFromQuery(c fiber.Ctx) (render.TemplateID, error) {
	raw := c.Query("template")
	if raw == "" {
		return render.TemplateProfessional, nil
	}
	template, err := render.ParseTemplateID(raw)
	if err != nil {
		return "", middleware.NewAppError(fiber.StatusBadRequest, "Unknown template", nil, err)
	}
	return template, nil
}
