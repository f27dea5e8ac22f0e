// Package exporting drives the three export paths over a stored
// resume: the plain-text projection (what clipboard copy and the .txt
// download consume) and the PDF conversion. Exports never mutate the
// resume and always render at zoom 1.
package exporting

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"resume-builder/internal/export"
	"resume-builder/internal/render"
	"resume-builder/internal/usecase/resumes"
)

var ErrUnavailable = errors.New("export target unavailable")

type Service struct {
	resumes *resumes.Service
	pdf     *export.PDFConverter
}

func NewService(res *resumes.Service, pdf *export.PDFConverter) *Service {
	return &Service{resumes: res, pdf: pdf}
}

// Text exports the rendered container as a downloadable text file. The
// template does not change the text content, so exports use the
// default style.
func (s *Service) Text(ctx context.Context, ownerID, id uuid.UUID) (export.TextFile, error) {
	r, err := s.resumes.Get(ctx, ownerID, id)
	if err != nil {
		return export.TextFile{}, err
	}
	doc := render.Render(r, render.TemplateProfessional)
	return export.PlainText(doc, r.FullName), nil
}

// PDF converts the rendered container under the requested template.
func (s *Service) PDF(ctx context.Context, ownerID, id uuid.UUID, template render.TemplateID) ([]byte, error) {
	r, err := s.resumes.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	doc := render.Render(r, template)

	pdf, err := s.pdf.Convert(ctx, doc)
	if err != nil {
		return nil, errors.Join(ErrUnavailable, err)
	}
	return pdf, nil
}

// PreviewHTML renders the live preview under the caller's template and
// zoom without touching export state.
func (s *Service) PreviewHTML(ctx context.Context, ownerID, id uuid.UUID, p render.Preview) (string, error) {
	r, err := s.resumes.Get(ctx, ownerID, id)
	if err != nil {
		return "", err
	}
	return p.HTML(r)
}
