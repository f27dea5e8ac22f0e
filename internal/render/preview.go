package render

import "resume-builder/internal/domain/resume"

// Zoom bounds and step for the preview scale control.
const (
	ZoomMin  = 0.6
	ZoomMax  = 1.4
	ZoomStep = 0.1
)

func ClampZoom(z float64) float64 {
	if z < ZoomMin {
		return ZoomMin
	}
	if z > ZoomMax {
		return ZoomMax
	}
	return z
}

// Preview is renderer-local UI state: the live template choice and the
// zoom factor. Neither touches the underlying resume.
type Preview struct {
	Template TemplateID
	Zoom     float64
}

func NewPreview(template TemplateID) Preview {
	return Preview{Template: template, Zoom: 1.0}
}

func (p Preview) ZoomIn() Preview {
	p.Zoom = ClampZoom(p.Zoom + ZoomStep)
	return p
}

func (p Preview) ZoomOut() Preview {
	p.Zoom = ClampZoom(p.Zoom - ZoomStep)
	return p
}

func (p Preview) SwitchTemplate(t TemplateID) Preview {
	p.Template = t
	return p
}

// HTML renders the resume under the preview's template and zoom.
func (p Preview) HTML(r resume.Resume) (string, error) {
	return Render(r, p.Template).HTML(p.Zoom)
}
