// Package render projects a resume into a styled document under one of
// the seven named templates, plus the HTML and plain-text projections
// the export pipeline consumes.
package render

import "fmt"

type TemplateID string

const (
	TemplateProfessional TemplateID = "professional"
	TemplateModern       TemplateID = "modern"
	TemplateCreative     TemplateID = "creative"
	TemplateMinimal      TemplateID = "minimal"
	TemplateElegant      TemplateID = "elegant"
	TemplateWarm         TemplateID = "warm"
	TemplateTech         TemplateID = "tech"
)

// Style is the fixed color triple backing a template: header block,
// body, and section rule.
type Style struct {
	Label    string
	HeaderBG string
	HeaderFG string
	BodyBG   string
	BodyFG   string
	Rule     string
}

var styles = map[TemplateID]Style{
	TemplateProfessional: {Label: "Professional", HeaderBG: "#1f2937", HeaderFG: "#ffffff", BodyBG: "#ffffff", BodyFG: "#1f2937", Rule: "#9ca3af"},
	TemplateModern:       {Label: "Modern", HeaderBG: "#2563eb", HeaderFG: "#ffffff", BodyBG: "#ffffff", BodyFG: "#1f2937", Rule: "#3b82f6"},
	TemplateCreative:     {Label: "Creative", HeaderBG: "#0d9488", HeaderFG: "#ffffff", BodyBG: "#ffffff", BodyFG: "#1f2937", Rule: "#14b8a6"},
	TemplateMinimal:      {Label: "Minimal", HeaderBG: "#44403c", HeaderFG: "#ffffff", BodyBG: "#ffffff", BodyFG: "#1f2937", Rule: "#78716c"},
	TemplateElegant:      {Label: "Elegant", HeaderBG: "#7e22ce", HeaderFG: "#ffffff", BodyBG: "#ffffff", BodyFG: "#1f2937", Rule: "#a855f7"},
	TemplateWarm:         {Label: "Warm", HeaderBG: "#ea580c", HeaderFG: "#ffffff", BodyBG: "#ffffff", BodyFG: "#1f2937", Rule: "#f97316"},
	TemplateTech:         {Label: "Tech", HeaderBG: "#1e293b", HeaderFG: "#67e8f9", BodyBG: "#0f172a", BodyFG: "#f1f5f9", Rule: "#22d3ee"},
}

// TemplateIDs in display order.
func TemplateIDs() []TemplateID {
	return []TemplateID{
		TemplateProfessional,
		TemplateModern,
		TemplateCreative,
		TemplateMinimal,
		TemplateElegant,
		TemplateWarm,
		TemplateTech,
	}
}

func (t TemplateID) Style() Style {
	return styles[t]
}

// ParseTemplateID rejects anything outside the enumerated set; callers
// inside the process always pass a constant, so a failure here is a
// configuration error at the call site.
func ParseTemplateID(s string) (TemplateID, error) {
	id := TemplateID(s)
	if _, ok := styles[id]; !ok {
		return "", fmt.Errorf("unknown template %q", s)
	}
	return id, nil
}
