package render

import (
	"strings"
	"testing"

	"resume-builder/internal/domain/resume"
)

func sampleResume() resume.Resume {
	r := resume.New()
	r.FullName = "Ada Lovelace"
	r.TargetJobTitle = "Software Engineer"
	r.Email = "ada@example.com"
	r.Phone = "+1 555 0100"
	r.Summary = "Engineer with a focus on analytical computing."
	r.Skills = []string{"Python", "Go"}
	r.Experience = []resume.WorkExperience{
		{
			Company:          "Analytical Engines Ltd",
			Role:             "Engineer",
			StartDate:        "2019-01",
			EndDate:          "2023-06",
			Current:          true,
			Responsibilities: []string{"Built pipelines", "", "Wrote docs"},
		},
	}
	return r
}

func TestRenderOmitsEmptySections(t *testing.T) {
	r := resume.New()
	r.FullName = "Ada Lovelace"

	doc := Render(r, TemplateProfessional)
	if len(doc.Sections) != 0 {
		t.Fatalf("sections = %+v, want none", doc.Sections)
	}
	if doc.Header.Name != "Ada Lovelace" {
		t.Fatalf("header name = %q", doc.Header.Name)
	}
	if doc.Header.Title != "Target Job Title" {
		t.Fatalf("header title fallback = %q", doc.Header.Title)
	}
}

func TestRenderCurrentPositionEndsInPresent(t *testing.T) {
	doc := Render(sampleResume(), TemplateProfessional)

	var meta string
	for _, sec := range doc.Sections {
		if sec.Title == "Work Experience" {
			meta = sec.Items[0].Meta
		}
	}
	if meta != "2019-01 – Present" {
		t.Fatalf("meta = %q", meta)
	}
}

func TestRenderFiltersBlankResponsibilities(t *testing.T) {
	doc := Render(sampleResume(), TemplateProfessional)

	for _, sec := range doc.Sections {
		if sec.Title != "Work Experience" {
			continue
		}
		if len(sec.Items[0].Bullets) != 2 {
			t.Fatalf("bullets = %v", sec.Items[0].Bullets)
		}
	}
}

func TestRenderHeaderFallbacks(t *testing.T) {
	doc := Render(resume.New(), TemplateModern)
	if doc.Header.Name != "Your Name" || doc.Header.Title != "Target Job Title" {
		t.Fatalf("header = %+v", doc.Header)
	}
}

func TestPlainTextContent(t *testing.T) {
	text := Render(sampleResume(), TemplateProfessional).PlainText()

	for _, want := range []string{
		"Ada Lovelace\n",
		"Software Engineer\n",
		"\nSkills\n",
		"Python  Go",
		"- Built pipelines",
		"2019-01 – Present",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("plain text missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "Projects") {
		t.Fatalf("empty section rendered:\n%s", text)
	}
}

func TestParseTemplateID(t *testing.T) {
	for _, id := range TemplateIDs() {
		got, err := ParseTemplateID(string(id))
		if err != nil || got != id {
			t.Fatalf("ParseTemplateID(%q) = %v, %v", id, got, err)
		}
	}

	if _, err := ParseTemplateID("vaporwave"); err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestHTMLZoomChangesScaleOnly(t *testing.T) {
	r := sampleResume()
	doc := Render(r, TemplateTech)

	small, err := doc.HTML(0.6)
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	large, err := doc.HTML(1.4)
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}

	for _, html := range []string{small, large} {
		if !strings.Contains(html, "Ada Lovelace") {
			t.Fatal("rendered HTML missing name")
		}
		if !strings.Contains(html, ContainerID) {
			t.Fatal("rendered HTML missing container id")
		}
	}
	if !strings.Contains(small, "scale(0.60)") || !strings.Contains(large, "scale(1.40)") {
		t.Fatal("zoom factor not reflected in scale transform")
	}
}

func TestClampZoom(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.1, ZoomMin},
		{0.6, 0.6},
		{1.0, 1.0},
		{1.4, 1.4},
		{2.5, ZoomMax},
	}
	for _, tt := range tests {
		if got := ClampZoom(tt.in); got != tt.want {
			t.Fatalf("ClampZoom(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPreviewZoomSteps(t *testing.T) {
	p := NewPreview(TemplateMinimal)
	if p.Zoom != 1.0 {
		t.Fatalf("initial zoom = %v", p.Zoom)
	}

	for i := 0; i < 10; i++ {
		p = p.ZoomOut()
	}
	if p.Zoom != ZoomMin {
		t.Fatalf("zoom floor = %v", p.Zoom)
	}

	for i := 0; i < 20; i++ {
		p = p.ZoomIn()
	}
	if p.Zoom != ZoomMax {
		t.Fatalf("zoom ceiling = %v", p.Zoom)
	}

	p = p.SwitchTemplate(TemplateElegant)
	if p.Template != TemplateElegant || p.Zoom != ZoomMax {
		t.Fatalf("switch template reset state: %+v", p)
	}
}
