package export

import (
	"strings"
	"testing"

	"resume-builder/internal/domain/resume"
	"resume-builder/internal/render"
)

func TestTextFilename(t *testing.T) {
	tests := []struct {
		fullName string
		want     string
	}{
		{"Ada Lovelace", "Ada_Lovelace_Resume.txt"},
		{"  Ada   Lovelace  ", "Ada_Lovelace_Resume.txt"},
		{"Ada", "Ada_Resume.txt"},
		{"", "resume_Resume.txt"},
	}
	for _, tt := range tests {
		if got := TextFilename(tt.fullName); got != tt.want {
			t.Fatalf("TextFilename(%q) = %q, want %q", tt.fullName, got, tt.want)
		}
	}
}

func TestPlainTextPackaging(t *testing.T) {
	r := resume.New()
	r.FullName = "Ada Lovelace"
	r.TargetJobTitle = "Software Engineer"
	r.Skills = []string{"Go"}

	doc := render.Render(r, render.TemplateProfessional)
	file := PlainText(doc, r.FullName)

	if file.Filename != "Ada_Lovelace_Resume.txt" {
		t.Fatalf("filename = %q", file.Filename)
	}
	if !strings.Contains(string(file.Content), "Ada Lovelace") {
		t.Fatalf("content missing name:\n%s", file.Content)
	}
}
