package editor

import (
	"testing"

	"github.com/google/uuid"

	"resume-builder/internal/domain/resume"
)

func validResume() resume.Resume {
	r := resume.New()
	r.FullName = "Ada Lovelace"
	r.TargetJobTitle = "Software Engineer"
	r.Email = "ada@example.com"
	return r
}

func TestSubmitCreateVsUpdate(t *testing.T) {
	r := validResume()

	action, errs := Submit(r)
	if errs != nil {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
	if action != ActionCreate {
		t.Fatalf("action = %q, want create", action)
	}

	r.ID = uuid.New()
	action, errs = Submit(r)
	if errs != nil {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
	if action != ActionUpdate {
		t.Fatalf("action = %q, want update", action)
	}
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*resume.Resume)
		wantField string
	}{
		{"missing full name", func(r *resume.Resume) { r.FullName = "  " }, "fullName"},
		{"missing title", func(r *resume.Resume) { r.TargetJobTitle = "" }, "targetJobTitle"},
		{"missing email", func(r *resume.Resume) { r.Email = "" }, "email"},
		{"email without at", func(r *resume.Resume) { r.Email = "ada.example.com" }, "email"},
		{"email with nothing before at", func(r *resume.Resume) { r.Email = "@example.com" }, "email"},
		{"email with nothing after at", func(r *resume.Resume) { r.Email = "ada@" }, "email"},
		{"email with spaces", func(r *resume.Resume) { r.Email = "ada lovelace@example.com" }, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validResume()
			tt.mutate(&r)

			_, errs := Submit(r)
			if errs == nil {
				t.Fatal("expected validation errors")
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Fatalf("errors = %v, want key %q", errs, tt.wantField)
			}
		})
	}
}

func TestSubmitCollectsAllErrors(t *testing.T) {
	r := resume.New()

	_, errs := Submit(r)
	if len(errs) != 3 {
		t.Fatalf("errs = %v, want 3 entries", errs)
	}
}
