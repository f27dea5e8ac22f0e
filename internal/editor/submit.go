package editor

import (
	"strings"

	"resume-builder/internal/domain/resume"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
)

// ValidationErrors maps field names to messages. A nil map means the
// submission is valid.
type ValidationErrors map[string]string

// Submit runs the required-field checks and reports whether the resume
// should be created or updated. The resume value is returned as-is so
// nothing entered is lost when validation fails.
func Submit(r resume.Resume) (Action, ValidationErrors) {
	errs := ValidationErrors{}

	if strings.TrimSpace(r.FullName) == "" {
		errs["fullName"] = "Full name is required"
	}
	if strings.TrimSpace(r.TargetJobTitle) == "" {
		errs["targetJobTitle"] = "Target job title is required"
	}
	email := strings.TrimSpace(r.Email)
	if email == "" {
		errs["email"] = "Email is required"
	} else if !looksLikeEmail(email) {
		errs["email"] = "Email is invalid"
	}

	if len(errs) > 0 {
		return "", errs
	}

	if r.IsPersisted() {
		return ActionUpdate, nil
	}
	return ActionCreate, nil
}

// looksLikeEmail mirrors the browser's native email-input check: one
// "@" with something on both sides, no deep validation.
func looksLikeEmail(s string) bool {
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	return !strings.ContainsAny(s, " \t")
}
