// Package resumes owns the persistence lifecycle of a resume: explicit
// create/update on submission, hydrate on edit, list for the dashboard,
// delete. Editor semantics live in internal/editor; this layer enforces
// ownership and the submission guard.
package resumes

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"resume-builder/internal/domain/resume"
	"resume-builder/internal/editor"
	"resume-builder/internal/flow"
)

var (
	ErrNotFound  = errors.New("resume not found")
	ErrForbidden = errors.New("resume belongs to another user")
	ErrInternal  = errors.New("internal error")
)

// ValidationError carries the field-keyed messages from a rejected
// submission; the in-progress values are preserved by the caller.
type ValidationError struct {
	Fields editor.ValidationErrors
}

func (e *ValidationError) Error() string { return "validation failed" }

type SubmitResult struct {
	Resume resume.Resume
	Action editor.Action
}

type Service struct {
	repo resume.Repository
	flow *flow.Store
}

func NewService(repo resume.Repository, flowStore *flow.Store) *Service {
	return &Service{repo: repo, flow: flowStore}
}

// Submit validates and persists a resume, creating or updating based on
// whether an identifier is attached. At most one submission per user is
// in flight at a time.
func (s *Service) Submit(ctx context.Context, ownerID uuid.UUID, r resume.Resume) (SubmitResult, error) {
	action, verrs := editor.Submit(r)
	if verrs != nil {
		return SubmitResult{}, &ValidationError{Fields: verrs}
	}

	if err := s.flow.BeginSubmit(ctx, ownerID); err != nil {
		return SubmitResult{}, err
	}
	defer s.flow.EndSubmit(ctx, ownerID)

	r.OwnerID = ownerID

	var saved resume.Resume
	var err error
	switch action {
	case editor.ActionCreate:
		r.ID = uuid.New()
		saved, err = s.repo.Create(ctx, r)
	case editor.ActionUpdate:
		if _, err := s.getOwned(ctx, ownerID, r.ID); err != nil {
			return SubmitResult{}, err
		}
		saved, err = s.repo.Update(ctx, r)
	}
	if err != nil {
		return SubmitResult{}, ErrInternal
	}

	return SubmitResult{Resume: saved, Action: action}, nil
}

// Get hydrates one resume for editing or preview.
func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (resume.Resume, error) {
	return s.getOwned(ctx, ownerID, id)
}

// List returns the owner's resumes ordered by last update, newest
// first.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID) ([]resume.Resume, error) {
	items, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if _, err := s.getOwned(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	return nil
}

// ApplyEdits loads the stored aggregate, applies editor operations in
// order, and persists the result. A failed operation leaves the stored
// value untouched.
func (s *Service) ApplyEdits(ctx context.Context, ownerID, id uuid.UUID, ops []editor.Op) (resume.Resume, error) {
	current, err := s.getOwned(ctx, ownerID, id)
	if err != nil {
		return resume.Resume{}, err
	}

	edited, err := editor.ApplyAll(current, ops)
	if err != nil {
		return resume.Resume{}, err
	}

	saved, err := s.repo.Update(ctx, edited)
	if err != nil {
		return resume.Resume{}, ErrInternal
	}
	return saved, nil
}

func (s *Service) getOwned(ctx context.Context, ownerID, id uuid.UUID) (resume.Resume, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return resume.Resume{}, ErrNotFound
		}
		return resume.Resume{}, ErrInternal
	}
	if r.OwnerID != ownerID {
		return resume.Resume{}, ErrForbidden
	}
	return r, nil
}
