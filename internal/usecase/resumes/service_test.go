package resumes

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/domain/resume"
	"resume-builder/internal/editor"
	"resume-builder/internal/flow"
)

type fakeRepo struct {
	items map[uuid.UUID]resume.Resume
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[uuid.UUID]resume.Resume{}}
}

func (f *fakeRepo) Create(_ context.Context, r resume.Resume) (resume.Resume, error) {
	f.items[r.ID] = r
	return r, nil
}

func (f *fakeRepo) Update(_ context.Context, r resume.Resume) (resume.Resume, error) {
	if _, ok := f.items[r.ID]; !ok {
		return resume.Resume{}, resume.ErrNotFound
	}
	f.items[r.ID] = r
	return r, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (resume.Resume, error) {
	r, ok := f.items[id]
	if !ok {
		return resume.Resume{}, resume.ErrNotFound
	}
	return r, nil
}

func (f *fakeRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]resume.Resume, error) {
	var out []resume.Resume
	for _, r := range f.items {
		if r.OwnerID == ownerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.items[id]; !ok {
		return resume.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func newService(repo *fakeRepo) *Service {
	return NewService(repo, flow.NewStore(nil))
}

func validResume() resume.Resume {
	r := resume.New()
	r.FullName = "Ada Lovelace"
	r.TargetJobTitle = "Software Engineer"
	r.Email = "ada@example.com"
	return r
}

func TestSubmitCreates(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	owner := uuid.New()

	res, err := svc.Submit(context.Background(), owner, validResume())
	require.NoError(t, err)

	assert.Equal(t, editor.ActionCreate, res.Action)
	assert.NotEqual(t, uuid.Nil, res.Resume.ID)
	assert.Equal(t, owner, res.Resume.OwnerID)
	assert.Len(t, repo.items, 1)
}

func TestSubmitUpdates(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	owner := uuid.New()

	created, err := svc.Submit(context.Background(), owner, validResume())
	require.NoError(t, err)

	updated := created.Resume
	updated.TargetJobTitle = "Staff Engineer"

	res, err := svc.Submit(context.Background(), owner, updated)
	require.NoError(t, err)

	assert.Equal(t, editor.ActionUpdate, res.Action)
	assert.Equal(t, created.Resume.ID, res.Resume.ID)
	assert.Equal(t, "Staff Engineer", repo.items[res.Resume.ID].TargetJobTitle)
	assert.Len(t, repo.items, 1)
}

func TestSubmitValidationPreservesNothingStored(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	bad := validResume()
	bad.Email = "not-an-email"

	_, err := svc.Submit(context.Background(), uuid.New(), bad)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")
	assert.Empty(t, repo.items)
}

func TestSubmitRejectsForeignUpdate(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	created, err := svc.Submit(context.Background(), uuid.New(), validResume())
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), uuid.New(), created.Resume)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGetEnforcesOwnership(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	owner := uuid.New()

	created, err := svc.Submit(context.Background(), owner, validResume())
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), owner, created.Resume.ID)
	assert.NoError(t, err)

	_, err = svc.Get(context.Background(), uuid.New(), created.Resume.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Get(context.Background(), owner, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	owner := uuid.New()

	created, err := svc.Submit(context.Background(), owner, validResume())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), owner, created.Resume.ID))
	assert.Empty(t, repo.items)

	assert.ErrorIs(t, svc.Delete(context.Background(), owner, created.Resume.ID), ErrNotFound)
}

func TestApplyEdits(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	owner := uuid.New()

	created, err := svc.Submit(context.Background(), owner, validResume())
	require.NoError(t, err)

	ops := []editor.Op{
		{Kind: editor.OpAppendEntry, Collection: editor.CollectionSkills},
		{Kind: editor.OpUpdateEntry, Collection: editor.CollectionSkills, Index: 0, Value: "Go"},
	}

	edited, err := svc.ApplyEdits(context.Background(), owner, created.Resume.ID, ops)
	require.NoError(t, err)

	assert.Equal(t, []string{"Go"}, edited.Skills)
	assert.Equal(t, []string{"Go"}, repo.items[created.Resume.ID].Skills)
}

func TestApplyEditsFailedOpLeavesStoreUntouched(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	owner := uuid.New()

	created, err := svc.Submit(context.Background(), owner, validResume())
	require.NoError(t, err)

	ops := []editor.Op{
		{Kind: editor.OpSetField, Field: "fullName", Value: "Changed"},
		{Kind: editor.OpRemoveEntry, Collection: editor.CollectionSkills, Index: 5},
	}

	_, err = svc.ApplyEdits(context.Background(), owner, created.Resume.ID, ops)
	require.ErrorIs(t, err, editor.ErrIndexOutOfRange)

	assert.Equal(t, "Ada Lovelace", repo.items[created.Resume.ID].FullName)
}
