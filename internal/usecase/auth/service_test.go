package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/domain/user"
	"resume-builder/internal/pkg/jwt"
)

type fakeUserRepo struct {
	byEmail map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]user.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) error {
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func newTestService(repo *fakeUserRepo) *Service {
	jwtSvc := jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	return NewService(repo, jwtSvc, nil)
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	u, tokens, err := svc.Register(ctx, RegisterInput{Email: "Ada@Example.com", Password: "correct-horse"})
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", u.Email)
	assert.Empty(t, u.PasswordHash)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	got, _, err := svc.Login(ctx, LoginInput{Email: "ada@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, _, err = svc.Login(ctx, LoginInput{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterInput{Email: "ada@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, RegisterInput{Email: "ADA@example.com", Password: "another-pass"})
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestRegisterRejectsWeakInput(t *testing.T) {
	svc := newTestService(newFakeUserRepo())
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterInput{Email: "", Password: "correct-horse"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = svc.Register(ctx, RegisterInput{Email: "ada@example.com", Password: "short"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRefresh(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	_, tokens, err := svc.Register(ctx, RegisterInput{Email: "ada@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	next, err := svc.Refresh(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, next.AccessToken)

	// An access token is not accepted on the refresh path.
	_, err = svc.Refresh(ctx, tokens.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	_, err = svc.Refresh(ctx, "garbage")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestMe(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	u, _, err := svc.Register(ctx, RegisterInput{Email: "ada@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	got, err := svc.Me(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)
	assert.Empty(t, got.PasswordHash)

	_, err = svc.Me(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
