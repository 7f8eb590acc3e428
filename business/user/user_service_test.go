package user

import (
	"context"
	"testing"

	"byteBrosStore/domain"
	"byteBrosStore/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users     map[string]domain.User
	nextID    uint
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, exists := f.users[user.Email]; exists {
		return domain.ErrEmailInUse
	}
	f.nextID++
	user.ID = f.nextID
	f.users[user.Email] = *user
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := f.users[email]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return user, nil
}

type fakeTokens struct{}

func (fakeTokens) Generate(uint, string, bool) (string, error) {
	return "test-token", nil
}

func newService(repo *fakeUserRepo, exposeConflict bool) *userService {
	return NewUserService(repo, validator.New(), fakeTokens{}, exposeConflict)
}

func TestRegisterStoresHashNotPlaintext(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newService(repo, false)

	token, user, err := svc.Register(context.Background(), &domain.User{
		FullName: "João Silva",
		Email:    "joao@x.com",
		Password: "senha123",
	})
	require.NoError(t, err)
	assert.Equal(t, "test-token", token)
	assert.Empty(t, user.Password)

	stored := repo.users["joao@x.com"]
	assert.NotEqual(t, "senha123", stored.Password)
	assert.True(t, utils.CheckPassword("senha123", stored.Password))
}

func TestRegisterNormalizesEmailCase(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newService(repo, false)

	_, _, err := svc.Register(context.Background(), &domain.User{
		FullName: "João Silva",
		Email:    "A@b.com",
		Password: "senha123",
	})
	require.NoError(t, err)

	stored, ok := repo.users["a@b.com"]
	require.True(t, ok)
	assert.Equal(t, "a@b.com", stored.Email)

	token, user, err := svc.Login(context.Background(), "a@B.com", "senha123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "a@b.com", user.Email)
}

func TestRegisterMissingFields(t *testing.T) {
	svc := newService(newFakeUserRepo(), false)

	cases := []domain.User{
		{Email: "a@b.com", Password: "senha123"},
		{FullName: "João", Password: "senha123"},
		{FullName: "João", Email: "a@b.com"},
		{FullName: "João", Email: "not-an-email", Password: "senha123"},
		{FullName: "João", Email: "a@b.com", Password: "curta"},
	}

	for _, c := range cases {
		_, _, err := svc.Register(context.Background(), &c)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestLoginFailuresIndistinguishable(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newService(repo, false)

	_, _, err := svc.Register(context.Background(), &domain.User{
		FullName: "João Silva",
		Email:    "joao@x.com",
		Password: "senha123",
	})
	require.NoError(t, err)

	_, _, errUnknown := svc.Login(context.Background(), "nobody@x.com", "whatever")
	_, _, errWrongPass := svc.Login(context.Background(), "joao@x.com", "senhaerrada")

	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, domain.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestRegisterConflictPolicy(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["joao@x.com"] = domain.User{ID: 1, Email: "joao@x.com"}

	generic := newService(repo, false)
	_, _, err := generic.Register(context.Background(), &domain.User{
		FullName: "João Silva",
		Email:    "joao@x.com",
		Password: "senha123",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrEmailInUse)

	exposing := newService(repo, true)
	_, _, err = exposing.Register(context.Background(), &domain.User{
		FullName: "João Silva",
		Email:    "joao@x.com",
		Password: "senha123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailInUse)
}

func TestLoginNeverReturnsHash(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newService(repo, false)

	_, _, err := svc.Register(context.Background(), &domain.User{
		FullName: "João Silva",
		Email:    "joao@x.com",
		Password: "senha123",
	})
	require.NoError(t, err)

	_, user, err := svc.Login(context.Background(), "joao@x.com", "senha123")
	require.NoError(t, err)
	assert.Empty(t, user.Password)
	assert.False(t, user.IsAdmin)
}
