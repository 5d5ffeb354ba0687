package service

import (
	"context"
	"testing"

	"github.com/grazeweb/my-eshop-app/config"
	"github.com/grazeweb/my-eshop-app/internal/dto"
	"github.com/grazeweb/my-eshop-app/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgdto "github.com/grazeweb/my-eshop-app/pkg/dto"
)

func userTestConfig() config.Config {
	return config.Config{JWTSecret: "test-secret"}
}

func TestAddUserRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepository()
	svc := CreateUserService(repo, userTestConfig())

	req := dto.UserRequest{Name: "Jo", Email: "jo@test", Password: "123456"}

	err := svc.AddUser(context.Background(), req)
	require.NoError(t, err)

	err = svc.AddUser(context.Background(), req)
	assert.Equal(t, errs.ErrEmailAlreadyUsed, err)
}

func TestAddUserRejectsMissingFields(t *testing.T) {
	svc := CreateUserService(newFakeUserRepository(), userTestConfig())

	err := svc.AddUser(context.Background(), dto.UserRequest{Name: "Jo", Password: "123456"})

	assert.Equal(t, errs.ErrClient, err)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepository()
	svc := CreateUserService(repo, userTestConfig())

	err := svc.AddUser(context.Background(), dto.UserRequest{Name: "Jo", Email: "jo@test", Password: "123456"})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), dto.UserRequest{Email: "jo@test", Password: "123456"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotZero(t, resp.UserID)

	_, err = svc.Login(context.Background(), dto.UserRequest{Email: "jo@test", Password: "wrong"})
	assert.Equal(t, errs.ErrInvalidCredentialsEmail, err)

	_, err = svc.Login(context.Background(), dto.UserRequest{Email: "nobody@test", Password: "123456"})
	assert.Equal(t, errs.ErrAccountNotFound, err)
}

func TestSaveAddress(t *testing.T) {
	repo := newFakeUserRepository()
	svc := CreateUserService(repo, userTestConfig())

	err := svc.AddUser(context.Background(), dto.UserRequest{Name: "Jo", Email: "jo@test", Password: "123456"})
	require.NoError(t, err)

	user, err := repo.GetUserByEmail(context.Background(), "jo@test")
	require.NoError(t, err)

	err = svc.SaveAddress(context.Background(), dto.AddressRequest{
		ExternalID: user.ExternalID,
		Address:    "1 Main St",
		City:       "Springfield",
		Zip:        "12345",
	})
	require.NoError(t, err)

	profile, err := svc.GetProfile(context.Background(), user.ExternalID)
	require.NoError(t, err)
	require.NotNil(t, profile.AddressLine)
	assert.Equal(t, "1 Main St", *profile.AddressLine)
	require.NotNil(t, profile.AddressCity)
	assert.Equal(t, "Springfield", *profile.AddressCity)
}

func TestGetUsersReportsTableTotal(t *testing.T) {
	repo := newFakeUserRepository()
	svc := CreateUserService(repo, userTestConfig())

	for _, email := range []string{"a@test", "b@test", "c@test"} {
		err := svc.AddUser(context.Background(), dto.UserRequest{Name: "Jo", Email: email, Password: "123456"})
		require.NoError(t, err)
	}

	resp, err := svc.GetUsers(context.Background(), pkgdto.Filter{Limit: 2, Page: 1})
	require.NoError(t, err)

	records, ok := resp.Records.([]dto.UserResponse)
	require.True(t, ok)
	assert.Len(t, records, 2)
	assert.Equal(t, int64(3), resp.Metadata.TotalCount, "metadata must count the whole table, not the page")
}
