package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/Lewis3ai/INFOA1test/models"
)

// AuthServiceMock is a testify/mock for services.AuthService. Used to
// test the HTTP handlers and the auth middleware without real business
// logic.
type AuthServiceMock struct{ mock.Mock }

func (m *AuthServiceMock) Signup(req models.SignupRequest) (*models.User, error) {
	args := m.Called(req)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AuthServiceMock) Login(req models.LoginRequest) (string, error) {
	args := m.Called(req)
	return args.String(0), args.Error(1)
}

func (m *AuthServiceMock) Resolve(username string) (*models.User, error) {
	args := m.Called(username)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}
