package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/Lewis3ai/INFOA1test/models"
)

// UserRepositoryMock is a testify/mock for repositories.UserRepository.
// Used to unit-test the service layer without touching a DB.
type UserRepositoryMock struct{ mock.Mock }

func (m *UserRepositoryMock) Create(u *models.User) error {
	return m.Called(u).Error(0)
}

func (m *UserRepositoryMock) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepositoryMock) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepositoryMock) Update(u *models.User) error {
	return m.Called(u).Error(0)
}

func (m *UserRepositoryMock) Delete(id uint) error {
	return m.Called(id).Error(0)
}

func (m *UserRepositoryMock) List() ([]models.User, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.([]models.User), args.Error(1)
	}
	return nil, args.Error(1)
}
