package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/Lewis3ai/INFOA1test/models"
)

// PokemonRepositoryMock is a testify/mock for repositories.PokemonRepository.
type PokemonRepositoryMock struct{ mock.Mock }

func (m *PokemonRepositoryMock) FindByID(id uint) (*models.Pokemon, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.Pokemon), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PokemonRepositoryMock) List() ([]models.Pokemon, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.([]models.Pokemon), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PokemonRepositoryMock) Upsert(p *models.Pokemon) error {
	return m.Called(p).Error(0)
}
