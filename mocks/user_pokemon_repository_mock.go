package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/Lewis3ai/INFOA1test/models"
)

// UserPokemonRepositoryMock is a testify/mock for
// repositories.UserPokemonRepository.
type UserPokemonRepositoryMock struct{ mock.Mock }

func (m *UserPokemonRepositoryMock) Create(up *models.UserPokemon) error {
	return m.Called(up).Error(0)
}

func (m *UserPokemonRepositoryMock) FindOwned(id, userID uint) (*models.UserPokemon, error) {
	args := m.Called(id, userID)
	if v := args.Get(0); v != nil {
		return v.(*models.UserPokemon), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserPokemonRepositoryMock) ListByUser(userID uint) ([]models.UserPokemon, error) {
	args := m.Called(userID)
	if v := args.Get(0); v != nil {
		return v.([]models.UserPokemon), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserPokemonRepositoryMock) Rename(id, userID uint, name string) error {
	return m.Called(id, userID, name).Error(0)
}

func (m *UserPokemonRepositoryMock) Delete(id, userID uint) error {
	return m.Called(id, userID).Error(0)
}

func (m *UserPokemonRepositoryMock) FindByUserAndPokemon(userID, pokemonID uint) (*models.UserPokemon, error) {
	args := m.Called(userID, pokemonID)
	if v := args.Get(0); v != nil {
		return v.(*models.UserPokemon), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserPokemonRepositoryMock) DeleteAllForUser(userID uint) error {
	return m.Called(userID).Error(0)
}
