package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/Lewis3ai/INFOA1test/models"
)

// CollectionServiceMock is a testify/mock for services.CollectionService.
type CollectionServiceMock struct{ mock.Mock }

func (m *CollectionServiceMock) Save(userID, pokemonID uint, nickname string) (*models.UserPokemon, *models.Pokemon, error) {
	args := m.Called(userID, pokemonID, nickname)
	var up *models.UserPokemon
	if v := args.Get(0); v != nil {
		up = v.(*models.UserPokemon)
	}
	var species *models.Pokemon
	if v := args.Get(1); v != nil {
		species = v.(*models.Pokemon)
	}
	return up, species, args.Error(2)
}

func (m *CollectionServiceMock) List(userID uint) ([]models.UserPokemon, error) {
	args := m.Called(userID)
	if v := args.Get(0); v != nil {
		return v.([]models.UserPokemon), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CollectionServiceMock) Get(userID, id uint) (*models.UserPokemon, error) {
	args := m.Called(userID, id)
	if v := args.Get(0); v != nil {
		return v.(*models.UserPokemon), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CollectionServiceMock) Rename(userID, id uint, nickname string) error {
	return m.Called(userID, id, nickname).Error(0)
}

func (m *CollectionServiceMock) Release(userID, id uint) error {
	return m.Called(userID, id).Error(0)
}
