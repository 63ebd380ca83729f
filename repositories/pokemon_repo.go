package repositories

import (
	"gorm.io/gorm"

	"github.com/Lewis3ai/INFOA1test/models"
)

// PokemonRepository reads the species catalog. The catalog is reference
// data: the API only ever reads it; Upsert exists for the populator and
// the admin CLI.
type PokemonRepository interface {
	FindByID(id uint) (*models.Pokemon, error)
	List() ([]models.Pokemon, error)
	Upsert(p *models.Pokemon) error
}

type pokemonRepo struct{ db *gorm.DB }

func NewPokemonRepository(db *gorm.DB) PokemonRepository {
	return &pokemonRepo{db: db}
}

func (r *pokemonRepo) FindByID(id uint) (*models.Pokemon, error) {
	var p models.Pokemon
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pokemonRepo) List() ([]models.Pokemon, error) {
	var list []models.Pokemon
	if err := r.db.Order("id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Upsert writes a catalog row keyed by its fixed species id.
func (r *pokemonRepo) Upsert(p *models.Pokemon) error {
	return r.db.Save(p).Error
}
