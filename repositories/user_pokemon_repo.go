package repositories

import (
	"gorm.io/gorm"

	"github.com/Lewis3ai/INFOA1test/models"
)

// UserPokemonRepository is the collection data access. Every read and
// mutation that takes an id also takes the owner id and puts both in
// the same WHERE clause: a row owned by someone else behaves exactly
// like a row that doesn't exist, and there is no fetch-then-check gap.
type UserPokemonRepository interface {
	Create(up *models.UserPokemon) error
	FindOwned(id, userID uint) (*models.UserPokemon, error)
	ListByUser(userID uint) ([]models.UserPokemon, error)
	Rename(id, userID uint, name string) error
	Delete(id, userID uint) error

	// Admin CLI helpers.
	FindByUserAndPokemon(userID, pokemonID uint) (*models.UserPokemon, error)
	DeleteAllForUser(userID uint) error
}

type userPokemonRepo struct{ db *gorm.DB }

func NewUserPokemonRepository(db *gorm.DB) UserPokemonRepository {
	return &userPokemonRepo{db: db}
}

func (r *userPokemonRepo) Create(up *models.UserPokemon) error {
	return r.db.Create(up).Error
}

func (r *userPokemonRepo) FindOwned(id, userID uint) (*models.UserPokemon, error) {
	var up models.UserPokemon
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&up).Error; err != nil {
		return nil, err
	}
	return &up, nil
}

func (r *userPokemonRepo) ListByUser(userID uint) ([]models.UserPokemon, error) {
	var list []models.UserPokemon
	if err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Rename updates the nickname in place. RowsAffected == 0 means the row
// is missing or not owned; both map to ErrRecordNotFound.
func (r *userPokemonRepo) Rename(id, userID uint, name string) error {
	res := r.db.Model(&models.UserPokemon{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("name", name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userPokemonRepo) Delete(id, userID uint) error {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.UserPokemon{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userPokemonRepo) FindByUserAndPokemon(userID, pokemonID uint) (*models.UserPokemon, error) {
	var up models.UserPokemon
	if err := r.db.Where("user_id = ? AND pokemon_id = ?", userID, pokemonID).First(&up).Error; err != nil {
		return nil, err
	}
	return &up, nil
}

// DeleteAllForUser releases everything a user owns. Used by the admin
// delete-user flow, which must clean up ownership rows explicitly
// before removing the account.
func (r *userPokemonRepo) DeleteAllForUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.UserPokemon{}).Error
}
