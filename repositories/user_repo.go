// Data-access layer. Only talks to the database via GORM; no HTTP/JSON.
// Repositories hide GORM details behind interfaces so services are
// testable and DB-agnostic.

package repositories

import (
	"gorm.io/gorm"

	"github.com/Lewis3ai/INFOA1test/models"
)

// UserRepository defines the user operations the service layer and the
// admin CLI expect. Create does NOT pre-check uniqueness: the unique
// indexes on username/email decide, which avoids a check-then-insert
// race; callers translate the violation with IsDuplicate.
type UserRepository interface {
	Create(user *models.User) error
	FindByUsername(username string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	List() ([]models.User, error)
}

type userRepo struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(u *models.User) error {
	return r.db.Create(u).Error
}

func (r *userRepo) FindByUsername(username string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) Update(u *models.User) error {
	return r.db.Save(u).Error
}

// Delete removes a user row by primary key. Owned UserPokemon rows are
// NOT cascaded here; the admin CLI releases them explicitly first.
func (r *userRepo) Delete(id uint) error {
	res := r.db.Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepo) List() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
