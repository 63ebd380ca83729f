package models

import "time"

// UserPokemon is one captured instance: a catalog species owned by a
// user under a nickname. Many rows may point at the same species, for
// the same or different owners. Both foreign keys are required; all
// reads and mutations must filter by owner in the same predicate as the
// id so a non-owned row is indistinguishable from a missing one.
type UserPokemon struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	PokemonID uint      `gorm:"not null" json:"pokemon_id"`
	Name      string    `gorm:"size:50;not null" json:"name"` // nickname
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User    *User    `gorm:"foreignKey:UserID" json:"-"`
	Pokemon *Pokemon `gorm:"foreignKey:PokemonID" json:"-"`
}

// SavePokemonRequest is the payload for POST /mypokemon. Name is the
// nickname; when empty the species name is used.
type SavePokemonRequest struct {
	PokemonID uint   `json:"pokemon_id" binding:"required"`
	Name      string `json:"name"`
}

// RenamePokemonRequest is the payload for PUT /mypokemon.
type RenamePokemonRequest struct {
	ID   uint   `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// ReleasePokemonRequest is the payload for DELETE /mypokemon.
type ReleasePokemonRequest struct {
	ID uint `json:"id" binding:"required"`
}
