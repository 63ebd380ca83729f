package models

// Pokemon is one catalog species with its battle stats. Rows are
// read-only reference data seeded by cmd/populator or cmd/admin, never
// through the HTTP API. Type2 is nil for single-type species.
type Pokemon struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"size:50;not null" json:"name"`
	Attack    int     `gorm:"not null" json:"attack"`
	Defense   int     `gorm:"not null" json:"defense"`
	HP        int     `gorm:"column:hp;not null" json:"hp"`
	Height    float64 `json:"height"`
	Weight    float64 `json:"weight"`
	SpAttack  int     `gorm:"column:sp_attack;not null" json:"sp_attack"`
	SpDefense int     `gorm:"column:sp_defense;not null" json:"sp_defense"`
	Speed     int     `gorm:"not null" json:"speed"`
	Type1     string  `gorm:"size:50;not null" json:"type1"`
	Type2     *string `gorm:"size:50" json:"type2"`
}
