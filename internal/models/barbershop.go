package models

import "time"

type Barbershop struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Slug        string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone       string `gorm:"size:20" json:"phone"`
	Phone2      string `gorm:"size:20" json:"phone2"`
	Address     string `gorm:"size:255" json:"address"`
	Description string `gorm:"size:500" json:"description"`
	ImageURL    string `gorm:"size:255" json:"image_url"`
	Timezone    string `gorm:"size:64;default:'America/Sao_Paulo'" json:"timezone"`
	Active      bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
