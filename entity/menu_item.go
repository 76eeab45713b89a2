package entity

import (
	"time"

	"babylone/pkg/money"
)

type MenuItem struct {
	ID          string      `gorm:"primaryKey" json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       money.Cents `json:"price"`
	Category    string      `json:"category"`
	Image       string      `json:"image,omitempty"`
	IsPopular   bool        `json:"isPopular"`

	Ingredients []Ingredient `gorm:"many2many:menu_item_ingredients;" json:"ingredients"`
	Addons      []Addon      `gorm:"many2many:menu_item_addons;" json:"addons"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
