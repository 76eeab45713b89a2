package entity

import "babylone/pkg/money"

type Addon struct {
	ID         string      `gorm:"primaryKey" json:"id"`
	Name       string      `json:"name"`
	Price      money.Cents `json:"price"`
	StockLevel int         `json:"stockLevel"`

	MenuItems []MenuItem `gorm:"many2many:menu_item_addons;" json:"-"`
}
