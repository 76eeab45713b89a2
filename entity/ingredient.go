package entity

type Ingredient struct {
	ID         string `gorm:"primaryKey" json:"id"`
	Name       string `json:"name"`
	StockLevel int    `json:"stockLevel"`

	MenuItems []MenuItem `gorm:"many2many:menu_item_ingredients;" json:"-"`
}
