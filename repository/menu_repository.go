package repository

import (
	"babylone/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// ListItems returns the full catalog with nested ingredients and addons, in a
// stable order so the category grouping is deterministic.
func (r *MenuRepository) ListItems() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Preload("Ingredients").
		Preload("Addons").
		Order("category, id").
		Find(&items).Error
	return items, err
}

func (r *MenuRepository) GetItem(id string) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.DB.
		Preload("Ingredients").
		Preload("Addons").
		First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) CreateItem(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) UpdateItem(id string, fields map[string]any) error {
	res := r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MenuRepository) DeleteItem(id string) error {
	res := r.DB.Delete(&entity.MenuItem{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MenuRepository) ListIngredients() ([]entity.Ingredient, error) {
	var out []entity.Ingredient
	err := r.DB.Order("id").Find(&out).Error
	return out, err
}

func (r *MenuRepository) ListAddons() ([]entity.Addon, error) {
	var out []entity.Addon
	err := r.DB.Order("id").Find(&out).Error
	return out, err
}
