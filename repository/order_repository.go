package repository

import (
	"babylone/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) List() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) Get(id string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items").First(&o, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) Count(tx *gorm.DB) (int64, error) {
	var n int64
	err := tx.Model(&entity.Order{}).Count(&n).Error
	return n, err
}

// UpdateStatus touches only the status column and reports whether a row
// matched, so a missing order is distinguishable from a clean update.
func (r *OrderRepository) UpdateStatus(tx *gorm.DB, id string, status entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).Where("id = ?", id).Update("status", status)
	return res.RowsAffected, res.Error
}
