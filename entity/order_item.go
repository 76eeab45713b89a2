package entity

import "babylone/pkg/money"

type OrderItem struct {
	ID      uint   `gorm:"primaryKey" json:"-"`
	OrderID string `json:"-"`

	ItemID    string      `json:"id"`
	Name      string      `json:"name"`
	Qty       int         `json:"quantity"`
	UnitPrice money.Cents `json:"unitPrice"`
}
