package services

import (
	"fmt"

	"babylone/entity"

	"gorm.io/gorm"
)

// SetStatus moves an order to the requested status and pushes the change to
// the customer. Only the status column is written; no history is kept. Which
// moves are legal depends on the configured flow (the default allows staff to
// jump between any two states).
func (s *OrderService) SetStatus(orderID string, status entity.OrderStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: statut inconnu %q", ErrValidation, status)
	}

	o, err := s.Repo.Get(orderID)
	if err != nil {
		return nil, err
	}
	if !s.Flow.Allows(o.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrTransition, o.Status, status)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatus(tx, orderID, status)
		if err != nil {
			return err
		}
		if affected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.Status = status
	s.Notify.NotifyOrder(orderID,
		fmt.Sprintf("Commande %s mise à jour vers: %s", orderID, status.Label()), status)
	return o, nil
}

// NotifyCustomer sends a free-form message to whoever is watching the order.
func (s *OrderService) NotifyCustomer(orderID, message string) error {
	if _, err := s.Repo.Get(orderID); err != nil {
		return err
	}
	s.Notify.NotifyOrder(orderID, message, "")
	return nil
}
