package model

import "github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"

// FromEntity converts a transaction entity to its database model.
// An empty description is stored as NULL.
func FromEntity(tx *entity.Transaction) Transaction {
	var description *string
	if tx.Description != "" {
		d := tx.Description
		description = &d
	}

	return Transaction{
		ID:          tx.ID,
		Type:        string(tx.Type),
		Amount:      tx.Amount,
		Description: description,
		Date:        tx.Date,
	}
}

// ToEntity converts the database model back to a transaction entity
func (m *Transaction) ToEntity() *entity.Transaction {
	tx := &entity.Transaction{
		ID:     m.ID,
		Type:   entity.TransactionType(m.Type),
		Amount: m.Amount,
		Date:   m.Date.UTC(),
	}
	if m.Description != nil {
		tx.Description = *m.Description
	}
	return tx
}
