package domain

import "time"

// EntryType distinguishes money coming in from money going out.
type EntryType string

const (
	EntryIncome  EntryType = "income"
	EntryExpense EntryType = "expense"
)

// ValidEntryType reports whether t is a known entry type.
func ValidEntryType(t EntryType) bool {
	return t == EntryIncome || t == EntryExpense
}

const EntryStatusPending = "pending"

// FinancialEntry is a single income or expense record, optionally tied to a
// client.
type FinancialEntry struct {
	ID          string    `json:"id" bson:"_id"`
	Type        EntryType `json:"type" bson:"type"`
	Description string    `json:"description" bson:"description"`
	Category    string    `json:"category" bson:"category"`
	Amount      float64   `json:"amount" bson:"amount"`
	Date        time.Time `json:"date" bson:"date"`
	Status      string    `json:"status" bson:"status"`
	ClientID    string    `json:"client_id,omitempty" bson:"client_id,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
