package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExpenseCategory classifies a shared expense.
type ExpenseCategory string

const (
	ExpenseFood          ExpenseCategory = "food"
	ExpenseTransport     ExpenseCategory = "transport"
	ExpenseAccommodation ExpenseCategory = "accommodation"
	ExpenseShopping      ExpenseCategory = "shopping"
	ExpenseEntertainment ExpenseCategory = "entertainment"
	ExpenseActivities    ExpenseCategory = "activities"
	ExpenseDrinks        ExpenseCategory = "drinks"
	ExpenseTips          ExpenseCategory = "tips"
	ExpenseTaxes         ExpenseCategory = "taxes"
	ExpenseInsurance     ExpenseCategory = "insurance"
	ExpenseVisa          ExpenseCategory = "visa"
	ExpenseHealthcare    ExpenseCategory = "healthcare"
	ExpenseEmergency     ExpenseCategory = "emergency"
	ExpenseOther         ExpenseCategory = "other"
)

// Valid reports whether c is one of the defined expense categories.
func (c ExpenseCategory) Valid() bool {
	switch c {
	case ExpenseFood, ExpenseTransport, ExpenseAccommodation, ExpenseShopping,
		ExpenseEntertainment, ExpenseActivities, ExpenseDrinks, ExpenseTips,
		ExpenseTaxes, ExpenseInsurance, ExpenseVisa, ExpenseHealthcare,
		ExpenseEmergency, ExpenseOther:
		return true
	}
	return false
}

// PaymentMethod records how an expense was paid.
type PaymentMethod string

const (
	PayCash         PaymentMethod = "cash"
	PayCard         PaymentMethod = "card"
	PayCreditCard   PaymentMethod = "credit_card"
	PayDebitCard    PaymentMethod = "debit_card"
	PayPayPal       PaymentMethod = "paypal"
	PayVenmo        PaymentMethod = "venmo"
	PayBankTransfer PaymentMethod = "bank_transfer"
	PayOther        PaymentMethod = "other"
)

// Valid reports whether m is one of the defined payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PayCash, PayCard, PayCreditCard, PayDebitCard, PayPayPal, PayVenmo,
		PayBankTransfer, PayOther:
		return true
	}
	return false
}

// Expense is a cost incurred on a trip, paid by one member and split across
// several. Splits must sum to Amount — the service layer enforces this.
type Expense struct {
	ID            uuid.UUID       `json:"id"`
	TripID        uuid.UUID       `json:"trip_id"`
	PaidBy        uuid.UUID       `json:"paid_by"`
	Amount        float64         `json:"amount"`
	Currency      string          `json:"currency"`
	Category      ExpenseCategory `json:"category"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Description   string          `json:"description,omitempty"`
	SpentAt       time.Time       `json:"spent_at"`
	Splits        []ExpenseSplit  `json:"splits,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ExpenseSplit is one member's share of an expense.
type ExpenseSplit struct {
	ID        uuid.UUID `json:"id"`
	ExpenseID uuid.UUID `json:"expense_id"`
	UserID    uuid.UUID `json:"user_id"`
	Amount    float64   `json:"amount"`
	Settled   bool      `json:"settled"`
}

// Balance is one member's net position on a trip: what they paid minus what
// they owe across all expense splits. Positive means the group owes them.
type Balance struct {
	UserID uuid.UUID `json:"user_id"`
	Paid   float64   `json:"paid"`
	Owed   float64   `json:"owed"`
	Net    float64   `json:"net"`
}
