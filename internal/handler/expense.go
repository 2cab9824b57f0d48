package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/iterary/backend/internal/domain"
)

// ExpenseRequest is the body of POST /api/trips/{tripID}/expenses.
type ExpenseRequest struct {
	PaidBy        uuid.UUID             `json:"paid_by"`
	Amount        float64               `json:"amount"`
	Currency      string                `json:"currency,omitempty"`
	Category      string                `json:"category,omitempty"`
	PaymentMethod string                `json:"payment_method,omitempty"`
	Description   string                `json:"description,omitempty"`
	SpentAt       *string               `json:"spent_at,omitempty"`
	Splits        []ExpenseSplitRequest `json:"splits"`
}

// ExpenseSplitRequest is one member's share inside an ExpenseRequest.
type ExpenseSplitRequest struct {
	UserID uuid.UUID `json:"user_id"`
	Amount float64   `json:"amount"`
}

// CreateExpense handles POST /api/trips/{tripID}/expenses.
func (s *Server) CreateExpense(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}

	var req ExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "request body is required")
		return
	}

	spentAt, err := parseDate(req.SpentAt)
	if err != nil {
		badRequest(w, "invalid spent_at")
		return
	}

	expense := domain.Expense{
		TripID:        tripID,
		PaidBy:        req.PaidBy,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Category:      domain.ExpenseCategory(req.Category),
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		Description:   req.Description,
	}
	if spentAt != nil {
		expense.SpentAt = *spentAt
	}
	for _, split := range req.Splits {
		expense.Splits = append(expense.Splits, domain.ExpenseSplit{
			UserID: split.UserID,
			Amount: split.Amount,
		})
	}

	created, err := s.expenses.Create(r.Context(), expense)
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListExpenses handles GET /api/trips/{tripID}/expenses.
func (s *Server) ListExpenses(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}

	expenses, err := s.expenses.ListByTrip(r.Context(), tripID)
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, expenses)
}

// GetBalances handles GET /api/trips/{tripID}/expenses/balances.
func (s *Server) GetBalances(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}

	balances, err := s.expenses.Balances(r.Context(), tripID)
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, balances)
}

// GetExpense handles GET /api/trips/{tripID}/expenses/{expenseID}.
func (s *Server) GetExpense(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}
	expenseID, err := pathUUID(r, "expenseID")
	if err != nil {
		badRequest(w, "invalid expense id")
		return
	}

	expense, err := s.expenses.GetByID(r.Context(), tripID, expenseID)
	if err != nil {
		writeError(w, err, "expense not found")
		return
	}

	writeJSON(w, http.StatusOK, expense)
}

// DeleteExpense handles DELETE /api/trips/{tripID}/expenses/{expenseID}.
func (s *Server) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}
	expenseID, err := pathUUID(r, "expenseID")
	if err != nil {
		badRequest(w, "invalid expense id")
		return
	}

	if err := s.expenses.Delete(r.Context(), tripID, expenseID); err != nil {
		writeError(w, err, "expense not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
