package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/iterary/backend/internal/domain"
	"github.com/iterary/backend/internal/repo"
)

// splitTolerance absorbs float rounding when comparing split totals against
// the expense amount. Amounts are currency values with two decimal places.
const splitTolerance = 0.005

// ExpenseService implements business logic for shared expenses.
// Its main rule: split amounts must sum to the expense amount.
type ExpenseService struct {
	trips    repo.TripRepo
	expenses repo.ExpenseRepo
}

// NewExpenseService constructs an ExpenseService.
func NewExpenseService(trips repo.TripRepo, expenses repo.ExpenseRepo) *ExpenseService {
	return &ExpenseService{trips: trips, expenses: expenses}
}

// Create validates and persists an expense with its splits.
// An expense with no splits is valid — it is simply not shared.
func (s *ExpenseService) Create(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	applyExpenseDefaults(&expense)
	if err := validateExpense(expense); err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Create: %w", err)
	}

	if _, err := s.trips.GetByID(ctx, expense.TripID); err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Create: %w", err)
	}

	created, err := s.expenses.Create(ctx, expense)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns one expense with its splits, scoped to its trip.
func (s *ExpenseService) GetByID(ctx context.Context, tripID, expenseID uuid.UUID) (domain.Expense, error) {
	expense, err := s.expenses.GetByID(ctx, tripID, expenseID)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.GetByID: %w", err)
	}
	return expense, nil
}

// ListByTrip returns all expenses for a trip, newest spend first.
func (s *ExpenseService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Expense, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.ExpenseService.ListByTrip: %w", err)
	}

	expenses, err := s.expenses.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExpenseService.ListByTrip: %w", err)
	}
	return expenses, nil
}

// Delete removes an expense scoped to its trip.
func (s *ExpenseService) Delete(ctx context.Context, tripID, expenseID uuid.UUID) error {
	if err := s.expenses.Delete(ctx, tripID, expenseID); err != nil {
		return fmt.Errorf("service.ExpenseService.Delete: %w", err)
	}
	return nil
}

// Balances returns each member's net position on the trip.
func (s *ExpenseService) Balances(ctx context.Context, tripID uuid.UUID) ([]domain.Balance, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.ExpenseService.Balances: %w", err)
	}

	balances, err := s.expenses.Balances(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExpenseService.Balances: %w", err)
	}
	return balances, nil
}

func applyExpenseDefaults(e *domain.Expense) {
	if e.Currency == "" {
		e.Currency = "AUD"
	}
	if e.Category == "" {
		e.Category = domain.ExpenseOther
	}
	if e.PaymentMethod == "" {
		e.PaymentMethod = domain.PayCard
	}
	if e.SpentAt.IsZero() {
		e.SpentAt = time.Now().UTC()
	}
}

func validateExpense(e domain.Expense) error {
	if e.PaidBy == uuid.Nil {
		return fmt.Errorf("%w: paid_by is required", domain.ErrValidation)
	}
	if e.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if !e.Category.Valid() {
		return fmt.Errorf("%w: invalid category %q", domain.ErrValidation, e.Category)
	}
	if !e.PaymentMethod.Valid() {
		return fmt.Errorf("%w: invalid payment method %q", domain.ErrValidation, e.PaymentMethod)
	}

	if len(e.Splits) == 0 {
		return nil
	}
	for _, split := range e.Splits {
		if split.UserID == uuid.Nil {
			return fmt.Errorf("%w: split user_id is required", domain.ErrValidation)
		}
		if split.Amount < 0 {
			return fmt.Errorf("%w: split amounts must not be negative", domain.ErrValidation)
		}
	}
	total := lo.SumBy(e.Splits, func(s domain.ExpenseSplit) float64 { return s.Amount })
	if math.Abs(total-e.Amount) > splitTolerance {
		return fmt.Errorf("%w: split amounts must sum to the expense amount", domain.ErrValidation)
	}
	return nil
}
