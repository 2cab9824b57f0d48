package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iterary/backend/internal/domain"
	"github.com/iterary/backend/internal/handler"
)

// mockExpenseServicer is a test double for handler.ExpenseServicer.
type mockExpenseServicer struct {
	create     func(ctx context.Context, expense domain.Expense) (domain.Expense, error)
	getByID    func(ctx context.Context, tripID, expenseID uuid.UUID) (domain.Expense, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Expense, error)
	delete     func(ctx context.Context, tripID, expenseID uuid.UUID) error
	balances   func(ctx context.Context, tripID uuid.UUID) ([]domain.Balance, error)
}

func (m *mockExpenseServicer) Create(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	return m.create(ctx, e)
}
func (m *mockExpenseServicer) GetByID(ctx context.Context, tripID, expenseID uuid.UUID) (domain.Expense, error) {
	return m.getByID(ctx, tripID, expenseID)
}
func (m *mockExpenseServicer) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Expense, error) {
	return m.listByTrip(ctx, tripID)
}
func (m *mockExpenseServicer) Delete(ctx context.Context, tripID, expenseID uuid.UUID) error {
	return m.delete(ctx, tripID, expenseID)
}
func (m *mockExpenseServicer) Balances(ctx context.Context, tripID uuid.UUID) ([]domain.Balance, error) {
	return m.balances(ctx, tripID)
}

// compile-time check: mockExpenseServicer must satisfy handler.ExpenseServicer.
var _ handler.ExpenseServicer = (*mockExpenseServicer)(nil)

func newExpenseHandler(svc handler.ExpenseServicer) http.Handler {
	return handler.NewServer(nil, nil, nil, nil, nil, svc, nil).Routes()
}

// ---- POST /api/trips/{tripID}/expenses --------------------------------------

func TestCreateExpense_201(t *testing.T) {
	tripID := uuid.New()
	payer := uuid.New()
	svc := &mockExpenseServicer{
		create: func(_ context.Context, e domain.Expense) (domain.Expense, error) {
			assert.Equal(t, tripID, e.TripID)
			assert.Equal(t, payer, e.PaidBy)
			assert.InDelta(t, 60.0, e.Amount, 0.001)
			require.Len(t, e.Splits, 2)
			e.ID = uuid.New()
			return e, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"paid_by":  payer,
		"amount":   60.0,
		"category": "food",
		"splits": []map[string]any{
			{"user_id": payer, "amount": 30.0},
			{"user_id": uuid.New(), "amount": 30.0},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/trips/"+tripID.String()+"/expenses", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newExpenseHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateExpense_422_SplitMismatch(t *testing.T) {
	svc := &mockExpenseServicer{
		create: func(_ context.Context, _ domain.Expense) (domain.Expense, error) {
			return domain.Expense{}, fmt.Errorf("%w: splits must sum to the expense amount", domain.ErrValidation)
		},
	}

	body := jsonBody(t, map[string]any{
		"paid_by": uuid.New(),
		"amount":  60.0,
		"splits": []map[string]any{
			{"user_id": uuid.New(), "amount": 10.0},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/trips/"+uuid.New().String()+"/expenses", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newExpenseHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "splits must sum to the expense amount", resp.Error.Message)
}

// ---- GET /api/trips/{tripID}/expenses/balances ------------------------------

func TestGetBalances_200(t *testing.T) {
	tripID := uuid.New()
	alice, bob := uuid.New(), uuid.New()
	svc := &mockExpenseServicer{
		balances: func(_ context.Context, id uuid.UUID) ([]domain.Balance, error) {
			assert.Equal(t, tripID, id)
			return []domain.Balance{
				{UserID: alice, Paid: 60, Owed: 30, Net: 30},
				{UserID: bob, Paid: 0, Owed: 30, Net: -30},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/trips/"+tripID.String()+"/expenses/balances", nil)
	rec := httptest.NewRecorder()

	newExpenseHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []domain.Balance
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.InDelta(t, 30.0, resp[0].Net, 0.001)
	assert.InDelta(t, -30.0, resp[1].Net, 0.001)
}

// ---- GET /api/trips/{tripID}/expenses/{expenseID} ---------------------------

func TestGetExpense_404(t *testing.T) {
	svc := &mockExpenseServicer{
		getByID: func(_ context.Context, _, _ uuid.UUID) (domain.Expense, error) {
			return domain.Expense{}, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet,
		"/api/trips/"+uuid.New().String()+"/expenses/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()

	newExpenseHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- DELETE /api/trips/{tripID}/expenses/{expenseID} ------------------------

func TestDeleteExpense_204(t *testing.T) {
	svc := &mockExpenseServicer{
		delete: func(_ context.Context, _, _ uuid.UUID) error { return nil },
	}

	req := httptest.NewRequest(http.MethodDelete,
		"/api/trips/"+uuid.New().String()+"/expenses/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()

	newExpenseHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
