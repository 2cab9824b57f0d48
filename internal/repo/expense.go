package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/iterary/backend/internal/domain"
)

// ExpenseRepo defines the persistence operations for Expenses and their splits.
type ExpenseRepo interface {
	// Create inserts an expense together with its split rows in a single
	// transaction: a failed split insert rolls back the expense row too.
	// The persisted record includes the splits.
	Create(ctx context.Context, expense domain.Expense) (domain.Expense, error)

	// GetByID retrieves an expense with its splits, scoped to the given tripID.
	// Returns domain.ErrNotFound if no expense with that ID exists under that trip.
	GetByID(ctx context.Context, tripID, expenseID uuid.UUID) (domain.Expense, error)

	// ListByTrip returns all expenses for a trip ordered by spent_at descending,
	// splits included.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Expense, error)

	// Delete removes an expense (splits cascade), scoped to the given tripID.
	// Returns domain.ErrNotFound if no expense with that ID exists under that trip.
	Delete(ctx context.Context, tripID, expenseID uuid.UUID) error

	// Balances returns the per-member net position for a trip: total paid,
	// total owed across splits, and the difference.
	Balances(ctx context.Context, tripID uuid.UUID) ([]domain.Balance, error)
}

// pgExpenseRepo is the Postgres implementation of ExpenseRepo.
type pgExpenseRepo struct {
	db db
}

// NewExpenseRepo constructs an ExpenseRepo backed by the provided db connection.
func NewExpenseRepo(db db) ExpenseRepo {
	return &pgExpenseRepo{db: db}
}

const expenseColumns = `id, trip_id, paid_by, amount, currency, category,
	payment_method, description, spent_at, created_at, updated_at`

// Create runs the expense insert and all split inserts inside one transaction
// (a savepoint when the repo is already backed by a pgx.Tx), so a rejected
// split never leaves an orphan expense row behind.
func (r *pgExpenseRepo) Create(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	var created domain.Expense
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		created, err = insertExpense(ctx, tx, e)
		return err
	})
	if err != nil {
		return domain.Expense{}, fmt.Errorf("repo.ExpenseRepo.Create: %w", err)
	}
	return created, nil
}

func insertExpense(ctx context.Context, tx pgx.Tx, e domain.Expense) (domain.Expense, error) {
	const q = `
		INSERT INTO expenses (trip_id, paid_by, amount, currency, category,
			payment_method, description, spent_at)
		VALUES (@trip_id, @paid_by, @amount, @currency, @category,
			@payment_method, @description, @spent_at)
		RETURNING ` + expenseColumns

	args := pgx.NamedArgs{
		"trip_id":        e.TripID,
		"paid_by":        e.PaidBy,
		"amount":         e.Amount,
		"currency":       e.Currency,
		"category":       string(e.Category),
		"payment_method": string(e.PaymentMethod),
		"description":    e.Description,
		"spent_at":       e.SpentAt,
	}

	created, err := scanExpense(tx.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Expense{}, err
	}

	for _, split := range e.Splits {
		const sq = `
			INSERT INTO expense_splits (expense_id, user_id, amount)
			VALUES (@expense_id, @user_id, @amount)
			RETURNING id, expense_id, user_id, amount, settled`

		srow := tx.QueryRow(ctx, sq, pgx.NamedArgs{
			"expense_id": created.ID,
			"user_id":    split.UserID,
			"amount":     split.Amount,
		})
		persisted, err := scanSplit(srow)
		if err != nil {
			return domain.Expense{}, fmt.Errorf("split: %w", err)
		}
		created.Splits = append(created.Splits, persisted)
	}

	return created, nil
}

func (r *pgExpenseRepo) GetByID(ctx context.Context, tripID, expenseID uuid.UUID) (domain.Expense, error) {
	const q = `SELECT ` + expenseColumns + ` FROM expenses WHERE id = @id AND trip_id = @trip_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": expenseID, "trip_id": tripID})
	expense, err := scanExpense(row)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("repo.ExpenseRepo.GetByID: %w", err)
	}

	splits, err := r.splitsFor(ctx, expense.ID)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("repo.ExpenseRepo.GetByID: %w", err)
	}
	expense.Splits = splits
	return expense, nil
}

func (r *pgExpenseRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Expense, error) {
	const q = `SELECT ` + expenseColumns + ` FROM expenses WHERE trip_id = @trip_id ORDER BY spent_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ExpenseRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ExpenseRepo.ListByTrip: scan: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ExpenseRepo.ListByTrip: rows: %w", err)
	}

	for i := range expenses {
		splits, err := r.splitsFor(ctx, expenses[i].ID)
		if err != nil {
			return nil, fmt.Errorf("repo.ExpenseRepo.ListByTrip: %w", err)
		}
		expenses[i].Splits = splits
	}
	return expenses, nil
}

func (r *pgExpenseRepo) Delete(ctx context.Context, tripID, expenseID uuid.UUID) error {
	const q = `DELETE FROM expenses WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": expenseID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.ExpenseRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ExpenseRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// Balances aggregates payments and owed splits per user in one query.
// A FULL JOIN covers members who only paid or who only owe.
func (r *pgExpenseRepo) Balances(ctx context.Context, tripID uuid.UUID) ([]domain.Balance, error) {
	const q = `
		SELECT COALESCE(paid.user_id, owed.user_id) AS user_id,
		       COALESCE(paid.total, 0)              AS paid,
		       COALESCE(owed.total, 0)              AS owed
		FROM (
			SELECT paid_by AS user_id, sum(amount) AS total
			FROM expenses WHERE trip_id = @trip_id
			GROUP BY paid_by
		) paid
		FULL JOIN (
			SELECT s.user_id, sum(s.amount) AS total
			FROM expense_splits s
			JOIN expenses e ON e.id = s.expense_id
			WHERE e.trip_id = @trip_id
			GROUP BY s.user_id
		) owed ON owed.user_id = paid.user_id
		ORDER BY user_id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ExpenseRepo.Balances: %w", err)
	}
	defer rows.Close()

	balances := []domain.Balance{}
	for rows.Next() {
		var b domain.Balance
		if err := rows.Scan(&b.UserID, &b.Paid, &b.Owed); err != nil {
			return nil, fmt.Errorf("repo.ExpenseRepo.Balances: scan: %w", err)
		}
		b.Net = b.Paid - b.Owed
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ExpenseRepo.Balances: rows: %w", err)
	}
	return balances, nil
}

func (r *pgExpenseRepo) splitsFor(ctx context.Context, expenseID uuid.UUID) ([]domain.ExpenseSplit, error) {
	const q = `
		SELECT id, expense_id, user_id, amount, settled
		FROM expense_splits
		WHERE expense_id = @expense_id
		ORDER BY user_id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"expense_id": expenseID})
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	splits := []domain.ExpenseSplit{}
	for rows.Next() {
		s, err := scanSplit(rows)
		if err != nil {
			return nil, err
		}
		splits = append(splits, s)
	}
	return splits, rows.Err()
}

// scanExpense maps a single database row into a domain.Expense (without splits).
func scanExpense(s scanner) (domain.Expense, error) {
	var (
		e                domain.Expense
		category, method string
	)
	err := s.Scan(&e.ID, &e.TripID, &e.PaidBy, &e.Amount, &e.Currency,
		&category, &method, &e.Description, &e.SpentAt, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Expense{}, domain.ErrNotFound
		}
		return domain.Expense{}, err
	}
	e.Category = domain.ExpenseCategory(category)
	e.PaymentMethod = domain.PaymentMethod(method)
	return e, nil
}

// scanSplit maps a single database row into a domain.ExpenseSplit.
func scanSplit(s scanner) (domain.ExpenseSplit, error) {
	var split domain.ExpenseSplit
	err := s.Scan(&split.ID, &split.ExpenseID, &split.UserID, &split.Amount, &split.Settled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ExpenseSplit{}, domain.ErrNotFound
		}
		return domain.ExpenseSplit{}, err
	}
	return split, nil
}
