package sqlconfig

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"

	"github.com/altamira-networks/expense-server/internal/categorizer"
)

var _ IExpensesTable = (*ExpensesTable)(nil)

const expenseColumns = "id, merchant, normalized_merchant, amount, category, description, tags, expense_date, created_at"

type ExpensesTable struct {
	db *sql.DB
}

func NewExpensesTable(db *sql.DB) ExpensesTable {
	return ExpensesTable{db: db}
}

// FindByID retrieves an expense by primary key.
func (t *ExpensesTable) FindByID(ctx context.Context, id uuid.UUID) (*Expense, error) {
	row := t.db.QueryRowContext(ctx,
		"SELECT "+expenseColumns+" FROM expenses WHERE id = $1", id)
	return scanExpense(row)
}

// Insert creates a new expense and returns its generated ID.
func (t *ExpensesTable) Insert(ctx context.Context, create *ExpenseCreate) (uuid.UUID, error) {
	return insertExpense(ctx, t.db, create)
}

// List returns expenses matching the filter, newest first. Nil filter returns
// all. When a limit is set, one extra row is fetched so callers can detect a
// next page.
func (t *ExpensesTable) List(ctx context.Context, filter *ExpenseFilter) ([]*Expense, error) {
	var conditions []string
	var args []interface{}

	arg := func(value interface{}) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter != nil {
		if filter.Category != nil {
			conditions = append(conditions, "category = "+arg(string(*filter.Category)))
		}
		if filter.From != nil {
			conditions = append(conditions, "expense_date >= "+arg(*filter.From))
		}
		if filter.To != nil {
			conditions = append(conditions, "expense_date <= "+arg(*filter.To))
		}
		if filter.MaxCreationTime != nil {
			conditions = append(conditions, "created_at <= "+arg(*filter.MaxCreationTime))
		}
	}

	query := "SELECT " + expenseColumns + " FROM expenses"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"
	if filter != nil && filter.Limit > 0 {
		query += " LIMIT " + arg(filter.Limit+1)
	}
	if filter != nil && filter.Offset > 0 {
		query += " OFFSET " + arg(filter.Offset)
	}

	rows, err := t.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanExpenses(rows)
}

// ListSince returns all expenses with an expense date at or after since,
// oldest first. This is the analytics read path.
func (t *ExpensesTable) ListSince(ctx context.Context, since time.Time) ([]*Expense, error) {
	rows, err := t.db.QueryContext(ctx,
		"SELECT "+expenseColumns+" FROM expenses WHERE expense_date >= $1 ORDER BY expense_date ASC, id ASC",
		since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanExpenses(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanExpense(row rowScanner) (*Expense, error) {
	var expense Expense
	var category string
	err := row.Scan(
		&expense.ID,
		&expense.Merchant,
		&expense.NormalizedMerchant,
		&expense.Amount,
		&category,
		&expense.Description,
		pq.Array(&expense.Tags),
		&expense.ExpenseDate,
		&expense.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	expense.Category = categorizer.ParseCategory(category)
	return &expense, nil
}

func scanExpenses(rows *sql.Rows) ([]*Expense, error) {
	var result []*Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, expense)
	}
	return result, rows.Err()
}

type execer interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func insertExpense(ctx context.Context, exec execer, create *ExpenseCreate) (uuid.UUID, error) {
	expenseDate := create.ExpenseDate
	if expenseDate.IsZero() {
		expenseDate = time.Now()
	}
	tags := create.Tags
	if tags == nil {
		tags = []string{}
	}

	var id uuid.UUID
	err := exec.QueryRowContext(ctx,
		`INSERT INTO expenses (merchant, normalized_merchant, amount, category, description, tags, expense_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		create.Merchant,
		create.NormalizedMerchant,
		create.Amount,
		string(create.Category),
		create.Description,
		pq.Array(tags),
		expenseDate,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
