package storage

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"

	"github.com/altamira-networks/expense-server/internal/config"
	"github.com/altamira-networks/expense-server/internal/storage/sqlconfig"
)

type Storage struct {
	DB       *sql.DB
	Expenses sqlconfig.IExpensesTable
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}

	expenses := sqlconfig.NewExpensesTable(db)

	return &Storage{
		DB:       db,
		Expenses: &expenses,
	}
}

// Write opens a database transaction and returns a Writer bound to it.
// The caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}
