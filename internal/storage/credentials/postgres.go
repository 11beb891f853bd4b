package credentials

import (
	"context"
	"database/sql"
	"errors"
)

// Postgres stores credentials in a single table:
//
//	CREATE TABLE users (
//	  name     TEXT PRIMARY KEY,
//	  password TEXT NOT NULL
//	);
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

func (p *Postgres) Exists(ctx context.Context, name string) (bool, error) {
	var one int
	err := p.db.QueryRowContext(ctx,
		`SELECT 1 FROM users WHERE name = $1`, name).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (p *Postgres) Save(ctx context.Context, name, password string) error {
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO users (name, password) VALUES ($1, $2)`, name, password)
	return err
}
