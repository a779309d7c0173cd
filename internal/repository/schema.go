package repository

import (
	"context"
	"fmt"
)

// usersSchema is the explicit table definition for the users table.
// It is deliberately decoupled from model.User: the model describes the
// in-memory record, this describes the persisted layout and constraints.
const usersSchema = `
CREATE TABLE IF NOT EXISTS users (
    id         BIGSERIAL PRIMARY KEY,
    username   VARCHAR(50)  NOT NULL UNIQUE,
    email      VARCHAR(120) NOT NULL UNIQUE,
    created_at TIMESTAMPTZ  NOT NULL DEFAULT now()
)`

// Migrate applies the schema idempotently. Safe to run at every startup.
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, usersSchema); err != nil {
		return fmt.Errorf("failed to apply users schema: %w", err)
	}
	return nil
}
