package storage

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS restaurants (
		id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id    UUID NOT NULL,
		name       TEXT NOT NULL,
		slug       TEXT NOT NULL UNIQUE,
		plan       TEXT NOT NULL DEFAULT 'starter' CHECK (plan IN ('starter', 'growth', 'pro')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS menus (
		id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		restaurant_id UUID NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		name          TEXT NOT NULL,
		is_active     BOOLEAN NOT NULL DEFAULT true,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		menu_id      UUID NOT NULL REFERENCES menus(id) ON DELETE CASCADE,
		name         TEXT NOT NULL,
		price        NUMERIC(10, 2) NOT NULL CHECK (price >= 0),
		is_available BOOLEAN NOT NULL DEFAULT true,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		restaurant_id UUID NOT NULL REFERENCES restaurants(id),
		total         NUMERIC(10, 2) NOT NULL CHECK (total >= 0),
		status        TEXT NOT NULL DEFAULT 'new' CHECK (status IN ('new', 'accepted', 'completed')),
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		order_id     UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		menu_item_id UUID REFERENCES menu_items(id) ON DELETE SET NULL,
		quantity     INTEGER NOT NULL CHECK (quantity > 0),
		position     INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS orders_restaurant_created_idx ON orders (restaurant_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS order_items_order_idx ON order_items (order_id, position)`,
	`CREATE INDEX IF NOT EXISTS restaurants_user_idx ON restaurants (user_id)`,
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func firstLine(stmt string) string {
	for i, c := range stmt {
		if c == '\n' {
			return stmt[:i]
		}
	}
	return stmt
}
