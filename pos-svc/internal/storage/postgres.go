package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"orderdesk/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// foreignKeyViolation is the Postgres SQLSTATE for a failed REFERENCES check.
const foreignKeyViolation = "23503"

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == foreignKeyViolation
}

// Restaurants

const restaurantColumns = `id, user_id, name, slug, plan, created_at`

func scanRestaurant(row *sql.Row) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	var plan string
	if err := row.Scan(&rest.ID, &rest.OwnerID, &rest.Name, &rest.Slug, &plan, &rest.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRestaurantNotFound
		}
		return nil, err
	}
	rest.Plan = domain.Plan(plan)
	return &rest, nil
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error) {
	return scanRestaurant(r.DB.QueryRowContext(ctx,
		`SELECT `+restaurantColumns+` FROM restaurants WHERE id = $1`, id))
}

func (r *PostgresRepository) GetRestaurantBySlug(ctx context.Context, slug string) (*domain.Restaurant, error) {
	return scanRestaurant(r.DB.QueryRowContext(ctx,
		`SELECT `+restaurantColumns+` FROM restaurants WHERE slug = $1`, slug))
}

// GetRestaurantByOwner returns the owner's oldest restaurant.
func (r *PostgresRepository) GetRestaurantByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Restaurant, error) {
	return scanRestaurant(r.DB.QueryRowContext(ctx, `
		SELECT `+restaurantColumns+`
		FROM restaurants
		WHERE user_id = $1
		ORDER BY created_at
		LIMIT 1`, ownerID))
}

// Menus

func (r *PostgresRepository) ListMenus(ctx context.Context, restaurantID uuid.UUID, activeOnly bool) ([]domain.Menu, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT m.id, m.restaurant_id, m.name, m.is_active, m.created_at,
		       mi.id, mi.name, mi.price, mi.is_available, mi.created_at
		FROM menus m
		LEFT JOIN menu_items mi ON mi.menu_id = m.id AND (NOT $2 OR mi.is_available)
		WHERE m.restaurant_id = $1 AND (NOT $2 OR m.is_active)
		ORDER BY m.created_at DESC, m.id, mi.created_at, mi.id`, restaurantID, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menus := []domain.Menu{}
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			menu        domain.Menu
			itemID      uuid.NullUUID
			itemName    sql.NullString
			itemPrice   decimal.NullDecimal
			itemAvail   sql.NullBool
			itemCreated sql.NullTime
		)
		if err := rows.Scan(&menu.ID, &menu.RestaurantID, &menu.Name, &menu.IsActive, &menu.CreatedAt,
			&itemID, &itemName, &itemPrice, &itemAvail, &itemCreated); err != nil {
			return nil, err
		}

		i, seen := index[menu.ID]
		if !seen {
			menu.Items = []domain.MenuItem{}
			menus = append(menus, menu)
			i = len(menus) - 1
			index[menu.ID] = i
		}
		if itemID.Valid {
			menus[i].Items = append(menus[i].Items, domain.MenuItem{
				ID:          itemID.UUID,
				MenuID:      menu.ID,
				Name:        itemName.String,
				Price:       itemPrice.Decimal,
				IsAvailable: itemAvail.Bool,
				CreatedAt:   itemCreated.Time,
			})
		}
	}
	return menus, rows.Err()
}

// GetMenuItemRestaurant resolves the restaurant a menu item belongs to.
func (r *PostgresRepository) GetMenuItemRestaurant(ctx context.Context, itemID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.DB.QueryRowContext(ctx, `
		SELECT m.restaurant_id
		FROM menu_items mi
		JOIN menus m ON m.id = mi.menu_id
		WHERE mi.id = $1`, itemID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, domain.ErrMenuItemNotFound
	}
	return id, err
}

// CreateMenu inserts the menu unless the restaurant already holds limit
// menus; zero means unlimited. The restaurant row stays locked until commit
// so concurrent creates are counted one after another.
func (r *PostgresRepository) CreateMenu(ctx context.Context, menu *domain.Menu, limit int) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var locked uuid.UUID
	err = tx.QueryRowContext(ctx, `SELECT id FROM restaurants WHERE id = $1 FOR UPDATE`, menu.RestaurantID).Scan(&locked)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrRestaurantNotFound
	}
	if err != nil {
		return err
	}

	if limit > 0 {
		var n int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM menus WHERE restaurant_id = $1`, menu.RestaurantID).Scan(&n); err != nil {
			return err
		}
		if n >= limit {
			return domain.ErrMenuLimitReached
		}
	}

	err = tx.QueryRowContext(ctx,
		"INSERT INTO menus (restaurant_id, name, is_active) VALUES ($1, $2, $3) RETURNING id, created_at",
		menu.RestaurantID, menu.Name, menu.IsActive).
		Scan(&menu.ID, &menu.CreatedAt)
	if isForeignKeyViolation(err) {
		return domain.ErrRestaurantNotFound
	}
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (r *PostgresRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	err := r.DB.QueryRowContext(ctx,
		"INSERT INTO menu_items (menu_id, name, price, is_available) VALUES ($1, $2, $3, $4) RETURNING id, created_at",
		item.MenuID, item.Name, item.Price, item.IsAvailable).
		Scan(&item.ID, &item.CreatedAt)
	if isForeignKeyViolation(err) {
		return domain.ErrMenuNotFound
	}
	return err
}

func (r *PostgresRepository) UpdateMenuItem(ctx context.Context, id uuid.UUID, patch domain.MenuItemPatch) (*domain.MenuItem, error) {
	var name, price, available any
	if patch.Name != nil {
		name = *patch.Name
	}
	if patch.Price != nil {
		price = patch.Price.String()
	}
	if patch.IsAvailable != nil {
		available = *patch.IsAvailable
	}

	var item domain.MenuItem
	err := r.DB.QueryRowContext(ctx, `
		UPDATE menu_items
		SET name = COALESCE($2::text, name),
		    price = COALESCE($3::numeric, price),
		    is_available = COALESCE($4::boolean, is_available)
		WHERE id = $1
		RETURNING id, menu_id, name, price, is_available, created_at`,
		id, name, price, available).
		Scan(&item.ID, &item.MenuID, &item.Name, &item.Price, &item.IsAvailable, &item.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrMenuItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) DeleteMenuItem(ctx context.Context, id uuid.UUID) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM menu_items WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// GetMenuItemNames maps menu item IDs to their current names. Deleted items
// are simply absent from the result.
func (r *PostgresRepository) GetMenuItemNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name FROM menu_items WHERE id = ANY($1::uuid[])`, pq.Array(keys))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, rows.Err()
}

// Orders

const orderSelect = `
	SELECT o.id, o.restaurant_id, o.total, o.status, o.created_at,
	       oi.id, oi.menu_item_id, oi.quantity, oi.position,
	       mi.name, mi.price
	FROM orders o
	LEFT JOIN order_items oi ON oi.order_id = o.id
	LEFT JOIN menu_items mi ON mi.id = oi.menu_item_id`

// ListOrders returns every order of the restaurant, newest first, each with
// its lines in checkout order and the menu item joined in.
func (r *PostgresRepository) ListOrders(ctx context.Context, restaurantID uuid.UUID) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, orderSelect+`
	WHERE o.restaurant_id = $1
	ORDER BY o.created_at DESC, o.id, oi.position`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, orderSelect+`
	WHERE o.id = $1
	ORDER BY oi.position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, domain.ErrOrderNotFound
	}
	return &orders[0], nil
}

func scanOrders(rows *sql.Rows) ([]domain.Order, error) {
	orders := []domain.Order{}
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			order      domain.Order
			status     string
			itemID     uuid.NullUUID
			menuItemID uuid.NullUUID
			quantity   sql.NullInt64
			position   sql.NullInt64
			itemName   sql.NullString
			itemPrice  decimal.NullDecimal
		)
		if err := rows.Scan(&order.ID, &order.RestaurantID, &order.Total, &status, &order.CreatedAt,
			&itemID, &menuItemID, &quantity, &position, &itemName, &itemPrice); err != nil {
			return nil, err
		}

		i, seen := index[order.ID]
		if !seen {
			order.Status = domain.Status(status)
			order.Items = []domain.OrderItem{}
			orders = append(orders, order)
			i = len(orders) - 1
			index[order.ID] = i
		}
		if !itemID.Valid {
			continue
		}

		item := domain.OrderItem{
			ID:         itemID.UUID,
			OrderID:    order.ID,
			MenuItemID: menuItemID.UUID,
			Quantity:   int(quantity.Int64),
			Position:   int(position.Int64),
		}
		if menuItemID.Valid && itemName.Valid {
			item.MenuItem = &domain.MenuItemRef{Name: itemName.String, Price: itemPrice.Decimal}
		}
		orders[i].Items = append(orders[i].Items, item)
	}
	return orders, rows.Err()
}

// CreateOrder writes the order and all of its lines in one transaction.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	if len(order.Items) == 0 {
		return domain.ErrEmptyOrder
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO orders (restaurant_id, total, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, order.RestaurantID, order.Total, string(order.Status)).Scan(&order.ID, &order.CreatedAt); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrRestaurantNotFound
		}
		return err
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO order_items (order_id, menu_item_id, quantity, position) VALUES ")
	args := make([]any, 0, len(order.Items)*4)
	for i, item := range order.Items {
		if i > 0 {
			sb.WriteString(", ")
		}
		n := i * 4
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4)
		args = append(args, order.ID, item.MenuItemID, item.Quantity, item.Position)
	}
	sb.WriteString(" RETURNING id, position")

	rows, err := tx.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrMenuItemNotFound
		}
		return err
	}
	ids := make(map[int]uuid.UUID, len(order.Items))
	for rows.Next() {
		var id uuid.UUID
		var position int
		if err := rows.Scan(&id, &position); err != nil {
			rows.Close()
			return err
		}
		ids[position] = id
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		if isForeignKeyViolation(err) {
			return domain.ErrMenuItemNotFound
		}
		return err
	}
	rows.Close()

	if err := tx.Commit(); err != nil {
		return err
	}

	for i := range order.Items {
		order.Items[i].OrderID = order.ID
		order.Items[i].ID = ids[order.Items[i].Position]
	}
	return nil
}

// SetOrderStatus writes the new status and returns the updated order header.
func (r *PostgresRepository) SetOrderStatus(ctx context.Context, id uuid.UUID, status domain.Status) (*domain.Order, error) {
	var order domain.Order
	var st string
	err := r.DB.QueryRowContext(ctx, `
		UPDATE orders SET status = $1
		WHERE id = $2
		RETURNING id, restaurant_id, total, status, created_at`, string(status), id).
		Scan(&order.ID, &order.RestaurantID, &order.Total, &st, &order.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	order.Status = domain.Status(st)
	return &order, nil
}

// Analytics

// TopOrderedItems ranks menu items by quantity ordered since the given time.
// A zero since covers all time.
func (r *PostgresRepository) TopOrderedItems(ctx context.Context, restaurantID uuid.UUID, since time.Time, limit int) ([]domain.ItemPopularity, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT mi.id, mi.name, SUM(oi.quantity) AS qty
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE o.restaurant_id = $1 AND o.created_at >= $2
		GROUP BY mi.id, mi.name
		ORDER BY qty DESC, mi.name
		LIMIT $3`, restaurantID, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.ItemPopularity{}
	for rows.Next() {
		var item domain.ItemPopularity
		if err := rows.Scan(&item.MenuItemID, &item.Name, &item.Score); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
