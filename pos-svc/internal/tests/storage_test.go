package tests

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"orderdesk/internal/domain"
	"orderdesk/pos-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStorageTestDB(t *testing.T) (*storage.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return storage.NewPostgresRepository(db), mock
}

func setupRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client, mr
}

var orderColumns = []string{
	"id", "restaurant_id", "total", "status", "created_at",
	"id", "menu_item_id", "quantity", "position", "name", "price",
}

func TestPostgres_ListOrders_GroupsLinesAndKeepsDeletedItems(t *testing.T) {
	repo, mock := setupStorageTestDB(t)

	restaurantID := uuid.New()
	newer, older := uuid.New(), uuid.New()
	pizza := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows(orderColumns).
		AddRow(newer.String(), restaurantID.String(), "25.00", "new", now,
			uuid.NewString(), pizza.String(), int64(2), int64(0), "Pizza", "10.00").
		AddRow(newer.String(), restaurantID.String(), "25.00", "new", now,
			uuid.NewString(), nil, int64(1), int64(1), nil, nil).
		AddRow(older.String(), restaurantID.String(), "8.00", "completed", now.Add(-time.Hour),
			nil, nil, nil, nil, nil, nil)

	mock.ExpectQuery("FROM orders o").WithArgs(restaurantID).WillReturnRows(rows)

	orders, err := repo.ListOrders(context.Background(), restaurantID)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	first := orders[0]
	assert.Equal(t, newer, first.ID)
	assert.Equal(t, domain.StatusNew, first.Status)
	assert.True(t, first.Total.Equal(decimal.RequireFromString("25")))
	require.Len(t, first.Items, 2)
	assert.Equal(t, "Pizza", first.Items[0].DisplayName())
	assert.True(t, first.Items[0].LineTotal().Equal(decimal.NewFromInt(20)))
	assert.Nil(t, first.Items[1].MenuItem)
	assert.Equal(t, "Unknown item", first.Items[1].DisplayName())

	assert.Equal(t, domain.StatusCompleted, orders[1].Status)
	assert.Empty(t, orders[1].Items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_CreateOrder_SingleTransaction(t *testing.T) {
	repo, mock := setupStorageTestDB(t)

	restaurantID := uuid.New()
	orderID := uuid.New()
	itemA, itemB := uuid.New(), uuid.New()
	lineA, lineB := uuid.New(), uuid.New()

	order, err := domain.NewOrder(restaurantID, []domain.LineItem{
		{MenuItemID: itemA, Quantity: 2, Price: decimal.RequireFromString("10.00")},
		{MenuItemID: itemB, Quantity: 1, Price: decimal.RequireFromString("5.00")},
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(restaurantID, sqlmock.AnyArg(), "new").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(orderID.String(), time.Now()))
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(orderID, itemA, 2, 0, orderID, itemB, 1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "position"}).
			AddRow(lineA.String(), int64(0)).
			AddRow(lineB.String(), int64(1)))
	mock.ExpectCommit()

	require.NoError(t, repo.CreateOrder(context.Background(), order))

	assert.Equal(t, orderID, order.ID)
	assert.True(t, order.Total.Equal(decimal.NewFromInt(25)))
	require.Len(t, order.Items, 2)
	assert.Equal(t, lineA, order.Items[0].ID)
	assert.Equal(t, orderID, order.Items[1].OrderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_CreateOrder_UnknownMenuItemRollsBack(t *testing.T) {
	repo, mock := setupStorageTestDB(t)

	order, err := domain.NewOrder(uuid.New(), []domain.LineItem{
		{MenuItemID: uuid.New(), Quantity: 1, Price: decimal.NewFromInt(3)},
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(uuid.NewString(), time.Now()))
	mock.ExpectQuery("INSERT INTO order_items").
		WillReturnError(&pq.Error{Code: "23503"})
	mock.ExpectRollback()

	err = repo.CreateOrder(context.Background(), order)
	assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_SetOrderStatus(t *testing.T) {
	repo, mock := setupStorageTestDB(t)
	ctx := context.Background()

	orderID := uuid.New()
	mock.ExpectQuery("UPDATE orders SET status").
		WithArgs("accepted", orderID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "total", "status", "created_at"}).
			AddRow(orderID.String(), uuid.NewString(), "12.50", "accepted", time.Now()))

	order, err := repo.SetOrderStatus(ctx, orderID, domain.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, order.Status)

	missing := uuid.New()
	mock.ExpectQuery("UPDATE orders SET status").
		WithArgs("completed", missing).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "total", "status", "created_at"}))

	_, err = repo.SetOrderStatus(ctx, missing, domain.StatusCompleted)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_GetRestaurantBySlug_NotFound(t *testing.T) {
	repo, mock := setupStorageTestDB(t)

	mock.ExpectQuery("FROM restaurants WHERE slug").
		WithArgs("nowhere").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "slug", "plan", "created_at"}))

	_, err := repo.GetRestaurantBySlug(context.Background(), "nowhere")
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)
}

func TestPostgres_UpdateMenuItem_PartialPatch(t *testing.T) {
	repo, mock := setupStorageTestDB(t)

	itemID, menuID := uuid.New(), uuid.New()
	name := "Margherita"

	mock.ExpectQuery("UPDATE menu_items").
		WithArgs(itemID, "Margherita", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "menu_id", "name", "price", "is_available", "created_at"}).
			AddRow(itemID.String(), menuID.String(), "Margherita", "9.50", true, time.Now()))

	item, err := repo.UpdateMenuItem(context.Background(), itemID, domain.MenuItemPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Margherita", item.Name)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("9.5")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_CreateMenu_UnknownRestaurant(t *testing.T) {
	repo, mock := setupStorageTestDB(t)
	restaurantID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM restaurants WHERE id = \\$1 FOR UPDATE").
		WithArgs(restaurantID).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.CreateMenu(context.Background(), &domain.Menu{RestaurantID: restaurantID, Name: "Lunch", IsActive: true}, 1)
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_CreateMenu_LimitCountedUnderLock(t *testing.T) {
	restaurantID := uuid.New()

	tests := []struct {
		name          string
		limit         int
		existing      int
		expectedError error
	}{
		{name: "under_limit", limit: 1, existing: 0},
		{name: "at_limit", limit: 1, existing: 1, expectedError: domain.ErrMenuLimitReached},
		{name: "unlimited", limit: 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := setupStorageTestDB(t)

			mock.ExpectBegin()
			mock.ExpectQuery("SELECT id FROM restaurants WHERE id = \\$1 FOR UPDATE").
				WithArgs(restaurantID).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(restaurantID.String()))
			if testCase.limit > 0 {
				mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM menus").
					WithArgs(restaurantID).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(testCase.existing))
			}
			if testCase.expectedError == nil {
				mock.ExpectQuery("INSERT INTO menus").
					WithArgs(restaurantID, "Lunch", true).
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(uuid.NewString(), time.Now()))
				mock.ExpectCommit()
			} else {
				mock.ExpectRollback()
			}

			menu := &domain.Menu{RestaurantID: restaurantID, Name: "Lunch", IsActive: true}
			err := repo.CreateMenu(context.Background(), menu, testCase.limit)

			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
			} else {
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, menu.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgres_ListMenus_NestsItems(t *testing.T) {
	repo, mock := setupStorageTestDB(t)

	restaurantID, menuID := uuid.New(), uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "restaurant_id", "name", "is_active", "created_at", "id", "name", "price", "is_available", "created_at"}).
		AddRow(menuID.String(), restaurantID.String(), "Dinner", true, now, uuid.NewString(), "Soup", "4.00", true, now).
		AddRow(menuID.String(), restaurantID.String(), "Dinner", true, now, uuid.NewString(), "Salad", "6.00", true, now).
		AddRow(uuid.NewString(), restaurantID.String(), "Empty", true, now, nil, nil, nil, nil, nil)

	mock.ExpectQuery("FROM menus m").WithArgs(restaurantID, true).WillReturnRows(rows)

	menus, err := repo.ListMenus(context.Background(), restaurantID, true)
	require.NoError(t, err)
	require.Len(t, menus, 2)
	assert.Len(t, menus[0].Items, 2)
	assert.Equal(t, "Salad", menus[0].Items[1].Name)
	assert.NotNil(t, menus[1].Items)
	assert.Empty(t, menus[1].Items)
}

func TestSnapshotCache_RoundTripAndExpiry(t *testing.T) {
	client, mr := setupRedis(t)
	cache := storage.NewSnapshotCache(client, 5*time.Second)
	ctx := context.Background()
	restaurantID := uuid.New()

	_, ok, err := cache.Get(ctx, restaurantID)
	require.NoError(t, err)
	assert.False(t, ok)

	orders := []domain.Order{{ID: uuid.New(), RestaurantID: restaurantID, Status: domain.StatusNew, Total: decimal.NewFromInt(7)}}
	require.NoError(t, cache.Set(ctx, restaurantID, orders))

	got, ok, err := cache.Get(ctx, restaurantID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, orders[0].ID, got[0].ID)

	mr.FastForward(6 * time.Second)
	_, ok, err = cache.Get(ctx, restaurantID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, restaurantID, orders))
	require.NoError(t, cache.Invalidate(ctx, restaurantID))
	_, ok, _ = cache.Get(ctx, restaurantID)
	assert.False(t, ok)
}

func TestIdempotencyStore_ClaimOnce(t *testing.T) {
	client, _ := setupRedis(t)
	store := storage.NewIdempotencyStore(client, time.Hour)
	ctx := context.Background()

	key := store.OrderMarkerKey(uuid.New(), "checkout-1")

	first, err := store.Claim(ctx, key)
	require.NoError(t, err)
	assert.True(t, first)

	second, err := store.Claim(ctx, key)
	require.NoError(t, err)
	assert.False(t, second)

	require.NoError(t, store.Release(ctx, key))
	again, err := store.Claim(ctx, key)
	require.NoError(t, err)
	assert.True(t, again)
}

func TestPopularityStore_RecordAndTop(t *testing.T) {
	client, mr := setupRedis(t)
	store := storage.NewPopularityStore(client)
	ctx := context.Background()

	restaurantID := uuid.New()
	pizza, soup := uuid.New(), uuid.New()
	today := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	yesterday := today.Add(-24 * time.Hour)

	require.NoError(t, store.RecordOrder(ctx, restaurantID, []domain.EventItem{{MenuItemID: soup, Quantity: 5}}, yesterday))
	require.NoError(t, store.RecordOrder(ctx, restaurantID, []domain.EventItem{
		{MenuItemID: pizza, Quantity: 2},
		{MenuItemID: soup, Quantity: 1},
	}, today))

	top, err := store.Top(ctx, restaurantID, "today", today, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, pizza, top[0].MenuItemID)
	assert.Equal(t, 2.0, top[0].Score)

	all, err := store.Top(ctx, restaurantID, "all", today, 10)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, soup, all[0].MenuItemID)
	assert.Equal(t, 6.0, all[0].Score)

	assert.True(t, mr.TTL("analytics:daily:2026-03-14:"+restaurantID.String()) > 0)
}
