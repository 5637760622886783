package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"orderdesk/internal/board"
	"orderdesk/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "posctl", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"menu", "order", "board", "accept", "complete", "status", "popular", "qrcode"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestInvalidFormat(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "xml", "menu", "corner-cafe"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestParseItem(t *testing.T) {
	id := uuid.New()

	sel, err := parseItem(id.String())
	require.NoError(t, err)
	assert.Equal(t, 1, sel.quantity)

	sel, err = parseItem(id.String() + "=3")
	require.NoError(t, err)
	assert.Equal(t, id, sel.id)
	assert.Equal(t, 3, sel.quantity)

	_, err = parseItem(id.String() + "=0")
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = parseItem("latte")
	assert.Error(t, err)
}

// fakePOS serves just enough of pos-svc for the commands under test.
type fakePOS struct {
	mu         sync.Mutex
	t          *testing.T
	restaurant domain.Restaurant
	menus      []domain.Menu
	orders     []domain.Order

	placed   []map[string]any
	idemKeys []string
	statuses []string
}

func (f *fakePOS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	slugPath := "/api/public/restaurants/" + f.restaurant.Slug
	switch {
	case r.Method == http.MethodGet && r.URL.Path == slugPath:
		json.NewEncoder(w).Encode(f.restaurant)
	case r.Method == http.MethodGet && r.URL.Path == slugPath+"/menus":
		json.NewEncoder(w).Encode(f.menus)
	case r.Method == http.MethodPost && r.URL.Path == slugPath+"/orders":
		var body map[string]any
		assert.NoError(f.t, json.NewDecoder(r.Body).Decode(&body))
		f.placed = append(f.placed, body)
		f.idemKeys = append(f.idemKeys, r.Header.Get("Idempotency-Key"))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.Order{
			ID: uuid.New(), RestaurantID: f.restaurant.ID, Status: domain.StatusNew,
			Total: decimal.RequireFromString("25.00"),
		})
	case r.Method == http.MethodGet && r.URL.Path == "/api/restaurants/"+f.restaurant.ID.String()+"/orders":
		json.NewEncoder(w).Encode(f.orders)
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/complete"):
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "cannot move from new to completed", "code": "illegal_transition"})
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/accept"):
		f.statuses = append(f.statuses, "accepted")
		json.NewEncoder(w).Encode(domain.Order{ID: uuid.MustParse("1a2b3c4d-0000-0000-0000-000000000000"), Status: domain.StatusAccepted})
	case r.Method == http.MethodPut && strings.HasSuffix(r.URL.Path, "/status"):
		var body map[string]string
		assert.NoError(f.t, json.NewDecoder(r.Body).Decode(&body))
		f.statuses = append(f.statuses, body["status"])
		for i := range f.orders {
			if "/api/orders/"+f.orders[i].ID.String()+"/status" == r.URL.Path {
				f.orders[i].Status = domain.Status(body["status"])
				json.NewEncoder(w).Encode(f.orders[i])
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "order not found", "code": "order_not_found"})
	case r.Method == http.MethodGet && r.URL.Path == slugPath+"/qrcode":
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("\x89PNG"))
	default:
		http.NotFound(w, r)
	}
}

func newFakePOS(t *testing.T) (*fakePOS, *httptest.Server) {
	restaurantID := uuid.New()
	f := &fakePOS{
		t:          t,
		restaurant: domain.Restaurant{ID: restaurantID, Name: "Corner Cafe", Slug: "corner-cafe", Plan: domain.PlanStarter},
	}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return f, srv
}

func execute(t *testing.T, srv *httptest.Server, args ...string) (string, error) {
	t.Helper()
	return executeWithInput(t, srv, "", args...)
}

func executeWithInput(t *testing.T, srv *httptest.Server, input string, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := newRootCommand(&RootOptions{HTTPClient: srv.Client()})
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--url", srv.URL}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func TestMenuCommand(t *testing.T) {
	f, srv := newFakePOS(t)
	f.menus = []domain.Menu{{
		ID: uuid.New(), Name: "Lunch", IsActive: true,
		Items: []domain.MenuItem{
			{ID: uuid.New(), Name: "Burger", Price: decimal.RequireFromString("12.5"), IsAvailable: true},
			{ID: uuid.New(), Name: "Soup", Price: decimal.RequireFromString("6"), IsAvailable: false},
		},
	}}

	out, err := execute(t, srv, "menu", "corner-cafe")

	require.NoError(t, err)
	assert.Contains(t, out, "Lunch")
	assert.Contains(t, out, "12.50")
	assert.Contains(t, out, "Soup")
	assert.Contains(t, out, "(unavailable)")
}

func TestOrderCommand(t *testing.T) {
	burgerID := uuid.New()
	soupID := uuid.New()

	setup := func(t *testing.T) (*fakePOS, *httptest.Server) {
		f, srv := newFakePOS(t)
		f.menus = []domain.Menu{{
			ID: uuid.New(), Name: "Lunch", IsActive: true,
			Items: []domain.MenuItem{
				{ID: burgerID, Name: "Burger", Price: decimal.RequireFromString("12.50"), IsAvailable: true},
				{ID: soupID, Name: "Soup", Price: decimal.RequireFromString("6"), IsAvailable: false},
			},
		}}
		return f, srv
	}

	t.Run("places_priced_cart", func(t *testing.T) {
		f, srv := setup(t)

		out, err := execute(t, srv, "order", "corner-cafe", "--item", burgerID.String()+"=2", "--idempotency-key", "k-1")

		require.NoError(t, err)
		require.Len(t, f.placed, 1)
		items := f.placed[0]["items"].([]any)
		require.Len(t, items, 1)
		line := items[0].(map[string]any)
		assert.Equal(t, burgerID.String(), line["menu_item_id"])
		assert.Equal(t, float64(2), line["quantity"])
		assert.Equal(t, "12.50", line["price"])
		assert.Equal(t, []string{"k-1"}, f.idemKeys)
		assert.Contains(t, out, "25.00")
	})

	t.Run("generates_idempotency_key", func(t *testing.T) {
		f, srv := setup(t)

		_, err := execute(t, srv, "order", "corner-cafe", "--item", burgerID.String())

		require.NoError(t, err)
		require.Len(t, f.idemKeys, 1)
		_, err = uuid.Parse(f.idemKeys[0])
		assert.NoError(t, err)
	})

	t.Run("unavailable_item", func(t *testing.T) {
		f, srv := setup(t)

		_, err := execute(t, srv, "order", "corner-cafe", "--item", soupID.String())

		assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)
		assert.Empty(t, f.placed)
	})

	t.Run("no_items", func(t *testing.T) {
		f, srv := setup(t)

		_, err := execute(t, srv, "order", "corner-cafe")

		assert.ErrorIs(t, err, domain.ErrEmptyOrder)
		assert.Empty(t, f.placed)
	})
}

func TestBoardCommandOnce(t *testing.T) {
	f, srv := newFakePOS(t)
	now := time.Now()
	f.orders = []domain.Order{
		{ID: uuid.New(), Status: domain.StatusNew, CreatedAt: now, Total: decimal.NewFromInt(25),
			Items: []domain.OrderItem{{Quantity: 2, MenuItem: &domain.MenuItemRef{Name: "Burger", Price: decimal.RequireFromString("12.5")}}}},
		{ID: uuid.New(), Status: domain.StatusAccepted, CreatedAt: now, Items: []domain.OrderItem{{Quantity: 1}}},
		{ID: uuid.New(), Status: domain.StatusCompleted, CreatedAt: now},
	}

	out, err := execute(t, srv, "board", "--restaurant", f.restaurant.ID.String(), "--once")

	require.NoError(t, err)
	assert.Contains(t, out, "NEW (1)")
	assert.Contains(t, out, "ACCEPTED (1)")
	assert.Contains(t, out, "COMPLETED (1)")
	assert.Contains(t, out, "2x Burger")
	assert.Contains(t, out, "1x Unknown item")
}

func TestBoardCommandOnceJSON(t *testing.T) {
	f, srv := newFakePOS(t)
	f.orders = []domain.Order{{ID: uuid.New(), Status: domain.StatusNew}}

	out, err := execute(t, srv, "--format", "json", "board", "-r", f.restaurant.ID.String(), "--once")

	require.NoError(t, err)
	var view boardView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, f.restaurant.ID, view.RestaurantID)
	assert.Len(t, view.New, 1)
	assert.Empty(t, view.Accepted)
	assert.Empty(t, view.Completed)
}

func TestBoardCommandOperatorInput(t *testing.T) {
	f, srv := newFakePOS(t)
	first := domain.Order{ID: uuid.New(), Status: domain.StatusNew, CreatedAt: time.Now()}
	second := domain.Order{ID: uuid.New(), Status: domain.StatusNew, CreatedAt: time.Now()}
	f.orders = []domain.Order{first, second}

	input := strings.Join([]string{
		"a #" + strings.ToLower(first.ShortID()),
		"c " + second.ID.String(),
		"a nosuchorder",
		"r",
		"q",
	}, "\n") + "\n"

	out, err := executeWithInput(t, srv, input,
		"board", "--restaurant", f.restaurant.ID.String(), "--interval", "1h")

	require.NoError(t, err)
	assert.Contains(t, out, "NEW (2)")
	assert.Contains(t, out, "order #"+first.ShortID()+" is accepted")
	assert.Contains(t, out, "ACCEPTED (1)", "the board is reprinted right after the transition")
	assert.Contains(t, out, "order #"+second.ShortID()+" is completed")
	assert.Contains(t, out, "order nosuchorder: order not found")

	f.mu.Lock()
	defer f.mu.Unlock()
	assert.Equal(t, []string{"accepted", "completed"}, f.statuses)
	assert.Equal(t, domain.StatusAccepted, f.orders[0].Status)
	assert.Equal(t, domain.StatusCompleted, f.orders[1].Status)
}

func TestResolveOrder(t *testing.T) {
	order := domain.Order{ID: uuid.MustParse("1a2b3c4d-1111-2222-3333-444444444444")}
	snap := board.Snapshot{Orders: []domain.Order{order}}

	id, err := resolveOrder(snap, "#1a2b3c4d")
	require.NoError(t, err)
	assert.Equal(t, order.ID, id)

	id, err = resolveOrder(snap, order.ID.String())
	require.NoError(t, err)
	assert.Equal(t, order.ID, id)

	_, err = resolveOrder(snap, "FFFFFFFF")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestTransitionCommands(t *testing.T) {
	_, srv := newFakePOS(t)

	out, err := execute(t, srv, "accept", uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, "order #1A2B3C4D is accepted\n", out)

	_, err = execute(t, srv, "complete", uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)

	_, err = execute(t, srv, "accept", "not-a-uuid")
	assert.Error(t, err)

	_, err = execute(t, srv, "status", uuid.NewString(), "cancelled")
	assert.ErrorIs(t, err, domain.ErrUnknownStatus)
}

func TestQRCodeCommand(t *testing.T) {
	_, srv := newFakePOS(t)
	path := filepath.Join(t.TempDir(), "qr.png")

	_, err := execute(t, srv, "qrcode", "corner-cafe", "-o", path)

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), data)
}
