package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"orderdesk/internal/domain"
	"orderdesk/internal/logger"
	"orderdesk/pos-svc/internal/service"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// OwnerHeader carries the authenticated owner's user id, set by whatever
// sits in front of the service.
const OwnerHeader = "X-Owner-ID"

// IdempotencyHeader lets a customer retry a checkout without placing the
// order twice.
const IdempotencyHeader = "Idempotency-Key"

type Handler struct {
	Orders      service.OrderServiceInterface
	Restaurants service.RestaurantServiceInterface
	Menus       service.MenuServiceInterface
	Analytics   service.AnalyticsServiceInterface
	Limiter     *ClientLimiter
	Log         *logger.Logger
}

func NewHandler(orders service.OrderServiceInterface, restaurants service.RestaurantServiceInterface,
	menus service.MenuServiceInterface, analytics service.AnalyticsServiceInterface,
	limiter *ClientLimiter, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Discard()
	}
	return &Handler{
		Orders:      orders,
		Restaurants: restaurants,
		Menus:       menus,
		Analytics:   analytics,
		Limiter:     limiter,
		Log:         log,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/plans", h.getPlans).Methods("GET")

	r.HandleFunc("/api/public/restaurants/{slug}", h.getPublicRestaurant).Methods("GET")
	r.HandleFunc("/api/public/restaurants/{slug}/menus", h.getPublicMenus).Methods("GET")
	r.HandleFunc("/api/public/restaurants/{slug}/qrcode", h.getRestaurantQRCode).Methods("GET")
	r.HandleFunc("/api/public/restaurants/{slug}/orders", h.Limiter.Wrap(h.placePublicOrder)).Methods("POST")

	r.HandleFunc("/api/owner/restaurant", h.getOwnerRestaurant).Methods("GET")

	r.HandleFunc("/api/restaurants/{restaurantId}/menus", h.getMenus).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/menus", h.createMenu).Methods("POST")
	r.HandleFunc("/api/menus/{menuId}/items", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/menu-items/{itemId}", h.updateMenuItem).Methods("PATCH")
	r.HandleFunc("/api/menu-items/{itemId}", h.deleteMenuItem).Methods("DELETE")

	r.HandleFunc("/api/restaurants/{restaurantId}/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/board", h.getBoard).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/analytics/popular", h.getPopularItems).Methods("GET")

	r.HandleFunc("/api/orders/{orderId}/accept", h.acceptOrder).Methods("POST")
	r.HandleFunc("/api/orders/{orderId}/complete", h.completeOrder).Methods("POST")
	r.HandleFunc("/api/orders/{orderId}/status", h.setOrderStatus).Methods("PUT")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "pos-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getPlans(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Restaurants.Plans())
}

// Public surface

func (h *Handler) getPublicRestaurant(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Restaurants.BySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) getPublicMenus(w http.ResponseWriter, r *http.Request) {
	menus, err := h.Menus.PublicMenus(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, menus)
}

func (h *Handler) getRestaurantQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Restaurants.QRCode(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) placePublicOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := decode(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	key := strings.TrimSpace(r.Header.Get(IdempotencyHeader))
	order, err := h.Orders.PlaceOrderBySlug(r.Context(), mux.Vars(r)["slug"], req.LineItems(), key)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

// Owner surface

func (h *Handler) getOwnerRestaurant(w http.ResponseWriter, r *http.Request) {
	ownerID, err := uuid.Parse(r.Header.Get(OwnerHeader))
	if err != nil {
		badRequest(w, OwnerHeader+" header must be a user id")
		return
	}
	rest, err := h.Restaurants.ByOwner(r.Context(), ownerID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) getMenus(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := pathUUID(r, "restaurantId")
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	menus, err := h.Menus.ListMenus(r.Context(), restaurantID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, menus)
}

func (h *Handler) createMenu(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := pathUUID(r, "restaurantId")
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	var req CreateMenuRequest
	if err := decode(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	menu, err := h.Menus.CreateMenu(r.Context(), restaurantID, req.Name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, menu)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	menuID, err := pathUUID(r, "menuId")
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	var req CreateMenuItemRequest
	if err := decode(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	item, err := h.Menus.CreateMenuItem(r.Context(), menuID, req.Name, req.Price)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathUUID(r, "itemId")
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	var patch domain.MenuItemPatch
	if err := decode(w, r, &patch); err != nil {
		badRequest(w, err.Error())
		return
	}
	item, err := h.Menus.UpdateMenuItem(r.Context(), itemID, patch)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathUUID(r, "itemId")
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	if err := h.Menus.DeleteMenuItem(r.Context(), itemID); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Orders

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := pathUUID(r, "restaurantId")
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	orders, err := h.Orders.ListOrders(r.Context(), restaurantID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := pathUUID(r, "restaurantId")
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	var req PlaceOrderRequest
	if err := decode(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	order, err := h.Orders.PlaceOrder(r.Context(), restaurantID, req.LineItems())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

// BoardResponse is the POS board view of a restaurant.
type BoardResponse struct {
	RestaurantID uuid.UUID      `json:"restaurant_id"`
	New          []domain.Order `json:"new"`
	Accepted     []domain.Order `json:"accepted"`
	Completed    []domain.Order `json:"completed"`
	FetchedAt    time.Time      `json:"fetched_at"`
}

func (h *Handler) getBoard(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := pathUUID(r, "restaurantId")
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	buckets, err := h.Orders.Board(r.Context(), restaurantID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, BoardResponse{
		RestaurantID: restaurantID,
		New:          buckets.New,
		Accepted:     buckets.Accepted,
		Completed:    buckets.Completed,
		FetchedAt:    time.Now().UTC(),
	})
}

func (h *Handler) getPopularItems(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := pathUUID(r, "restaurantId")
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	items, err := h.Analytics.PopularItems(r.Context(), restaurantID, r.URL.Query().Get("period"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) acceptOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Orders.Accept)
}

func (h *Handler) completeOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Orders.Complete)
}

func (h *Handler) setOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req SetStatusRequest
	if err := decode(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.transition(w, r, func(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
		return h.Orders.Transition(ctx, orderID, status)
	})
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, apply func(context.Context, uuid.UUID) (*domain.Order, error)) {
	orderID, err := pathUUID(r, "orderId")
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	order, err := apply(r.Context(), orderID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}
