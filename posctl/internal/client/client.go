// Package client talks to pos-svc over HTTP. It backs the posctl commands
// and satisfies the cart and board collaborator interfaces, so a remote cart
// or board behaves like a local one.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"orderdesk/internal/board"
	"orderdesk/internal/cart"
	"orderdesk/internal/domain"

	"github.com/google/uuid"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// APIError is a non-2xx answer from pos-svc. When the body carries a known
// code, the matching domain sentinel is reachable through errors.Is.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	sentinel   error
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("pos-svc returned %d", e.StatusCode)
	}
	return fmt.Sprintf("pos-svc returned %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.sentinel
}

type Client struct {
	baseURL string
	http    HTTPClient
}

func New(baseURL string, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

var (
	_ cart.OrderPlacer   = (*Client)(nil)
	_ board.Source       = (*Client)(nil)
	_ board.StatusSetter = (*Client)(nil)
)

type lineItemBody struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	Price      string `json:"price"`
}

type placeOrderBody struct {
	Items []lineItemBody `json:"items"`
}

func newPlaceOrderBody(items []domain.LineItem) placeOrderBody {
	body := placeOrderBody{Items: make([]lineItemBody, 0, len(items))}
	for _, it := range items {
		body.Items = append(body.Items, lineItemBody{
			MenuItemID: it.MenuItemID.String(),
			Quantity:   it.Quantity,
			Price:      it.Price.StringFixed(2),
		})
	}
	return body
}

func (c *Client) Restaurant(ctx context.Context, slug string) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	if err := c.do(ctx, http.MethodGet, "/api/public/restaurants/"+url.PathEscape(slug), nil, nil, &rest); err != nil {
		return nil, err
	}
	return &rest, nil
}

// PublicMenus returns the active menus of the restaurant behind slug.
func (c *Client) PublicMenus(ctx context.Context, slug string) ([]domain.Menu, error) {
	var menus []domain.Menu
	if err := c.do(ctx, http.MethodGet, "/api/public/restaurants/"+url.PathEscape(slug)+"/menus", nil, nil, &menus); err != nil {
		return nil, err
	}
	return menus, nil
}

// PlaceOrder places an order on the staff surface.
func (c *Client) PlaceOrder(ctx context.Context, restaurantID uuid.UUID, items []domain.LineItem) (*domain.Order, error) {
	var order domain.Order
	path := "/api/restaurants/" + restaurantID.String() + "/orders"
	if err := c.do(ctx, http.MethodPost, path, nil, newPlaceOrderBody(items), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// PlacePublicOrder places an order the way a customer's phone does. Retrying
// with the same key never creates a second order.
func (c *Client) PlacePublicOrder(ctx context.Context, slug string, items []domain.LineItem, idempotencyKey string) (*domain.Order, error) {
	var order domain.Order
	header := http.Header{}
	if idempotencyKey != "" {
		header.Set("Idempotency-Key", idempotencyKey)
	}
	path := "/api/public/restaurants/" + url.PathEscape(slug) + "/orders"
	if err := c.do(ctx, http.MethodPost, path, header, newPlaceOrderBody(items), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) ListOrders(ctx context.Context, restaurantID uuid.UUID) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, http.MethodGet, "/api/restaurants/"+restaurantID.String()+"/orders", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) SetStatus(ctx context.Context, orderID uuid.UUID, status domain.Status) (*domain.Order, error) {
	var order domain.Order
	body := map[string]string{"status": string(status)}
	if err := c.do(ctx, http.MethodPut, "/api/orders/"+orderID.String()+"/status", nil, body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) Accept(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	return c.postTransition(ctx, orderID, "accept")
}

func (c *Client) Complete(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	return c.postTransition(ctx, orderID, "complete")
}

func (c *Client) postTransition(ctx context.Context, orderID uuid.UUID, action string) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, http.MethodPost, "/api/orders/"+orderID.String()+"/"+action, nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) PopularItems(ctx context.Context, restaurantID uuid.UUID, period string) ([]domain.ItemPopularity, error) {
	path := "/api/restaurants/" + restaurantID.String() + "/analytics/popular"
	if period != "" {
		path += "?period=" + url.QueryEscape(period)
	}
	var items []domain.ItemPopularity
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// QRCode returns the PNG that links to the restaurant's public order page.
func (c *Client) QRCode(ctx context.Context, slug string) ([]byte, error) {
	resp, err := c.send(ctx, http.MethodGet, "/api/public/restaurants/"+url.PathEscape(slug)+"/qrcode", nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

func (c *Client) do(ctx context.Context, method, path string, header http.Header, body, out any) error {
	resp, err := c.send(ctx, method, path, header, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// send performs the request and turns non-2xx answers into *APIError. The
// caller owns the body of a successful response.
func (c *Client) send(ctx context.Context, method, path string, header http.Header, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	defer resp.Body.Close()
	return nil, decodeError(resp)
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(raw, &body); err != nil {
		apiErr.Message = strings.TrimSpace(string(raw))
		return apiErr
	}
	apiErr.Code = body.Code
	apiErr.Message = body.Error
	if sentinel, ok := domain.ErrorForCode(body.Code); ok {
		apiErr.sentinel = sentinel
	}
	return apiErr
}
