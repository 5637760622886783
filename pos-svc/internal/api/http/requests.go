package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"orderdesk/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

type LineItemRequest struct {
	MenuItemID string          `json:"menu_item_id" validate:"required,uuid"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

type PlaceOrderRequest struct {
	Items []LineItemRequest `json:"items" validate:"dive"`
}

func (req PlaceOrderRequest) LineItems() []domain.LineItem {
	items := make([]domain.LineItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.LineItem{
			MenuItemID: uuid.MustParse(it.MenuItemID),
			Quantity:   it.Quantity,
			Price:      it.Price,
		})
	}
	return items
}

type CreateMenuRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

type CreateMenuItemRequest struct {
	Name  string          `json:"name" validate:"required,max=120"`
	Price decimal.Decimal `json:"price"`
}

type SetStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// decode reads a JSON body into dst and runs struct validation on it.
func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return validate.Struct(dst)
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}
