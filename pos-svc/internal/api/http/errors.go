package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"orderdesk/internal/domain"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func statusFor(err error) int {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrNegativePrice),
		errors.Is(err, domain.ErrInvalidMenuName),
		errors.Is(err, domain.ErrInvalidMenuItem),
		errors.Is(err, domain.ErrEmptyPatch),
		errors.Is(err, domain.ErrUnknownStatus),
		errors.Is(err, domain.ErrUnknownPlan),
		errors.Is(err, domain.ErrUnknownPeriod):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrRestaurantNotFound),
		errors.Is(err, domain.ErrMenuNotFound),
		errors.Is(err, domain.ErrMenuItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrIllegalTransition),
		errors.Is(err, domain.ErrDuplicateOrder),
		errors.Is(err, domain.ErrMenuLimitReached),
		errors.Is(err, domain.ErrPriceChanged):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	resp := ErrorResponse{Error: err.Error(), Code: domain.ErrorCode(err)}

	if resp.Code == "" {
		resp.Code = domain.CodeInvalidRequest
	}
	if status == http.StatusInternalServerError {
		h.Log.Error("request_failed", "unhandled error", err,
			slog.String("method", r.Method), slog.String("path", r.URL.Path))
		resp = ErrorResponse{Error: "internal server error", Code: domain.CodeInternal}
	}
	writeJSON(w, status, resp)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg, Code: domain.CodeInvalidRequest})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
