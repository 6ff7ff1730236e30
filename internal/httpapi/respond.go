package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	catalogapp "github.com/dwikikusuma/shoping-mobile/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/shoping-mobile/internal/checkout/app"
	orderapp "github.com/dwikikusuma/shoping-mobile/internal/order/app"
	"github.com/dwikikusuma/shoping-mobile/internal/session"
)

var (
	errBadRequest   = errors.New("bad request")
	errLineNotFound = errors.New("cart line not found")
)

type errorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", slog.Any("err", err))
	}
}

func respondError(w http.ResponseWriter, log *slog.Logger, err error) {
	status, code, msg := httpStatusFromErr(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed", slog.Any("err", err))
	}
	respondJSON(w, status, errorResponse{Error: err.Error(), Code: code, Message: msg})
}

// httpStatusFromErr maps domain errors to (status, code, user-facing message).
func httpStatusFromErr(err error) (int, string, string) {
	switch {
	case errors.Is(err, checkoutapp.ErrMissingDeliveryOption):
		return http.StatusUnprocessableEntity, "MISSING_DELIVERY_OPTION", checkoutapp.MsgMissingDeliveryOption
	case errors.Is(err, checkoutapp.ErrSessionSubmitted):
		return http.StatusConflict, "SESSION_SUBMITTED", "This checkout was already submitted."
	case errors.Is(err, session.ErrNoCheckout), errors.Is(err, session.ErrNoPayment):
		return http.StatusConflict, "FAILED_PRECONDITION", ""
	case errors.Is(err, catalogapp.ErrNotFound),
		errors.Is(err, orderapp.ErrNotFound),
		errors.Is(err, session.ErrNotFound),
		errors.Is(err, errLineNotFound):
		return http.StatusNotFound, "NOT_FOUND", ""
	case errors.Is(err, catalogapp.ErrInvalidInput),
		errors.Is(err, checkoutapp.ErrUnknownDeliveryTier),
		errors.Is(err, orderapp.ErrInvalidOrder),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest, "INVALID_ARGUMENT", ""
	default:
		return http.StatusInternalServerError, "INTERNAL", ""
	}
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.Join(errBadRequest, err)
	}
	return nil
}
