package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-engine/internal/biddingerrors"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the identity middleware
const (
	CallerIDKey   = "caller_id"
	CallerNameKey = "caller_name"
)

// Error codes returned in the "code" field of error responses
const (
	CodeInvalidRequest    = "invalid_request"
	CodeAuctionClosed     = "auction_closed"
	CodeInvalidSelection  = "invalid_selection"
	CodeInvalidAmount     = "invalid_amount"
	CodeInvalidAuction    = "invalid_auction"
	CodeInvalidDecision   = "invalid_decision"
	CodeNotFound          = "not_found"
	CodeUnauthorized      = "unauthorized"
	CodeForbidden         = "forbidden"
	CodeAlreadyAccepted   = "already_accepted"
	CodeInvalidTransition = "invalid_transition"
	CodeAuctionActive     = "auction_active"
	CodeUnavailable       = "temporarily_unavailable"
	CodeInternal          = "internal_error"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, CodeInvalidRequest, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status, error code and message
func MapErrorToHTTP(err error) (int, string, string) {
	switch {
	case errors.Is(err, biddingerrors.ErrAuctionClosed):
		return http.StatusConflict, CodeAuctionClosed, "auction has ended"
	case errors.Is(err, biddingerrors.ErrInvalidSelection):
		return http.StatusBadRequest, CodeInvalidSelection, "unknown variation or service"
	case errors.Is(err, biddingerrors.ErrInvalidAmount):
		return http.StatusBadRequest, CodeInvalidAmount, "bid amount must be positive"
	case errors.Is(err, biddingerrors.ErrInvalidAuction):
		return http.StatusBadRequest, CodeInvalidAuction, "invalid auction details"
	case errors.Is(err, biddingerrors.ErrInvalidDecision):
		return http.StatusBadRequest, CodeInvalidDecision, "decision must be accept or decline"
	case errors.Is(err, biddingerrors.ErrNotFound):
		return http.StatusNotFound, CodeNotFound, "resource not found"
	case errors.Is(err, biddingerrors.ErrUnauthorized):
		return http.StatusForbidden, CodeForbidden, "not allowed for this user"
	case errors.Is(err, biddingerrors.ErrAlreadyAccepted):
		return http.StatusConflict, CodeAlreadyAccepted, "another bidder already accepted this auction"
	case errors.Is(err, biddingerrors.ErrInvalidTransition):
		return http.StatusConflict, CodeInvalidTransition, "notification was already answered"
	case errors.Is(err, biddingerrors.ErrAuctionStillActive):
		return http.StatusConflict, CodeAuctionActive, "auction is still running"
	case biddingerrors.IsTransient(err):
		return http.StatusServiceUnavailable, CodeUnavailable, "temporarily unavailable, please retry"
	default:
		return http.StatusInternalServerError, CodeInternal, "internal server error"
	}
}

// RespondError writes the mapped error response and logs it
func RespondError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, code, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), code, message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["status"] = status
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// Caller returns the authenticated user id and display name set by the identity middleware
func Caller(c *gin.Context) (string, string) {
	return c.GetString(CallerIDKey), c.GetString(CallerNameKey)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
