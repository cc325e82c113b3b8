package helpers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"storesapi/internal/domain"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest    = "bad_request"
	ErrCodeUnauthorized  = "unauthorized"
	ErrCodeNotFound      = "not_found"
	ErrCodeConflict      = "conflict"
	ErrCodeTagInUse      = "tag_in_use"
	ErrCodeInternalError = "internal_error"
)

// Error codes carried in the "error" field of token error bodies.
const (
	TokenErrAuthorizationRequired = "authorization_required"
	TokenErrExpired               = "token_expired"
	TokenErrInvalid               = "invalid_token"
	TokenErrRevoked               = "token_revoked"
	TokenErrFreshRequired         = "fresh_token_required"
)

const internalErrorMessage = "an unexpected error occurred"

// APIError is the error object in the standardized API response envelope.
// swagger:model APIError
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse is the standardized envelope for all API responses.
// On success: Data is set, Error is nil. On error: Data is nil, Error is set.
// swagger:model APIResponse
type APIResponse struct {
	Data  any       `json:"data"`
	Error *APIError `json:"error"`
}

// TokenErrorResponse is the 401 body written when a bearer token is missing or rejected.
// Exactly one of Description and Message is set.
// swagger:model TokenErrorResponse
type TokenErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"description,omitempty"`
	Message     string `json:"message,omitempty"`
}

// WriteJSONSuccess sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with the given data and error set to nil.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, APIResponse{Data: data, Error: nil})
}

// WriteJSONError sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with data nil and the given error code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	writeJSON(w, statusCode, APIResponse{
		Data:  nil,
		Error: &APIError{Code: code, Message: message},
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// TokenError returns the 401 body for a token or authorization failure.
func TokenError(err error) TokenErrorResponse {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return TokenErrorResponse{Error: TokenErrExpired, Message: "The token has expired."}
	case errors.Is(err, domain.ErrTokenRevoked):
		return TokenErrorResponse{Error: TokenErrRevoked, Description: "The token has been revoked."}
	case errors.Is(err, domain.ErrFreshTokenRequired):
		return TokenErrorResponse{Error: TokenErrFreshRequired, Description: "The token is not fresh."}
	case errors.Is(err, domain.ErrAdminRequired):
		return TokenErrorResponse{Error: TokenErrAuthorizationRequired, Message: "Admin privilege required"}
	case errors.Is(err, domain.ErrTokenInvalid):
		return TokenErrorResponse{Error: TokenErrInvalid, Message: "Signature verification failed."}
	default:
		return TokenErrorResponse{Error: TokenErrAuthorizationRequired, Description: "Request does not contain an access token."}
	}
}

// WriteTokenError writes a 401 with the body TokenError returns for err.
// A nil err means the request carried no token.
func WriteTokenError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusUnauthorized, TokenError(err))
}

// WriteServiceError maps a service error to its status and envelope. Errors with no
// domain meaning are logged and reported as 500 without their detail.
func WriteServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrTagInUse):
		WriteJSONError(w, http.StatusBadRequest, ErrCodeTagInUse, domain.ErrTagInUse.Error())
	case errors.Is(err, domain.ErrConflict):
		WriteJSONError(w, http.StatusBadRequest, ErrCodeConflict, conflictMessage(err))
	case errors.Is(err, domain.ErrValidation):
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, ErrCodeNotFound, notFoundMessage(err))
	case errors.Is(err, domain.ErrInvalidCredentials):
		WriteJSONError(w, http.StatusUnauthorized, ErrCodeUnauthorized, "invalid credentials")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, internalErrorMessage)
	}
}

// conflictMessage and notFoundMessage drop the "failed to ..." wrapping added by services.
func conflictMessage(err error) string {
	for _, known := range []error{
		domain.ErrDuplicateStoreName,
		domain.ErrDuplicateTagName,
		domain.ErrDuplicateUsername,
		domain.ErrTagAlreadyLinked,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return domain.ErrConflict.Error()
}

func notFoundMessage(err error) string {
	for _, known := range []error{
		domain.ErrStoreNotFound,
		domain.ErrItemNotFound,
		domain.ErrTagNotFound,
		domain.ErrUserNotFound,
		domain.ErrLinkNotFound,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return domain.ErrNotFound.Error()
}

// PathID parses the named path wildcard as a positive int64. On failure it writes
// a 404, matching how an unknown id is reported, and returns false.
func PathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id < 1 {
		WriteJSONError(w, http.StatusNotFound, ErrCodeNotFound, domain.ErrNotFound.Error())
		return 0, false
	}
	return id, true
}
