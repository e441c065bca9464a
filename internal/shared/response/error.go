package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"oasis-server/internal/shared/errors"
)

// requestIDHeader is set on the response by the request id middleware before
// any handler runs.
const requestIDHeader = "X-Request-ID"

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Code      int    `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

var statusCodes = map[errors.ErrorType]int{
	errors.ErrorTypeNotFound:         http.StatusNotFound,
	errors.ErrorTypeValidation:       http.StatusBadRequest,
	errors.ErrorTypeConflict:         http.StatusConflict,
	errors.ErrorTypeUnauthorized:     http.StatusUnauthorized,
	errors.ErrorTypeForbidden:        http.StatusForbidden,
	errors.ErrorTypeMethodNotAllowed: http.StatusMethodNotAllowed,
	errors.ErrorTypeTooManyRequests:  http.StatusTooManyRequests,
	errors.ErrorTypeExternal:         http.StatusServiceUnavailable,
	errors.ErrorTypeInternal:         http.StatusInternalServerError,
}

// StatusCode maps an error type to its HTTP status.
func StatusCode(errorType errors.ErrorType) int {
	if code, ok := statusCodes[errorType]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// Error logs err and answers with its status and public message. Handlers
// log nothing else for a failed request.
func Error(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	ErrorWithMessage(w, r, logger, err, errors.PublicMessage(err))
}

// ErrorWithMessage is Error with a caller-chosen client message.
func ErrorWithMessage(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, clientMessage string) {
	errorType := errors.GetType(err)
	status := StatusCode(errorType)
	requestID := w.Header().Get(requestIDHeader)

	logError(logger.With(
		"method", r.Method,
		"path", r.URL.Path,
		"remote_addr", r.RemoteAddr,
		"request_id", requestID,
		"error_type", errorType,
		"status_code", status,
	), err, errorType)

	JSON(w, status, ErrorResponse{
		Error:     string(errorType),
		Message:   clientMessage,
		Code:      status,
		RequestID: requestID,
	})
}

func logError(logger *slog.Logger, err error, errorType errors.ErrorType) {
	switch errorType {
	case errors.ErrorTypeNotFound, errors.ErrorTypeValidation, errors.ErrorTypeMethodNotAllowed:
		logger.Debug("Request rejected", "error", err)
	case errors.ErrorTypeConflict:
		logger.Info("Request conflicted", "error", err)
	case errors.ErrorTypeUnauthorized, errors.ErrorTypeForbidden:
		logger.Warn("Authorization error", "error", err)
	case errors.ErrorTypeTooManyRequests:
		logger.Warn("Rate limit exceeded", "error", err)
	case errors.ErrorTypeExternal:
		logger.Error("External service error", "error", err)
	default:
		logger.Error("Internal server error", "error", err)
	}
}

// JSON writes v with the given status. The status line is already sent when
// encoding fails, so the encode error is dropped.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Success writes data as JSON. A nil data writes the status alone.
func Success(w http.ResponseWriter, statusCode int, data any) {
	if data == nil {
		w.WriteHeader(statusCode)
		return
	}
	JSON(w, statusCode, data)
}
