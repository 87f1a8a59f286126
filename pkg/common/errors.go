package common

import (
	"errors"
	"net/http"
)

type ErrCode string

const (
	CodeMissingFields       ErrCode = "MISSING_FIELDS"
	CodeValidationFailed    ErrCode = "VALIDATION_FAILED"
	CodeInvalidId           ErrCode = "INVALID_ID"
	CodeNotFound            ErrCode = "NOT_FOUND"
	CodeAuthRequired        ErrCode = "AUTH_REQUIRED"
	CodeInvalidToken        ErrCode = "INVALID_TOKEN"
	CodeAdminRequired       ErrCode = "ADMIN_REQUIRED"
	CodeRateLimited         ErrCode = "RATE_LIMITED"
	CodePersistenceConflict ErrCode = "PERSISTENCE_CONFLICT"
	CodePersistenceError    ErrCode = "PERSISTENCE_ERROR"
	CodeStoreUnavailable    ErrCode = "STORE_UNAVAILABLE"
	CodeValidationError     ErrCode = "VALIDATION_ERROR"
	CodeMethodNotAllowed    ErrCode = "METHOD_NOT_ALLOWED"
	CodeInternal            ErrCode = "INTERNAL_ERROR"
)

// AppError is a failure that already knows how it is rendered to the client.
type AppError struct {
	Status  int
	Code    ErrCode
	Message string
	Details map[string]interface{}
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// With returns a copy of the error carrying an extra body field.
func (e *AppError) With(key string, value interface{}) *AppError {
	cp := *e
	cp.Details = make(map[string]interface{}, len(e.Details)+1)
	for k, v := range e.Details {
		cp.Details[k] = v
	}
	cp.Details[key] = value
	return &cp
}

// Wrap returns a copy of the error keeping err as the cause. The cause is logged, never sent.
func (e *AppError) Wrap(err error) *AppError {
	cp := *e
	cp.Err = err
	return &cp
}

func newErr(status int, code ErrCode, msg string) *AppError {
	return &AppError{Status: status, Code: code, Message: msg}
}

func MissingFields(missing []string) *AppError {
	return newErr(http.StatusBadRequest, CodeMissingFields, "Missing required fields").
		With("missing", missing).
		With("required", []string{"title", "message", "creator"})
}

func ValidationFailed(msgs []string) *AppError {
	return newErr(http.StatusBadRequest, CodeValidationFailed, "Validation failed").With("errors", msgs)
}

func InvalidId() *AppError {
	return newErr(http.StatusBadRequest, CodeInvalidId, "Invalid post ID")
}

func NotFound(msg string) *AppError {
	return newErr(http.StatusNotFound, CodeNotFound, msg)
}

func AuthRequired() *AppError {
	return newErr(http.StatusUnauthorized, CodeAuthRequired, "Authentication required")
}

func InvalidToken() *AppError {
	return newErr(http.StatusUnauthorized, CodeInvalidToken, "Invalid authentication token")
}

func AdminRequired() *AppError {
	return newErr(http.StatusForbidden, CodeAdminRequired, "Admin access required")
}

func RateLimited() *AppError {
	return newErr(http.StatusTooManyRequests, CodeRateLimited, "Too many requests, please try again later.")
}

func PersistenceConflict(msg string) *AppError {
	return newErr(http.StatusConflict, CodePersistenceConflict, msg)
}

func PersistenceError(msg string) *AppError {
	return newErr(http.StatusInternalServerError, CodePersistenceError, msg)
}

func StoreUnavailable(msg string) *AppError {
	return newErr(http.StatusNotFound, CodeStoreUnavailable, msg)
}

func ValidationError(msg string) *AppError {
	return newErr(http.StatusBadRequest, CodeValidationError, msg)
}

func MethodNotAllowed() *AppError {
	return newErr(http.StatusMethodNotAllowed, CodeMethodNotAllowed, "Method not allowed")
}

func InternalError() *AppError {
	return newErr(http.StatusInternalServerError, CodeInternal, "Internal server error")
}

// WriteErr renders err as {success, message, code, ...details}.
// Anything that is not an *AppError becomes a 500 INTERNAL_ERROR.
func WriteErr(w http.ResponseWriter, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = InternalError()
	}

	body := make(map[string]interface{}, len(appErr.Details)+3)
	for k, v := range appErr.Details {
		body[k] = v
	}
	body["success"] = false
	body["message"] = appErr.Message
	body["code"] = appErr.Code

	WriteJSON(w, appErr.Status, body)
}
