package errors

import (
	"errors"
	"net/http"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateKey is returned by repositories when a unique constraint rejects a write.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("Email já cadastrado.")
	// ErrDuplicateCPF is returned when the CPF is already registered.
	ErrDuplicateCPF = errors.New("CPF já cadastrado.")
	// ErrInvalidCredentials is the generic authentication failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailNotFound is returned when no user has the given email.
	ErrEmailNotFound = &credentialError{msg: "E-Mail Não Cadastrado"}
	// ErrWrongPassword is returned when the password does not match.
	ErrWrongPassword = &credentialError{msg: "Senha Inválida"}
	// ErrAccessDenied is returned when a non-admin email uses the admin login.
	ErrAccessDenied = errors.New("Acesso negado.")
	// ErrEmptyOrder is returned when an order has no items.
	ErrEmptyOrder = errors.New("Nenhum item selecionado.")
	// ErrInvalidOrderItem is returned when an item has a missing id or non-positive quantity.
	ErrInvalidOrderItem = errors.New("Itens inválidos no pedido.")
	// ErrMenuItemNotFound is returned when a menu item id does not resolve.
	ErrMenuItemNotFound = errors.New("Item do cardápio não encontrado.")
	// ErrInvalidStatus is returned when an order status is not one of the known values.
	ErrInvalidStatus = errors.New("Status de pedido inválido.")
	// ErrPasswordTooLong is returned by hashers that cannot take the whole password.
	ErrPasswordTooLong = errors.New("Senha muito longa.")
)

// Codes set by MapErrorToHTTP.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeInvalidStatus      = "INVALID_STATUS"
	CodeDuplicateEmail     = "DUPLICATE_EMAIL"
	CodeDuplicateCPF       = "DUPLICATE_CPF"
	CodeEmptyOrder         = "EMPTY_ORDER"
	CodeInvalidOrderItem   = "INVALID_ORDER_ITEM"
	CodeMenuItemNotFound   = "MENU_ITEM_NOT_FOUND"
	CodeAccessDenied       = "ACCESS_DENIED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeNotFound           = "NOT_FOUND"
	CodeInternal           = "INTERNAL_ERROR"
)

// credentialError is a specific authentication failure that still matches
// ErrInvalidCredentials, so callers can stay generic.
type credentialError struct {
	msg string
}

func (e *credentialError) Error() string { return e.msg }

func (e *credentialError) Is(target error) bool { return target == ErrInvalidCredentials }

// ValidationError carries a field→message map for invalid input.
type ValidationError struct {
	Fields map[string]string
	cause  error
}

// NewValidationError builds a ValidationError from a field map.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// NewFieldError builds a single-field ValidationError that also matches cause.
func NewFieldError(field string, cause error) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: cause.Error()}, cause: cause}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return e.cause }

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unknown becomes
// an opaque 500.
func MapErrorToHTTP(err error) *HTTPError {
	var vErr *ValidationError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrInvalidStatus):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidStatus.Error(), CodeInvalidStatus)
	case errors.As(err, &vErr):
		return NewHTTPError(http.StatusBadRequest, "invalid input", CodeValidation)
	case errors.Is(err, ErrDuplicateEmail):
		return NewHTTPError(http.StatusBadRequest, ErrDuplicateEmail.Error(), CodeDuplicateEmail)
	case errors.Is(err, ErrDuplicateCPF):
		return NewHTTPError(http.StatusBadRequest, ErrDuplicateCPF.Error(), CodeDuplicateCPF)
	case errors.Is(err, ErrEmptyOrder):
		return NewHTTPError(http.StatusBadRequest, ErrEmptyOrder.Error(), CodeEmptyOrder)
	case errors.Is(err, ErrInvalidOrderItem):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidOrderItem.Error(), CodeInvalidOrderItem)
	case errors.Is(err, ErrMenuItemNotFound):
		return NewHTTPError(http.StatusBadRequest, ErrMenuItemNotFound.Error(), CodeMenuItemNotFound)
	case errors.Is(err, ErrAccessDenied):
		return NewHTTPError(http.StatusForbidden, ErrAccessDenied.Error(), CodeAccessDenied)
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, "Email ou senha inválidos.", CodeInvalidCredentials)
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, "Usuário não encontrado.", CodeNotFound)
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", CodeInternal)
	}
}
