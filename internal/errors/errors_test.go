package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialErrorsMatchGenericFailure(t *testing.T) {
	assert.True(t, errors.Is(ErrEmailNotFound, ErrInvalidCredentials))
	assert.True(t, errors.Is(ErrWrongPassword, ErrInvalidCredentials))
	assert.False(t, errors.Is(ErrEmailNotFound, ErrWrongPassword))
	assert.True(t, errors.Is(fmt.Errorf("login: %w", ErrWrongPassword), ErrInvalidCredentials))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError(map[string]string{"senha": "Senha muito curta.", "nome": "Nome muito curto."})
	assert.Equal(t, "validation failed: nome: Nome muito curto.; senha: Senha muito curta.", err.Error())

	fieldErr := NewFieldError("status", ErrInvalidStatus)
	assert.True(t, errors.Is(fieldErr, ErrInvalidStatus))
	assert.Equal(t, ErrInvalidStatus.Error(), fieldErr.Fields["status"])
}

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", NewValidationError(map[string]string{"cpf": "x"}), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"invalid status", NewFieldError("status", ErrInvalidStatus), http.StatusBadRequest, "INVALID_STATUS"},
		{"duplicate email", ErrDuplicateEmail, http.StatusBadRequest, "DUPLICATE_EMAIL"},
		{"duplicate cpf", fmt.Errorf("register: %w", ErrDuplicateCPF), http.StatusBadRequest, "DUPLICATE_CPF"},
		{"empty order", ErrEmptyOrder, http.StatusBadRequest, "EMPTY_ORDER"},
		{"wrong password", ErrWrongPassword, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"access denied", ErrAccessDenied, http.StatusForbidden, "ACCESS_DENIED"},
		{"not found", ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"unknown", errors.New("connection refused"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.status, httpErr.StatusCode)
			assert.Equal(t, tt.code, httpErr.Code)
		})
	}

	assert.Nil(t, MapErrorToHTTP(nil))
}

func TestMapErrorToHTTP_MessageDropsWrapping(t *testing.T) {
	httpErr := MapErrorToHTTP(fmt.Errorf("create order: %w", ErrMenuItemNotFound))
	assert.Equal(t, "Item do cardápio não encontrado.", httpErr.Message)
	assert.Equal(t, CodeMenuItemNotFound, httpErr.Code)

	httpErr = MapErrorToHTTP(fmt.Errorf("find user: %w", ErrNotFound))
	assert.Equal(t, "Usuário não encontrado.", httpErr.Message)

	httpErr = MapErrorToHTTP(NewFieldError("senha", ErrPasswordTooLong))
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Equal(t, CodeValidation, httpErr.Code)
}
