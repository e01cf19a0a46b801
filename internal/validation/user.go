// Package validation holds the field rules applied to user records before
// they are persisted.
package validation

import (
	"strings"
	"unicode/utf8"

	validation "github.com/jellydator/validation"

	"theboar/internal/cpf"
	"theboar/internal/model"
)

// Field names as they travel on the wire; error maps are keyed by them.
const (
	FieldName                 = "nome"
	FieldSurname              = "sobrenome"
	FieldEmail                = "email"
	FieldCPF                  = "cpf"
	FieldPassword             = "senha"
	FieldPasswordConfirmation = "confirmarSenha"
)

// Messages for each failing rule.
const (
	MsgNameTooShort     = "Nome muito curto."
	MsgSurnameTooShort  = "Sobrenome muito curto."
	MsgInvalidEmail     = "Email inválido."
	MsgPasswordTooShort = "Senha muito curta."
	MsgPasswordMismatch = "As senhas não coincidem."
)

const (
	minNameLength     = 2
	minPasswordLength = 6
)

var (
	nameRule     = trimmedMinLength(minNameLength, MsgNameTooShort)
	surnameRule  = trimmedMinLength(minNameLength, MsgSurnameTooShort)
	passwordRule = minLength(minPasswordLength, MsgPasswordTooShort)

	emailRule = validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if !strings.Contains(s, "@") || strings.HasPrefix(s, "@") || strings.HasSuffix(s, "@") {
			return validation.NewError("validation_email", MsgInvalidEmail)
		}
		return nil
	})

	cpfRule = validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if msg := cpf.Validate(s); msg != "" {
			return validation.NewError("validation_cpf", msg)
		}
		return nil
	})
)

// ValidateUser checks every field independently and returns a message per
// invalid field. An empty map means the input is valid.
func ValidateUser(in model.UserInput) map[string]string {
	errs := validation.Errors{
		FieldName:                 validation.Validate(in.Name, nameRule),
		FieldSurname:              validation.Validate(in.Surname, surnameRule),
		FieldEmail:                validation.Validate(in.Email, emailRule),
		FieldCPF:                  validation.Validate(in.CPF, cpfRule),
		FieldPassword:             validation.Validate(in.Password, passwordRule),
		FieldPasswordConfirmation: validation.Validate(in.PasswordConfirmation, equalTo(in.Password, MsgPasswordMismatch)),
	}
	return messages(errs)
}

// IsValidUser reports whether ValidateUser finds nothing.
func IsValidUser(in model.UserInput) bool {
	return len(ValidateUser(in)) == 0
}

func messages(errs validation.Errors) map[string]string {
	out := make(map[string]string)
	filtered, ok := errs.Filter().(validation.Errors)
	if !ok {
		return out
	}
	for field, err := range filtered {
		out[field] = err.Error()
	}
	return out
}

func trimmedMinLength(n int, msg string) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if utf8.RuneCountInString(strings.TrimSpace(s)) < n {
			return validation.NewError("validation_min_length", msg)
		}
		return nil
	})
}

func minLength(n int, msg string) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if utf8.RuneCountInString(s) < n {
			return validation.NewError("validation_min_length", msg)
		}
		return nil
	})
}

func equalTo(expected, msg string) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if s != expected {
			return validation.NewError("validation_mismatch", msg)
		}
		return nil
	})
}
