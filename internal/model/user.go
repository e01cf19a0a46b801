package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"theboar/internal/cpf"
)

// User is a registered customer. Email is the natural key; CPF is unique too.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"nome" gorm:"size:255;not null"`
	Surname   string    `json:"sobrenome" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	CPF       string    `json:"cpf" gorm:"uniqueIndex;size:11;not null"`
	Password  string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// UserInput is the raw registration payload.
type UserInput struct {
	Name                 string `json:"nome" form:"nome"`
	Surname              string `json:"sobrenome" form:"sobrenome"`
	Email                string `json:"email" form:"email"`
	CPF                  string `json:"cpf" form:"cpf"`
	Password             string `json:"senha" form:"senha"`
	PasswordConfirmation string `json:"confirmarSenha" form:"confirmarSenha"`
}

// UserUpdate holds the mutable fields of a user. A nil Password keeps the
// stored one.
type UserUpdate struct {
	Name     string
	Surname  string
	CPF      string
	Password *string
}

// BasicProfile is what a successful authentication returns.
type BasicProfile struct {
	Name  string `json:"nome"`
	Email string `json:"email"`
}

// NewUser builds a normalized record from raw input: names and email are
// trimmed and the CPF keeps digits only. It does not validate.
func NewUser(in UserInput) User {
	return User{
		Name:     strings.TrimSpace(in.Name),
		Surname:  strings.TrimSpace(in.Surname),
		Email:    strings.TrimSpace(in.Email),
		CPF:      cpf.Clean(in.CPF),
		Password: in.Password,
	}
}
