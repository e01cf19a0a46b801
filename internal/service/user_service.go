package service

import (
	"context"
	"errors"
	"fmt"

	"theboar/internal/auth"
	apperrors "theboar/internal/errors"
	"theboar/internal/metrics"
	"theboar/internal/model"
	"theboar/internal/repository"
	"theboar/internal/validation"
)

// Fixed identity of the seeded administrator. The CPF is not a valid one; the
// record is inserted without field validation.
const (
	seedAdminName    = "Administrador"
	seedAdminSurname = "Administrador"
	seedAdminCPF     = "00000000000"
)

// AdminAccount identifies the administrator account.
type AdminAccount struct {
	Email    string
	Password string
}

// UserService exposes user domain operations.
type UserService interface {
	Register(ctx context.Context, in model.UserInput) (*model.User, error)
	UpdateByEmail(ctx context.Context, email string, upd model.UserUpdate) error
	Authenticate(ctx context.Context, email, password string) (*model.BasicProfile, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	ListAll(ctx context.Context) ([]model.User, error)
	// EnsureSeedAdmin inserts the administrator when no user has its email.
	// It reports whether a record was created.
	EnsureSeedAdmin(ctx context.Context) (bool, error)
}

type userService struct {
	repo    repository.UserRepository
	hasher  auth.PasswordHasher
	metrics *metrics.Metrics
	admin   AdminAccount
}

// NewUserService builds a UserService. A nil hasher stores passwords as given.
func NewUserService(repo repository.UserRepository, hasher auth.PasswordHasher, m *metrics.Metrics, admin AdminAccount) UserService {
	if hasher == nil {
		hasher = auth.PlainHasher{}
	}
	return &userService{repo: repo, hasher: hasher, metrics: m, admin: admin}
}

// Register normalizes and validates the input, checks email then CPF
// uniqueness and inserts the record.
func (s *userService) Register(ctx context.Context, in model.UserInput) (*model.User, error) {
	user, errs := normalizeAndValidate(in)
	if len(errs) > 0 {
		return nil, apperrors.NewValidationError(errs)
	}

	if err := s.checkUnique(ctx, user.Email, user.CPF); err != nil {
		return nil, err
	}

	hashed, err := s.hashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hashed

	if err := s.repo.Create(ctx, &user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateKey) {
			return nil, s.duplicateCause(ctx, user.Email)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.metrics.IncUsersRegistered()
	return &user, nil
}

// normalizeAndValidate builds the stored form of in and validates that form.
// The CPF message is computed from the value as typed.
func normalizeAndValidate(in model.UserInput) (model.User, map[string]string) {
	user := model.NewUser(in)
	errs := validation.ValidateUser(model.UserInput{
		Name:                 user.Name,
		Surname:              user.Surname,
		Email:                user.Email,
		CPF:                  in.CPF,
		Password:             in.Password,
		PasswordConfirmation: in.PasswordConfirmation,
	})
	return user, errs
}

// hashPassword reports passwords the hasher cannot accept as a senha
// validation error.
func (s *userService) hashPassword(password string) (string, error) {
	hashed, err := s.hasher.Hash(password)
	if errors.Is(err, apperrors.ErrPasswordTooLong) {
		return "", apperrors.NewFieldError(validation.FieldPassword, apperrors.ErrPasswordTooLong)
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return hashed, nil
}

func (s *userService) checkUnique(ctx context.Context, email, cpf string) error {
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return apperrors.ErrDuplicateEmail
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("check email: %w", err)
	}

	if _, err := s.repo.FindByCPF(ctx, cpf); err == nil {
		return apperrors.ErrDuplicateCPF
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("check cpf: %w", err)
	}
	return nil
}

// duplicateCause resolves which unique index rejected an insert that passed
// the earlier existence checks.
func (s *userService) duplicateCause(ctx context.Context, email string) error {
	if n, err := s.repo.CountByEmail(ctx, email); err == nil && n > 0 {
		return apperrors.ErrDuplicateEmail
	}
	return apperrors.ErrDuplicateCPF
}

// UpdateByEmail replaces name, surname, CPF and optionally the password of
// the user identified by email. The email itself never changes.
func (s *userService) UpdateByEmail(ctx context.Context, email string, upd model.UserUpdate) error {
	in := model.UserInput{
		Name:    upd.Name,
		Surname: upd.Surname,
		Email:   email,
		CPF:     upd.CPF,
	}
	if upd.Password != nil {
		in.Password = *upd.Password
		in.PasswordConfirmation = *upd.Password
	}

	normalized, errs := normalizeAndValidate(in)
	if upd.Password == nil {
		delete(errs, validation.FieldPassword)
		delete(errs, validation.FieldPasswordConfirmation)
	}
	if len(errs) > 0 {
		return apperrors.NewValidationError(errs)
	}

	if _, err := s.repo.FindByEmail(ctx, normalized.Email); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	patch := model.UserUpdate{
		Name:    normalized.Name,
		Surname: normalized.Surname,
		CPF:     normalized.CPF,
	}
	if upd.Password != nil {
		hashed, err := s.hashPassword(*upd.Password)
		if err != nil {
			return err
		}
		patch.Password = &hashed
	}

	matched, err := s.repo.UpdateByEmail(ctx, normalized.Email, patch)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateKey) {
			return apperrors.ErrDuplicateCPF
		}
		return fmt.Errorf("update user: %w", err)
	}
	if matched == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Authenticate returns the basic profile when the password matches. Failures
// are ErrEmailNotFound or ErrWrongPassword, both matching ErrInvalidCredentials.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*model.BasicProfile, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrEmailNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !s.hasher.Compare(user.Password, password) {
		return nil, apperrors.ErrWrongPassword
	}
	return &model.BasicProfile{Name: user.Name, Email: user.Email}, nil
}

func (s *userService) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *userService) ListAll(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) EnsureSeedAdmin(ctx context.Context) (bool, error) {
	n, err := s.repo.CountByEmail(ctx, s.admin.Email)
	if err != nil {
		return false, fmt.Errorf("count admin: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	hashed, err := s.hasher.Hash(s.admin.Password)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	admin := &model.User{
		Name:     seedAdminName,
		Surname:  seedAdminSurname,
		Email:    s.admin.Email,
		CPF:      seedAdminCPF,
		Password: hashed,
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	return true, nil
}
