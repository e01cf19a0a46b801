package repository

import (
	"context"

	"gorm.io/gorm"

	"theboar/internal/model"
)

// UserRepository defines user persistence operations. Lookups report
// errors.ErrNotFound when nothing matches; writes rejected by a unique index
// report errors.ErrDuplicateKey.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByCPF(ctx context.Context, cpf string) (*model.User, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
	List(ctx context.Context) ([]model.User, error)
	// UpdateByEmail applies upd to the user with the given email and returns
	// how many records matched.
	UpdateByEmail(ctx context.Context, email string, upd model.UserUpdate) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return translateError(r.db.WithContext(ctx).Create(user).Error)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *userRepository) FindByCPF(ctx context.Context, cpf string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("cpf = ?", cpf).First(&user).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *userRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("created_at").Find(&users).Error; err != nil {
		return nil, translateError(err)
	}
	return users, nil
}

func (r *userRepository) UpdateByEmail(ctx context.Context, email string, upd model.UserUpdate) (int64, error) {
	updates := map[string]interface{}{
		"name":    upd.Name,
		"surname": upd.Surname,
		"cpf":     upd.CPF,
	}
	if upd.Password != nil {
		updates["password"] = *upd.Password
	}

	res := r.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Updates(updates)
	if res.Error != nil {
		return 0, translateError(res.Error)
	}
	return res.RowsAffected, nil
}
