package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripmate/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByFacebookID(ctx context.Context, facebookID string) (*model.User, error)
	FindByFacebookIDs(ctx context.Context, facebookIDs []string) ([]model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByFacebookID(ctx context.Context, facebookID string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("facebook_id = ?", facebookID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByFacebookIDs(ctx context.Context, facebookIDs []string) ([]model.User, error) {
	var users []model.User
	if len(facebookIDs) == 0 {
		return users, nil
	}
	if err := r.db.WithContext(ctx).Where("facebook_id IN ?", facebookIDs).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
