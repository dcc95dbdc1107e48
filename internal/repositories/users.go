package repositories

import (
	"context"
	"errors"
	"github.com/soham164/skill-gap-analyzer/internal/apperrors"
	"github.com/soham164/skill-gap-analyzer/internal/entities"
	"gorm.io/gorm"
)

type Users struct {
	db *gorm.DB
}

func NewUsersRepository(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (repo *Users) Add(ctx context.Context, user *entities.User) error {
	return repo.db.WithContext(ctx).Create(user).Error
}

func (repo *Users) GetByID(ctx context.Context, id uint) (*entities.User, error) {

	var user entities.User
	if err := repo.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("user %v", id)
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail returns (nil, nil) when no user has the email.
func (repo *Users) GetByEmail(ctx context.Context, email string) (*entities.User, error) {

	var user entities.User
	if err := repo.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (repo *Users) Update(ctx context.Context, user *entities.User) error {
	return repo.db.WithContext(ctx).Model(&entities.User{}).
		Where("id = ?", user.ID).Updates(user).Error
}
