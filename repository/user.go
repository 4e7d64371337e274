package repository

import (
	"context"

	"gorm.io/gorm"

	"travel-backend/models"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	return translate(r.DB.WithContext(ctx).Create(u).Error, "create user")
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate(err, "find user")
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, translate(err, "find user")
	}
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	list := []models.User{}
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, translate(err, "list users")
	}
	return list, nil
}

func (r *UserRepository) Save(ctx context.Context, u *models.User) error {
	err := r.DB.WithContext(ctx).Model(u).
		Select("name", "email", "password").
		Updates(u).Error
	return translate(err, "update user")
}
