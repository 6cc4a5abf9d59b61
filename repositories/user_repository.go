package repositories

import (
	"time"

	"github.com/sasaki-csngrp/myreno/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	MarkEmailVerified(email string) error
	UpdateImage(id string, image *string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Where("id = ?", id).First(&user).Error
	return &user, err
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *userRepository) MarkEmailVerified(email string) error {
	return r.db.Model(&models.User{}).
		Where("email = ?", email).
		Update("email_verified_at", time.Now()).Error
}

func (r *userRepository) UpdateImage(id string, image *string) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", id).
		Update("image", image).Error
}
